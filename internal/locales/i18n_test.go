package locales

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBilingualText(t *testing.T) {
	tr := New("sk", "hu")
	assert.Equal(t, "Príspevok / Bejegyzés", tr.Text(MsgPostTitle))
	assert.Equal(t, "Zobraziť na Facebooku / Megtekintés a Facebookon", tr.Text(MsgViewOnFacebook))
}

func TestSingleLanguage(t *testing.T) {
	assert.Equal(t, "View on Facebook", New("en").Text(MsgViewOnFacebook))
	assert.Equal(t, "Príspevok", New().Text(MsgPostTitle))
}

func TestUnknownLanguageFallsBackOnce(t *testing.T) {
	// both tags fall back to the Slovak default and are merged
	assert.Equal(t, "Príspevok", New("de", "fr").Text(MsgPostTitle))
}

func TestUnknownMessage(t *testing.T) {
	assert.Equal(t, "Missing", New("sk").Text("Missing"))
}

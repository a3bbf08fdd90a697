package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	cases := map[int]string{
		0:        "0",
		12:       "12",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
		-100:     "-100",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumber(in), "input %d", in)
	}
}

func TestDates(t *testing.T) {
	ts := time.Date(2025, time.March, 4, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "2025.03.04 09:05", DisplayDate(ts))
	assert.Equal(t, "2025.03.04", TitleDate(ts))
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "abc...xyz", MaskToken("abcdefghijxyz", 3))
	assert.Equal(t, "****", MaskToken("abcd", 3))
}

func TestEscapeMarkdownV2(t *testing.T) {
	assert.Equal(t, `2025\-03\-04\_prispevok\.md`, EscapeMarkdownV2("2025-03-04_prispevok.md"))
}

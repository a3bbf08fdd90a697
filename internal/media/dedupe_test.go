package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeKeepsFirstSeen(t *testing.T) {
	a := "https://scontent.xx.fbcdn.net/v/a_n.jpg?stp=dst-jpg_p720x720&oh=1"
	b := "https://example.com/b.png"
	aPrime := "https://scontent.xx.fbcdn.net/v/a_n.jpg?stp=dst-jpg_p720x720&oh=2&oe=3"
	c := "https://scontent.xx.fbcdn.net/v/c_n.jpg?oh=9"

	assert.Equal(t, []string{a, b, c}, Dedupe([]string{a, b, aPrime, c}))
}

func TestDedupeKeepsDistinctRenditions(t *testing.T) {
	small := "https://scontent.xx.fbcdn.net/v/a_n.jpg?stp=dst-jpg_p180x540&oh=1"
	large := "https://scontent.xx.fbcdn.net/v/a_n.jpg?stp=dst-jpg_p720x720&oh=1"

	assert.Equal(t, []string{small, large}, Dedupe([]string{small, large}))
}

func TestDedupeFiltersNonImages(t *testing.T) {
	permalink := "https://www.facebook.com/265760324323651/posts/42"
	viewer := "https://www.facebook.com/photo.php?fbid=1"
	img := "https://example.com/x.gif"

	assert.Equal(t, []string{img}, Dedupe([]string{"", permalink, viewer, img, img}))
}

func TestDedupeBareAndSignedCollapse(t *testing.T) {
	normalized := "https://scontent.xx.fbcdn.net/v/a_n.jpg"
	signed := normalized + "?oh=1"

	assert.Equal(t, []string{signed}, Dedupe([]string{signed, normalized}))
}

func TestDedupeEmpty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}

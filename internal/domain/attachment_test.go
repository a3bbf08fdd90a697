package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostDecodingToleratesMissingLevels(t *testing.T) {
	raw := `{
		"id": "1_2",
		"created_time": "2025-03-14T10:22:33+0000",
		"attachments": {"data": [
			{"media_type": "photo", "url": "https://example.com/a.jpg", "media": "not-an-object"},
			{"media_type": "photo", "media": {"image": 17}},
			{"media_type": "album", "subattachments": {"data": [
				{"media_type": "photo", "media": {"image": {"src": "https://example.com/b.png", "width": 720, "height": 480}}}
			]}},
			{"media_type": "link"}
		]}
	}`

	var post Post
	require.NoError(t, json.Unmarshal([]byte(raw), &post))

	items := post.AttachmentItems()
	require.Len(t, items, 4)

	assert.True(t, items[0].IsPhoto())
	assert.Equal(t, "", items[0].ImageSrc())
	assert.Equal(t, "", items[1].ImageSrc())

	require.True(t, items[2].IsAlbum())
	subs := items[2].SubattachmentItems()
	require.Len(t, subs, 1)
	assert.Equal(t, "https://example.com/b.png", subs[0].ImageSrc())
	assert.Equal(t, 720, subs[0].Media.Image.Width)

	assert.Nil(t, items[3].SubattachmentItems())
}

func TestNilAttachmentList(t *testing.T) {
	var post Post
	assert.Nil(t, post.AttachmentItems())
	assert.Equal(t, "", Attachment{}.ImageSrc())
}

func TestPostDecodingToleratesWrongTypes(t *testing.T) {
	raw := `{
		"id": "1_3",
		"created_time": "2025-03-14T10:22:33+0000",
		"attachments": {"data": [
			{"media_type": "photo", "url": ["https://example.com/a.jpg"]},
			{"media_type": "album", "url": "https://example.com/album", "subattachments": ["x"]},
			{"media_type": "album", "subattachments": {"data": "none"}},
			"not-an-attachment",
			{"media_type": "photo", "url": "https://example.com/b.jpg"}
		]}
	}`

	var post Post
	require.NoError(t, json.Unmarshal([]byte(raw), &post))

	items := post.AttachmentItems()
	require.Len(t, items, 5)

	assert.True(t, items[0].IsPhoto())
	assert.Equal(t, "", items[0].URL)

	assert.Equal(t, "https://example.com/album", items[1].URL)
	assert.Nil(t, items[1].SubattachmentItems())
	assert.Nil(t, items[2].SubattachmentItems())

	assert.Equal(t, Attachment{}, items[3])
	assert.Equal(t, "https://example.com/b.jpg", items[4].URL)
}

func TestAttachmentsWrapperNotAnObject(t *testing.T) {
	var post Post
	require.NoError(t, json.Unmarshal([]byte(`{"id": "1_4", "attachments": [1, 2]}`), &post))
	assert.Nil(t, post.AttachmentItems())
}

package domain

import (
	"bytes"
	"encoding/json"
)

const (
	MediaTypePhoto = "photo"
	MediaTypeAlbum = "album"
)

// AttachmentList is the Graph API edge wrapper `{"data": [...]}`.
type AttachmentList struct {
	Data []Attachment `json:"data"`
}

// UnmarshalJSON treats a wrapper that is not an object, or a data value that
// is not an array, as an empty list.
func (l *AttachmentList) UnmarshalJSON(data []byte) error {
	*l = AttachmentList{}
	if !isObject(data) {
		return nil
	}
	var v struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if !isArray(v.Data) {
		return nil
	}
	return json.Unmarshal(v.Data, &l.Data)
}

// Items is nil-safe.
func (l *AttachmentList) Items() []Attachment {
	if l == nil {
		return nil
	}
	return l.Data
}

type Attachment struct {
	MediaType      string          `json:"media_type,omitempty"`
	Type           string          `json:"type,omitempty"`
	Title          string          `json:"title,omitempty"`
	Description    string          `json:"description,omitempty"`
	URL            string          `json:"url,omitempty"`
	Media          *Media          `json:"media,omitempty"`
	Subattachments *AttachmentList `json:"subattachments,omitempty"`
}

// UnmarshalJSON decodes an attachment leniently: a value that is not an
// object becomes an empty attachment and string fields of another type
// decode to "".
func (a *Attachment) UnmarshalJSON(data []byte) error {
	*a = Attachment{}
	if !isObject(data) {
		return nil
	}
	var v struct {
		MediaType      json.RawMessage `json:"media_type"`
		Type           json.RawMessage `json:"type"`
		Title          json.RawMessage `json:"title"`
		Description    json.RawMessage `json:"description"`
		URL            json.RawMessage `json:"url"`
		Media          *Media          `json:"media"`
		Subattachments *AttachmentList `json:"subattachments"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = Attachment{
		MediaType:      lenientString(v.MediaType),
		Type:           lenientString(v.Type),
		Title:          lenientString(v.Title),
		Description:    lenientString(v.Description),
		URL:            lenientString(v.URL),
		Media:          v.Media,
		Subattachments: v.Subattachments,
	}
	return nil
}

func (a Attachment) IsPhoto() bool { return a.MediaType == MediaTypePhoto }

func (a Attachment) IsAlbum() bool { return a.MediaType == MediaTypeAlbum }

// ImageSrc returns media.image.src, or "" when any level is missing.
func (a Attachment) ImageSrc() string {
	if a.Media == nil || a.Media.Image == nil {
		return ""
	}
	return a.Media.Image.Src
}

// SubattachmentItems is nil-safe.
func (a Attachment) SubattachmentItems() []Attachment {
	return a.Subattachments.Items()
}

// Media describes the media object of an attachment. The API occasionally
// sends values that are not objects here; those decode to an empty Media.
type Media struct {
	Image *Image `json:"image,omitempty"`
}

func (m *Media) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		*m = Media{}
		return nil
	}
	type plain Media
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Media(v)
	return nil
}

type Image struct {
	Src    string `json:"src,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

func (i *Image) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		*i = Image{}
		return nil
	}
	var v struct {
		Src    json.RawMessage `json:"src"`
		Width  json.Number     `json:"width"`
		Height json.Number     `json:"height"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	w, _ := v.Width.Int64()
	h, _ := v.Height.Int64()
	*i = Image{Src: lenientString(v.Src), Width: int(w), Height: int(h)}
	return nil
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

func isArray(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}

func lenientString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

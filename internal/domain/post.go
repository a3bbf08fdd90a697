package domain

// Post is a single page post as returned by the Graph API feed.
type Post struct {
	ID           string          `json:"id"`
	Message      string          `json:"message,omitempty"`
	CreatedTime  string          `json:"created_time"`
	PermalinkURL string          `json:"permalink_url"`
	FullPicture  string          `json:"full_picture,omitempty"`
	Attachments  *AttachmentList `json:"attachments,omitempty"`
}

// AttachmentItems returns the attachments of the post, or nil when the
// attachments key was absent.
func (p Post) AttachmentItems() []Attachment {
	return p.Attachments.Items()
}

// Page is a Facebook page the token has access to.
type Page struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token,omitempty"`
}

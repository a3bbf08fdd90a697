package domain

import "time"

// ImportedPost is one ledger entry: a document written for a post.
type ImportedPost struct {
	ID         int
	PostID     string
	PageID     string
	FileName   string
	Permalink  string
	ImageCount int
	CoverImage string
	ImportedAt time.Time
}

package importer

import (
	"context"
	"errors"
)

// ErrNothingToImport ends a run whose post listing failed or came back empty.
var ErrNothingToImport = errors.New("nothing to import")

// Result describes one processed post. Err is set when the post was skipped.
// PreviousImports counts earlier ledger entries for the same post.
type Result struct {
	PostID          string
	FileName        string
	Path            string
	ImageCount      int
	Cover           string
	PreviousImports int
	Err             error
}

type Summary struct {
	PageName string
	OutDir   string
	Results  []Result
}

func (s Summary) Written() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

func (s Summary) Failed() int {
	return len(s.Results) - s.Written()
}

// Reimported counts written posts that the ledger had seen before.
func (s Summary) Reimported() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil && r.PreviousImports > 0 {
			n++
		}
	}
	return n
}

// Client runs one import: fetch the latest posts and write a document for each.
type Client interface {
	Run(ctx context.Context) (Summary, error)
}

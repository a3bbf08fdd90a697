package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/orgball2608/fb-post-importer/internal/domain"
	"github.com/orgball2608/fb-post-importer/internal/importer"
	"github.com/stretchr/testify/assert"
)

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	renderSummary(&buf, importer.Summary{Results: []importer.Result{
		{PostID: "1_1", FileName: "2025-03-14-10-22-prispevok.md", ImageCount: 3, Cover: "https://example.com/a.jpg"},
		{PostID: "1_2", Err: errors.New("bad timestamp")},
	}})

	out := buf.String()
	assert.Contains(t, out, "2025-03-14-10-22-prispevok.md")
	assert.Contains(t, out, "skipped: bad timestamp")
	assert.Contains(t, out, "IMPORTED BEFORE")
}

func TestRenderPages(t *testing.T) {
	var buf bytes.Buffer
	renderPages(&buf, []domain.Page{{ID: "1", Name: "Obec"}, {ID: "2", Name: "Kultúrny dom"}})

	out := buf.String()
	assert.Contains(t, out, "Obec")
	assert.Contains(t, out, "Kultúrny dom")
}

func TestRenderLedger(t *testing.T) {
	var buf bytes.Buffer
	renderLedger(&buf, []*domain.ImportedPost{
		{PostID: "1_1", FileName: "2025-03-14-10-22-prispevok.md", ImageCount: 4, ImportedAt: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)},
	})

	out := buf.String()
	assert.Contains(t, out, "1_1")
	assert.Contains(t, out, "2025-03-14-10-22-prispevok.md")
	assert.Contains(t, out, "ENTRIES")
}

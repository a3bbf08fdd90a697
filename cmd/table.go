package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/orgball2608/fb-post-importer/internal/domain"
	"github.com/orgball2608/fb-post-importer/internal/importer"
	"github.com/orgball2608/fb-post-importer/pkg/formatter"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func renderSummary(w io.Writer, s importer.Summary) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Post", "File", "Images", "Cover", "Imported before"})
	for _, r := range s.Results {
		if r.Err != nil {
			t.AppendRow(table.Row{r.PostID, "skipped: " + r.Err.Error(), "", "", ""})
			continue
		}
		t.AppendRow(table.Row{r.PostID, r.FileName, r.ImageCount, r.Cover, r.PreviousImports})
	}
	t.AppendFooter(table.Row{"", "written", formatter.FormatNumber(s.Written()), "re-imported", formatter.FormatNumber(s.Reimported())})
	t.Render()
}

func renderPages(w io.Writer, pages []domain.Page) {
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Name", "ID"})
	for i, p := range pages {
		t.AppendRow(table.Row{i + 1, p.Name, p.ID})
	}
	t.Render()
}

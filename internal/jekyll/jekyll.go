package jekyll

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/orgball2608/fb-post-importer/internal/domain"
	"github.com/orgball2608/fb-post-importer/internal/locales"
	errs "github.com/orgball2608/fb-post-importer/pkg/errors"
	"github.com/orgball2608/fb-post-importer/pkg/formatter"
	"gopkg.in/yaml.v3"
)

const (
	dateLayout     = "2006-01-02 15:04:05"
	fileDateLayout = "2006-01-02-15-04"
)

// createdTimeLayouts are tried in order. The Graph API sends a numeric zone
// without a colon, e.g. 2025-03-14T10:22:33+0000.
var createdTimeLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

var documentTemplate = template.Must(template.New("post").Parse(`---
{{.FrontMatter}}---

{{.Body}}

<div class="fb-post-info">
 <p><i class="fab fa-facebook"></i> <a href="{{.Permalink}}" target="_blank">{{.LinkLabel}}</a></p>
</div>
`))

// FrontMatter keys are emitted in field order.
type FrontMatter struct {
	Layout      string   `yaml:"layout"`
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Categories  []string `yaml:"categories"`
	Image       string   `yaml:"image"`
	FBURL       string   `yaml:"fb_url"`
	DisplayDate string   `yaml:"display_date"`
	Gallery     []string `yaml:"gallery,omitempty"`
}

type Document struct {
	PostID      string
	FileName    string
	FrontMatter FrontMatter
	Body        string
	LinkLabel   string
}

type Options struct {
	Layout       string
	Category     string
	DefaultCover string
	FileSuffix   string
	FileExt      string
	// Location converts post timestamps before formatting. Nil keeps the
	// zone reported by the API.
	Location   *time.Location
	Translator *locales.Translator
}

type Composer struct {
	opts Options
}

func NewComposer(opts Options) *Composer {
	if opts.Translator == nil {
		opts.Translator = locales.New()
	}
	if opts.FileExt == "" {
		opts.FileExt = "md"
	}
	return &Composer{opts: opts}
}

// ParseCreatedTime parses a Graph API timestamp.
func ParseCreatedTime(s string) (time.Time, error) {
	for _, layout := range createdTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.WrapWithCode(errs.ErrInvalidInput, errs.CodeParse, fmt.Sprintf("unrecognised created_time %q", s))
}

// Compose builds the document for post. images must already be deduplicated;
// the first one becomes the cover and the rest the gallery.
func (c *Composer) Compose(post domain.Post, images []string) (Document, error) {
	created, err := ParseCreatedTime(post.CreatedTime)
	if err != nil {
		return Document{}, err
	}
	if c.opts.Location != nil {
		created = created.In(c.opts.Location)
	}

	cover, gallery := SplitCover(images, c.opts.DefaultCover)

	body := post.Message
	if body == "" {
		body = "(" + c.opts.Translator.Text(locales.MsgEmptyPostBody) + ")"
	}

	return Document{
		PostID:   post.ID,
		FileName: c.FileName(created),
		FrontMatter: FrontMatter{
			Layout:      c.opts.Layout,
			Title:       fmt.Sprintf("%s - %s", c.opts.Translator.Text(locales.MsgPostTitle), formatter.TitleDate(created)),
			Date:        created.Format(dateLayout),
			Categories:  []string{c.opts.Category},
			Image:       cover,
			FBURL:       post.PermalinkURL,
			DisplayDate: formatter.DisplayDate(created),
			Gallery:     gallery,
		},
		Body:      body,
		LinkLabel: c.opts.Translator.Text(locales.MsgViewOnFacebook),
	}, nil
}

// FileName is keyed by minute, so two posts in the same minute share a file.
func (c *Composer) FileName(created time.Time) string {
	name := created.Format(fileDateLayout)
	if c.opts.FileSuffix != "" {
		name += "-" + c.opts.FileSuffix
	}
	return name + "." + c.opts.FileExt
}

// SplitCover picks the cover image and the gallery. The gallery never repeats
// the cover and is nil unless there are at least two images.
func SplitCover(images []string, defaultCover string) (string, []string) {
	switch len(images) {
	case 0:
		return defaultCover, nil
	case 1:
		return images[0], nil
	}
	gallery := make([]string, len(images)-1)
	copy(gallery, images[1:])
	return images[0], gallery
}

// Render serializes the document to its file contents.
func Render(doc Document) ([]byte, error) {
	var fm bytes.Buffer
	enc := yaml.NewEncoder(&fm)
	enc.SetIndent(2)
	if err := enc.Encode(doc.FrontMatter); err != nil {
		return nil, errs.Wrap(err, "marshal front matter")
	}
	if err := enc.Close(); err != nil {
		return nil, errs.Wrap(err, "marshal front matter")
	}

	var buf bytes.Buffer
	err := documentTemplate.Execute(&buf, struct {
		FrontMatter string
		Body        string
		Permalink   string
		LinkLabel   string
	}{
		FrontMatter: fm.String(),
		Body:        doc.Body,
		Permalink:   doc.FrontMatter.FBURL,
		LinkLabel:   doc.LinkLabel,
	})
	if err != nil {
		return nil, errs.Wrap(err, "render document")
	}
	return buf.Bytes(), nil
}

// Write renders doc into dir, replacing any file of the same name, and
// returns the written path.
func Write(dir string, doc Document) (string, error) {
	content, err := Render(doc)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errs.WrapWithCode(err, errs.CodeWriteFile, "create output directory")
	}

	path := filepath.Join(dir, doc.FileName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", errs.WrapWithCode(err, errs.CodeWriteFile, "write "+doc.FileName)
	}
	return path, nil
}

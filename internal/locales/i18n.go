package locales

import (
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const (
	MsgPostTitle      = "PostTitle"
	MsgEmptyPostBody  = "EmptyPostBody"
	MsgViewOnFacebook = "ViewOnFacebook"
)

// Separator joins the renderings of a message in multiple languages.
const Separator = " / "

var slovak = []*i18n.Message{
	{ID: MsgPostTitle, Other: "Príspevok"},
	{ID: MsgEmptyPostBody, Other: "Tento príspevok neobsahuje text, iba obrázky alebo iné médiá."},
	{ID: MsgViewOnFacebook, Other: "Zobraziť na Facebooku"},
}

var hungarian = []*i18n.Message{
	{ID: MsgPostTitle, Other: "Bejegyzés"},
	{ID: MsgEmptyPostBody, Other: "Ez a bejegyzés nem tartalmaz szöveget, csak képeket vagy más médiát."},
	{ID: MsgViewOnFacebook, Other: "Megtekintés a Facebookon"},
}

var english = []*i18n.Message{
	{ID: MsgPostTitle, Other: "Post"},
	{ID: MsgEmptyPostBody, Other: "This post has no text, only images or other media."},
	{ID: MsgViewOnFacebook, Other: "View on Facebook"},
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.Slovak)
	_ = bundle.AddMessages(language.Slovak, slovak...)
	_ = bundle.AddMessages(language.Hungarian, hungarian...)
	_ = bundle.AddMessages(language.English, english...)
	return bundle
}

// Translator renders every message once per configured language.
type Translator struct {
	localizers []*i18n.Localizer
}

// New builds a Translator for the given language tags, in order. With no tags
// it falls back to Slovak.
func New(langs ...string) *Translator {
	if len(langs) == 0 {
		langs = []string{language.Slovak.String()}
	}

	bundle := newBundle()
	t := &Translator{}
	for _, lang := range langs {
		t.localizers = append(t.localizers, i18n.NewLocalizer(bundle, lang))
	}
	return t
}

// Text returns the message in all languages joined by Separator. Languages
// that resolve to the same text are only included once.
func (t *Translator) Text(id string) string {
	parts := make([]string, 0, len(t.localizers))
	for _, loc := range t.localizers {
		s, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
		if err != nil || s == "" || contains(parts, s) {
			continue
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return id
	}
	return strings.Join(parts, Separator)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

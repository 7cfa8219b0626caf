// Package i18n provides localized console and error messages.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// supported lists the catalog languages; the first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.Turkish,
}

var (
	matcher = language.NewMatcher(supported)
	cat     = newCatalog()
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range messages {
		for key, msg := range msgs {
			// Keys and messages are static; SetString only fails on
			// malformed input.
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Localizer formats message keys for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for lang, a language code such as "tr" or a full
// locale tag. Unsupported languages fall back to English.
func New(lang string) *Localizer {
	tag := supported[0]
	if t, err := language.Parse(lang); err == nil {
		_, idx, conf := matcher.Match(t)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Language returns the base language the Localizer renders.
func (l *Localizer) Language() string {
	base, _ := l.tag.Base()
	return base.String()
}

// Text returns the message for key formatted with args. Unknown keys are
// returned as-is.
func (l *Localizer) Text(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

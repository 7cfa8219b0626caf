// Package normalize canonicalizes the strings Fontship derives from user
// input: project names, font version strings and locale tags. All functions
// are pure and idempotent.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLocale is the BCP-47 locale used when nothing else is configured.
const DefaultLocale = "en-US"

// Language folds a locale tag such as "en-US" or "fr_FR.UTF-8" to its bare
// lowercase language subtag. The POSIX "C" locale maps to "en".
func Language(tag string) string {
	lang := strings.ToLower(tag)
	if i := strings.IndexAny(lang, "-_."); i >= 0 {
		lang = lang[:i]
	}
	if lang == "c" {
		return "en"
	}
	return lang
}

// LanguageOr is Language with a fallback: an empty result is replaced by the
// folded form of fallback, and then of DefaultLocale.
func LanguageOr(tag, fallback string) string {
	for _, t := range []string{tag, fallback, DefaultLocale} {
		if lang := Language(t); lang != "" {
			return lang
		}
	}
	return "en"
}

// ProjectName turns free text into a single PascalCase token: "my-font_name"
// becomes "MyFontName". Hyphens, underscores and whitespace separate words, as
// does an upper case letter following a lower case letter or digit, so an
// already canonical name is returned unchanged.
func ProjectName(input string) string {
	// A Caser keeps state and must not be shared between goroutines.
	title := cases.Title(language.English)

	var b strings.Builder
	for _, word := range splitWords(input) {
		b.WriteString(title.String(word))
	}
	return b.String()
}

func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev), unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// end of an acronym: "HTTPServer" -> "HTTP", "Server"
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// FontVersion strips a packaging revision suffix ("-r" and everything after
// it) from a font version string: "1.002-r3" becomes "1.002".
func FontVersion(version string) string {
	if i := strings.Index(version, "-r"); i >= 0 {
		return version[:i]
	}
	return version
}

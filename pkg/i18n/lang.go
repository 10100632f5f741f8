package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the header parsed per request.
const maxAcceptLanguageLength = 4096

func supported(translations map[string]map[string]any, defaultLang string) []string {
	langs := make([]string, 0, len(translations))
	for lang := range translations {
		if lang != defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	// The matcher falls back to its first tag.
	return append([]string{defaultLang}, langs...)
}

func newMatcher(langs []string) language.Matcher {
	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tags = append(tags, language.Make(l))
	}
	return language.NewMatcher(tags)
}

// NegotiateLanguage returns the supported language that best matches an
// Accept-Language header, or fallback when nothing matches.
func NegotiateLanguage(acceptLanguage string, supportedLangs []string, fallback string) string {
	if len(supportedLangs) == 0 {
		return fallback
	}
	return negotiate(newMatcher(supportedLangs), supportedLangs, acceptLanguage, fallback)
}

func negotiate(m language.Matcher, langs []string, header, fallback string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := m.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return langs[idx]
}

func match(m language.Matcher, langs []string, lang string) string {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return ""
	}
	_, idx, conf := m.Match(tag)
	if conf == language.No {
		return ""
	}
	return langs[idx]
}

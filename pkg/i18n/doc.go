// Package i18n loads message catalogs and translates dot-separated keys with
// %{name} placeholder substitution.
//
// Catalogs come from a TranslationAdapter: MapAdapter for in-memory data and
// FSAdapter for a directory of files in an fs.FS (usually embed.FS), parsed by
// YAMLParser. Language negotiation uses golang.org/x/text/language, so regional
// variants ("es-MX") resolve to the closest loaded language ("es").
//
//	//go:embed locales/*.yaml
//	var locales embed.FS
//
//	tr, err := i18n.NewTranslator(ctx,
//	    i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
//	    i18n.WithDefaultLanguage("en"),
//	)
//
//	r.Use(i18n.Middleware(tr))
//	msg := tr.Tc(r.Context(), "fizzbuzz.stop_at_least", "min", "15")
//
// Td takes an explicit default template, which is how callers with built-in
// English texts use the translator.
package i18n

package fizzbuzz

import "embed"

// Locales holds the module's message catalogs, one YAML file per language.
//
//go:embed locales/*.yaml
var Locales embed.FS

// LocalesDir is the directory of the catalogs inside Locales.
const LocalesDir = "locales"

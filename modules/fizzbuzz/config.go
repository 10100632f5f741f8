package fizzbuzz

// Config holds the web form settings.
type Config struct {
	// MaxLines caps the rendered sequence; larger Stop values are truncated.
	MaxLines int `env:"FIZZBUZZ_MAX_LINES" envDefault:"100"`

	// Defaults used when the page is opened without query values.
	DefaultFizz int `env:"FIZZBUZZ_DEFAULT_FIZZ" envDefault:"3"`
	DefaultBuzz int `env:"FIZZBUZZ_DEFAULT_BUZZ" envDefault:"5"`
	DefaultStop int `env:"FIZZBUZZ_DEFAULT_STOP" envDefault:"100"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{MaxLines: 100, DefaultFizz: 3, DefaultBuzz: 5, DefaultStop: 100}
}

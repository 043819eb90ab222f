package config

// Config is the complete lydio configuration
type Config struct {
	Output  Output  `koanf:"output"`
	Preview Preview `koanf:"preview"`
}

// Output controls how built stylesheets are emitted
type Output struct {
	Format    string `koanf:"format"`
	Newline   bool   `koanf:"newline"`
	Overwrite bool   `koanf:"overwrite"`
}

// Preview controls terminal rendering
type Preview struct {
	Style string `koanf:"style"`
	Width int    `koanf:"width"`
}

// Default returns the configuration described by the embedded defaults
func Default() *Config {
	return &Config{
		Output: Output{
			Format:    "auto",
			Newline:   true,
			Overwrite: true,
		},
		Preview: Preview{
			Style: "auto",
		},
	}
}

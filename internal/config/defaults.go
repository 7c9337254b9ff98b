package config

import "github.com/mrz1836/rcli/internal/constants"

// DefaultConfig returns a new Config with the built-in defaults.
// These match the values registered by setDefaults.
func DefaultConfig() *Config {
	return &Config{
		Text: TextConfig{
			Format: constants.DefaultTextFormat,
			KeyDir: ".",
		},
		GenPass: GenPassConfig{
			Length:    constants.DefaultPasswordLength,
			Uppercase: true,
			Lowercase: true,
			Number:    true,
			Symbol:    true,
		},
		Base64: Base64Config{
			Format: constants.Base64Standard,
		},
		CSV: CSVConfig{
			Format:    constants.CSVFormatJSON,
			Delimiter: ',',
			Header:    true,
		},
	}
}

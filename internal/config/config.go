// Package config provides configuration management for rcli with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (applied by the command that owns them)
//  2. Environment variables (RCLI_* prefix)
//  3. Project config (.rcli/config.yaml)
//  4. Global config (~/.rcli/config.yaml)
//  5. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "encoding/json"

// Config is the root configuration structure for rcli.
type Config struct {
	// Text contains settings for text signing and key generation.
	Text TextConfig `yaml:"text" json:"text" mapstructure:"text"`

	// GenPass contains settings for password generation.
	GenPass GenPassConfig `yaml:"genpass" json:"genpass" mapstructure:"genpass"`

	// Base64 contains settings for base64 transcoding.
	Base64 Base64Config `yaml:"base64" json:"base64" mapstructure:"base64"`

	// CSV contains settings for CSV conversion.
	CSV CSVConfig `yaml:"csv" json:"csv" mapstructure:"csv"`
}

// TextConfig contains settings for text sign, verify, and generate.
type TextConfig struct {
	// Format is the default algorithm, "blake3" or "ed25519".
	// Default: "blake3"
	Format string `yaml:"format" json:"format" mapstructure:"format"`

	// KeyDir is where `text generate` writes key files.
	// Default: "." (current directory)
	KeyDir string `yaml:"key_dir" json:"key_dir" mapstructure:"key_dir"`
}

// GenPassConfig contains password generation defaults.
type GenPassConfig struct {
	// Length is the password length. Valid range: 1-255.
	// Default: 16
	Length int `yaml:"length" json:"length" mapstructure:"length"`

	Uppercase bool `yaml:"uppercase" json:"uppercase" mapstructure:"uppercase"`
	Lowercase bool `yaml:"lowercase" json:"lowercase" mapstructure:"lowercase"`
	Number    bool `yaml:"number" json:"number" mapstructure:"number"`
	Symbol    bool `yaml:"symbol" json:"symbol" mapstructure:"symbol"`
}

// Base64Config contains base64 transcoding defaults.
type Base64Config struct {
	// Format is "standard" or "urlsafe".
	// Default: "standard"
	Format string `yaml:"format" json:"format" mapstructure:"format"`
}

// CSVConfig contains CSV conversion defaults.
type CSVConfig struct {
	// Format is the output format, "json" or "yaml".
	// Default: "json"
	Format string `yaml:"format" json:"format" mapstructure:"format"`

	// Delimiter separates input fields.
	// Default: ','
	Delimiter Delimiter `yaml:"delimiter" json:"delimiter" mapstructure:"delimiter"`

	// Header treats the first row as field names.
	// Default: true
	Header bool `yaml:"header" json:"header" mapstructure:"header"`
}

// Delimiter is a single field separator character.
// It is written to and read from config files as a one-character string.
type Delimiter rune

// String returns the delimiter as a one-character string.
func (d Delimiter) String() string {
	return string(rune(d))
}

// MarshalYAML implements yaml.Marshaler.
func (d Delimiter) MarshalYAML() (any, error) {
	return d.String(), nil
}

// MarshalJSON writes the delimiter as a one-character JSON string.
func (d Delimiter) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

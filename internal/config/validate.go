package config

import (
	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - text.format must be "blake3" or "ed25519"
//   - genpass.length must be between 1 and 255
//   - base64.format must be "standard" or "urlsafe"
//   - csv.format must be "json" or "yaml"
//   - csv.delimiter must not be a quote or line break
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateTextConfig(&cfg.Text); err != nil {
		return err
	}
	if err := validateGenPassConfig(&cfg.GenPass); err != nil {
		return err
	}
	if err := validateBase64Config(&cfg.Base64); err != nil {
		return err
	}
	return validateCSVConfig(&cfg.CSV)
}

func validateTextConfig(cfg *TextConfig) error {
	switch cfg.Format {
	case constants.FormatBlake3, constants.FormatEd25519:
	default:
		return errors.Wrapf(errors.ErrConfigInvalidText,
			"text.format must be %q or %q, got %q", constants.FormatBlake3, constants.FormatEd25519, cfg.Format)
	}

	if cfg.KeyDir == "" {
		return errors.Wrap(errors.ErrConfigInvalidText, "text.key_dir must not be empty")
	}
	return nil
}

func validateGenPassConfig(cfg *GenPassConfig) error {
	if cfg.Length < 1 || cfg.Length > constants.MaxPasswordLength {
		return errors.Wrapf(errors.ErrConfigInvalidGenPass,
			"genpass.length must be between 1 and %d, got %d", constants.MaxPasswordLength, cfg.Length)
	}
	return nil
}

func validateBase64Config(cfg *Base64Config) error {
	switch cfg.Format {
	case constants.Base64Standard, constants.Base64URLSafe:
		return nil
	default:
		return errors.Wrapf(errors.ErrConfigInvalidBase64,
			"base64.format must be %q or %q, got %q", constants.Base64Standard, constants.Base64URLSafe, cfg.Format)
	}
}

func validateCSVConfig(cfg *CSVConfig) error {
	switch cfg.Format {
	case constants.CSVFormatJSON, constants.CSVFormatYAML:
	default:
		return errors.Wrapf(errors.ErrConfigInvalidCSV,
			"csv.format must be %q or %q, got %q", constants.CSVFormatJSON, constants.CSVFormatYAML, cfg.Format)
	}

	switch cfg.Delimiter {
	case 0, '"', '\r', '\n':
		return errors.Wrapf(errors.ErrConfigInvalidCSV,
			"csv.delimiter %q is not allowed", cfg.Delimiter.String())
	}
	return nil
}

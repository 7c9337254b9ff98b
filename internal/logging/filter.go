// Package logging provides logging utilities including sensitive data filtering.
// It keeps key material and generated passwords out of log files.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

// sensitivePatterns matches secrets that may leak into free-form log text.
var sensitivePatterns = []*regexp.Regexp{ //nolint:gochecknoglobals // Package-level patterns for reuse
	// Assignments of key material (key=..., seed: ..., signing_key=...)
	regexp.MustCompile(`(?i)\b(key|seed|signing[_-]?key|private[_-]?key|shared[_-]?key)\s*[:=]\s*["']?[^\s"']{8,}["']?`),

	// Passwords and generic secrets
	regexp.MustCompile(`(?i)(secret|password|passwd|passphrase|pwd)\s*[:=]\s*["']?[^\s"']{8,}["']?`),

	// PEM private key blocks
	regexp.MustCompile(`(?i)-----BEGIN[A-Z\s]+PRIVATE KEY-----`),

	// Hex-encoded 32 or 64 byte keys
	regexp.MustCompile(`\b[0-9a-fA-F]{64}(?:[0-9a-fA-F]{64})?\b`),
}

// sensitiveFieldNames contains field names whose values are always redacted.
// Matching is case-insensitive and by substring.
var sensitiveFieldNames = []string{ //nolint:gochecknoglobals // Package-level patterns for reuse
	"password",
	"passwd",
	"passphrase",
	"secret",
	"seed",
	"private_key",
	"privatekey",
	"private-key",
	"signing_key",
	"signingkey",
	"shared_key",
	"key_material",
	"key_bytes",
}

// SensitiveDataHook is a zerolog hook that flags log entries whose message
// contains sensitive data. zerolog does not allow a hook to rewrite the
// message, so FilteringWriter does the actual redaction.
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a new SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements the zerolog.Hook interface.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData reports whether s matches any sensitive pattern.
func ContainsSensitiveData(s string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every sensitive match in value with [REDACTED].
func FilterSensitiveValue(value string) string {
	result := value
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedValue)
	}
	return result
}

// IsSensitiveFieldName reports whether fieldName indicates sensitive data.
func IsSensitiveFieldName(fieldName string) bool {
	lowerName := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFieldNames {
		if strings.Contains(lowerName, sensitive) {
			return true
		}
	}
	return false
}

// SafeValue returns [REDACTED] for sensitive field names and the filtered
// value otherwise.
//
//	log.Debug().Str("path", logging.SafeValue("path", p)).Msg("loaded key")
func SafeValue(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter wraps an io.Writer and redacts sensitive data from output.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter creates a new FilteringWriter that wraps w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer. It reports len(p) on success so callers never
// see a short write when redaction changes the length.
func (fw *FilteringWriter) Write(p []byte) (int, error) {
	if _, err := fw.w.Write([]byte(FilterSensitiveValue(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Package csvconv converts CSV records into JSON or YAML documents.
package csvconv

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Options controls a conversion.
type Options struct {
	// Format is "json" or "yaml".
	Format string

	// Delimiter separates fields. Zero means a comma.
	Delimiter rune

	// Header treats the first row as field names. Without it every row is
	// data and fields are named field1..fieldN.
	Header bool
}

// Formats returns the accepted output formats.
func Formats() []string {
	return []string{constants.CSVFormatJSON, constants.CSVFormatYAML}
}

// ValidateFormat fails with errors.ErrInvalidArgument for unknown formats.
func ValidateFormat(format string) error {
	switch format {
	case constants.CSVFormatJSON, constants.CSVFormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: csv output format %q must be one of %v", errors.ErrInvalidArgument, format, Formats())
	}
}

// DefaultOutput returns the output file name used when none is given.
func DefaultOutput(format string) string {
	return "output." + format
}

// ParseDelimiter turns a one-character flag value into a rune.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: delimiter must be a single character, got %q", errors.ErrInvalidArgument, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Records reads all rows of r as field-name to value maps.
func Records(r io.Reader, opts Options) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrCSVParse, err)
	}

	var names []string
	if opts.Header && len(rows) > 0 {
		names = rows[0]
		rows = rows[1:]
	}

	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]string, len(row))
		for i, v := range row {
			rec[fieldName(names, i)] = v
		}
		out = append(out, rec)
	}
	return out, nil
}

func fieldName(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return "field" + strconv.Itoa(i+1)
}

// Convert reads CSV from r and writes the records to w in opts.Format.
// It returns the number of records written.
func Convert(r io.Reader, w io.Writer, opts Options) (int, error) {
	if err := ValidateFormat(opts.Format); err != nil {
		return 0, err
	}
	records, err := Records(r, opts)
	if err != nil {
		return 0, err
	}

	switch opts.Format {
	case constants.CSVFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return 0, errors.Wrap(err, "failed to encode yaml")
		}
		if err := enc.Close(); err != nil {
			return 0, errors.Wrap(err, "failed to encode yaml")
		}
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return 0, errors.Wrap(err, "failed to encode json")
		}
	}
	return len(records), nil
}

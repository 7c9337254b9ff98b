// Package source resolves input designators to byte streams.
// The designator "-" means standard input; anything else must name an existing file.
package source

import (
	"fmt"
	"io"
	"os"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Stdin is the reader used for the "-" designator. Tests may replace it.
//
//nolint:gochecknoglobals // test injection point
var Stdin io.Reader = os.Stdin

// IsStdin reports whether designator refers to standard input.
func IsStdin(designator string) bool {
	return designator == constants.StdinDesignator
}

// ValidateInput accepts "-" or a path to an existing regular file.
func ValidateInput(designator string) error {
	if IsStdin(designator) {
		return nil
	}
	if designator == "" {
		return fmt.Errorf("%w: empty path", errors.ErrFileNotFound)
	}
	info, err := os.Stat(designator)
	if err != nil {
		return fmt.Errorf("%w: %s", errors.ErrFileNotFound, designator)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", errors.ErrFileNotFound, designator)
	}
	return nil
}

// Open returns a reader for designator. Closing the returned reader never
// closes standard input.
func Open(designator string) (io.ReadCloser, error) {
	if err := ValidateInput(designator); err != nil {
		return nil, err
	}
	if IsStdin(designator) {
		return io.NopCloser(Stdin), nil
	}
	f, err := os.Open(designator) //#nosec G304 -- user-supplied input path is the point
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", designator)
	}
	return f, nil
}

// ReadAll reads the entire stream named by designator.
func ReadAll(designator string) ([]byte, error) {
	rc, err := Open(designator)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", designator)
	}
	return data, nil
}

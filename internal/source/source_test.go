package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
)

func withStdin(t *testing.T, content string) {
	t.Helper()
	orig := Stdin
	Stdin = strings.NewReader(content)
	t.Cleanup(func() { Stdin = orig })
}

func TestValidateInput(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o600))

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"stdin", "-", false},
		{"existing file", file, false},
		{"missing file", filepath.Join(dir, "missing.txt"), true},
		{"directory", dir, true},
		{"empty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateInput(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, errors.ErrFileNotFound)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReadAll_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "key.txt")
	require.NoError(t, os.WriteFile(file, []byte("secret bytes\n"), 0o600))

	data, err := ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "secret bytes\n", string(data))
}

func TestReadAll_Stdin(t *testing.T) {
	withStdin(t, "from stdin")

	data, err := ReadAll("-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, errors.ErrFileNotFound)
}

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/rcli/internal/errors"
)

const playersCSV = "name,age\nAda,36\nLinus,54\n"

func TestCSVCmd_DefaultOutput(t *testing.T) {
	dir := isolateCLI(t)
	in := writeFile(t, dir, "players.csv", playersCSV)

	stdout, _, err := runCLI(t, "csv", "-i", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "converted 2 records")

	data, err := os.ReadFile(filepath.Join(dir, "output.json")) //#nosec G304 -- test file
	require.NoError(t, err)
	var rows []map[string]string
	require.NoError(t, json.Unmarshal(data, &rows))
	assert.Equal(t, []map[string]string{
		{"name": "Ada", "age": "36"},
		{"name": "Linus", "age": "54"},
	}, rows)
}

func TestCSVCmd_YAMLWithoutHeader(t *testing.T) {
	dir := isolateCLI(t)
	in := writeFile(t, dir, "data.tsv", "a\tb\nc\td\n")
	out := filepath.Join(dir, "rows.yaml")

	_, _, err := runCLI(t, "csv", "-i", in, "-O", out, "--format", "yaml", "-d", `\t`, "--header=false")
	require.NoError(t, err)

	data, err := os.ReadFile(out) //#nosec G304 -- test file
	require.NoError(t, err)
	var rows []map[string]string
	require.NoError(t, yaml.Unmarshal(data, &rows))
	assert.Equal(t, []map[string]string{
		{"field1": "a", "field2": "b"},
		{"field1": "c", "field2": "d"},
	}, rows)
}

func TestCSVCmd_ConfigDefaults(t *testing.T) {
	dir := isolateCLI(t)
	t.Setenv("RCLI_CSV_FORMAT", "yaml")
	t.Setenv("RCLI_CSV_DELIMITER", ";")
	in := writeFile(t, dir, "semi.csv", "k;v\nx;1\n")

	stdout, _, err := runCLI(t, "-o", "json", "csv", "-i", in)
	require.NoError(t, err)

	var result csvResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, "yaml", result.Format)
	assert.Equal(t, "output.yaml", result.Output)
	assert.Equal(t, 1, result.Records)
	assert.FileExists(t, filepath.Join(dir, "output.yaml"))
}

func TestCSVCmd_Errors(t *testing.T) {
	dir := isolateCLI(t)
	in := writeFile(t, dir, "bad.csv", "a,b\n\"unterminated\n")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown format", []string{"csv", "-i", in, "--format", "xml"}, errors.ErrInvalidArgument},
		{"multi-character delimiter", []string{"csv", "-i", in, "-d", "::"}, errors.ErrInvalidArgument},
		{"missing file", []string{"csv", "-i", filepath.Join(dir, "nope.csv")}, errors.ErrFileNotFound},
		{"malformed csv", []string{"csv", "-i", in}, errors.ErrCSVParse},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runCLI(t, tc.args...)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
		})
	}
}

func TestCSVCmd_WarnsOnOverwrite(t *testing.T) {
	dir := isolateCLI(t)
	in := writeFile(t, dir, "players.csv", playersCSV)
	writeFile(t, dir, "output.json", "stale")

	_, stderr, err := runCLI(t, "csv", "-i", in)
	require.NoError(t, err)
	assert.Contains(t, stderr, "overwriting output.json")

	data, err := os.ReadFile(filepath.Join(dir, "output.json")) //#nosec G304 -- test file
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
)

func TestGenPassCmd_Defaults(t *testing.T) {
	isolateCLI(t)

	stdout, stderr, err := runCLI(t, "genpass")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(stdout), 16)
	assert.Contains(t, stderr, "Password strength")
}

func TestGenPassCmd_FlagsOverrideConfig(t *testing.T) {
	isolateCLI(t)
	t.Setenv("RCLI_GENPASS_LENGTH", "40")

	stdout, _, err := runCLI(t, "genpass", "--length", "8", "--uppercase=false", "--lowercase=false", "--symbol=false")
	require.NoError(t, err)

	pw := strings.TrimSpace(stdout)
	require.Len(t, pw, 8)
	assert.Empty(t, strings.Trim(pw, "123456789"), "only digits expected, got %q", pw)
}

func TestGenPassCmd_LengthFromConfig(t *testing.T) {
	isolateCLI(t)
	t.Setenv("RCLI_GENPASS_LENGTH", "40")

	stdout, _, err := runCLI(t, "genpass")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(stdout), 40)
}

func TestGenPassCmd_QuietHidesStrength(t *testing.T) {
	isolateCLI(t)

	_, stderr, err := runCLI(t, "genpass", "-q")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestGenPassCmd_JSON(t *testing.T) {
	isolateCLI(t)

	stdout, _, err := runCLI(t, "-o", "json", "genpass", "-l", "20")
	require.NoError(t, err)

	var result genPassResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Len(t, result.Password, 20)
	assert.GreaterOrEqual(t, result.Strength, 0)
	assert.LessOrEqual(t, result.Strength, 4)
}

func TestGenPassCmd_NoClasses(t *testing.T) {
	isolateCLI(t)

	_, _, err := runCLI(t, "genpass", "--uppercase=false", "--lowercase=false", "--number=false", "--symbol=false")
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

package cli

import (
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// formRunner is an interface that matches huh.Form's Run method.
type formRunner interface {
	Run() error
}

// terminalCheck reports whether stdin is interactive. Tests override it.
//
//nolint:gochecknoglobals // Required for test injection of terminal detection
var terminalCheck = isTerminal

// isTerminal returns true if stdin is a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// createOverwriteConfirmForm builds the overwrite confirmation form.
// Tests override it to inject answers.
//
//nolint:gochecknoglobals // Test injection point - standard Go testing pattern
var createOverwriteConfirmForm = defaultCreateOverwriteConfirmForm

func defaultCreateOverwriteConfirmForm(title, description string, confirm *bool) formRunner {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes, overwrite").
				Negative("No, cancel").
				Value(confirm),
		),
	)
}

// confirmOverwrite asks the user whether to replace existing files.
func confirmOverwrite(title, description string) (bool, error) {
	var confirm bool
	form := createOverwriteConfirmForm(title, description, &confirm)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirm, nil
}

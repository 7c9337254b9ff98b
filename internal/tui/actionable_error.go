package tui

// ActionableError wraps an error message with a suggested next step.
//
//	err := NewActionableError("key file is too short", "Run: rcli text generate")
//	output.Error(err)
//	// ✗ key file is too short
//	//   ▸ Try: Run: rcli text generate
type ActionableError struct {
	// Message is the primary error message.
	Message string

	// Suggestion is guidance for resolving the error. Empty means none.
	Suggestion string

	// Context is optional detail appended to the message in parentheses.
	Context string

	cause error
}

// NewActionableError creates a new ActionableError with message and suggestion.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{
		Message:    msg,
		Suggestion: suggestion,
	}
}

// Error implements the error interface.
func (e *ActionableError) Error() string {
	if e.Context != "" {
		return e.Message + " (" + e.Context + ")"
	}
	return e.Message
}

// Unwrap returns the error passed to WithCause, if any.
func (e *ActionableError) Unwrap() error {
	return e.cause
}

// WithContext adds optional context to the error and returns it.
func (e *ActionableError) WithContext(ctx string) *ActionableError {
	e.Context = ctx
	return e
}

// WithCause records the underlying error so errors.Is keeps working.
func (e *ActionableError) WithCause(err error) *ActionableError {
	e.cause = err
	return e
}

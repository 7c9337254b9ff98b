package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Keys & Tags
	// ===================
	{
		err: ErrKeyFormat,
		info: ErrorInfo{
			Message: "The key file is too short for the selected algorithm.",
			Action:  "Keys must be at least 32 bytes. Run 'rcli text generate' to create a new key.",
		},
	},
	{
		err: ErrInvalidKey,
		info: ErrorInfo{
			Message: "The key is not a valid key for the selected algorithm.",
			Action:  "Check that you passed the public key (ed25519.pk) and the matching --format.",
		},
	},
	{
		err: ErrSignatureFormat,
		info: ErrorInfo{
			Message: "The signature has the wrong length for the selected algorithm.",
			Action:  "Verify with the same --format that was used to sign.",
		},
	},
	{
		err: ErrTagDecode,
		info: ErrorInfo{
			Message: "The signature is not valid URL-safe base64.",
			Action:  "Pass the signature exactly as printed by 'rcli text sign'.",
		},
	},
	{
		err: ErrGeneration,
		info: ErrorInfo{
			Message: "The system random source is unavailable.",
			Action:  "",
		},
	},
	{
		err: ErrUnsupportedAlgorithm,
		info: ErrorInfo{
			Message: "Unknown signing algorithm.",
			Action:  "Use --format blake3 or --format ed25519.",
		},
	},
	{
		err: ErrVerificationFailed,
		info: ErrorInfo{
			Message: "The signature does not match the input.",
			Action:  "",
		},
	},
	{
		err: ErrOperationCanceled,
		info: ErrorInfo{
			Message: "Interrupted before the operation started.",
			Action:  "",
		},
	},
	{
		err: ErrKeyExists,
		info: ErrorInfo{
			Message: "A key file already exists in the output directory.",
			Action:  "Choose another --dir or pass --force to overwrite it.",
		},
	},

	// ===================
	// Input
	// ===================
	{
		err: ErrFileNotFound,
		info: ErrorInfo{
			Message: "The input file does not exist.",
			Action:  "Check the path, or pass '-' to read from standard input.",
		},
	},
	{
		err: ErrBase64Decode,
		info: ErrorInfo{
			Message: "The input is not valid base64 for the selected alphabet.",
			Action:  "Check the --format flag (standard or urlsafe).",
		},
	},
	{
		err: ErrCSVParse,
		info: ErrorInfo{
			Message: "The CSV input could not be parsed.",
			Action:  "Check the delimiter and that every row has the same number of fields.",
		},
	},
	{
		err: ErrNonInteractiveMode,
		info: ErrorInfo{
			Message: "Confirmation is required but no terminal is attached.",
			Action:  "Re-run with --force.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that have no clear action, the action string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}

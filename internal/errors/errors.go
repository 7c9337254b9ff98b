// Package errors provides centralized error handling for rcli.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for signing and verification.
// A tag that simply does not match is not an error; these cover cases where
// verification could not be attempted at all.
var (
	// ErrKeyFormat indicates that the supplied key material is shorter than
	// the algorithm requires.
	ErrKeyFormat = errors.New("invalid key format")

	// ErrInvalidKey indicates that the key has the right length but is not a
	// valid cryptographic key (for example, not a point on the curve).
	ErrInvalidKey = errors.New("invalid key")

	// ErrSignatureFormat indicates that a decoded tag does not have the exact
	// length the algorithm requires.
	ErrSignatureFormat = errors.New("invalid signature format")

	// ErrTagDecode indicates that the tag text is not valid URL-safe base64.
	ErrTagDecode = errors.New("failed to decode signature")

	// ErrGeneration indicates that the entropy source failed during key or
	// password generation.
	ErrGeneration = errors.New("key generation failed")

	// ErrUnsupportedAlgorithm indicates an algorithm token or algorithm/operation
	// combination with no implementation.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrVerificationFailed indicates that verification ran to completion and the
	// tag did not match. The CLI returns it to produce a non-zero exit code.
	ErrVerificationFailed = errors.New("signature verification failed")

	// ErrKeyExists indicates an attempt to overwrite an existing key file.
	ErrKeyExists = errors.New("key file already exists")
)

// Sentinel errors for input handling and supporting commands.
var (
	// ErrFileNotFound indicates that an input designator is neither "-" nor an existing file.
	ErrFileNotFound = errors.New("file does not exist")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrBase64Decode indicates that base64 input could not be decoded.
	ErrBase64Decode = errors.New("failed to decode base64 input")

	// ErrCSVParse indicates malformed CSV input.
	ErrCSVParse = errors.New("failed to parse csv")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidText indicates an invalid text signing configuration value.
	ErrConfigInvalidText = errors.New("invalid text configuration")

	// ErrConfigInvalidGenPass indicates an invalid password generation configuration value.
	ErrConfigInvalidGenPass = errors.New("invalid genpass configuration")

	// ErrConfigInvalidBase64 indicates an invalid base64 configuration value.
	ErrConfigInvalidBase64 = errors.New("invalid base64 configuration")

	// ErrConfigInvalidCSV indicates an invalid CSV configuration value.
	ErrConfigInvalidCSV = errors.New("invalid csv configuration")

	// ErrNonInteractiveMode indicates that an operation requiring confirmation
	// was attempted in non-interactive mode without the force flag.
	ErrNonInteractiveMode = errors.New("use --force in non-interactive mode")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}

// IsInputError reports whether err means an operation could not be attempted
// because of malformed input, as opposed to a completed operation that failed.
func IsInputError(err error) bool {
	for _, sentinel := range []error{
		ErrKeyFormat,
		ErrInvalidKey,
		ErrSignatureFormat,
		ErrTagDecode,
		ErrUnsupportedAlgorithm,
		ErrFileNotFound,
		ErrInvalidArgument,
		ErrBase64Decode,
		ErrCSVParse,
		ErrInvalidOutputFormat,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

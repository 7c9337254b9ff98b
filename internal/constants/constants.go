// Package constants provides centralized constant values used throughout rcli.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Directory names used by rcli for organizing data.
const (
	// RcliHome is the hidden directory name where rcli stores its config and logs.
	// This directory is created in the user's home directory.
	RcliHome = ".rcli"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// HomeEnvVar overrides the rcli home directory when set.
	HomeEnvVar = "RCLI_HOME"

	// EnvPrefix is the prefix for all rcli environment variables.
	EnvPrefix = "RCLI"
)

// StdinDesignator is the input designator that maps to the process's standard input.
const StdinDesignator = "-"

// Algorithm tokens accepted on the command line and in config files.
const (
	// FormatBlake3 selects the BLAKE3 keyed hash.
	FormatBlake3 = "blake3"

	// FormatEd25519 selects Ed25519 signatures.
	FormatEd25519 = "ed25519"

	// DefaultTextFormat is the conventional default signing algorithm.
	DefaultTextFormat = FormatBlake3
)

// Key and tag sizes in bytes.
const (
	// KeySize is the key length shared by both algorithms.
	KeySize = 32

	// Blake3TagSize is the length of a BLAKE3 keyed-hash tag.
	Blake3TagSize = 32

	// Ed25519TagSize is the length of an Ed25519 signature.
	Ed25519TagSize = 64
)

// Key file names written by "rcli text generate".
const (
	// Blake3KeyFileName holds the shared BLAKE3 key.
	Blake3KeyFileName = "blake3.txt"

	// Ed25519SigningKeyFileName holds the Ed25519 private seed.
	Ed25519SigningKeyFileName = "ed25519.sk"

	// Ed25519VerifyingKeyFileName holds the Ed25519 public key.
	Ed25519VerifyingKeyFileName = "ed25519.pk"

	// KeyFilePerm is the permission used for generated key files.
	KeyFilePerm = 0o600

	// KeyDirPerm is the permission used when creating a key directory.
	KeyDirPerm = 0o700
)

// Password generation defaults.
const (
	// DefaultPasswordLength is the default generated password length.
	DefaultPasswordLength = 16

	// MaxPasswordLength bounds generated passwords.
	MaxPasswordLength = 255
)

// Base64 alphabets for the base64 subcommand.
const (
	// Base64Standard is the RFC 4648 standard alphabet with padding.
	Base64Standard = "standard"

	// Base64URLSafe is the RFC 4648 URL-safe alphabet with padding.
	Base64URLSafe = "urlsafe"
)

// CSV output formats.
const (
	// CSVFormatJSON writes pretty-printed JSON.
	CSVFormatJSON = "json"

	// CSVFormatYAML writes YAML.
	CSVFormatYAML = "yaml"
)

// Global output formats selected with --output.
const (
	// OutputText is the default human-readable output format.
	OutputText = "text"

	// OutputJSON is the machine-readable JSON output format.
	OutputJSON = "json"
)

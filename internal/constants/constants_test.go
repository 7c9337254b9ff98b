package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeConstants(t *testing.T) {
	t.Run("both algorithms use 32-byte keys", func(t *testing.T) {
		assert.Equal(t, 32, KeySize)
	})

	t.Run("tag sizes match the algorithms", func(t *testing.T) {
		assert.Equal(t, 32, Blake3TagSize)
		assert.Equal(t, 64, Ed25519TagSize)
	})
}

func TestFormatConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{"FormatBlake3", FormatBlake3, "blake3"},
		{"FormatEd25519", FormatEd25519, "ed25519"},
		{"DefaultTextFormat", DefaultTextFormat, "blake3"},
		{"Base64Standard", Base64Standard, "standard"},
		{"Base64URLSafe", Base64URLSafe, "urlsafe"},
		{"CSVFormatJSON", CSVFormatJSON, "json"},
		{"CSVFormatYAML", CSVFormatYAML, "yaml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.constant)
		})
	}
}

func TestKeyFileConstants(t *testing.T) {
	t.Run("key files are private to the owner", func(t *testing.T) {
		assert.Equal(t, 0o600, KeyFilePerm)
		assert.Equal(t, 0o700, KeyDirPerm)
	})

	t.Run("ed25519 key pair uses distinct file names", func(t *testing.T) {
		assert.NotEqual(t, Ed25519SigningKeyFileName, Ed25519VerifyingKeyFileName)
	})
}

func TestPasswordConstants(t *testing.T) {
	assert.LessOrEqual(t, DefaultPasswordLength, MaxPasswordLength)
	assert.GreaterOrEqual(t, DefaultPasswordLength, 4, "default must fit one char of every class")
}

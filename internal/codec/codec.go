// Package codec converts between raw bytes and their base64 text forms.
//
// Tags always use the URL-safe alphabet without padding. General purpose
// transcoding supports the standard and URL-safe alphabets with padding.
package codec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// EncodeTag renders a raw tag as URL-safe base64 without padding.
func EncodeTag(tag []byte) string {
	return base64.RawURLEncoding.EncodeToString(tag)
}

// DecodeTag parses tag text produced by EncodeTag.
// Surrounding whitespace is ignored. Any other byte outside the URL-safe
// alphabet, or non-zero trailing bits, fails with errors.ErrTagDecode, so
// each tag has exactly one accepted text form.
func DecodeTag(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexFunc(s, notURLSafe); i >= 0 {
		return nil, fmt.Errorf("%w: illegal character %q at offset %d", errors.ErrTagDecode, s[i], i)
	}
	raw, err := base64.RawURLEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrTagDecode, err)
	}
	return raw, nil
}

func notURLSafe(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		return false
	default:
		return true
	}
}

// Formats returns the accepted transcoding formats.
func Formats() []string {
	return []string{constants.Base64Standard, constants.Base64URLSafe}
}

func encodingFor(format string) (*base64.Encoding, error) {
	switch format {
	case constants.Base64Standard:
		return base64.StdEncoding, nil
	case constants.Base64URLSafe:
		return base64.URLEncoding, nil
	default:
		return nil, fmt.Errorf("%w: base64 format %q must be one of %v", errors.ErrInvalidArgument, format, Formats())
	}
}

// Encode returns data as padded base64 in the given format.
func Encode(data []byte, format string) (string, error) {
	enc, err := encodingFor(format)
	if err != nil {
		return "", err
	}
	return enc.EncodeToString(data), nil
}

// Decode parses padded base64 text in the given format, ignoring surrounding whitespace.
func Decode(text []byte, format string) ([]byte, error) {
	enc, err := encodingFor(format)
	if err != nil {
		return nil, err
	}
	out, err := enc.DecodeString(strings.TrimSpace(string(text)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrBase64Decode, err)
	}
	return out, nil
}

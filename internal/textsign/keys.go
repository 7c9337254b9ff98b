package textsign

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
)

// KeyFileNames returns the file names generated keys are written to, in the
// order Generate returns them.
func KeyFileNames(alg crypto.Algorithm) ([]string, error) {
	switch alg {
	case crypto.AlgorithmBlake3:
		return []string{constants.Blake3KeyFileName}, nil
	case crypto.AlgorithmEd25519:
		return []string{constants.Ed25519SigningKeyFileName, constants.Ed25519VerifyingKeyFileName}, nil
	default:
		return nil, unsupported(alg)
	}
}

// KeyPaths joins KeyFileNames with dir.
func KeyPaths(dir string, alg crypto.Algorithm) ([]string, error) {
	names, err := KeyFileNames(alg)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// ExistingKeys returns the key paths for alg under dir that already exist.
func ExistingKeys(dir string, alg crypto.Algorithm) ([]string, error) {
	paths, err := KeyPaths(dir, alg)
	if err != nil {
		return nil, err
	}
	var existing []string
	for _, p := range paths {
		if _, statErr := os.Stat(p); statErr == nil {
			existing = append(existing, p)
		}
	}
	return existing, nil
}

// WriteKeys persists keys under dir and returns the written paths.
// Files are created with 0600 permissions. Unless overwrite is set, an
// existing key file fails the whole call with errors.ErrKeyExists before
// anything is written.
func WriteKeys(dir string, alg crypto.Algorithm, keys [][]byte, overwrite bool) ([]string, error) {
	paths, err := KeyPaths(dir, alg)
	if err != nil {
		return nil, err
	}
	if len(keys) != len(paths) {
		return nil, fmt.Errorf("%w: %s expects %d keys, got %d", errors.ErrInvalidArgument, alg, len(paths), len(keys))
	}

	if !overwrite {
		existing, existErr := ExistingKeys(dir, alg)
		if existErr != nil {
			return nil, existErr
		}
		if len(existing) > 0 {
			return nil, fmt.Errorf("%w: %s", errors.ErrKeyExists, existing[0])
		}
	}

	if err := os.MkdirAll(dir, constants.KeyDirPerm); err != nil {
		return nil, errors.Wrap(err, "creating key directory")
	}

	for i, p := range paths {
		if err := os.WriteFile(p, keys[i], constants.KeyFilePerm); err != nil {
			return nil, errors.Wrapf(err, "saving key %s", p)
		}
		// WriteFile keeps the mode of a file it truncates.
		if err := os.Chmod(p, constants.KeyFilePerm); err != nil {
			return nil, errors.Wrapf(err, "setting permissions on %s", p)
		}
	}

	log.Debug().
		Str("component", "textsign").
		Str("algorithm", alg.String()).
		Str("dir", dir).
		Int("files", len(paths)).
		Msg("wrote key files")
	return paths, nil
}

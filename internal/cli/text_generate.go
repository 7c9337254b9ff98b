package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/textsign"
	"github.com/mrz1836/rcli/internal/tui"
)

type textGenerateOptions struct {
	format string
	dir    string
	force  bool
}

type generateResult struct {
	Algorithm string   `json:"algorithm"`
	Files     []string `json:"files"`
}

func newTextGenerateCmd(flags *GlobalFlags) *cobra.Command {
	opts := &textGenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a signing key",
		Long: `Generate key material for the selected algorithm.

blake3 writes a 32-byte shared key to blake3.txt. ed25519 writes the
signing key to ed25519.sk and the public key to ed25519.pk. Files are
created with 0600 permissions. Existing files are never replaced without
confirmation or --force.

Examples:
  rcli text generate
  rcli text generate --format ed25519 --dir ./keys`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextGenerate(cmd, cmd.OutOrStdout(), flags, opts)
		},
	}

	addFormatFlag(cmd, &opts.format)
	cmd.Flags().StringVar(&opts.dir, "dir", "", "directory to write keys to, default from text.key_dir")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite existing key files without asking")

	return cmd
}

func runTextGenerate(cmd *cobra.Command, w io.Writer, flags *GlobalFlags, opts *textGenerateOptions) error {
	alg, err := resolveAlgorithm(cmd, opts.format)
	if err != nil {
		return err
	}

	dir := opts.dir
	if dir == "" {
		cfg, cfgErr := loadConfig(cmd)
		if cfgErr != nil {
			return cfgErr
		}
		dir = cfg.Text.KeyDir
	}

	out := tui.NewOutput(w, flags.Output)

	overwrite := opts.force
	if !overwrite {
		existing, existErr := textsign.ExistingKeys(dir, alg)
		if existErr != nil {
			return existErr
		}
		if len(existing) > 0 {
			confirmed, confirmErr := confirmKeyOverwrite(existing, flags.Output)
			if confirmErr != nil {
				return confirmErr
			}
			if !confirmed {
				out.Info("Key generation canceled")
				return nil
			}
			overwrite = true
		}
	}

	keys, err := textsign.Generate(alg)
	if err != nil {
		return err
	}
	paths, err := textsign.WriteKeys(dir, alg, keys, overwrite)
	if err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Str("algorithm", alg.String()).Strs("files", paths).Msg("generated keys")

	if flags.Output == OutputJSON {
		return out.JSON(generateResult{Algorithm: alg.String(), Files: paths})
	}
	for _, p := range paths {
		out.Success("wrote " + p)
	}
	return nil
}

// confirmKeyOverwrite prompts before replacing existing key files. Without a
// terminal (or in JSON mode) it refuses with errors.ErrKeyExists.
func confirmKeyOverwrite(existing []string, outputFormat string) (bool, error) {
	if outputFormat == OutputJSON || !terminalCheck() {
		return false, fmt.Errorf("%w: %s (use --force to overwrite): %w",
			errors.ErrKeyExists, strings.Join(existing, ", "), errors.ErrNonInteractiveMode)
	}

	confirmed, err := confirmOverwrite(
		"Overwrite existing keys?",
		"Existing files: "+strings.Join(existing, ", ")+"\nAnything signed with the old key will no longer verify.",
	)
	if err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get confirmation: %w", err)
	}
	return confirmed, nil
}

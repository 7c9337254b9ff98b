package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/source"
	"github.com/mrz1836/rcli/internal/textsign"
	"github.com/mrz1836/rcli/internal/tui"
)

type textSignOptions struct {
	input  string
	key    string
	format string
}

type signResult struct {
	Algorithm string `json:"algorithm"`
	Signature string `json:"signature"`
}

func newTextSignCmd(flags *GlobalFlags) *cobra.Command {
	opts := &textSignOptions{}

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign input with a shared or private key",
		Long: `Sign the input and print the signature as URL-safe base64.

Examples:
  rcli text sign -k blake3.txt < message.txt
  rcli text sign -i message.txt -k ed25519.sk --format ed25519`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextSign(cmd, cmd.OutOrStdout(), flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "input file, or - for stdin")
	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "key file (blake3 shared key or ed25519 signing key)")
	addFormatFlag(cmd, &opts.format)
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func runTextSign(cmd *cobra.Command, w io.Writer, flags *GlobalFlags, opts *textSignOptions) error {
	if err := validateSources(opts.input, opts.key); err != nil {
		return err
	}
	alg, err := resolveAlgorithm(cmd, opts.format)
	if err != nil {
		return err
	}

	tag, err := textsign.Sign(cmd.Context(), opts.input, opts.key, alg)
	if err != nil {
		return fmt.Errorf("failed to sign input: %w", err)
	}

	if flags.Output == OutputJSON {
		return tui.NewOutput(w, flags.Output).JSON(signResult{Algorithm: alg.String(), Signature: tag})
	}
	_, err = fmt.Fprintln(w, tag)
	return err
}

// validateSources checks each designator before any stream is opened.
func validateSources(designators ...string) error {
	for _, d := range designators {
		if err := source.ValidateInput(d); err != nil {
			return err
		}
	}
	return nil
}

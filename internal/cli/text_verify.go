package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/textsign"
	"github.com/mrz1836/rcli/internal/tui"
)

type textVerifyOptions struct {
	input     string
	key       string
	signature string
	format    string
}

type verifyResult struct {
	Algorithm string `json:"algorithm"`
	Valid     bool   `json:"valid"`
}

func newTextVerifyCmd(flags *GlobalFlags) *cobra.Command {
	opts := &textVerifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature against input",
		Long: `Verify that a signature matches the input under the given key.

Exits 0 when the signature is valid, 1 when it does not match, and 2 when
the key or signature is malformed.

Examples:
  rcli text verify -i message.txt -k blake3.txt -s <signature>
  rcli text verify -i message.txt -k ed25519.pk -s <signature> --format ed25519`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextVerify(cmd, cmd.OutOrStdout(), flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "input file, or - for stdin")
	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "key file (blake3 shared key or ed25519 public key)")
	cmd.Flags().StringVarP(&opts.signature, "sign", "s", "", "signature to check (URL-safe base64)")
	addFormatFlag(cmd, &opts.format)
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("sign")

	return cmd
}

func runTextVerify(cmd *cobra.Command, w io.Writer, flags *GlobalFlags, opts *textVerifyOptions) error {
	if err := validateSources(opts.input, opts.key); err != nil {
		return err
	}
	alg, err := resolveAlgorithm(cmd, opts.format)
	if err != nil {
		return err
	}

	ok, err := textsign.Verify(cmd.Context(), opts.input, opts.key, opts.signature, alg)
	if err != nil {
		return fmt.Errorf("failed to verify input: %w", err)
	}

	out := tui.NewOutput(w, flags.Output)
	if flags.Output == OutputJSON {
		if err := out.JSON(verifyResult{Algorithm: alg.String(), Valid: ok}); err != nil {
			return err
		}
	} else if ok {
		out.Success("signature verified")
	}

	if !ok {
		return errors.ErrVerificationFailed
	}
	return nil
}

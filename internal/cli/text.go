package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
)

// AddTextCommand adds the text command group (sign, verify, generate).
func AddTextCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign and verify text with blake3 or ed25519",
		Long: `Sign and verify text with a BLAKE3 keyed hash (shared secret) or an
Ed25519 signature (private key signs, public key verifies).

Signatures are printed as URL-safe base64 without padding.`,
	}

	cmd.AddCommand(newTextSignCmd(flags))
	cmd.AddCommand(newTextVerifyCmd(flags))
	cmd.AddCommand(newTextGenerateCmd(flags))

	root.AddCommand(cmd)
}

// addFormatFlag registers --format. An empty value falls back to text.format.
func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVar(format, "format", "", "signing algorithm (blake3|ed25519), default from text.format")
}

// resolveAlgorithm picks the algorithm from the flag, falling back to config.
func resolveAlgorithm(cmd *cobra.Command, flagValue string) (crypto.Algorithm, error) {
	if flagValue == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return 0, err
		}
		flagValue = cfg.Text.Format
	}

	alg, err := crypto.ParseAlgorithm(flagValue)
	if err != nil {
		return 0, errors.NewExitCode2Error(err)
	}
	return alg, nil
}

package cli

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/codec"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/source"
	"github.com/mrz1836/rcli/internal/tui"
)

type base64Options struct {
	input  string
	format string
}

type base64Result struct {
	Format string `json:"format"`
	Output string `json:"output"`
}

// AddBase64Command adds the base64 command group (encode, decode).
func AddBase64Command(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode or decode base64",
	}

	cmd.AddCommand(newBase64Cmd(flags, "encode", "Encode input as base64", runBase64Encode))
	cmd.AddCommand(newBase64Cmd(flags, "decode", "Decode base64 input", runBase64Decode))

	root.AddCommand(cmd)
}

type base64Runner func(w io.Writer, flags *GlobalFlags, data []byte, format string) error

func newBase64Cmd(flags *GlobalFlags, use, short string, run base64Runner) *cobra.Command {
	opts := &base64Options{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := opts.format
			if format == "" {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				format = cfg.Base64.Format
			}

			data, err := source.ReadAll(opts.input)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), flags, data, format)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "input file, or - for stdin")
	cmd.Flags().StringVar(&opts.format, "format", "", "alphabet (standard|urlsafe), default from base64.format")

	return cmd
}

func runBase64Encode(w io.Writer, flags *GlobalFlags, data []byte, format string) error {
	encoded, err := codec.Encode(data, format)
	if err != nil {
		return err
	}
	if flags.Output == OutputJSON {
		return tui.NewOutput(w, flags.Output).JSON(base64Result{Format: format, Output: encoded})
	}
	_, err = fmt.Fprintln(w, encoded)
	return err
}

func runBase64Decode(w io.Writer, flags *GlobalFlags, data []byte, format string) error {
	decoded, err := codec.Decode(data, format)
	if err != nil {
		return err
	}
	if flags.Output == OutputJSON {
		// JSON strings cannot carry arbitrary bytes without rewriting them.
		if !utf8.Valid(decoded) {
			return fmt.Errorf("%w: decoded data is not UTF-8 text, use -o text for binary output", errors.ErrInvalidArgument)
		}
		return tui.NewOutput(w, flags.Output).JSON(base64Result{Format: format, Output: string(decoded)})
	}
	_, err = w.Write(decoded)
	return err
}

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/genpass"
	"github.com/mrz1836/rcli/internal/tui"
)

type genPassResult struct {
	Password string `json:"password"`
	Strength int    `json:"strength"`
}

// AddGenPassCommand adds the genpass command.
func AddGenPassCommand(root *cobra.Command, flags *GlobalFlags) {
	opts := &genpass.Options{}

	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Long: `Generate a random password from unambiguous characters.

At least one character of every enabled class is included. Disable a class
with --uppercase=false, --lowercase=false, --number=false, or --symbol=false.
The password goes to stdout and its strength score (0-4) to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyGenPassConfig(cmd, opts); err != nil {
				return err
			}
			return runGenPass(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags, *opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Length, "length", "l", 0, "password length, default from genpass.length")
	cmd.Flags().BoolVar(&opts.Uppercase, "uppercase", true, "include uppercase letters")
	cmd.Flags().BoolVar(&opts.Lowercase, "lowercase", true, "include lowercase letters")
	cmd.Flags().BoolVar(&opts.Number, "number", true, "include digits")
	cmd.Flags().BoolVar(&opts.Symbol, "symbol", true, "include symbols")

	root.AddCommand(cmd)
}

// applyGenPassConfig fills options whose flags were not set from config.
func applyGenPassConfig(cmd *cobra.Command, opts *genpass.Options) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fl := cmd.Flags()
	if !fl.Changed("length") {
		opts.Length = cfg.GenPass.Length
	}
	if !fl.Changed("uppercase") {
		opts.Uppercase = cfg.GenPass.Uppercase
	}
	if !fl.Changed("lowercase") {
		opts.Lowercase = cfg.GenPass.Lowercase
	}
	if !fl.Changed("number") {
		opts.Number = cfg.GenPass.Number
	}
	if !fl.Changed("symbol") {
		opts.Symbol = cfg.GenPass.Symbol
	}
	return nil
}

func runGenPass(w, errW io.Writer, flags *GlobalFlags, opts genpass.Options) error {
	pw, err := genpass.Generate(opts)
	if err != nil {
		return err
	}
	strength := genpass.Strength(pw)

	if flags.Output == OutputJSON {
		return tui.NewOutput(w, flags.Output).JSON(genPassResult{Password: pw, Strength: strength})
	}

	if _, err := fmt.Fprintln(w, pw); err != nil {
		return err
	}
	if !flags.Quiet {
		tui.NewTTYOutput(errW).KeyValue("Password strength", strconv.Itoa(strength))
	}
	return nil
}

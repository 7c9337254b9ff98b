package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/config"
	"github.com/mrz1836/rcli/internal/csvconv"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/source"
	"github.com/mrz1836/rcli/internal/tui"
)

type csvOptions struct {
	input     string
	output    string
	format    string
	delimiter string
	header    bool
}

type csvResult struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Format  string `json:"format"`
	Records int    `json:"records"`
}

// AddCSVCommand adds the csv command.
func AddCSVCommand(root *cobra.Command, flags *GlobalFlags) {
	opts := &csvOptions{}

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Convert CSV to JSON or YAML",
		Long: `Convert CSV rows into an array of objects keyed by the header row.

Without --header, fields are named field1, field2, and so on. The result is
written to output.<format> unless --output-file is given.

Examples:
  rcli csv -i players.csv
  rcli csv -i players.csv --format yaml -O players.yaml
  rcli csv -i data.tsv -d '\t' --header=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runCSV(cmd, cmd.OutOrStdout(), flags, opts, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "CSV file, or - for stdin")
	cmd.Flags().StringVarP(&opts.output, "output-file", "O", "", "output file, default output.<format>")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format (json|yaml), default from csv.format")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", "", "field delimiter, default from csv.delimiter")
	cmd.Flags().BoolVar(&opts.header, "header", true, "treat the first row as field names")
	_ = cmd.MarkFlagRequired("input")

	root.AddCommand(cmd)
}

func runCSV(cmd *cobra.Command, w io.Writer, flags *GlobalFlags, opts *csvOptions, cfg *config.Config) error {
	conv := csvconv.Options{
		Format:    cfg.CSV.Format,
		Delimiter: rune(cfg.CSV.Delimiter),
		Header:    cfg.CSV.Header,
	}
	if opts.format != "" {
		conv.Format = opts.format
	}
	if err := csvconv.ValidateFormat(conv.Format); err != nil {
		return err
	}
	if opts.delimiter != "" {
		d, err := csvconv.ParseDelimiter(opts.delimiter)
		if err != nil {
			return err
		}
		conv.Delimiter = d
	}
	if cmd.Flags().Changed("header") {
		conv.Header = opts.header
	}

	in, err := source.Open(opts.input)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	var buf bytes.Buffer
	n, err := csvconv.Convert(in, &buf, conv)
	if err != nil {
		return err
	}

	outPath := opts.output
	if outPath == "" {
		outPath = csvconv.DefaultOutput(conv.Format)
	}
	if fileExists(outPath) {
		tui.NewOutput(cmd.ErrOrStderr(), flags.Output).Warning("overwriting " + outPath)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil { //nolint:gosec // converted data is not secret
		return errors.Wrapf(err, "failed to write %s", outPath)
	}

	out := tui.NewOutput(w, flags.Output)
	if flags.Output == OutputJSON {
		return out.JSON(csvResult{Input: opts.input, Output: outPath, Format: conv.Format, Records: n})
	}
	out.Success(fmt.Sprintf("converted %d records to %s", n, outPath))
	return nil
}

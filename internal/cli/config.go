package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/rcli/internal/config"
	"github.com/mrz1836/rcli/internal/tui"
)

// configFile describes one layer of file configuration.
type configFile struct {
	Scope  string `json:"scope"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

type configShowResult struct {
	Config *config.Config `json:"config"`
	Files  []configFile   `json:"files"`
}

// AddConfigCommand adds the config command group.
func AddConfigCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect rcli configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after merging all sources.

Sources, highest precedence first:
  - RCLI_* environment variables (e.g. RCLI_TEXT_FORMAT)
  - project: .rcli/config.yaml
  - global: ~/.rcli/config.yaml (or $RCLI_HOME/config.yaml)
  - built-in defaults

Examples:
  rcli config show
  rcli config show -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runConfigShow(cmd.OutOrStdout(), flags, cfg)
		},
	})

	root.AddCommand(cmd)
}

func runConfigShow(w io.Writer, flags *GlobalFlags, cfg *config.Config) error {
	files := configFiles()

	if flags.Output == OutputJSON {
		return tui.NewOutput(w, flags.Output).JSON(configShowResult{Config: cfg, Files: files})
	}

	for _, f := range files {
		state := "not found"
		if f.Exists {
			state = "loaded"
		}
		if _, err := fmt.Fprintf(w, "# %s: %s (%s)\n", f.Scope, f.Path, state); err != nil {
			return err
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

// configFiles lists the config file layers in load order.
func configFiles() []configFile {
	var files []configFile
	if path, err := config.GlobalConfigPath(); err == nil {
		files = append(files, configFile{Scope: "global", Path: path, Exists: fileExists(path)})
	}
	path := config.ProjectConfigPath()
	files = append(files, configFile{Scope: "project", Path: path, Exists: fileExists(path)})
	return files
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

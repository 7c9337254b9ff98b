package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/rcli/internal/config"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// Access is protected by globalLoggerMu.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the logger initialized by the root command's
// PersistentPreRunE. Before that it returns a zero-value logger that
// discards output.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// loggerInit builds the CLI logger. Tests replace it to keep logs off disk.
//
//nolint:gochecknoglobals // Test injection point
var loggerInit = InitLogger

// newRootCmd creates and returns the root command for the rcli CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "rcli",
		Short: "rcli - text signing, password, and data conversion toolkit",
		Long: `rcli signs and verifies text with BLAKE3 keyed hashes or Ed25519 signatures,
generates keys and passwords, transcodes base64, and converts CSV to JSON or YAML.

Examples:
  rcli text generate --format ed25519 --dir ./keys
  rcli text sign -i message.txt -k ./keys/ed25519.sk --format ed25519
  rcli genpass --length 24
  rcli csv -i players.csv --format yaml`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd, flags); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			logger := loggerInit(flags.Verbose, flags.Quiet)
			globalLoggerMu.Lock()
			globalLogger = logger
			globalLoggerMu.Unlock()

			cmd.SetContext(logger.WithContext(commandContext(cmd)))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddTextCommand(cmd, flags)
	AddGenPassCommand(cmd, flags)
	AddBase64Command(cmd, flags)
	AddCSVCommand(cmd, flags)
	AddConfigCommand(cmd, flags)

	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig reads layered configuration for a command.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(commandContext(cmd))
	if err != nil {
		return nil, errors.NewExitCode2Error(err)
	}
	return cfg, nil
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors are rendered to stderr before being returned.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	defer CloseLogFile()

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		renderError(cmd.ErrOrStderr(), flags.Output, err)
	}
	return err
}

// renderError prints err with its user-facing message and suggested action.
func renderError(w io.Writer, format string, err error) {
	if !IsValidOutputFormat(format) {
		format = OutputText
	}
	out := tui.NewOutput(w, format)

	msg, action := errors.Actionable(err)
	if msg == err.Error() {
		out.Error(err)
		return
	}
	out.Error(tui.NewActionableError(msg, action).WithContext(err.Error()).WithCause(err))
}

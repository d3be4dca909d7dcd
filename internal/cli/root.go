// Package cli provides the velocity command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/config"
	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/infrastructure"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts"
)

// globalFlags are persistent flags shared by every subcommand
type globalFlags struct {
	configFile string
	baseDir    string
	dataDir    string
	outDir     string
	logLevel   string
	logFormat  string
}

// runtime carries what every subcommand needs after setup
type runtime struct {
	ctx    context.Context
	cfg    *config.Config
	paths  *config.Paths
	logger *slog.Logger
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "velocity",
		Short: "Prepare velocity simulation exports for model training",
		Long: `velocity aggregates per-timestep simulation CSV exports, drops rows with
missing coordinates or velocity, and writes a reproducible train/test split.

Configuration comes from velocity.yaml, VELOCITY_* environment variables and
command-line flags, in increasing order of precedence.`,
		Version: contracts.Version,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return infrastructure.CloseLogFile()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default: ./velocity.yaml or ./configs/velocity.yaml)")
	pf.StringVar(&flags.baseDir, "base-dir", "", "directory relative paths are resolved against (default: working directory)")
	pf.StringVar(&flags.dataDir, "data-dir", "", "directory containing the input CSV files")
	pf.StringVar(&flags.outDir, "out", "", "directory prepared datasets are written to")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format (json|text)")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "text"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewSplitCommand(flags))
	rootCmd.AddCommand(NewFeaturesCommand(flags))
	rootCmd.AddCommand(NewExploreCommand(flags))
	rootCmd.AddCommand(NewFilesCommand(flags))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	defer func() { _ = infrastructure.CloseLogFile() }()

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			infrastructure.GetLogger().Error("Command failed", slog.Any("error", appErr))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// setup loads configuration, applies global and command flag overrides,
// validates the result and starts the logger. Logs go to the command's
// error stream so tables on standard output stay clean.
func setup(cmd *cobra.Command, flags *globalFlags, override func(*config.Config)) (*runtime, error) {
	cfg, err := config.LoadUnvalidated(flags.configFile)
	if err != nil {
		return nil, apperrors.NewConfigError("failed to load configuration", err)
	}

	if flags.dataDir != "" {
		cfg.Data.Dir = flags.dataDir
	}
	if flags.outDir != "" {
		cfg.Output.Dir = flags.outDir
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Logging.Format = flags.logFormat
	}
	if override != nil {
		override(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.NewConfigError("invalid configuration", err)
	}

	paths, err := config.GetPaths(cfg, flags.baseDir)
	if err != nil {
		return nil, apperrors.NewConfigError("failed to resolve paths", err)
	}

	// a relative log file follows --base-dir like every other path
	cfg.Logging.FilePath = paths.LogFile
	if _, err := infrastructure.InitializeLogger(cfg.Logging, cmd.ErrOrStderr()); err != nil {
		return nil, apperrors.NewConfigError("failed to initialize logger", err)
	}
	paths.LogPathResolution()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = infrastructure.EnsureRunID(ctx)
	logger := infrastructure.WithComponent(infrastructure.LoggerWithContext(ctx), cmd.Name())

	logger.Debug("Configuration loaded",
		slog.String("data_dir", paths.DataDir),
		slog.String("output_dir", paths.OutputDir),
		slog.Int("training_files", len(cfg.Data.TrainingFiles)),
		slog.Bool("discover", cfg.Data.Discover))

	return &runtime{
		ctx:    ctx,
		cfg:    cfg,
		paths:  paths,
		logger: logger,
	}, nil
}

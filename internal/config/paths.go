package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the resolved application paths.
// Relative directories in Config are resolved against BaseDir.
type Paths struct {
	BaseDir   string
	DataDir   string
	OutputDir string
	ChartsDir string
	LogsDir   string
	// LogFile is Logging.FilePath resolved against BaseDir
	LogFile string
}

// GetPaths resolves the configured directories against baseDir.
// An empty baseDir means the current working directory.
func GetPaths(cfg *Config, baseDir string) (*Paths, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		baseDir = wd
	}

	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}

	logFile := resolve(cfg.Logging.FilePath)
	return &Paths{
		BaseDir:   baseDir,
		DataDir:   resolve(cfg.Data.Dir),
		OutputDir: resolve(cfg.Output.Dir),
		ChartsDir: resolve(cfg.Explore.ChartsDir),
		LogsDir:   filepath.Dir(logFile),
		LogFile:   logFile,
	}, nil
}

// GetOutputPath returns the path for a prepared dataset file
func (p *Paths) GetOutputPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}

// GetChartPath returns the path for a rendered chart
func (p *Paths) GetChartPath(filename string) string {
	return filepath.Join(p.ChartsDir, filename)
}

// LogPathResolution logs resolved paths at debug level
func (p *Paths) LogPathResolution() {
	slog.Debug("Resolved paths",
		slog.String("base_dir", p.BaseDir),
		slog.String("data_dir", p.DataDir),
		slog.String("output_dir", p.OutputDir),
		slog.String("charts_dir", p.ChartsDir),
		slog.String("log_file", p.LogFile))
}

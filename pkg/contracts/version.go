// Package contracts holds values shared between the velocity binary and
// anything consuming its prepared datasets.
package contracts

import (
	"fmt"
	"runtime"
)

const (
	// Version of the velocity tool
	Version = "0.1.0"

	// VersionStage is appended to the version in long output
	VersionStage = "alpha"

	// DataFormatVersion changes whenever the layout of X_train, X_test,
	// y_train or y_test changes in a way consumers would notice.
	DataFormatVersion = "v1"
)

// Overridden with -ldflags "-X .../pkg/contracts.GitCommit=..." at release time.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version    string `json:"version"`
	Stage      string `json:"stage"`
	DataFormat string `json:"data_format"`
	BuildTime  string `json:"build_time"`
	GitCommit  string `json:"git_commit"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// GetVersionInfo collects build metadata and the Go runtime platform
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:    Version,
		Stage:      VersionStage,
		DataFormat: DataFormatVersion,
		BuildTime:  BuildTime,
		GitCommit:  GitCommit,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// GetVersionString returns "velocity v<version>"
func GetVersionString() string {
	return "velocity v" + Version
}

// GetFullVersionString is the one-line form printed by the version command
func GetFullVersionString() string {
	info := GetVersionInfo()
	return fmt.Sprintf("%s-%s (data format %s, commit %s, built %s, %s %s)",
		GetVersionString(), info.Stage, info.DataFormat,
		info.GitCommit, info.BuildTime, info.GoVersion, info.Platform)
}

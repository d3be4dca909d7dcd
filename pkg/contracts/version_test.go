package contracts

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, DataFormatVersion, info.DataFormat)
}

func TestGetFullVersionString(t *testing.T) {
	full := GetFullVersionString()
	assert.True(t, strings.HasPrefix(full, "velocity v"+Version+"-"+VersionStage))
	assert.Contains(t, full, "data format "+DataFormatVersion)
	assert.Contains(t, full, "commit "+GitCommit)
}

package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIDHelpers(t *testing.T) {
	ctx := ContextWithRunID(context.Background())
	runID := GetRunID(ctx)

	_, err := uuid.Parse(runID)
	require.NoError(t, err, "run ID should be a UUID")

	assert.Equal(t, runID, GetRunID(EnsureRunID(ctx)), "EnsureRunID must keep an existing ID")
	assert.NotEmpty(t, GetRunID(EnsureRunID(context.Background())))
	assert.Empty(t, GetRunID(context.Background()))
}

func TestLoggerHelpers(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	var buf bytes.Buffer
	state.logger = slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithRunID(context.Background(), "abc")
	logger := WithError(WithComponent(LoggerWithContext(ctx), "loader"), errors.New("boom"))
	logger.Info("test message")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "loader", entry["component"])
	assert.Equal(t, "abc", entry["run_id"])
	assert.Equal(t, "boom", entry["error"])
}

func TestWithError_Nil(t *testing.T) {
	logger := slog.Default()
	assert.Same(t, logger, WithError(logger, nil))
}

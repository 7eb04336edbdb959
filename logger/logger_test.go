package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitializeWithWriter(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{name: "JSON output mode", jsonOutput: true},
		{name: "Console output mode", jsonOutput: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, InitializeWithWriter(&buf, tt.jsonOutput, VerbosityInfo))
			t.Cleanup(func() { _ = InitializeWithWriter(&bytes.Buffer{}, false, VerbosityUser) })

			assert.Equal(t, tt.jsonOutput, JSONOutput)
			Infow("check finished", FieldCheck, "names")
			Cleanup()

			if tt.jsonOutput {
				var entry map[string]interface{}
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, "names", entry[FieldCheck])
			} else {
				assert.Contains(t, buf.String(), "check=names")
			}
		})
	}
}

func TestDefaultVerbosityHidesInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitializeWithWriter(&buf, false, VerbosityUser))

	Infow("hidden")
	Debugw("hidden too")
	Warnw("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(0))
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(1))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(2))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(7))
}

func TestShouldOutput(t *testing.T) {
	assert.False(t, ShouldOutput(VerbosityUser, OutputProgress))
	assert.True(t, ShouldOutput(VerbosityInfo, OutputSubprocess))
	assert.False(t, ShouldOutput(VerbosityDebug, OutputProbes))
	assert.True(t, ShouldOutput(VerbosityTrace, OutputDataDump))
	assert.Equal(t, "layout-stats", CategoryName(OutputLayoutStats))
}

func TestEnabledFollowsVerbosity(t *testing.T) {
	t.Cleanup(func() { _ = InitializeWithWriter(io.Discard, false, VerbosityUser) })

	assert.False(t, Enabled(OutputSubprocess))
	assert.False(t, Enabled(OutputProgress))

	require.NoError(t, InitializeWithWriter(io.Discard, false, VerbosityInfo))
	assert.True(t, Enabled(OutputSubprocess))
	assert.True(t, Enabled(OutputProgress))
	assert.False(t, Enabled(OutputTiming))

	require.NoError(t, InitializeWithWriter(io.Discard, false, VerbosityDebug))
	assert.True(t, Enabled(OutputLayoutStats))
	assert.False(t, Enabled(OutputProbes))

	require.NoError(t, InitializeWithWriter(io.Discard, false, VerbosityTrace))
	assert.True(t, Enabled(OutputProbes))
}

func TestFieldsFromContext(t *testing.T) {
	ctx := WithRunID(context.Background(), "r1")
	ctx = WithProject(ctx, "tt_um_demo")
	ctx = WithCheck(ctx, "boundary")

	assert.Equal(t, []interface{}{
		FieldRunID, "r1",
		FieldProject, "tt_um_demo",
		FieldCheck, "boundary",
	}, FieldsFromContext(ctx))
	assert.Empty(t, FieldsFromContext(context.Background()))
}

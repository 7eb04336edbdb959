package logger

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// The encoder must never silently drop fields, whatever their key.
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	encoder := newMinimalEncoder(false)

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2024, 5, 1, 13, 4, 35, 0, time.UTC),
		LoggerName: "checks",
		Message:    "check finished",
	}

	fields := []zapcore.Field{
		zap.String("check", "layers"),
		zap.Int("count", 3),
		zap.Bool("passed", true),
		zap.Float64("duration_ms", 1.5),
		zap.String("field.with.dots", "x"),
	}

	buf, err := encoder.EncodeEntry(entry, fields)
	require.NoError(t, err)
	out := buf.String()

	for _, want := range []string{
		"13:04:35", "checks", "check finished",
		"check=layers", "count=3", "passed=true", "duration_ms=1.5", "field.with.dots=x",
	} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.NotContains(t, out, "\x1b[", "no ANSI codes when color is off")
}

func TestMinimalEncoderKeepsContextFields(t *testing.T) {
	encoder := newMinimalEncoder(false)
	encoder.AddString("run_id", "abc")

	clone := encoder.Clone()
	buf, err := clone.EncodeEntry(zapcore.Entry{Level: zapcore.WarnLevel, Time: time.Now(), Message: "m"},
		[]zapcore.Field{zap.String("file", "x.gds")})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "file=x.gds run_id=abc", "fields are sorted by key")
}

func TestAbbreviateName(t *testing.T) {
	assert.Equal(t, "c.analog", abbreviateName("checks.analog"))
	assert.Equal(t, "klayout", abbreviateName("klayout"))
}

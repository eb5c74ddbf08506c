package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLevelForEnvironment(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, LevelForEnvironment("dev"))
	assert.Equal(t, zerolog.TraceLevel, LevelForEnvironment("TEST"))
	assert.Equal(t, zerolog.InfoLevel, LevelForEnvironment("prod"))
	assert.Equal(t, zerolog.InfoLevel, LevelForEnvironment("staging"))
}

func TestZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ZapLevel(zerolog.TraceLevel))
	assert.Equal(t, zapcore.DebugLevel, ZapLevel(zerolog.DebugLevel))
	assert.Equal(t, zapcore.InfoLevel, ZapLevel(zerolog.InfoLevel))
	assert.Equal(t, zapcore.WarnLevel, ZapLevel(zerolog.WarnLevel))
	assert.Equal(t, zapcore.ErrorLevel, ZapLevel(zerolog.ErrorLevel))
}

func TestSugarBeforeInit(t *testing.T) {
	// must not panic when Init was never called
	assert.NotPanics(t, func() {
		Sugar().Infow("noop", "key", "value")
	})
}

package logger_test

import (
	"testing"

	"github.com/MikeRez0/esimhub/internal/adapter/config"
	"github.com/MikeRez0/esimhub/internal/adapter/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		conf     config.App
		expError bool
		expLevel zapcore.Level
	}{
		{name: "Develop debug", conf: config.App{LogLevel: "debug", Mode: config.AppModeDevelop}, expLevel: zapcore.DebugLevel},
		{name: "Production error", conf: config.App{LogLevel: "error", Mode: config.AppModeProduction}, expLevel: zapcore.ErrorLevel},
		{name: "Bad level", conf: config.App{LogLevel: "loud"}, expError: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l, err := logger.NewLogger(&test.conf)
			if test.expError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, l.Core().Enabled(test.expLevel))
			assert.False(t, l.Core().Enabled(test.expLevel-1))
		})
	}
}

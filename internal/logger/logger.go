/*
 * drift - Structured Logger
 *
 * Console-encoded structured logging for the CLI using zap. Unlike a
 * long-running service, drift has no production/development
 * deployment distinction to key off: verbosity is driven directly by
 * the -v/--verbose flag.
 */
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

/*
 * Logger wraps zap.SugaredLogger for convenient structured logging.
 */
type Logger struct {
	*zap.SugaredLogger
	level zapcore.Level
}

/*
 * New creates a console logger at info level, or debug level when
 * verbose is true.
 */
func New(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.DisableStacktrace = true
	config.DisableCaller = true

	built, err := config.Build()
	if err != nil {
		/* Fallback to default logger */
		built = zap.NewNop()
	}

	return &Logger{
		SugaredLogger: built.Sugar(),
		level:         level,
	}
}

/*
 * WithFields returns a new logger with additional context fields,
 * e.g. the migration name a step is currently running against.
 */
func (l *Logger) WithFields(fields ...interface{}) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With(fields...),
		level:         l.level,
	}
}

/*
 * Sync flushes any buffered log entries.
 * Should be called before process exit.
 */
func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

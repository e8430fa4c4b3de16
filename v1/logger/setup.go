package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper around Uber's Zap logger. It provides a simplified
// leveled interface plus context-aware variants that correlate entries with
// the active trace.
type Logger struct {
	// Zap is the underlying zap.Logger instance, exposed for direct access
	// when Zap-specific functionality is needed.
	Zap *zap.Logger

	// tracingEnabled controls whether *WithContext methods extract trace and
	// span identifiers from the context.
	tracingEnabled bool
}

// NewLoggerClient initializes and returns a new logger instance based on
// configuration. The logger writes JSON entries to stderr with ISO8601
// timestamps, capitalized level names, caller information and the process id
// and service name as initial fields.
//
// If the underlying Zap logger cannot be built the function terminates the
// process; a service without logging is not worth starting.
func NewLoggerClient(cfg Config) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	zapLogger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		log.Fatal(err)
	}

	return &Logger{
		Zap:            zapLogger,
		tracingEnabled: cfg.EnableTracing,
	}
}

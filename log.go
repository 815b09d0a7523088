package startup

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger is a simple logger interface accepting key-value pair parameters.
type Logger interface {
	// Logs an info message.
	Info(msg string, keysAndValues ...interface{})
	// Logs an error.
	Error(err error, msg string, keysAndValues ...interface{})
}

type simpleLogger struct{}

func (s simpleLogger) Info(msg string, keysAndValues ...interface{}) {
	fmt.Println(msg, keysAndValues)
}

func (s simpleLogger) Error(err error, msg string,
	keysAndValues ...interface{}) {
	fmt.Println(msg, append(keysAndValues, "error", err))
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger adapts a zap logger to the Logger interface used by this
// package.
func NewZapLogger(logger *zap.Logger) Logger {
	return zapLogger{sugar: logger.Sugar()}
}

func (z zapLogger) Info(msg string, keysAndValues ...interface{}) {
	z.sugar.Infow(msg, keysAndValues...)
}

func (z zapLogger) Error(err error, msg string,
	keysAndValues ...interface{}) {
	z.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}

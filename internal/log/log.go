// Package log is the process-wide structured logger.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Field keys shared across packages.
const (
	KeyError  = "error"
	KeyGroup  = "group"
	KeyParam  = "param"
	KeyPath   = "path"
	KeyFrames = "frames"
	KeyPoints = "points"
	KeyOrder  = "byte_order"
)

// Logger is a leveled logger taking structured fields.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warning(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	SetLevel(level string)
	SetLogWriter(writer io.Writer)
}

func init() {
	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{TimestampFormat: time.RFC3339Nano, FullTimestamp: true}
	r := &defaultLogger{
		logger: logger,
	}
	level := os.Getenv("C3D_LOG_LEVEL")
	r.SetLevel(level)
	cLog = r
	cLog.Debug("logger level has been set", map[string]interface{}{
		"log_level": level,
	})
}

var cLog Logger

type defaultLogger struct {
	logger *logrus.Logger
}

func (l *defaultLogger) Debug(msg string, fields map[string]interface{}) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.logger.WithFields(fields).Debug(msg)
}

func (l *defaultLogger) Info(msg string, fields map[string]interface{}) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.logger.WithFields(fields).Info(msg)
}

func (l *defaultLogger) Warning(msg string, fields map[string]interface{}) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.logger.WithFields(fields).Warning(msg)
}

func (l *defaultLogger) Error(msg string, fields map[string]interface{}) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.logger.WithFields(fields).Error(msg)
}

func (l *defaultLogger) SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		l.logger.SetLevel(logrus.DebugLevel)
	case "warn":
		l.logger.SetLevel(logrus.WarnLevel)
	case "error":
		l.logger.SetLevel(logrus.ErrorLevel)
	default:
		l.logger.SetLevel(logrus.InfoLevel)
	}
}

func (l *defaultLogger) SetLogWriter(writer io.Writer) {
	l.logger.Out = writer
}

// SetLogger replaces the default logger.
func SetLogger(logger Logger) {
	cLog = logger
}

// SetLogLevel sets the level of the current logger. An empty level is ignored.
func SetLogLevel(level string) {
	if level == "" {
		return
	}
	cLog.SetLevel(level)
}

// SetLogWriter redirects the current logger. A nil writer is ignored.
func SetLogWriter(writer io.Writer) {
	if writer == nil {
		return
	}
	cLog.SetLogWriter(writer)
}

// Debug logs msg at debug level.
func Debug(msg string, fields map[string]interface{}) {
	cLog.Debug(msg, fields)
}

// Info logs msg at info level.
func Info(msg string, fields map[string]interface{}) {
	cLog.Info(msg, fields)
}

// Warning logs msg at warning level.
func Warning(msg string, fields map[string]interface{}) {
	cLog.Warning(msg, fields)
}

// Error logs msg at error level.
func Error(msg string, fields map[string]interface{}) {
	cLog.Error(msg, fields)
}

package logger

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"

	"github.com/muratoffalex/ytgrab/internal/config"
)

const (
	timestampFormat = "2006-01-02 15:04:05"
	logFileMode     = 0o644
)

type logrusLogger struct {
	logger logrus.Ext1FieldLogger
}

// NewLogrusLogger writes to a colorable stderr so log lines never interleave
// with the menu on stdout. With write_in_file enabled the log goes to the file
// only, without colors.
func NewLogrusLogger(cfg *config.LoggingConfig) Logger {
	l := logrus.New()
	formatter := &logrus.TextFormatter{
		DisableQuote:    true,
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	}
	l.SetFormatter(formatter)
	l.SetOutput(colorable.NewColorableStderr())

	level, err := logrus.ParseLevel(cfg.Level())
	if err != nil {
		l.WithField("log_level", cfg.Level()).Warn("Unknown log level, falling back to info")
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.WriteInFile {
		if file, err := openLogFile(cfg.FilePath); err == nil {
			formatter.DisableColors = true
			l.SetOutput(file)
		} else {
			l.WithError(err).Warn("Failed to open log file, logging to stderr")
		}
	}

	return &logrusLogger{
		logger: l,
	}
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
}

func (l *logrusLogger) Trace(args ...any) {
	l.logger.Trace(args...)
}

func (l *logrusLogger) Debug(args ...any) {
	l.logger.Debug(args...)
}

func (l *logrusLogger) Info(args ...any) {
	l.logger.Info(args...)
}

func (l *logrusLogger) Warn(args ...any) {
	l.logger.Warn(args...)
}

func (l *logrusLogger) Error(args ...any) {
	l.logger.Error(args...)
}

func (l *logrusLogger) Fatal(args ...any) {
	l.logger.Fatal(args...)
}

func (l *logrusLogger) WithFields(fields Fields) Logger {
	return &logrusLogger{
		logger: l.logger.WithFields(logrus.Fields(fields)),
	}
}

func (l *logrusLogger) WithField(key string, value any) Logger {
	return &logrusLogger{
		logger: l.logger.WithField(key, value),
	}
}

func (l *logrusLogger) WithError(err error) Logger {
	return &logrusLogger{
		logger: l.logger.WithError(err),
	}
}

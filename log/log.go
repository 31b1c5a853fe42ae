// Package log is the logrus-backed logging facade. Nothing is emitted unless logs.write is on.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/filesystem"
	"github.com/tubegrab/tubegrab/key"
	"github.com/tubegrab/tubegrab/where"
)

// Fields is an alias kept so callers do not import logrus for structured entries.
type Fields = logrus.Fields

var enabled bool

// Setup opens today's log file and configures formatter and level from the global configuration.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	Enable(f, viper.GetBool(key.LogsJson), viper.GetString(key.LogsLevel))
	return nil
}

// Enable writes entries to out regardless of logs.write.
func Enable(out io.Writer, json bool, level string) {
	enabled = true
	configure(out, json, level)
}

func configure(out io.Writer, json bool, level string) {
	logrus.SetOutput(out)

	if json {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// Trace writes a structured diagnostic entry at debug level.
func Trace(msg string, fields Fields) {
	if enabled {
		logrus.WithFields(fields).Debug(msg)
	}
}

func Error(args ...interface{}) {
	if enabled {
		logrus.Error(args...)
	}
}

func Errorf(format string, args ...interface{}) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}

func Warn(args ...interface{}) {
	if enabled {
		logrus.Warn(args...)
	}
}

func Warnf(format string, args ...interface{}) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}

func Info(args ...interface{}) {
	if enabled {
		logrus.Info(args...)
	}
}

func Infof(format string, args ...interface{}) {
	if enabled {
		logrus.Infof(format, args...)
	}
}

func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance. Packages log through it instead
// of writing to stdout, which a fullscreen terminal backend owns.
var Log = logrus.New()

func init() {
	// Safe defaults before Init runs (tests, headless tools)
	Log.SetOutput(os.Stderr)
	Log.SetLevel(logrus.InfoLevel)
}

// Init configures the logger from the environment. Level via
// BHUMI_LOG_LEVEL (default info), format via BHUMI_LOG_FORMAT
// ("json" or text), destination via BHUMI_LOG_FILE. When the terminal
// backend is active stdout/stderr belong to the renderer, so without a
// log file output is discarded.
func Init(fullscreen bool) {
	level, err := logrus.ParseLevel(os.Getenv("BHUMI_LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.EqualFold(os.Getenv("BHUMI_LOG_FORMAT"), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if path := os.Getenv("BHUMI_LOG_FILE"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			Log.SetOutput(f)
			return
		}
	}

	if fullscreen {
		Log.SetOutput(io.Discard)
	} else {
		Log.SetOutput(os.Stderr)
	}
}

package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zeebo/errs/v2"
)

// Init sets the global logrus level and output. level is one of error, warn,
// info, debug or trace (case-insensitive); anything else leaves the level
// unchanged. If file is non-empty, logs are appended to it instead of stderr.
func Init(level string, file string) error {
	switch strings.ToLower(level) {
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "trace":
		logrus.SetLevel(logrus.TraceLevel)
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: false,
	})
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return errs.Errorf("failed to open log file %q: %w", file, err)
		}
		logrus.SetOutput(f)
	}
	return nil
}

// Package logger holds the process-wide structured logger.
package logger

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Setup configures the global logger once at startup.
func Setup(level string) {
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)
}

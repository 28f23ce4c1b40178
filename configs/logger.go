package configs

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// InitLogger configures the shared logrus instance. JSON output in
// production, text when LOG_FORMAT=text is set for local runs.
func InitLogger() {
	loadEnv()

	if os.Getenv("LOG_FORMAT") == "text" {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
	Logger.SetOutput(os.Stdout)
}

// LogWithContext returns an entry tagged with the service and component
// names, so log lines can be traced back to their origin.
func LogWithContext(service, component string) *logrus.Entry {
	return Logger.WithFields(logrus.Fields{
		"service":   service,
		"component": component,
	})
}

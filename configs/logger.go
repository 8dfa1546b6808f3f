package configs

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger. It is usable before InitLogger runs.
var Logger = logrus.New()

// InitLogger configures Logger for the given environment: JSON at info level
// in production, human readable text at debug level otherwise.
func InitLogger(env string) {
	Logger.SetOutput(os.Stdout)
	if env == EnvProduction {
		Logger.SetFormatter(&logrus.JSONFormatter{})
		Logger.SetLevel(logrus.InfoLevel)
		return
	}
	Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Logger.SetLevel(logrus.DebugLevel)
}

// LogWithContext returns an entry tagged with the component and operation
// that is logging.
func LogWithContext(component, operation string) *logrus.Entry {
	return Logger.WithFields(logrus.Fields{
		"component": component,
		"operation": operation,
	})
}

package logger

import (
	"github.com/sirupsen/logrus"
)

// New builds the process logger: JSON output, level from config, service
// and env stamped on every record.
func New(service, env, level string) *logrus.Entry {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return log.WithFields(logrus.Fields{"service": service, "env": env})
}

package config

import (
	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

// Logger returns the shared structured logger used for application events
// (scheduler runs, scanner state changes, issuance records).
func Logger() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}

package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New собирает logrus-логгер с заданным уровнем и форматом ("text" или "json").
// Неизвестный уровень заменяется на info.
func New(level, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if strings.EqualFold(format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.Warnf("unknown log level %q, using info", level)
		return log
	}
	log.SetLevel(lvl)
	return log
}

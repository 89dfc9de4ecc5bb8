package main

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// logLevelEnv selects the logrus level; unset or invalid means warn.
const logLevelEnv = "CODEXTEST_LOG_LEVEL"

func newLogger(w io.Writer, lookupEnv func(string) (string, bool)) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)

	raw, ok := lookupEnv(logLevelEnv)
	if !ok || strings.TrimSpace(raw) == "" {
		return l
	}
	level, err := logrus.ParseLevel(strings.TrimSpace(raw))
	if err != nil {
		l.WithField("value", raw).Warnf("ignoring invalid %s", logLevelEnv)
		return l
	}
	l.SetLevel(level)
	return l
}

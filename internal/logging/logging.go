// SPDX-License-Identifier: MIT

// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup points logrus at stderr with the given level and format. An unknown
// level falls back to info.
func Setup(level string, json bool) {
	Configure(os.Stderr, level, json)
}

// Configure is Setup with an explicit writer
func Configure(w io.Writer, level string, json bool) {
	logrus.SetOutput(w)

	if json {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

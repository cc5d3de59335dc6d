package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Setup configures the global logrus logger. Unknown levels fall back to info;
// format "json" selects the JSON formatter, anything else plain text.
func Setup(level, format string, out io.Writer) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	if out != nil {
		logrus.SetOutput(out)
	}
}

package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. It writes to stderr so that log
// output never interleaves with the rendered views on stdout.
var Log = logrus.New()

func Init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(os.Getenv("BANK_LOG_LEVEL"))
	if err != nil {
		level = logrus.WarnLevel
	}
	Log.SetLevel(level)
}

package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared pipeline logger.
var Log *logrus.Logger

func init() {
	// Usable before InitLogger runs, e.g. in tests.
	Log = logrus.New()
	Log.SetLevel(logrus.InfoLevel)
}

// InitLogger configures the shared logger with the given level and an
// optional log file. Output always includes stdout.
func InitLogger(levelStr string, filePath string) error {
	Log = logrus.New()

	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	writers := []io.Writer{os.Stdout}
	if filePath != "" {
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		writers = append(writers, file)
	}
	Log.SetOutput(io.MultiWriter(writers...))

	return nil
}

package logger

import (
	"fmt"
	"os"

	"github.com/goto/salt/log"
	"github.com/sirupsen/logrus"
)

type PlainFormatter struct{}

func (*PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("%s\n", entry.Message)), nil
}

// NewClientLogger writes bare messages to stdout, without levels or
// timestamps, for human-facing command output.
func NewClientLogger() log.Logger {
	return log.NewLogrus(
		log.LogrusWithLevel("INFO"),
		log.LogrusWithFormatter(new(PlainFormatter)),
		log.LogrusWithWriter(os.Stdout),
	)
}

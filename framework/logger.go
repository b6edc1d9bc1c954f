package framework

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

// NewWriterLogger returns a Logger that writes timestamped lines with the given prefix.
func NewWriterLogger(w io.Writer, prefix string) Logger {
	return log.New(w, prefix, log.LstdFlags)
}

type CapturedMessage struct {
	Time    time.Time
	Message string
}

type CapturedOutput []CapturedMessage

// CapturingLogger keeps debug output for a single test so that it can be shown only if
// the test fails.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append([]CapturedMessage(nil), l.output...)
	l.lock.Unlock()
	return ret
}

// Dump writes every captured message. Continuation lines of a multi-line message, such as a
// response body, are indented under the timestamp.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		lines := strings.Split(strings.TrimRight(m.Message, "\n"), "\n")
		fmt.Fprintf(dest, "%s[%s] %s\n",
			prefix,
			m.Time.Format(timestampFormat),
			lines[0],
		)
		for _, line := range lines[1:] {
			fmt.Fprintf(dest, "%s    %s\n", prefix, line)
		}
	}
}

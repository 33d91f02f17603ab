package logio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger writes one line per message to an output stream, retaining enough
// state to tell the process how it should exit afterwards.
type Logger struct {
	sync.Mutex
	output   io.Writer
	buf      bytes.Buffer
	errors   int
	exitCode int
}

// SetOutput sets the logger's output stream; a nil output means os.Stderr.
func (log *Logger) SetOutput(out io.Writer) {
	log.Lock()
	defer log.Unlock()
	log.output = out
}

// ExitCode returns a code to pass to os.Exit, facilitating "exit non-zero if
// any error log" semantics.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Errors returns how many errors have been logged.
func (log *Logger) Errors() int {
	log.Lock()
	defer log.Unlock()
	return log.errors
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%v", err)
	}
}

// Errorf prints an unadorned message line, and retains state so that
// ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	log.errors++
	if log.exitCode == 0 {
		log.exitCode = 1
	}
	if err := log.printf("", mess, args...); err != nil {
		log.exitCode = 2
	}
}

// Printf prints a line to the output stream like "level: message...\n".
// An io error is retained as exit code 2.
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.exitCode = 2
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	out := log.output
	if out == nil {
		out = os.Stderr
	}
	_, err := log.buf.WriteTo(out)
	log.buf.Reset()
	return err
}

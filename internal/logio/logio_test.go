package logio_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ceticamarco/dc/internal/logio"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var out strings.Builder
	var log logio.Logger
	log.SetOutput(&out)

	log.Printf("trace", "x=%v", 1)
	assert.Equal(t, 0, log.ExitCode(), "printf must not set an exit code")

	log.ErrorIf(nil)
	log.ErrorIf(errors.New("Cannot divide by zero"))
	log.Errorf("'%v' requires two operands", "+")
	log.Leveledf("note")("done\n")

	assert.Equal(t, strings.Join([]string{
		"trace: x=1",
		"Cannot divide by zero",
		"'+' requires two operands",
		"note: done",
	}, "\n")+"\n", out.String())
	assert.Equal(t, 1, log.ExitCode())
	assert.Equal(t, 2, log.Errors())
}

func TestLogger_writeFailure(t *testing.T) {
	var log logio.Logger
	log.SetOutput(failWriter{})
	log.Errorf("nope")
	assert.Equal(t, 2, log.ExitCode())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestWriter(t *testing.T) {
	var lines []string
	lw := &logio.Writer{
		Logf:   func(mess string, args ...interface{}) { lines = append(lines, fmt.Sprintf(mess, args...)) },
		Prefix: "out: ",
	}
	fmt.Fprint(lw, "1\n2")
	assert.Equal(t, []string{"out: 1"}, lines)
	fmt.Fprint(lw, "\n3")
	assert.Equal(t, []string{"out: 1", "out: 2"}, lines)
	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"out: 1", "out: 2", "out: 3"}, lines)
}

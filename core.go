package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ceticamarco/dc/internal/fileinput"
	"github.com/ceticamarco/dc/internal/flushio"
	"github.com/ceticamarco/dc/internal/logio"
	"github.com/ceticamarco/dc/internal/panicerr"
)

// LineReader is a source of program text, one line at a time; it returns
// io.EOF once exhausted.
type LineReader interface {
	ReadLine() (fileinput.Line, error)
}

type ioCore struct {
	logging

	input  fileinput.Input
	src    LineReader
	stdin  LineReader
	out    flushio.WriteFlusher
	errLog *logio.Logger

	closers []io.Closer
}

func (core *ioCore) Close() (err error) {
	if cerr := core.flush(); err == nil {
		err = cerr
	}
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	core.closers = nil
	if cerr := core.input.Close(); err == nil {
		err = cerr
	}
	return err
}

func (core *ioCore) flush() error {
	if core.out == nil {
		return nil
	}
	return core.out.Flush()
}

func (core *ioCore) write(s string) error {
	_, err := io.WriteString(core.out, s)
	return err
}

// readStdin reads the next line for '?', from the stdin source when one was
// given, otherwise from the program source itself.
func (core *ioCore) readStdin() (fileinput.Line, error) {
	if err := core.flush(); err != nil {
		return fileinput.Line{}, err
	}
	if core.stdin != nil {
		return core.stdin.ReadLine()
	}
	return core.src.ReadLine()
}

// reportError prints an error that evaluation recovers from; it does not
// count towards the exit code.
func (core *ioCore) reportError(err error) {
	if core.errLog != nil {
		core.errLog.Printf("", "%v", err)
	}
	core.logf("!", "error: %v", err)
	switch {
	case panicerr.IsPanic(err):
		core.logf("!", "panic value: %#v", panicerr.PanicValue(err))
		core.logf("!", "panic stack: %s", panicerr.PanicStack(err))
	case panicerr.IsExit(err):
		core.logf("!", "evaluation exited early")
	}
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	if logfn == nil {
		return func() {}
	}
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark += strings.Repeat(" ", n)
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}

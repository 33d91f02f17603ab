package main

import (
	"io"

	"golang.org/x/term"

	"github.com/ceticamarco/dc/internal/fileinput"
)

const terminalPrompt = "dc> "

// terminalInput reads program lines from an interactive terminal, with line
// editing and history; writes go through the terminal as well, so that
// output lines up while it is in raw mode.
type terminalInput struct {
	fd    int
	state *term.State
	term  *term.Terminal
	loc   fileinput.Location
}

func newTerminalInput(fd int, rw io.ReadWriter) (*terminalInput, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &terminalInput{
		fd:    fd,
		state: state,
		term:  term.NewTerminal(rw, terminalPrompt),
		loc:   fileinput.Location{Name: "<terminal>"},
	}, nil
}

func (ti *terminalInput) ReadLine() (fileinput.Line, error) {
	text, err := ti.term.ReadLine()
	if err != nil {
		return fileinput.Line{}, err
	}
	ti.loc.Line++
	return fileinput.Line{Location: ti.loc, Text: text}, nil
}

func (ti *terminalInput) Write(p []byte) (int, error) { return ti.term.Write(p) }

// Close restores the terminal to the state it was found in.
func (ti *terminalInput) Close() error { return term.Restore(ti.fd, ti.state) }

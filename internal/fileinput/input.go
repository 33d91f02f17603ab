// Package fileinput reads program text line by line through a queue of named
// input streams, tracking where each line came from.
package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// MaxLineSize bounds how long a single line of input may be.
const MaxLineSize = 1024 * 1024

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location with the text read there, line feed trimmed.
type Line struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams. The last line read is retained to facilitate user feedback.
type Input struct {
	Queue []io.Reader
	Last  Line

	cur io.Reader
	sc  *bufio.Scanner
	loc Location
}

// ReadLine returns the next line from the current input stream, moving on
// through the Queue as streams run dry; io.EOF is returned once all streams
// are exhausted.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.sc == nil && !in.nextIn() {
			return Line{}, io.EOF
		}
		if in.sc.Scan() {
			in.loc.Line++
			in.Last = Line{Location: in.loc, Text: in.sc.Text()}
			return in.Last, nil
		}
		err := in.sc.Err()
		in.closeIn()
		if err != nil {
			return Line{}, fmt.Errorf("%v: %w", in.loc, err)
		}
	}
}

// Close closes the current stream and any still queued.
func (in *Input) Close() (err error) {
	in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur, in.sc = nil, nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	in.cur = in.Queue[0]
	in.Queue = in.Queue[1:]
	in.sc = bufio.NewScanner(in.cur)
	in.sc.Buffer(nil, MaxLineSize)
	in.loc = Location{Name: NameOf(in.cur)}
	return true
}

// NameOf returns the name of an input stream, as given by a Name() method
// like *os.File has.
func NameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// Named attaches a name to r, for use in Locations.
func Named(name string, r io.Reader) io.Reader {
	if rc, ok := r.(io.ReadCloser); ok {
		return namedReadCloser{rc, name}
	}
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

type namedReadCloser struct {
	io.ReadCloser
	name string
}

func (nr namedReader) Name() string     { return nr.name }
func (nr namedReadCloser) Name() string { return nr.name }

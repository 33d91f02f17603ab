// gen_dc_expects generates free-standing wrappers for the with* and expect*
// builder methods of a test case type, so that they can be collected into
// reusable lists and given to the test case's apply method.
//
// Usage: go run scripts/gen_dc_expects.go [flags] -- [input.go [output.go]]
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout

	caseType = flag.String("type", "dcTestCase", "test case type whose methods are wrapped")
	recvName = flag.String("recv", "dct", "receiver name used in the generated code")
	infix    = flag.String("infix", "DC", "inserted between with/expect and the rest of each wrapper name")
	pkgName  = flag.String("package", "main", "package of the generated file")
	timeout  = flag.Duration("timeout", 5*time.Second, "time limit for generation")
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		args = args[1:]
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		goimports := exec.CommandContext(ctx, "goimports")
		fmtPipe, err := goimports.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		goimports.Stdout = out
		goimports.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := goimports.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

func methodPattern(recv, typ string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(
		`func \(%[1]s %[2]s\) (expect|with)(.+?)\((.+?)\) %[2]s`,
		regexp.QuoteMeta(recv), regexp.QuoteMeta(typ)))
}

func run(ctx context.Context) error {
	var (
		typ    = *caseType
		recv   = *recvName
		method = methodPattern(recv, typ)
	)

	var buf bytes.Buffer
	buf.Grow(1024)
	fmt.Fprintf(&buf, "package %v\n\n", *pkgName)
	fmt.Fprintf(&buf, "// @generated from %v\n\n", in.Name())

	if args := flag.Args(); len(args) >= 2 {
		buf.WriteString("//go:generate go run scripts/gen_dc_expects.go --")
		for _, arg := range args {
			buf.WriteByte(' ')
			buf.WriteString(arg)
		}
		buf.WriteString("\n\n")
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := method.FindSubmatch(sc.Bytes()); len(match) > 0 {
			var (
				baseName = match[1]
				whatName = match[2]
				params   = match[3]
			)
			fmt.Fprintf(&buf, "func %s%v%s(%s) func(%v) %v {\n", baseName, *infix, whatName, params, typ, typ)
			fmt.Fprintf(&buf, "  return func(%v %v) %v {\n", recv, typ, typ)
			fmt.Fprintf(&buf, "    return %v.%s%s(%s)\n", recv, baseName, whatName, callArgs(params))
			buf.WriteString("  }\n")
			buf.WriteString("}\n\n")
		}

		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

// callArgs turns a parameter list into the matching argument list, spreading
// any variadic parameter; every parameter must be individually typed.
func callArgs(params []byte) []byte {
	var args bytes.Buffer
	for i, part := range bytes.Split(params, []byte(",")) {
		if i > 0 {
			args.WriteString(", ")
		}
		fields := bytes.Fields(part)
		args.Write(fields[0])
		if len(fields) > 1 && bytes.HasPrefix(fields[1], []byte("...")) {
			args.WriteString("...")
		}
	}
	return args.Bytes()
}

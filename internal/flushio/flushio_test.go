package flushio_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ceticamarco/dc/internal/flushio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriteFlusher(t *testing.T) {
	assert.Equal(t, flushio.Discard, flushio.NewWriteFlusher(io.Discard))
	assert.Equal(t, flushio.Discard, flushio.NewWriteFlusher(nil))

	var sb strings.Builder
	wf := flushio.NewWriteFlusher(&sb)
	io.WriteString(wf, "1\n")
	assert.Equal(t, "1\n", sb.String(), "buffers must be written through")

	var pipe bytes.Buffer
	bw := flushio.NewWriteFlusher(onlyWriter{&pipe})
	io.WriteString(bw, "2\n")
	assert.Equal(t, "", pipe.String(), "expected buffering")
	require.NoError(t, bw.Flush())
	assert.Equal(t, "2\n", pipe.String())
}

func TestTee(t *testing.T) {
	var a, b strings.Builder
	assert.Equal(t, flushio.Discard, flushio.Tee(nil, flushio.Discard))

	wa := flushio.NewWriteFlusher(&a)
	assert.Equal(t, wa, flushio.Tee(wa, nil))

	tee := flushio.Tee(flushio.Tee(wa), flushio.NewWriteFlusher(&b))
	io.WriteString(tee, "3 p\n")
	require.NoError(t, tee.Flush())
	assert.Equal(t, "3 p\n", a.String())
	assert.Equal(t, "3 p\n", b.String())
}

type onlyWriter struct{ io.Writer }

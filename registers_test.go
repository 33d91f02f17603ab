package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ceticamarco/dc/internal/mem"
)

func TestRegisters(t *testing.T) {
	var rs Registers
	_, ok := rs.Get('a')
	assert.False(t, ok)
	assert.Equal(t, []rune{}, rs.Names())

	a := rs.GetOrCreate('a')
	a.Push("1")
	assert.True(t, a == rs.GetOrCreate('a'), "GetOrCreate returns the existing register")

	rs.GetOrCreate('Z')
	rs.GetOrCreate('b')
	assert.Equal(t, 3, rs.Len())
	assert.Equal(t, []rune{'Z', 'a', 'b'}, rs.Names())

	rs.Erase('a')
	_, ok = rs.Get('a')
	assert.False(t, ok)
	assert.Equal(t, []string{}, rs.GetOrCreate('a').Values(), "recreated register is empty")
}

func TestRegisters_ArrayLimit(t *testing.T) {
	var rs Registers
	unbounded := rs.GetOrCreate('u')

	rs.ArrayLimit = 10
	bounded := rs.GetOrCreate('b')

	assert.NoError(t, unbounded.Array.Stor(100, "x"))
	assert.NoError(t, bounded.Array.Stor(5, "x"))
	assert.Equal(t, mem.LimitError{Index: 6, Op: "stor"}, bounded.Array.Stor(6, "x"))
}

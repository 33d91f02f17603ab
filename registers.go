package main

import (
	"sort"

	"github.com/ceticamarco/dc/internal/mem"
)

// Register is a named storage cell: a private stack, plus a sparse array of
// values indexed by integers.
type Register struct {
	Stack
	Array mem.Strings
}

// Registers owns every register, creating them lazily on first store.
type Registers struct {
	regs map[rune]*Register

	// ArrayLimit, when non-zero, bounds the (zig-zag folded) array indices
	// of every register created afterwards.
	ArrayLimit uint
}

// Get returns the named register, if it exists.
func (rs *Registers) Get(name rune) (*Register, bool) {
	reg, ok := rs.regs[name]
	return reg, ok
}

// GetOrCreate returns the named register, creating an empty one if needed.
func (rs *Registers) GetOrCreate(name rune) *Register {
	if reg, ok := rs.regs[name]; ok {
		return reg
	}
	if rs.regs == nil {
		rs.regs = make(map[rune]*Register)
	}
	reg := &Register{}
	reg.Array.Limit = rs.ArrayLimit
	rs.regs[name] = reg
	return reg
}

// Erase deletes the named register, along with its stack and array.
func (rs *Registers) Erase(name rune) { delete(rs.regs, name) }

func (rs *Registers) Len() int { return len(rs.regs) }

// Names returns the names of all existing registers, in order.
func (rs *Registers) Names() []rune {
	names := make([]rune, 0, len(rs.regs))
	for name := range rs.regs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

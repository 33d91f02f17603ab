package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
)

type vmDumper struct {
	vm  *VM
	out io.Writer
}

type arrayCell struct {
	Index int
	Value string
}

func (dump vmDumper) dump() {
	vm := dump.vm
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  params: k=%v i=%v o=%v\n", vm.params.Precision, vm.params.IRadix, vm.params.ORadix)
	fmt.Fprintf(dump.out, "  last: x=%q y=%q z=%q\n", vm.stack.LastX(), vm.stack.LastY(), vm.stack.LastZ())
	dump.dumpStack("stack", &vm.stack)
	for _, name := range vm.regs.Names() {
		reg, _ := vm.regs.Get(name)
		fmt.Fprintf(dump.out, "# Register %q\n", name)
		dump.dumpStack("stack", &reg.Stack)
		if reg.Array.Len() > 0 {
			fmt.Fprintf(dump.out, "  array: %v\n", repr.String(dump.cells(reg), repr.Indent("  ")))
		}
	}
}

func (dump vmDumper) dumpStack(name string, st *Stack) {
	fmt.Fprintf(dump.out, "  %v: %v\n", name, repr.String(st.Values()))
}

func (dump vmDumper) cells(reg *Register) []arrayCell {
	indices := reg.Array.Indices()
	cells := make([]arrayCell, 0, len(indices))
	for _, index := range indices {
		val, err := reg.Array.Load(index)
		if err != nil {
			continue
		}
		cells = append(cells, arrayCell{index, val})
	}
	return cells
}

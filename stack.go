package main

// Stack is a LIFO sequence of values, remembering the top three values seen
// by the last Snapshot as "last x", "last y" and "last z".
//
// Popping or peeking past the bottom of the stack is a programming error:
// callers check Len first, and only report user errors from those checks.
type Stack struct {
	values []string

	lastX, lastY, lastZ string
}

// Push values in order; the last one becomes the new top.
func (st *Stack) Push(values ...string) { st.values = append(st.values, values...) }

// Pop removes and returns the top value.
func (st *Stack) Pop() string {
	i := len(st.values) - 1
	if i < 0 {
		panic(errStackUnderrun)
	}
	val := st.values[i]
	st.values = st.values[:i]
	return val
}

// Peek returns the top value.
func (st *Stack) Peek() string { return st.Top(0) }

// Top returns the n-th value from the top, 0 being the top itself.
func (st *Stack) Top(n int) string {
	i := len(st.values) - 1 - n
	if i < 0 || n < 0 {
		panic(errStackUnderrun)
	}
	return st.values[i]
}

// At returns the i-th value from the bottom.
func (st *Stack) At(i int) string {
	if i < 0 || i >= len(st.values) {
		panic(errStackUnderrun)
	}
	return st.values[i]
}

// Set overwrites the top value.
func (st *Stack) Set(val string) {
	if len(st.values) == 0 {
		panic(errStackUnderrun)
	}
	st.values[len(st.values)-1] = val
}

func (st *Stack) Len() int    { return len(st.values) }
func (st *Stack) Empty() bool { return len(st.values) == 0 }
func (st *Stack) Clear()      { st.values = st.values[:0] }

// Values returns a copy of the stack contents, bottom first.
func (st *Stack) Values() []string {
	return append([]string{}, st.values...)
}

// Snapshot records the top three values as last x, y and z. Slots beyond the
// current depth keep whatever they held before.
func (st *Stack) Snapshot() {
	n := len(st.values)
	if n >= 1 {
		st.lastX = st.values[n-1]
	}
	if n >= 2 {
		st.lastY = st.values[n-2]
	}
	if n >= 3 {
		st.lastZ = st.values[n-3]
	}
}

func (st *Stack) LastX() string { return st.lastX }
func (st *Stack) LastY() string { return st.lastY }
func (st *Stack) LastZ() string { return st.lastZ }

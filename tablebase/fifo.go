package tablebase

import "github.com/domino14/gobbler/state"

// fifo is a growable ring buffer of positions. Both solver passes are
// plain breadth-first searches on a single goroutine, so there is no
// locking; the buffer just has to absorb queues that peak in the millions
// of entries without per-element allocation.
type fifo struct {
	buf        []state.State
	head, tail int
	count      int
}

func newFifo() *fifo {
	return &fifo{buf: make([]state.State, 1024)}
}

func (f *fifo) push(s state.State) {
	if f.count == len(f.buf) {
		f.grow()
	}
	f.buf[f.tail] = s
	f.tail = (f.tail + 1) & (len(f.buf) - 1)
	f.count++
}

func (f *fifo) pop() state.State {
	s := f.buf[f.head]
	f.head = (f.head + 1) & (len(f.buf) - 1)
	f.count--
	return s
}

func (f *fifo) len() int {
	return f.count
}

func (f *fifo) grow() {
	bigger := make([]state.State, len(f.buf)*2)
	n := copy(bigger, f.buf[f.head:])
	copy(bigger[n:], f.buf[:f.head])
	f.buf = bigger
	f.head = 0
	f.tail = f.count
}

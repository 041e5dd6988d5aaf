package input

import "io"

// LookaheadMax is the widest lookahead any consumer of this package needs:
// the scanner peeks a few characters ahead for punctuators and comments,
// and regex rescans copy up to this many.
const LookaheadMax = 24

type char struct {
	ch  rune
	eof bool
}

// Lookahead wraps a Source and keeps the next n code points buffered so a
// caller can inspect them without consuming them.
type Lookahead struct {
	src Source
	buf []char // ring of pending characters, oldest at ptr
	ptr int
	cur char
	err error
}

// NewLookahead returns a filter that buffers n characters beyond the
// current one. n must be at least 1.
func NewLookahead(src Source, n int) *Lookahead {
	if n < 1 {
		n = 1
	}
	la := &Lookahead{src: src, buf: make([]char, n)}
	for i := 0; i <= n; i++ {
		la.shift()
	}
	return la
}

func (la *Lookahead) read() char {
	if la.err != nil {
		return char{eof: true}
	}
	r, _, err := la.src.ReadRune()
	if err != nil {
		la.err = err
		return char{eof: true}
	}
	return char{ch: r}
}

func (la *Lookahead) shift() {
	la.cur = la.buf[la.ptr]
	la.buf[la.ptr] = la.read()
	la.ptr = (la.ptr + 1) % len(la.buf)
}

// Next consumes and returns the current character. At end of input it keeps
// returning 0 and EOF reports true.
func (la *Lookahead) Next() rune {
	c := la.cur
	la.shift()
	return c.ch
}

// Current returns the character Next would return.
func (la *Lookahead) Current() rune { return la.cur.ch }

// EOF reports whether the input is exhausted.
func (la *Lookahead) EOF() bool { return la.cur.eof }

// CopyLookahead copies the current character followed by the buffered ones
// into buf and returns how many were copied. Fewer than len(buf) are copied
// near the end of input; none at EOF.
func (la *Lookahead) CopyLookahead(buf []rune) int {
	if la.cur.eof || len(buf) == 0 {
		return 0
	}
	buf[0] = la.cur.ch
	n := 1
	for i := 0; n < len(buf) && i < len(la.buf); i++ {
		c := la.buf[(la.ptr+i)%len(la.buf)]
		if c.eof {
			break
		}
		buf[n] = c.ch
		n++
	}
	return n
}

// Name returns the name of the underlying source.
func (la *Lookahead) Name() string { return la.src.Name() }

// FirstLine returns the first line number of the underlying source.
func (la *Lookahead) FirstLine() int { return la.src.FirstLine() }

// Err returns the first read error other than io.EOF.
func (la *Lookahead) Err() error {
	if la.err == io.EOF {
		return nil
	}
	return la.err
}

// Close closes the underlying source.
func (la *Lookahead) Close() error { return la.src.Close() }

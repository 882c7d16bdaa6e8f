package scan

// Cursor is an immutable position within one input string. Recognizers
// receive a Cursor and return a new Cursor advanced past what they consumed;
// the original stays valid, which is what lets Alt retry alternatives from
// the same spot.
type Cursor struct {
	src string
	off int
}

// New places a Cursor at the start of input.
func New(input string) Cursor {
	return Cursor{src: input}
}

// Rest returns the unconsumed remainder of the input.
func (c Cursor) Rest() string {
	return c.src[c.off:]
}

// Offset reports how many bytes have been consumed so far.
func (c Cursor) Offset() int {
	return c.off
}

// Done reports whether the whole input has been consumed.
func (c Cursor) Done() bool {
	return c.off >= len(c.src)
}

// Advance returns a Cursor moved n bytes forward. n is clamped to the
// remaining length; it never moves backwards.
func (c Cursor) Advance(n int) Cursor {
	if n < 0 {
		return c
	}
	if c.off+n > len(c.src) {
		n = len(c.src) - c.off
	}

	return Cursor{src: c.src, off: c.off + n}
}

package tokenizer

// cursor addresses the input by code point. pos is the index of the next
// code point to be consumed.
type cursor struct {
	input []rune
	pos   int

	// set once the end of input has been handed out
	eof bool

	// position of the last consumed code point, for diagnostics
	line, col int
	lastLine  int
	lastCol   int
}

func newCursor(input []rune) *cursor {
	return &cursor{input: input, line: 1}
}

// current returns the next code point without consuming it.
func (c *cursor) current() (rune, error) {
	if c.pos >= len(c.input) {
		return 0, ErrEndOfInput
	}
	return c.input[c.pos], nil
}

// peek returns the code point n positions after the next one.
func (c *cursor) peek(n int) (rune, bool) {
	i := c.pos + n
	if i < 0 || i >= len(c.input) {
		return 0, false
	}
	return c.input[i], true
}

// matchesAhead reports whether the input starting at the next code point is
// s, compared case-sensitively.
func (c *cursor) matchesAhead(s string) bool {
	i := c.pos
	for _, r := range s {
		if i >= len(c.input) || c.input[i] != r {
			return false
		}
		i++
	}
	return true
}

// matchesAheadFold is matchesAhead with ASCII case folding.
func (c *cursor) matchesAheadFold(s string) bool {
	i := c.pos
	for _, r := range s {
		if i >= len(c.input) || toLower(c.input[i]) != toLower(r) {
			return false
		}
		i++
	}
	return true
}

// consume advances past the next code point.
func (c *cursor) consume() {
	if c.pos >= len(c.input) {
		return
	}
	c.lastLine, c.lastCol = c.line, c.col+1
	if c.input[c.pos] == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col++
	}
	c.pos++
}

// next consumes and returns the next code point; eof is set when there is
// none left.
func (c *cursor) next() (r rune, eof bool) {
	r, err := c.current()
	if err != nil {
		c.eof = true
		return 0, true
	}
	c.consume()
	return r, false
}

func (c *cursor) skip(n int) {
	for i := 0; i < n; i++ {
		c.consume()
	}
}

// lookahead returns up to max code points starting at the next one.
func (c *cursor) lookahead(max int) string {
	end := c.pos + max
	if end > len(c.input) {
		end = len(c.input)
	}
	return string(c.input[c.pos:end])
}

// offset is the index of the code point being processed, or the input
// length at the end of input.
func (c *cursor) offset() int {
	if c.eof {
		return len(c.input)
	}
	if c.pos == 0 {
		return 0
	}
	return c.pos - 1
}

func (c *cursor) position() (line, col int) {
	if c.eof {
		return c.line, c.col + 1
	}
	if c.pos == 0 {
		return 1, 1
	}
	return c.lastLine, c.lastCol
}

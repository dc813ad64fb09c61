package lexer

import (
	"fmt"
	"math"

	"fortio.org/safecast"
)

// MaxInput is the longest text, in characters, a Cursor can address. One
// offset past the end stays representable for the EOF token.
const MaxInput = math.MaxUint32 - 1

// Cursor is a position inside the character sequence being tokenized.
// Offsets are counted in runes.
type Cursor struct {
	src []rune
	Off uint32
	// Limit is the exclusive upper bound for Off.
	Limit uint32
}

// NewCursor creates a cursor at the start of text. It panics when text is
// longer than MaxInput characters.
func NewCursor(text string) Cursor {
	src := []rune(text)
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil || limit > MaxInput {
		panic(fmt.Errorf("input of %d characters exceeds %d", len(src), uint64(MaxInput)))
	}
	return Cursor{src: src, Limit: limit}
}

// EOF reports whether the input is exhausted.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek returns the current character, or 0 at EOF.
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return 0
	}
	return c.src[c.Off]
}

// Peek2 returns the current and the next character.
func (c *Cursor) Peek2() (r0, r1 rune, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.src[c.Off], c.src[c.Off+1], true
}

// Bump advances by one character and returns it.
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r := c.src[c.Off]
	c.Off++
	return r
}

// Eat consumes the next character if it equals r.
func (c *Cursor) Eat(r rune) bool {
	if !c.EOF() && c.src[c.Off] == r {
		c.Off++
		return true
	}
	return false
}

// Mark is a saved cursor position.
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// Reset moves the cursor back to m.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// TextFrom returns the characters consumed since m.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.src[m:c.Off])
}

// IndexFrom returns the offset of the first occurrence of seq at or after
// the cursor, or -1.
func (c *Cursor) IndexFrom(seq string) int {
	want := []rune(seq)
	n := int(c.Limit)
outer:
	for i := int(c.Off); i+len(want) <= n; i++ {
		for j, r := range want {
			if c.src[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}

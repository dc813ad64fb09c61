package source

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Lines maps character offsets of a text onto lines and columns.
// Offsets are counted in runes, matching the tokenizer.
type Lines struct {
	text string
	// rune offset and byte offset of every '\n'
	runeNL []uint32
	byteNL []int
	runes  uint32
}

// NewLines indexes text. The index is immutable and safe for concurrent use.
func NewLines(text string) *Lines {
	l := &Lines{text: text}
	var n uint32
	for i, r := range text {
		if r == '\n' {
			l.runeNL = append(l.runeNL, n)
			l.byteNL = append(l.byteNL, i)
		}
		n++
	}
	l.runes = n
	return l
}

// Len returns the number of characters in the indexed text.
func (l *Lines) Len() uint32 {
	return l.runes
}

// Count returns the number of lines; an empty text has one line.
func (l *Lines) Count() uint32 {
	n, err := safecast.Conv[uint32](len(l.runeNL))
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	return n + 1
}

// LineCol resolves a character offset. Offsets past the end resolve to the
// position just after the last character.
func (l *Lines) LineCol(off uint32) LineCol {
	if off > l.runes {
		off = l.runes
	}
	// first newline at or after off; that index is the 0-based line
	line := sort.Search(len(l.runeNL), func(i int) bool { return l.runeNL[i] >= off })
	var start uint32
	if line > 0 {
		start = l.runeNL[line-1] + 1
	}
	ln, err := safecast.Conv[uint32](line + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return LineCol{Line: ln, Col: off - start + 1}
}

// Pos resolves off into a Pos.
func (l *Lines) Pos(off uint32) Pos {
	return Pos{Offset: off, LineCol: l.LineCol(off)}
}

// Line returns the text of the 1-based line without its terminator.
// A trailing '\r' is dropped so CRLF input renders cleanly in snippets.
func (l *Lines) Line(n uint32) string {
	if n == 0 || n > l.Count() {
		return ""
	}
	start := 0
	if n > 1 {
		start = l.byteNL[n-2] + 1
	}
	end := len(l.text)
	if int(n-1) < len(l.byteNL) {
		end = l.byteNL[n-1]
	}
	return strings.TrimSuffix(l.text[start:end], "\r")
}

// RuneOffset converts a byte offset into a character offset.
func RuneOffset(text string, byteOff int) uint32 {
	if byteOff > len(text) {
		byteOff = len(text)
	}
	n, err := safecast.Conv[uint32](utf8.RuneCountInString(text[:byteOff]))
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return n
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// BOM is the UTF-8 byte order mark stripped by FileSet.Load.
var BOM = []byte{0xEF, 0xBB, 0xBF}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath returns the cleaned absolute form of path.
func AbsolutePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return normalizePath(abs), nil
}

// RelativePath returns path relative to baseDir. Paths that would escape
// baseDir are returned in absolute form instead.
func RelativePath(path, baseDir string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return normalizePath(abs), nil
	}
	return normalizePath(rel), nil
}

// BaseName returns the last element of path.
func BaseName(path string) string {
	return filepath.Base(path)
}

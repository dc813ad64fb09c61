package source

type (
	// FileID uniquely identifies a stylesheet within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a loaded stylesheet.
	FileFlags uint8
)

const (
	// FileVirtual marks content added from memory (stdin, tests).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks a file whose UTF-8 byte order mark was stripped on load.
	FileHadBOM
)

// File captures metadata and content for a single stylesheet.
//
// Content is kept exactly as read (minus a leading BOM). Line endings are
// never normalized: the parser must see the same characters the serializer
// is expected to reproduce.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx holds the character (rune) offsets of every '\n' in Content.
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags

	lines *Lines
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, counted in characters
}

// Pos bundles a character offset with its resolved line and column.
type Pos struct {
	Offset uint32
	LineCol
}

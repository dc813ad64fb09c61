package diagfmt

// PathMode selects how file paths are shown.
type PathMode uint8

const (
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	}
	return "auto"
}

// ParsePathMode is the inverse of PathMode.String.
func ParsePathMode(s string) (PathMode, bool) {
	for _, m := range []PathMode{PathModeAuto, PathModeAbsolute, PathModeRelative, PathModeBasename} {
		if m.String() == s {
			return m, true
		}
	}
	return PathModeAuto, false
}

// PrettyOpts configures Pretty.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	// Snippet prints the source line with a caret under the span.
	Snippet bool
}

// JSONOpts configures JSON.
type JSONOpts struct {
	IncludePositions bool // add line/col
	PathMode         PathMode
	Max              int // 0 = everything in the bag
	IncludeNotes     bool
}

package lexer

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// isWordChar reports whether r may continue a word or at-word.
func isWordChar(r rune) bool {
	if isSpace(r) {
		return false
	}
	switch r {
	case '{', '}', ':', ';', '"', '\'', '/', '(', ')', ',':
		return false
	}
	return true
}

package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero value and never produced by the tokenizer.
	Invalid Kind = iota
	// EOF marks the end of input for streaming consumers.
	EOF

	// Word is a run of word characters (selectors, property names, values).
	Word
	// AtWord is '@' followed by word characters, e.g. @media.
	AtWord
	// String is a quoted literal including its quotes.
	String
	// Comment is a /* ... */ block including its delimiters.
	Comment
	// Space is a run of whitespace.
	Space
	Colon      // :
	Semicolon  // ;
	Comma      // ,
	OpenBrace  // {
	CloseBrace // }
	OpenParen  // (
	CloseParen // )
)

var kindNames = [...]string{
	Invalid:    "invalid",
	EOF:        "eof",
	Word:       "word",
	AtWord:     "at_word",
	String:     "string",
	Comment:    "comment",
	Space:      "space",
	Colon:      "colon",
	Semicolon:  "semicolon",
	Comma:      "comma",
	OpenBrace:  "open_brace",
	CloseBrace: "close_brace",
	OpenParen:  "open_paren",
	CloseParen: "close_paren",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s && Kind(k) != Invalid {
			return Kind(k), true
		}
	}
	return Invalid, false
}

// MarshalText renders the snake-case kind name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Single returns the kind of a one-character punctuation token.
func Single(r rune) (Kind, bool) {
	switch r {
	case ':':
		return Colon, true
	case ';':
		return Semicolon, true
	case ',':
		return Comma, true
	case '{':
		return OpenBrace, true
	case '}':
		return CloseBrace, true
	case '(':
		return OpenParen, true
	case ')':
		return CloseParen, true
	default:
		return Invalid, false
	}
}

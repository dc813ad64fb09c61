package fuzztests

import (
	"strings"
	"testing"
)

const maxFuzzInput = 1 << 16 // 64 KiB

var stylesheetSeeds = []string{
	"",
	"a{}",
	".a { color: red; }",
	"a {\n  color: red;\n  background: blue\n}\n",
	"prop:   value   ;",
	"a { color: red !important; }",
	"a { color: red ! important ; }",
	"/* x */",
	"/*  x  */",
	"/* unterminated",
	"@import url(a.css);",
	"@media screen and (min-width: 100px) { .a { b: c } }",
	"@font-face {}",
	"@page :first { margin: 1in; @top-left { content: 'x' } }",
	"a { content: \"}\"; b: ';' }",
	"a { content: \"unterminated\n}",
	"a { background: url(data:image/png;base64,AA==) }",
	".a\\:hover { x: y }",
	"a { ; b: c;; }",
	"a {\r\n  b: c;\r\n}\r\n",
	"é { ü: ß; }",
	"a { b: c",
	"a }",
	"a { : }",
	"a { b }",
	"@media x { a { ",
}

func addSeeds(f *testing.F) {
	for _, s := range stylesheetSeeds {
		f.Add([]byte(s))
	}
	f.Add([]byte(strings.Repeat("@media x { ", 64) + strings.Repeat("}", 64)))
	f.Add([]byte(strings.Repeat("a { ", 300)))
}

// clip copies input and caps its length.
func clip(input []byte) string {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return string(input)
}

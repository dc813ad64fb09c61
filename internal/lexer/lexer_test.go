package lexer_test

import (
	"strings"
	"testing"

	"csskit/internal/diag"
	"csskit/internal/lexer"
	"csskit/internal/source"
	"csskit/internal/token"
)

// testReporter collects diagnostics emitted by the lexer.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

type tk struct {
	kind token.Kind
	text string
}

func kinds(toks []token.Token) []tk {
	out := make([]tk, len(toks))
	for i, t := range toks {
		out[i] = tk{t.Kind, t.Text}
	}
	return out
}

func expectTokens(t *testing.T, src string, want []tk) {
	t.Helper()
	got := kinds(lexer.Tokenize(src))
	if len(got) != len(want) {
		t.Fatalf("%q: got %d tokens %v, want %d %v", src, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d = %v, want %v", src, i, got[i], want[i])
		}
	}
}

func TestTokenizeRule(t *testing.T) {
	expectTokens(t, ".a { color: red; }", []tk{
		{token.Word, ".a"},
		{token.Space, " "},
		{token.OpenBrace, "{"},
		{token.Space, " "},
		{token.Word, "color"},
		{token.Colon, ":"},
		{token.Space, " "},
		{token.Word, "red"},
		{token.Semicolon, ";"},
		{token.Space, " "},
		{token.CloseBrace, "}"},
	})
}

func TestTokenizeAtRuleAndParens(t *testing.T) {
	expectTokens(t, "@media (min-width:1px),print{}", []tk{
		{token.AtWord, "@media"},
		{token.Space, " "},
		{token.OpenParen, "("},
		{token.Word, "min-width"},
		{token.Colon, ":"},
		{token.Word, "1px"},
		{token.CloseParen, ")"},
		{token.Comma, ","},
		{token.Word, "print"},
		{token.OpenBrace, "{"},
		{token.CloseBrace, "}"},
	})
}

func TestTokenizeStringsAndEscapes(t *testing.T) {
	expectTokens(t, `a:"x\"y" 'it''s'`, []tk{
		{token.Word, "a"},
		{token.Colon, ":"},
		{token.String, `"x\"y"`},
		{token.Space, " "},
		{token.String, `'it'`},
		{token.String, `'s'`},
	})
	expectTokens(t, `.a\:hover`, []tk{{token.Word, `.a\:hover`}})
}

func TestTokenizeComments(t *testing.T) {
	expectTokens(t, "/* a */b/**/", []tk{
		{token.Comment, "/* a */"},
		{token.Word, "b"},
		{token.Comment, "/**/"},
	})
	// comments do not nest
	expectTokens(t, "/* /* */ */", []tk{
		{token.Comment, "/* /* */"},
		{token.Space, " "},
		{token.Word, "*"},
		{token.Word, "/"},
	})
}

func TestTokenizeSlashAndHash(t *testing.T) {
	expectTokens(t, "12px/1.5 #fff", []tk{
		{token.Word, "12px"},
		{token.Word, "/1.5"},
		{token.Space, " "},
		{token.Word, "#fff"},
	})
}

func TestUnterminatedStringStopsAtNewline(t *testing.T) {
	rep := &testReporter{}
	toks := lexer.TokenizeWith("a: \"oops\nb", lexer.Options{Reporter: rep})
	got := kinds(toks)
	want := []tk{
		{token.Word, "a"},
		{token.Colon, ":"},
		{token.Space, " "},
		{token.String, "\"oops"},
		{token.Space, "\n"},
		{token.Word, "b"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("diagnostics = %+v", rep.diagnostics)
	}
	if rep.diagnostics[0].Severity != diag.SevWarning {
		t.Fatalf("severity = %v, want warning", rep.diagnostics[0].Severity)
	}
}

func TestUnterminatedCommentDegradesToWords(t *testing.T) {
	rep := &testReporter{}
	toks := lexer.TokenizeWith("a /* b /* c", lexer.Options{Reporter: rep})
	for _, tok := range toks {
		if tok.Kind == token.Comment {
			t.Fatalf("unexpected comment token %q", tok.Text)
		}
	}
	if toks[2].Kind != token.Word || toks[2].Text != "/*" {
		t.Fatalf("token 2 = %v %q, want word \"/*\"", toks[2].Kind, toks[2].Text)
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexUnterminatedComment {
		t.Fatalf("diagnostics = %+v", rep.diagnostics)
	}
}

func TestOffsetsAreRunesAndInclusive(t *testing.T) {
	toks := lexer.Tokenize("é{ab}")
	want := []struct{ start, end uint32 }{{0, 0}, {1, 1}, {2, 3}, {4, 4}}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens", len(toks))
	}
	for i, w := range want {
		if toks[i].Start != w.start || toks[i].End != w.end {
			t.Errorf("token %d (%q) = [%d,%d], want [%d,%d]", i, toks[i].Text, toks[i].Start, toks[i].End, w.start, w.end)
		}
	}
}

func TestTokenizeCoversInput(t *testing.T) {
	inputs := []string{
		"",
		"a{b:c}",
		"@import url(\"x.css\") screen;\n",
		"/* unterminated",
		"'unterminated",
		"\\",
		"a\\",
		"@",
		"} ; ) , ( {",
		"\t\r\n\f",
		"a { background: url(data:image/png;base64,AAA=) }",
	}
	for _, in := range inputs {
		toks := lexer.Tokenize(in)
		var b strings.Builder
		var next uint32
		for _, tok := range toks {
			if tok.Start != next {
				t.Fatalf("%q: token %q starts at %d, want %d", in, tok.Text, tok.Start, next)
			}
			if tok.Kind == token.Invalid {
				t.Fatalf("%q: invalid token", in)
			}
			b.WriteString(tok.Text)
			next = tok.End + 1
		}
		if b.String() != in {
			t.Fatalf("concatenation = %q, want %q", b.String(), in)
		}
	}
}

func TestLexerPeekAndEOF(t *testing.T) {
	lx := lexer.New("a;", lexer.Options{})
	if p := lx.Peek(); p.Kind != token.Word {
		t.Fatalf("Peek = %v", p.Kind)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("Next after Peek = %q", n.Text)
	}
	if n := lx.Next(); n.Kind != token.Semicolon {
		t.Fatalf("Next = %v", n.Kind)
	}
	if !lx.EOF() {
		t.Fatal("expected EOF")
	}
	for range 2 {
		if n := lx.Next(); n.Kind != token.EOF || n.Start != 2 {
			t.Fatalf("Next at end = %v@%d", n.Kind, n.Start)
		}
	}
}

package csskit_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"csskit"
)

var verbatim = csskit.FormatOptions{Verbatim: true}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"a{}",
		".a { color: red; }",
		"a {\n  color: red;\n  background: blue\n}\n",
		"prop:   value   ;",
		"a { color: red !important; }",
		"/* x */",
		"/*x*/",
		"/*  x  */",
		"@import url(a.css);",
		"@media screen { .a { color: red; } }",
		"\ta\t{\tb\t:\tc\t}\t",
	}
	for _, in := range inputs {
		root, err := csskit.Parse(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got := csskit.Stringify(root, verbatim); got != in {
			t.Errorf("round trip\nwant %q\ngot  %q", in, got)
		}
	}
}

func TestStringifyDefaults(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{".a { color: red; }", ".a {\n  color: red; }"},
		{".a {\ncolor: red;\n}", ".a {\n  color: red;\n}"},
		{"a {\n  color: red;\n  background: blue\n}\n", "a {\n  color: red;\n  background: blue\n}\n"},
		{"@media screen { .a { color: red; } }", "@media screen { .a {\n    color: red; } }"},
		{"/*  x  */", "/*  x  */"},
	}
	for _, tc := range cases {
		root, err := csskit.Parse(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		once := csskit.Stringify(root)
		if once != tc.want {
			t.Errorf("%q:\nwant %q\ngot  %q", tc.in, tc.want, once)
		}
		again, err := csskit.Parse(once)
		if err != nil {
			t.Fatalf("reparse %q: %v", once, err)
		}
		if twice := csskit.Stringify(again); twice != once {
			t.Errorf("not a fixed point: %q -> %q", once, twice)
		}
	}
}

func TestConstructedRule(t *testing.T) {
	if got := csskit.Stringify(csskit.NewRule(".a", csskit.NewDecl("color", "red"))); got != ".a {\n  color: red;\n}" {
		t.Fatalf("got %q", got)
	}
	if got := csskit.Stringify(csskit.NewRule(".a")); got != ".a {}" {
		t.Fatalf("empty rule = %q", got)
	}
	if got := csskit.Stringify(csskit.NewComment("x")); got != "/* x */" {
		t.Fatalf("comment = %q", got)
	}
	imp := csskit.NewDecl("color", "red", csskit.Important())
	if got := csskit.Stringify(imp); got != "color: red !important" {
		t.Fatalf("important = %q", got)
	}
}

func TestCustomTable(t *testing.T) {
	tbl := csskit.DefaultTable().With(csskit.DefIndent, "\t").With(csskit.DefColon, ":")
	got := csskit.Stringify(csskit.NewRule("a", csskit.NewDecl("b", "c")), csskit.FormatOptions{Table: tbl})
	if got != "a {\n\tb:c;\n}" {
		t.Fatalf("got %q", got)
	}
}

func TestParseShapes(t *testing.T) {
	root, err := csskit.Parse("color: red")
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Nodes) != 1 || csskit.NodeType(root.Nodes[0]) != csskit.TypeDecl {
		t.Fatalf("bare declaration: %+v", root.Nodes)
	}
	if csskit.NodeType(root) != csskit.TypeRoot {
		t.Fatalf("root type = %v", csskit.NodeType(root))
	}

	root, err = csskit.Parse(".a { color: red; }")
	if err != nil {
		t.Fatal(err)
	}
	rule, ok := root.Nodes[0].(*csskit.Rule)
	if len(root.Nodes) != 1 || !ok || len(rule.Nodes) != 1 {
		t.Fatalf("rule: %+v", root.Nodes)
	}
	if csskit.NodeType(rule) != csskit.TypeRule {
		t.Fatalf("rule type = %v", csskit.NodeType(rule))
	}
	if d := rule.Nodes[0].(*csskit.Decl); d.Prop != "color" || d.Value != "red" {
		t.Fatalf("decl = %+v", d)
	}
}

func TestImportantIsStripped(t *testing.T) {
	root, err := csskit.Parse("a { color: red !important }")
	if err != nil {
		t.Fatal(err)
	}
	d := root.Nodes[0].(*csskit.Rule).Nodes[0].(*csskit.Decl)
	if d.Value != "red" || !d.Important {
		t.Fatalf("value=%q important=%v", d.Value, d.Important)
	}
}

func TestAtRuleStatementVsBlock(t *testing.T) {
	root, err := csskit.Parse("@import 'a';\n@media print { a { b: c } }")
	if err != nil {
		t.Fatal(err)
	}
	imp := root.Nodes[0].(*csskit.AtRule)
	media := root.Nodes[1].(*csskit.AtRule)
	if imp.HasBody || imp.Nodes != nil {
		t.Errorf("@import has a body")
	}
	if !media.HasBody || len(media.Nodes) != 1 {
		t.Errorf("@media body = %+v", media.Nodes)
	}
	if csskit.NodeType(imp) != csskit.TypeAtRule {
		t.Errorf("at-rule type = %v", csskit.NodeType(imp))
	}
	if got := csskit.Stringify(csskit.NewAtRule("import", csskit.Params("'a'"))); got != "@import 'a';" {
		t.Errorf("constructed statement = %q", got)
	}
	if got := csskit.Stringify(csskit.NewAtRuleBlock("font-face", nil)); got != "@font-face {}" {
		t.Errorf("constructed empty block = %q", got)
	}
}

func TestSyntaxErrors(t *testing.T) {
	cases := []struct {
		src  string
		opts []csskit.Option
		want error
	}{
		{".a { color: red;", nil, csskit.ErrUnclosedBlock},
		{"color: red; }", nil, csskit.ErrUnexpectedClose},
		{"@media x { @media y { } }", []csskit.Option{csskit.WithMaxDepth(1)}, csskit.ErrTooDeep},
		{"a { b: c }", []csskit.Option{csskit.WithMaxSize(4)}, csskit.ErrTooLarge},
	}
	for _, tc := range cases {
		root, err := csskit.Parse(tc.src, tc.opts...)
		if root != nil {
			t.Errorf("%q: partial tree", tc.src)
		}
		var se *csskit.SyntaxError
		if !errors.As(err, &se) || !errors.Is(err, tc.want) {
			t.Errorf("%q: err = %v, want %v", tc.src, err, tc.want)
		}
	}

	_, err := csskit.Parse("a {", csskit.WithFile("x.css"))
	if err == nil || !strings.HasPrefix(err.Error(), "x.css:") {
		t.Fatalf("err = %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	root, err := csskit.Parse("a { b: c }")
	if err != nil {
		t.Fatal(err)
	}
	cp := csskit.Clone(root).(*csskit.Root)
	cp.Nodes[0].(*csskit.Rule).Nodes[0].(*csskit.Decl).Value = "x"
	if got := csskit.Stringify(root, verbatim); got != "a { b: c }" {
		t.Fatalf("original changed: %q", got)
	}
	if got := csskit.Stringify(cp, verbatim); got != "a { b: x }" {
		t.Fatalf("clone = %q", got)
	}
}

func TestCloneWithOverrides(t *testing.T) {
	d := csskit.NewDecl("color", "red")
	c := csskit.Clone(d, csskit.WithValue("blue"), csskit.WithImportant(true), csskit.WithSelector("ignored"))
	if csskit.NodeType(c) != csskit.TypeDecl {
		t.Fatalf("type = %v", csskit.NodeType(c))
	}
	if got := csskit.Stringify(c); got != "color: blue !important" {
		t.Fatalf("clone = %q", got)
	}
	if d.Value != "red" || d.Important {
		t.Fatalf("original changed: %+v", d)
	}

	r := csskit.Clone(csskit.NewRule("a"), csskit.WithSelector("b"), csskit.WithNodes(csskit.NewDecl("c", "d")))
	if got := csskit.Stringify(r); got != "b {\n  c: d;\n}" {
		t.Fatalf("rule clone = %q", got)
	}
}

func TestRawsGetPut(t *testing.T) {
	d := csskit.NewDecl("a", "b")
	if got := csskit.Get(d, csskit.RawBetween); got != ": " {
		t.Fatalf("default between = %q", got)
	}
	if got := csskit.Get(d, csskit.RawBetween, ":"); got != ":" {
		t.Fatalf("fallback between = %q", got)
	}
	p := csskit.Put(d, csskit.RawBetween, " : ")
	if got := csskit.Stringify(p); got != "a : b" {
		t.Fatalf("put = %q", got)
	}
	if csskit.Get(d, csskit.RawBetween) != ": " {
		t.Fatal("Put changed the original")
	}
	if got := csskit.Stringify(csskit.Clone(p, csskit.WithoutRaw(csskit.RawBetween))); got != "a: b" {
		t.Fatalf("without raw = %q", got)
	}
}

func TestWalk(t *testing.T) {
	root, err := csskit.Parse("@media x { a { b: c } }\n/* d */")
	if err != nil {
		t.Fatal(err)
	}
	var got []csskit.Type
	csskit.Walk(root, func(n csskit.Node, _ int) bool {
		got = append(got, csskit.NodeType(n))
		return true
	})
	want := []csskit.Type{csskit.TypeRoot, csskit.TypeAtRule, csskit.TypeRule, csskit.TypeDecl, csskit.TypeComment}
	if len(got) != len(want) {
		t.Fatalf("visited %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visited %v, want %v", got, want)
		}
	}
}

func TestTokenize(t *testing.T) {
	toks := csskit.Tokenize("a{b:c}")
	kinds := []csskit.TokenKind{
		csskit.TokenWord, csskit.TokenOpenBrace, csskit.TokenWord,
		csskit.TokenColon, csskit.TokenWord, csskit.TokenCloseBrace,
	}
	if len(toks) != len(kinds) {
		t.Fatalf("tokens = %v", toks)
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Errorf("token %d = %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func FuzzRoundTrip(f *testing.F) {
	for _, s := range []string{
		"a{}",
		"a { b: c !important; }",
		"@media x { a { b: c } }",
		"/* c */ d: e;",
		"a { content: \"}\" }",
	} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, in string) {
		if !utf8.ValidString(in) {
			t.Skip("offsets are counted in characters")
		}
		root, err := csskit.Parse(in)
		if err != nil {
			var se *csskit.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error of type %T", err)
			}
			return
		}
		if got := csskit.Stringify(root, verbatim); got != in {
			t.Fatalf("round trip\nwant %q\ngot  %q", in, got)
		}
	})
}

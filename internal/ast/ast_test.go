package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"csskit/internal/ast"
)

func TestNodeTypeNames(t *testing.T) {
	nodes := []ast.Node{
		ast.NewRoot(),
		ast.NewRule(".a"),
		ast.NewDecl("color", "red"),
		ast.NewAtRule("import", ast.Params(`"x.css"`)),
		ast.NewComment("x"),
	}
	want := []string{"root", "rule", "decl", "atrule", "comment"}
	for i, n := range nodes {
		if got := ast.Type(n).String(); got != want[i] {
			t.Errorf("Type(%T) = %q, want %q", n, got, want[i])
		}
		if n.Position() != nil {
			t.Errorf("constructed %T has a position", n)
		}
		if len(ast.RawsOf(n)) != 0 {
			t.Errorf("constructed %T has raws %v", n, ast.RawsOf(n))
		}
	}
	if ast.Type(nil) != 0 {
		t.Error("Type(nil) must be 0")
	}
}

func TestConstructors(t *testing.T) {
	d := ast.NewDecl("color", "red", ast.Important())
	if !d.Important || d.Prop != "color" || d.Value != "red" {
		t.Fatalf("NewDecl = %+v", d)
	}

	stmt := ast.NewAtRule("charset", ast.Params(`"utf-8"`))
	if stmt.HasBody || !stmt.IsStatement() {
		t.Fatal("NewAtRule without children must be a statement")
	}
	block := ast.NewAtRuleBlock("media", ast.Params("print"))
	if !block.HasBody || len(block.Nodes) != 0 {
		t.Fatal("NewAtRuleBlock must have an empty body")
	}
	withKids := ast.NewAtRule("media", nil, ast.NewRule(".a"))
	if !withKids.HasBody || withKids.Params != nil || withKids.ParamsOrEmpty() != "" {
		t.Fatalf("NewAtRule with children = %+v", withKids)
	}

	kids := []ast.Node{ast.NewDecl("a", "b")}
	r := ast.NewRule(".a", kids...)
	kids[0] = ast.NewDecl("x", "y")
	if r.Nodes[0].(*ast.Decl).Prop != "a" {
		t.Fatal("NewRule must not alias the caller's slice")
	}
}

func TestCloneIsDeep(t *testing.T) {
	params := "screen"
	orig := ast.NewRoot(
		&ast.AtRule{Name: "media", Params: &params, HasBody: true, Nodes: []ast.Node{
			&ast.Rule{Selector: ".a", Raws: ast.Raws{ast.RawBetween: "  "}, Nodes: []ast.Node{
				ast.NewDecl("color", "red"),
			}},
		}},
	)
	cp := ast.Clone(orig).(*ast.Root)
	if diff := cmp.Diff(orig, cp); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	at := cp.Nodes[0].(*ast.AtRule)
	*at.Params = "print"
	rule := at.Nodes[0].(*ast.Rule)
	rule.Raws[ast.RawBetween] = ""
	rule.Nodes[0].(*ast.Decl).Value = "blue"

	if params != "screen" {
		t.Fatal("clone shares params with the original")
	}
	origRule := orig.Nodes[0].(*ast.AtRule).Nodes[0].(*ast.Rule)
	if origRule.Raws[ast.RawBetween] != "  " {
		t.Fatal("clone shares raws with the original")
	}
	if origRule.Nodes[0].(*ast.Decl).Value != "red" {
		t.Fatal("clone shares children with the original")
	}
}

func TestCloneOverrides(t *testing.T) {
	d := ast.NewDecl("color", "red")
	got := ast.Clone(d,
		ast.WithProp("background"),
		ast.WithValue("blue"),
		ast.WithImportant(true),
		ast.WithSelector("ignored"),
		ast.WithRaw(ast.RawBetween, ":"),
	).(*ast.Decl)
	want := &ast.Decl{Prop: "background", Value: "blue", Important: true, Raws: ast.Raws{ast.RawBetween: ":"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("override mismatch (-want +got):\n%s", diff)
	}
	if d.Prop != "color" || d.Raws != nil {
		t.Fatal("Clone modified its input")
	}

	at := ast.Clone(ast.NewAtRule("import", ast.Params("a")), ast.WithName("use"), ast.WithParams(nil)).(*ast.AtRule)
	if at.Name != "use" || at.Params != nil {
		t.Fatalf("at-rule override = %+v", at)
	}

	c := ast.Clone(&ast.Comment{Text: "a", Raws: ast.Raws{ast.RawLeft: ""}}, ast.WithText("b"), ast.WithoutRaw(ast.RawLeft)).(*ast.Comment)
	if c.Text != "b" || c.Raws.Has(ast.RawLeft) {
		t.Fatalf("comment override = %+v", c)
	}

	child := ast.NewDecl("a", "b")
	r := ast.Clone(ast.NewRule(".x"), ast.WithNodes(child)).(*ast.Rule)
	if len(r.Nodes) != 1 || r.Nodes[0] == ast.Node(child) {
		t.Fatal("WithNodes must install copies of the children")
	}
	st := ast.Clone(ast.NewAtRule("media", nil), ast.WithNodes(ast.NewRule(".a"))).(*ast.AtRule)
	if !st.HasBody {
		t.Fatal("WithNodes with children must give the at-rule a body")
	}
}

func TestGetAndPut(t *testing.T) {
	d := ast.NewDecl("color", "red")
	if got := ast.Get(d, ast.RawBetween); got != ": " {
		t.Fatalf("default between = %q", got)
	}
	if got := ast.Get(d, ast.RawBefore); got != "\n" {
		t.Fatalf("default before = %q", got)
	}
	if got := ast.Get(d, ast.RawBetween, ":"); got != ":" {
		t.Fatalf("explicit fallback = %q", got)
	}

	put := ast.Put(d, ast.RawBetween, " : ").(*ast.Decl)
	if got := ast.Get(put, ast.RawBetween); got != " : " {
		t.Fatalf("Put value = %q", got)
	}
	if d.Raws != nil {
		t.Fatal("Put mutated its input")
	}
	if put == d {
		t.Fatal("Put must return a new node")
	}
}

func TestTableWithDoesNotMutateDefaults(t *testing.T) {
	custom := ast.DefaultTable().With(ast.DefIndent, "\t")
	if custom.Value(ast.DefIndent) != "\t" {
		t.Fatalf("custom indent = %q", custom.Value(ast.DefIndent))
	}
	if ast.Defaults.Value(ast.DefIndent) != "  " {
		t.Fatal("With mutated the global table")
	}
	var zero ast.Table
	if zero.Value(ast.DefColon) != ": " || zero.Len() != ast.Defaults.Len() {
		t.Fatal("zero Table must read like Defaults")
	}
	if _, ok := custom.Lookup("no-such-key"); ok {
		t.Fatal("unknown key found")
	}
}

func TestForNode(t *testing.T) {
	cases := []struct {
		n    ast.Node
		key  string
		want string
	}{
		{ast.NewComment("x"), ast.RawBefore, "\n"},
		{ast.NewRule(".a"), ast.RawBetween, " "},
		{ast.NewAtRule("import", nil), ast.RawBetween, ""},
		{ast.NewAtRuleBlock("media", nil), ast.RawBetween, " "},
		{ast.NewRoot(), ast.RawAfter, ""},
		{ast.NewRule(".a"), ast.RawAfter, "\n"},
		{ast.NewComment("x"), ast.RawLeft, " "},
		{ast.NewAtRule("x", nil), ast.RawAfterName, " "},
		{ast.NewRule(".a"), ast.RawSemicolon, "true"},
	}
	for _, tc := range cases {
		if got := ast.Defaults.ForNode(tc.n, tc.key); got != tc.want {
			t.Errorf("ForNode(%s, %q) = %q, want %q", ast.Type(tc.n), tc.key, got, tc.want)
		}
	}
}

func TestWalkCleanCount(t *testing.T) {
	root := &ast.Root{Raws: ast.Raws{ast.RawAfter: "\n"}, Nodes: []ast.Node{
		&ast.Rule{Selector: ".a", Raws: ast.Raws{ast.RawBefore: "\n\n", ast.RawBetween: ""}, Nodes: []ast.Node{
			&ast.Decl{Prop: "a", Value: "b", Raws: ast.Raws{ast.RawBefore: " "}},
		}},
		ast.NewComment("c"),
	}}

	var seen []string
	ast.Walk(root, func(n ast.Node, depth int) bool {
		seen = append(seen, ast.Type(n).String())
		return ast.Type(n) != ast.TypeRule
	})
	if diff := cmp.Diff([]string{"root", "rule", "comment"}, seen); diff != "" {
		t.Fatalf("Walk order (-want +got):\n%s", diff)
	}

	if got := ast.Count(root); got != 4 {
		t.Fatalf("Count = %d, want 4", got)
	}

	clean := ast.Clean(root, ast.RawBefore, ast.RawAfter).(*ast.Root)
	rule := clean.Nodes[0].(*ast.Rule)
	if rule.Raws.Has(ast.RawBefore) || !rule.Raws.Has(ast.RawBetween) {
		t.Fatalf("Clean rule raws = %v", rule.Raws)
	}
	if clean.Raws.Has(ast.RawAfter) {
		t.Fatal("Clean kept root after")
	}
	if !root.Raws.Has(ast.RawAfter) {
		t.Fatal("Clean mutated its input")
	}
}

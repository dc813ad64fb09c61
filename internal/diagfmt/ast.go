package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"csskit/internal/ast"
)

// ASTNodeOutput is the serializable form of a node used by the json and yaml
// formats.
type ASTNodeOutput struct {
	Type      string            `json:"type" yaml:"type"`
	Selector  string            `json:"selector,omitempty" yaml:"selector,omitempty"`
	Prop      string            `json:"prop,omitempty" yaml:"prop,omitempty"`
	Value     string            `json:"value,omitempty" yaml:"value,omitempty"`
	Important bool              `json:"important,omitempty" yaml:"important,omitempty"`
	Name      string            `json:"name,omitempty" yaml:"name,omitempty"`
	Params    *string           `json:"params,omitempty" yaml:"params,omitempty"`
	Block     bool              `json:"block,omitempty" yaml:"block,omitempty"`
	Text      string            `json:"text,omitempty" yaml:"text,omitempty"`
	Start     string            `json:"start,omitempty" yaml:"start,omitempty"`
	End       string            `json:"end,omitempty" yaml:"end,omitempty"`
	Raws      map[string]string `json:"raws,omitempty" yaml:"raws,omitempty"`
	Children  []ASTNodeOutput   `json:"children,omitempty" yaml:"children,omitempty"`
}

// BuildASTOutput converts n and its subtree.
func BuildASTOutput(n ast.Node, withRaws bool) ASTNodeOutput {
	out := ASTNodeOutput{Type: ast.Type(n).String()}
	switch n := n.(type) {
	case *ast.Rule:
		out.Selector = n.Selector
	case *ast.Decl:
		out.Prop, out.Value, out.Important = n.Prop, n.Value, n.Important
	case *ast.AtRule:
		out.Name, out.Params, out.Block = n.Name, n.Params, n.HasBody
	case *ast.Comment:
		out.Text = n.Text
	}
	if src := n.Position(); src != nil {
		out.Start = fmt.Sprintf("%d:%d", src.Start.Line, src.Start.Col)
		out.End = fmt.Sprintf("%d:%d", src.End.Line, src.End.Col)
	}
	if withRaws {
		if raws := ast.RawsOf(n); len(raws) > 0 {
			out.Raws = raws.Clone()
		}
	}
	if c, ok := n.(ast.Container); ok {
		for _, ch := range c.Children() {
			if ch != nil {
				out.Children = append(out.Children, BuildASTOutput(ch, withRaws))
			}
		}
	}
	return out
}

func FormatASTJSON(w io.Writer, n ast.Node, withRaws bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildASTOutput(n, withRaws))
}

func FormatASTYAML(w io.Writer, n ast.Node, withRaws bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(BuildASTOutput(n, withRaws)); err != nil {
		return err
	}
	return enc.Close()
}

// FormatASTPretty draws the tree with box characters, one node per line.
func FormatASTPretty(w io.Writer, n ast.Node, withRaws bool) error {
	var sb strings.Builder
	writeTree(&sb, n, "", "", withRaws)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTree(sb *strings.Builder, n ast.Node, first, rest string, withRaws bool) {
	sb.WriteString(first)
	sb.WriteString(nodeLabel(n))
	if withRaws {
		sb.WriteString(rawsLabel(ast.RawsOf(n)))
	}
	sb.WriteByte('\n')

	c, ok := n.(ast.Container)
	if !ok {
		return
	}
	children := c.Children()
	for i, ch := range children {
		if ch == nil {
			continue
		}
		if i == len(children)-1 {
			writeTree(sb, ch, rest+"└─ ", rest+"   ", withRaws)
		} else {
			writeTree(sb, ch, rest+"├─ ", rest+"│  ", withRaws)
		}
	}
}

func nodeLabel(n ast.Node) string {
	var label string
	switch n := n.(type) {
	case *ast.Root:
		label = "root"
	case *ast.Rule:
		label = fmt.Sprintf("rule %q", n.Selector)
	case *ast.Decl:
		label = fmt.Sprintf("decl %s: %q", n.Prop, n.Value)
		if n.Important {
			label += " !important"
		}
	case *ast.AtRule:
		label = "atrule @" + n.Name
		if n.Params != nil {
			label += fmt.Sprintf(" %q", *n.Params)
		}
		if !n.HasBody {
			label += " (statement)"
		}
	case *ast.Comment:
		label = fmt.Sprintf("comment %q", n.Text)
	}
	if src := n.Position(); src != nil {
		label += fmt.Sprintf(" [%d:%d-%d:%d]", src.Start.Line, src.Start.Col, src.End.Line, src.End.Col)
	}
	return label
}

func rawsLabel(r ast.Raws) string {
	if len(r) == 0 {
		return ""
	}
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%q", k, r[k])
	}
	return " {" + strings.Join(parts, " ") + "}"
}

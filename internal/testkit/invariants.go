// Package testkit holds checks shared by tests of the parser, the
// serializer and the public API.
package testkit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"

	"csskit/internal/ast"
	"csskit/internal/format"
	"csskit/internal/parser"
)

// CheckRoundTrip parses text, verifies the tree and checks that verbatim
// output is exactly text.
func CheckRoundTrip(text string, opts ...parser.Option) (*ast.Root, error) {
	root, err := parser.Parse(text, opts...)
	if err != nil {
		return nil, err
	}
	if err := CheckTree(root, text); err != nil {
		return root, err
	}
	if got := format.Stringify(root, format.Options{Verbatim: true}); got != text {
		return root, fmt.Errorf("round trip mismatch: want %q, got %q", text, got)
	}
	return root, nil
}

// CheckFixedPoint parses text and checks that the default output, parsed
// and printed again, does not change.
func CheckFixedPoint(text string, opts ...parser.Option) error {
	root, err := parser.Parse(text, opts...)
	if err != nil {
		return err
	}
	once := format.Stringify(root)
	again, err := parser.Parse(once, opts...)
	if err != nil {
		return fmt.Errorf("reparse of %q: %w", once, err)
	}
	if twice := format.Stringify(again); twice != once {
		return fmt.Errorf("not a fixed point: %q printed as %q", once, twice)
	}
	return nil
}

// CheckTree runs structural and position checks on a parsed tree:
//  1. every source range is ordered and inside text
//  2. a child's range lies inside its parent's
//  3. statement at-rules have no children
//  4. important declarations do not keep the flag in their value
func CheckTree(root *ast.Root, text string) error {
	if root == nil {
		return fmt.Errorf("nil root")
	}
	size, err := safecast.Conv[uint32](utf8.RuneCountInString(text))
	if err != nil {
		return fmt.Errorf("text length overflow: %w", err)
	}
	return checkNode(root, nil, size)
}

func checkNode(n ast.Node, parent *ast.Source, size uint32) error {
	src := n.Position()
	if src != nil {
		if src.End.Offset < src.Start.Offset {
			return fmt.Errorf("%s: range %d..%d is reversed", n.Type(), src.Start.Offset, src.End.Offset)
		}
		if src.End.Offset >= size {
			return fmt.Errorf("%s: range end %d beyond text of %d characters", n.Type(), src.End.Offset, size)
		}
		if parent != nil && (src.Start.Offset < parent.Start.Offset || src.End.Offset > parent.End.Offset) {
			return fmt.Errorf("%s: range %d..%d outside parent %d..%d",
				n.Type(), src.Start.Offset, src.End.Offset, parent.Start.Offset, parent.End.Offset)
		}
	}

	switch n := n.(type) {
	case *ast.AtRule:
		if !n.HasBody && len(n.Nodes) > 0 {
			return fmt.Errorf("statement @%s has %d children", n.Name, len(n.Nodes))
		}
	case *ast.Decl:
		flat := strings.ToLower(strings.Join(strings.Fields(n.Value), ""))
		if n.Important && strings.HasSuffix(flat, "!important") {
			return fmt.Errorf("decl %s keeps !important in its value %q", n.Prop, n.Value)
		}
	}

	c, ok := n.(ast.Container)
	if !ok {
		return nil
	}
	if src == nil {
		src = parent
	}
	for _, ch := range c.Children() {
		if ch == nil {
			return fmt.Errorf("%s has a nil child", n.Type())
		}
		if err := checkNode(ch, src, size); err != nil {
			return err
		}
	}
	return nil
}

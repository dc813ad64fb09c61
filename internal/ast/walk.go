package ast

// Walk visits n and its descendants depth-first in document order. fn
// receives the nesting depth (0 for n itself); returning false skips the
// children of that node.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	if c, ok := n.(Container); ok {
		for _, ch := range c.Children() {
			walk(ch, depth+1, fn)
		}
	}
}

// Clean returns a deep copy of n with the given raw keys removed from every
// node, so those parts print with the default formatting.
func Clean(n Node, keys ...string) Node {
	out := Clone(n)
	Walk(out, func(m Node, _ int) bool {
		raws := *m.rawsRef()
		for _, k := range keys {
			delete(raws, k)
		}
		return true
	})
	return out
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	total := 0
	Walk(n, func(Node, int) bool {
		total++
		return true
	})
	return total
}

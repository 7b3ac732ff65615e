package ast

// Inspect walks the tree depth-first in source order. If f returns false the
// children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range n.Children() {
		Inspect(c, f)
	}
}

// SubtreeWeight sums Weight over n and all of its descendants.
func SubtreeWeight(n Node) int {
	total := 0
	Inspect(n, func(m Node) bool {
		total += Weight(m)
		return true
	})
	return total
}

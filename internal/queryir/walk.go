package queryir

// Walk visits every leaf of expr in left-to-right order, the same order in
// which a compiler emits parameters. Nil children are skipped.
func Walk(expr Expression, visit func(Leaf)) {
	switch e := expr.(type) {
	case Leaf:
		visit(e)
	case *Leaf:
		if e != nil {
			visit(*e)
		}
	case Composite:
		Walk(e.Left, visit)
		Walk(e.Right, visit)
	case *Composite:
		if e != nil {
			Walk(e.Left, visit)
			Walk(e.Right, visit)
		}
	}
}

// Paths returns the distinct paths referenced by exprs, in order of first
// appearance.
func Paths(exprs ...Expression) []Path {
	var paths []Path
	seen := make(map[string]bool)
	for _, expr := range exprs {
		Walk(expr, func(l Leaf) {
			key := l.Path.Column("\x00")
			if seen[key] {
				return
			}
			seen[key] = true
			paths = append(paths, l.Path)
		})
	}
	return paths
}

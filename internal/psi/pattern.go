package psi

// Pattern matches elements structurally.
type Pattern interface {
	// Matches reports whether the element satisfies the pattern.
	Matches(el Element) bool
}

// PatternFunc adapts a function to the Pattern interface.
type PatternFunc func(el Element) bool

// Matches reports whether the element satisfies the pattern.
func (f PatternFunc) Matches(el Element) bool {
	return f(el)
}

// OfKind matches elements of exactly the given kind.
func OfKind(kind Kind) Pattern {
	return PatternFunc(func(el Element) bool {
		return el != nil && el.Kind() == kind
	})
}

// Or matches elements satisfying any of the given patterns.
func Or(patterns ...Pattern) Pattern {
	return PatternFunc(func(el Element) bool {
		for _, p := range patterns {
			if p.Matches(el) {
				return true
			}
		}
		return false
	})
}

// And matches elements satisfying all of the given patterns.
func And(patterns ...Pattern) Pattern {
	return PatternFunc(func(el Element) bool {
		for _, p := range patterns {
			if !p.Matches(el) {
				return false
			}
		}
		return true
	})
}

// Inside matches elements with an ancestor satisfying the given pattern.
func Inside(ancestor Pattern) Pattern {
	return PatternFunc(func(el Element) bool {
		if el == nil {
			return false
		}
		for p := el.Parent(); p != nil; p = p.Parent() {
			if ancestor.Matches(p) {
				return true
			}
		}
		return false
	})
}

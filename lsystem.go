package plantgen

import "iter"

// LSystem pairs an axiom with the rewriter that grows it.
type LSystem struct {
	Axiom    string
	Rewriter Rewriter
}

func NewLSystem(axiom string, rewriter Rewriter) *LSystem {
	return &LSystem{
		Axiom:    axiom,
		Rewriter: rewriter,
	}
}

// Iterate returns generation n. Generation 0 is the axiom.
func (l *LSystem) Iterate(n int) string {
	l.reset()
	result := l.Axiom
	for i := 0; i < n; i++ {
		result = l.Rewriter.Rewrite(result)
	}
	return result
}

// Generations yields generations 0 through n in order. Every range over the
// sequence starts again from the axiom.
func (l *LSystem) Generations(n int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		l.reset()
		current := l.Axiom
		for i := 0; i <= n; i++ {
			if i > 0 {
				current = l.Rewriter.Rewrite(current)
			}
			if !yield(i, current) {
				return
			}
		}
	}
}

func (l *LSystem) reset() {
	if r, ok := l.Rewriter.(interface{ Reset() }); ok {
		r.Reset()
	}
}

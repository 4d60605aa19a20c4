package report

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithTopN bounds the length of the votes report list.
func WithTopN(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.topN = n
		}
	}
}

// WithLikeBarWidth caps the like marks per ranked entry.
func WithLikeBarWidth(width int) Option {
	return func(g *Generator) {
		if width > 0 {
			g.likeBarWidth = width
		}
	}
}

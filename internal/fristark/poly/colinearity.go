package poly

import "github.com/fristark/fristark/internal/fristark/field"

// Point is an (x, y) pair over a field, used by the colinearity test and by
// FRI's per-round consistency checks.
type Point struct {
	X *field.FieldElement
	Y *field.FieldElement
}

// TestColinearity reports whether the three points lie on a common line.
// Uses the cross-product form (y1-y0)(x2-x0) = (y2-y0)(x1-x0): it is closed
// over the field and avoids division (and the divide-by-zero case a slope
// computation would hit when two points share an x coordinate).
func TestColinearity(p0, p1, p2 Point) bool {
	lhs := p1.Y.Sub(p0.Y).Mul(p2.X.Sub(p0.X))
	rhs := p2.Y.Sub(p0.Y).Mul(p1.X.Sub(p0.X))
	return lhs.Equal(rhs)
}

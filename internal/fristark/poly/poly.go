// Package poly implements univariate polynomial algebra over a field.Field:
// arithmetic, Euclidean division, Horner evaluation, Lagrange interpolation,
// zerofiers, and the three-point colinearity predicate FRI relies on.
package poly

import (
	"errors"
	"fmt"

	"github.com/fristark/fristark/internal/fristark/field"
)

// ErrDivisionByZero is returned by DivMod when the divisor is the zero
// polynomial.
var ErrDivisionByZero = errors.New("poly: division by zero polynomial")

// ErrDuplicateDomain is returned by InterpolateDomain when the domain
// contains repeated points.
var ErrDuplicateDomain = errors.New("poly: domain points must be distinct")

// UniPoly is an ordered sequence of coefficients [c0, c1, ..., cd]
// representing sum(ci * x^i). Trailing zero coefficients are always
// trimmed at construction, so degree -1 identifies the zero polynomial
// unambiguously.
type UniPoly struct {
	field  *field.Field
	coeffs []*field.FieldElement
}

// New builds a polynomial from coefficients, trimming trailing zeros.
func New(f *field.Field, coeffs []*field.FieldElement) *UniPoly {
	trimmed := trim(coeffs)
	return &UniPoly{field: f, coeffs: trimmed}
}

func trim(coeffs []*field.FieldElement) []*field.FieldElement {
	last := len(coeffs) - 1
	for last >= 0 && coeffs[last].IsZero() {
		last--
	}
	out := make([]*field.FieldElement, last+1)
	copy(out, coeffs[:last+1])
	return out
}

// Zero returns the zero polynomial over f.
func Zero(f *field.Field) *UniPoly {
	return &UniPoly{field: f, coeffs: nil}
}

// One returns the constant polynomial 1 over f.
func One(f *field.Field) *UniPoly {
	return New(f, []*field.FieldElement{f.One()})
}

// Field returns the field the polynomial is defined over.
func (p *UniPoly) Field() *field.Field {
	return p.field
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p *UniPoly) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *UniPoly) IsZero() bool {
	return len(p.coeffs) == 0
}

// LeadingCoefficient returns the coefficient of the highest-degree term, or
// zero for the zero polynomial.
func (p *UniPoly) LeadingCoefficient() *field.FieldElement {
	if p.IsZero() {
		return p.field.Zero()
	}
	return p.coeffs[len(p.coeffs)-1]
}

// Coefficients returns a defensive copy of the coefficient list.
func (p *UniPoly) Coefficients() []*field.FieldElement {
	out := make([]*field.FieldElement, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Coefficient returns the coefficient of x^degree, or zero if degree is out
// of range.
func (p *UniPoly) Coefficient(degree int) *field.FieldElement {
	if degree < 0 || degree >= len(p.coeffs) {
		return p.field.Zero()
	}
	return p.coeffs[degree]
}

// Equal reports equality after trimming trailing zeros.
func (p *UniPoly) Equal(other *UniPoly) bool {
	if len(p.coeffs) != len(other.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(other.coeffs[i]) {
			return false
		}
	}
	return true
}

// Add returns p + other.
func (p *UniPoly) Add(other *UniPoly) *UniPoly {
	n := len(p.coeffs)
	if len(other.coeffs) > n {
		n = len(other.coeffs)
	}
	sum := make([]*field.FieldElement, n)
	for i := 0; i < n; i++ {
		a := p.Coefficient(i)
		b := other.Coefficient(i)
		sum[i] = a.Add(b)
	}
	return New(p.field, sum)
}

// Neg returns -p.
func (p *UniPoly) Neg() *UniPoly {
	neg := make([]*field.FieldElement, len(p.coeffs))
	for i, c := range p.coeffs {
		neg[i] = c.Neg()
	}
	return New(p.field, neg)
}

// Sub returns p - other.
func (p *UniPoly) Sub(other *UniPoly) *UniPoly {
	return p.Add(other.Neg())
}

// Mul returns p * other via schoolbook convolution.
func (p *UniPoly) Mul(other *UniPoly) *UniPoly {
	if p.IsZero() || other.IsZero() {
		return Zero(p.field)
	}
	out := make([]*field.FieldElement, len(p.coeffs)+len(other.coeffs)-1)
	for i := range out {
		out[i] = p.field.Zero()
	}
	for i, a := range p.coeffs {
		for j, b := range other.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return New(p.field, out)
}

// Scale returns the polynomial whose coefficients are p's scaled by gamma.
func (p *UniPoly) Scale(gamma *field.FieldElement) *UniPoly {
	out := make([]*field.FieldElement, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Mul(gamma)
	}
	return New(p.field, out)
}

// DivMod performs Euclidean division, returning (quotient, remainder) such
// that p = quotient*divisor + remainder and deg(remainder) < deg(divisor).
func (p *UniPoly) DivMod(divisor *UniPoly) (*UniPoly, *UniPoly, error) {
	if divisor.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	remainder := New(p.field, p.Coefficients())
	quotientCoeffs := make([]*field.FieldElement, 0)
	for !remainder.IsZero() && remainder.Degree() >= divisor.Degree() {
		degreeDiff := remainder.Degree() - divisor.Degree()
		leadCoeff, err := remainder.LeadingCoefficient().Div(divisor.LeadingCoefficient())
		if err != nil {
			return nil, nil, fmt.Errorf("poly: divmod: %w", err)
		}
		for len(quotientCoeffs) <= degreeDiff {
			quotientCoeffs = append(quotientCoeffs, p.field.Zero())
		}
		quotientCoeffs[degreeDiff] = leadCoeff
		termCoeffs := make([]*field.FieldElement, degreeDiff+1)
		for i := range termCoeffs {
			termCoeffs[i] = p.field.Zero()
		}
		termCoeffs[degreeDiff] = leadCoeff
		term := New(p.field, termCoeffs)
		remainder = remainder.Sub(divisor.Mul(term))
	}
	return New(p.field, quotientCoeffs), remainder, nil
}

// Evaluate computes p(x) using Horner's rule.
func (p *UniPoly) Evaluate(x *field.FieldElement) *field.FieldElement {
	acc := p.field.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	return acc
}

// EvaluateDomain evaluates p at every point of domain.
func (p *UniPoly) EvaluateDomain(domain []*field.FieldElement) []*field.FieldElement {
	out := make([]*field.FieldElement, len(domain))
	for i, x := range domain {
		out[i] = p.Evaluate(x)
	}
	return out
}

// InterpolateDomain returns the unique polynomial of degree < len(domain)
// that evaluates to values[i] at domain[i], via Lagrange interpolation.
// Fails with ErrDuplicateDomain if domain points are not distinct.
func InterpolateDomain(f *field.Field, domain, values []*field.FieldElement) (*UniPoly, error) {
	if len(domain) != len(values) {
		return nil, fmt.Errorf("poly: domain and values length mismatch: %d != %d", len(domain), len(values))
	}
	for i := range domain {
		for j := i + 1; j < len(domain); j++ {
			if domain[i].Equal(domain[j]) {
				return nil, ErrDuplicateDomain
			}
		}
	}
	result := Zero(f)
	for i := range domain {
		numerator := One(f)
		denom := f.One()
		for j := range domain {
			if i == j {
				continue
			}
			// numerator *= (x - domain[j])
			factor := New(f, []*field.FieldElement{domain[j].Neg(), f.One()})
			numerator = numerator.Mul(factor)
			denom = denom.Mul(domain[i].Sub(domain[j]))
		}
		scalar, err := values[i].Div(denom)
		if err != nil {
			return nil, fmt.Errorf("poly: interpolation: %w", err)
		}
		result = result.Add(numerator.Scale(scalar))
	}
	return result, nil
}

// ZerofierDomain returns the monic polynomial vanishing exactly on domain:
// prod_i (x - domain[i]).
func ZerofierDomain(f *field.Field, domain []*field.FieldElement) *UniPoly {
	result := One(f)
	for _, d := range domain {
		factor := New(f, []*field.FieldElement{d.Neg(), f.One()})
		result = result.Mul(factor)
	}
	return result
}

// Pow raises p to the given exponent via square-and-multiply. Pow(0) is the
// constant polynomial 1.
func (p *UniPoly) Pow(exp uint32) *UniPoly {
	result := One(p.field)
	base := p
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Package field implements prime-field arithmetic over a fixed modulus.
//
// The default modulus is the Goldilocks prime p = 2^64 - 2^32 + 1, whose
// multiplicative group has a smooth order supporting power-of-two roots of
// unity up to order 2^32, exactly what the FRI folding schedule needs.
package field

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNotInvertible is returned by Inv when the element has no multiplicative
// inverse, which for a prime field only happens for the zero element.
var ErrNotInvertible = errors.New("field: element is not invertible")

// ErrUnsupportedOrder is returned by Field.PrimitiveNthRoot when n is not a
// power of two, or exceeds the field's 2-adic capacity.
var ErrUnsupportedOrder = errors.New("field: unsupported root order")

// GoldilocksPrime is p = 2^64 - 2^32 + 1, the recommended default modulus.
var GoldilocksPrime = new(big.Int).SetUint64(18446744069414584321)

// goldilocksGenerator7ToMaxRoot is 7^((p-1)/2^32) mod p: a primitive
// 2^32-th root of unity of the Goldilocks field, obtained from a generator
// of F_p^* (7) raised to the cofactor of the maximal 2-adic subgroup.
const goldilocksGenerator7ToMaxRoot = uint64(1753635133440165772)

// maxTwoAdicOrder is the largest power-of-two root-of-unity order the
// Goldilocks field supports.
const maxTwoAdicOrder = uint64(1) << 32

// Field is a small, cheaply copyable descriptor for a prime field. Elements
// embed a pointer back to their field rather than requiring callers to
// thread field parameters through every call.
type Field struct {
	p *big.Int
}

// FieldElement is a residue class modulo the field's prime. Every
// constructed element is already reduced into [0, p).
type FieldElement struct {
	field *Field
	value *big.Int
}

// New returns a field with the given modulus. The modulus is not checked
// for primality; callers are responsible for supplying a prime.
func New(p *big.Int) *Field {
	return &Field{p: new(big.Int).Set(p)}
}

// NewGoldilocks returns a field parameterized by the Goldilocks prime.
func NewGoldilocks() *Field {
	return New(GoldilocksPrime)
}

// Modulus returns a copy of the field's prime.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// Equals reports whether two field descriptors share the same modulus.
func (f *Field) Equals(other *Field) bool {
	return f.p.Cmp(other.p) == 0
}

// NewElement reduces v modulo p and returns the resulting element.
func (f *Field) NewElement(v *big.Int) *FieldElement {
	reduced := new(big.Int).Mod(v, f.p)
	return &FieldElement{field: f, value: reduced}
}

// NewElementFromUint64 reduces v modulo p.
func (f *Field) NewElementFromUint64(v uint64) *FieldElement {
	return f.NewElement(new(big.Int).SetUint64(v))
}

// NewElementFromInt64 reduces v modulo p.
func (f *Field) NewElementFromInt64(v int64) *FieldElement {
	return f.NewElement(big.NewInt(v))
}

// Zero returns the additive identity.
func (f *Field) Zero() *FieldElement {
	return f.NewElementFromInt64(0)
}

// One returns the multiplicative identity.
func (f *Field) One() *FieldElement {
	return f.NewElementFromInt64(1)
}

// Sample interprets b as a big-endian unsigned integer and reduces it
// modulo p. Deterministic and stable across implementations.
func (f *Field) Sample(b []byte) *FieldElement {
	return f.NewElement(new(big.Int).SetBytes(b))
}

// PrimitiveNthRoot returns a primitive n-th root of unity. n must be a
// power of two dividing the multiplicative group's order, i.e. at most the
// field's 2-adic capacity.
func (f *Field) PrimitiveNthRoot(n uint64) (*FieldElement, error) {
	if n == 0 || (n&(n-1)) != 0 || n > maxTwoAdicOrder {
		return nil, fmt.Errorf("%w: n=%d", ErrUnsupportedOrder, n)
	}
	if !f.Equals(NewGoldilocks()) {
		return nil, fmt.Errorf("%w: primitive roots are only known for the Goldilocks field", ErrUnsupportedOrder)
	}
	root := f.NewElementFromUint64(goldilocksGenerator7ToMaxRoot)
	order := maxTwoAdicOrder
	for order != n {
		root = root.Mul(root)
		order /= 2
	}
	return root, nil
}

// Field returns the field this element belongs to.
func (e *FieldElement) Field() *Field {
	return e.field
}

// Big returns a copy of the element's value as a big.Int in [0, p).
func (e *FieldElement) Big() *big.Int {
	return new(big.Int).Set(e.value)
}

func (e *FieldElement) checkSameField(other *FieldElement) {
	if !e.field.Equals(other.field) {
		panic("field: operands belong to different fields")
	}
}

// Add returns e + other.
func (e *FieldElement) Add(other *FieldElement) *FieldElement {
	e.checkSameField(other)
	return e.field.NewElement(new(big.Int).Add(e.value, other.value))
}

// Sub returns e - other.
func (e *FieldElement) Sub(other *FieldElement) *FieldElement {
	e.checkSameField(other)
	return e.field.NewElement(new(big.Int).Sub(e.value, other.value))
}

// Neg returns -e.
func (e *FieldElement) Neg() *FieldElement {
	return e.field.NewElement(new(big.Int).Neg(e.value))
}

// Mul returns e * other.
func (e *FieldElement) Mul(other *FieldElement) *FieldElement {
	e.checkSameField(other)
	return e.field.NewElement(new(big.Int).Mul(e.value, other.value))
}

// Inv returns the multiplicative inverse of e via the extended Euclidean
// algorithm. Fails with ErrNotInvertible only for the zero element.
func (e *FieldElement) Inv() (*FieldElement, error) {
	if e.value.Sign() == 0 {
		return nil, fmt.Errorf("%w: 0 has no inverse", ErrNotInvertible)
	}
	x := new(big.Int)
	gcd := new(big.Int).GCD(x, nil, e.value, e.field.p)
	if gcd.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w: value=%s", ErrNotInvertible, e.value.String())
	}
	if x.Sign() < 0 {
		x.Add(x, e.field.p)
	}
	return e.field.NewElement(x), nil
}

// Div returns e / other.
func (e *FieldElement) Div(other *FieldElement) (*FieldElement, error) {
	e.checkSameField(other)
	inv, err := other.Inv()
	if err != nil {
		return nil, fmt.Errorf("field: division failed: %w", err)
	}
	return e.Mul(inv), nil
}

// Pow raises e to the given exponent via square-and-multiply. Pow(0) = 1,
// and 0^e = 0 for e > 0.
func (e *FieldElement) Pow(exp uint64) *FieldElement {
	result := e.field.One()
	base := e
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Equal reports value equality within the same field.
func (e *FieldElement) Equal(other *FieldElement) bool {
	if !e.field.Equals(other.field) {
		return false
	}
	return e.value.Cmp(other.value) == 0
}

// IsZero reports whether e is the additive identity.
func (e *FieldElement) IsZero() bool {
	return e.value.Sign() == 0
}

// IsOne reports whether e is the multiplicative identity.
func (e *FieldElement) IsOne() bool {
	return e.value.Cmp(big.NewInt(1)) == 0
}

// String returns the decimal representation of the element's value.
func (e *FieldElement) String() string {
	return e.value.String()
}

// canonicalByteWidth is the fixed width used for the wire encoding of a
// field element: 8 bytes suffices for any value strictly below 2^64.
const canonicalByteWidth = 8

// Bytes returns the canonical fixed-width (8-byte) big-endian encoding of
// the element, used by the transcript wire format and Merkle leaf bytes.
func (e *FieldElement) Bytes() []byte {
	out := make([]byte, canonicalByteWidth)
	e.value.FillBytes(out)
	return out
}

// ElementFromCanonicalBytes decodes the fixed-width encoding produced by
// Bytes back into a field element.
func (f *Field) ElementFromCanonicalBytes(b []byte) *FieldElement {
	return f.NewElement(new(big.Int).SetBytes(b))
}

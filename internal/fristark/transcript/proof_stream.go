// Package transcript implements the Fiat-Shamir transcript shared by the
// FRI prover and verifier: an append-only, typed object stream with a read
// cursor, plus deterministic digest derivation over the serialized prefix.
package transcript

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/fristark/fristark/internal/fristark/field"
)

// ErrTranscriptExhausted is returned by the Pull* methods when the read
// cursor has reached the end of the object list.
var ErrTranscriptExhausted = errors.New("transcript: cannot pull; queue empty")

// ErrWrongItemKind is returned when a Pull* method is called against an
// item of a different kind than expected. Indicates a malformed or
// out-of-order proof.
var ErrWrongItemKind = errors.New("transcript: unexpected item kind")

// ProofStream is an append-only ordered list of typed objects plus a read
// cursor. The prover appends via Push*; the verifier drains via Pull* in
// the same order, deriving identical Fiat-Shamir challenges along the way.
type ProofStream struct {
	items  []item
	cursor int
}

// New returns an empty proof stream.
func New() *ProofStream {
	return &ProofStream{}
}

// PushBytes appends a raw byte string (used for Merkle roots).
func (ps *ProofStream) PushBytes(b []byte) {
	ps.items = append(ps.items, item{kind: kindBytes, bytes: append([]byte(nil), b...)})
}

// PushFieldElement appends a single field element.
func (ps *ProofStream) PushFieldElement(e *field.FieldElement) {
	ps.items = append(ps.items, item{kind: kindFieldElement, element: e})
}

// PushTriple appends a triple of field elements (an (a, b, c) query result).
func (ps *ProofStream) PushTriple(a, b, c *field.FieldElement) {
	ps.items = append(ps.items, item{kind: kindTriple, triple: [3]*field.FieldElement{a, b, c}})
}

// PushVector appends a vector of field elements (a codeword).
func (ps *ProofStream) PushVector(v []*field.FieldElement) {
	ps.items = append(ps.items, item{kind: kindVector, vector: append([]*field.FieldElement(nil), v...)})
}

// PushMerklePath appends a Merkle authentication path.
func (ps *ProofStream) PushMerklePath(path [][]byte) {
	cp := make([][]byte, len(path))
	for i, n := range path {
		cp[i] = append([]byte(nil), n...)
	}
	ps.items = append(ps.items, item{kind: kindMerklePath, path: cp})
}

func (ps *ProofStream) pull(want kind) (item, error) {
	if ps.cursor >= len(ps.items) {
		return item{}, ErrTranscriptExhausted
	}
	it := ps.items[ps.cursor]
	if it.kind != want {
		return item{}, fmt.Errorf("%w: wanted %d, got %d", ErrWrongItemKind, want, it.kind)
	}
	ps.cursor++
	return it, nil
}

// PullBytes returns the next byte-string object.
func (ps *ProofStream) PullBytes() ([]byte, error) {
	it, err := ps.pull(kindBytes)
	if err != nil {
		return nil, err
	}
	return it.bytes, nil
}

// PullFieldElement returns the next field element.
func (ps *ProofStream) PullFieldElement() (*field.FieldElement, error) {
	it, err := ps.pull(kindFieldElement)
	if err != nil {
		return nil, err
	}
	return it.element, nil
}

// PullTriple returns the next triple of field elements.
func (ps *ProofStream) PullTriple() ([3]*field.FieldElement, error) {
	it, err := ps.pull(kindTriple)
	if err != nil {
		return [3]*field.FieldElement{}, err
	}
	return it.triple, nil
}

// PullVector returns the next field-element vector.
func (ps *ProofStream) PullVector() ([]*field.FieldElement, error) {
	it, err := ps.pull(kindVector)
	if err != nil {
		return nil, err
	}
	return it.vector, nil
}

// PullMerklePath returns the next Merkle authentication path.
func (ps *ProofStream) PullMerklePath() ([][]byte, error) {
	it, err := ps.pull(kindMerklePath)
	if err != nil {
		return nil, err
	}
	return it.path, nil
}

// Cursor returns the current read position.
func (ps *ProofStream) Cursor() int {
	return ps.cursor
}

// Rewind resets the read cursor to the start of the object list, letting a
// verifier replay a stream the prover just finished writing.
func (ps *ProofStream) Rewind() {
	ps.cursor = 0
}

// Len returns the total number of pushed objects.
func (ps *ProofStream) Len() int {
	return len(ps.items)
}

func serialize(items []item) []byte {
	var out []byte
	for _, it := range items {
		out = append(out, it.encode()...)
	}
	return out
}

// Serialize returns the canonical encoding of the full object list.
func (ps *ProofStream) Serialize() []byte {
	return serialize(ps.items)
}

func fiatShamir(data []byte, numBytes int) []byte {
	digest := sha3.Sum256(data)
	if numBytes > len(digest) {
		numBytes = len(digest)
	}
	return digest[:numBytes]
}

// ProverFiatShamir returns the first numBytes of SHA3-256 over the full
// serialized transcript so far. Called by the prover immediately after
// pushing the objects a challenge should depend on.
func (ps *ProofStream) ProverFiatShamir(numBytes int) []byte {
	return fiatShamir(ps.Serialize(), numBytes)
}

// VerifierFiatShamir returns the first numBytes of SHA3-256 over the
// serialized prefix up to the current read cursor. This must be called at
// the exact point in the verification loop where the prover called
// ProverFiatShamir, so both sides hash an identical prefix and derive the
// same challenge.
func (ps *ProofStream) VerifierFiatShamir(numBytes int) []byte {
	return fiatShamir(serialize(ps.items[:ps.cursor]), numBytes)
}

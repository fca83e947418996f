package transcript

import (
	"encoding/binary"

	"github.com/fristark/fristark/internal/fristark/field"
)

// kind tags the payload of a transcript item so its encoding stays
// unambiguous without needing reflection or external schema.
type kind uint8

const (
	kindBytes kind = iota
	kindFieldElement
	kindTriple
	kindVector
	kindMerklePath
)

// item is one entry of the proof stream's object list.
type item struct {
	kind    kind
	bytes   []byte
	element *field.FieldElement
	triple  [3]*field.FieldElement
	vector  []*field.FieldElement
	path    [][]byte
}

// encode produces the canonical, deterministic byte representation of the
// item used for Fiat-Shamir hashing: a one-byte kind tag followed by the
// payload. Field elements and triples use the fixed 8-byte canonical
// encoding per element (see field.FieldElement.Bytes) with no length
// prefix; byte strings, vectors, paths and each path node carry a u32
// big-endian length prefix, so the stream never depends on map iteration
// order or any other non-deterministic detail.
func (it item) encode() []byte {
	out := []byte{byte(it.kind)}
	switch it.kind {
	case kindBytes:
		out = append(out, u32be(len(it.bytes))...)
		out = append(out, it.bytes...)
	case kindFieldElement:
		out = append(out, it.element.Bytes()...)
	case kindTriple:
		for _, e := range it.triple {
			out = append(out, e.Bytes()...)
		}
	case kindVector:
		out = append(out, u32be(len(it.vector))...)
		for _, e := range it.vector {
			out = append(out, e.Bytes()...)
		}
	case kindMerklePath:
		out = append(out, u32be(len(it.path))...)
		for _, node := range it.path {
			out = append(out, u32be(len(node))...)
			out = append(out, node...)
		}
	}
	return out
}

func u32be(n int) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(n))
	return b[:]
}

// Package merkle implements a recursive binary Merkle tree over byte-string
// leaves, used as a vector commitment to codewords throughout FRI.
//
// Internal nodes hash with Blake2b-256. The single-leaf tree is a
// deliberate exception: commit([x]) = x (no hash applied), which simplifies
// the base case of open() and must never be changed independently of it.
package merkle

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ErrNotPowerOfTwo is returned when the leaf count is not a power of two.
var ErrNotPowerOfTwo = errors.New("merkle: leaf count must be a power of two")

// ErrIndexOutOfRange is returned by Open when index is outside [0, len(leaves)).
var ErrIndexOutOfRange = errors.New("merkle: index out of range")

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func hashPair(left, right []byte) []byte {
	h := blake2b.Sum256(append(append([]byte(nil), left...), right...))
	return h[:]
}

// Commit returns the Merkle root of leaves. For a single leaf, the root is
// the leaf itself (no hashing), preserved for transcript compatibility
// with Open/Verify's base case.
func Commit(leaves [][]byte) []byte {
	if len(leaves) == 1 {
		return append([]byte(nil), leaves[0]...)
	}
	mid := len(leaves) / 2
	left := Commit(leaves[:mid])
	right := Commit(leaves[mid:])
	return hashPair(left, right)
}

// Open returns the authentication path for leaves[index]: the sequence of
// sibling commitments from the leaf's level up to the root's children.
func Open(index int, leaves [][]byte) ([][]byte, error) {
	if !isPowerOfTwo(len(leaves)) {
		return nil, ErrNotPowerOfTwo
	}
	if index < 0 || index >= len(leaves) {
		return nil, fmt.Errorf("%w: index=%d len=%d", ErrIndexOutOfRange, index, len(leaves))
	}
	if len(leaves) == 1 {
		return [][]byte{}, nil
	}
	return open(index, leaves)
}

func open(index int, leaves [][]byte) ([][]byte, error) {
	if len(leaves) == 2 {
		return [][]byte{append([]byte(nil), leaves[1-index]...)}, nil
	}
	mid := len(leaves) / 2
	if index < mid {
		path, err := open(index, leaves[:mid])
		if err != nil {
			return nil, err
		}
		return append(path, Commit(leaves[mid:])), nil
	}
	path, err := open(index-mid, leaves[mid:])
	if err != nil {
		return nil, err
	}
	return append(path, Commit(leaves[:mid])), nil
}

// Verify reconstructs the root from leaf and path using the bit pattern of
// index (LSB first) and compares it to root. Fails closed when index is out
// of range for the given path length.
func Verify(root []byte, index int, path [][]byte, leaf []byte) bool {
	if len(path) == 0 {
		// Single-leaf tree: commit([x]) = x, so the "path" is empty and the
		// leaf itself must equal the root.
		return index == 0 && bytes.Equal(root, leaf)
	}
	if index < 0 || index >= (1<<uint(len(path))) {
		return false
	}
	current := append([]byte(nil), leaf...)
	idx := index
	for _, sibling := range path {
		if idx%2 == 0 {
			current = hashPair(current, sibling)
		} else {
			current = hashPair(sibling, current)
		}
		idx >>= 1
	}
	return bytes.Equal(root, current)
}

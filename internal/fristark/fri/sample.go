package fri

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// ErrInsufficientEntropy is returned by sampleIndices when more indices are
// requested than the reduced domain can supply without repetition.
var ErrInsufficientEntropy = errors.New("fri: insufficient entropy for requested index count")

// sampleIndices draws `number` distinct-by-reduction indices in [0, size)
// from seed: a counter is hashed alongside the seed with Blake2b-512 and
// reduced modulo size to obtain a candidate index, which is accepted only
// if index mod reducedSize has not been seen before. Indices are returned
// in acceptance order.
func sampleIndices(seed []byte, size, reducedSize, number int) ([]int, error) {
	if number > 2*reducedSize || number > reducedSize {
		return nil, fmt.Errorf("%w: requested %d from reduced size %d", ErrInsufficientEntropy, number, reducedSize)
	}

	indices := make([]int, 0, number)
	seenReduced := make(map[int]bool, number)

	sizeBig := big.NewInt(int64(size))
	var counter uint64
	for len(indices) < number {
		var counterBytes [8]byte
		binary.BigEndian.PutUint64(counterBytes[:], counter)
		digest := blake2b.Sum512(append(append([]byte(nil), seed...), counterBytes[:]...))

		index := new(big.Int).Mod(new(big.Int).SetBytes(digest[:]), sizeBig)
		idx := int(index.Int64())
		reduced := idx % reducedSize

		if !seenReduced[reduced] {
			seenReduced[reduced] = true
			indices = append(indices, idx)
		}
		counter++
	}
	return indices, nil
}

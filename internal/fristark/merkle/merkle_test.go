package merkle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fristark/fristark/internal/fristark/merkle"
)

func leaves8() [][]byte {
	out := make([][]byte, 8)
	for i := range out {
		out[i] = []byte{'a' + byte(i)}
	}
	return out
}

func TestCompletenessOverAllIndices(t *testing.T) {
	data := leaves8()
	root := merkle.Commit(data)
	for i := range data {
		path, err := merkle.Open(i, data)
		require.NoError(t, err)
		require.True(t, merkle.Verify(root, i, path, data[i]), "index %d should verify", i)
	}
}

func TestSingleLeafCommitIsLeafItself(t *testing.T) {
	leaf := []byte("only-leaf")
	root := merkle.Commit([][]byte{leaf})
	require.Equal(t, leaf, root)
}

func TestMutatingLeafChangesRoot(t *testing.T) {
	data := leaves8()
	root := merkle.Commit(data)

	mutated := make([][]byte, len(data))
	copy(mutated, data)
	mutated[3] = []byte{'Z'}
	newRoot := merkle.Commit(mutated)
	require.NotEqual(t, root, newRoot)

	path, err := merkle.Open(3, mutated)
	require.NoError(t, err)
	require.True(t, merkle.Verify(newRoot, 3, path, mutated[3]))
	require.False(t, merkle.Verify(root, 3, path, mutated[3]))
}

func TestMutatingPathNodeFailsVerification(t *testing.T) {
	data := leaves8()
	root := merkle.Commit(data)
	path, err := merkle.Open(2, data)
	require.NoError(t, err)
	path[0] = append([]byte(nil), path[0]...)
	path[0][0] ^= 0xff
	require.False(t, merkle.Verify(root, 2, path, data[2]))
}

func TestMutatingRootFailsVerification(t *testing.T) {
	data := leaves8()
	root := merkle.Commit(data)
	path, err := merkle.Open(0, data)
	require.NoError(t, err)
	badRoot := append([]byte(nil), root...)
	badRoot[0] ^= 0xff
	require.False(t, merkle.Verify(badRoot, 0, path, data[0]))
}

func TestOpenRejectsOutOfRangeIndex(t *testing.T) {
	data := leaves8()
	_, err := merkle.Open(8, data)
	require.ErrorIs(t, err, merkle.ErrIndexOutOfRange)
}

func TestVerifyFailsClosedOnOutOfRangeIndex(t *testing.T) {
	data := leaves8()
	root := merkle.Commit(data)
	path, err := merkle.Open(0, data)
	require.NoError(t, err)
	require.False(t, merkle.Verify(root, 1<<len(path), path, data[0]))
}

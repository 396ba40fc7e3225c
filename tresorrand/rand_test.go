package tresorrand

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesLength(t *testing.T) {
	b, err := Bytes(32)
	require.NoError(t, err)
	assert.Len(t, b, 32)
}

func TestFill(t *testing.T) {
	b := make([]byte, 16)
	require.NoError(t, Fill(b))

	allZero := true
	for _, v := range b {
		if v != 0 {
			allZero = false
			break
		}
	}
	assert.False(t, allZero, "Fill left the buffer untouched (astronomically unlikely)")
}

func TestFixedIsDeterministic(t *testing.T) {
	a := Fixed([]byte{1, 2, 3})
	b := Fixed([]byte{1, 2, 3})

	bufA := make([]byte, 10)
	bufB := make([]byte, 10)
	_, err := io.ReadFull(a, bufA)
	require.NoError(t, err)
	_, err = io.ReadFull(b, bufB)
	require.NoError(t, err)

	assert.Equal(t, bufA, bufB)
	assert.Equal(t, []byte{1, 2, 3, 1, 2, 3, 1, 2, 3, 1}, bufA)
}

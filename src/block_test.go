package rsfec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockViews(t *testing.T) {
	var b = block_from_slice([]byte{1, 2, 3, 4, 5, 6}, 4)

	assert.Equal(t, []byte{1, 2, 3, 4}, b.Data())
	assert.Equal(t, []byte{5, 6}, b.ECC())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, b.Bytes())
	assert.Equal(t, 6, b.Len())
}

func TestBlockAppend(t *testing.T) {
	var b = block_from_slice([]byte{1, 2, 3}, 3)
	b.Append([]byte{9, 8})

	assert.Equal(t, []byte{1, 2, 3}, b.Data())
	assert.Equal(t, []byte{9, 8}, b.ECC())
}

func TestBlockCopySemantics(t *testing.T) {
	var a = block_from_slice([]byte{1, 2, 3, 4}, 2)
	var b = a

	b.poly.array[0] = 99
	assert.Equal(t, byte(1), a.Bytes()[0], "copying a Block must copy the bytes")
}

package rsfec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGeneratorPoly(t *testing.T) {
	var answers = [][]byte{
		{1, 3, 2},
		{1, 15, 54, 120, 64},
		{1, 255, 11, 81, 54, 239, 173, 200, 24},
		{1, 59, 13, 104, 189, 68, 209, 30, 8, 163, 65, 41, 229, 98, 50, 36, 59},
		{1, 116, 64, 52, 174, 54, 126, 16, 194, 162, 33, 33, 157, 176, 197, 225, 12,
			59, 55, 253, 228, 148, 47, 179, 185, 24, 138, 253, 20, 142, 55, 172, 88},
		{1, 193, 10, 255, 58, 128, 183, 115, 140, 153, 147, 91, 197, 219, 221, 220,
			142, 28, 120, 21, 164, 147, 6, 204, 40, 230, 182, 14, 121, 48, 143, 77,
			228, 81, 85, 43, 162, 16, 195, 163, 35, 149, 154, 35, 132, 100, 100, 51,
			176, 11, 161, 134, 208, 132, 244, 176, 192, 221, 232, 171, 125, 155, 228,
			242, 245},
	}

	var ecc_len = 2
	for _, answer := range answers {
		var gen = generator_poly(ecc_len)
		assert.Equal(t, answer, gen.coeffs(), "generator for %d parity bytes", ecc_len)
		ecc_len *= 2
	}
}

func TestEncode(t *testing.T) {
	var data = []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17,
		18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29}
	var ecc = []byte{99, 26, 219, 193, 9, 94, 186, 143}

	var enc = NewEncoder(len(ecc))
	var encoded = enc.Encode(data)

	assert.Equal(t, data, encoded.Data())
	assert.Equal(t, ecc, encoded.ECC())
	assert.Equal(t, len(data)+len(ecc), encoded.Len())
}

func TestEncodeDeterministic(t *testing.T) {
	var enc = NewEncoder(8)
	var data = []byte("Hello World!")

	var a = enc.Encode(data)
	var b = enc.Encode(data)
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestEncodeSystematic(t *testing.T) {
	// The data region of the output equals the input bit for bit,
	// for every ecc_len and data length that fit a block.
	rapid.Check(t, func(t *rapid.T) {
		var ecc_len = rapid.IntRange(1, 254).Draw(t, "ecc_len")
		var data = rapid.SliceOfN(rapid.Byte(), 0, 255-ecc_len).Draw(t, "data")

		var encoded = NewEncoder(ecc_len).Encode(data)

		require.Equal(t, len(data)+ecc_len, encoded.Len())
		assert.Equal(t, data, append([]byte{}, encoded.Data()...))

		// A codeword evaluates to zero at every generator root.
		for i := 0; i < ecc_len; i++ {
			assert.Equal(t, byte(0), poly_eval(encoded.Bytes(), gf_pow(2, i)))
		}
	})
}

func TestEncodeEmptyData(t *testing.T) {
	// Pure parity block: no data bytes, parity of nothing.
	var enc = NewEncoder(4)
	var encoded = enc.Encode(nil)

	assert.Equal(t, 0, len(encoded.Data()))
	assert.Equal(t, 4, len(encoded.ECC()))
	assert.Equal(t, []byte{0, 0, 0, 0}, encoded.ECC())
}

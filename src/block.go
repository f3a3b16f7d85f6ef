package rsfec

/*-------------------------------------------------------------
 *
 * Purpose:	Codeword buffer returned by the encoder and decoder.
 *
 *		Holds the combined data+parity bytes along with the
 *		split point, so callers can address either region.
 *		A Block is a plain value; copying it copies the bytes.
 *
 *--------------------------------------------------------------*/

type Block struct {
	poly     poly
	data_len int
}

func block_from_poly(p poly, data_len int) Block {
	return Block{poly: p, data_len: data_len}
}

func block_from_slice(s []byte, data_len int) Block {
	return Block{poly: poly_from_slice(s), data_len: data_len}
}

// Data returns the data region, the first data_len bytes.
// The slice aliases the Block's storage.
func (b *Block) Data() []byte {
	return b.poly.coeffs()[:b.data_len]
}

// ECC returns the parity region following the data.
func (b *Block) ECC() []byte {
	return b.poly.coeffs()[b.data_len:]
}

// Bytes returns the whole codeword, data followed by parity.
func (b *Block) Bytes() []byte {
	return b.poly.coeffs()
}

func (b *Block) Len() int {
	return b.poly.len()
}

// Append extends the codeword with extra bytes.  Used by the encoder
// to attach the parity after the data region.
func (b *Block) Append(rhs []byte) {
	for _, x := range rhs {
		b.poly.push(x)
	}
}

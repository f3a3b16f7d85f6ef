package rsfec

/*-------------------------------------------------------------
 *
 * Purpose:	Systematic Reed-Solomon encoder.
 *
 *		The codeword is the data followed by ecc_len parity
 *		bytes, the remainder of data(x) * x^ecc_len divided by
 *		the code generator polynomial.  Up to ecc_len/2 errors,
 *		or ecc_len erasures, can later be repaired.
 *
 *--------------------------------------------------------------*/

// Encoder holds the generator polynomial for a fixed parity length.
// It is immutable after construction and safe for concurrent use.
type Encoder struct {
	generator poly
}

// NewEncoder builds an encoder producing ecc_len parity bytes.
// 1 <= ecc_len <= 254; data plus parity must fit a 255 byte block.
func NewEncoder(ecc_len int) *Encoder {
	rs_assert(ecc_len >= 1 && ecc_len <= 254)
	return &Encoder{generator: generator_poly(ecc_len)}
}

/*-------------------------------------------------------------
 *
 * Name:	generator_poly
 *
 * Purpose:	Form the code generator polynomial from its roots,
 *		g(x) = (x - alpha^0)(x - alpha^1)...(x - alpha^(n-1)).
 *
 * Returns:	Polynomial of length ecc_len + 1, leading coefficient 1.
 *
 *--------------------------------------------------------------*/

func generator_poly(ecc_len int) poly {
	var gen = poly_from_slice([]byte{1})
	var mm = [2]byte{1, 0}
	for i := 0; i < ecc_len; i++ {
		mm[1] = gf_pow(2, i)
		gen = poly_mul(gen.coeffs(), mm[:])
	}
	return gen
}

/*-------------------------------------------------------------
 *
 * Name:	Encode
 *
 * Purpose:	Append parity to a block of data.
 *
 * Inputs:	data	- Up to 255 - ecc_len bytes.  The caller must
 *			  ensure data + parity fits the RS block size.
 *
 * Returns:	Block of len(data) + ecc_len bytes.  The data region
 *		equals the input bit for bit.
 *
 *--------------------------------------------------------------*/

func (enc *Encoder) Encode(data []byte) Block {
	var ecc_len = enc.generator.len() - 1
	rs_assert(len(data)+ecc_len <= 255)

	var data_out = poly_from_slice(data)
	var data_len = len(data)

	data_out.set_length(data_len + ecc_len)

	// The generator in log form saves one table lookup per inner step.
	var gen = enc.generator.coeffs()
	var lgen = poly_with_length(len(gen))
	for i, g := range gen {
		lgen.array[i] = gf_log[g]
	}

	// Synthetic division, accumulating the remainder in place.  The
	// inner loop also overwrites data bytes past i with the running
	// dividend, so the data prefix is copied back afterwards.
	for i := 0; i < data_len; i++ {
		var coef = data_out.array[i]
		if coef != 0 {
			var lcoef = int(gf_log[coef])
			for j := 1; j < len(gen); j++ {
				data_out.array[i+j] ^= gf_exp[lcoef+int(lgen.array[j])]
			}
		}
	}

	copy(data_out.array[:data_len], data)
	return block_from_poly(data_out, data_len)
}

package rsfec

/*-------------------------------------------------------------
 *
 * Purpose:	Polynomials over GF(2^8) with fixed inline storage.
 *
 *		A codeword can never exceed 255 symbols, so every
 *		working polynomial fits in 256 bytes.  Keeping the
 *		storage inline in a value type means the encode and
 *		decode paths never touch the heap.
 *
 *		Coefficients are stored highest degree first, so
 *		index 0 is the leading term.  Only array[0:length]
 *		is live; set_length zero-fills in both directions so
 *		bytes beyond the live region always read as zero.
 *
 *--------------------------------------------------------------*/

const poly_max_length = 256

type poly struct {
	array  [poly_max_length]byte
	length int
}

func poly_new() poly {
	return poly{}
}

func poly_with_length(n int) poly {
	rs_assert(n <= poly_max_length)
	return poly{length: n}
}

func poly_from_slice(s []byte) poly {
	rs_assert(len(s) <= poly_max_length)
	var p poly
	copy(p.array[:], s)
	p.length = len(s)
	return p
}

func (p *poly) len() int {
	return p.length
}

// coeffs returns a view of the live coefficients.  The slice aliases
// the polynomial's storage; callers must not hold it across a resize.
func (p *poly) coeffs() []byte {
	return p.array[:p.length]
}

func (p *poly) push(x byte) {
	rs_assert(p.length < poly_max_length)
	p.array[p.length] = x
	p.length++
}

func (p *poly) set_length(n int) {
	rs_assert(n <= poly_max_length)
	if n < p.length {
		for i := n; i < p.length; i++ {
			p.array[i] = 0
		}
	} else {
		for i := p.length; i < n; i++ {
			p.array[i] = 0
		}
	}
	p.length = n
}

// reverse returns a copy with the live coefficients in opposite order.
// Value receiver so it composes on temporaries.
func (p poly) reverse() poly {
	for i, j := 0, p.length-1; i < j; i, j = i+1, j-1 {
		p.array[i], p.array[j] = p.array[j], p.array[i]
	}
	return p
}

// Multiply every coefficient by a scalar.

func poly_scale(p []byte, x byte) poly {
	var r = poly_from_slice(p)
	for i := 0; i < r.length; i++ {
		r.array[i] = gf_mul(r.array[i], x)
	}
	return r
}

/*-------------------------------------------------------------
 *
 * Name:	poly_add
 *
 * Purpose:	Add (XOR) two polynomials of possibly different length.
 *
 *		The operands are aligned at the high-degree end: the
 *		shorter one is zero-padded at the front.  The generator
 *		and syndrome formulas depend on this alignment.
 *
 *--------------------------------------------------------------*/

func poly_add(a []byte, b []byte) poly {
	var r = poly_with_length(max(len(a), len(b)))

	for i, x := range a {
		r.array[i+r.length-len(a)] = x
	}
	for i, x := range b {
		r.array[i+r.length-len(b)] ^= x
	}

	return r
}

func poly_mul(a []byte, b []byte) poly {
	var r = poly_with_length(len(a) + len(b) - 1)

	for j, bx := range b {
		for i, ax := range a {
			r.array[i+j] ^= gf_mul(ax, bx)
		}
	}

	return r
}

/*-------------------------------------------------------------
 *
 * Name:	poly_div
 *
 * Purpose:	Synthetic division of a by b.
 *
 * Returns:	Quotient and remainder.  If the divisor degree exceeds
 *		the dividend length the quotient is empty and the whole
 *		dividend is the remainder.
 *
 *--------------------------------------------------------------*/

func poly_div(a []byte, b []byte) (poly, poly) {
	var work = poly_from_slice(a)

	var divisor_degree = len(b) - 1
	if len(a) < divisor_degree {
		return poly_new(), work
	}

	for i := 0; i < len(a)-divisor_degree; i++ {
		var coef = work.array[i]
		if coef != 0 {
			for j := 1; j < len(b); j++ {
				if b[j] != 0 {
					work.array[i+j] ^= gf_mul(b[j], coef)
				}
			}
		}
	}

	var separator = len(a) - divisor_degree

	var remainder = poly_from_slice(work.coeffs()[separator:])
	work.set_length(separator)

	return work, remainder
}

// Horner evaluation at x.

func poly_eval(p []byte, x byte) byte {
	var y = p[0]
	for _, px := range p[1:] {
		y = gf_mul(y, x) ^ px
	}
	return y
}

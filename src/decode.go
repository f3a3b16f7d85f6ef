package rsfec

/*-------------------------------------------------------------
 *
 * Purpose:	Reed-Solomon errors-and-erasures decoder.
 *
 *		Given a possibly corrupted codeword and optionally the
 *		positions of known-bad symbols, repair up to ecc_len/2
 *		unknown errors, up to ecc_len erasures, or any mix with
 *		2*errors + erasures <= ecc_len.
 *
 *		The pipeline is the classic one: syndromes, Forney
 *		syndromes to hide the erasures, Berlekamp-Massey for
 *		the error locator, Chien search for the positions,
 *		Forney's formula for the magnitudes.  A final syndrome
 *		check on the repaired block is authoritative; the
 *		distance bound alone is not sufficient against
 *		adversarial corruption.
 *
 *--------------------------------------------------------------*/

import (
	"errors"
)

// ErrTooManyErrors reports an unrecoverable codeword: the corruption
// exceeds what ecc_len parity bytes can repair.
var ErrTooManyErrors = errors.New("rsfec: too many errors to correct")

// Decoder repairs codewords produced with the same ecc_len.
// It is immutable after construction and safe for concurrent use.
type Decoder struct {
	ecc_len int
}

// NewDecoder builds a decoder for codewords carrying ecc_len parity bytes.
func NewDecoder(ecc_len int) *Decoder {
	rs_assert(ecc_len >= 1 && ecc_len <= 254)
	return &Decoder{ecc_len: ecc_len}
}

/*-------------------------------------------------------------
 *
 * Name:	IsCorrupted
 *
 * Purpose:	Fast corruption check without attempting repair.
 *
 * Returns:	true if any syndrome is nonzero, i.e. the block does
 *		not lie in the code.
 *
 *--------------------------------------------------------------*/

func (dec *Decoder) IsCorrupted(msg []byte) bool {
	rs_assert(len(msg) >= dec.ecc_len && len(msg) > 0)
	for i := 0; i < dec.ecc_len; i++ {
		if poly_eval(msg, gf_pow(2, i)) != 0 {
			return true
		}
	}
	return false
}

// Correct repairs a codeword and returns a fresh Block with the same
// data/parity split.  erase_pos lists positions known to be corrupted,
// or nil if none are known.  The input slice is never modified.
func (dec *Decoder) Correct(msg []byte, erase_pos []int) (Block, error) {
	var block, _, err = dec.CorrectErrCount(msg, erase_pos)
	return block, err
}

/*-------------------------------------------------------------
 *
 * Name:	CorrectErrCount
 *
 * Purpose:	Repair a codeword, also reporting how many positions
 *		had a correction applied.
 *
 * Inputs:	msg		- Codeword, ecc_len <= len(msg) <= 255.
 *		erase_pos	- Known-bad positions in [0, len(msg)),
 *				  or nil.  Values at these positions are
 *				  ignored; their count may not exceed
 *				  ecc_len.
 *
 * Returns:	Repaired Block, number of repaired positions (errors
 *		plus erasures), and ErrTooManyErrors when the block is
 *		unrecoverable.
 *
 *--------------------------------------------------------------*/

func (dec *Decoder) CorrectErrCount(msg []byte, erase_pos []int) (Block, int, error) {
	// A pure-parity block (no data bytes) is still a valid codeword.
	rs_assert(len(msg) <= 255)
	rs_assert(len(msg) >= dec.ecc_len && len(msg) > 0)

	var block = block_from_slice(msg, len(msg)-dec.ecc_len)

	// Zero out the erased symbols on our private copy.  Whatever was
	// there is untrusted; the Forney step recomputes the true values.
	for _, e := range erase_pos {
		rs_assert(e >= 0 && e < len(msg))
		block.poly.array[e] = 0
	}

	if len(erase_pos) > dec.ecc_len {
		return Block{}, 0, ErrTooManyErrors
	}

	var synd = dec.calc_syndromes(block.Bytes())

	var clean = true
	for _, s := range synd.coeffs() {
		if s != 0 {
			clean = false
			break
		}
	}
	if clean {
		return block, 0, nil
	}

	if rs_debug_level() >= 3 {
		rs_log.Debugf("block before repair:\n%s", rs_hex_dump(block.Bytes()))
	}

	var fsynd = dec.forney_syndromes(synd.coeffs(), erase_pos, block.Len())

	var err_loc, loc_err = dec.find_error_locator(fsynd.coeffs(), nil, len(erase_pos))
	if loc_err != nil {
		return Block{}, 0, loc_err
	}

	var err_loc_rev = err_loc.reverse()
	var err_pos, pos_err = dec.find_errors(err_loc_rev.coeffs(), block.Len())
	if pos_err != nil {
		return Block{}, 0, pos_err
	}

	if rs_debug_level() >= 2 {
		rs_log.Debugf("error locator degree %d, positions %v, erasures %v",
			err_loc.len()-1, err_pos, erase_pos)
	}

	err_pos = append(err_pos, erase_pos...)

	var msg_out, fixed, errata_err = dec.correct_errata(block.Bytes(), synd.coeffs(), err_pos)
	if errata_err != nil {
		return Block{}, 0, errata_err
	}

	if dec.IsCorrupted(msg_out.coeffs()) {
		return Block{}, 0, ErrTooManyErrors
	}

	if rs_debug_level() >= 1 {
		rs_log.Debugf("repaired %d of %d positions", fixed, block.Len())
	}
	if rs_debug_level() >= 3 {
		rs_log.Debugf("block after repair:\n%s", rs_hex_dump(msg_out.coeffs()))
	}

	return block_from_poly(msg_out, len(msg)-dec.ecc_len), fixed, nil
}

// calc_syndromes evaluates the codeword at the generator roots.
// Index 0 is a pad fixed at zero; the real S_i sits at index i+1 so the
// Berlekamp-Massey indexing lines up with the textbook formulas.
func (dec *Decoder) calc_syndromes(msg []byte) poly {
	var synd = poly_with_length(dec.ecc_len + 1)
	for i := 0; i < dec.ecc_len; i++ {
		synd.array[i+1] = poly_eval(msg, gf_pow(2, i))
	}
	return synd
}

/*-------------------------------------------------------------
 *
 * Name:	forney_syndromes
 *
 * Purpose:	Fold the known erasure positions into the syndromes so
 *		the Berlekamp-Massey step only sees the unknown errors.
 *
 *--------------------------------------------------------------*/

func (dec *Decoder) forney_syndromes(synd []byte, pos []int, msg_len int) poly {
	// Drop the index-0 pad.
	var fsynd = poly_from_slice(synd[1:])

	for _, p := range pos {
		var x = gf_pow(2, msg_len-1-p)
		for j := 0; j < fsynd.len()-1; j++ {
			fsynd.array[j] = gf_mul(fsynd.array[j], x) ^ fsynd.array[j+1]
		}
	}

	return fsynd
}

/*-------------------------------------------------------------
 *
 * Name:	find_error_locator
 *
 * Purpose:	Berlekamp-Massey: build the error locator polynomial
 *		from the (Forney) syndromes.
 *
 * Inputs:	synd		- Forney syndromes.
 *		erase_loc	- Optional erasure locator seed, nil when
 *				  erasures were already folded away.
 *		erase_count	- Number of known erasures.
 *
 * Returns:	Locator with leading zeros stripped, or ErrTooManyErrors
 *		if its degree implies more corrections than the parity
 *		can carry (2*errors + erasures <= ecc_len).
 *
 *--------------------------------------------------------------*/

func (dec *Decoder) find_error_locator(synd []byte, erase_loc []byte, erase_count int) (poly, error) {
	var err_loc poly
	var old_loc poly
	if erase_loc != nil {
		err_loc = poly_from_slice(erase_loc)
		old_loc = poly_from_slice(erase_loc)
	} else {
		err_loc = poly_from_slice([]byte{1})
		old_loc = poly_from_slice([]byte{1})
	}

	var synd_shift = 0
	if len(synd) > dec.ecc_len {
		synd_shift = len(synd) - dec.ecc_len
	}

	for i := 0; i < dec.ecc_len-erase_count; i++ {
		var K int
		if erase_loc != nil {
			K = erase_count + i + synd_shift
		} else {
			K = i + synd_shift
		}

		var delta = synd[K]
		for j := 1; j < err_loc.len(); j++ {
			delta ^= gf_mul(err_loc.array[err_loc.len()-j-1], synd[K-j])
		}

		old_loc.push(0)

		if delta != 0 {
			if old_loc.len() > err_loc.len() {
				var new_loc = poly_scale(old_loc.coeffs(), delta)
				old_loc = poly_scale(err_loc.coeffs(), gf_inverse(delta))
				err_loc = new_loc
			}

			var scaled = poly_scale(old_loc.coeffs(), delta)
			err_loc = poly_add(err_loc.coeffs(), scaled.coeffs())
		}
	}

	var shift = 0
	for shift < err_loc.len() && err_loc.array[shift] == 0 {
		shift++
	}
	err_loc = poly_from_slice(err_loc.coeffs()[shift:])

	var errs = err_loc.len() - 1
	if erase_count > errs {
		errs = erase_count
	} else {
		errs = (errs-erase_count)*2 + erase_count
	}

	if errs > dec.ecc_len {
		return poly{}, ErrTooManyErrors
	}
	return err_loc, nil
}

/*-------------------------------------------------------------
 *
 * Name:	find_errors
 *
 * Purpose:	Chien search: evaluate the (reversed) locator at every
 *		alpha^i inside the block; the roots mark the errors.
 *
 * Returns:	Error positions, or ErrTooManyErrors if the number of
 *		roots found disagrees with the locator degree.
 *
 *--------------------------------------------------------------*/

func (dec *Decoder) find_errors(err_loc []byte, msg_len int) ([]int, error) {
	var errs = len(err_loc) - 1
	var err_pos []int

	for i := 0; i < msg_len; i++ {
		if poly_eval(err_loc, gf_pow(2, i)) == 0 {
			err_pos = append(err_pos, msg_len-1-i)
		}
	}

	if len(err_pos) != errs {
		return nil, ErrTooManyErrors
	}
	return err_pos, nil
}

// find_errata_locator builds the errata locator from position degrees:
// the product of (1 + alpha^p * x) over the given degrees.
func (dec *Decoder) find_errata_locator(coef_pos []byte) poly {
	var e_loc = poly_from_slice([]byte{1})

	var add_lhs = [1]byte{1}
	var add_rhs = [2]byte{0, 0}
	for _, p := range coef_pos {
		add_rhs[0] = gf_pow(2, int(p))
		var sum = poly_add(add_lhs[:], add_rhs[:])
		e_loc = poly_mul(e_loc.coeffs(), sum.coeffs())
	}

	return e_loc
}

// find_error_evaluator computes omega(x) = synd(x) * err_loc(x) mod
// x^(syms+1) by keeping only the remainder of the division.
func (dec *Decoder) find_error_evaluator(synd []byte, err_loc []byte, syms int) poly {
	var divisor = poly_with_length(syms + 2)
	divisor.array[0] = 1

	var product = poly_mul(synd, err_loc)
	var _, remainder = poly_div(product.coeffs(), divisor.coeffs())
	return remainder
}

/*-------------------------------------------------------------
 *
 * Name:	correct_errata
 *
 * Purpose:	Forney's formula: compute the magnitude at each errata
 *		position and XOR the corrections into the block.
 *
 * Inputs:	msg	- Block with erasures already zeroed.
 *		synd	- Padded syndromes from calc_syndromes.
 *		err_pos	- Error positions plus erasure positions.
 *
 * Returns:	Repaired polynomial and the number of positions
 *		processed.  Fails if the locator derivative vanishes at
 *		some root, which happens when positions are duplicated
 *		and means the block is unrecoverable.
 *
 *--------------------------------------------------------------*/

func (dec *Decoder) correct_errata(msg []byte, synd []byte, err_pos []int) (poly, int, error) {
	// Positions counted from the block start become coefficient degrees.
	var coef_pos = poly_with_length(len(err_pos))
	for i, x := range err_pos {
		coef_pos.array[i] = byte(len(msg) - 1 - x)
	}

	var err_loc = dec.find_errata_locator(coef_pos.coeffs())

	var synd_rev = poly_from_slice(synd).reverse()
	var err_eval = dec.find_error_evaluator(synd_rev.coeffs(), err_loc.coeffs(), err_loc.len()-1).reverse()

	// X holds alpha to the power of each errata location.
	var X = poly_new()
	for _, px := range coef_pos.coeffs() {
		var l = 255 - int(px)
		X.push(gf_pow(2, -l))
	}

	var E = poly_with_length(len(msg))
	var fixed = 0

	var err_eval_rev = err_eval.reverse()
	for i, Xi := range X.coeffs() {
		var Xi_inv = gf_inverse(Xi)

		// Formal derivative surrogate: product over the other roots.
		var err_loc_prime byte = 1
		for j, Xj := range X.coeffs() {
			if j != i {
				err_loc_prime = gf_mul(err_loc_prime, gf_sub(1, gf_mul(Xi_inv, Xj)))
			}
		}
		if err_loc_prime == 0 {
			return poly{}, 0, ErrTooManyErrors
		}

		var y = poly_eval(err_eval_rev.coeffs(), Xi_inv)
		y = gf_mul(gf_pow(Xi, 1), y)

		E.array[err_pos[i]] = gf_div(y, err_loc_prime)
		fixed++
	}

	return poly_add(msg, E.coeffs()), fixed, nil
}

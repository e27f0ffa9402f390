// Package gf2 implements the linear algebra over GF(2)^32 that backs both
// the CRC-32C combine operator and the hardware kernel's zero-extension
// tables.
//
// The origin of this algebra is the gf2_matrix_times/gf2_matrix_square pair
// found in zlib's crc32.c (Mark Adler, Jean-loup Gailly), translated to Go
// and generalized into a reusable Matrix type.
package gf2

// Dim is the dimension of the vector space: a CRC-32 register is a vector in
// GF(2)^32.
const Dim = 32

// Matrix is a linear map GF(2)^32 -> GF(2)^32, represented as 32 row
// vectors. Multiplying the matrix by a vector v is the XOR-sum of the rows
// M[i] for every i where bit i of v is set.
type Matrix [Dim]uint32

// MulVector applies m to v.
func (m *Matrix) MulVector(v uint32) uint32 {
	var sum uint32
	for i := 0; v != 0; i++ {
		if v&1 != 0 {
			sum ^= m[i]
		}
		v >>= 1
	}
	return sum
}

// Square returns m * m, i.e. the operator for applying m twice.
func (m *Matrix) Square() Matrix {
	var sq Matrix
	for i := range sq {
		sq[i] = m.MulVector(m[i])
	}
	return sq
}

// Compose returns the matrix equivalent to first applying other, then m
// (i.e. m ∘ other). Used by ZeroOperator to build the zero-extension
// tables (at package initialization in internal/kernel, and offline in
// cmd/gentables); the hot-path
// combine operator in the root package never materializes a composed
// matrix.
func (m *Matrix) Compose(other *Matrix) Matrix {
	var out Matrix
	for i := range out {
		out[i] = m.MulVector(other[i])
	}
	return out
}

// Identity returns the identity operator: "advance the register by zero
// zero-bits".
func Identity() Matrix {
	var id Matrix
	for i := range id {
		id[i] = 1 << uint(i)
	}
	return id
}

// Generator returns G, the "advance the CRC register by one zero bit"
// operator. G[0] is the CRC-32C polynomial in reversed (bit-reflected) bit
// order; G[i] for i in 1..32 is the identity shift for a one-bit right
// shift of the register.
func Generator() Matrix {
	var g Matrix
	g[0] = Polynomial
	row := uint32(1)
	for i := 1; i < Dim; i++ {
		g[i] = row
		row <<= 1
	}
	return g
}

// Polynomial is the CRC-32C (Castagnoli) polynomial in reversed bit order.
const Polynomial = 0x82F63B78

// ZeroOperator returns the 32x32 matrix representing "advance the CRC
// register by 8*nBytes zero bits", i.e. the transformation induced by
// appending nBytes zero bytes to the message.
//
// This is generalized double-and-add exponentiation of G by 8*nBytes,
// expressed as repeated squaring gated on the bits of nBytes (each
// squaring doubles the byte-power the squared operator represents; G is
// squared twice up front, to four zero bits, so the first squaring in the
// loop yields one zero byte). Callers needing
// only a handful of fixed lengths (the hardware kernel's LONG=8192 and
// SHORT=256 blocks) call this once at package initialization and reuse
// the resulting matrix forever; Combine, which is evaluated with an
// arbitrary, only-known-at-call-time length, instead inlines an
// equivalent but allocation-free version directly against the checksum
// scalar (see the root package's combine.go).
func ZeroOperator(nBytes uint64) Matrix {
	if nBytes == 0 {
		return Identity()
	}

	// odd/even name the two matrices being alternately squared, matching
	// the zlib/combine.go naming this algebra is traditionally given.
	odd := Generator()
	even := odd.Square() // advance by 2 bits
	odd = even.Square()  // advance by 4 bits

	result := Identity()
	n := nBytes
	for {
		even = odd.Square() // one zero byte on the first pass, doubling on each later squaring
		if n&1 != 0 {
			result = even.Compose(&result)
		}
		n >>= 1
		if n == 0 {
			break
		}

		odd = even.Square()
		if n&1 != 0 {
			result = odd.Compose(&result)
		}
		n >>= 1
		if n == 0 {
			break
		}
	}
	return result
}

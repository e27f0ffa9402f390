package crc32c

import "github.com/polyzero/crc32c/internal/gf2"

// Combine returns the CRC-32C checksum of the concatenation A‖B, given only
// crc1 = Checksum(A), crc2 = Checksum(B), and len2 = len(B). It does not
// re-read A or B.
//
// Appending B to A is, in register terms, "advance crc1 by len2 zero
// bytes, then XOR crc2". The zero-byte advance is a 32x32 GF(2) matrix;
// rather than materialize it (internal/gf2.ZeroOperator does that, for the
// hardware kernel's fixed-length tables), Combine applies the operator to
// crc1 directly while building it via repeated squaring, in O(log len2)
// matrix operations and no allocation.
//
// This is a translation of zlib's crc32_combine (by way of
// tmthrgd-gziptemplate's combineCRC32 and the zowens/crc32c combine.rs
// port) onto the CRC-32C polynomial.
//
// Combine panics if len2 is negative: a negative byte count can never
// arise from an honest len(b).
func Combine(crc1, crc2 uint32, len2 int) uint32 {
	if len2 < 0 {
		panic("crc32c: Combine: negative len2")
	}
	if len2 == 0 {
		return crc1
	}

	odd := gf2.Generator()
	even := odd.Square() // advance by 2 bits
	odd = even.Square()  // advance by 4 bits

	c1 := crc1
	n := uint64(len2)
	for {
		// Square before consulting the bit: the first squaring here
		// produces the operator for one zero byte (eight zero bits),
		// matching n being measured in bytes.
		even = odd.Square()
		if n&1 != 0 {
			c1 = even.MulVector(c1)
		}
		n >>= 1
		if n == 0 {
			break
		}

		odd = even.Square()
		if n&1 != 0 {
			c1 = odd.MulVector(c1)
		}
		n >>= 1
		if n == 0 {
			break
		}
	}

	return c1 ^ crc2
}

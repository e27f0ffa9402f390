package crc32c

import "github.com/polyzero/crc32c/internal/kernel"

// Checksum returns the CRC-32C checksum of data. Equivalent to
// Append(0, data).
func Checksum(data []byte) uint32 {
	return kernel.Append(0, data)
}

// Append continues a checksum, treating seed as the previous checksum's
// return value: Append(Checksum(x), y) == Checksum(append(x, y...)) for any
// x, y.
func Append(seed uint32, data []byte) uint32 {
	return kernel.Append(seed, data)
}

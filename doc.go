// Package crc32c computes the CRC-32-Castagnoli (CRC-32C) checksum of
// arbitrary byte sequences.
//
// It dispatches at run time between a hardware-intrinsic kernel (on
// processors exposing the CRC-32C instruction: SSE4.2 on x86-64, the CRC
// extension on AArch64) and a portable slicing-by-8 software kernel. On top
// of the kernel it provides Combine, which merges the checksums of two
// concatenated byte streams in O(log n) time without re-reading either
// stream, and thin io.Reader/io.Writer/hash.Hash adapters.
package crc32c

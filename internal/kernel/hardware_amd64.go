package kernel

import "golang.org/x/sys/cpu"

// detectHardware reports whether the process may use the SSE4.2 CRC-32C
// instruction. Checked once at package initialization; never re-evaluated
// per call.
func detectHardware() bool {
	if cpu.X86.HasSSE42 {
		crcByteHW = crc32cByteAsm
		crcWordHW = crc32cWordAsm
		return true
	}
	return false
}

// crc32cByteAsm and crc32cWordAsm are single-instruction leaves
// implemented in hardware_amd64.s: CRC32B (byte) and CRC32Q (quadword).
// Entered only once detectHardware has confirmed SSE4.2 is present, so the
// compiler/assembler's use of the instruction is always under the correct
// guarantee.

//go:noescape
func crc32cByteAsm(crc uint32, b byte) uint32

//go:noescape
func crc32cWordAsm(crc uint64, w uint64) uint64

package kernel

import "golang.org/x/sys/cpu"

// detectHardware reports whether the process may use the AArch64 CRC
// extension's CRC32C instructions. Checked once at package initialization;
// never re-evaluated per call.
func detectHardware() bool {
	if cpu.ARM64.HasCRC32 {
		crcByteHW = crc32cByteAsm
		crcWordHW = crc32cWordAsm
		return true
	}
	return false
}

// crc32cByteAsm and crc32cWordAsm are single-instruction leaves implemented
// in hardware_arm64.s: CRC32CB (byte) and CRC32CX (doubleword). Entered
// only once detectHardware has confirmed the CRC extension is present.

//go:noescape
func crc32cByteAsm(crc uint32, b byte) uint32

//go:noescape
func crc32cWordAsm(crc uint64, w uint64) uint64

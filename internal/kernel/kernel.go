// Package kernel implements the CRC-32C checksum kernel: a table-driven
// software path (every architecture) and a three-way-parallel,
// instruction-level-parallel hardware path (amd64 with SSE4.2, arm64 with
// the CRC extension), selected once at package initialization and cached
// for the lifetime of the process.
package kernel

// hasHardware caches whether this process may use the hardware kernel. It
// is resolved exactly once, by an arch-specific detectHardware, and never
// re-evaluated per call.
var hasHardware = detectHardware()

// Append continues a checksum: seed is the previous return value (0 for a
// fresh checksum), data is the next chunk of the message. Total function:
// any seed, any length including zero, returns a well-defined result.
func Append(seed uint32, data []byte) uint32 {
	if hasHardware {
		return hardwareChecksum(seed, data)
	}
	return softwareChecksum(seed, data)
}

// HasHardware reports whether this process dispatches to the hardware
// kernel. Exposed so tests can tell which kernel Append uses and skip
// hardware-only checks where no hardware kernel is available.
func HasHardware() bool { return hasHardware }

// SoftwareChecksum always uses the table-driven software kernel,
// regardless of what the process would otherwise dispatch to. Used by
// kernel-agreement tests to compare against the hardware path.
func SoftwareChecksum(seed uint32, data []byte) uint32 {
	return softwareChecksum(seed, data)
}

// HardwareChecksum always uses the native-instruction kernel. When
// HasHardware reports false the instruction leaves are unset and any
// non-empty data makes it panic, so callers must check HasHardware first,
// exactly as Append does internally.
func HardwareChecksum(seed uint32, data []byte) uint32 {
	return hardwareChecksum(seed, data)
}

package kernel

import "encoding/binary"

// softwareChecksum computes CRC-32C using only portable integer operations
// and swTable. It is a total function: any seed and any length, including
// zero, return a well-defined result.
func softwareChecksum(seed uint32, data []byte) uint32 {
	crc := uint64(^seed)

	head, body, tail := split(data)
	crc = crcBytesSW(crc, head)
	crc = crcWordsSW(crc, body)
	crc = crcBytesSW(crc, tail)

	return ^uint32(crc)
}

// crcBytesSW folds buf, one byte at a time, using row 0 of swTable.
func crcBytesSW(crc uint64, buf []byte) uint64 {
	for _, b := range buf {
		idx := byte(crc) ^ b
		crc = swTable[0][idx] ^ (crc >> 8)
	}
	return crc
}

// crcWordsSW folds buf, eight bytes at a time, via slicing-by-8. len(buf)
// must be a multiple of 8; words are read as little-endian regardless of
// host byte order.
func crcWordsSW(crc uint64, buf []byte) uint64 {
	for len(buf) >= 8 {
		crc ^= binary.LittleEndian.Uint64(buf)
		crc = swTable[7][byte(crc)] ^
			swTable[6][byte(crc>>8)] ^
			swTable[5][byte(crc>>16)] ^
			swTable[4][byte(crc>>24)] ^
			swTable[3][byte(crc>>32)] ^
			swTable[2][byte(crc>>40)] ^
			swTable[1][byte(crc>>48)] ^
			swTable[0][byte(crc>>56)]
		buf = buf[8:]
	}
	return crc
}

package protocol

// PageSelect builds the transaction that switches the device to the given
// page: a write of the page number to the PAGE_ID register at offset 0x00.
//
// Frame structure:
//
//	[0x80][page]
func PageSelect(page byte) [FrameSize]byte {
	return [FrameSize]byte{WriteBit, page}
}

// ReadRequest builds the transaction that requests the register at the
// given in-page offset. The register's content is clocked out during the
// next transaction.
//
// Frame structure:
//
//	[offset][0x00]
func ReadRequest(offset byte) [FrameSize]byte {
	return [FrameSize]byte{offset, FillByte}
}

// WritePair builds the two transactions that write a 16-bit value to the
// register at the given in-page offset. Each transaction carries one
// payload byte and the target byte address with the write bit set; the
// low byte goes first, then the high byte at offset+1.
//
// Frame structure:
//
//	lo: [offset|0x80][value low]
//	hi: [(offset+1)|0x80][value high]
func WritePair(offset byte, value int16) (lo, hi [FrameSize]byte) {
	addr := offset | WriteBit
	lo = [FrameSize]byte{addr, byte(value)}
	hi = [FrameSize]byte{addr + 1, byte(uint16(value) >> 8)}
	return lo, hi
}

// Word composes a raw register word from the two bytes of a data
// transaction, most significant byte first, interpreted as a signed
// 16-bit two's-complement value.
func Word(msb, lsb byte) int16 {
	return int16(uint16(msb)<<8 | uint16(lsb))
}

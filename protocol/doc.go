// Package protocol implements the ADIS16490 SPI register protocol framing.
//
// This package provides the device register map, logical-address
// decomposition, and functions to build the fixed 16-bit bus transactions
// the sensor understands. It is pure: nothing here touches hardware, so
// every frame can be constructed and inspected in tests.
//
// # Protocol Overview
//
// The ADIS16490 exposes more registers than an 8-bit address can reach by
// banking them into pages. A logical register address packs the page into
// the high byte and the in-page offset into the low byte:
//
//	RegAddr 0x030C  ->  page 0x03, offset 0x0C (DEC_RATE)
//
// Every bus transaction is exactly two bytes, framed by chip select.
// Reading a register takes two transactions (address, then data); writing
// takes two single-byte payload transactions with bit 7 of the address
// byte set:
//
//	Page select:  [0x80][page]
//	Read request: [offset][0x00], then [0x00][0x00] clocking the data out
//	Write:        [offset|0x80][value low], [(offset+1)|0x80][value high]
//
// # Burst Read
//
// The burst sequence retrieves nine output registers in ten transactions
// by overlapping phases: each transaction carries the next field's read
// request while clocking out the previous field's data. BurstRequests
// yields the transmit frames and AssembleBurst rebuilds the nine signed
// words from the captured bytes.
//
// # Reference
//
// Register addresses follow the Analog Devices ADIS16490 datasheet. The
// map must match it bit-exact for the device to respond; do not edit
// values without the datasheet open.
package protocol

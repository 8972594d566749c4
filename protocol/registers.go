package protocol

import "fmt"

// RegAddr is a logical register address: page number in the high byte,
// in-page offset in the low byte. Offsets address 16-bit registers and
// are always 2-byte aligned.
type RegAddr uint16

// Page returns the page number encoded in the high byte.
func (r RegAddr) Page() byte {
	return byte(r >> 8)
}

// Offset returns the in-page register offset encoded in the low byte.
func (r RegAddr) Offset() byte {
	return byte(r)
}

func (r RegAddr) String() string {
	return fmt.Sprintf("page %d offset 0x%02X", r.Page(), r.Offset())
}

// User register memory map, page 0: status and output registers.
const (
	RegPageID    RegAddr = 0x0000
	RegDataCnt   RegAddr = 0x0004
	RegSysEFlag  RegAddr = 0x0008
	RegDiagSts   RegAddr = 0x000A
	RegTempOut   RegAddr = 0x000E
	RegXGyroLow  RegAddr = 0x0010
	RegXGyroOut  RegAddr = 0x0012
	RegYGyroLow  RegAddr = 0x0014
	RegYGyroOut  RegAddr = 0x0016
	RegZGyroLow  RegAddr = 0x0018
	RegZGyroOut  RegAddr = 0x001A
	RegXAcclLow  RegAddr = 0x001C
	RegXAcclOut  RegAddr = 0x001E
	RegYAcclLow  RegAddr = 0x0020
	RegYAcclOut  RegAddr = 0x0022
	RegZAcclLow  RegAddr = 0x0024
	RegZAcclOut  RegAddr = 0x0026
	RegTimeStamp RegAddr = 0x0028

	RegXDeltAngLow RegAddr = 0x0040
	RegXDeltAngOut RegAddr = 0x0042
	RegYDeltAngLow RegAddr = 0x0044
	RegYDeltAngOut RegAddr = 0x0046
	RegZDeltAngLow RegAddr = 0x0048
	RegZDeltAngOut RegAddr = 0x004A
	RegXDeltVelLow RegAddr = 0x004C
	RegXDeltVelOut RegAddr = 0x004E
	RegYDeltVelLow RegAddr = 0x0050
	RegYDeltVelOut RegAddr = 0x0052
	RegZDeltVelLow RegAddr = 0x0054
	RegZDeltVelOut RegAddr = 0x0056

	RegProdID RegAddr = 0x007E
)

// User register memory map, page 2: per-axis scale and bias trims.
const (
	RegPageID2     RegAddr = 0x0200
	RegXGyroScale  RegAddr = 0x0204
	RegYGyroScale  RegAddr = 0x0206
	RegZGyroScale  RegAddr = 0x0208
	RegXAcclScale  RegAddr = 0x020A
	RegYAcclScale  RegAddr = 0x020C
	RegZAcclScale  RegAddr = 0x020E
	RegXGBiasLow   RegAddr = 0x0210
	RegXGBiasHigh  RegAddr = 0x0212
	RegYGBiasLow   RegAddr = 0x0214
	RegYGBiasHigh  RegAddr = 0x0216
	RegZGBiasLow   RegAddr = 0x0218
	RegZGBiasHigh  RegAddr = 0x021A
	RegXABiasLow   RegAddr = 0x021C
	RegXABiasHigh  RegAddr = 0x021E
	RegYABiasLow   RegAddr = 0x0220
	RegYABiasHigh  RegAddr = 0x0222
	RegZABiasLow   RegAddr = 0x0224
	RegZABiasHigh  RegAddr = 0x0226
	RegUserScr1    RegAddr = 0x0274
	RegUserScr2    RegAddr = 0x0276
	RegUserScr3    RegAddr = 0x0278
	RegUserScr4    RegAddr = 0x027A
	RegFlshCntLow  RegAddr = 0x027C
	RegFlshCntHigh RegAddr = 0x027E
)

// User register memory map, page 3: global command and configuration.
const (
	RegPageID3    RegAddr = 0x0300
	RegGlobCmd    RegAddr = 0x0302
	RegFnctioCtrl RegAddr = 0x0306
	RegGPIOCtrl   RegAddr = 0x0308
	RegConfig     RegAddr = 0x030A
	RegDecRate    RegAddr = 0x030C
	RegNullCnfg   RegAddr = 0x030E
	RegSyncScale  RegAddr = 0x0310
	RegFiltrBnk0  RegAddr = 0x0316
	RegFiltrBnk1  RegAddr = 0x0318
	RegFirmRev    RegAddr = 0x0378
	RegFirmDM     RegAddr = 0x037A
	RegFirmY      RegAddr = 0x037C
	RegBootRev    RegAddr = 0x037E
)

// User register memory map, page 4: calibration signature and serial number.
const (
	RegPageID4      RegAddr = 0x0400
	RegCalSigtrLwr  RegAddr = 0x0404
	RegCalSigtrUpr  RegAddr = 0x0406
	RegCalDrvtnLwr  RegAddr = 0x0408
	RegCalDrvtnUpr  RegAddr = 0x040A
	RegCodeSigtrLwr RegAddr = 0x040C
	RegCodeSigtrUpr RegAddr = 0x040E
	RegCodeDrvtnLwr RegAddr = 0x0410
	RegCodeDrvtnUpr RegAddr = 0x0412
	RegSerialNum    RegAddr = 0x0420
)

// FIR filter coefficient banks occupy pages 5 through 12. The banks are
// not enumerated register by register; use FilterCoeffAddr to address an
// individual coefficient.
const (
	FilterBankFirstPage = 5
	FilterBankLastPage  = 12

	// FilterCoeffsPerPage is the number of 16-bit coefficients held on
	// each FIR bank page (offsets 0x08 through 0x7E).
	FilterCoeffsPerPage = 60

	// filterCoeffBase is the in-page offset of the first coefficient.
	filterCoeffBase = 0x08
)

// FilterCoeffAddr returns the logical address of FIR coefficient idx on
// the given bank page. The page must lie within the filter bank range and
// idx within [0, FilterCoeffsPerPage).
func FilterCoeffAddr(page, idx int) (RegAddr, error) {
	if page < FilterBankFirstPage || page > FilterBankLastPage {
		return 0, fmt.Errorf("filter bank page must be %d-%d, got %d",
			FilterBankFirstPage, FilterBankLastPage, page)
	}
	if idx < 0 || idx >= FilterCoeffsPerPage {
		return 0, fmt.Errorf("coefficient index must be 0-%d, got %d",
			FilterCoeffsPerPage-1, idx)
	}
	return RegAddr(page)<<8 | RegAddr(filterCoeffBase+2*idx), nil
}

// ValidPage reports whether the page holds any registers on this device.
// Page 1 is reserved and pages above the last FIR bank do not exist.
func ValidPage(page byte) bool {
	return page == 0 || (page >= 2 && page <= FilterBankLastPage)
}

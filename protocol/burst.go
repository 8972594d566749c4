package protocol

// Burst frame geometry.
const (
	// BurstFields is the number of registers captured by one burst.
	BurstFields = 9

	// BurstTransactions is the number of bus transactions in one burst
	// sequence: one priming transaction plus one per field. The pipeline
	// overlaps phases, so each transaction after the first requests the
	// next field while clocking out the previous one.
	BurstTransactions = BurstFields + 1

	// BurstDataSize is the number of captured payload bytes.
	BurstDataSize = BurstFields * FrameSize
)

// BurstSample is one complete 9-field snapshot captured by a burst read,
// in capture order. Values are raw register words; apply the scale
// package to obtain physical units. The struct is returned by value, so
// a sample is never aliased by a later burst.
type BurstSample struct {
	// DiagStatus is the DIAG_STS self-test failure word.
	DiagStatus int16

	// SysFault is the SYS_E_FLAG system error/alarm summary word.
	SysFault int16

	GyroX int16
	GyroY int16
	GyroZ int16

	AccelX int16
	AccelY int16
	AccelZ int16

	// Temp is the raw internal temperature word.
	Temp int16
}

// burstOrder lists the registers captured by the burst, in capture order.
// All live on page 0.
var burstOrder = [BurstFields]RegAddr{
	RegDiagSts,
	RegSysEFlag,
	RegXGyroOut,
	RegYGyroOut,
	RegZGyroOut,
	RegXAcclOut,
	RegYAcclOut,
	RegZAcclOut,
	RegTempOut,
}

// BurstRequests returns the transmit frames of the burst sequence, in
// order. Frame 0 primes the pipeline by requesting the first field (its
// received bytes are garbage and must be discarded). Frames 1..9 request
// the following field while the previous field's data is clocked out;
// the last frame requests the fill address since there is no tenth field.
//
// The device must already be on page 0 when the sequence starts.
func BurstRequests() [BurstTransactions][FrameSize]byte {
	var seq [BurstTransactions][FrameSize]byte
	seq[0] = ReadRequest(burstOrder[0].Offset())
	for i := 1; i < BurstFields; i++ {
		seq[i] = ReadRequest(burstOrder[i].Offset())
	}
	seq[BurstFields] = ReadRequest(FillByte)
	return seq
}

// AssembleBurst rebuilds the nine signed register words from the payload
// bytes captured by transactions 1..9 of the burst sequence. Byte 2i is
// the most significant byte of field i.
func AssembleBurst(data [BurstDataSize]byte) BurstSample {
	var w [BurstFields]int16
	for i := range w {
		w[i] = Word(data[2*i], data[2*i+1])
	}
	return BurstSample{
		DiagStatus: w[0],
		SysFault:   w[1],
		GyroX:      w[2],
		GyroY:      w[3],
		GyroZ:      w[4],
		AccelX:     w[5],
		AccelY:     w[6],
		AccelZ:     w[7],
		Temp:       w[8],
	}
}

package protocol

import "testing"

func TestBurstRequests(t *testing.T) {
	seq := BurstRequests()

	if len(seq) != BurstTransactions {
		t.Fatalf("sequence length = %d, want %d", len(seq), BurstTransactions)
	}

	// Transmit addresses, in order: prime with DIAG_STS, then each
	// following field, then the fill address.
	wantAddrs := []byte{
		RegDiagSts.Offset(),
		RegSysEFlag.Offset(),
		RegXGyroOut.Offset(),
		RegYGyroOut.Offset(),
		RegZGyroOut.Offset(),
		RegXAcclOut.Offset(),
		RegYAcclOut.Offset(),
		RegZAcclOut.Offset(),
		RegTempOut.Offset(),
		FillByte,
	}

	for i, frame := range seq {
		if frame[0] != wantAddrs[i] {
			t.Errorf("transaction %d requests 0x%02X, want 0x%02X", i, frame[0], wantAddrs[i])
		}
		if frame[1] != FillByte {
			t.Errorf("transaction %d second byte = 0x%02X, want fill", i, frame[1])
		}
		if frame[0]&WriteBit != 0 {
			t.Errorf("transaction %d has write bit set", i)
		}
	}
}

func TestAssembleBurst(t *testing.T) {
	// 18 payload bytes as captured by transactions 1..9, big-endian
	// word per field.
	data := [BurstDataSize]byte{
		0x00, 0x01, // DIAG_STS
		0x00, 0x02, // SYS_E_FLAG
		0x01, 0x10, // gyro X
		0xFF, 0xFE, // gyro Y = -2
		0x00, 0x00, // gyro Z
		0x7F, 0xFF, // accel X = 32767
		0x80, 0x00, // accel Y = -32768
		0x12, 0x34, // accel Z
		0xFE, 0x0C, // temp = -500
	}

	got := AssembleBurst(data)
	want := BurstSample{
		DiagStatus: 1,
		SysFault:   2,
		GyroX:      0x0110,
		GyroY:      -2,
		GyroZ:      0,
		AccelX:     32767,
		AccelY:     -32768,
		AccelZ:     0x1234,
		Temp:       -500,
	}

	if got != want {
		t.Errorf("AssembleBurst() = %+v, want %+v", got, want)
	}
}

func TestAssembleBurstWordMapping(t *testing.T) {
	// Field i must come from bytes 2i and 2i+1.
	var data [BurstDataSize]byte
	for i := 0; i < BurstFields; i++ {
		data[2*i] = byte(i + 1)
		data[2*i+1] = byte(0x10 * (i + 1))
	}

	s := AssembleBurst(data)
	fields := []int16{
		s.DiagStatus, s.SysFault,
		s.GyroX, s.GyroY, s.GyroZ,
		s.AccelX, s.AccelY, s.AccelZ,
		s.Temp,
	}

	for i, f := range fields {
		want := Word(data[2*i], data[2*i+1])
		if f != want {
			t.Errorf("field %d = 0x%04X, want 0x%04X", i, uint16(f), uint16(want))
		}
	}
}

func TestBurstRegistersOnPageZero(t *testing.T) {
	for i, r := range burstOrder {
		if r.Page() != 0 {
			t.Errorf("burst field %d (%s) is not on page 0", i, r)
		}
	}
}

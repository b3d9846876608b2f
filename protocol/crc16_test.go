package protocol

import "testing"

func TestCRC16Empty(t *testing.T) {
	if got := CRC16(nil); got != 0xFFFF {
		t.Errorf("CRC16(nil) = %04X, want FFFF", got)
	}
}

func TestCRC16Consistency(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	crc1 := CRC16(data)
	crc2 := CRC16(data)

	if crc1 != crc2 {
		t.Errorf("CRC16 not consistent: first=%04X, second=%04X", crc1, crc2)
	}
}

func TestCRC16Different(t *testing.T) {
	data1 := []byte{0x01, 0x02, 0x03}
	data2 := []byte{0x01, 0x02, 0x04}

	crc1 := CRC16(data1)
	crc2 := CRC16(data2)

	if crc1 == crc2 {
		t.Errorf("CRC16 collision: both inputs produced %04X", crc1)
	}
}

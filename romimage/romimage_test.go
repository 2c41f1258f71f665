package romimage

import "testing"

func TestLoadBytesPadsToPowerOfTwo(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 0x200},
		{1, 0x200},
		{0x200, 0x200},
		{0x201, 0x400},
		{0x3FF, 0x400},
		{0x400, 0x400},
	}
	for _, c := range cases {
		img := LoadBytes(make([]byte, c.in))
		if len(img.Bytes) != c.want {
			t.Errorf("LoadBytes(%d bytes): padded size = %#x, want %#x", c.in, len(img.Bytes), c.want)
		}
	}
}

func TestLoadBytesZeroPadsTail(t *testing.T) {
	data := []byte{1, 2, 3}
	img := LoadBytes(data)
	if img.Bytes[0] != 1 || img.Bytes[1] != 2 || img.Bytes[2] != 3 {
		t.Fatal("leading bytes not preserved")
	}
	for i := 3; i < len(img.Bytes); i++ {
		if img.Bytes[i] != 0 {
			t.Fatalf("tail byte %d = %#x, want 0", i, img.Bytes[i])
		}
	}
}

func TestGameCodeExtraction(t *testing.T) {
	rom := make([]byte, 0x200)
	copy(rom[0xAC:0xB0], []byte("U3IJ"))
	img := LoadBytes(rom)
	if got := img.GameCode(); got != "U3IJ" {
		t.Errorf("GameCode() = %q, want %q", got, "U3IJ")
	}
	if !img.HasSolarSensor() {
		t.Error("U3IJ should be on the solar-sensor allow-list")
	}
}

func TestHasSolarSensorFalseForUnlistedCode(t *testing.T) {
	rom := make([]byte, 0x200)
	copy(rom[0xAC:0xB0], []byte("ZZZZ"))
	img := LoadBytes(rom)
	if img.HasSolarSensor() {
		t.Error("ZZZZ should not be on the solar-sensor allow-list")
	}
}

func TestCRC32IsOverPaddedBytes(t *testing.T) {
	a := LoadBytes([]byte{1, 2, 3})
	b := LoadBytes(append([]byte{1, 2, 3}, make([]byte, 0x200-3)...))
	if a.CRC32 != b.CRC32 {
		t.Errorf("CRC32 should be computed over the full padded image: %#x != %#x", a.CRC32, b.CRC32)
	}
}

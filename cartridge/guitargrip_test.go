package cartridge

import "testing"

func TestGuitarGripKeyStatus(t *testing.T) {
	g := NewGuitarGrip()

	g.SetInput(InputGuitarGripGreen, true)
	g.SetInput(InputGuitarGripBlue, true)

	want := uint8(0x40 | 0x08)
	if g.keyStatus != want {
		t.Fatalf("keyStatus = %#x, want %#x", g.keyStatus, want)
	}

	if got := g.SRAMRead(guitarGripSRAMAddr); got != ^want {
		t.Errorf("SRAMRead = %#x, want %#x", got, ^want)
	}

	g.SetInput(InputGuitarGripGreen, false)
	want = 0x08
	if g.keyStatus != want {
		t.Fatalf("keyStatus after release = %#x, want %#x", g.keyStatus, want)
	}
}

func TestGuitarGripROMReadFixed(t *testing.T) {
	g := NewGuitarGrip()
	if got := g.ROMRead(0); got != 0xF9FF {
		t.Errorf("ROMRead = %#x, want 0xF9FF", got)
	}
}

func TestGuitarGripUnknownAddrReturnsFF(t *testing.T) {
	g := NewGuitarGrip()
	if got := g.SRAMRead(0); got != 0xFF {
		t.Errorf("SRAMRead(0) = %#x, want 0xFF", got)
	}
}

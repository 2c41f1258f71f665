package cartridge

import "testing"

func makeROM(n int) []byte {
	rom := make([]byte, n)
	for i := range rom {
		rom[i] = byte(i)
	}
	return rom
}

func TestGameROMReadLittleEndian(t *testing.T) {
	g := NewGame(makeROM(0x200))
	// rom[0x10]=0x10, rom[0x11]=0x11 -> little-endian halfword 0x1110.
	if got := g.ROMRead(0x10); got != 0x1110 {
		t.Errorf("ROMRead(0x10) = %#x, want 0x1110", got)
	}
}

func TestGameROMReadOutOfRangeIsZero(t *testing.T) {
	g := NewGame(makeROM(0x200))
	if got := g.ROMRead(0x1000); got != 0 {
		t.Errorf("ROMRead(out of range) = %#x, want 0", got)
	}
}

func TestGameROMReadLastByteNoOverrun(t *testing.T) {
	rom := makeROM(0x200)
	g := NewGame(rom)
	// addr == len(rom)-1: low byte valid, high byte is past the end (defaults to 0).
	addr := uint32(len(rom) - 1)
	want := uint16(rom[addr])
	if got := g.ROMRead(addr); got != want {
		t.Errorf("ROMRead(last byte) = %#x, want %#x", got, want)
	}
}

func TestGameGPIOHiddenWhenNotVisible(t *testing.T) {
	g := NewGame(makeROM(0x200))
	g.gpio.Control = 0 // registers not visible
	g.gpio.Data = 0x1234
	if got := g.ROMRead(0xC4); got != 0 {
		t.Errorf("ROMRead(0xC4) with control=0 = %#x, want 0", got)
	}
}

func TestGameGPIODirectionMasking(t *testing.T) {
	g := NewGame(makeROM(0x200))
	g.gpio.Control = 1
	g.gpio.Direction = 0x00FF // low byte is DS-driven output

	g.gpio.Data = 0xAB00
	g.ROMWrite(0xC4, 0x00FF) // only low byte bits should merge in

	if got := g.ROMRead(0xC4); got != 0xABFF {
		t.Errorf("gpio.Data after masked write = %#x, want 0xABFF", got)
	}
}

func TestGameSetInputAlwaysUnrecognized(t *testing.T) {
	g := NewGame(makeROM(0x200))
	if got := g.SetInput(InputSolarSensorUp, true); got != -1 {
		t.Errorf("plain Game.SetInput = %d, want -1 (no solar-sensor input codes)", got)
	}
}

func TestGameIsNotAddon(t *testing.T) {
	if NewGame(makeROM(0x200)).IsAddon() {
		t.Error("Game.IsAddon() should be false")
	}
	if !NewRumblePak(nil).IsAddon() {
		t.Error("RumblePak.IsAddon() should be true")
	}
}

package cartridge

import (
	"testing"

	"slot2cart/platform"
)

func newFlashBackup(t *testing.T, saveType SaveType) (*Backup, *platform.Fake) {
	t.Helper()
	plat := platform.NewFake()

	var length int
	switch saveType {
	case SaveFlash512K:
		length = 65536
	case SaveFlash1M:
		length = 128 * 1024
	default:
		t.Fatalf("unsupported save type for this helper: %v", saveType)
	}
	plat.Seed("flash.sav", make([]byte, length))

	b := &Backup{}
	if err := b.Load(plat, "flash.sav"); err != nil {
		t.Fatal(err)
	}
	if b.saveType != saveType {
		t.Fatalf("saveType = %v, want %v", b.saveType, saveType)
	}
	return b, plat
}

// Scenario 1: flash sector erase, 512Kib chip.
func TestFlashSectorErase(t *testing.T) {
	b, _ := newFlashBackup(t, SaveFlash512K)

	b.Write(0x5555, 0xAA)
	b.Write(0x2AAA, 0x55)
	b.Write(0x5555, 0x80)
	b.Write(0x5555, 0xAA)
	b.Write(0x2AAA, 0x55)
	b.Write(0x1000, 0x30)

	for addr := uint32(0x1000); addr < 0x2000; addr++ {
		if got := b.Read(addr); got != 0xFF {
			t.Fatalf("Read(%#x) = %#x after erase, want 0xFF", addr, got)
			break
		}
	}
	if b.flash.state != 0 || b.flash.cmd != 0 {
		t.Errorf("state=%#x cmd=%#x after erase, want both 0", b.flash.state, b.flash.cmd)
	}
}

// Scenario 2: chip ID probe, 1Mib Sanyo chip.
func TestFlashChipIDProbe(t *testing.T) {
	b, _ := newFlashBackup(t, SaveFlash1M)

	b.Write(0x5555, 0xAA)
	b.Write(0x2AAA, 0x55)
	b.Write(0x5555, 0x90)
	b.Write(0x5555, 0xAA)
	b.Write(0x2AAA, 0x55)

	if got := b.Read(0x0000); got != 0x62 {
		t.Errorf("manufacturer ID = %#x, want 0x62", got)
	}
	if got := b.Read(0x0001); got != 0x13 {
		t.Errorf("device ID = %#x, want 0x13", got)
	}

	b.Write(0x5555, 0xAA)
	b.Write(0x2AAA, 0x55)
	b.Write(0x5555, 0xF0)

	if got := b.Read(0x0000); got != 0x00 {
		t.Errorf("Read(0) after terminate = %#x, want raw flash data (0x00)", got)
	}
}

// Scenario 3: bank switch, 1Mib chip.
func TestFlashBankSwitch(t *testing.T) {
	b, plat := newFlashBackup(t, SaveFlash1M)

	// Seed distinguishable content in each bank via a direct write command.
	b.Write(0x5555, 0xAA)
	b.Write(0x2AAA, 0x55)
	b.Write(0x5555, 0xA0)
	b.Write(0x0002, 0x99) // write command targets bank 0 offset 2

	b.Write(0x5555, 0xAA)
	b.Write(0x2AAA, 0x55)
	b.Write(0x5555, 0xB0)
	b.Write(0x0000, 0x01)

	if b.flash.bank != 1 {
		t.Fatalf("bank = %d, want 1", b.flash.bank)
	}

	b.Write(0x5555, 0xAA)
	b.Write(0x2AAA, 0x55)
	b.Write(0x5555, 0xA0)
	b.Write(0x0002, 0x55) // now targets bank 1 offset 2

	if got := b.buf[0x10002]; got != 0x55 {
		t.Errorf("buf[0x10002] = %#x, want 0x55", got)
	}
	if got := b.buf[0x0002]; got != 0x99 {
		t.Errorf("buf[0x0002] = %#x, want 0x99 (bank 0 untouched)", got)
	}
	_ = plat
}

func TestFlashUnrecognizedWriteIsIgnored(t *testing.T) {
	b, _ := newFlashBackup(t, SaveFlash512K)
	before := b.flash
	b.Write(0x1234, 0x77) // not part of any unlock sequence
	if b.flash != before {
		t.Errorf("flash state changed on unrecognized write: %+v -> %+v", before, b.flash)
	}
}

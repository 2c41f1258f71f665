package cartridge

import (
	"testing"

	"slot2cart/platform"
	"slot2cart/savestate"
)

func TestBackupSavestateRoundTrip(t *testing.T) {
	plat := platform.NewFake()
	plat.Seed("flash.sav", make([]byte, 65536))

	var b Backup
	if err := b.Load(plat, "flash.sav"); err != nil {
		t.Fatal(err)
	}
	b.Write(0x5555, 0xAA)
	b.Write(0x2AAA, 0x55)
	b.Write(0x5555, 0x90) // leave it mid chip-ID sequence

	w := savestate.NewSaveBuffer()
	b.Savestate(w)

	var loaded Backup
	r := savestate.NewLoadBuffer(w.Payload())
	loaded.Savestate(r)

	if loaded.saveType != b.saveType {
		t.Errorf("saveType = %v, want %v", loaded.saveType, b.saveType)
	}
	if loaded.flash != b.flash {
		t.Errorf("flash state = %+v, want %+v", loaded.flash, b.flash)
	}
	if len(loaded.buf) != len(b.buf) {
		t.Fatalf("buf length = %d, want %d", len(loaded.buf), len(b.buf))
	}
	for i := range b.buf {
		if loaded.buf[i] != b.buf[i] {
			t.Fatalf("buf[%d] = %#x, want %#x", i, loaded.buf[i], b.buf[i])
		}
	}
}

func TestGameSolarSensorSavestateRoundTrip(t *testing.T) {
	rom := makeROM(0x200)
	g := NewGameSolarSensor(rom)
	g.gpio.Control = 1
	g.gpio.Direction = 0x00FF
	g.gpio.Data = 0xAB12
	g.solar.level = 7
	g.solar.counter = 42
	g.solar.sample = 99
	g.solar.edge = true

	w := savestate.NewSaveBuffer()
	g.Savestate(w)

	loaded := &GameSolarSensor{Game: NewGame(rom)}
	r := savestate.NewLoadBuffer(w.Payload())
	loaded.Savestate(r)

	if loaded.gpio != g.gpio {
		t.Errorf("gpio = %+v, want %+v", loaded.gpio, g.gpio)
	}
	if loaded.solar != g.solar {
		t.Errorf("solar = %+v, want %+v", loaded.solar, g.solar)
	}
}

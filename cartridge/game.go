package cartridge

import (
	log "slot2cart/internal/log"
	"slot2cart/platform"
	"slot2cart/savestate"
)

// romAddrMask keeps ROM addressing within the 25-bit GBA ROM window.
const romAddrMask = 0x01FFFFFF

// Game is a ROM-backed Slot-2 cart: the common case, optionally augmented
// with a GPIO-driven protocol (see GameSolarSensor) and always carrying a
// backup-memory engine selected by the save file's length.
type Game struct {
	rom []byte
	gpio GPIO

	backup Backup

	// onGPIOWrite is the variant hook run after every GPIO data write.
	// nil for a plain Game; set by GameSolarSensor's constructor.
	onGPIOWrite func()
}

// NewGame wraps rom (already padded/sized by the ROM loader) in a plain
// Game device with no backup memory loaded yet; call LoadSave to attach one.
func NewGame(rom []byte) *Game {
	return &Game{rom: rom}
}

func (g *Game) IsAddon() bool { return false }

// SetROM rebinds this device's ROM buffer in place, used when the façade
// reallocates cart_rom on a CRC-mismatched savestate load; the device itself
// is otherwise left untouched (GPIO state, backup memory, solar-sensor
// hook survive the rebind).
func (g *Game) SetROM(rom []byte) { g.rom = rom }

// LoadSave opens path as this device's backup-memory file and derives its
// SaveType from the resulting length.
func (g *Game) LoadSave(plat platform.Platform, path string) error {
	return g.backup.Load(plat, path)
}

// RelocateSave migrates backup-memory persistence; see Backup.Relocate.
func (g *Game) RelocateSave(plat platform.Platform, path string, write bool) error {
	return g.backup.Relocate(plat, path, write)
}

func (g *Game) ROMRead(addr uint32) uint16 {
	addr &= romAddrMask

	if addr >= gpioDataAddr && addr < gpioWindowEnd {
		return g.gpio.read(addr)
	}

	if addr < uint32(len(g.rom)) {
		lo := g.rom[addr]
		var hi uint8
		if addr+1 < uint32(len(g.rom)) {
			hi = g.rom[addr+1]
		}
		return uint16(lo) | uint16(hi)<<8
	}
	return 0
}

func (g *Game) ROMWrite(addr uint32, val uint16) {
	addr &= romAddrMask

	switch addr {
	case gpioDataAddr:
		g.gpio.Data = (g.gpio.Data &^ g.gpio.Direction) | (val & g.gpio.Direction)
		if g.onGPIOWrite != nil {
			g.onGPIOWrite()
		}
	case gpioDirectionAddr:
		g.gpio.Direction = val
	case gpioControlAddr:
		g.gpio.Control = val
	default:
		log.ModGame.DebugZ("unknown GBA GPIO write").Hex32("addr", addr).Hex16("val", val).End()
	}
}

func (g *Game) SRAMRead(addr uint32) uint8 {
	return g.backup.Read(addr)
}

func (g *Game) SRAMWrite(addr uint32, val uint8) {
	g.backup.Write(addr, val)
}

func (g *Game) SetInput(num InputCode, pressed bool) int {
	return -1
}

func (g *Game) Savestate(s savestate.Stream) {
	s.Section("GBCS")

	s.U16(&g.gpio.Control)
	s.U16(&g.gpio.Data)
	s.U16(&g.gpio.Direction)

	g.backup.Savestate(s)
}

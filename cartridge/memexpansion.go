package cartridge

import "slot2cart/savestate"

const memExpansionRAMSize = 0x800000 // 8 MiB

const (
	memExpansionHeaderBase = 0x080000B0
	memExpansionHeaderEnd  = 0x080000C0
	memExpansionProbe1Addr = 0x0801FFFC
	memExpansionProbe2Addr = 0x08240002
	memExpansionLockAddr   = 0x08240000
	memExpansionRAMBase    = 0x09000000
	memExpansionRAMEnd     = 0x09800000
)

// memExpansionHeader is the fixed 16-byte block served through the ROM
// header window; real hardware identifies the pak by it.
var memExpansionHeader = [16]byte{
	'M', 'E', 'M', 'O', 'R', 'Y', ' ', 'P', 'A', 'K', 0, 0, 0, 0, 0, 0,
}

// MemExpansionPak is a non-ROM Slot-2 accessory exposing 8MiB of RAM through
// the ROM window, gated by a lock register also addressed in ROM space; SRAM
// accesses never reach it (SRAMRead always returns 0xFF, per the original).
type MemExpansionPak struct {
	ram  []byte
	lock bool
}

func NewMemExpansionPak() *MemExpansionPak {
	ram := make([]byte, memExpansionRAMSize)
	for i := range ram {
		ram[i] = 0xFF
	}
	return &MemExpansionPak{ram: ram, lock: true}
}

func (m *MemExpansionPak) IsAddon() bool { return true }

func (m *MemExpansionPak) ROMRead(addr uint32) uint16 {
	switch {
	case addr >= memExpansionHeaderBase && addr < memExpansionHeaderEnd:
		off := addr & 0xF
		lo := memExpansionHeader[off]
		var hi uint8
		if off+1 < uint32(len(memExpansionHeader)) {
			hi = memExpansionHeader[off+1]
		}
		return uint16(lo) | uint16(hi)<<8
	case addr == memExpansionProbe1Addr:
		return 0x7FFF
	case addr == memExpansionProbe2Addr:
		return 0x0000
	case addr >= memExpansionRAMBase && addr < memExpansionRAMEnd:
		off := addr & 0xFFFFFF
		lo := m.ram[off]
		var hi uint8
		if off+1 < uint32(len(m.ram)) {
			hi = m.ram[off+1]
		}
		return uint16(lo) | uint16(hi)<<8
	}
	return 0xFFFF
}

func (m *MemExpansionPak) ROMWrite(addr uint32, val uint16) {
	if addr == memExpansionLockAddr {
		m.lock = val&1 == 0
		return
	}

	if m.lock {
		return
	}

	if addr >= memExpansionRAMBase && addr < memExpansionRAMEnd {
		off := addr & 0xFFFFFF
		m.ram[off] = uint8(val)
		if off+1 < uint32(len(m.ram)) {
			m.ram[off+1] = uint8(val >> 8)
		}
	}
}

func (m *MemExpansionPak) SRAMRead(addr uint32) uint8 { return 0xFF }

func (m *MemExpansionPak) SRAMWrite(addr uint32, val uint8) {}

func (m *MemExpansionPak) SetInput(num InputCode, pressed bool) int { return -1 }

func (m *MemExpansionPak) Savestate(s savestate.Stream) {
	s.Section("GBCS")
	s.Bool(&m.lock)
	s.Bytes(m.ram)
}

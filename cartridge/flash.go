package cartridge

import log "slot2cart/internal/log"

// The flash chip command state machine. Ported from the unlock/erase/
// chip-ID/write/bank-switch tables of the reference implementation: two
// unlock bytes (0x5555=0xAA, 0x2AAA=0x55) must precede every command, and an
// interrupted sequence simply leaves state stale until the next unlock pair
// resets it — there is no timer, matching real silicon.

const (
	flashAddrUnlock1 = 0x5555
	flashAddrUnlock2 = 0x2AAA
	flashAddrBank    = 0x0000

	flashCmdErase        = 0x80
	flashCmdChipID       = 0x90
	flashCmdWrite        = 0xA0
	flashCmdBankSwitch   = 0xB0
	flashCmdTerminate    = 0xF0
	flashUnlockByte1     = 0xAA
	flashUnlockByte2     = 0x55
	flashEraseConfirm    = 0x30
	flashSectorSize      = 0x1000
	flashBankSize        = 0x10000
)

// bankOffset returns the effective buffer offset for addr under the
// currently selected bank. Only FLASH1M actually has two banks; for
// FLASH512K bank is always 0.
func (b *Backup) bankOffset(addr uint16) uint32 {
	return uint32(addr) + flashBankSize*uint32(b.flash.bank)
}

func (b *Backup) readFlash(addr uint16) uint8 {
	switch b.flash.cmd {
	case 0:
		off := b.bankOffset(addr)
		if off >= uint32(len(b.buf)) {
			return 0xFF
		}
		return b.buf[off]

	case flashCmdChipID:
		switch addr {
		case 0x0000:
			return b.flash.manufacturer
		case 0x0001:
			return b.flash.device
		}
		return 0xFF

	case flashCmdTerminate:
		b.flash.state = 0
		b.flash.cmd = 0
		return 0xFF

	case flashCmdWrite, flashCmdBankSwitch:
		return 0xFF

	default:
		log.ModFlash.WarnZ("read under unknown latched command").
			Hex8("cmd", b.flash.cmd).Hex16("addr", addr).End()
		return 0xFF
	}
}

func (b *Backup) writeFlash(addr uint16, val uint8) {
	switch b.flash.state {
	case 0x00:
		if addr == flashAddrUnlock1 {
			switch val {
			case flashUnlockByte1:
				b.flash.state = 1
				return
			case flashCmdTerminate:
				b.flash.state = 0
				b.flash.cmd = 0
				return
			}
		}
		if addr == flashAddrBank && b.flash.cmd == flashCmdBankSwitch {
			b.flash.bank = val
			b.flash.cmd = 0
			return
		}

	case 0x01:
		if addr == flashAddrUnlock2 && val == flashUnlockByte2 {
			b.flash.state = 2
			return
		}
		b.flash.state = 0

	case 0x02:
		if addr == flashAddrUnlock1 {
			switch val {
			case flashCmdErase:
				b.flash.state = flashCmdErase
			case flashCmdChipID:
				b.flash.state = flashCmdChipID
			case flashCmdWrite, flashCmdBankSwitch:
				b.flash.state = 0
			default:
				b.flash.state = 0
			}
			b.flash.cmd = val
			return
		}
		b.flash.state = 0

	// erase sub-protocol
	case flashCmdErase: // 0x80
		if addr == flashAddrUnlock1 && val == flashUnlockByte1 {
			b.flash.state = 0x81
			return
		}
		b.flash.state = 0
	case 0x81:
		if addr == flashAddrUnlock2 && val == flashUnlockByte2 {
			b.flash.state = 0x82
			return
		}
		b.flash.state = 0
	case 0x82:
		if val == flashEraseConfirm {
			b.eraseSector(addr)
		}
		b.flash.state = 0
		b.flash.cmd = 0
		return

	// chip-ID sub-protocol
	case flashCmdChipID: // 0x90
		if addr == flashAddrUnlock1 && val == flashUnlockByte1 {
			b.flash.state = 0x91
			return
		}
		b.flash.state = 0
	case 0x91:
		if addr == flashAddrUnlock2 && val == flashUnlockByte2 {
			b.flash.state = 0x92
			return
		}
		b.flash.state = 0
	case 0x92:
		b.flash.state = 0
		b.flash.cmd = 0
		return

	default:
		b.flash.state = 0
	}

	if b.flash.cmd == flashCmdWrite {
		b.writeSRAM(b.bankOffset(addr), val)
		b.flash.state = 0
		b.flash.cmd = 0
		return
	}

	log.ModFlash.WarnZ("unrecognized flash write, ignoring").
		Hex16("addr", addr).Hex8("val", val).Hex8("state", b.flash.state).End()
}

// eraseSector fills the 4KiB sector containing the effective offset of addr
// with 0xFF and flushes exactly that range to the backing file.
func (b *Backup) eraseSector(addr uint16) {
	start := b.bankOffset(addr)
	end := start + flashSectorSize
	if end > uint32(len(b.buf)) {
		end = uint32(len(b.buf))
	}
	for i := start; i < end; i++ {
		b.buf[i] = 0xFF
	}

	if b.file != nil && end > start {
		if _, err := b.file.WriteAt(b.buf[start:end], int64(start)); err != nil {
			log.ModFlash.WarnZ("sector erase flush failed").Uint32("start", start).Err(err).End()
		}
	}
}

package cartridge

import (
	"io"

	log "slot2cart/internal/log"
	"slot2cart/platform"
	"slot2cart/savestate"
)

// flashState tracks the flash chip's command-sequence progress. It is
// meaningless (and unused) for every SaveType other than the two flash
// variants, but is always present so savestates have a stable layout.
type flashState struct {
	state        uint8
	cmd          uint8
	bank         uint8
	manufacturer uint8
	device       uint8
}

// Backup is the backup-memory engine: a uniform byte read/write interface
// over whichever of the four technologies the save file's length implies,
// owning both the in-memory buffer and the write-through file handle.
type Backup struct {
	saveType SaveType
	buf      []byte
	path     string
	file     platform.RandomAccessFile
	flash    flashState
}

// Load opens path read-write, sizes and fills buf from its current content,
// and derives SaveType from the resulting length. A missing file is not an
// error: it simply yields an empty backup (SaveNone), matching the
// length-driven detection rule with length 0.
func (b *Backup) Load(plat platform.Platform, path string) error {
	b.close()

	b.path = path
	b.buf = nil
	b.saveType = SaveNone

	f, err := plat.OpenFile(path, platform.FileModeReadWrite)
	if err != nil {
		log.ModSave.DebugZ("no existing save file, starting empty").String("path", path).End()
		return nil
	}

	size, err := f.Size()
	if err != nil {
		f.Close()
		return err
	}

	buf := make([]byte, size)
	if size > 0 {
		if _, err := f.ReadAt(buf, 0); err != nil && err != io.EOF {
			f.Close()
			return err
		}
	}

	b.file = f
	b.buf = buf
	b.saveType = DetectSaveType(len(buf))
	if b.saveType == SaveNone && len(buf) != 0 {
		log.ModSave.WarnZ("unsupported save file length, treating as no backup memory").
			String("path", path).Int("length", len(buf)).End()
	}

	b.flash = flashState{}
	b.flash.manufacturer, b.flash.device = b.saveType.flashIdentity()

	return nil
}

// Relocate migrates the backup's persistent storage. write=false is a lazy
// rebind (just reopen path as the new backing file, discarding the current
// in-memory buffer). write=true instead copies the current in-memory buffer
// into a new file at path and switches the live handle to it.
func (b *Backup) Relocate(plat platform.Platform, path string, write bool) error {
	if !write {
		return b.Load(plat, path)
	}

	f, err := plat.OpenFile(path, platform.FileModeReadWrite)
	if err != nil {
		log.ModSave.ErrorZ("failed to create relocated save file").String("path", path).Err(err).End()
		return err
	}

	if len(b.buf) > 0 {
		if _, err := f.WriteAt(b.buf, 0); err != nil {
			f.Close()
			return err
		}
	}

	b.close()
	b.path = path
	b.file = f
	return nil
}

func (b *Backup) close() {
	if b.file != nil {
		b.file.Close()
		b.file = nil
	}
}

// Read dispatches an SRAM read by SaveType. addr is truncated to its low 16
// bits before dispatch, per the invariant shared by every backup technology.
func (b *Backup) Read(addr uint32) uint8 {
	addr &= 0xFFFF
	switch b.saveType {
	case SaveEEPROM4K, SaveEEPROM64K:
		return 0 // EEPROM protocol emulation is out of scope; stubbed read.
	case SaveFlash512K, SaveFlash1M:
		return b.readFlash(uint16(addr))
	case SaveSRAM256K:
		return b.readSRAM(addr)
	}
	return 0xFF
}

// Write dispatches an SRAM write by SaveType. addr is truncated the same
// way as Read.
func (b *Backup) Write(addr uint32, val uint8) {
	addr &= 0xFFFF
	switch b.saveType {
	case SaveEEPROM4K, SaveEEPROM64K:
		return // EEPROM protocol emulation is out of scope; write is a no-op.
	case SaveFlash512K, SaveFlash1M:
		b.writeFlash(uint16(addr), val)
	case SaveSRAM256K:
		b.writeSRAM(addr, val)
	}
}

func (b *Backup) readSRAM(addr uint32) uint8 {
	if addr >= uint32(len(b.buf)) {
		return 0xFF
	}
	return b.buf[addr]
}

// writeSRAM writes a single byte and mirrors it to the backing file, 1 byte
// at a time, but only when the value actually changes.
func (b *Backup) writeSRAM(addr uint32, val uint8) {
	if addr >= uint32(len(b.buf)) {
		return
	}
	if b.buf[addr] == val {
		return
	}
	b.buf[addr] = val
	if b.file != nil {
		if _, err := b.file.WriteAt(b.buf[addr:addr+1], int64(addr)); err != nil {
			log.ModSave.WarnZ("backing file write failed").Uint32("addr", addr).Err(err).End()
		}
	}
}

func (b *Backup) Savestate(s savestate.Stream) {
	oldLen := uint32(len(b.buf))
	length := oldLen
	s.U32(&length)

	if length != oldLen {
		b.buf = make([]byte, length)
	}

	if length == 0 {
		b.saveType = SaveNone
		b.close()
		return
	}

	s.Bytes(b.buf)

	s.U8(&b.flash.bank)
	s.U8(&b.flash.cmd)
	s.U8(&b.flash.device)
	s.U8(&b.flash.manufacturer)
	s.U8(&b.flash.state)

	saveType := uint8(b.saveType)
	s.U8(&saveType)
	b.saveType = SaveType(saveType)
}

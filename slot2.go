// Package slot2cart implements the Nintendo DS Slot-2 cartridge façade: it
// owns the currently inserted Slot-2 device (a GBA Game cart or one of the
// three non-ROM accessories) and routes CPU bus accesses to it.
package slot2cart

import (
	"slot2cart/cartridge"
	log "slot2cart/internal/log"
	"slot2cart/platform"
	"slot2cart/romimage"
	"slot2cart/savestate"
)

// Slot2 is one emulated machine's Slot-2 cartridge slot. The zero value is
// not ready to use; construct with NewSlot2.
type Slot2 struct {
	plat platform.Platform

	cartInserted bool
	cartROM      []byte
	cartROMSize  uint32
	cartCRC      uint32
	cartID       uint32

	device cartridge.Device
}

// NewSlot2 creates an empty Slot-2 slot bound to plat, which supplies file
// I/O and rumble primitives to whatever device gets inserted.
func NewSlot2(plat platform.Platform) *Slot2 {
	s := &Slot2{plat: plat}
	s.Init()
	return s
}

// Init clears all state. It always succeeds.
func (s *Slot2) Init() {
	s.cartInserted = false
	s.cartROM = nil
	s.cartROMSize = 0
	s.cartCRC = 0
	s.cartID = 0
	s.device = nil
}

// Deinit releases the ROM and the inserted device.
func (s *Slot2) Deinit() {
	s.cartROM = nil
	s.device = nil
}

// Reset is intentionally a no-op: CPU reset must not eject Slot-2 contents.
// Callers wanting a true reset should call Eject.
func (s *Slot2) Reset() {}

// Eject releases the ROM and device, clears all cart_* fields, then resets.
func (s *Slot2) Eject() {
	s.Deinit()
	s.cartInserted = false
	s.cartROMSize = 0
	s.cartCRC = 0
	s.cartID = 0
	s.Reset()
}

// LoadROM opens path, pads and measures it, and hands off to the common
// loader. On open or read failure the slot is left unchanged and the error
// is returned.
func (s *Slot2) LoadROM(path, sramPath string) error {
	img, err := romimage.Load(path)
	if err != nil {
		return err
	}
	return s.loadImage(img, sramPath)
}

// LoadROMBytes wraps an already in-memory ROM image the same way LoadROM
// wraps a file, zero-padding the tail the same way the file path does.
func (s *Slot2) LoadROMBytes(data []byte, sramPath string) error {
	return s.loadImage(romimage.LoadBytes(data), sramPath)
}

func (s *Slot2) loadImage(img *romimage.Image, sramPath string) error {
	s.Eject()

	var dev cartridge.Device
	if img.HasSolarSensor() {
		dev = cartridge.NewGameSolarSensor(img.Bytes)
	} else {
		dev = cartridge.NewGame(img.Bytes)
	}

	if game, ok := dev.(interface {
		LoadSave(platform.Platform, string) error
	}); ok {
		if err := game.LoadSave(s.plat, sramPath); err != nil {
			log.ModRom.WarnZ("failed to load backup memory").String("path", sramPath).Err(err).End()
		}
	}

	s.cartROM = img.Bytes
	s.cartROMSize = uint32(len(img.Bytes))
	s.cartCRC = img.CRC32
	s.cartInserted = true
	s.device = dev
	return nil
}

// LoadSlot2Addon ejects the current device and inserts one of the three
// non-ROM accessories. AddonNone is equivalent to Eject.
func (s *Slot2) LoadSlot2Addon(kind cartridge.AddonKind) {
	s.Eject()

	switch kind {
	case cartridge.AddonRumblePak:
		s.device = cartridge.NewRumblePak(s.plat)
	case cartridge.AddonGuitarGrip:
		s.device = cartridge.NewGuitarGrip()
	case cartridge.AddonMemExpansionPak:
		s.device = cartridge.NewMemExpansionPak()
	case cartridge.AddonNone:
		return
	default:
		log.ModCart.WarnZ("unknown addon kind, ignoring").Int("kind", int(kind)).End()
		return
	}
	s.cartInserted = true
}

// ROMRead routes a GBA ROM-window read to the inserted device. With nothing
// inserted it returns an open-bus approximation: (addr>>1)&0xFFFF.
func (s *Slot2) ROMRead(addr uint32) uint16 {
	if s.device == nil {
		return uint16(addr>>1) & 0xFFFF
	}
	return s.device.ROMRead(addr)
}

// ROMWrite routes a GBA ROM-window write. Dropped when nothing is inserted.
func (s *Slot2) ROMWrite(addr uint32, val uint16) {
	if s.device == nil {
		return
	}
	s.device.ROMWrite(addr, val)
}

// SRAMRead routes a GBA SRAM-window read. With nothing inserted it returns
// 0xFF.
func (s *Slot2) SRAMRead(addr uint32) uint8 {
	if s.device == nil {
		return 0xFF
	}
	return s.device.SRAMRead(addr)
}

// SRAMWrite routes a GBA SRAM-window write. Dropped when nothing is
// inserted.
func (s *Slot2) SRAMWrite(addr uint32, val uint8) {
	if s.device == nil {
		return
	}
	s.device.SRAMWrite(addr, val)
}

// SetInput routes an input event to the inserted device. Returns -1 when
// nothing is inserted or the device does not recognize num.
func (s *Slot2) SetInput(num cartridge.InputCode, pressed bool) int {
	if s.device == nil {
		return -1
	}
	return s.device.SetInput(num, pressed)
}

// RelocateSave migrates the inserted Game device's backup-memory
// persistence. write=false is a lazy rebind that just reopens path as the
// new backing file; write=true copies the current buffer to path and
// switches the live handle. It is a no-op for devices with no backup memory
// (addons, or no device inserted).
func (s *Slot2) RelocateSave(path string, write bool) error {
	game, ok := s.device.(interface {
		RelocateSave(platform.Platform, string, bool) error
	})
	if !ok {
		return nil
	}
	return game.RelocateSave(s.plat, path, write)
}

// romHeaderBytes is how much of cartROM the "GBAC" section serializes
// directly; the remainder is reconstructed from cartROMSize on load.
const romHeaderBytes = 192

// Savestate writes or reads the full Slot-2 state, reconstructing the
// inserted device's ROM-backed bookkeeping on load. Addon devices serialize
// only their own inner ("GBCS") payload; the device itself must already be
// present before loading an addon's savestate.
func (s *Slot2) Savestate(stream savestate.Stream) {
	stream.Section("GBAC")

	if s.device != nil && s.device.IsAddon() {
		s.device.Savestate(stream)
		return
	}

	size := s.cartROMSize
	stream.U32(&size)
	if size == 0 {
		if !stream.Saving() {
			s.Eject()
		}
		return
	}

	crc := s.cartCRC
	stream.U32(&crc)

	if !stream.Saving() && (crc != s.cartCRC || size != s.cartROMSize) {
		s.cartROM = make([]byte, size)
		if romSetter, ok := s.device.(interface{ SetROM([]byte) }); ok {
			romSetter.SetROM(s.cartROM)
		}
	}
	s.cartROMSize = size
	s.cartCRC = crc

	header := make([]byte, romHeaderBytes)
	if stream.Saving() && len(s.cartROM) >= romHeaderBytes {
		copy(header, s.cartROM[:romHeaderBytes])
	}
	stream.Bytes(header)
	if !stream.Saving() && len(s.cartROM) >= romHeaderBytes {
		copy(s.cartROM[:romHeaderBytes], header)
	}

	if !stream.Saving() {
		s.cartInserted = true
		if s.device == nil {
			s.device = cartridge.NewGame(s.cartROM)
		}
	}

	stream.U32(&crc) // redundant second CRC write, preserved for format compatibility
	stream.U32(&s.cartID)

	if s.device != nil {
		s.device.Savestate(stream)
	}
}

// CartInserted reports whether a device currently occupies the slot.
func (s *Slot2) CartInserted() bool { return s.cartInserted }

// CartROMSize returns the padded ROM size, or 0 if no Game device is loaded.
func (s *Slot2) CartROMSize() uint32 { return s.cartROMSize }

// CartCRC32 returns the CRC-32 of the padded ROM, or 0 if no Game device is
// loaded.
func (s *Slot2) CartCRC32() uint32 { return s.cartCRC }

// Package cartridge implements the Slot-2 cart device variants: Game and
// GameSolarSensor (ROM-backed carts, with or without the Boktai solar
// sensor), and the three non-ROM accessories (RumblePak, GuitarGrip,
// MemExpansionPak). All six share the Device interface; the Slot-2 façade
// (package slot2cart) holds at most one at a time.
package cartridge

import "slot2cart/savestate"

// Device is the bus-facing surface every cart variant implements. It
// replaces the virtual dispatch of the original implementation with a
// closed set of concrete types behind one interface — there is no seventh
// kind a caller can add at runtime.
type Device interface {
	ROMRead(addr uint32) uint16
	ROMWrite(addr uint32, val uint16)
	SRAMRead(addr uint32) uint8
	SRAMWrite(addr uint32, val uint8)

	// SetInput routes an accessory-specific input event. It returns a
	// device-specific value, or -1 if num is not recognized by this device.
	SetInput(num InputCode, pressed bool) int

	// IsAddon reports whether this device is a non-ROM Slot-2 accessory.
	// Addons serialize only their own inner state (GBCS); Game devices
	// additionally own the ROM/CRC/header bookkeeping at the façade level.
	IsAddon() bool

	Savestate(s savestate.Stream)
}

// InputCode identifies an input event routed to SetInput. Only solar-sensor
// and Guitar Grip devices interpret any of these; other devices return -1
// for all of them.
type InputCode int

const (
	InputSolarSensorDown InputCode = iota
	InputSolarSensorUp
	InputGuitarGripGreen
	InputGuitarGripRed
	InputGuitarGripYellow
	InputGuitarGripBlue
)

// AddonKind selects which non-ROM accessory LoadSlot2Addon should insert.
//
//go:generate go tool stringer -type=AddonKind
type AddonKind int

const (
	AddonNone AddonKind = iota
	AddonRumblePak
	AddonGuitarGrip
	AddonMemExpansionPak
)

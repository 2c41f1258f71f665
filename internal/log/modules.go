// Package log provides module-scoped, leveled logging for the Slot-2
// subsystem, backed by logrus. It mirrors the module-mask approach used by
// the wider emulator this package was extracted from: every subsystem gets
// its own Module handle, and debug-level output is opt-in per module so a
// host can run with -log=cart,flash without drowning in unrelated noise.
package log

import "gopkg.in/Sirupsen/logrus.v0"

type ModuleMask uint64
type Module uint

const ModuleMaskAll ModuleMask = 0xFFFFFFFFFFFFFFFF

const (
	ModCart   Module = iota + 1 // façade: Slot2 lifecycle and bus routing
	ModGame                     // Game/GameSolarSensor ROM+GPIO handling
	ModFlash                    // flash chip command state machine
	ModSave                     // backup-memory engine, file persistence
	ModRom                      // ROM loader and identification
	ModAddon                    // RumblePak/GuitarGrip/MemExpansionPak

	endStandardMods
)

var modCount = endStandardMods

var modDebugMask ModuleMask = 0

var modNames = []string{
	"<error>", "cart", "game", "flash", "save", "rom", "addon",
}

// NewModule registers an additional module beyond the standard set above.
func NewModule(name string) Module {
	mod := modCount
	modCount++
	modNames = append(modNames, name)
	return mod
}

func ModuleByName(name string) (Module, bool) {
	for idx, s := range modNames {
		if s == name {
			return Module(idx), true
		}
	}
	return 0, false
}

func EnableDebugModules(mask ModuleMask) {
	modDebugMask |= mask
}

func DisableDebugModules(mask ModuleMask) {
	modDebugMask &^= mask
}

func (mod Module) Mask() ModuleMask {
	return 1 << ModuleMask(mod)
}

func (mod Module) Enabled(level Level) bool {
	return level <= InfoLevel || modDebugMask&mod.Mask() != 0
}

func (mod Module) String() string {
	if int(mod) < len(modNames) {
		return modNames[mod]
	}
	return "<unknown>"
}

type Level = logrus.Level

const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
)

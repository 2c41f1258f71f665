package platform

import (
	"github.com/veandco/go-sdl2/sdl"

	log "slot2cart/internal/log"
)

// SDLHaptic drives the Rumble Pak through SDL2's haptic subsystem. It opens
// the first haptic-capable device it finds at construction time and plays a
// continuous rumble effect for as long as the cartridge asks for one;
// StopRumble cancels it. If no haptic device is present, every call is a
// silent no-op, same as NoopRumble.
type SDLHaptic struct {
	h *sdl.Haptic
}

const (
	rumbleStrength = 0.65
	rumbleLengthMs = uint32(sdl.HAPTIC_INFINITY)
)

// NewSDLHaptic initializes SDL's haptic subsystem and opens the first
// available device. Call Close when done.
func NewSDLHaptic() (*SDLHaptic, error) {
	if err := sdl.InitSubSystem(sdl.INIT_HAPTIC); err != nil {
		return nil, err
	}

	if sdl.NumHaptics() < 1 {
		log.ModAddon.WarnZ("no haptic device found, rumble pak will be silent").End()
		return &SDLHaptic{}, nil
	}

	h, err := sdl.HapticOpen(0)
	if err != nil {
		log.ModAddon.WarnZ("failed to open haptic device").Err(err).End()
		return &SDLHaptic{}, nil
	}

	if err := h.RumbleInit(); err != nil {
		log.ModAddon.WarnZ("haptic device does not support simple rumble").Err(err).End()
		h.Close()
		return &SDLHaptic{}, nil
	}

	return &SDLHaptic{h: h}, nil
}

func (s *SDLHaptic) StartRumble() {
	if s.h == nil {
		return
	}
	if err := s.h.RumblePlay(rumbleStrength, rumbleLengthMs); err != nil {
		log.ModAddon.WarnZ("RumblePlay failed").Err(err).End()
	}
}

func (s *SDLHaptic) StopRumble() {
	if s.h == nil {
		return
	}
	if err := s.h.RumbleStop(); err != nil {
		log.ModAddon.WarnZ("RumbleStop failed").Err(err).End()
	}
}

func (s *SDLHaptic) Close() {
	if s.h != nil {
		s.h.Close()
		s.h = nil
	}
}

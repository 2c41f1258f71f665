package cartridge

import "slot2cart/savestate"

// kLuxLevels maps a 0..10 illumination level to the sensor's raw lux
// reading, used to derive the reset sample. Values ported from the Boktai
// solar-sensor protocol as implemented in the reference emulator.
var kLuxLevels = [11]uint8{0, 5, 11, 18, 27, 42, 62, 84, 109, 139, 183}

const (
	solarBitClock  = 0x01
	solarBitReset  = 0x02
	solarBitSelect = 0x04
	solarSendBit   = 0x08
)

// SolarSensor is the Boktai illumination sensor's protocol state: a clocked
// serial comparator run over the GPIO block by GameSolarSensor.ProcessGPIO.
type SolarSensor struct {
	edge    bool
	counter uint8
	sample  uint8
	level   uint8 // 0..=10
}

// GameSolarSensor is a Game cart whose GPIO data writes additionally drive
// the Boktai solar-sensor protocol.
type GameSolarSensor struct {
	*Game
	solar SolarSensor
}

// NewGameSolarSensor wraps rom in a Game device with the solar-sensor GPIO
// handler installed.
func NewGameSolarSensor(rom []byte) *GameSolarSensor {
	g := &GameSolarSensor{Game: NewGame(rom)}
	g.Game.onGPIOWrite = g.processGPIO
	return g
}

// processGPIO runs on every 0xC4 (GPIO data) write, per the Boktai protocol:
// bit 2 is chip select (active low, ignore writes while set), bit 1 resets
// the counter and samples the current light level, bit 0 is the clock whose
// falling edge increments the counter. The sensor answers on bit 3 of the
// next readback, through whichever pins direction leaves as inputs.
func (g *GameSolarSensor) processGPIO() {
	data := g.gpio.Data

	if data&solarBitSelect != 0 {
		return
	}

	if data&solarBitReset != 0 {
		g.solar.counter = 0
		g.solar.sample = 0xFF - (0x16 + kLuxLevels[g.solar.level])
	}

	if data&solarBitClock != 0 && g.solar.edge {
		g.solar.counter++
	}
	g.solar.edge = data&solarBitClock == 0

	sendBit := g.solar.counter >= g.solar.sample
	if g.gpio.visible() {
		var bit uint16
		if sendBit {
			bit = solarSendBit
		}
		g.gpio.Data = (g.gpio.Data & g.gpio.Direction) | (bit &^ g.gpio.Direction & 0xF)
	}
}

// SetInput routes solar-sensor illumination changes. Up saturates at 10,
// Down saturates at 0; release events are ignored. Any other input code
// returns -1.
func (g *GameSolarSensor) SetInput(num InputCode, pressed bool) int {
	if !pressed {
		return -1
	}

	switch num {
	case InputSolarSensorDown:
		if g.solar.level > 0 {
			g.solar.level--
		}
		return int(g.solar.level)
	case InputSolarSensorUp:
		if g.solar.level < 10 {
			g.solar.level++
		}
		return int(g.solar.level)
	}
	return -1
}

func (g *GameSolarSensor) Savestate(s savestate.Stream) {
	g.Game.Savestate(s)

	s.Bool(&g.solar.edge)
	s.U8(&g.solar.counter)
	s.U8(&g.solar.sample)
	s.U8(&g.solar.level)
}

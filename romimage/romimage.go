// Package romimage loads a GBA ROM image, pads it to the shape the Slot-2
// cartridge hardware expects, and identifies which cart variant it is.
package romimage

import (
	"hash/crc32"
	"io"
	"os"

	"github.com/go-faster/errors"
)

const (
	minROMSize  = 0x200
	gameCodeOff = 0xAC
	gameCodeLen = 4
)

// Image is a loaded, padded ROM ready to back a Game device.
type Image struct {
	Bytes []byte
	CRC32 uint32
}

// Load reads path, pads it, and computes its CRC-32.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %q", path)
	}

	buf := make([]byte, paddedSize(int(fi.Size())))
	if _, err := io.ReadFull(f, buf[:fi.Size()]); err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}

	return fromBytes(buf), nil
}

// LoadBytes wraps an in-memory ROM image, copying and zero-padding it the
// same way Load does for a file.
func LoadBytes(data []byte) *Image {
	buf := make([]byte, paddedSize(len(data)))
	copy(buf, data)
	return fromBytes(buf)
}

func fromBytes(padded []byte) *Image {
	return &Image{
		Bytes: padded,
		CRC32: crc32.ChecksumIEEE(padded),
	}
}

// paddedSize rounds n up to the next power of two, never below minROMSize.
func paddedSize(n int) int {
	size := minROMSize
	for size < n {
		size <<= 1
	}
	return size
}

// GameCode returns the 4-byte game code at ROM offset 0xAC, or "" if the
// image is too short to contain one.
func (img *Image) GameCode() string {
	if len(img.Bytes) < gameCodeOff+gameCodeLen {
		return ""
	}
	return string(img.Bytes[gameCodeOff : gameCodeOff+gameCodeLen])
}

// solarSensorCodes is the closed list of game codes known to drive the
// Boktai solar-sensor GPIO protocol.
var solarSensorCodes = map[string]bool{
	"U3IJ": true, "U3IE": true, "U3IP": true,
	"U32J": true, "U32E": true, "U32P": true,
	"U33J": true, "A3IJ": true,
}

// HasSolarSensor reports whether this image's game code is on the
// solar-sensor allow-list.
func (img *Image) HasSolarSensor() bool {
	return solarSensorCodes[img.GameCode()]
}

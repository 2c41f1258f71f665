// cartinfo inspects a GBA ROM image the way the Slot-2 loader would see it:
// padded size, CRC-32, game code, and whether it would be wired up with the
// Boktai solar-sensor GPIO handler.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/go-faster/jx"

	"slot2cart/romimage"
)

type CLI struct {
	RomInfos RomInfos `cmd:"" default:"true" name:"rom-infos" help:"Show ROM infos."`
}

type RomInfos struct {
	RomPath string `arg:"" name:"/path/to/rom" help:"Path to the GBA ROM image." type:"existingfile"`
	JSON    bool   `name:"json" help:"Print as JSON instead of plain text."`
}

func (r *RomInfos) Run() error {
	img, err := romimage.Load(r.RomPath)
	if err != nil {
		return err
	}

	if r.JSON {
		return printJSON(img)
	}

	fmt.Printf("size:         0x%06X\n", len(img.Bytes))
	fmt.Printf("crc32:        0x%08X\n", img.CRC32)
	fmt.Printf("game code:    %q\n", img.GameCode())
	fmt.Printf("solar sensor: %v\n", img.HasSolarSensor())
	return nil
}

func printJSON(img *romimage.Image) error {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("size")
	e.Int(len(img.Bytes))
	e.FieldStart("crc32")
	e.UInt32(img.CRC32)
	e.FieldStart("game_code")
	e.Str(img.GameCode())
	e.FieldStart("solar_sensor")
	e.Bool(img.HasSolarSensor())
	e.ObjEnd()

	_, err := os.Stdout.Write(e.Bytes())
	return err
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli)
	ctx.FatalIfErrorf(ctx.Run())
}

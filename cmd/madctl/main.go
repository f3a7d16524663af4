// Command madctl prints the ST7789V MADCTL parameter for each screen
// rotation of the Adafruit Feather TFT ESP32-S3.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tinygo-org/st7789/madctl"
	"tinygo.org/x/drivers"
)

var rotationFlag = flag.String("rotation", "all", "Rotation preset to print: all, 0, 90, 180 or 270.")

func main() {
	log.SetFlags(0)
	log.SetPrefix("madctl: ")
	flag.Parse()

	presets, err := selectPresets(*rotationFlag)
	if err != nil {
		log.Fatalf("invalid -rotation %q: %v", *rotationFlag, err)
	}
	if err := printPresets(os.Stdout, presets); err != nil {
		log.Fatalf("write: %v", err)
	}
}

func selectPresets(rotation string) ([]madctl.Preset, error) {
	var r drivers.Rotation
	switch rotation {
	case "all", "":
		return madctl.Presets(), nil
	case "0":
		r = drivers.Rotation0
	case "90":
		r = drivers.Rotation90
	case "180":
		r = drivers.Rotation180
	case "270":
		r = drivers.Rotation270
	default:
		return nil, fmt.Errorf("%w %s", madctl.ErrUnknownRotation, rotation)
	}
	p, err := madctl.PresetFor(r)
	if err != nil {
		return nil, err
	}
	return []madctl.Preset{p}, nil
}

// printPresets writes each preset followed by an empty line.
func printPresets(w io.Writer, presets []madctl.Preset) error {
	for _, p := range presets {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

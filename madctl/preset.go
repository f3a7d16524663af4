package madctl

import (
	"errors"
	"fmt"

	"tinygo.org/x/drivers"
)

// ErrUnknownRotation is returned when no preset exists for a rotation.
var ErrUnknownRotation = errors.New("madctl: no preset for rotation")

// Preset is a named MADCTL configuration for one screen rotation.
type Preset struct {
	Label    string
	Rotation drivers.Rotation
	Flags    Flags
}

// Param returns the encoded MADCTL parameter of the preset.
func (p Preset) Param() Param {
	return Encode(p.Flags)
}

// String returns the label line followed by the parameter report.
func (p Preset) String() string {
	return p.Label + ":\n" + p.Param().String()
}

// Rotations refer to the Adafruit Feather TFT ESP32-S3 dev board.
var presets = [...]Preset{
	{
		Label:    "default (top left pixel by Boot button)",
		Rotation: drivers.Rotation0,
		Flags:    Flags{MY: 0, MX: 0, MV: 0, RGB: 1, MH: 1},
	},
	{
		Label:    "90° CW (top left by battery jack)",
		Rotation: drivers.Rotation90,
		Flags:    Flags{MY: 0, MX: 1, MV: 1, RGB: 1, MH: 1},
	},
	{
		Label:    "180° CW (top left by SDA pin)",
		Rotation: drivers.Rotation180,
		Flags:    Flags{MY: 1, MX: 1, MV: 0, RGB: 1, MH: 1},
	},
	{
		Label:    "270° CW (top left by Adafruit logo)",
		Rotation: drivers.Rotation270,
		Flags:    Flags{MY: 1, MX: 0, MV: 1, RGB: 1, MH: 1},
	},
}

// Presets returns the fixed rotation presets in clockwise order.
func Presets() []Preset {
	p := presets
	return p[:]
}

// PresetFor returns the preset for rotation r.
func PresetFor(r drivers.Rotation) (Preset, error) {
	for _, p := range presets {
		if p.Rotation == r {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w %d", ErrUnknownRotation, r)
}

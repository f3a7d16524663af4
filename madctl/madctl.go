// Package madctl encodes the ST7789V Memory Access Control (MADCTL, 0x36)
// parameter and describes each of its bits.
package madctl

import (
	"fmt"
	"strings"
)

// Command is the ST7789V MADCTL command byte.
const Command byte = 0x36

// Bit masks of the MADCTL parameter. Bits 1 and 0 are unused.
//
//	7  bit  0
//	---- ----
//	YXVL BH--
//	|||| ||
//	|||| |+--- MH:  display data latch order (0: left to right; 1: right to left)
//	|||| +---- RGB: color order (0: RGB; 1: BGR)
//	|||+------ ML:  line address order (0: top to bottom; 1: bottom to top)
//	||+------- MV:  page/column exchange (0: normal; 1: reverse)
//	|+-------- MX:  column address order (0: left to right; 1: right to left)
//	+--------- MY:  page address order (0: top to bottom; 1: bottom to top)
const (
	MY  uint8 = 0b10000000
	MX  uint8 = 0b01000000
	MV  uint8 = 0b00100000 // AKA "SWAP_XY"
	ML  uint8 = 0b00010000
	BGR uint8 = 0b00001000
	MH  uint8 = 0b00000100
)

const (
	bitMY  = 7
	bitMX  = 6
	bitMV  = 5
	bitML  = 4
	bitRGB = 3
	bitMH  = 2
)

// Flags holds the six MADCTL control bits. Each field is expected to be 0 or 1.
// Values are not validated: anything wider than one bit spills into the
// neighbouring higher bits when encoded.
type Flags struct {
	MY, MX, MV, ML, RGB, MH uint8
}

// Param is a packed MADCTL parameter byte.
type Param uint8

// Encode packs f into a MADCTL parameter.
func Encode(f Flags) Param {
	return Param(f.MY<<bitMY | f.MX<<bitMX | f.MV<<bitMV | f.ML<<bitML | f.RGB<<bitRGB | f.MH<<bitMH)
}

// Flags decodes p back into one flag per bit.
func (p Param) Flags() Flags {
	return Flags{
		MY:  p.bit(bitMY),
		MX:  p.bit(bitMX),
		MV:  p.bit(bitMV),
		ML:  p.bit(bitML),
		RGB: p.bit(bitRGB),
		MH:  p.bit(bitMH),
	}
}

func (p Param) bit(pos uint8) uint8 {
	return uint8(p>>pos) & 1
}

// Field is one described bit of a MADCTL parameter.
type Field struct {
	Bit         uint8  // bit position, 7 down to 2
	Name        string // datasheet mnemonic, e.g. "MY"
	Label       string // datasheet description of the bit
	Set         bool
	Description string // phrase for the current value of the bit
}

// fieldDef describes a bit: the phrase used when it is clear and when it is set.
type fieldDef struct {
	bit        uint8
	name       string
	label      string
	clear, set string
}

var fieldDefs = [...]fieldDef{
	{bitMY, "MY", "Page Address Order", "top to bottom", "bottom to top"},
	{bitMX, "MX", "Column Address Order", "left to right", "right to left"},
	{bitMV, "MV", "Page/Column Order", "normal mode", "reverse mode"},
	{bitML, "ML", "Line Address Order", "top to bottom", "bottom to top"},
	{bitRGB, "RGB", "RGB/BGR Order", "RGB", "BGR"},
	{bitMH, "MH", "Display Data Latch Order", "left to right", "right to left"},
}

// Fields returns the described bits of p, most significant first.
func (p Param) Fields() []Field {
	fields := make([]Field, len(fieldDefs))
	for i, def := range fieldDefs {
		set := p.bit(def.bit) == 1
		desc := def.clear
		if set {
			desc = def.set
		}
		fields[i] = Field{
			Bit:         def.bit,
			Name:        def.name,
			Label:       def.label,
			Set:         set,
			Description: desc,
		}
	}
	return fields
}

// String returns the report for p: the hex value followed by one line per
// bit and a trailing blank line.
func (p Param) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, " parameter = 0x%02x\n", uint8(p))
	for _, f := range p.Fields() {
		fmt.Fprintf(&sb, " D%d %s (%s): %s\n", f.Bit, f.Label, f.Name, f.Description)
	}
	sb.WriteByte('\n')
	return sb.String()
}

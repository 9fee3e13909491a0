package render

import (
	"fmt"
	"image/color"
	"math"
)

// Tab10 is the ten-color qualitative palette used for zones and hybrid groups
var Tab10 = []color.RGBA{
	hex(0x1f77b4), hex(0xff7f0e), hex(0x2ca02c), hex(0xd62728), hex(0x9467bd),
	hex(0x8c564b), hex(0xe377c2), hex(0x7f7f7f), hex(0xbcbd22), hex(0x17becf),
}

// Set1Three is the Set1 palette sampled at 0, 0.5 and 1 (red, orange, grey), used for seat classes
var Set1Three = []color.RGBA{hex(0xe41a1c), hex(0xff7f00), hex(0x999999)}

// SeatBlue fills the seats of the plain seating chart
var SeatBlue = hex(0xadd8e6)

// viridis anchors at 0, 1/8, ..., 1
var viridis = []color.RGBA{
	hex(0x440154), hex(0x472d7b), hex(0x3b528b), hex(0x2c728e), hex(0x21918c),
	hex(0x28ae80), hex(0x5ec962), hex(0xaddc30), hex(0xfde725),
}

// Viridis maps a value in [0, 1] onto the viridis color scale (values outside are clamped)
func Viridis(value float64) color.RGBA {
	value = math.Max(0, math.Min(1, value))
	position := value * float64(len(viridis)-1)
	lower := int(math.Floor(position))
	if lower >= len(viridis)-1 {
		return viridis[len(viridis)-1]
	}

	fraction := position - float64(lower)
	from, to := viridis[lower], viridis[lower+1]
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*fraction))
	}
	return color.RGBA{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: 0xff}
}

// Hex formats a color as RRGGBB (the form spreadsheet styles expect)
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("%02X%02X%02X", r>>8, g>>8, b>>8)
}

func hex(value uint32) color.RGBA {
	return color.RGBA{R: uint8(value >> 16), G: uint8(value >> 8), B: uint8(value), A: 0xff}
}

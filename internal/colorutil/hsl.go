package colorutil

import "math"

// HexToHSL converts a six digit hex color to HSL with integer components.
func HexToHSL(hex string) (HSL, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return HSL{}, false
	}
	return RGBToHSL(rgb.R, rgb.G, rgb.B), true
}

// RGBToHSL converts 8-bit channels to HSL, rounding each component.
func RGBToHSL(r, g, b int) HSL {
	rn := float64(clampByte(r)) / 255
	gn := float64(clampByte(g)) / 255
	bn := float64(clampByte(b)) / 255

	maxC := math.Max(rn, math.Max(gn, bn))
	minC := math.Min(rn, math.Min(gn, bn))
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}
		h = sectorHue(rn, gn, bn, maxC, d)
		if maxC == rn && gn < bn {
			h += 6
		}
		h /= 6
	}

	return HSL{
		H: roundHalfUp(h * 360),
		S: roundHalfUp(s * 100),
		L: roundHalfUp(l * 100),
	}
}

// sectorHue returns the hue in sixths of a turn, before wrapping.
func sectorHue(rn, gn, bn, maxC, d float64) float64 {
	switch maxC {
	case rn:
		return (gn - bn) / d
	case gn:
		return (bn-rn)/d + 2
	default:
		return (rn-gn)/d + 4
	}
}

// HSLToHex converts hue (degrees) and saturation/lightness (percent) to
// #RRGGBB. Hue wraps into [0,360); s and l are clamped to [0,100].
func HSLToHex(h, s, l float64) string {
	sn := clampFloat(s, 0, 100) / 100
	ln := clampFloat(l, 0, 100) / 100

	c := (1 - math.Abs(2*ln-1)) * sn
	return chromaToHex(wrapHue(h), c, ln-c/2)
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// chromaToRGB places chroma c in the sector of hue h and adds the match value m.
func chromaToRGB(h, c, m float64) RGB {
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: clampByte(roundHalfUp((r + m) * 255)),
		G: clampByte(roundHalfUp((g + m) * 255)),
		B: clampByte(roundHalfUp((b + m) * 255)),
	}
}

func chromaToHex(h, c, m float64) string {
	return chromaToRGB(h, c, m).Hex()
}

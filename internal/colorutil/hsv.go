package colorutil

import "math"

// HexToHSV converts a six digit hex color to HSV.
func HexToHSV(hex string) (HSV, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return HSV{}, false
	}
	return RGBToHSV(rgb.R, rgb.G, rgb.B), true
}

// RGBToHSV converts 8-bit channels to HSV with hue in [0,360).
func RGBToHSV(r, g, b int) HSV {
	rn := float64(clampByte(r)) / 255
	gn := float64(clampByte(g)) / 255
	bn := float64(clampByte(b)) / 255

	maxC := math.Max(rn, math.Max(gn, bn))
	minC := math.Min(rn, math.Min(gn, bn))
	delta := maxC - minC

	var h, s float64
	if delta != 0 {
		s = delta / maxC
		if maxC == rn {
			h = math.Mod((gn-bn)/delta, 6)
		} else {
			h = sectorHue(rn, gn, bn, maxC, delta)
		}
		h *= 60
		if h < 0 {
			h += 360
		}
	}

	hsv := HSV{
		H: roundHalfUp(h),
		S: roundHalfUp(s * 100),
		V: roundHalfUp(maxC * 100),
	}
	if hsv.H == 360 {
		hsv.H = 0
	}
	return hsv
}

// HSVToRGB converts hue (degrees) and saturation/value (percent) to RGB.
func HSVToRGB(h, s, v float64) RGB {
	sn := clampFloat(s, 0, 100) / 100
	vn := clampFloat(v, 0, 100) / 100

	c := vn * sn
	return chromaToRGB(wrapHue(h), c, vn-c)
}

// HSVToHex converts HSV to #RRGGBB.
func HSVToHex(h, s, v float64) string {
	return HSVToRGB(h, s, v).Hex()
}

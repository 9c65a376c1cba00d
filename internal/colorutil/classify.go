package colorutil

const (
	ContrastLight = "#FFFFFF"
	ContrastDark  = "#000000"

	darkLuminanceThreshold = 0.5
)

// Temperature cutoffs. These are tuned against the curated palette and are
// not derived from a color model; keep them as they are.
const (
	tempExtremeDarkL    = 5
	tempExtremeLightL   = 95
	tempGraySaturation  = 15
	tempPaleLightL      = 85
	tempPaleDarkL       = 25
	tempPaleSaturation  = 40
	tempMutedSaturation = 25
	tempMutedL          = 50

	tempWarmHueMax       = 60
	tempYellowGreenHue   = 120
	tempYellowishHueMax  = 90
	tempYellowishMinSat  = 40
	tempGreenCyanHue     = 180
	tempCyanHueMin       = 160
	tempCyanMinSat       = 80
	tempBlueVioletHueMax = 300
)

// IsDarkColor reports whether the perceived luminance of hex is below one half.
// Undecodable input is treated as light.
func IsDarkColor(hex string) bool {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return false
	}
	luminance := (0.299*float64(rgb.R) + 0.587*float64(rgb.G) + 0.114*float64(rgb.B)) / 255
	return luminance < darkLuminanceThreshold
}

// ContrastColor returns white for dark backgrounds and black otherwise.
func ContrastColor(hex string) string {
	if IsDarkColor(hex) {
		return ContrastLight
	}
	return ContrastDark
}

// ColorTemperature buckets hex as warm, cool or neutral. The first matching
// rule wins, so the order of the checks is significant.
func ColorTemperature(hex string) Temperature {
	hsl, ok := HexToHSL(hex)
	if !ok {
		return Neutral
	}
	h, s, l := hsl.H, hsl.S, hsl.L

	switch {
	case l <= tempExtremeDarkL || l >= tempExtremeLightL:
		return Neutral
	case s < tempGraySaturation:
		return Neutral
	case (l > tempPaleLightL || l < tempPaleDarkL) && s < tempPaleSaturation:
		return Neutral
	case s < tempMutedSaturation && l < tempMutedL:
		return Neutral
	}

	switch {
	case h >= 0 && h <= tempWarmHueMax:
		return Warm
	case h <= tempYellowGreenHue:
		if h <= tempYellowishHueMax && s > tempYellowishMinSat {
			return Warm
		}
		return Neutral
	case h <= tempGreenCyanHue:
		if h > tempCyanHueMin && s > tempCyanMinSat {
			return Cool
		}
		return Neutral
	case h <= tempBlueVioletHueMax:
		return Cool
	default:
		return Warm
	}
}

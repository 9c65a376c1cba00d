package colorutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexPattern     = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	hexFullPattern = regexp.MustCompile(`^#?([a-fA-F\d]{2})([a-fA-F\d]{2})([a-fA-F\d]{2})$`)
)

// HexToRGB decodes a six digit hex color, with or without the leading '#'.
// Shorthand (#RGB) is rejected; pass it through NormalizeHex first.
func HexToRGB(hex string) (RGB, bool) {
	m := hexFullPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, false
	}
	return RGB{
		R: parseHexByte(m[1]),
		G: parseHexByte(m[2]),
		B: parseHexByte(m[3]),
	}, true
}

func parseHexByte(s string) int {
	v, _ := strconv.ParseUint(s, 16, 8)
	return int(v)
}

// RGBToHex encodes channels as #RRGGBB. Channels are clamped to 0..255.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

// IsValidHex reports whether hex is #RGB or #RRGGBB.
func IsValidHex(hex string) bool {
	return hexPattern.MatchString(hex)
}

// NormalizeHex expands #RGB to #RRGGBB and upper-cases the result.
// Invalid input is returned unchanged.
func NormalizeHex(hex string) string {
	if !IsValidHex(hex) {
		return hex
	}
	if len(hex) == 4 {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	return strings.ToUpper(hex)
}

func clampByte(v int) int {
	return clampInt(v, 0, 255)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// roundHalfUp matches the rounding used by browsers (Math.round): ties go
// toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

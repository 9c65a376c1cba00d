package colorutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const alphaPattern = `\s*,\s*(0|1|0?\.\d+)\s*\)$`

var (
	rgbPattern  = regexp.MustCompile(`(?i)^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	rgbaPattern = regexp.MustCompile(`(?i)^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})` + alphaPattern)
	hslPattern  = regexp.MustCompile(`(?i)^hsl\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*\)$`)
	hslaPattern = regexp.MustCompile(`(?i)^hsla\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%` + alphaPattern)
	hsvPattern  = regexp.MustCompile(`(?i)^hsv\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*\)$`)
)

// Component upper bounds enforced after a pattern match.
const (
	maxChannel = 255
	maxHue     = 360
	maxPercent = 100
	maxAlpha   = 1.0
)

// FormatColor renders a canonical hex color in the requested format.
// When the hex cannot be decoded the input is returned as-is.
func FormatColor(hex string, f Format) string {
	switch f {
	case FormatHex:
		return strings.ToUpper(hex)
	case FormatRGB:
		if rgb, ok := HexToRGB(hex); ok {
			return rgb.String()
		}
	case FormatRGBA:
		if rgb, ok := HexToRGB(hex); ok {
			return RGBA{RGB: rgb, A: 1}.String()
		}
	case FormatHSL:
		if hsl, ok := HexToHSL(hex); ok {
			return hsl.String()
		}
	case FormatHSLA:
		if hsl, ok := HexToHSL(hex); ok {
			return HSLA{HSL: hsl, A: 1}.String()
		}
	case FormatHSV:
		if hsv, ok := HexToHSV(hex); ok {
			return hsv.String()
		}
	case FormatCSS:
		return fmt.Sprintf("var(--color-%s)", strings.ToLower(strings.TrimPrefix(hex, "#")))
	}
	return hex
}

func IsValidRGB(s string) bool  { return rgbPattern.MatchString(s) }
func IsValidRGBA(s string) bool { return rgbaPattern.MatchString(s) }
func IsValidHSL(s string) bool  { return hslPattern.MatchString(s) }
func IsValidHSLA(s string) bool { return hslaPattern.MatchString(s) }
func IsValidHSV(s string) bool  { return hsvPattern.MatchString(s) }

// ValidateColorFormat checks the structure of value for format f. Ranges are
// checked later by the parsers. CSS variables are always accepted.
func ValidateColorFormat(value string, f Format) bool {
	switch f {
	case FormatHex:
		return IsValidHex(value)
	case FormatRGB:
		return IsValidRGB(value)
	case FormatRGBA:
		return IsValidRGBA(value)
	case FormatHSL:
		return IsValidHSL(value)
	case FormatHSLA:
		return IsValidHSLA(value)
	case FormatHSV:
		return IsValidHSV(value)
	case FormatCSS:
		return true
	}
	return false
}

// ParseRGB parses "rgb(r, g, b)".
func ParseRGB(s string) (RGB, bool) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}
	c := RGB{R: atoi(m[1]), G: atoi(m[2]), B: atoi(m[3])}
	if c.R > maxChannel || c.G > maxChannel || c.B > maxChannel {
		return RGB{}, false
	}
	return c, true
}

// ParseRGBA parses "rgba(r, g, b, a)".
func ParseRGBA(s string) (RGBA, bool) {
	m := rgbaPattern.FindStringSubmatch(s)
	if m == nil {
		return RGBA{}, false
	}
	c := RGBA{RGB: RGB{R: atoi(m[1]), G: atoi(m[2]), B: atoi(m[3])}, A: atof(m[4])}
	if c.R > maxChannel || c.G > maxChannel || c.B > maxChannel || c.A > maxAlpha {
		return RGBA{}, false
	}
	return c, true
}

// ParseHSL parses "hsl(h, s%, l%)".
func ParseHSL(s string) (HSL, bool) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return HSL{}, false
	}
	c := HSL{H: atoi(m[1]), S: atoi(m[2]), L: atoi(m[3])}
	if c.H > maxHue || c.S > maxPercent || c.L > maxPercent {
		return HSL{}, false
	}
	return c, true
}

// ParseHSLA parses "hsla(h, s%, l%, a)".
func ParseHSLA(s string) (HSLA, bool) {
	m := hslaPattern.FindStringSubmatch(s)
	if m == nil {
		return HSLA{}, false
	}
	c := HSLA{HSL: HSL{H: atoi(m[1]), S: atoi(m[2]), L: atoi(m[3])}, A: atof(m[4])}
	if c.H > maxHue || c.S > maxPercent || c.L > maxPercent || c.A > maxAlpha {
		return HSLA{}, false
	}
	return c, true
}

// ParseHSV parses "hsv(h, s%, v%)".
func ParseHSV(s string) (HSV, bool) {
	m := hsvPattern.FindStringSubmatch(s)
	if m == nil {
		return HSV{}, false
	}
	c := HSV{H: atoi(m[1]), S: atoi(m[2]), V: atoi(m[3])}
	if c.H > maxHue || c.S > maxPercent || c.V > maxPercent {
		return HSV{}, false
	}
	return c, true
}

// ConvertToHex parses value as format f and returns it as #RRGGBB.
// The boolean is false for malformed or out-of-range input and for css.
func ConvertToHex(value string, f Format) (string, bool) {
	switch f {
	case FormatHex:
		if IsValidHex(value) {
			return NormalizeHex(value), true
		}
	case FormatRGB:
		if c, ok := ParseRGB(value); ok {
			return c.Hex(), true
		}
	case FormatRGBA:
		if c, ok := ParseRGBA(value); ok {
			return c.Hex(), true
		}
	case FormatHSL:
		if c, ok := ParseHSL(value); ok {
			return c.Hex(), true
		}
	case FormatHSLA:
		if c, ok := ParseHSLA(value); ok {
			return c.Hex(), true
		}
	case FormatHSV:
		if c, ok := ParseHSV(value); ok {
			return c.Hex(), true
		}
	}
	return "", false
}

// DetectFormat returns the first format whose pattern accepts value.
// CSS variables are never detected.
func DetectFormat(value string) (Format, bool) {
	value = strings.TrimSpace(value)
	for _, f := range Formats() {
		if f == FormatCSS {
			continue
		}
		if ValidateColorFormat(value, f) {
			return f, true
		}
	}
	return "", false
}

// Convert parses value as from and renders it as to.
func Convert(value string, from, to Format) (string, bool) {
	hex, ok := ConvertToHex(value, from)
	if !ok {
		return "", false
	}
	return FormatColor(hex, to), true
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func atof(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

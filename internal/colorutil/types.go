// Package colorutil converts colors between hex, RGB(A), HSL(A), HSV and
// CSS variable notation, and derives contrast and temperature classifications.
//
// Every function is pure. Parse and convert functions report failure through a
// boolean, format functions fall back to their input, and nothing panics on
// malformed user input.
package colorutil

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a color with 8-bit channels.
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// RGBA is an RGB color with alpha in [0,1].
type RGBA struct {
	RGB
	A float64 `json:"a" yaml:"a"`
}

// HSL holds hue in degrees and saturation/lightness in percent.
type HSL struct {
	H int `json:"h" yaml:"h"`
	S int `json:"s" yaml:"s"`
	L int `json:"l" yaml:"l"`
}

// HSLA is an HSL color with alpha in [0,1].
type HSLA struct {
	HSL
	A float64 `json:"a" yaml:"a"`
}

// HSV holds hue in degrees and saturation/value in percent.
type HSV struct {
	H int `json:"h" yaml:"h"`
	S int `json:"s" yaml:"s"`
	V int `json:"v" yaml:"v"`
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the color as #RRGGBB.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(c.A))
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// Hex returns the color as #RRGGBB.
func (c HSL) Hex() string {
	return HSLToHex(float64(c.H), float64(c.S), float64(c.L))
}

func (c HSLA) String() string {
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", c.H, c.S, c.L, formatAlpha(c.A))
}

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%d, %d%%, %d%%)", c.H, c.S, c.V)
}

// Hex returns the color as #RRGGBB.
func (c HSV) Hex() string {
	return HSVToHex(float64(c.H), float64(c.S), float64(c.V))
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// Temperature is the warm/cool/neutral bucket used for filtering.
type Temperature string

const (
	Warm    Temperature = "warm"
	Cool    Temperature = "cool"
	Neutral Temperature = "neutral"
)

// Temperatures returns all buckets in display order.
func Temperatures() []Temperature {
	return []Temperature{Warm, Cool, Neutral}
}

// ParseTemperature accepts a bucket name in any case.
func ParseTemperature(s string) (Temperature, bool) {
	switch Temperature(strings.ToLower(strings.TrimSpace(s))) {
	case Warm:
		return Warm, true
	case Cool:
		return Cool, true
	case Neutral:
		return Neutral, true
	}
	return "", false
}

// Format selects a textual color notation.
type Format string

const (
	FormatHex  Format = "hex"
	FormatRGB  Format = "rgb"
	FormatRGBA Format = "rgba"
	FormatHSL  Format = "hsl"
	FormatHSLA Format = "hsla"
	FormatHSV  Format = "hsv"
	FormatCSS  Format = "css"
)

// Formats returns every supported format in display order.
func Formats() []Format {
	return []Format{FormatHex, FormatRGB, FormatRGBA, FormatHSL, FormatHSLA, FormatHSV, FormatCSS}
}

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, true
		}
	}
	return "", false
}

// Next returns the format after f, wrapping around.
func (f Format) Next() Format {
	all := Formats()
	for i, known := range all {
		if known == f {
			return all[(i+1)%len(all)]
		}
	}
	return FormatHex
}

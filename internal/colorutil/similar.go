package colorutil

import (
	"math/rand/v2"
	"strings"
)

const (
	similarHueStep = 15
	similarJitter  = 20 // total width of the saturation/lightness jitter, ±10

	// MaxSimilarCount caps how many colors one call generates
	MaxSimilarCount = 100
)

// Rand is the random source used for similar-color jitter.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// SimilarColors returns up to count hex colors near hex: hue steps of 15°
// around the base and random saturation/lightness jitter of up to ±10.
// The base color itself is never included.
func SimilarColors(hex string, count int) []string {
	return SimilarColorsWith(globalRand{}, hex, count)
}

// SimilarColorsWith is SimilarColors with an explicit random source.
// count is clamped to MaxSimilarCount.
func SimilarColorsWith(rng Rand, hex string, count int) []string {
	hsl, ok := HexToHSL(hex)
	if !ok || count <= 0 {
		return []string{}
	}
	count = min(count, MaxSimilarCount)

	colors := make([]string, 0, count)
	for i := 0; i < count; i++ {
		h := float64(hsl.H + (i-count/2)*similarHueStep)
		s := clampFloat(float64(hsl.S)+(rng.Float64()-0.5)*similarJitter, 0, 100)
		l := clampFloat(float64(hsl.L)+(rng.Float64()-0.5)*similarJitter, 0, 100)

		candidate := HSLToHex(h, s, l)
		if strings.EqualFold(candidate[1:], strings.TrimPrefix(hex, "#")) {
			continue
		}
		colors = append(colors, candidate)
	}
	return colors
}

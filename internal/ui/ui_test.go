package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
)

func TestIcons(t *testing.T) {
	assert.Equal(t, IconWarm, TemperatureIcon(colorutil.Warm))
	assert.Equal(t, IconCool, TemperatureIcon(colorutil.Cool))
	assert.Equal(t, IconNeutral, TemperatureIcon(""))
	assert.Equal(t, IconFavorite, FavoriteIcon(true))
	assert.Equal(t, "🌊", CategoryIcon("brand", "🌊"))
	assert.Equal(t, "🎨", CategoryIcon("brand", ""))
	assert.Equal(t, "•", CategoryIcon("other", ""))
}

func TestSwatch_Width(t *testing.T) {
	out := Swatch("#1F91DC", "#1F91DC", 12)
	assert.Equal(t, 12, lipgloss.Width(out))
	assert.Contains(t, out, "#1F91DC")

	assert.Equal(t, "plain", Swatch("nope", "plain", 10))
}

func TestGradient_Width(t *testing.T) {
	assert.Equal(t, 10, lipgloss.Width(Gradient([]string{"#FF0000", "#0000FF", "#00FF00"}, 10)))
	assert.Equal(t, 4, lipgloss.Width(Gradient([]string{"#336699", "bad"}, 4)))
	assert.Empty(t, Gradient([]string{"bad"}, 5))
	assert.Empty(t, Gradient([]string{"#000000"}, 0))
}

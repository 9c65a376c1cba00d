package ui

import "github.com/lunit-heesungyang/palette-manager/internal/colorutil"

// Temperature icons
const (
	IconWarm    = "🔥"
	IconCool    = "❄"
	IconNeutral = "◌"
)

// UI icons for various UI elements
const (
	IconConfirm     = "⚠️ "
	IconSuccess     = "✓"
	IconInput       = "✎"
	IconFavorite    = "★"
	IconNotFavorite = "☆"
	IconFolder      = "📁"
	IconShare       = "🔗"
	IconCopy        = "📋"
)

// Checkbox icons
const (
	IconCheckboxChecked   = "◉"
	IconCheckboxUnchecked = "○"
)

// CategoryIcons are the fallback icons for the built-in categories
var CategoryIcons = map[string]string{
	"brand": "🎨",
	"ui":    "🖥️",
	"team":  "👥",
}

// TemperatureIcon returns the icon for a temperature bucket
func TemperatureIcon(t colorutil.Temperature) string {
	switch t {
	case colorutil.Warm:
		return IconWarm
	case colorutil.Cool:
		return IconCool
	default:
		return IconNeutral
	}
}

// FavoriteIcon returns a filled or hollow star
func FavoriteIcon(fav bool) string {
	if fav {
		return IconFavorite
	}
	return IconNotFavorite
}

// CategoryIcon prefers the category's own icon, then the built-in one
func CategoryIcon(id, icon string) string {
	if icon != "" {
		return icon
	}
	if i, ok := CategoryIcons[id]; ok {
		return i
	}
	return "•"
}

package model

import (
	"strings"
	"time"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
)

// Color represents a single named color in the palette
type Color struct {
	ID            string                `yaml:"id" json:"id"`
	Name          string                `yaml:"name" json:"name"`
	NameZh        string                `yaml:"name_zh,omitempty" json:"nameZh,omitempty"`
	Hex           string                `yaml:"hex" json:"hex"`
	Description   string                `yaml:"description,omitempty" json:"description,omitempty"`
	DescriptionZh string                `yaml:"description_zh,omitempty" json:"descriptionZh,omitempty"`
	Category      string                `yaml:"category,omitempty" json:"category,omitempty"`
	Tags          []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Temperature   colorutil.Temperature `yaml:"-" json:"temperature"` // Derived from Hex on load
	Favorite      bool                  `yaml:"favorite,omitempty" json:"isFavorite"`
	UsageCount    int                   `yaml:"usage_count,omitempty" json:"usageCount"`
	Created       time.Time             `yaml:"created" json:"createdAt"`
	Updated       time.Time             `yaml:"updated" json:"updatedAt"`
}

// NewColor builds a color with a normalized hex and derived temperature
func NewColor(name, hex string) *Color {
	now := time.Now()
	c := &Color{
		Name:    name,
		Created: now,
		Updated: now,
	}
	c.SetHex(hex)
	return c
}

// SetHex normalizes hex and recomputes the temperature
func (c *Color) SetHex(hex string) {
	c.Hex = colorutil.NormalizeHex(strings.TrimSpace(hex))
	c.Temperature = colorutil.ColorTemperature(c.Hex)
}

// Derive fills fields computed from Hex, e.g. after loading from disk
func (c *Color) Derive() {
	c.SetHex(c.Hex)
}

// Format renders the color in the given notation
func (c *Color) Format(f colorutil.Format) string {
	return colorutil.FormatColor(c.Hex, f)
}

// DisplayName returns the localized name, falling back to the English one
func (c *Color) DisplayName(lang string) string {
	if strings.HasPrefix(lang, "zh") && c.NameZh != "" {
		return c.NameZh
	}
	return c.Name
}

// DisplayDescription returns the localized description
func (c *Color) DisplayDescription(lang string) string {
	if strings.HasPrefix(lang, "zh") && c.DescriptionZh != "" {
		return c.DescriptionZh
	}
	return c.Description
}

// HasTag reports whether the color carries tag (case-insensitive)
func (c *Color) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Matches reports whether keyword appears in any searchable field
func (c *Color) Matches(keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return true
	}
	fields := []string{c.Name, c.NameZh, c.Description, c.DescriptionZh, c.Hex}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), kw) {
			return true
		}
	}
	for _, t := range c.Tags {
		if strings.Contains(strings.ToLower(t), kw) {
			return true
		}
	}
	return false
}

// Touch bumps the update timestamp
func (c *Color) Touch() {
	c.Updated = time.Now()
}

// Category groups colors for browsing
type Category struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	NameZh      string `yaml:"name_zh,omitempty" json:"nameZh,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty"`
	Order       int    `yaml:"order,omitempty" json:"order,omitempty"`
}

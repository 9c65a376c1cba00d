package model

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
)

// Palette represents the collection of all colors and their categories
type Palette struct {
	Colors     []*Color   `yaml:"colors"`
	Categories []Category `yaml:"categories"`
}

// NewPalette creates a new empty palette
func NewPalette() *Palette {
	return &Palette{
		Colors:     make([]*Color, 0),
		Categories: make([]Category, 0),
	}
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts a display name into an identifier fragment
func Slug(name string) string {
	s := slugInvalid.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// NextID derives a unique ID from the color name
func (p *Palette) NextID(name string) string {
	base := Slug(name)
	if base == "" {
		base = "color"
	}
	id := base
	for n := 2; p.Get(id) != nil; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

// Add adds a color to the palette, assigning an ID if it has none
func (p *Palette) Add(c *Color) {
	if c.ID == "" || p.Get(c.ID) != nil {
		c.ID = p.NextID(c.Name)
	}
	p.Colors = append(p.Colors, c)
}

// Get finds a color by ID
func (p *Palette) Get(id string) *Color {
	for _, c := range p.Colors {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FindByHex finds the first color with the given hex (any case, shorthand allowed)
func (p *Palette) FindByHex(hex string) *Color {
	want := colorutil.NormalizeHex(hex)
	for _, c := range p.Colors {
		if strings.EqualFold(c.Hex, want) {
			return c
		}
	}
	return nil
}

// Update replaces an existing color in the palette
func (p *Palette) Update(updated *Color) bool {
	for i, c := range p.Colors {
		if c.ID == updated.ID {
			updated.Touch()
			p.Colors[i] = updated
			return true
		}
	}
	return false
}

// Remove deletes a color by ID
func (p *Palette) Remove(id string) bool {
	for i, c := range p.Colors {
		if c.ID == id {
			p.Colors = append(p.Colors[:i], p.Colors[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleFavorite flips the favorite flag and returns the new value
func (p *Palette) ToggleFavorite(id string) (bool, error) {
	c := p.Get(id)
	if c == nil {
		return false, fmt.Errorf("color %q not found", id)
	}
	c.Favorite = !c.Favorite
	c.Touch()
	return c.Favorite, nil
}

// IncrementUsage records that a color value was copied
func (p *Palette) IncrementUsage(id string) error {
	c := p.Get(id)
	if c == nil {
		return fmt.Errorf("color %q not found", id)
	}
	c.UsageCount++
	c.Touch()
	return nil
}

// GetCategory finds a category by ID
func (p *Palette) GetCategory(id string) *Category {
	for i := range p.Categories {
		if p.Categories[i].ID == id {
			return &p.Categories[i]
		}
	}
	return nil
}

// SortedCategories returns categories ordered by their Order field
func (p *Palette) SortedCategories() []Category {
	cats := append([]Category(nil), p.Categories...)
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Order < cats[j].Order
	})
	return cats
}

// Search returns colors whose name, description, hex or tags contain keyword
func (p *Palette) Search(keyword string) []*Color {
	var found []*Color
	for _, c := range p.Colors {
		if c.Matches(keyword) {
			found = append(found, c)
		}
	}
	return found
}

// ColorFilter narrows the palette. Empty fields do not filter.
type ColorFilter struct {
	Keyword       string
	Categories    []string
	Tags          []string
	Temperatures  []colorutil.Temperature
	FavoritesOnly bool
	// IDs restricts the result to the given colors, e.g. members of a folder.
	// A nil slice means no restriction, an empty one matches nothing.
	IDs []string
}

// Match reports whether c passes every criterion of the filter
func (f ColorFilter) Match(c *Color) bool {
	if !c.Matches(f.Keyword) {
		return false
	}
	if len(f.Categories) > 0 && !containsString(f.Categories, c.Category) {
		return false
	}
	if len(f.Tags) > 0 {
		tagged := false
		for _, t := range f.Tags {
			if c.HasTag(t) {
				tagged = true
				break
			}
		}
		if !tagged {
			return false
		}
	}
	if len(f.Temperatures) > 0 {
		found := false
		for _, t := range f.Temperatures {
			if c.Temperature == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.FavoritesOnly && !c.Favorite {
		return false
	}
	if f.IDs != nil && !containsString(f.IDs, c.ID) {
		return false
	}
	return true
}

// SortField selects the sort key for colors
type SortField string

const (
	SortByName    SortField = "name"
	SortByNameZh  SortField = "name_zh"
	SortByCreated SortField = "created"
	SortByUpdated SortField = "updated"
	SortByUsage   SortField = "usage"
)

// ColorSort describes ordering of a color list
type ColorSort struct {
	By         SortField
	Descending bool
}

// DefaultSort is newest first, like a freshly opened palette
var DefaultSort = ColorSort{By: SortByCreated, Descending: true}

// Filter returns the colors matching f, ordered by s
func (p *Palette) Filter(f ColorFilter, s ColorSort) []*Color {
	var filtered []*Color
	for _, c := range p.Colors {
		if f.Match(c) {
			filtered = append(filtered, c)
		}
	}
	SortColors(filtered, s)
	return filtered
}

// SortColors orders colors in place. Ties keep their original order.
func SortColors(colors []*Color, s ColorSort) {
	less := func(a, b *Color) bool {
		switch s.By {
		case SortByName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortByNameZh:
			return a.NameZh < b.NameZh
		case SortByUpdated:
			return a.Updated.Before(b.Updated)
		case SortByUsage:
			return a.UsageCount < b.UsageCount
		default:
			return a.Created.Before(b.Created)
		}
	}
	sort.SliceStable(colors, func(i, j int) bool {
		if s.Descending {
			return less(colors[j], colors[i])
		}
		return less(colors[i], colors[j])
	})
}

// Stats summarizes the palette
type Stats struct {
	TotalColors       int
	CategoryCounts    map[string]int
	TemperatureCounts map[colorutil.Temperature]int
	FavoriteCount     int
	RecentColors      []*Color
	PopularColors     []*Color
}

const statsListSize = 10

// Stats computes counts plus the most recently updated and most used colors
func (p *Palette) Stats() Stats {
	st := Stats{
		TotalColors:       len(p.Colors),
		CategoryCounts:    make(map[string]int),
		TemperatureCounts: make(map[colorutil.Temperature]int),
	}
	for _, t := range colorutil.Temperatures() {
		st.TemperatureCounts[t] = 0
	}

	for _, c := range p.Colors {
		cat := c.Category
		if cat == "" {
			cat = "uncategorized"
		}
		st.CategoryCounts[cat]++
		st.TemperatureCounts[c.Temperature]++
		if c.Favorite {
			st.FavoriteCount++
		}
	}

	recent := append([]*Color(nil), p.Colors...)
	SortColors(recent, ColorSort{By: SortByUpdated, Descending: true})
	st.RecentColors = recent[:min(len(recent), statsListSize)]

	popular := append([]*Color(nil), p.Colors...)
	SortColors(popular, ColorSort{By: SortByUsage, Descending: true})
	st.PopularColors = popular[:min(len(popular), statsListSize)]

	return st
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Folder is a user-defined group of colors
type Folder struct {
	ID          string    `yaml:"id" json:"id"`
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"-" json:"description,omitempty"` // Stored as the markdown body
	Icon        string    `yaml:"icon,omitempty" json:"icon,omitempty"`
	IconColor   string    `yaml:"icon_color,omitempty" json:"iconColor,omitempty"`
	Order       int       `yaml:"order,omitempty" json:"order,omitempty"`
	Created     time.Time `yaml:"created" json:"createdAt"`
	Updated     time.Time `yaml:"updated" json:"updatedAt"`
}

// FolderRelation links a color to a folder
type FolderRelation struct {
	ColorID  string    `yaml:"color_id"`
	FolderID string    `yaml:"folder_id"`
	AddedAt  time.Time `yaml:"added_at"`
}

// FolderIndex holds all folders and their color memberships
type FolderIndex struct {
	Folders   []*Folder
	Relations []FolderRelation
}

// NewFolderIndex creates an empty folder index
func NewFolderIndex() *FolderIndex {
	return &FolderIndex{
		Folders:   make([]*Folder, 0),
		Relations: make([]FolderRelation, 0),
	}
}

// NextID derives a unique folder ID from its name
func (fi *FolderIndex) NextID(name string) string {
	base := Slug(name)
	if base == "" {
		base = "folder"
	}
	id := base
	for n := 2; fi.Get(id) != nil; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

// Create adds a new folder and returns it
func (fi *FolderIndex) Create(name, description, icon string) *Folder {
	now := time.Now()
	f := &Folder{
		ID:          fi.NextID(name),
		Name:        name,
		Description: description,
		Icon:        icon,
		Order:       len(fi.Folders) + 1,
		Created:     now,
		Updated:     now,
	}
	fi.Folders = append(fi.Folders, f)
	return f
}

// Add inserts an existing folder, e.g. one read from disk
func (fi *FolderIndex) Add(f *Folder) {
	if f.ID == "" || fi.Get(f.ID) != nil {
		f.ID = fi.NextID(f.Name)
	}
	fi.Folders = append(fi.Folders, f)
}

// Get finds a folder by ID
func (fi *FolderIndex) Get(id string) *Folder {
	for _, f := range fi.Folders {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Find looks a folder up by ID, then by name (case-insensitive)
func (fi *FolderIndex) Find(idOrName string) *Folder {
	if f := fi.Get(idOrName); f != nil {
		return f
	}
	for _, f := range fi.Folders {
		if strings.EqualFold(f.Name, idOrName) {
			return f
		}
	}
	return nil
}

// Rename updates a folder's name and description
func (fi *FolderIndex) Rename(id, name, description string) error {
	f := fi.Get(id)
	if f == nil {
		return fmt.Errorf("folder %q not found", id)
	}
	f.Name = name
	f.Description = description
	f.Updated = time.Now()
	return nil
}

// Delete removes a folder together with all of its relations
func (fi *FolderIndex) Delete(id string) bool {
	for i, f := range fi.Folders {
		if f.ID == id {
			fi.Folders = append(fi.Folders[:i], fi.Folders[i+1:]...)
			fi.Relations = fi.filterRelations(func(r FolderRelation) bool {
				return r.FolderID != id
			})
			return true
		}
	}
	return false
}

// Contains reports whether a color belongs to a folder
func (fi *FolderIndex) Contains(folderID, colorID string) bool {
	for _, r := range fi.Relations {
		if r.FolderID == folderID && r.ColorID == colorID {
			return true
		}
	}
	return false
}

// AddColor puts a color into a folder. Adding twice is a no-op.
func (fi *FolderIndex) AddColor(colorID, folderID string) error {
	f := fi.Get(folderID)
	if f == nil {
		return fmt.Errorf("folder %q not found", folderID)
	}
	if fi.Contains(folderID, colorID) {
		return nil
	}
	now := time.Now()
	fi.Relations = append(fi.Relations, FolderRelation{
		ColorID:  colorID,
		FolderID: folderID,
		AddedAt:  now,
	})
	f.Updated = now
	return nil
}

// AddColorToFolders puts a color into each of the given folders
func (fi *FolderIndex) AddColorToFolders(colorID string, folderIDs []string) error {
	for _, id := range folderIDs {
		if err := fi.AddColor(colorID, id); err != nil {
			return err
		}
	}
	return nil
}

// RemoveColor takes a color out of a folder
func (fi *FolderIndex) RemoveColor(colorID, folderID string) {
	fi.Relations = fi.filterRelations(func(r FolderRelation) bool {
		return !(r.ColorID == colorID && r.FolderID == folderID)
	})
	if f := fi.Get(folderID); f != nil {
		f.Updated = time.Now()
	}
}

// RemoveColorEverywhere drops every relation of a deleted color
func (fi *FolderIndex) RemoveColorEverywhere(colorID string) {
	fi.Relations = fi.filterRelations(func(r FolderRelation) bool {
		return r.ColorID != colorID
	})
}

// MoveColor moves a color from one folder to another
func (fi *FolderIndex) MoveColor(colorID, fromID, toID string) error {
	if fi.Get(toID) == nil {
		return fmt.Errorf("folder %q not found", toID)
	}
	fi.RemoveColor(colorID, fromID)
	return fi.AddColor(colorID, toID)
}

// ColorIDs returns the IDs of the colors in a folder, in insertion order
func (fi *FolderIndex) ColorIDs(folderID string) []string {
	ids := make([]string, 0)
	for _, r := range fi.Relations {
		if r.FolderID == folderID {
			ids = append(ids, r.ColorID)
		}
	}
	return ids
}

// ColorsIn resolves a folder's members against the palette
func (fi *FolderIndex) ColorsIn(folderID string, p *Palette) []*Color {
	var colors []*Color
	for _, id := range fi.ColorIDs(folderID) {
		if c := p.Get(id); c != nil {
			colors = append(colors, c)
		}
	}
	return colors
}

// FoldersFor returns the folders containing a color
func (fi *FolderIndex) FoldersFor(colorID string) []*Folder {
	var folders []*Folder
	for _, r := range fi.Relations {
		if r.ColorID == colorID {
			if f := fi.Get(r.FolderID); f != nil {
				folders = append(folders, f)
			}
		}
	}
	return folders
}

// Unassigned returns the palette colors that are in no folder
func (fi *FolderIndex) Unassigned(p *Palette) []*Color {
	assigned := make(map[string]bool)
	for _, r := range fi.Relations {
		assigned[r.ColorID] = true
	}
	var colors []*Color
	for _, c := range p.Colors {
		if !assigned[c.ID] {
			colors = append(colors, c)
		}
	}
	return colors
}

// Search returns folders whose name or description contains keyword
func (fi *FolderIndex) Search(keyword string) []*Folder {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	var found []*Folder
	for _, f := range fi.Folders {
		if kw == "" ||
			strings.Contains(strings.ToLower(f.Name), kw) ||
			strings.Contains(strings.ToLower(f.Description), kw) {
			found = append(found, f)
		}
	}
	return found
}

// Sorted returns folders by Order, or by color count (largest first)
func (fi *FolderIndex) Sorted(byColorCount bool) []*Folder {
	folders := append([]*Folder(nil), fi.Folders...)
	if byColorCount {
		counts := make(map[string]int)
		for _, r := range fi.Relations {
			counts[r.FolderID]++
		}
		sort.SliceStable(folders, func(i, j int) bool {
			return counts[folders[i].ID] > counts[folders[j].ID]
		})
		return folders
	}
	sort.SliceStable(folders, func(i, j int) bool {
		return folders[i].Order < folders[j].Order
	})
	return folders
}

// NameConflict reports whether a folder with this name already exists
func (fi *FolderIndex) NameConflict(name string) bool {
	for _, f := range fi.Folders {
		if strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}

// UniqueFolderName appends " (n)" until the name is free
func (fi *FolderIndex) UniqueFolderName(base string) string {
	name := base
	for n := 1; fi.NameConflict(name); n++ {
		name = fmt.Sprintf("%s (%d)", base, n)
	}
	return name
}

func (fi *FolderIndex) filterRelations(keep func(FolderRelation) bool) []FolderRelation {
	out := make([]FolderRelation, 0, len(fi.Relations))
	for _, r := range fi.Relations {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// ToFrontmatter returns the folder's frontmatter, listing member color IDs
func (f *Folder) ToFrontmatter(colorIDs []string) map[string]interface{} {
	fm := map[string]interface{}{
		"name":    f.Name,
		"order":   f.Order,
		"created": f.Created.Format(time.RFC3339),
		"updated": f.Updated.Format(time.RFC3339),
		"colors":  colorIDs,
	}
	if f.Icon != "" {
		fm["icon"] = f.Icon
	}
	if f.IconColor != "" {
		fm["icon_color"] = f.IconColor
	}
	return fm
}

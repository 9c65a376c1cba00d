package storage

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
	"github.com/lunit-heesungyang/palette-manager/internal/logging"
	"github.com/lunit-heesungyang/palette-manager/internal/model"
)

const subsystem = "storage"

// PaletteDirName is the directory created in the project root
const PaletteDirName = ".palette"

//go:embed defaults.yaml
var defaultPaletteYAML []byte

var (
	ErrColorNotFound  = errors.New("color not found")
	ErrFolderNotFound = errors.New("folder not found")
	ErrInvalidHex     = errors.New("invalid hex color")
)

// Storage handles reading and writing palette files
type Storage struct {
	ProjectRoot string
	PaletteDir  string
	AutoStage   bool // git add files after each save
}

// New creates a new Storage instance
func New(projectRoot string) *Storage {
	if projectRoot == "" {
		projectRoot, _ = os.Getwd()
	}
	return &Storage{
		ProjectRoot: projectRoot,
		PaletteDir:  filepath.Join(projectRoot, PaletteDirName),
	}
}

// EnsurePaletteDir creates the palette and folders directories
func (s *Storage) EnsurePaletteDir() error {
	return os.MkdirAll(s.FoldersDir(), 0755)
}

// Path helpers
func (s *Storage) PalettePath() string {
	return filepath.Join(s.PaletteDir, "palette.yaml")
}

func (s *Storage) FoldersDir() string {
	return filepath.Join(s.PaletteDir, "folders")
}

func (s *Storage) FolderPath(folderID string) string {
	return filepath.Join(s.FoldersDir(), folderID+".md")
}

func (s *Storage) LogPath() string {
	return filepath.Join(s.PaletteDir, "pal.log")
}

// DefaultPalette returns the built-in starter palette
func DefaultPalette() (*model.Palette, error) {
	return decodePalette(defaultPaletteYAML)
}

func decodePalette(data []byte) (*model.Palette, error) {
	p := model.NewPalette()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing palette: %w", err)
	}
	now := time.Now()
	for _, c := range p.Colors {
		c.Derive()
		if c.Created.IsZero() {
			c.Created = now
		}
		if c.Updated.IsZero() {
			c.Updated = c.Created
		}
	}
	return p, nil
}

// LoadPalette loads palette.yaml, falling back to the built-in palette
func (s *Storage) LoadPalette() (*model.Palette, error) {
	data, err := os.ReadFile(s.PalettePath())
	if os.IsNotExist(err) {
		return DefaultPalette()
	}
	if err != nil {
		return nil, fmt.Errorf("reading palette: %w", err)
	}
	return decodePalette(data)
}

// SavePalette writes palette.yaml
func (s *Storage) SavePalette(p *model.Palette) error {
	if err := s.EnsurePaletteDir(); err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling palette: %w", err)
	}

	if err := os.WriteFile(s.PalettePath(), data, 0644); err != nil {
		return fmt.Errorf("writing palette: %w", err)
	}
	logging.Debug(subsystem, "saved %d colors to %s", len(p.Colors), s.PalettePath())
	s.stage(s.PalettePath())
	return nil
}

// AddColor validates and appends a color, assigning it a unique ID
func (s *Storage) AddColor(c *model.Color) (*model.Color, error) {
	hex := cleanHex(c.Hex)
	if !colorutil.IsValidHex(hex) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, c.Hex)
	}
	c.SetHex(hex)

	p, err := s.LoadPalette()
	if err != nil {
		return nil, err
	}
	p.Add(c)
	if err := s.SavePalette(p); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateColor replaces the stored color with the same ID
func (s *Storage) UpdateColor(c *model.Color) error {
	hex := cleanHex(c.Hex)
	if !colorutil.IsValidHex(hex) {
		return fmt.Errorf("%w: %q", ErrInvalidHex, c.Hex)
	}
	c.SetHex(hex)

	p, err := s.LoadPalette()
	if err != nil {
		return err
	}
	if !p.Update(c) {
		return fmt.Errorf("%w: %s", ErrColorNotFound, c.ID)
	}
	return s.SavePalette(p)
}

// DeleteColor removes a color and its folder memberships
func (s *Storage) DeleteColor(id string) error {
	p, err := s.LoadPalette()
	if err != nil {
		return err
	}
	if !p.Remove(id) {
		return fmt.Errorf("%w: %s", ErrColorNotFound, id)
	}
	if err := s.SavePalette(p); err != nil {
		return err
	}

	fi, err := s.LoadFolders()
	if err != nil {
		return err
	}
	for _, f := range fi.FoldersFor(id) {
		fi.RemoveColor(id, f.ID)
		if err := s.SaveFolder(fi, f.ID); err != nil {
			return err
		}
	}
	return nil
}

// ToggleFavorite flips a color's favorite flag and returns the new value
func (s *Storage) ToggleFavorite(id string) (bool, error) {
	p, err := s.LoadPalette()
	if err != nil {
		return false, err
	}
	if p.Get(id) == nil {
		return false, fmt.Errorf("%w: %s", ErrColorNotFound, id)
	}
	fav, _ := p.ToggleFavorite(id)
	return fav, s.SavePalette(p)
}

// IncrementUsage records that a color was copied
func (s *Storage) IncrementUsage(id string) error {
	p, err := s.LoadPalette()
	if err != nil {
		return err
	}
	if p.Get(id) == nil {
		return fmt.Errorf("%w: %s", ErrColorNotFound, id)
	}
	_ = p.IncrementUsage(id)
	return s.SavePalette(p)
}

// LoadFolders reads every folder file into an index
func (s *Storage) LoadFolders() (*model.FolderIndex, error) {
	fi := model.NewFolderIndex()

	entries, err := os.ReadDir(s.FoldersDir())
	if os.IsNotExist(err) {
		return fi, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading folders: %w", err)
	}

	var folders []*model.Folder
	members := make(map[string][]string)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".md")
		f, colorIDs, err := s.loadFolder(id)
		if err != nil {
			return nil, err
		}
		folders = append(folders, f)
		members[id] = colorIDs
	}

	sort.SliceStable(folders, func(i, j int) bool {
		return folders[i].Order < folders[j].Order
	})
	for _, f := range folders {
		fi.Add(f)
		for _, colorID := range members[f.ID] {
			fi.Relations = append(fi.Relations, model.FolderRelation{
				ColorID:  colorID,
				FolderID: f.ID,
				AddedAt:  f.Updated,
			})
		}
	}
	return fi, nil
}

func (s *Storage) loadFolder(id string) (*model.Folder, []string, error) {
	data, err := os.ReadFile(s.FolderPath(id))
	if err != nil {
		return nil, nil, fmt.Errorf("reading folder %s: %w", id, err)
	}

	fm, body, err := ParseFrontmatter(string(data))
	if err != nil {
		return nil, nil, fmt.Errorf("folder %s: %w", id, err)
	}

	f := &model.Folder{
		ID:          id,
		Name:        GetString(fm, "name"),
		Description: body,
		Icon:        GetString(fm, "icon"),
		IconColor:   GetString(fm, "icon_color"),
		Order:       GetInt(fm, "order"),
		Created:     GetTime(fm, "created"),
		Updated:     GetTime(fm, "updated"),
	}
	if f.Name == "" {
		f.Name = id
	}
	return f, GetStringSlice(fm, "colors"), nil
}

// SaveFolder writes one folder file from the index
func (s *Storage) SaveFolder(fi *model.FolderIndex, folderID string) error {
	f := fi.Get(folderID)
	if f == nil {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, folderID)
	}
	if err := s.EnsurePaletteDir(); err != nil {
		return err
	}

	content, err := CreateFrontmatter(f.ToFrontmatter(fi.ColorIDs(folderID)), f.Description)
	if err != nil {
		return err
	}

	path := s.FolderPath(folderID)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing folder: %w", err)
	}
	s.stage(path)
	return nil
}

// CreateFolder adds a new folder file
func (s *Storage) CreateFolder(name, description, icon string) (*model.Folder, error) {
	fi, err := s.LoadFolders()
	if err != nil {
		return nil, err
	}
	f := fi.Create(name, description, icon)
	if err := s.SaveFolder(fi, f.ID); err != nil {
		return nil, err
	}
	logging.Info(subsystem, "created folder %s", f.ID)
	return f, nil
}

// UpdateFolder changes a folder's name and description
func (s *Storage) UpdateFolder(id, name, description string) error {
	fi, err := s.LoadFolders()
	if err != nil {
		return err
	}
	if err := fi.Rename(id, name, description); err != nil {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, id)
	}
	return s.SaveFolder(fi, id)
}

// DeleteFolder removes a folder file. Colors stay in the palette.
func (s *Storage) DeleteFolder(id string) error {
	path := s.FolderPath(id)
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("deleting folder: %w", err)
	}
	s.stageRemoval(path)
	return nil
}

// AddToFolder puts an existing color into an existing folder
func (s *Storage) AddToFolder(colorID, folderID string) error {
	p, err := s.LoadPalette()
	if err != nil {
		return err
	}
	if p.Get(colorID) == nil {
		return fmt.Errorf("%w: %s", ErrColorNotFound, colorID)
	}

	fi, err := s.LoadFolders()
	if err != nil {
		return err
	}
	if err := fi.AddColor(colorID, folderID); err != nil {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, folderID)
	}
	return s.SaveFolder(fi, folderID)
}

// RemoveFromFolder takes a color out of a folder
func (s *Storage) RemoveFromFolder(colorID, folderID string) error {
	fi, err := s.LoadFolders()
	if err != nil {
		return err
	}
	if fi.Get(folderID) == nil {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, folderID)
	}
	fi.RemoveColor(colorID, folderID)
	return s.SaveFolder(fi, folderID)
}

// MoveColor moves a color between two folders
func (s *Storage) MoveColor(colorID, fromID, toID string) error {
	fi, err := s.LoadFolders()
	if err != nil {
		return err
	}
	if fi.Get(fromID) == nil {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, fromID)
	}
	if err := fi.MoveColor(colorID, fromID, toID); err != nil {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, toID)
	}
	if err := s.SaveFolder(fi, fromID); err != nil {
		return err
	}
	return s.SaveFolder(fi, toID)
}

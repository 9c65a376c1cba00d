package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
	"github.com/lunit-heesungyang/palette-manager/internal/model"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	return New(t.TempDir())
}

func TestLoadPalette_SeedsDefaults(t *testing.T) {
	s := newTestStorage(t)

	p, err := s.LoadPalette()
	require.NoError(t, err)

	require.Len(t, p.Colors, 5)
	assert.Len(t, p.Categories, 3)
	blue := p.Get("zzh-blue")
	require.NotNil(t, blue)
	assert.Equal(t, "#1F91DC", blue.Hex)
	assert.Equal(t, colorutil.Cool, blue.Temperature)
	assert.False(t, blue.Created.IsZero())

	_, err = os.Stat(s.PalettePath())
	assert.True(t, os.IsNotExist(err), "loading does not write")
}

func TestSavePalette_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	p := model.NewPalette()
	c := model.NewColor("Sky", "#6cf")
	c.Tags = []string{"blue"}
	c.Favorite = true
	p.Add(c)

	require.NoError(t, s.SavePalette(p))

	loaded, err := s.LoadPalette()
	require.NoError(t, err)
	require.Len(t, loaded.Colors, 1)
	got := loaded.Colors[0]
	assert.Equal(t, "sky", got.ID)
	assert.Equal(t, "#66CCFF", got.Hex)
	assert.Equal(t, colorutil.Cool, got.Temperature)
	assert.True(t, got.Favorite)
	assert.Equal(t, []string{"blue"}, got.Tags)
}

func TestLoadPalette_NormalizesHandEditedFile(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.EnsurePaletteDir())
	content := "colors:\n  - id: warm\n    name: Warm\n    hex: '#f60'\n"
	require.NoError(t, os.WriteFile(s.PalettePath(), []byte(content), 0644))

	p, err := s.LoadPalette()
	require.NoError(t, err)
	require.Len(t, p.Colors, 1)
	assert.Equal(t, "#FF6600", p.Colors[0].Hex)
	assert.Equal(t, colorutil.Warm, p.Colors[0].Temperature)
}

func TestLoadPalette_InvalidYAML(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.EnsurePaletteDir())
	require.NoError(t, os.WriteFile(s.PalettePath(), []byte("colors: [\n"), 0644))

	_, err := s.LoadPalette()
	assert.Error(t, err)
}

func TestColorMutations(t *testing.T) {
	s := newTestStorage(t)

	c, err := s.AddColor(model.NewColor("Mint", "3eb489"))
	require.NoError(t, err)
	assert.Equal(t, "mint", c.ID)
	assert.Equal(t, "#3EB489", c.Hex)

	_, err = s.AddColor(model.NewColor("Bad", "#12"))
	assert.ErrorIs(t, err, ErrInvalidHex)

	fav, err := s.ToggleFavorite("mint")
	require.NoError(t, err)
	assert.True(t, fav)

	require.NoError(t, s.IncrementUsage("mint"))
	require.NoError(t, s.IncrementUsage("mint"))

	p, err := s.LoadPalette()
	require.NoError(t, err)
	assert.Len(t, p.Colors, 6, "defaults plus the new color")
	assert.Equal(t, 2, p.Get("mint").UsageCount)
	assert.True(t, p.Get("mint").Favorite)

	updated := *p.Get("mint")
	updated.Hex = "#000"
	require.NoError(t, s.UpdateColor(&updated))
	p, err = s.LoadPalette()
	require.NoError(t, err)
	assert.Equal(t, "#000000", p.Get("mint").Hex)
	assert.Equal(t, colorutil.Neutral, p.Get("mint").Temperature)

	assert.ErrorIs(t, s.UpdateColor(&model.Color{ID: "nope", Hex: "#000000"}), ErrColorNotFound)
	assert.ErrorIs(t, s.IncrementUsage("nope"), ErrColorNotFound)
	_, err = s.ToggleFavorite("nope")
	assert.ErrorIs(t, err, ErrColorNotFound)
}

func TestFolders_PersistMembership(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.LoadPalette()
	require.NoError(t, err)

	blues, err := s.CreateFolder("Blues", "Ocean and sky", "🌊")
	require.NoError(t, err)
	dark, err := s.CreateFolder("Dark", "", "")
	require.NoError(t, err)

	require.NoError(t, s.AddToFolder("zzh-blue", blues.ID))
	require.NoError(t, s.AddToFolder("lafcadian-blue", blues.ID))
	require.NoError(t, s.AddToFolder("final-black", dark.ID))
	assert.ErrorIs(t, s.AddToFolder("nope", blues.ID), ErrColorNotFound)
	assert.ErrorIs(t, s.AddToFolder("zzh-blue", "nope"), ErrFolderNotFound)

	data, err := os.ReadFile(s.FolderPath(blues.ID))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Blues")
	assert.Contains(t, string(data), "Ocean and sky")

	fi, err := s.LoadFolders()
	require.NoError(t, err)
	require.Len(t, fi.Folders, 2)
	assert.Equal(t, "blues", fi.Folders[0].ID, "ordered by order field")
	assert.Equal(t, "🌊", fi.Folders[0].Icon)
	assert.Equal(t, "Ocean and sky", fi.Folders[0].Description)
	assert.Equal(t, []string{"zzh-blue", "lafcadian-blue"}, fi.ColorIDs(blues.ID))

	require.NoError(t, s.MoveColor("lafcadian-blue", blues.ID, dark.ID))
	require.NoError(t, s.RemoveFromFolder("zzh-blue", blues.ID))
	require.NoError(t, s.UpdateFolder(dark.ID, "Night", "after dark"))

	fi, err = s.LoadFolders()
	require.NoError(t, err)
	assert.Empty(t, fi.ColorIDs(blues.ID))
	assert.Equal(t, []string{"final-black", "lafcadian-blue"}, fi.ColorIDs(dark.ID))
	assert.Equal(t, "Night", fi.Get(dark.ID).Name)
}

func TestDeleteColor_RemovesFolderRelations(t *testing.T) {
	s := newTestStorage(t)
	f, err := s.CreateFolder("Picks", "", "")
	require.NoError(t, err)
	require.NoError(t, s.AddToFolder("zzh-blue", f.ID))
	require.NoError(t, s.AddToFolder("box-yellow", f.ID))

	require.NoError(t, s.DeleteColor("zzh-blue"))
	assert.ErrorIs(t, s.DeleteColor("zzh-blue"), ErrColorNotFound)

	fi, err := s.LoadFolders()
	require.NoError(t, err)
	assert.Equal(t, []string{"box-yellow"}, fi.ColorIDs(f.ID))
}

func TestDeleteFolder(t *testing.T) {
	s := newTestStorage(t)
	f, err := s.CreateFolder("Temp", "", "")
	require.NoError(t, err)

	require.NoError(t, s.DeleteFolder(f.ID))
	assert.ErrorIs(t, s.DeleteFolder(f.ID), ErrFolderNotFound)

	fi, err := s.LoadFolders()
	require.NoError(t, err)
	assert.Empty(t, fi.Folders)

	p, err := s.LoadPalette()
	require.NoError(t, err)
	assert.Len(t, p.Colors, 5)
}

func TestLoadFolders_IgnoresOtherFiles(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.EnsurePaletteDir())
	require.NoError(t, os.WriteFile(filepath.Join(s.FoldersDir(), "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(s.FolderPath("bare"), []byte("just notes"), 0644))

	fi, err := s.LoadFolders()
	require.NoError(t, err)
	require.Len(t, fi.Folders, 1)
	assert.Equal(t, "bare", fi.Folders[0].Name)
	assert.Equal(t, "just notes", fi.Folders[0].Description)
}

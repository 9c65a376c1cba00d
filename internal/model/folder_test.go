package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderIndex_CreateAndFind(t *testing.T) {
	fi := NewFolderIndex()
	a := fi.Create("Ocean Blues", "cool stuff", "🌊")
	b := fi.Create("ocean blues", "", "")

	assert.Equal(t, "ocean-blues", a.ID)
	assert.Equal(t, "ocean-blues-2", b.ID)
	assert.Equal(t, 1, a.Order)
	assert.Equal(t, 2, b.Order)
	assert.Same(t, a, fi.Find("OCEAN BLUES"))
	assert.Same(t, b, fi.Find("ocean-blues-2"))
	assert.Nil(t, fi.Find("missing"))
}

func TestFolderIndex_Membership(t *testing.T) {
	p := samplePalette()
	fi := NewFolderIndex()
	blues := fi.Create("Blues", "", "")
	dark := fi.Create("Dark", "", "")

	require.NoError(t, fi.AddColor("zzh-blue", blues.ID))
	require.NoError(t, fi.AddColor("zzh-blue", blues.ID))
	require.NoError(t, fi.AddColorToFolders("lafcadian-blue", []string{blues.ID, dark.ID}))
	assert.Error(t, fi.AddColor("zzh-blue", "nope"))

	assert.Len(t, fi.Relations, 3, "duplicate add is ignored")
	assert.Equal(t, []string{"zzh-blue", "lafcadian-blue"}, fi.ColorIDs(blues.ID))
	assert.Len(t, fi.FoldersFor("lafcadian-blue"), 2)

	require.NoError(t, fi.MoveColor("lafcadian-blue", dark.ID, blues.ID))
	assert.Empty(t, fi.ColorIDs(dark.ID))
	assert.Len(t, fi.FoldersFor("lafcadian-blue"), 1)

	require.NoError(t, fi.MoveColor("zzh-blue", blues.ID, dark.ID))
	assert.Equal(t, []string{"lafcadian-blue"}, fi.ColorIDs(blues.ID))
	assert.Equal(t, []string{"zzh-blue"}, fi.ColorIDs(dark.ID))

	var unassigned []string
	for _, c := range fi.Unassigned(p) {
		unassigned = append(unassigned, c.ID)
	}
	assert.Equal(t, []string{"box-yellow", "final-black"}, unassigned)

	colors := fi.ColorsIn(blues.ID, p)
	require.Len(t, colors, 1)
	assert.Equal(t, "#66CCFF", colors[0].Hex)
}

func TestFolderIndex_DeleteDropsRelations(t *testing.T) {
	fi := NewFolderIndex()
	f := fi.Create("Temp", "", "")
	keep := fi.Create("Keep", "", "")
	require.NoError(t, fi.AddColor("a", f.ID))
	require.NoError(t, fi.AddColor("a", keep.ID))

	assert.True(t, fi.Delete(f.ID))
	assert.False(t, fi.Delete(f.ID))
	assert.Len(t, fi.Relations, 1)
	assert.Equal(t, keep.ID, fi.Relations[0].FolderID)

	fi.RemoveColorEverywhere("a")
	assert.Empty(t, fi.Relations)
}

func TestFolderIndex_SearchAndSort(t *testing.T) {
	fi := NewFolderIndex()
	a := fi.Create("Brand", "primary identity colors", "")
	b := fi.Create("Warm Picks", "", "")
	require.NoError(t, fi.AddColor("x", b.ID))
	require.NoError(t, fi.AddColor("y", b.ID))

	assert.Equal(t, []*Folder{a}, fi.Search("IDENTITY"))
	assert.Len(t, fi.Search(""), 2)
	assert.Equal(t, []*Folder{a, b}, fi.Sorted(false))
	assert.Equal(t, []*Folder{b, a}, fi.Sorted(true))

	require.NoError(t, fi.Rename(a.ID, "Identity", "renamed"))
	assert.Equal(t, "Identity", fi.Get(a.ID).Name)
	assert.Error(t, fi.Rename("missing", "x", ""))
}

func TestFolderIndex_UniqueFolderName(t *testing.T) {
	fi := NewFolderIndex()
	fi.Create("Shared", "", "")
	fi.Create("Shared (1)", "", "")

	assert.True(t, fi.NameConflict("shared"))
	assert.False(t, fi.NameConflict("Other"))
	assert.Equal(t, "Shared (2)", fi.UniqueFolderName("Shared"))
	assert.Equal(t, "Other", fi.UniqueFolderName("Other"))
}

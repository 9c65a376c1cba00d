package share

import (
	"fmt"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
	"github.com/lunit-heesungyang/palette-manager/internal/logging"
	"github.com/lunit-heesungyang/palette-manager/internal/model"
	"github.com/lunit-heesungyang/palette-manager/internal/storage"
)

// ImportResult describes what Import changed
type ImportResult struct {
	Folder  *model.Folder
	Added   int  // colors new to the palette
	Linked  int  // colors already present, matched by hex
	Skipped int  // colors dropped because their hex is not a color
	Renamed bool // folder name was taken and got a suffix
}

// Import creates a local folder from a shared payload. Colors already in the
// palette (same hex) are reused rather than duplicated.
func Import(st *storage.Storage, sf *SharedFolder) (*ImportResult, error) {
	if err := sf.Validate(); err != nil {
		return nil, err
	}

	p, err := st.LoadPalette()
	if err != nil {
		return nil, err
	}
	fi, err := st.LoadFolders()
	if err != nil {
		return nil, err
	}

	name := fi.UniqueFolderName(sf.Folder.Name)
	folder := fi.Create(name, sf.Folder.Description, sf.Folder.Icon)
	folder.IconColor = sf.Folder.IconColor
	result := &ImportResult{Folder: folder, Renamed: name != sf.Folder.Name}

	for _, c := range sf.Colors {
		if c == nil || !colorutil.IsValidHex(c.Hex) {
			result.Skipped++
			continue
		}
		if existing := p.FindByHex(c.Hex); existing != nil {
			result.Linked++
			if err := fi.AddColor(existing.ID, folder.ID); err != nil {
				return nil, err
			}
			continue
		}

		cp := *c
		cp.Favorite = false
		cp.Derive()
		p.Add(&cp)
		result.Added++
		if err := fi.AddColor(cp.ID, folder.ID); err != nil {
			return nil, err
		}
	}

	if result.Added > 0 {
		if err := st.SavePalette(p); err != nil {
			return nil, fmt.Errorf("saving imported colors: %w", err)
		}
	}
	if err := st.SaveFolder(fi, folder.ID); err != nil {
		return nil, err
	}

	if result.Skipped > 0 {
		logging.Warn("share", "skipped %d shared colors with an invalid hex", result.Skipped)
	}
	logging.Info("share", "imported folder %q: %d new, %d existing colors", folder.Name, result.Added, result.Linked)
	return result, nil
}

package main

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
	"github.com/lunit-heesungyang/palette-manager/internal/model"
	"github.com/lunit-heesungyang/palette-manager/internal/ui"
)

const nameColumnWidth = 24

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List palette colors",
		Example: `  pal list --temp warm --sort usage --desc
  pal list --folder brand --format rgb`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := openProject(cmd)
			if err != nil {
				return err
			}
			p, err := st.LoadPalette()
			if err != nil {
				return err
			}

			filter := model.ColorFilter{}
			filter.Keyword, _ = cmd.Flags().GetString("filter")
			filter.FavoritesOnly, _ = cmd.Flags().GetBool("favorites")
			filter.Categories, _ = cmd.Flags().GetStringSlice("category")
			filter.Tags, _ = cmd.Flags().GetStringSlice("tag")

			temps, _ := cmd.Flags().GetStringSlice("temp")
			for _, s := range temps {
				t, ok := colorutil.ParseTemperature(s)
				if !ok {
					return fmt.Errorf("unknown temperature %q (want warm, cool or neutral)", s)
				}
				filter.Temperatures = append(filter.Temperatures, t)
			}

			if folderName, _ := cmd.Flags().GetString("folder"); folderName != "" {
				fi, err := st.LoadFolders()
				if err != nil {
					return err
				}
				f := fi.Find(folderName)
				if f == nil {
					return fmt.Errorf("folder %q not found", folderName)
				}
				filter.IDs = append([]string{}, fi.ColorIDs(f.ID)...)
			}

			sortBy, _ := cmd.Flags().GetString("sort")
			desc, _ := cmd.Flags().GetBool("desc")
			order, err := parseSort(sortBy, desc)
			if err != nil {
				return err
			}

			format := cfg.DefaultFormat
			if s, _ := cmd.Flags().GetString("format"); s != "" {
				f, ok := colorutil.ParseFormat(s)
				if !ok {
					return fmt.Errorf("unknown format %q", s)
				}
				format = f
			}

			colors := p.Filter(filter, order)
			printColors(cmd.OutOrStdout(), colors, format, cfg.Language)
			if len(colors) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No colors match.")
			}
			return nil
		},
	}
	cmd.Flags().StringP("filter", "f", "", "Keyword matched against names, descriptions, hex and tags")
	cmd.Flags().StringSlice("temp", nil, "Temperatures to include (warm, cool, neutral)")
	cmd.Flags().StringSlice("category", nil, "Category IDs to include")
	cmd.Flags().StringSlice("tag", nil, "Tags to include")
	cmd.Flags().Bool("favorites", false, "Only favorite colors")
	cmd.Flags().String("folder", "", "Only colors in this folder (ID or name)")
	cmd.Flags().String("sort", "name", "Sort by name, name_zh, created, updated or usage")
	cmd.Flags().Bool("desc", false, "Sort descending")
	cmd.Flags().String("format", "", "Value format (default: default_format from config)")
	return cmd
}

func parseSort(by string, desc bool) (model.ColorSort, error) {
	switch f := model.SortField(by); f {
	case model.SortByName, model.SortByNameZh, model.SortByCreated, model.SortByUpdated, model.SortByUsage:
		return model.ColorSort{By: f, Descending: desc}, nil
	}
	return model.ColorSort{}, fmt.Errorf("unknown sort field %q", by)
}

// printColors writes one aligned row per color. Names are padded by
// display width so CJK names line up.
func printColors(w io.Writer, colors []*model.Color, format colorutil.Format, lang string) {
	for _, c := range colors {
		name := runewidth.Truncate(c.DisplayName(lang), nameColumnWidth, "…")
		fmt.Fprintf(w, "%s %s %s %s  %-20s %s\n",
			ui.Chip(c.Hex),
			ui.FavoriteIcon(c.Favorite),
			ui.TemperatureIcon(c.Temperature),
			runewidth.FillRight(name, nameColumnWidth),
			c.ID,
			c.Format(format),
		)
	}
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <color>",
		Short: "Add a color to the palette",
		Long: `Add a named color. The value may be in any detectable notation
and is stored as #RRGGBB.`,
		Example: `  pal add "Sky" "#87CEEB" --category brand --tag blue --tag light`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openProject(cmd)
			if err != nil {
				return err
			}
			hex, err := parseColor(args[1], "auto")
			if err != nil {
				return err
			}

			c := model.NewColor(args[0], hex)
			c.NameZh, _ = cmd.Flags().GetString("name-zh")
			c.Description, _ = cmd.Flags().GetString("description")
			c.Category, _ = cmd.Flags().GetString("category")
			c.Tags, _ = cmd.Flags().GetStringSlice("tag")

			added, err := st.AddColor(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s, %s)\n", added.ID, added.Hex, added.Temperature)
			return nil
		},
	}
	cmd.Flags().String("name-zh", "", "Chinese name")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().String("category", "", "Category ID")
	cmd.Flags().StringSlice("tag", nil, "Tag (repeatable)")
	return cmd
}

func newFavCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fav <color-id>",
		Short: "Toggle a color's favorite mark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openProject(cmd)
			if err != nil {
				return err
			}
			fav, err := st.ToggleFavorite(args[0])
			if err != nil {
				return err
			}
			state := "removed from"
			if fav {
				state = "added to"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s favorites\n", args[0], state)
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/lunit-heesungyang/palette-manager/internal/model"
	"github.com/lunit-heesungyang/palette-manager/internal/storage"
	"github.com/lunit-heesungyang/palette-manager/internal/ui"
)

func newFolderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage color folders",
		Long: `Folders group palette colors. Each folder is a markdown file in
.palette/folders/ whose body is the folder description.`,
	}
	cmd.AddCommand(
		newFolderCreateCmd(),
		newFolderListCmd(),
		newFolderAddCmd(),
		newFolderRemoveCmd(),
		newFolderMoveCmd(),
		newFolderDeleteCmd(),
	)
	return cmd
}

// resolveFolder finds a folder by ID or name
func resolveFolder(st *storage.Storage, idOrName string) (*model.FolderIndex, *model.Folder, error) {
	fi, err := st.LoadFolders()
	if err != nil {
		return nil, nil, err
	}
	f := fi.Find(idOrName)
	if f == nil {
		return nil, nil, fmt.Errorf("%w: %s", storage.ErrFolderNotFound, idOrName)
	}
	return fi, f, nil
}

func newFolderCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openProject(cmd)
			if err != nil {
				return err
			}
			description, _ := cmd.Flags().GetString("description")
			icon, _ := cmd.Flags().GetString("icon")
			if icon == "" {
				icon = ui.IconFolder
			}

			f, err := st.CreateFolder(args[0], description, icon)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created folder %s (%s)\n", f.Name, f.ID)
			return nil
		},
	}
	cmd.Flags().StringP("description", "d", "", "Folder description")
	cmd.Flags().String("icon", "", "Folder icon")
	return cmd
}

func newFolderListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [folder]",
		Short: "List folders, or the colors of one folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := openProject(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				fi, f, err := resolveFolder(st, args[0])
				if err != nil {
					return err
				}
				p, err := st.LoadPalette()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s\n", f.Icon, f.Name)
				if f.Description != "" {
					fmt.Fprintln(out, f.Description)
				}
				printColors(out, fi.ColorsIn(f.ID, p), cfg.DefaultFormat, cfg.Language)
				return nil
			}

			fi, err := st.LoadFolders()
			if err != nil {
				return err
			}
			byCount, _ := cmd.Flags().GetBool("by-count")
			folders := fi.Sorted(byCount)
			if len(folders) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No folders yet. Create one with 'pal folder create <name>'.")
				return nil
			}
			for _, f := range folders {
				fmt.Fprintf(out, "%s %s %-20s %d colors\n",
					f.Icon,
					runewidth.FillRight(runewidth.Truncate(f.Name, nameColumnWidth, "…"), nameColumnWidth),
					f.ID,
					len(fi.ColorIDs(f.ID)),
				)
			}
			return nil
		},
	}
	cmd.Flags().Bool("by-count", false, "Sort by number of colors")
	return cmd
}

func newFolderAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <folder> <color-id>...",
		Short: "Add colors to a folder",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openProject(cmd)
			if err != nil {
				return err
			}
			_, f, err := resolveFolder(st, args[0])
			if err != nil {
				return err
			}
			for _, colorID := range args[1:] {
				if err := st.AddToFolder(colorID, f.ID); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d color(s) to %s\n", len(args)-1, f.Name)
			return nil
		},
	}
}

func newFolderRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <folder> <color-id>",
		Short: "Remove a color from a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openProject(cmd)
			if err != nil {
				return err
			}
			_, f, err := resolveFolder(st, args[0])
			if err != nil {
				return err
			}
			if err := st.RemoveFromFolder(args[1], f.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", args[1], f.Name)
			return nil
		},
	}
}

func newFolderMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <color-id> <from> <to>",
		Short: "Move a color between folders",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openProject(cmd)
			if err != nil {
				return err
			}
			fi, from, err := resolveFolder(st, args[1])
			if err != nil {
				return err
			}
			to := fi.Find(args[2])
			if to == nil {
				return fmt.Errorf("%w: %s", storage.ErrFolderNotFound, args[2])
			}
			if err := st.MoveColor(args[0], from.ID, to.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s from %s to %s\n", args[0], from.Name, to.Name)
			return nil
		},
	}
}

func newFolderDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <folder>",
		Short: "Delete a folder (its colors stay in the palette)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openProject(cmd)
			if err != nil {
				return err
			}
			_, f, err := resolveFolder(st, args[0])
			if err != nil {
				return err
			}
			if err := st.DeleteFolder(f.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted folder %s\n", f.Name)
			return nil
		},
	}
}

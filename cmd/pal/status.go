package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
	"github.com/lunit-heesungyang/palette-manager/internal/config"
	"github.com/lunit-heesungyang/palette-manager/internal/ui"
)

const statusListSize = 5

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Summarize the palette and its git state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := openProject(cmd)
			if err != nil {
				return err
			}
			p, err := st.LoadPalette()
			if err != nil {
				return err
			}
			fi, err := st.LoadFolders()
			if err != nil {
				return err
			}

			if stage, _ := cmd.Flags().GetBool("stage"); stage {
				st.StagePaletteFiles()
			}

			stats := p.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Colors:    %d (%d favorites)\n", stats.TotalColors, stats.FavoriteCount)
			fmt.Fprintf(out, "Folders:   %d (%d colors unassigned)\n", len(fi.Folders), len(fi.Unassigned(p)))

			for _, t := range colorutil.Temperatures() {
				label := lipgloss.NewStyle().Foreground(ui.TemperatureColor(t)).Render(fmt.Sprintf("%-8s", t))
				fmt.Fprintf(out, "  %s %s %d\n", ui.TemperatureIcon(t), label, stats.TemperatureCounts[t])
			}

			categories := make([]string, 0, len(stats.CategoryCounts))
			for id := range stats.CategoryCounts {
				categories = append(categories, id)
			}
			sort.Strings(categories)
			for _, id := range categories {
				icon := ""
				if cat := p.GetCategory(id); cat != nil {
					icon = cat.Icon
				}
				fmt.Fprintf(out, "  %s %-10s %d\n", ui.CategoryIcon(id, icon), id, stats.CategoryCounts[id])
			}

			if len(stats.PopularColors) > 0 && stats.PopularColors[0].UsageCount > 0 {
				fmt.Fprintln(out, "Most used:")
				for _, c := range stats.PopularColors[:min(len(stats.PopularColors), statusListSize)] {
					if c.UsageCount == 0 {
						break
					}
					fmt.Fprintf(out, "  %s %s %d\n", ui.Chip(c.Hex), c.DisplayName(cfg.Language), c.UsageCount)
				}
			}

			switch {
			case !st.IsGitRepo():
				fmt.Fprintln(out, "Git:       not a repository")
			case st.HasStagedChanges():
				fmt.Fprintln(out, "Git:       palette changes staged")
			default:
				fmt.Fprintln(out, "Git:       clean")
			}

			if dir, err := config.GetUserConfigDir(); err == nil {
				fmt.Fprintf(out, "Config:    %s, %s\n", dir, st.PaletteDir)
			}
			return nil
		},
	}
	cmd.Flags().Bool("stage", false, "git add the palette and every folder file first")
	return cmd
}

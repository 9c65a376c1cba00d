package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lunit-heesungyang/palette-manager/internal/config"
	"github.com/lunit-heesungyang/palette-manager/internal/logging"
	"github.com/lunit-heesungyang/palette-manager/internal/storage"
	"github.com/lunit-heesungyang/palette-manager/internal/tui"
)

// Set at build time with -ldflags "-X main.version=..."
var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pal",
		Short: "Local-first color palette manager CLI/TUI",
		Long: `Palette is a local-first color palette manager.

It stores named colors in .palette/palette.yaml and folders as markdown
files with YAML frontmatter in .palette/folders/, so palettes live and
version alongside your code.

Features:
  - Browse, search and copy colors in HEX, RGB, HSL, HSV or CSS notation
  - Convert between color formats and generate similar colors
  - Group colors in folders and share a folder as a compact URL
  - Import/export JSON, CSV, CSS, SCSS and ASE
  - Git integration for automatic staging`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logging.LevelWarn
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = logging.LevelDebug
			}
			logging.Init(level, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := openProject(cmd)
			if err != nil {
				return err
			}

			// The TUI owns the terminal, so logs go to a file
			level := logging.LevelInfo
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = logging.LevelDebug
			}
			if err := logging.InitFile(level, st.LogPath()); err != nil {
				return err
			}
			defer logging.Close()

			model := tui.New(st.ProjectRoot, cfg, version)
			p := tea.NewProgram(model, tea.WithAltScreen())

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("path", "p", "", "Project root path (default: current directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.Version = version

	rootCmd.AddCommand(
		newConvertCmd(),
		newInfoCmd(),
		newSimilarCmd(),
		newListCmd(),
		newAddCmd(),
		newFavCmd(),
		newFolderCmd(),
		newExportCmd(),
		newImportCmd(),
		newShareCmd(),
		newStatusCmd(),
	)
	return rootCmd
}

// openProject resolves the project root and loads its layered config
func openProject(cmd *cobra.Command) (*storage.Storage, config.Config, error) {
	path, _ := cmd.Flags().GetString("path")
	st := storage.New(path)

	cfg, err := config.Load(st.ProjectRoot)
	if err != nil {
		return nil, config.Config{}, err
	}
	st.AutoStage = cfg.AutoStage
	return st, cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

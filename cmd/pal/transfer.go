package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lunit-heesungyang/palette-manager/internal/storage"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the palette",
		Example: `  pal export --format css -o palette.css
  pal export --format json > palette.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openProject(cmd)
			if err != nil {
				return err
			}
			formatName, _ := cmd.Flags().GetString("format")
			format, err := storage.ParseExportFormat(formatName)
			if err != nil {
				return err
			}

			p, err := st.LoadPalette()
			if err != nil {
				return err
			}
			data, err := storage.Export(p, format)
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d colors to %s\n", len(p.Colors), output)
			return nil
		},
	}
	cmd.Flags().String("format", string(storage.ExportJSON), "json, csv, css, scss or ase")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import colors from a JSON or CSV file",
		Long: `Import colors from a file. Files ending in .csv are read as CSV,
anything else as JSON (markdown code fences are stripped).
Colors whose hex is already in the palette are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openProject(cmd)
			if err != nil {
				return err
			}
			colors, categories, err := storage.ImportFile(args[0])
			if err != nil {
				return err
			}
			added, err := st.MergeImport(colors, categories)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d colors (%d already present)\n",
				added, len(colors), len(colors)-added)
			return nil
		},
	}
}

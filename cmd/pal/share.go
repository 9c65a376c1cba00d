package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/lunit-heesungyang/palette-manager/internal/share"
)

// For mocking in tests
var clipboardWrite = clipboard.WriteAll

func newShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share <folder>",
		Short: "Print a share link for a folder",
		Long: `Encode a folder and its colors into a compact URL. The link carries
the data itself, so anyone can open it with 'pal share open'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := openProject(cmd)
			if err != nil {
				return err
			}
			fi, f, err := resolveFolder(st, args[0])
			if err != nil {
				return err
			}
			p, err := st.LoadPalette()
			if err != nil {
				return err
			}

			opts := share.DefaultOptions()
			if noDesc, _ := cmd.Flags().GetBool("no-descriptions"); noDesc {
				opts.IncludeDescriptions = false
			}
			if noTags, _ := cmd.Flags().GetBool("no-tags"); noTags {
				opts.IncludeTags = false
			}
			if noUsage, _ := cmd.Flags().GetBool("no-usage"); noUsage {
				opts.IncludeUsage = false
			}

			sf := share.NewSharedFolder(f, fi.ColorsIn(f.ID, p), opts, version)
			link, err := share.NewCodec(cfg.ShareBaseURL, cfg.ShareMaxURLLength).URL(sf)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)

			if copyLink, _ := cmd.Flags().GetBool("copy"); copyLink {
				if err := clipboardWrite(link); err != nil {
					return fmt.Errorf("copying link: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Link copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().Bool("no-descriptions", false, "Leave color descriptions out of the link")
	cmd.Flags().Bool("no-tags", false, "Leave tags out of the link")
	cmd.Flags().Bool("no-usage", false, "Leave usage counts out of the link")
	cmd.Flags().BoolP("copy", "c", false, "Also copy the link to the clipboard")

	cmd.AddCommand(newShareOpenCmd())
	return cmd
}

func newShareOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <url-or-token>",
		Short: "Import a shared folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openProject(cmd)
			if err != nil {
				return err
			}
			sf, err := share.FromURL(args[0])
			if err != nil {
				return err
			}

			maxAge, _ := cmd.Flags().GetFloat64("max-age")
			if sf.IsExpired(maxAge) {
				return fmt.Errorf("share link expired (older than %g hours)", maxAge)
			}

			info := sf.Info()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d colors, shared %s (%s)\n",
				info.FolderName, info.ColorCount, info.SharedDate, info.DataSize)

			if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
				return nil
			}
			res, err := share.Import(st, sf)
			if err != nil {
				return err
			}
			if res.Renamed {
				fmt.Fprintf(out, "Folder name taken, imported as %q\n", res.Folder.Name)
			}
			fmt.Fprintf(out, "Imported folder %s: %d new colors, %d already in palette\n",
				res.Folder.ID, res.Added, res.Linked)
			if res.Skipped > 0 {
				fmt.Fprintf(out, "Skipped %d colors with an invalid hex\n", res.Skipped)
			}
			return nil
		},
	}
	cmd.Flags().Float64("max-age", 0, "Reject links older than this many hours (0 = never)")
	cmd.Flags().Bool("dry-run", false, "Only show what the link contains")
	return cmd
}

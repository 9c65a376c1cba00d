package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
	"github.com/lunit-heesungyang/palette-manager/internal/ui"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a color between formats",
		Long: `Convert a color value to another notation.

The source format is detected from the value unless --from is given.
Use --to all to print every format.`,
		Example: `  pal convert "#1F91DC" --to rgb
  pal convert "hsl(204, 75%, 49%)" --to all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			hex, err := parseColor(args[0], from)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if to == "all" {
				for _, f := range colorutil.Formats() {
					fmt.Fprintf(out, "%-5s %s\n", f, colorutil.FormatColor(hex, f))
				}
				return nil
			}
			target, ok := colorutil.ParseFormat(to)
			if !ok {
				return fmt.Errorf("unknown format %q", to)
			}
			fmt.Fprintln(out, colorutil.FormatColor(hex, target))
			return nil
		},
	}
	cmd.Flags().String("from", "auto", "Source format (auto, hex, rgb, rgba, hsl, hsla, hsv)")
	cmd.Flags().String("to", "hex", "Target format or 'all'")
	return cmd
}

// parseColor resolves value to #RRGGBB, detecting the format when from is auto
func parseColor(value, from string) (string, error) {
	value = strings.TrimSpace(value)

	var src colorutil.Format
	if from == "" || from == "auto" {
		f, ok := colorutil.DetectFormat(value)
		if !ok {
			return "", fmt.Errorf("invalid color: %q", value)
		}
		src = f
	} else {
		f, ok := colorutil.ParseFormat(from)
		if !ok {
			return "", fmt.Errorf("unknown format %q", from)
		}
		src = f
	}

	hex, ok := colorutil.ConvertToHex(value, src)
	if !ok {
		return "", fmt.Errorf("invalid color: %q is not valid %s", value, src)
	}
	return hex, nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <color>",
		Short: "Show every notation and the classification of a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColor(args[0], "auto")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Swatch(hex, hex, 24))
			for _, f := range colorutil.Formats() {
				fmt.Fprintf(out, "%-12s %s\n", f, colorutil.FormatColor(hex, f))
			}

			temp := colorutil.ColorTemperature(hex)
			fmt.Fprintf(out, "%-12s %s %s\n", "temperature", ui.TemperatureIcon(temp), temp)
			fmt.Fprintf(out, "%-12s %t\n", "dark", colorutil.IsDarkColor(hex))
			fmt.Fprintf(out, "%-12s %s\n", "contrast", colorutil.ContrastColor(hex))
			return nil
		},
	}
}

func newSimilarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similar <color>",
		Short: "Generate colors near a base color",
		Long: `Generate colors by stepping the hue around a base color and
jittering saturation and lightness. Pass --seed for repeatable output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColor(args[0], "auto")
			if err != nil {
				return err
			}

			count, _ := cmd.Flags().GetInt("count")
			if count > colorutil.MaxSimilarCount {
				return fmt.Errorf("count must be at most %d", colorutil.MaxSimilarCount)
			}
			if count <= 0 {
				_, cfg, err := openProject(cmd)
				if err != nil {
					return err
				}
				count = cfg.SimilarCount
			}

			var colors []string
			if cmd.Flags().Changed("seed") {
				seed, _ := cmd.Flags().GetUint64("seed")
				colors = colorutil.SimilarColorsWith(rand.New(rand.NewPCG(seed, seed)), hex, count)
			} else {
				colors = colorutil.SimilarColors(hex, count)
			}

			out := cmd.OutOrStdout()
			for _, c := range colors {
				fmt.Fprintf(out, "%s %s\n", ui.Chip(c), c)
			}
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 0, "Number of colors (default: similar_count from config)")
	cmd.Flags().Uint64("seed", 0, "Seed for reproducible jitter")
	return cmd
}

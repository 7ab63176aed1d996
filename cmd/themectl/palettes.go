package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YoussefAz2/elenashop-sub001/pkg/palette"
)

type palettesOptions struct {
	jsonOutput bool
}

func newPalettesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &palettesOptions{}

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List the available palettes and typography presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := rootFlags.catalog()
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return rootFlags.write(cmd, map[string]interface{}{
					"palettes":   catalog.Palettes(),
					"typography": catalog.TypographyPresets(),
				})
			}
			return renderPalettes(cmd.OutOrStdout(), catalog)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderPalettes(out io.Writer, catalog *palette.Catalog) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOLORS")
	for _, p := range catalog.Palettes() {
		c := p.Colors
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, strings.Join([]string{
			swatch(c.Background), swatch(c.Text), swatch(c.Primary),
			swatch(c.Secondary), swatch(c.Accent), swatch(c.Muted),
		}, " "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "ID\tNAME\tHEADING\tBODY")
	for _, t := range catalog.TypographyPresets() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.HeadingFont, t.BodyFont)
	}
	return w.Flush()
}

// swatch renders hex as a coloured block followed by the code. Colour
// is dropped when the output is not a terminal.
func swatch(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return hex
	}
	return color.BgRGB(r, g, b).Sprint("  ") + " " + hex
}

func parseHex(hex string) (r, g, b int, ok bool) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"github.com/YoussefAz2/elenashop-sub001/pkg/palette"
	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

type rootFlags struct {
	paletteFile string
	output      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themectl",
		Short:         "Inspect palettes and resolve storefront theme documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.paletteFile, "palettes", "", "YAML file with extra palettes and typography presets")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "Write the result to this file instead of stdout")

	cmd.AddCommand(newPalettesCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newApplyCmd(flags))

	return cmd
}

func (f *rootFlags) catalog() (*palette.Catalog, error) {
	catalog := palette.NewCatalog()
	if f.paletteFile == "" {
		return catalog, nil
	}
	if err := catalog.LoadFile(f.paletteFile); err != nil {
		return nil, err
	}
	return catalog, nil
}

// readTheme reads a theme document from path, or stdin for "-".
// Comments and trailing commas are accepted.
func readTheme(cmd *cobra.Command, path string) (theme.Config, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return theme.Parse(jsonc.ToJSON(data))
}

func (f *rootFlags) write(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if f.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(f.output, data, 0o644)
}

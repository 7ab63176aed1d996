package main

import (
	"github.com/spf13/cobra"

	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

type applyOptions struct {
	typography string
}

func newApplyCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply <palette> <file|->",
		Short: "Apply a palette (and optionally a typography preset) to a theme document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := rootFlags.catalog()
			if err != nil {
				return err
			}
			cfg, err := readTheme(cmd, args[1])
			if err != nil {
				return err
			}

			next, err := catalog.Apply(args[0], theme.Resolve(cfg))
			if err != nil {
				return err
			}
			if opts.typography != "" {
				if next, err = catalog.ApplyTypography(opts.typography, next); err != nil {
					return err
				}
			}
			return rootFlags.write(cmd, next)
		},
	}

	cmd.Flags().StringVar(&opts.typography, "typography", "", "Typography preset to apply as well")

	return cmd
}

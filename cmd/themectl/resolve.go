package main

import (
	"github.com/spf13/cobra"

	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file|->",
		Short: "Print the fully resolved form of a theme document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readTheme(cmd, args[0])
			if err != nil {
				return err
			}
			return rootFlags.write(cmd, theme.Resolve(cfg))
		},
	}
}

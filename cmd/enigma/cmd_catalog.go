package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"enigma-simulator/internal/format"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in rotors, reflectors and entry wheels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		mode, err := tableMode()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), format.Catalog(mode))

		return nil
	},
}

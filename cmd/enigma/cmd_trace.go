package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"enigma-simulator/internal/alphabet"
	"enigma-simulator/internal/config"
	"enigma-simulator/internal/format"
	"enigma-simulator/machine"
)

var traceCmd = &cobra.Command{
	Use:   "trace text...",
	Short: "Show the rotor window and stepping for every keystroke",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTrace,
}

func runTrace(cmd *cobra.Command, args []string) error {
	mode, err := tableMode()
	if err != nil {
		return err
	}

	f, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m, err := config.Build(f)
	if err != nil {
		return err
	}

	syms, err := alphabet.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}

	keys := make([]machine.Keystroke, 0, len(syms))

	for _, s := range syms {
		k, err := m.Press(s)
		if err != nil {
			return err
		}

		keys = append(keys, k)
	}

	fmt.Fprintln(cmd.OutOrStdout(), format.Trace(keys, mode))

	return nil
}

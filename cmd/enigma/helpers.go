package main

import (
	"strings"

	"github.com/spf13/cobra"

	"enigma-simulator/internal/config"
	"enigma-simulator/internal/format"
	"enigma-simulator/internal/logging"
)

func initLogging(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(rootFlags.logLevel)
	if err != nil {
		return err
	}

	logging.Init(level, rootFlags.logFormat, cmd.ErrOrStderr())

	return nil
}

// loadConfig reads --config (or the default machine) and applies the
// machine flags on top.
func loadConfig(cmd *cobra.Command) (*config.File, error) {
	f := config.Default()

	if rootFlags.config != "" {
		loaded, err := config.LoadFile(rootFlags.config)
		if err != nil {
			return nil, err
		}

		f = loaded
	}

	o := config.Overrides{
		Rotors:    splitNames(rootFlags.rotors),
		Rings:     rootFlags.rings,
		Positions: rootFlags.positions,
		Reflector: rootFlags.reflector,
	}

	if cmd.Flags().Changed("plugboard") {
		plugs := rootFlags.plugboard
		o.Plugboard = &plugs
	}

	if err := f.Apply(o); err != nil {
		return nil, err
	}

	return f, nil
}

func tableMode() (format.Mode, error) {
	return format.ParseMode(rootFlags.table)
}

func splitNames(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// enigma simulates a three-rotor (or larger) Enigma cipher machine.
//
// Usage:
//
//	enigma run      [machine flags]            interactive, one line per message
//	enigma encrypt  [machine flags] [text...]  encipher arguments or stdin
//	enigma trace    [machine flags] text       show stepping per keystroke
//	enigma batch    [machine flags] files...   encipher files concurrently
//	enigma show     [machine flags]            print the machine settings
//	enigma catalog                             list rotors and reflectors
//
// Machine flags: --config machine.yaml, --rotors "I II III", --rings AAA,
// --positions AAA, --reflector B, --plugboard "AB CD".
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	config    string
	rotors    string
	rings     string
	positions string
	reflector string
	plugboard string
	groups    int
	table     string
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "Rotor cipher machine simulator",
	Long: "enigma simulates the Wehrmacht Enigma: rotors with ring settings and\n" +
		"turnover notches, the double-stepping middle rotor, a reflector and a plugboard.",
	SilenceUsage:      true,
	PersistentPreRunE: initLogging,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&rootFlags.config, "config", "c", "", "Machine YAML file (default: I II III, UKW-B, rings and positions AAA)")
	pf.StringVar(&rootFlags.rotors, "rotors", "", `Rotor names, leftmost first (e.g. "II IV V")`)
	pf.StringVar(&rootFlags.rings, "rings", "", "Ring settings, one letter per rotor, leftmost first")
	pf.StringVar(&rootFlags.positions, "positions", "", "Window letters, one per rotor, leftmost first")
	pf.StringVar(&rootFlags.reflector, "reflector", "", "Reflector name (A, B, C) or 26-letter wiring")
	pf.StringVar(&rootFlags.plugboard, "plugboard", "", `Plugboard pairs (e.g. "AV BS CG")`)
	pf.IntVar(&rootFlags.groups, "groups", 0, "Split output into groups of this many letters (0 = no grouping)")
	pf.StringVar(&rootFlags.table, "table", "ascii", "Table format: ascii or markdown")
	pf.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.Version = version
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

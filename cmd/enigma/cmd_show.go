package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"enigma-simulator/internal/config"
	"enigma-simulator/internal/format"
)

var showFlags struct {
	yaml bool
	dump bool
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the machine settings and any configuration warnings",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	f := showCmd.Flags()
	f.BoolVar(&showFlags.yaml, "yaml", false, "Print the effective machine file as YAML")
	f.BoolVar(&showFlags.dump, "dump", false, "Dump the effective machine file with all fields")
}

func runShow(cmd *cobra.Command, _ []string) error {
	f, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	diags := config.Validate(f)
	for _, d := range diags.All() {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		return fmt.Errorf("machine has %d configuration errors", len(diags.Errors))
	}

	switch {
	case showFlags.yaml:
		data, err := config.Marshal(f)
		if err != nil {
			return err
		}

		_, err = out.Write(data)

		return err
	case showFlags.dump:
		spew.Fdump(out, f)
		return nil
	}

	mode, err := tableMode()
	if err != nil {
		return err
	}

	m, err := config.Build(f)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, format.Settings(f, m, mode))

	return nil
}

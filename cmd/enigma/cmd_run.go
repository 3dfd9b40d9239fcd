package main

import (
	"github.com/spf13/cobra"

	"enigma-simulator/internal/config"
	"enigma-simulator/internal/session"
)

var runFlags struct {
	quiet bool
	exit  string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Encipher text interactively, one line at a time",
	Long: "run reads lines from standard input and prints each enciphered line.\n" +
		"The rotors keep moving from one line to the next. Type the exit word to stop.",
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.BoolVarP(&runFlags.quiet, "quiet", "q", false, "Do not print the prompt")
	f.StringVar(&runFlags.exit, "exit", session.DefaultExit, "Line that ends the session")
}

func runRun(cmd *cobra.Command, _ []string) error {
	f, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m, err := config.Build(f)
	if err != nil {
		return err
	}

	s := session.New(m, session.Options{
		Exit:  runFlags.exit,
		Group: rootFlags.groups,
		Quiet: runFlags.quiet,
	})

	return s.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}

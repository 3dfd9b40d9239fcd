package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"enigma-simulator/internal/alphabet"
	"enigma-simulator/internal/batch"
)

var encryptCmd = &cobra.Command{
	Use:     "encrypt [text...]",
	Aliases: []string{"decrypt"},
	Short:   "Encipher (or decipher) text from the arguments or standard input",
	RunE:    runEncrypt,
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	f, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		text = string(data)
	}

	out, _, err := batch.Encipher(f, text)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), alphabet.Group(out, rootFlags.groups))

	return nil
}

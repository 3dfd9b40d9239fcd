package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"enigma-simulator/internal/batch"
)

var batchFlags struct {
	parallel int
	outDir   string
}

var batchCmd = &cobra.Command{
	Use:   "batch file...",
	Short: "Encipher several files, each from the same starting settings",
	Long: "batch enciphers every file on a machine of its own, so each file starts\n" +
		"from the configured window. Results are printed, or written to --out-dir\n" +
		"as <name>.enigma.",
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.IntVarP(&batchFlags.parallel, "parallel", "p", 0, "Worker count (default: number of CPUs)")
	f.StringVarP(&batchFlags.outDir, "out-dir", "o", "", "Directory for enciphered files (default: print)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	results, err := batch.Run(cmd.Context(), f, args, batch.Options{
		Parallel: batchFlags.parallel,
		Group:    rootFlags.groups,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\n", r.Err)

			continue
		}

		if batchFlags.outDir == "" {
			fmt.Fprintf(out, "%s: %s\n", r.Path, r.Output)
			continue
		}

		dst := filepath.Join(batchFlags.outDir, filepath.Base(r.Path)+".enigma")
		if err := os.WriteFile(dst, []byte(r.Output+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}

		fmt.Fprintf(out, "%s -> %s (%d letters)\n", r.Path, dst, r.Symbols)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}

	return nil
}

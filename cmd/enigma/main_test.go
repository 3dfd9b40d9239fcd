package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out, errOut bytes.Buffer

	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}

	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)

	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestEncryptDefaultMachine(t *testing.T) {
	out, err := execute(t, "", "encrypt", "AAAAA")
	require.NoError(t, err)
	assert.Equal(t, "BDZGO\n", out)
}

func TestEncryptReadsStdin(t *testing.T) {
	out, err := execute(t, "hello world\n", "encrypt")
	require.NoError(t, err)
	assert.Equal(t, "ILBDAAMTAZ\n", out)
}

func TestEncryptMachineFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "rings",
			args: []string{"--rings", "BBB", "AAAAA"},
			want: "EWTYX",
		},
		{
			name: "plugboard",
			args: []string{"--plugboard", "AB CD EF", "HELLOWORLD"},
			want: "IKACBBMTBF",
		},
		{
			name: "groups",
			args: []string{"--groups", "5", "HELLO", "WORLD"},
			want: "ILBDA AMTAZ",
		},
		{
			name: "historical settings",
			args: []string{
				"--rotors", "II,IV,V",
				"--rings", "BUL",
				"--positions", "BLA",
				"--plugboard", "AV BS CG DL FU HZ IN KM OW RX",
				"EDPUDNRGYSZRCXNUYTPO",
			},
			want: "AUFKLXABTEILUNGXVONX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", append([]string{"encrypt"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestDecryptIsReciprocal(t *testing.T) {
	out, err := execute(t, "", "decrypt", "--plugboard", "AB CD EF", "IKACBBMTBF")
	require.NoError(t, err)
	assert.Equal(t, "HELLOWORLD\n", out)
}

func TestEncryptRejectsInvalidCharacter(t *testing.T) {
	_, err := execute(t, "", "encrypt", "HELLO1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'1'")
}

func TestEncryptConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.yaml")
	yaml := `
rotors:
  - {name: I, ring: B, position: A}
  - {name: II, ring: B, position: A}
  - {name: III, ring: B, position: A}
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	out, err := execute(t, "", "encrypt", "--config", path, "AAAAA")
	require.NoError(t, err)
	assert.Equal(t, "EWTYX\n", out)
}

func TestEncryptUnknownRotor(t *testing.T) {
	_, err := execute(t, "", "encrypt", "--rotors", "I II IX", "AAAAA")
	require.Error(t, err)
}

func TestRunSession(t *testing.T) {
	out, err := execute(t, "AAAAA\nexit\n", "run", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "BDZGO\n\n", out)
}

func TestTrace(t *testing.T) {
	out, err := execute(t, "", "trace", "AAA")
	require.NoError(t, err)

	assert.Contains(t, out, "AAB")
	assert.Contains(t, out, "AAD")
	assert.Contains(t, out, "Ratchet")
}

func TestShowYAML(t *testing.T) {
	out, err := execute(t, "", "show", "--yaml", "--positions", "ADU")
	require.NoError(t, err)

	assert.Contains(t, out, "reflector: UKW-B")
	assert.Contains(t, out, "position: U")
}

func TestShowReportsUnknownRotor(t *testing.T) {
	out, err := execute(t, "", "show", "--rotors", "I II IIII")
	require.Error(t, err)
	assert.Contains(t, out, "unknown_rotor")
}

func TestShowTable(t *testing.T) {
	out, err := execute(t, "", "show", "--positions", "ADU")
	require.NoError(t, err)

	assert.Contains(t, out, "III")
	assert.Contains(t, out, "UKW-B")
}

func TestCatalog(t *testing.T) {
	out, err := execute(t, "", "catalog", "--table", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "EKMFLGDQVZNTOWYHXUSPAIBRCJ")
	assert.Contains(t, out, "UKW-B")
}

func TestBatchWritesFiles(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()

	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("AAAAA\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("HELLO WORLD\n"), 0o644))

	_, err := execute(t, "", "batch", "--out-dir", outDir, a, b)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(outDir, "a.txt.enigma"))
	require.NoError(t, err)
	assert.Equal(t, "BDZGO\n", string(got))

	got, err = os.ReadFile(filepath.Join(outDir, "b.txt.enigma"))
	require.NoError(t, err)
	assert.Equal(t, "ILBDAAMTAZ\n", string(got))
}

func TestBatchReportsFailures(t *testing.T) {
	_, err := execute(t, "", "batch", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 files failed")
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"II", "IV", "V"}, splitNames(" II, IV  V "))
	assert.Empty(t, splitNames(""))
}

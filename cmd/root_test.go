package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/eseries/cmd"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	rc := cmd.NewRootCommand(strings.NewReader(""), stdout, stderr)
	rc.SetArgs(args)

	err := rc.Execute()

	t.Logf("Stderr: %s", stderr.String())

	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "Available Commands:")
	require.Contains(t, out, "mp2307")
}

func TestLookupCommands(t *testing.T) {
	type TC struct {
		Name  string
		Args  []string
		Lines []string
		Mark  error
	}

	tcs := []TC{
		{
			Name: "closest",
			Args: []string{"closest", "115", "110", "100"},
			Lines: []string{
				"115\t120\t+4.348%",
				"110\t120\t+9.091%",
				"100\t100\t+0.000%",
			},
			Mark: oops.New("unexpected"),
		},
		{
			Name: "neighbors",
			Args: []string{"neighbors", "115"},
			Lines: []string{
				"115\t100\t-13.043%\t120\t+4.348%",
			},
			Mark: oops.New("unexpected"),
		},
		{
			Name: "range",
			Args: []string{"--series", "E6", "range", "800", "50000"},
			Lines: []string{
				"680", "1000", "1500", "2200", "3300", "4700", "6800",
				"10000", "15000", "22000", "33000", "47000", "68000",
			},
			Mark: oops.New("unexpected"),
		},
		{
			Name: "series",
			Args: []string{"-s", "6", "series"},
			Lines: []string{
				"E6: 1 1.5 2.2 3.3 4.7 6.8",
			},
			Mark: oops.New("unexpected"),
		},
		{
			Name: "small",
			Args: []string{"-s", "e24", "closest", "0.0046"},
			Lines: []string{
				"0.0046\t0.0047\t+2.174%",
			},
			Mark: oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			out, err := execute(t, tc.Args...)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, strings.Join(tc.Lines, "\n")+"\n", out, tc.Mark)
		})
	}
}

func TestMP2307Command(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		out, err := execute(t, "mp2307")
		require.NoError(t, err)

		lines := strings.Split(out, "\n")
		require.Equal(t, "    ----- R2 fixed at 10.0 kOhm -----", lines[0])
		require.Equal(t, "  1.0 V: R1 = 811 Ohm (820 Ohm -> 1.0 V)", lines[1])
		require.Contains(t, lines, "  5.0 V: R1 = 44054 Ohm (47000 Ohm -> 5.3 V)")
		require.Contains(t, lines, "    ----- R1 and R2 variable -----")
		require.Contains(t, lines, "  5.0: R1 = 12000 Ohm, R2 = 2700 Ohm -> 5.0 V (error = +0.7%)")
		require.Len(t, lines, 38)
		require.Equal(t, " 15.0: R1 = 15000 Ohm, R2 = 1000 Ohm -> 14.8 V (error = -1.3%)", lines[36])
		require.Equal(t, "", lines[37])
	})

	t.Run("fixed r2", func(t *testing.T) {
		out, err := execute(t, "mp2307", "4700", "--voltages", "5")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out, "    ----- R2 fixed at 4.7 kOhm -----\n"), out)
		require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5)
	})

	t.Run("table", func(t *testing.T) {
		out, err := execute(t, "mp2307", "--format", "table", "--voltages", "3.3,5")
		require.NoError(t, err)
		require.Contains(t, out, "MP2307, E12, R2 fixed at 10.0 kOhm")
		require.Contains(t, out, "MP2307, E12, R1 and R2 variable")
	})

	t.Run("errors", func(t *testing.T) {
		_, err := execute(t, "mp2307", "--format", "xml")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown format")

		_, err = execute(t, "mp2307", "ten")
		require.Error(t, err)
		require.Contains(t, err.Error(), "not a number")

		_, err = execute(t, "mp2307", "--voltages", "0.5")
		require.Error(t, err)
		require.Contains(t, err.Error(), "not positive")
	})
}

func TestLookupErrors(t *testing.T) {
	type TC struct {
		Args    []string
		Message string
	}

	tcs := []TC{
		{Args: []string{"closest", "0"}, Message: "not positive"},
		{Args: []string{"closest", "abc"}, Message: "not a number"},
		{Args: []string{"range", "100", "10"}, Message: "invalid range"},
		{Args: []string{"-s", "E7", "series"}, Message: "unknown series"},
	}

	for _, tc := range tcs {
		t.Run(strings.Join(tc.Args, " "), func(t *testing.T) {
			_, err := execute(t, tc.Args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.Message)
		})
	}
}

func TestConfig(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		t.Setenv("ESERIES_SERIES", "E6")

		out, err := execute(t, "series")
		require.NoError(t, err)
		require.Equal(t, "E6: 1 1.5 2.2 3.3 4.7 6.8\n", out)

		// The command line wins over the environment.
		out, err = execute(t, "--series", "E12", "closest", "115")
		require.NoError(t, err)
		require.Equal(t, "115\t120\t+4.348%\n", out)
	})

	t.Run("env slice", func(t *testing.T) {
		t.Setenv("ESERIES_VOLTAGES", "3.3,5")

		out, err := execute(t, "mp2307")
		require.NoError(t, err)
		require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 7)
	})

	t.Run("file", func(t *testing.T) {
		dir := t.TempDir()

		path := filepath.Join(dir, "eseries.toml")
		err := os.WriteFile(path, []byte("series = \"E24\"\nvoltages = [5.0]\n"), 0o600)
		require.NoError(t, err)

		out, err := execute(t, "--config", path, "closest", "1.17")
		require.NoError(t, err)
		require.Equal(t, "1.17\t1.2\t+2.564%\n", out)

		out, err = execute(t, "--config", path, "mp2307")
		require.NoError(t, err)
		require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5)
	})

	t.Run("invalid key", func(t *testing.T) {
		dir := t.TempDir()

		path := filepath.Join(dir, "eseries.toml")
		err := os.WriteFile(path, []byte("resistor = 10\n"), 0o600)
		require.NoError(t, err)

		_, err = execute(t, "--config", path, "series")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid option")
	})
}

package cmd

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/calebcase/eseries/eseries"
	"github.com/calebcase/eseries/logger"
)

// Error is the class of command line errors.
var Error = errs.Class("cmd")

const envPrefix = "ESERIES"

// NewRootCommand returns the eseries command with all subcommands attached.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rc := &cobra.Command{
		Use:   "eseries",
		Short: "Preferred number series (E6 to E192) lookups and divider calculations.",
		Long: `Preferred number series (E6 to E192) lookups and divider calculations.

Values are looked up across any number of decades. Every flag can also be set
with an ESERIES_<FLAG> environment variable (dashes become underscores) or in
a TOML file given with --config.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			return setAllConfig(v, cmd.Flags(), configKeys(cmd.Root()))
		},
	}

	flags := rc.PersistentFlags()
	flags.StringP("config", "c", "", "Configuration file to read from.")
	flags.StringP("series", "s", "E12", "Series to use: E6, E12, E24, E48, E96 or E192.")
	flags.BoolP("verbose", "v", false, "Enable debug logging.")

	rc.AddCommand(newClosestCommand(stdin, stdout, stderr))
	rc.AddCommand(newNeighborsCommand(stdin, stdout, stderr))
	rc.AddCommand(newRangeCommand(stdin, stdout, stderr))
	rc.AddCommand(newSeriesCommand(stdin, stdout, stderr))
	rc.AddCommand(newMP2307Command(stdin, stdout, stderr))

	rc.SetOut(stdout)
	rc.SetErr(stderr)

	return rc
}

// configKeys returns the flag names of every command in the tree. A single
// config file may carry options for several subcommands.
func configKeys(root *cobra.Command) map[string]bool {
	keys := make(map[string]bool)

	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		for _, fs := range []*pflag.FlagSet{c.PersistentFlags(), c.Flags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				keys[f.Name] = true
			})
		}

		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(root)

	return keys
}

// setAllConfig takes a FlagSet to be the definition of all configuration
// options, as well as their defaults. It then reads from the command line, the
// environment, and a config file (if specified), and applies the configuration
// in that priority order.
//
// Environment variables are capitalized versions of the flag names with dashes
// replaced by underscores, prefixed with ESERIES_. Config file keys must be in
// validTags.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet, validTags map[string]bool) error {
	err := v.BindPFlags(flags)
	if err != nil {
		return Error.Wrap(err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	c := v.GetString("config")
	if c != "" {
		v.SetConfigFile(c)
		v.SetConfigType("toml")

		err = v.ReadInConfig()
		if err != nil {
			return Error.New("error reading configuration file '%s': %v", c, err)
		}

		for _, key := range v.AllKeys() {
			if _, ok := validTags[key]; !ok {
				return Error.New("invalid option in configuration file: %v", key)
			}
		}
	}

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil {
			return
		}

		// Flags set on the command line win. Unset keys keep the flag
		// default.
		if f.Changed || !v.IsSet(f.Name) {
			return
		}

		var value string
		if strings.HasSuffix(f.Value.Type(), "Slice") {
			// GetString returns "" for list values from a config file.
			value = strings.Join(v.GetStringSlice(f.Name), ",")
		} else {
			value = v.GetString(f.Name)
		}

		err := f.Value.Set(value)
		if err != nil {
			flagErr = Error.New("invalid value %q for %s: %v", value, f.Name, err)
		}
	})

	return flagErr
}

// seriesTable returns the table selected by the --series flag.
func seriesTable(cmd *cobra.Command) (*eseries.Table, error) {
	name, err := cmd.Flags().GetString("series")
	if err != nil {
		return nil, Error.Wrap(err)
	}

	key, err := eseries.ParseKey(name)
	if err != nil {
		return nil, err
	}

	return eseries.Standard(key)
}

// newLogger returns a stderr logger honoring --verbose.
func newLogger(cmd *cobra.Command, stderr io.Writer) logger.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return logger.NewVerboseLogger(stderr)
	}

	return logger.NewStandardLogger(stderr)
}

// parseValues parses positional arguments as positive numbers.
func parseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := parseFloat(arg)
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	return values, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, Error.New("not a number: %q", s)
	}

	return v, nil
}

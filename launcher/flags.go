package launcher

import (
	"errors"
	"fmt"
	"io"

	"photoview/infrastructure/config"

	flag "github.com/spf13/pflag"
)

// Options are the parsed command-line options.
type Options struct {
	// ConfigPath is an explicit config file, empty for the default location
	ConfigPath string

	// Overrides holds only the flags that were set
	Overrides *config.Config

	// Help is set when --help was requested
	Help bool
}

// ParseFlags parses args for the named program. Unknown flags and bad
// values are errors; --help sets Options.Help and prints usage to out.
func ParseFlags(name string, out io.Writer, args []string) (*Options, error) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(out)
	flagSet.SortFlags = false

	configPath := flagSet.StringP("config", "c", "", "Path to a YAML config file")
	driver := flagSet.String("db-driver", "", "Database driver: mysql, postgres, sqlite or mongodb")
	host := flagSet.String("db-host", "", "Database host")
	port := flagSet.Int("db-port", 0, "Database port (default depends on driver)")
	user := flagSet.String("db-user", "", "Database user")
	dbName := flagSet.String("db-name", "", "Database name, or file path for sqlite")
	table := flagSet.String("db-table", "", "Photo table or collection")
	logLevel := flagSet.String("log-level", "", "Log level: debug, info, warn or error")

	flagSet.Usage = func() {
		fmt.Fprintf(out, "Usage: %s [options]\n\nOptions:\n", name)
		flagSet.PrintDefaults()
		fmt.Fprintf(out, "\nThe database password is read from %s or the config file.\n", config.EnvDBPassword)
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return &Options{Help: true}, nil
		}
		return nil, err
	}
	if flagSet.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", flagSet.Arg(0))
	}

	if flagSet.Changed("db-port") && (*port <= 0 || *port > 65535) {
		return nil, fmt.Errorf("--db-port must be 1-65535, got %d", *port)
	}

	overrides := &config.Config{}
	overrides.Database.Driver = *driver
	overrides.Database.Host = *host
	overrides.Database.Port = *port
	overrides.Database.User = *user
	overrides.Database.Database = *dbName
	overrides.Database.Table = *table
	overrides.Logging.Level = *logLevel

	return &Options{
		ConfigPath: *configPath,
		Overrides:  overrides,
	}, nil
}

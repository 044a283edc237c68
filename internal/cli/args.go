package cli

import (
	"fmt"

	"env-filter/internal/parser"
)

// Config holds parsed CLI arguments
type Config struct {
	Prefix     *string  // --prefix literal line prefix, TMPDIR when nil
	Command    string   // --command listing command path
	Args       []string // --arg repeatable arguments for the command
	Set        []string // --set repeatable NAME=VALUE added to the child environment
	Duplicates bool     // --duplicates report names matched more than once
	Malformed  bool     // --malformed report matched lines without '='
	Strict     bool     // --strict exit 1 when any issue is reported
	ConfigPath string   // --config YAML file with defaults
	Verbose    bool     // --verbose debug logging on stderr
	Help       bool     // --help show usage
}

// ParseArgs parses command line arguments into Config
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--help", "-h":
			cfg.Help = true
		case "--duplicates", "-D":
			cfg.Duplicates = true
		case "--malformed", "-M":
			cfg.Malformed = true
		case "--strict":
			cfg.Strict = true
		case "--verbose", "-v":
			cfg.Verbose = true
		case "--prefix", "-p", "--command", "-c", "--arg", "-a", "--set", "-s", "--config":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("missing value for %s", arg)
			}
			i++
			if err := cfg.setValue(arg, args[i]); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown argument: %s", arg)
		}
	}

	return cfg, nil
}

func (cfg *Config) setValue(flag, value string) error {
	switch flag {
	case "--prefix", "-p":
		cfg.Prefix = &value
	case "--command", "-c":
		if value == "" {
			return fmt.Errorf("empty value for %s", flag)
		}
		cfg.Command = value
	case "--arg", "-a":
		cfg.Args = append(cfg.Args, value)
	case "--set", "-s":
		if err := parser.ValidateAssignment(value); err != nil {
			return err
		}
		cfg.Set = append(cfg.Set, value)
	case "--config":
		cfg.ConfigPath = value
	}
	return nil
}

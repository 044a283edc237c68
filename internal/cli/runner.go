package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"cdr.dev/slog/v3"
	"cdr.dev/slog/v3/sloggers/sloghuman"
	"golang.org/x/xerrors"

	"env-filter/internal/audit"
	"env-filter/internal/config"
	"env-filter/internal/filter"
	"env-filter/internal/parser"
	"env-filter/internal/procexec"
)

// Run executes the main logic and returns the exit code
func Run(args []string, stdout, stderr io.Writer) int {
	cfg, err := ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	if cfg.Help {
		PrintUsage(stdout)
		return 0
	}

	if cfg.ConfigPath != "" {
		fileCfg, err := config.LoadFile(cfg.ConfigPath)
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 2
		}
		if err := mergeFileConfig(cfg, fileCfg); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 2
		}
	}

	ctx := context.Background()
	logger := slog.Make(sloghuman.Sink(stderr))
	if cfg.Verbose {
		logger = logger.Leveled(slog.LevelDebug)
	}

	runner := &procexec.Runner{Logger: logger.Named("exec"), Stderr: stderr}
	report, err := filter.Run(runner, buildCommand(cfg), filter.Prefix(cfg.prefix()), stdout)
	if err != nil {
		logger.Debug(ctx, "filter pass failed", slog.Error(err))
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	logger.Debug(ctx, "filtered command output",
		slog.F("prefix", cfg.prefix()),
		slog.F("lines", report.Total),
		slog.F("matched", len(report.Matched)),
		slog.F("child_exit_code", report.ExitCode),
	)

	result := audit.Scan(report.Matched, &audit.ScanOptions{
		Duplicates: cfg.Duplicates,
		Malformed:  cfg.Malformed,
		Strict:     cfg.Strict,
	})
	fmt.Fprint(stderr, FormatIssues(result))

	if result.HasRisks {
		return 1
	}
	return 0
}

func (cfg *Config) prefix() string {
	if cfg.Prefix == nil {
		return filter.DefaultPrefix
	}
	return *cfg.Prefix
}

// buildCommand returns the listing command. Without --set the child
// inherits this process environment untouched.
func buildCommand(cfg *Config) procexec.Command {
	cmd := procexec.DefaultCommand()
	if cfg.Command != "" {
		cmd.Path = cfg.Command
	}
	cmd.Args = cfg.Args
	if len(cfg.Set) > 0 {
		cmd.Env = parser.MergeEnviron(os.Environ(), cfg.Set)
	}
	return cmd
}

// mergeFileConfig fills values not given on the command line from the
// config file. Flags always win.
func mergeFileConfig(cfg *Config, fileCfg *config.FileConfig) error {
	for _, s := range fileCfg.Set {
		if err := parser.ValidateAssignment(s); err != nil {
			return xerrors.Errorf("config %s: %w", cfg.ConfigPath, err)
		}
	}

	if cfg.Prefix == nil && fileCfg.Prefix != nil {
		cfg.Prefix = fileCfg.Prefix
	}
	if cfg.Command == "" {
		cfg.Command = fileCfg.Command
	}
	if len(cfg.Args) == 0 {
		cfg.Args = fileCfg.Args
	}
	// File entries come first so flag entries win inside the child
	cfg.Set = append(append([]string{}, fileCfg.Set...), cfg.Set...)
	cfg.Duplicates = cfg.Duplicates || fileCfg.Duplicates
	cfg.Malformed = cfg.Malformed || fileCfg.Malformed
	cfg.Strict = cfg.Strict || fileCfg.Strict
	cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	return nil
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/regbuild/internal/app"
	"github.com/vk/regbuild/internal/config"
)

// Default artifact locations, relative to the working directory.
const (
	DefaultOutputPath     = "src/api/definitions.json"
	DefaultFullOutputPath = "src/api/definitions-full.json"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Values are layered: built-in defaults, then the optional -config file, then
// any flag given explicitly on the command line.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("regbuild", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
regbuild - builds the API definition registry from the category index.

Usage:
  regbuild [options] [COMMAND [ARG]]

Commands:
  build            Merge the index with the existing registry and write it (default).
  show NAME        Print one definition of the merged registry.
  search KEYWORD   List definitions whose name or description contains KEYWORD.
  list CATEGORY    List definitions of one category.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a TOML or YAML config file.")
	existingFlag := flagSet.String("existing", "", "Registry to merge with. Defaults to the output path.")
	outputFlag := flagSet.String("output", DefaultOutputPath, "Path of the client-facing registry.")
	fullOutputFlag := flagSet.String("full-output", DefaultFullOutputPath, "Path of the full registry artifact.")
	indexFlag := flagSet.String("index", "", "HCL file or directory replacing the built-in category index.")
	templatesFlag := flagSet.String("templates", "", "HCL file or directory replacing the built-in templates.")
	reportFormatFlag := flagSet.String("report-format", "text", "Report format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Merge and report without writing any file.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := app.Config{
		ExistingPath:   *existingFlag,
		OutputPath:     *outputFlag,
		FullOutputPath: *fullOutputFlag,
		IndexPath:      *indexFlag,
		TemplatesPath:  *templatesFlag,
		ReportFormat:   *reportFormatFlag,
		LogFormat:      *logFormatFlag,
		LogLevel:       *logLevelFlag,
		DryRun:         *dryRunFlag,
	}

	if *configFlag != "" {
		file, err := config.LoadFile(*configFlag)
		if err != nil {
			return nil, false, usageError("%v", err)
		}
		applyFile(&cfg, file, explicitFlags(flagSet))
		slog.Debug("Config file applied.", "path", *configFlag)
	}

	if flagSet.NArg() > 0 {
		cfg.Command = strings.ToLower(flagSet.Arg(0))
		cfg.Args = flagSet.Args()[1:]
	}
	cfg.ReportFormat = strings.ToLower(cfg.ReportFormat)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", validated)
	return validated, false, nil
}

// explicitFlags returns the names of the flags set on the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFile copies non-empty values from the config file into cfg unless the
// matching flag was given explicitly.
func applyFile(cfg *app.Config, file *config.File, explicit map[string]bool) {
	fields := []struct {
		flag  string
		value string
		dst   *string
	}{
		{"existing", file.Existing, &cfg.ExistingPath},
		{"output", file.Output, &cfg.OutputPath},
		{"full-output", file.FullOutput, &cfg.FullOutputPath},
		{"index", file.Index, &cfg.IndexPath},
		{"templates", file.Templates, &cfg.TemplatesPath},
		{"report-format", file.ReportFormat, &cfg.ReportFormat},
		{"log-format", file.LogFormat, &cfg.LogFormat},
		{"log-level", file.LogLevel, &cfg.LogLevel},
	}
	for _, f := range fields {
		if f.value != "" && !explicit[f.flag] {
			*f.dst = f.value
		}
	}
}

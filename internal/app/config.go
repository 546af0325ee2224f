package app

import (
	"errors"
	"fmt"
)

// Commands understood by App.Run.
const (
	CommandBuild  = "build"
	CommandShow   = "show"
	CommandSearch = "search"
	CommandList   = "list"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ExistingPath   string // registry read as the baseline; defaults to OutputPath
	FullOutputPath string // complete artifact
	OutputPath     string // client-facing artifact
	IndexPath      string // hcl files; empty selects the built-in index
	TemplatesPath  string // hcl files; empty selects the embedded templates

	ReportFormat string
	LogFormat    string
	LogLevel     string
	DryRun       bool

	Command string
	Args    []string
}

// NewConfig validates cfg and fills in derived defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Command == "" {
		cfg.Command = CommandBuild
	}
	switch cfg.Command {
	case CommandBuild:
		if len(cfg.Args) != 0 {
			return nil, fmt.Errorf("command %q takes no arguments", cfg.Command)
		}
		if !cfg.DryRun && cfg.OutputPath == "" {
			return nil, errors.New("OutputPath is a required configuration field and cannot be empty")
		}
	case CommandShow, CommandSearch, CommandList:
		if len(cfg.Args) != 1 {
			return nil, fmt.Errorf("command %q takes exactly one argument", cfg.Command)
		}
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	if cfg.ExistingPath == "" {
		cfg.ExistingPath = cfg.OutputPath
	}

	if cfg.ReportFormat == "" {
		cfg.ReportFormat = "text"
	}
	if cfg.ReportFormat != "text" && cfg.ReportFormat != "json" {
		return nil, errors.New("invalid report-format: must be 'text' or 'json'")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}

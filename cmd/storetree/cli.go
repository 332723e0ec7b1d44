package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/comalice/storetree/internal/config"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// options is the parsed command line.
type options struct {
	ManifestPath string
	Format       string
	OutPath      string
	Trace        bool
	Config       config.Config
}

// parse processes command-line arguments on top of the environment config.
// It returns the options, whether the program should exit cleanly, or an
// ExitError.
func parse(args []string, output io.Writer, base config.Config) (*options, bool, error) {
	flagSet := flag.NewFlagSet("storetree", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
storetree - inspect a store module tree declared in a manifest.

Usage:
  storetree [options] MANIFEST

Arguments:
  MANIFEST
    Path to a .yaml, .yml, .json or .hcl module manifest.

Options:
`)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.String("format", "namespaces", "Output format. Options: 'namespaces', 'dot', 'json', 'yaml'.")
	outFlag := flagSet.String("out", "", "Write the manifest to this .yaml or .json file instead of printing the tree.")
	traceFlag := flagSet.Bool("trace", false, "Log every mutation and action at debug level.")
	strictFlag := flagSet.Bool("strict", base.Strict, "Validate definitions and report warnings.")
	logFormatFlag := flagSet.String("log-format", base.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", base.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	format := strings.ToLower(*formatFlag)
	switch format {
	case "namespaces", "dot", "json", "yaml":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'namespaces', 'dot', 'json' or 'yaml'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &options{
		ManifestPath: flagSet.Arg(0),
		Format:       format,
		OutPath:      *outFlag,
		Trace:        *traceFlag,
		Config: config.Config{
			Strict:    *strictFlag,
			LogLevel:  logLevel,
			LogFormat: logFormat,
		},
	}, false, nil
}

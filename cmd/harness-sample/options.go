package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/AdguardTeam/golibs/errors"
	"github.com/AdguardTeam/golibs/logutil/slogutil"
	"github.com/AdguardTeam/golibs/osutil"
	goFlags "github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

const argConfigPath = "--config-path="

// options represents console arguments. Options set on the command line
// override the ones from the configuration file, so none of them have
// default values.
type options struct {
	// ConfigPath is the path to a YAML configuration file. It is read
	// before the other flags are parsed.
	ConfigPath string `long:"config-path" description:"YAML configuration file. Options passed through command line override the ones from this file." default:""`

	// Patterns select the units to run by name path.
	Patterns []string `yaml:"patterns" short:"p" long:"pattern" description:"Glob selecting units by name path, e.g. sample/MyTest*. Can be specified multiple times."`

	// ReportPath is the path of the JSON report file.
	ReportPath string `yaml:"report" short:"r" long:"report" description:"Path to write a JSON report to."`

	// BaselinePath is the path of a JSON report of an earlier run.
	BaselinePath string `yaml:"baseline" short:"b" long:"baseline" description:"Path to a JSON report of an earlier run. Only failures not present in it fail the run."`

	// LogFormat is the format of the log output: default, json or text.
	LogFormat string `yaml:"log-format" long:"log-format" description:"Log format: default, json or text."`

	// Verbose enables a result line per test.
	Verbose bool `yaml:"verbose" short:"v" long:"verbose" description:"Print a result line per test." optional:"yes" optional-value:"true"`

	// Details enables the per-test failure listing.
	Details bool `yaml:"details" short:"d" long:"details" description:"Print failed assertions per test after the run." optional:"yes" optional-value:"true"`

	// NoFunctions disables test-function statistics.
	NoFunctions bool `yaml:"no-functions" long:"no-functions" description:"Do not collect statistics per test function." optional:"yes" optional-value:"true"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug" long:"debug" description:"Enable debug logging." optional:"yes" optional-value:"true"`
}

// parseConfigFile fills opts with the settings from the file at confPath.
func parseConfigFile(opts *options, confPath string) (err error) {
	// #nosec G304 -- Trust the file path that is given in the args.
	b, err := os.ReadFile(confPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	err = yaml.Unmarshal(b, opts)
	if err != nil {
		return fmt.Errorf("unmarshalling file: %w", err)
	}

	return nil
}

// parseOptions returns options parsed from args and the configuration file.
// If opts is nil, the program should exit with exitCode.
func parseOptions(args []string) (opts *options, exitCode int, err error) {
	opts = &options{}

	for _, arg := range args {
		if !strings.HasPrefix(arg, argConfigPath) {
			continue
		}

		confPath := strings.TrimPrefix(arg, argConfigPath)
		err = parseConfigFile(opts, confPath)
		if err != nil {
			return nil, osutil.ExitCodeArgumentError, fmt.Errorf(
				"parsing config file %s: %w",
				confPath,
				err,
			)
		}
	}

	parser := goFlags.NewParser(opts, goFlags.Default)
	_, err = parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*goFlags.Error); ok && flagsErr.Type == goFlags.ErrHelp {
			return nil, osutil.ExitCodeSuccess, nil
		}

		return nil, osutil.ExitCodeArgumentError, nil
	}

	return opts, osutil.ExitCodeSuccess, nil
}

// logFormat returns the slog format for the name given in the options.
func logFormat(name string) (f slogutil.Format, err error) {
	switch strings.ToLower(name) {
	case "", "default":
		return slogutil.FormatDefault, nil
	case "json":
		return slogutil.FormatJSON, nil
	case "text":
		return slogutil.FormatText, nil
	default:
		return slogutil.FormatDefault, fmt.Errorf("log format: %w: %q", errors.ErrBadEnumValue, name)
	}
}

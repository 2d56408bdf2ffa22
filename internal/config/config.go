package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/EmmerichFrog/bt-home-remote/internal/exit"
	"github.com/EmmerichFrog/bt-home-remote/internal/lookup"
	"github.com/EmmerichFrog/bt-home-remote/internal/output"
	"github.com/EmmerichFrog/bt-home-remote/internal/storage"
)

const (
	// DefaultFile is where the remote keeps its settings on the SD card.
	DefaultFile = "apps_data/bt_home_remote/conf.json"
	// DefaultDeviceName replaces a missing or empty device name.
	DefaultDeviceName = "Flipper"
)

var (
	ErrNoArguments    = errors.New("no arguments provided")
	ErrNoCommand      = errors.New("no command specified")
	ErrUnknownCommand = errors.New("unknown command")
	ErrCommandArgs    = errors.New("wrong number of arguments")
	ErrInvalidIndex   = errors.New("index must be a non-negative integer")
	ErrInvalidTokens  = errors.New("token budget cannot be negative")
	ErrInvalidBuffer  = errors.New("read buffer must be positive")
)

// Command names.
const (
	CommandGet      = "get"
	CommandElement  = "element"
	CommandElements = "elements"
	CommandCount    = "count"
	CommandTokens   = "tokens"
	CommandShow     = "show"
	CommandSet      = "set"
	CommandInit     = "init"
)

// arity is the number of positional arguments each command takes.
var arity = map[string]int{
	CommandGet:      1,
	CommandElement:  2,
	CommandElements: 1,
	CommandCount:    0,
	CommandTokens:   0,
	CommandShow:     0,
	CommandSet:      2,
	CommandInit:     0,
}

// Config is the parsed command line of btconf.
type Config struct {
	File       string
	DeviceName string
	Tokens     int // token budget per lookup (0 = size with a counting pass)
	Buffer     int // bytes read from the settings file
	Strict     bool
	Format     output.Format
	Debug      bool

	Command string
	Args    []string
}

// Validate checks ranges and the command arguments.
func (c *Config) Validate() error {
	if c.Tokens < 0 {
		return fmt.Errorf("%w, got: %d", ErrInvalidTokens, c.Tokens)
	}
	if c.Buffer <= 0 {
		return fmt.Errorf("%w, got: %d", ErrInvalidBuffer, c.Buffer)
	}

	if c.Command == "" {
		return ErrNoCommand
	}
	want, ok := arity[c.Command]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, c.Command)
	}
	if len(c.Args) != want {
		return fmt.Errorf("%w for %s: want %d, got %d", ErrCommandArgs, c.Command, want, len(c.Args))
	}

	if c.Command == CommandElement {
		if _, err := c.Index(); err != nil {
			return err
		}
	}
	return nil
}

// Index is the array index argument of the element command.
func (c *Config) Index() (int, error) {
	if len(c.Args) < 2 {
		return 0, ErrCommandArgs
	}
	index, err := strconv.Atoi(c.Args[1])
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w, got: %s", ErrInvalidIndex, c.Args[1])
	}
	return index, nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, it returns a nil config and the
// exit result to report.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Usage(ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		file       = fs.String("file", DefaultFile, "Settings document path")
		deviceName = fs.String("device-name", DefaultDeviceName, "Device name used when none is stored")
		tokens     = fs.Int("tokens", lookup.DefaultBudget, "Token budget per lookup (0 to size automatically)")
		buffer     = fs.Int("buffer", storage.DefaultReadLimit, "Maximum bytes read from the settings file")
		strict     = fs.Bool("strict", false, "Reject primitives that are not JSON literals")
		format     = fs.String("format", "text", "Output format: text, yaml or json")
		debug      = fs.Bool("debug", false, "Log resolver diagnostics")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage() + "\n")
		}
		return nil, exit.Usage(fmt.Errorf("failed to parse arguments: %w", err), Usage())
	}

	outputFormat, err := output.ParseFormat(*format)
	if err != nil {
		return nil, exit.Usage(err, Usage())
	}

	cfg := &Config{
		File:       *file,
		DeviceName: *deviceName,
		Tokens:     *tokens,
		Buffer:     *buffer,
		Strict:     *strict,
		Format:     outputFormat,
		Debug:      *debug,
	}

	if rest := fs.Args(); len(rest) > 0 {
		cfg.Command = rest[0]
		cfg.Args = rest[1:]
	}

	if err := cfg.Validate(); err != nil {
		return nil, exit.Usage(err, Usage())
	}

	return cfg, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `btconf - inspect and edit the BT home remote settings file

Usage: btconf [options] <command> [args]

Commands:
  get KEY                 Print the value stored under KEY
  element KEY INDEX       Print element INDEX of the array under KEY
  elements KEY            Print every object element of the array under KEY
  count                   Print the number of tokens the document needs
  tokens                  Print the token table of the document
  show                    Print the effective beacon settings
  set FIELD VALUE         Change one setting and save the file
  init                    Write the default settings if no file exists

Options:
  --file PATH             Settings document path (default: apps_data/bt_home_remote/conf.json)
  --device-name NAME      Device name used when none is stored (default: Flipper)
  --tokens N              Token budget per lookup, 0 to size automatically (default: 128)
  --buffer N              Maximum bytes read from the settings file (default: 512)
  --strict                Reject primitives that are not JSON literals
  --format FORMAT         Output format: text, yaml or json (default: text)
  --debug                 Log resolver diagnostics to stderr
  -h, --help              Show this help message

Examples:
  btconf show
  btconf get device_name
  btconf --format yaml element remotes 0
  btconf set bt_period_idx 50ms`
}

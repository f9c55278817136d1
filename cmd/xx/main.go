// Package main is the entry point for xx, which remembers shell commands
// so you don't have to.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dshills/xxcmd/internal/app"
	"github.com/dshills/xxcmd/internal/config"
	"github.com/dshills/xxcmd/internal/controller"
	"github.com/dshills/xxcmd/internal/renderer/backend"
	"github.com/dshills/xxcmd/internal/store"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// importTimeout bounds a --import-url fetch.
const importTimeout = 30 * time.Second

// options holds the parsed command line.
type options struct {
	add          bool
	noBorder     bool
	noHelp       bool
	importURL    string
	createConfig bool
	dbFile       string
	noGlobal     bool
	list         bool
	noCommands   bool
	noEcho       bool
	labelPadding int
	searchAll    bool
	noLabels     bool
	showVersion  bool
	configPath   string
	logLevel     string
	logFile      string

	// args are the words after the flags: the command for --add, the
	// query otherwise.
	args []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(argv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "xx (xxcmd) %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	configPath := opts.configPath
	if configPath == "" {
		if configPath, err = config.DefaultPath(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	if opts.createConfig {
		if err := config.WriteDefault(configPath, config.Default(os.LookupEnv)); err != nil {
			if errors.Is(err, config.ErrConfigExists) {
				fmt.Fprintln(stdout, "Config file already exists")
			} else {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
			return 1
		}
		fmt.Fprintf(stdout, "Config file created: %s\n", configPath)
		return 0
	}

	cfg, err := config.Load(configPath, os.Environ())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	opts.apply(&cfg)
	if !app.ValidLogLevel(cfg.Logging.Level) {
		fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", cfg.Logging.Level)
		return 1
	}

	logger := app.NullLogger
	if cfg.Logging.File != "" {
		l, closer, err := app.OpenLogFile(cfg.Logging.File, app.ParseLogLevel(cfg.Logging.Level))
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer closer.Close()
		logger = l
	}

	application, err := app.New(app.Options{
		Config: cfg,
		Logger: logger,
		Stdout: stdout,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	query := strings.Join(opts.args, " ")

	switch {
	case opts.importURL != "":
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()
		if _, err := application.Import(ctx, opts.importURL); err != nil {
			fmt.Fprintf(stderr, "Could not retrieve url: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, "Loaded data from URL")
		return 0

	case opts.add:
		if _, err := application.Add(query); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				fmt.Fprintln(stdout, "Duplicate command not added.")
			} else {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
			return 1
		}
		fmt.Fprintln(stdout, "Added command.")
		return 0

	case opts.list:
		if err := application.List(stdout, query); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.Run(term, query); err != nil {
		if errors.Is(err, app.ErrNoDatabase) {
			fmt.Fprintln(stdout, "No database. Add commands with: xx -a [label] <command>")
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(argv []string, output io.Writer) (*options, error) {
	opts := &options{labelPadding: -1}
	fs := flag.NewFlagSet("xx", flag.ContinueOnError)
	fs.SetOutput(output)

	boolVar := func(p *bool, short, long, usage string) {
		fs.BoolVar(p, short, false, usage)
		fs.BoolVar(p, long, false, usage+" (long form)")
	}
	stringVar := func(p *string, short, long, usage string) {
		fs.StringVar(p, short, "", usage)
		fs.StringVar(p, long, "", usage+" (long form)")
	}

	boolVar(&opts.add, "a", "add", "Add the command given as arguments; it may begin with [label]")
	boolVar(&opts.noBorder, "b", "no-border", "Don't display a window border")
	boolVar(&opts.noHelp, "e", "no-help", "Don't display the shortcut key help footer")
	stringVar(&opts.importURL, "i", "import-url", "Import and merge a command database from a URL or file")
	boolVar(&opts.createConfig, "c", "create-config", "Create a config file if one doesn't already exist")
	stringVar(&opts.dbFile, "f", "db-file", "Use this command database file")
	boolVar(&opts.noGlobal, "g", "no-global-database", "Don't load the global system database")
	boolVar(&opts.list, "l", "list", "Print the commands in the database, optionally filtered")
	boolVar(&opts.noCommands, "m", "no-commands", "Don't show commands in the interactive view")
	boolVar(&opts.noEcho, "n", "no-echo", "Don't echo the command before running it")
	fs.IntVar(&opts.labelPadding, "p", -1, "Spaces between labels and commands")
	fs.IntVar(&opts.labelPadding, "label-padding", -1, "Spaces between labels and commands (long form)")
	boolVar(&opts.searchAll, "s", "search-all", "Search labels and commands together")
	boolVar(&opts.noLabels, "t", "no-labels", "Don't display command labels")
	boolVar(&opts.showVersion, "v", "version", "Display program version")
	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")

	fs.Usage = func() {
		fmt.Fprintf(output, "xx - remembers other shell commands, so you don't have to\n\n")
		fmt.Fprintf(output, "Usage: xx [options] [search words...]\n\n")
		fmt.Fprintf(output, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(output, "\nExamples:\n")
		fmt.Fprintf(output, "  xx                          Open the command console\n")
		fmt.Fprintf(output, "  xx disk                     Run the only command matching \"disk\"\n")
		fmt.Fprintf(output, "  xx -a [Disk] du -h .        Remember a command with a label\n")
		fmt.Fprintf(output, "  xx -l git                   List commands mentioning git\n")
	}

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	opts.args = fs.Args()
	return opts, nil
}

// apply overrides the loaded settings with the flags that were given.
func (o *options) apply(cfg *config.Config) {
	if o.noBorder {
		cfg.Display.DrawWindowBorder = false
	}
	if o.noHelp {
		cfg.Display.DisplayHelpFooter = false
	}
	if o.dbFile != "" {
		cfg.Database.File = o.dbFile
	}
	if o.noGlobal {
		cfg.Database.LoadGlobal = false
	}
	if o.noCommands {
		cfg.Display.ShowCommands = false
	}
	if o.noEcho {
		cfg.Exec.EchoCommands = false
	}
	if o.labelPadding >= 0 {
		cfg.Display.LabelPadding = o.labelPadding
	}
	if o.searchAll {
		cfg.Search.Mode = controller.Both.String()
	}
	if o.noLabels {
		cfg.Display.ShowLabels = false
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.Logging.File = o.logFile
	}
}

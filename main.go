package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"

	"go.creack.net/gocalc/config"
	"go.creack.net/gocalc/parser"
	"go.creack.net/gocalc/repl"
)

const usage = `usage: gocalc [-bkntdh] [-c config.yaml] [-f format] [-i input] [-D name=value]... [expr...]

Evaluates one arithmetic expression per line, from the arguments if any,
from the input file otherwise (stdin by default).

  -b          basic mode: no variables
  -k          keep going after a failing line
  -n          no color
  -t          print the syntax tree of each line
  -d          dump the Go AST of each line
  -c file     load settings from a YAML file
  -f format   result format (default "%g")
  -i file     read lines from file, "-" for stdin
  -D n=v      define a variable (repeatable)
  -h          show this help
`

// flags holds the command line settings that override the config file.
type flags struct {
	configPath string
	input      string
	exprs      []string

	basic, keepGoing, noColor, tree, dump bool
	format                                string
	defines                               []string
}

func parseFlags(args []string) (*flags, error) {
	opts, optind, err := getopt.Getopts(args, "bkntdhc:f:i:D:")
	if err != nil {
		return nil, err
	}
	fl := &flags{exprs: args[optind:]}
	for _, opt := range opts {
		switch opt.Option {
		case 'b':
			fl.basic = true
		case 'k':
			fl.keepGoing = true
		case 'n':
			fl.noColor = true
		case 't':
			fl.tree = true
		case 'd':
			fl.dump = true
		case 'c':
			fl.configPath = opt.Value
		case 'f':
			fl.format = opt.Value
		case 'i':
			fl.input = opt.Value
		case 'D':
			fl.defines = append(fl.defines, opt.Value)
		case 'h':
			return nil, errHelp
		}
	}
	return fl, nil
}

var errHelp = errors.New("help requested")

// options merges the config file and the flags into repl options.
func options(fl *flags, stderr *os.File) (repl.Options, error) {
	cfg := config.Default()
	if fl.configPath != "" {
		c, err := config.Load(fl.configPath)
		if err != nil {
			return repl.Options{}, err
		}
		cfg = c
	}
	if fl.basic {
		cfg.Mode = parser.ModeBasic.String()
	}
	if fl.keepGoing {
		cfg.KeepGoing = true
	}
	if fl.noColor {
		cfg.Color = config.ColorNever
	}
	if fl.format != "" {
		cfg.Format = fl.format
	}
	for _, def := range fl.defines {
		name, value, err := config.ParseDefinition(def)
		if err != nil {
			return repl.Options{}, err
		}
		cfg.Variables[name] = value
	}
	if err := cfg.Validate(); err != nil {
		return repl.Options{}, err
	}
	mode, err := cfg.ParserMode()
	if err != nil {
		return repl.Options{}, err
	}

	opts := repl.Options{
		Mode:      mode,
		Format:    cfg.Format,
		KeepGoing: cfg.KeepGoing,
		Tree:      fl.tree,
		Dump:      fl.dump,
		Vars:      cfg.Variables,
	}
	switch cfg.Color {
	case config.ColorAlways:
		opts.Color = true
	case config.ColorAuto:
		opts.Color = isatty.IsTerminal(stderr.Fd()) && os.Getenv("NO_COLOR") == ""
	}
	return opts, nil
}

func input(fl *flags) (io.ReadCloser, error) {
	if len(fl.exprs) > 0 {
		if fl.input != "" {
			return nil, errors.New("cannot use -i with expression arguments")
		}
		return io.NopCloser(strings.NewReader(strings.Join(fl.exprs, "\n"))), nil
	}
	if fl.input == "" || fl.input == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(fl.input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gocalc: ")

	fl, err := parseFlags(os.Args)
	if errors.Is(err, errHelp) {
		fmt.Fprint(os.Stdout, usage)
		return
	}
	if err != nil {
		fmt.Fprint(os.Stderr, usage)
		log.Printf("%s.", err)
		os.Exit(2)
	}
	opts, err := options(fl, os.Stderr)
	if err != nil {
		log.Printf("%s.", err)
		os.Exit(2)
	}
	in, err := input(fl)
	if err != nil {
		log.Printf("%s.", err)
		os.Exit(2)
	}
	defer func() { _ = in.Close() }() // Best effort.

	stats, err := repl.Run(in, os.Stdout, os.Stderr, opts)
	if err != nil {
		// Failing lines are already reported by the loop.
		var lineErr *repl.LineError
		switch {
		case errors.Is(err, repl.ErrLinesFailed):
			log.Printf("%d of %d lines failed.", stats.Failed, stats.Lines)
		case !errors.As(err, &lineErr):
			log.Printf("%s.", err)
		}
		_ = in.Close()
		os.Exit(1)
	}
}

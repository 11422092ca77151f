// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jlite parses a document and prints the resulting value tree.
//
// Usage:
//
//	jlite [flags] [FILE]
//
// If FILE is omitted or "-", input is read from stdin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jlite"
	"github.com/creachadair/jlite/ast"
	"github.com/creachadair/jlite/ast/cursor"
	"github.com/creachadair/jlite/query"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/tailscale/hujson"
)

type flags struct {
	File string `arg:"" optional:"" help:"Input file; stdin if omitted or \"-\"."`

	JWCC     bool   `name:"jwcc" help:"Standardize JSON with comments and trailing commas before parsing."`
	MaxDepth int    `help:"Maximum nesting depth of arrays and objects." default:"10000" env:"JLITE_MAX_DEPTH"`
	Strict   bool   `help:"Reject unterminated strings and missing separators." env:"JLITE_STRICT"`
	Literals bool   `short:"l" help:"Recognize the constants true, false, and null."`
	All      bool   `short:"a" help:"Require the input to contain exactly one value."`
	Path     string `short:"p" help:"Dotted path of the subtree to print, e.g. items.0.name."`
	Select   string `short:"s" help:"Selector query applied after --path, e.g. items.*.name or **.id."`
	Format   string `short:"f" help:"Output format (${enum})." enum:"json,tree,summary" default:"json"`
	Debug    bool   `short:"d" help:"Enable debug logging."`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run parses args, processes the input, and writes the result to stdout.
// Errors are logged to stderr as well as returned.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg flags
	kp, err := kong.New(&cfg,
		kong.Name("jlite"),
		kong.Description("Parse a document and print the resulting value tree."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	if _, err := kp.Parse(args); err != nil {
		fmt.Fprintf(stderr, "jlite: %v\n", err)
		return err
	}

	logger := newLogger(stderr, cfg.Debug)
	if err := process(cfg, logger, stdin, stdout); err != nil {
		level.Error(logger).Log("msg", "failed", "err", err)
		return err
	}
	return nil
}

func newLogger(w io.Writer, debug bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	allow := level.AllowInfo()
	if debug {
		allow = level.AllowDebug()
	}
	return level.NewFilter(logger, allow)
}

func process(cfg flags, logger log.Logger, stdin io.Reader, stdout io.Writer) error {
	data, err := readInput(cfg.File, stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	level.Debug(logger).Log("msg", "read input", "file", cfg.File, "bytes", len(data))

	if cfg.JWCC {
		data, err = hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("standardizing input: %w", err)
		}
		level.Debug(logger).Log("msg", "standardized input", "bytes", len(data))
	}

	var p jlite.Parser
	p.SetMaxDepth(cfg.MaxDepth)
	p.RejectUnterminated(cfg.Strict)
	p.RequireSeparators(cfg.Strict)
	p.AllowLiterals(cfg.Literals)

	var v ast.Value
	if cfg.All {
		v, err = p.ParseAll(data)
	} else {
		var n int
		v, n, err = p.Parse(data)
		if err == nil && n < len(data) {
			level.Debug(logger).Log("msg", "input not fully consumed", "consumed", n, "bytes", len(data))
		}
	}
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	level.Debug(logger).Log("msg", "parsed", "kind", v.Kind())

	if cfg.Path != "" {
		v, err = cursor.Path[ast.Value](v, cursor.ParsePath(cfg.Path)...)
		if err != nil {
			return fmt.Errorf("path %q: %w", cfg.Path, err)
		}
	}
	if cfg.Select != "" {
		q, err := query.Parse(cfg.Select)
		if err != nil {
			return fmt.Errorf("selector %q: %w", cfg.Select, err)
		}
		v, err = query.Eval(v, q)
		if err != nil {
			return fmt.Errorf("select %q: %w", cfg.Select, err)
		}
	}

	switch cfg.Format {
	case "tree":
		return ast.Visit(v, &treePrinter{w: stdout})
	case "summary":
		return writeSummary(stdout, v)
	default:
		_, err := fmt.Fprintln(stdout, v.JSON())
		return err
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jaque decodes a JSON document and prints it, or explains why the
// document is malformed.
//
// Usage:
//
//	jaque [flags] [FILE]
//
// If FILE is omitted or "-", the document is read from standard input.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"

	"github.com/creachadair/jaque"
	"github.com/creachadair/jaque/ast"
	"github.com/creachadair/jaque/ast/cursor"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1 // the input could not be read or decoded
	exitUsage = 2
)

// config holds the settings parsed from the command line.
type config struct {
	file     string
	expr     string
	hujson   bool
	path     string
	indent   bool
	noColor  bool
	logLevel string
}

func newApp(cfg *config, stderr io.Writer) *kingpin.Application {
	app := kingpin.New("jaque", "Decode a JSON document and print it, or explain why it is malformed.")
	app.ErrorWriter(stderr)
	app.UsageWriter(stderr)

	app.Flag("expr", "Decode this text instead of reading a file.").Short('e').StringVar(&cfg.expr)
	app.Flag("hujson", "Accept comments and trailing commas by standardizing the input first.").BoolVar(&cfg.hujson)
	app.Flag("path", `Print only the value at this dotted path (e.g. "friends.0.name").`).StringVar(&cfg.path)
	app.Flag("indent", "Pretty-print the output.").BoolVar(&cfg.indent)
	app.Flag("no-color", "Do not colorize diagnostics.").BoolVar(&cfg.noColor)
	app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").EnumVar(&cfg.logLevel, "debug", "info", "warn", "error")
	app.Arg("file", `Input file; "-" or omitted for standard input.`).StringVar(&cfg.file)
	return app
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(lvl, level.InfoValue())))
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command with the given arguments and streams, and returns
// the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg config
	app := newApp(&cfg, stderr)

	// Flags such as --help ask kingpin to exit once they are handled.
	exitCode := -1
	app.Terminate(func(code int) { exitCode = code })
	_, err := app.Parse(args)
	if exitCode >= 0 {
		return exitCode
	} else if err != nil {
		fmt.Fprintf(stderr, "jaque: %v\n", err)
		return exitUsage
	}
	if cfg.noColor {
		color.NoColor = true
	}
	logger := newLogger(stderr, cfg.logLevel)

	text, source, err := readInput(&cfg, stdin)
	if err != nil {
		level.Error(logger).Log("msg", "reading input failed", "err", err)
		return exitFail
	}
	if cfg.hujson {
		std, err := hujson.Standardize([]byte(text))
		if err != nil {
			level.Error(logger).Log("msg", "standardizing input failed", "source", source, "err", err)
			return exitFail
		}
		text = string(std)
	}

	start := time.Now()
	v, err := ast.Decode(text)
	level.Debug(logger).Log("msg", "decoded input", "source", source,
		"size", humanize.Bytes(uint64(len(text))), "elapsed", time.Since(start), "ok", err == nil)
	if err != nil {
		var serr *jaque.SyntaxError
		if errors.As(err, &serr) {
			printDiagnostic(stderr, source, serr)
		} else {
			level.Error(logger).Log("msg", "decoding failed", "source", source, "err", err)
		}
		return exitFail
	}

	if cfg.path != "" {
		c := cursor.New(v).Down(cursor.ParsePath(cfg.path)...)
		if err := c.Err(); err != nil {
			level.Error(logger).Log("msg", "path lookup failed", "path", cfg.path, "err", err)
			return exitFail
		}
		v = c.Value()
	}

	if err := writeValue(stdout, v, cfg.indent); err != nil {
		level.Error(logger).Log("msg", "writing output failed", "err", err)
		return exitFail
	}
	return exitOK
}

// readInput returns the text to decode and a name for its source.
func readInput(cfg *config, stdin io.Reader) (text, source string, _ error) {
	if cfg.expr != "" {
		return cfg.expr, "<expr>", nil
	}
	if cfg.file == "" || cfg.file == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", errors.Wrap(err, "read standard input")
		}
		return string(data), "<stdin>", nil
	}
	data, err := os.ReadFile(cfg.file)
	if err != nil {
		return "", "", errors.Wrapf(err, "read %s", cfg.file)
	}
	return string(data), cfg.file, nil
}

// printDiagnostic writes the rendered form of serr to w, with its location
// and description highlighted.
func printDiagnostic(w io.Writer, source string, serr *jaque.SyntaxError) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed, color.Bold)
	bold.Fprintf(w, "%s:%v: ", source, serr.Location)
	red.Fprintln(w, serr.Description())
	fmt.Fprintf(w, "\n%s", serr.Snippet())
}

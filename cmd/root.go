// Package cmd wires up the CLI flags and dispatches to the codec.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"cunnycode/codec"
	"cunnycode/config"
	"cunnycode/internal/errors"
	"cunnycode/internal/metrics"
	"cunnycode/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X cunnycode/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Streams are the process streams a run reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// IsTerminal overrides terminal detection on In (tests).
	IsTerminal func(io.Reader) bool
}

// Execute parses args and runs cunnycode against the process streams.
func Execute(ctx context.Context, args []string) error {
	return Run(ctx, args, Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
}

// Run parses args, resolves the input, transforms it and writes the
// result to st.Out. Unmapped content is reported on st.Err and does not
// produce an error.
func Run(ctx context.Context, args []string, st Streams) error {
	cfg := &config.Config{}
	fs := flag.NewFlagSet(config.ProgramName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	// Free text after the first positional is never parsed as flags.
	fs.SetInterspersed(false)

	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVarP(&cfg.ShowTable, "table", "t", false, "Print the alphabet and exit")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&cfg.ShowHelp, "help", "h", false, "Show this help")

	// Parse failures fall through to literal text below.
	fs.Usage = func() {}

	// ── parse ────────────────────────────────────────────────────
	switch err := fs.Parse(args); {
	case errors.Is(err, flag.ErrHelp):
		printUsage(st.Err, fs)
		return nil
	case err != nil:
		// Text such as "-5 degrees" is input, not a bad flag.
		cfg = &config.Config{Args: args}
	default:
		cfg.Args = fs.Args()
	}

	if cfg.ShowHelp {
		printUsage(st.Err, fs)
		return nil
	}
	if cfg.ShowVersion {
		fmt.Fprintf(st.Out, "%s %s\n", config.ProgramName, version)
		return nil
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(st.Err, cfg.Verbose)
	mc := metrics.New()
	tc := codec.New()

	if cfg.ShowTable {
		fmt.Fprintln(st.Out, renderTable(tc.Table()))
		return nil
	}

	// ── input ────────────────────────────────────────────────────
	resolver := &util.Resolver{Stdin: st.In, IsTerminal: st.IsTerminal}
	in, err := resolver.Resolve(cfg.Args)
	if err != nil {
		if !errors.IsFatal(err) {
			fmt.Fprintln(st.Err, config.NoInputMessage)
			return nil
		}
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	mc.InputRead(len(in.Text))
	logger.Verbose("read %d bytes from %s", len(in.Text), in.Source)

	// ── transform ────────────────────────────────────────────────
	res := tc.Transform(in.Text)
	if res.Direction == codec.Decode {
		mc.Decoded(res.Mapped, len(res.Unmapped))
	} else {
		mc.Encoded(res.Mapped, len(res.Unmapped))
	}
	logger.Verbose("%s: %d mapped, %d unmapped", res.Direction, res.Mapped, len(res.Unmapped))

	if d := res.Diagnostic(); d != "" {
		fmt.Fprintln(st.Err, d)
	}

	n, err := fmt.Fprintln(st.Out, res.Output)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	mc.OutputWritten(n)
	logger.Debug("metrics %s", mc.JSON())
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Cunny Code v%s

Translates text to and from Cunny Code. Input starting with %c, %c or %c%c
is decoded; anything else is encoded.

Usage:
  %[6]s [options] <file>                 Transcode a file
  %[6]s [options] <text...>              Transcode the arguments
  <command> | %[6]s [options]            Transcode stdin

Options:
`, version, codec.Dot, codec.Dash, codec.Caret, codec.Dot, config.ProgramName)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Examples:
  %[1]s Hello World                      Encode text
  %[1]s message.txt                      Encode or decode a file
  echo "^😭😭😭😭 😭" | %[1]s              Decode stdin
  %[1]s --table                          Show the alphabet
`, config.ProgramName)
}

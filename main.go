//go:build !js

// countdown prints 10 down to 1, one number per line, then "Happy New Year!".
//
// Example:
//
//	countdown -eol=crlf
//
// Output:
//
//	10
//	9
//	8
//	7
//	6
//	5
//	4
//	3
//	2
//	1
//	Happy New Year!
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Exit statuses beyond 0 (success) and 1 (write failure).
const (
	exitUsage       = 2
	exitInterrupted = 130
)

// maxInterval bounds -interval, in milliseconds.
const maxInterval = int(time.Hour / time.Millisecond)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := realMain(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// realMain runs the command and returns its exit status.
func realMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return exitUsage
	}

	err = c.run(ctx, stdout)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		fmt.Fprintln(stderr, "error writing countdown:", err)
		return 1
	}
}

// parseArgs builds a countdown from command-line arguments. Problems are
// reported on stderr along with usage.
func parseArgs(args []string, stderr io.Writer) (*countdown, error) {
	fs := flag.NewFlagSet("countdown", flag.ContinueOnError)
	fs.SetOutput(stderr)

	flagEOL := fs.String("eol", "native", "line terminator: native, lf, crlf or cr")
	flagStream := fs.Bool("stream", false, "write one tick at a time, redrawing in place on a terminal")
	flagInterval := fs.Int("interval", 0, "milliseconds to wait after each tick in -stream mode")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %q", fs.Args())
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return nil, err
	}

	c := newCountdown()
	eol, err := parseLineEnding(*flagEOL)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return nil, fmt.Errorf("invalid -eol: %w", err)
	}
	if *flagInterval < 0 || *flagInterval > maxInterval {
		err := fmt.Errorf("invalid -interval %d: must be between 0 and %d", *flagInterval, maxInterval)
		fmt.Fprintln(stderr, err)
		return nil, err
	}
	c.EOL = eol
	c.Stream = *flagStream
	c.Interval = *flagInterval
	return c, nil
}

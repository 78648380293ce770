package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"time"
)

const (
	defaultFrom     = 10
	defaultGreeting = "Happy New Year!"
)

// Line terminators accepted by -eol.
const (
	eolLF   = "\n"
	eolCRLF = "\r\n"
	eolCR   = "\r"
)

// parseLineEnding maps an -eol name to the terminator it selects.
func parseLineEnding(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "native":
		return nativeLineEnding(runtime.GOOS), nil
	case "lf":
		return eolLF, nil
	case "crlf":
		return eolCRLF, nil
	case "cr":
		return eolCR, nil
	}
	return "", fmt.Errorf("unknown line ending %q (want native, lf, crlf or cr)", name)
}

func nativeLineEnding(goos string) string {
	if goos == "windows" {
		return eolCRLF
	}
	return eolLF
}

type countdown struct {
	From     int    // first number printed; counts down to 1
	Greeting string // line printed after 1
	EOL      string // line terminator

	Stream   bool // write one tick at a time, redrawing on a terminal
	Interval int  // milliseconds between ticks in stream mode
}

func newCountdown() *countdown {
	return &countdown{
		From:     defaultFrom,
		Greeting: defaultGreeting,
		EOL:      nativeLineEnding(runtime.GOOS),
	}
}

// lines returns the countdown payload without terminators.
func (c *countdown) lines() []string {
	out := make([]string, 0, c.From+1)
	for i := c.From; i >= 1; i-- {
		out = append(out, strconv.Itoa(i))
	}
	return append(out, c.Greeting)
}

// render returns the whole payload as it would be written by run.
func (c *countdown) render() string {
	var sb strings.Builder
	for _, line := range c.lines() {
		sb.WriteString(line)
		sb.WriteString(c.EOL)
	}
	return sb.String()
}

// run writes the countdown to w. Write errors are returned unchanged.
func (c *countdown) run(ctx context.Context, w io.Writer) error {
	if c.Stream {
		return c.runStream(ctx, w)
	}
	_, err := io.WriteString(w, c.render())
	return err
}

func (c *countdown) interval() time.Duration {
	if c.Interval <= 0 {
		return 0
	}
	return time.Duration(c.Interval) * time.Millisecond
}

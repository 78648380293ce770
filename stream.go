package main

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

const (
	clearScreen = "\033[2J"
	moveCursor  = "\033[H"
)

// runStream writes one tick at a time, pausing c.Interval after every line
// but the greeting.
func (c *countdown) runStream(ctx context.Context, w io.Writer) error {
	lines := c.lines()
	wait := c.interval()
	f, tty := terminalFile(w)

	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		if tty {
			err = c.displayStreamOutput(w, lines[:i+1], terminalRows(f), i == len(lines)-1)
		} else {
			_, err = io.WriteString(w, line+c.EOL)
		}
		if err != nil {
			return err
		}

		if i == len(lines)-1 || wait == 0 {
			continue
		}
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}

// displayStreamOutput clears the terminal and redraws the lines shown so far.
// Intermediate frames keep only the newest lines that fit in rows; the final
// frame is always the whole countdown.
func (c *countdown) displayStreamOutput(w io.Writer, shown []string, rows int, final bool) error {
	if !final {
		// Leave one row for the cursor.
		available := rows - 1
		if available < 1 {
			available = 1
		}
		if len(shown) > available {
			shown = shown[len(shown)-available:]
		}
	}

	var sb strings.Builder
	sb.WriteString(clearScreen + moveCursor)
	for _, line := range shown {
		sb.WriteString(line)
		sb.WriteString(c.EOL)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// terminalRows reports the height of the terminal behind f, or 24 when
// term.GetSize cannot tell.
func terminalRows(f *os.File) int {
	_, rows, err := term.GetSize(int(f.Fd()))
	if err != nil || rows <= 0 {
		return 24
	}
	return rows
}

func terminalFile(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, false
	}
	return f, true
}

//go:build js

package main

import (
	"syscall/js"
)

func countdownFunction(this js.Value, p []js.Value) any {
	c := newCountdown()
	c.EOL = eolLF
	if len(p) > 0 && p[0].Type() == js.TypeString {
		eol, err := parseLineEnding(p[0].String())
		if err != nil {
			return js.ValueOf(err.Error())
		}
		c.EOL = eol
	}
	return js.ValueOf(c.render())
}

func main() {
	c := make(chan struct{})

	js.Global().Set("countdown", js.FuncOf(countdownFunction))

	<-c
}

// countdown is a tool that prints a New Year countdown.
//
// countdown writes the numbers 10 through 1 to stdout, one per line, followed
// by "Happy New Year!". It takes no input.
//
// Example:
//
//	countdown
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
//
// The line terminator follows the platform unless -eol is given (lf, crlf or
// cr). With -stream the ticks are written one at a time, -interval
// milliseconds apart; on a terminal each tick redraws the screen.
package main

// Package console implements the line-oriented terminal used by the menu and
// the download operations.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

const (
	successMark = "✓"
	failureMark = "✗"
	warningMark = "⚠"
)

type Console struct {
	in      *bufio.Reader
	out     io.Writer
	success *color.Color
	failure *color.Color
	warning *color.Color
	// statusWidth is the rune width of the line last written by Status, 0
	// when no status line is open.
	statusWidth int
}

// New builds a console over arbitrary streams. Colors are disabled so output
// stays byte-exact for non-terminal writers.
func New(in io.Reader, out io.Writer) *Console {
	c := &Console{
		in:      bufio.NewReader(in),
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		warning: color.New(color.FgYellow),
	}
	c.success.DisableColor()
	c.failure.DisableColor()
	c.warning.DisableColor()
	return c
}

// NewStd builds a console over stdin and a colorable stdout.
func NewStd() *Console {
	c := New(os.Stdin, colorable.NewColorableStdout())
	if !color.NoColor {
		c.success.EnableColor()
		c.failure.EnableColor()
		c.warning.EnableColor()
	}
	return c
}

// Prompt writes the prompt and reads one line with surrounding whitespace
// removed. io.EOF is returned only when no input is left at all.
func (c *Console) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		// keep the transcript readable when input ends mid-prompt
		fmt.Fprintln(c.out)
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Success prints a highlighted "✓ msg" line preceded by a blank line.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.success.Sprint(successMark+" "+msg))
}

// Failure prints a highlighted "✗ msg" line preceded by a blank line.
func (c *Console) Failure(msg string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.failure.Sprint(failureMark+" "+msg))
}

// Check prints an inline "✓ msg" line.
func (c *Console) Check(msg string) {
	fmt.Fprintln(c.out, c.success.Sprint(successMark+" "+msg))
}

// Reject prints an inline "✗ msg" line, used inside prompt loops.
func (c *Console) Reject(msg string) {
	fmt.Fprintln(c.out, c.failure.Sprint(failureMark+" "+msg))
}

func (c *Console) Warning(msg string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.warning.Sprint(warningMark+" "+msg))
}

// Status rewrites the current line in place, blanking leftovers of a longer
// previous status.
func (c *Console) Status(line string) {
	width := utf8.RuneCountInString(line)
	fmt.Fprint(c.out, "\r"+line)
	if pad := c.statusWidth - width; pad > 0 {
		fmt.Fprint(c.out, strings.Repeat(" ", pad))
	}
	c.statusWidth = max(width, 1)
}

// EndStatus terminates an open status line. It is a no-op otherwise.
func (c *Console) EndStatus() {
	if c.statusWidth == 0 {
		return
	}
	fmt.Fprintln(c.out)
	c.statusWidth = 0
}

// Rule prints a horizontal rule of the given rune.
func (c *Console) Rule(ch string, width int) {
	fmt.Fprintln(c.out, strings.Repeat(ch, width))
}

// Writer exposes the output stream for table rendering.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Package plain is the uncolored renderer: markup is stripped and messages
// are written verbatim to an io.Writer. It backs the -plain flag and gives
// tests byte-exact game output.
package plain

import (
	"fmt"
	"io"

	"zuul/pkg/engine/input"
	"zuul/pkg/game/renderer"
)

// PlainRenderer writes unstyled game output to Out.
type PlainRenderer struct {
	Out io.Writer
}

// New creates a plain renderer writing to out.
func New(out io.Writer) *PlainRenderer {
	return &PlainRenderer{Out: out}
}

// Init is a no-op; plain output needs no setup.
func (p *PlainRenderer) Init() {}

// Clear is a no-op; plain output is a scrollback-friendly transcript.
func (p *PlainRenderer) Clear() {}

// ShowMessage writes the message followed by a newline.
func (p *PlainRenderer) ShowMessage(msg string) {
	fmt.Fprintln(p.Out, msg)
}

// FormatText fills in the arguments and strips all markup.
func (p *PlainRenderer) FormatText(msg string, args ...any) string {
	return renderer.StripMarkup(fmt.Sprintf(msg, args...))
}

// StyleText returns the text unchanged.
func (p *PlainRenderer) StyleText(text string, _ renderer.TextStyle) string {
	return text
}

// GetInput prompts and reads one line from stdin.
func (p *PlainRenderer) GetInput() string {
	fmt.Fprint(p.Out, "> ")
	return input.GetInput()
}

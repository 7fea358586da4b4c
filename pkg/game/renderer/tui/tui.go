// Package tui is the colored terminal renderer.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"zuul/pkg/engine/input"
	"zuul/pkg/engine/terminal"
	"zuul/pkg/game/renderer"
)

// dynamicGet is used for runtime translation lookups. A function variable
// avoids go vet's non-constant format string check, since format strings
// are passed through the catalog before being filled in.
var dynamicGet = gotext.Get

// TUIRenderer renders the game to a color-capable terminal.
type TUIRenderer struct {
	locale string

	colorItem   color.Style
	colorAction color.Style
	colorDenied color.Style
	colorSubtle color.Style
}

// New creates a TUI renderer for the given locale, e.g. "en_GB.utf8".
func New(locale string) *TUIRenderer {
	return &TUIRenderer{locale: locale}
}

// Init configures the message catalog and the color styles.
func (t *TUIRenderer) Init() {
	gotext.Configure("mo", t.locale, "default")

	t.colorItem = color.Style{color.FgGreen, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Clear clears the terminal screen.
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// ShowMessage prints a message, word-wrapped to the terminal width.
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(wrap(msg, terminal.GetWidth()))
}

// FormatText translates the format string, fills in the arguments and
// expands markup into ANSI colors.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(dynamicGet(msg), args...)

	matches := renderer.Markup().FindAllStringSubmatch(ret, -1)
	for _, match := range matches {
		function := match[1]
		operand := match[2]

		val := operand
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "ACTION":
			val = t.colorAction.Sprint(operand)
		case "DENIED":
			val = t.colorDenied.Sprint(operand)
		case "SUBTLE":
			val = t.colorSubtle.Sprint(operand)
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// StyleText applies a style as ANSI colors.
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// GetInput prompts and reads one line from the terminal.
func (t *TUIRenderer) GetInput() string {
	fmt.Print("> ")
	return input.GetInput()
}

// wrap word-wraps each line of msg to the given width. Words longer than
// the width are emitted unbroken.
func wrap(msg string, width int) string {
	if width <= 0 {
		return msg
	}

	var out []string
	for _, line := range strings.Split(msg, "\n") {
		// Lines that already fit are kept verbatim, spacing included.
		if len(line) <= width {
			out = append(out, line)
			continue
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, line)
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			if len(current)+1+len(word) > width {
				out = append(out, current)
				current = word
				continue
			}
			current += " " + word
		}
		out = append(out, current)
	}
	return strings.Join(out, "\n")
}

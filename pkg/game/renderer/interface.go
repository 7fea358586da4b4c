// Package renderer defines the output side of the game: a backend that
// accepts display text and supplies input lines. The game logic only talks
// to this interface, so backends (colored terminal, plain writer) are
// interchangeable.
package renderer

// TextStyle represents different text styling options.
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleItem
	StyleAction
	StyleDenied
	StyleSubtle
)

// Renderer is a game output/input backend.
type Renderer interface {
	// Init initializes the backend (colors, locale, etc.)
	Init()

	// Clear clears the display.
	Clear()

	// ShowMessage displays one message; multi-line messages are allowed.
	ShowMessage(msg string)

	// FormatText formats a message, expanding the FUNC{operand} markup in a
	// backend-specific way (ANSI colors for the TUI, stripped for plain).
	FormatText(msg string, args ...any) string

	// StyleText applies a style to text and returns the styled string.
	StyleText(text string, style TextStyle) string

	// GetInput prompts for and returns one line of player input.
	GetInput() string
}

// Current holds the active renderer instance.
var Current Renderer

// SetRenderer sets the active renderer.
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer.
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer.
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// ShowMessage displays a message using the current renderer.
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// FormatText formats a message with the current renderer's markup handling.
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}

// StyleText applies a style to text using the current renderer.
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// GetInput gets one line of player input from the current renderer.
func GetInput() string {
	if Current != nil {
		return Current.GetInput()
	}
	return ""
}

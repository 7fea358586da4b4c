// Package command defines the parsed player instruction: a command word
// plus an optional second word.
package command

// Word represents a recognized command word.
type Word int

// Command words. WordUnknown is the fallback for anything the parser does
// not recognize.
const (
	WordUnknown Word = iota
	WordGo
	WordQuit
	WordHelp
	WordExamine
	WordPickup
	WordInventory
	WordBeam
	WordCharge
	WordTime
)

// ParseWord maps an input token to its command word. Matching is exact and
// case-sensitive, so "Go" is unknown.
func ParseWord(token string) Word {
	switch token {
	case "go":
		return WordGo
	case "quit":
		return WordQuit
	case "help":
		return WordHelp
	case "examine":
		return WordExamine
	case "pickup":
		return WordPickup
	case "inventory":
		return WordInventory
	case "beam":
		return WordBeam
	case "charge":
		return WordCharge
	case "time":
		return WordTime
	default:
		return WordUnknown
	}
}

// String returns the input spelling of the command word.
func (w Word) String() string {
	switch w {
	case WordGo:
		return "go"
	case WordQuit:
		return "quit"
	case WordHelp:
		return "help"
	case WordExamine:
		return "examine"
	case WordPickup:
		return "pickup"
	case WordInventory:
		return "inventory"
	case WordBeam:
		return "beam"
	case WordCharge:
		return "charge"
	case WordTime:
		return "time"
	default:
		return "unknown"
	}
}

// Command is one parsed player instruction. Second is empty when the player
// typed a single word.
type Command struct {
	Word   Word
	Second string
}

// IsUnknown reports whether the command word was not recognized.
func (c Command) IsUnknown() bool {
	return c.Word == WordUnknown
}

// HasSecond reports whether the player supplied a second word.
func (c Command) HasSecond() bool {
	return c.Second != ""
}

// Package parser turns raw input lines into commands.
package parser

import (
	"strings"

	"github.com/zyedidia/generic/mapset"

	"zuul/pkg/game/command"
)

// words holds the known command words in the order help displays them.
var words = []command.Word{
	command.WordGo,
	command.WordQuit,
	command.WordHelp,
	command.WordExamine,
	command.WordPickup,
	command.WordInventory,
	command.WordBeam,
	command.WordCharge,
	command.WordTime,
}

// known is the membership set over the same words.
var known = buildKnown()

func buildKnown() mapset.Set[string] {
	s := mapset.New[string]()
	for _, w := range words {
		s.Put(w.String())
	}
	return s
}

// Parse splits a line into at most two whitespace-separated tokens and maps
// the first onto a command word. Any trailing tokens beyond the second are
// ignored. An unrecognized first token yields an unknown command.
func Parse(line string) command.Command {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return command.Command{Word: command.WordUnknown}
	}

	cmd := command.Command{Word: command.WordUnknown}
	if known.Has(tokens[0]) {
		cmd.Word = command.ParseWord(tokens[0])
	}
	if len(tokens) > 1 {
		cmd.Second = tokens[1]
	}
	return cmd
}

// IsKnown reports whether the token is a recognized command word.
func IsKnown(token string) bool {
	return known.Has(token)
}

// Words returns the known command words, in display order, for help output.
func Words() []string {
	names := make([]string, 0, len(words))
	for _, w := range words {
		names = append(names, w.String())
	}
	return names
}

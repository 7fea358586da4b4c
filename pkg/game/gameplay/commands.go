// Package gameplay implements the command engine: dispatch, movement, the
// day/hour clock and the session loop.
package gameplay

import (
	"strings"

	"zuul/pkg/game/command"
	"zuul/pkg/game/parser"
	"zuul/pkg/game/renderer"
	"zuul/pkg/game/state"
)

// say formats a message through the active renderer and displays it.
func say(msg string, args ...any) {
	renderer.ShowMessage(renderer.FormatText(msg, args...))
}

// ProcessCommand executes one parsed command against the game state and
// reports whether the player asked to quit. Invalid input never mutates
// state; it only produces a message.
func ProcessCommand(g *state.Game, cmd command.Command) bool {
	switch cmd.Word {
	case command.WordHelp:
		printHelp()
	case command.WordGo:
		AttemptMove(g, cmd)
	case command.WordQuit:
		return quit(cmd)
	case command.WordExamine:
		renderer.ShowMessage(g.CurrentRoom.Examine())
	case command.WordPickup:
		// A bare "pickup" falls through silently, like any unhandled word.
		if cmd.HasSecond() {
			pickup(g, cmd.Second)
		}
	case command.WordInventory:
		showInventory(g)
	case command.WordBeam:
		beam(g)
	case command.WordCharge:
		charge(g)
	case command.WordTime:
		printTime(g)
	default:
		say("I don't know what you mean...")
	}
	return false
}

// printHelp shows the lore text and the list of known command words.
func printHelp() {
	say("You are lost. You are alone. You wander")
	say("around at the university.")
	say("")
	say("Your command words are:")
	say("   " + strings.Join(parser.Words(), " "))
}

// printTime shows the current day and hour.
func printTime(g *state.Game) {
	say("Day: ACTION{%d} Hour: ACTION{%d}", g.Day, g.Hour)
}

// quit ends the session unless the player qualified the command.
func quit(cmd command.Command) bool {
	if cmd.HasSecond() {
		say("Quit what?")
		return false
	}
	return true
}

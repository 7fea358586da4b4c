package gameplay

import (
	"zuul/pkg/game/parser"
	"zuul/pkg/game/renderer"
	"zuul/pkg/game/state"
)

// Run plays one session: welcome banner, command loop, goodbye. The loop
// stops when the player quits or the time limit finishes the game.
func Run(g *state.Game) {
	printWelcome(g)

	for !g.Finished {
		cmd := parser.Parse(renderer.GetInput())
		if ProcessCommand(g, cmd) {
			break
		}
	}

	say("Thank you for playing.  Good bye.")
}

// printWelcome shows the opening banner, the starting time and the
// starting room.
func printWelcome(g *state.Game) {
	say("")
	say("Welcome to the World of Zuul!")
	say("World of Zuul is a new, incredibly boring adventure game.")
	say("You have %d %s and %d %s before you die...",
		state.MaxDays, plural(state.MaxDays, "day"),
		state.MaxHours, plural(state.MaxHours, "hour"))
	say("Type 'help' if you need help.")
	say("")
	printTime(g)
	renderer.ShowMessage(g.CurrentRoom.LongDescription())
}

// plural appends "s" to unit when n is not one.
func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

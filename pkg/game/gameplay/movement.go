package gameplay

import (
	"zuul/pkg/engine/world"
	"zuul/pkg/game/command"
	"zuul/pkg/game/renderer"
	"zuul/pkg/game/state"
)

// AttemptMove validates a "go" command, handles locked doors and charges
// one hour before entering the target room. Failed moves cost no time.
func AttemptMove(g *state.Game, cmd command.Command) {
	if !cmd.HasSecond() {
		say("Go where?")
		return
	}

	next := g.CurrentRoom.GetExit(cmd.Second)
	if next == nil {
		say("There is no door!")
		return
	}

	if next.Locked() {
		key := g.FindInventoryItem("key")
		if key == nil {
			say("The door is locked, find a key...")
			return
		}
		// The key is consumed; the room stays unlocked for the session.
		say("The key was used to unlock the door...")
		g.RemoveFromInventory(key)
		next.SetLocked(false)
	}

	advanceClockAndEnter(g, next)
}

// advanceClockAndEnter charges one hour, ends the game when the budget is
// spent (the target room is not entered on the terminating move) and
// otherwise rolls the hour over into a new day before entering.
func advanceClockAndEnter(g *state.Game, room *world.Room) {
	g.Hour++
	if g.Hour > state.MaxHours && g.Day >= state.MaxDays {
		endGame(g)
		return
	}
	if g.Hour > state.MaxHours {
		g.Hour %= state.MaxHours
		g.Day++
	}
	EnterRoom(g, room)
}

// EnterRoom teleports the player into a room without touching the clock,
// announcing the time and the room's long description. It is the shared
// entry routine for successful moves, beaming and the orb teleport.
func EnterRoom(g *state.Game, room *world.Room) {
	printTime(g)
	g.CurrentRoom = room
	renderer.ShowMessage(room.LongDescription())
}

// endGame marks the session finished; Finished is terminal.
func endGame(g *state.Game) {
	say("Whatever, let's go home and make a real game!")
	g.Finished = true
}

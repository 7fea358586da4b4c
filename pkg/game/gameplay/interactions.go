package gameplay

import (
	"strings"

	"zuul/pkg/engine/world"
	"zuul/pkg/game/state"
)

// pickup moves a named item from the current room into the inventory.
// The orb is special: touching it teleports the player outside without
// costing time, without entering the inventory and without leaving its
// room. That asymmetry is long-standing behavior; do not "fix" it here
// without a product decision.
func pickup(g *state.Game, name string) {
	item := g.CurrentRoom.GetItem(name)
	if item == nil {
		say("There is no such item here!")
		return
	}

	if strings.EqualFold(item.Name, "Orb") {
		say("The magical orb teleports you to the outside!")
		EnterRoom(g, g.Outside)
		return
	}

	g.CurrentRoom.RemoveItem(item.Name)
	say("You picked up ITEM{%s}.", strings.ToLower(item.NameWithPrefix()))
	g.AddToInventory(item)
}

// showInventory lists the held items in pickup order.
func showInventory(g *state.Game) {
	if len(g.Inventory) == 0 {
		say("There is nothing in your inventory!")
		return
	}
	say(world.JoinItems("You have", g.Inventory))
}

// beam teleports the player to the beamer's charged room. Beaming is a
// move: it charges one hour and obeys the same day rollover and time-limit
// rules as walking.
func beam(g *state.Game) {
	if !g.HasItem("beamer") {
		say("You need to find the beamer before you can beam yourself!")
		return
	}
	if g.BeamRoom == g.CurrentRoom {
		say("You are already in the beamers' charged room!")
		return
	}
	say("Beamed!")
	advanceClockAndEnter(g, g.BeamRoom)
}

// charge points the beamer at the current room.
func charge(g *state.Game) {
	if !g.HasItem("beamer") {
		say("You need to find the beamer before you can charge your beamer!")
		return
	}
	if g.BeamRoom == g.CurrentRoom {
		say("Your beamer is already charged with the current room!")
		return
	}
	say("Beamer charged with the current room!")
	g.BeamRoom = g.CurrentRoom
}

// Package setup builds the fixed campus world.
package setup

import (
	"github.com/zyedidia/generic/mapset"

	"zuul/pkg/engine/world"
	"zuul/pkg/game/state"
)

// BuildWorld creates the campus map, seeds its items and returns a fresh
// session positioned outside.
//
//	room    | exits                          | locked | items
//	--------+--------------------------------+--------+-------------
//	outside | east>theater south>lab west>pub| no     | -
//	theater | west>outside                   | no     | Key
//	pub     | -                              | yes    | Beamer
//	lab     | north>outside east>office      | no     | Sword, Orb
//	office  | west>lab                       | no     | -
func BuildWorld() *state.Game {
	outside := world.NewRoom("outside the main entrance of the university")
	theater := world.NewRoom("in a lecture theater")
	pub := world.NewRoom("in the campus pub, it looks like there\n is no exit out of here... " +
		"\nI need to find another way out")
	lab := world.NewRoom("in a computing lab")
	office := world.NewRoom("in the computing admin office")

	outside.SetExit("east", theater)
	outside.SetExit("south", lab)
	outside.SetExit("west", pub)

	theater.SetExit("west", outside)

	// The pub has no exits; the only way back out is the beamer.
	pub.SetLocked(true)

	lab.SetExit("north", outside)
	lab.SetExit("east", office)

	office.SetExit("west", lab)

	theater.AddItem(world.NewItem("Key", "A"))
	lab.AddItem(world.NewItem("Sword", "A"))
	lab.AddItem(world.NewItem("Orb", "An"))
	pub.AddItem(world.NewItem("Beamer", "A"))

	g := state.NewGame()
	g.Outside = outside
	g.BeamRoom = outside
	g.CurrentRoom = outside
	return g
}

// ReachableRooms collects every room reachable from start by following
// exits, using BFS. Locked rooms count as reachable; a lock gates entry,
// not discovery.
func ReachableRooms(start *world.Room) []*world.Room {
	var rooms []*world.Room
	visited := mapset.New[*world.Room]()
	queue := []*world.Room{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == nil || visited.Has(current) {
			continue
		}

		visited.Put(current)
		rooms = append(rooms, current)

		for _, direction := range current.ExitDirections() {
			next := current.GetExit(direction)
			if next != nil && !visited.Has(next) {
				queue = append(queue, next)
			}
		}
	}

	return rooms
}

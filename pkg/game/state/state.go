// Package state holds the per-session game context. A Game is constructed
// once and passed explicitly to every command handler; there is no ambient
// singleton, so independent sessions and tests stay isolated.
package state

import (
	"strings"

	"zuul/pkg/engine/world"
)

// Time budget for one session. A successful move costs one hour; once the
// hour overflows MaxHours on the last allowed day the game ends.
const (
	MaxDays  = 1
	MaxHours = 6
)

// Game is the full mutable state of one session.
type Game struct {
	CurrentRoom *world.Room
	BeamRoom    *world.Room

	// Outside is the fixed destination of the orb teleport.
	Outside *world.Room

	// Inventory keeps pickup order; display order follows it.
	Inventory []*world.Item

	Day  int
	Hour int

	// Finished becomes true exactly once, when the time budget runs out.
	Finished bool
}

// NewGame creates an empty session starting at day 1, hour 1. The room
// graph is wired up by the setup package.
func NewGame() *Game {
	return &Game{
		Day:  1,
		Hour: 1,
	}
}

// AddToInventory appends an item to the player's inventory.
func (g *Game) AddToInventory(it *world.Item) {
	g.Inventory = append(g.Inventory, it)
}

// RemoveFromInventory removes the first occurrence of the given item.
// Silent no-op when the item is not held.
func (g *Game) RemoveFromInventory(it *world.Item) {
	for i, held := range g.Inventory {
		if held == it {
			g.Inventory = append(g.Inventory[:i], g.Inventory[i+1:]...)
			return
		}
	}
}

// FindInventoryItem returns the first held item whose name matches
// case-insensitively, or nil.
func (g *Game) FindInventoryItem(name string) *world.Item {
	for _, it := range g.Inventory {
		if strings.EqualFold(it.Name, name) {
			return it
		}
	}
	return nil
}

// HasItem reports whether the player holds an item with the given name.
func (g *Game) HasItem(name string) bool {
	return g.FindInventoryItem(name) != nil
}

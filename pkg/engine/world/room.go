package world

import "strings"

// exit is one named directed edge out of a room. Exits live in a slice so
// that iteration order is insertion order; a map would make the exit
// summary text unstable between runs.
type exit struct {
	direction string
	to        *Room
}

// Room represents one location. It owns its exits, its lock state and the
// items currently on its floor (display order is insertion order).
type Room struct {
	description string
	exits       []exit
	locked      bool
	items       []*Item
}

// NewRoom creates a room with the given description and no exits.
// The description reads like "in a lecture theater".
func NewRoom(description string) *Room {
	return &Room{description: description}
}

// AddItem puts an item on the room's floor. A second item with the same
// name (case-sensitive) is silently rejected; the existing item stays.
func (r *Room) AddItem(it *Item) {
	for _, present := range r.items {
		if present.Name == it.Name {
			return
		}
	}
	r.items = append(r.items, it)
}

// RemoveItem removes the first item whose name matches exactly.
// Silent no-op when no item matches.
func (r *Room) RemoveItem(name string) {
	for i, it := range r.items {
		if it.Name == name {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

// GetItem looks up an item by name, case-insensitively.
// Returns nil when no item matches.
func (r *Room) GetItem(name string) *Item {
	for _, it := range r.items {
		if strings.EqualFold(it.Name, name) {
			return it
		}
	}
	return nil
}

// Items returns the items currently in the room, in display order.
func (r *Room) Items() []*Item {
	return r.items
}

// SetExit registers a directed edge out of this room, overwriting any
// existing exit in the same direction.
func (r *Room) SetExit(direction string, to *Room) {
	for i := range r.exits {
		if r.exits[i].direction == direction {
			r.exits[i].to = to
			return
		}
	}
	r.exits = append(r.exits, exit{direction: direction, to: to})
}

// GetExit returns the neighboring room in the given direction, or nil when
// there is no exit that way.
func (r *Room) GetExit(direction string) *Room {
	for _, e := range r.exits {
		if e.direction == direction {
			return e.to
		}
	}
	return nil
}

// SetLocked sets whether the room can be entered without a key.
func (r *Room) SetLocked(locked bool) {
	r.locked = locked
}

// Locked reports whether the room is locked.
func (r *Room) Locked() bool {
	return r.locked
}

// ShortDescription returns the description the room was created with.
func (r *Room) ShortDescription() string {
	return r.description
}

// LongDescription returns the room description plus its exit summary:
//
//	You are in a computing lab.
//	Exits: north east
func (r *Room) LongDescription() string {
	return "You are " + r.description + ".\n" + r.exitString()
}

// exitString lists the exit directions in insertion order, or "" when the
// room has no exits.
func (r *Room) exitString() string {
	if len(r.exits) == 0 {
		return ""
	}
	text := "Exits:"
	for _, e := range r.exits {
		text += " " + e.direction
	}
	return text
}

// ExitDirections returns the room's exit direction names in insertion order.
func (r *Room) ExitDirections() []string {
	directions := make([]string, 0, len(r.exits))
	for _, e := range r.exits {
		directions = append(directions, e.direction)
	}
	return directions
}

// Examine describes the items on the room's floor as a single sentence.
func (r *Room) Examine() string {
	if len(r.items) == 0 {
		return "There is nothing here!"
	}
	return JoinItems("You can see", r.items)
}

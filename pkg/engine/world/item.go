// Package world provides generic adventure-world primitives: items and
// rooms connected by named exits. These carry no rendering or game-rule
// dependencies so any text game can build on them.
package world

import "strings"

// Item represents a collectible object. Items are immutable after creation;
// Prefix is the grammatical article used when rendering the name ("A"/"An").
type Item struct {
	Name   string
	Prefix string
}

// NewItem creates a new item with the given name and article prefix.
func NewItem(name, prefix string) *Item {
	return &Item{Name: name, Prefix: prefix}
}

// NameWithPrefix returns the item name with its article, e.g. "A Key".
func (it *Item) NameWithPrefix() string {
	return it.Prefix + " " + it.Name
}

// JoinItems renders an ordered item list as a sentence: one item becomes
// "<subject> a key.", several become "<subject> a key, a sword and an orb."
// (comma separated with a final "and", no Oxford comma). The caller handles
// the empty case with its own message.
func JoinItems(subject string, items []*Item) string {
	text := subject + " "
	n := len(items)
	if n == 1 {
		return text + strings.ToLower(items[0].NameWithPrefix()) + "."
	}
	for i := 0; i < n-1; i++ {
		text += strings.ToLower(items[i].NameWithPrefix())
		if i+1 < n-1 {
			text += ", "
		} else {
			text += " and "
		}
	}
	return text + strings.ToLower(items[n-1].NameWithPrefix()) + "."
}

package world

import "testing"

func TestNameWithPrefix(t *testing.T) {
	it := NewItem("Orb", "An")
	if got, want := it.NameWithPrefix(), "An Orb"; got != want {
		t.Errorf("NameWithPrefix() = %q, want %q", got, want)
	}
}

func TestJoinItemsSingle(t *testing.T) {
	items := []*Item{NewItem("Key", "A")}
	if got, want := JoinItems("You have", items), "You have a key."; got != want {
		t.Errorf("JoinItems() = %q, want %q", got, want)
	}
}

func TestJoinItemsPair(t *testing.T) {
	items := []*Item{NewItem("Key", "A"), NewItem("Orb", "An")}
	if got, want := JoinItems("You have", items), "You have a key and an orb."; got != want {
		t.Errorf("JoinItems() = %q, want %q", got, want)
	}
}

func TestJoinItemsThree(t *testing.T) {
	items := []*Item{
		NewItem("Key", "A"),
		NewItem("Sword", "A"),
		NewItem("Orb", "An"),
	}
	// Comma-separated with a final "and", no Oxford comma.
	want := "You have a key, a sword and an orb."
	if got := JoinItems("You have", items); got != want {
		t.Errorf("JoinItems() = %q, want %q", got, want)
	}
}

func TestJoinItemsFour(t *testing.T) {
	items := []*Item{
		NewItem("Key", "A"),
		NewItem("Sword", "A"),
		NewItem("Orb", "An"),
		NewItem("Beamer", "A"),
	}
	want := "You can see a key, a sword, an orb and a beamer."
	if got := JoinItems("You can see", items); got != want {
		t.Errorf("JoinItems() = %q, want %q", got, want)
	}
}

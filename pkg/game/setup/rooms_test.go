package setup

import (
	"strings"
	"testing"

	"zuul/pkg/engine/world"
	"zuul/pkg/game/state"
)

// campus resolves the five rooms of the fixed map through the graph,
// starting from the session's current room.
type campus struct {
	outside, theater, pub, lab, office *world.Room
}

func buildCampus(t *testing.T) (*state.Game, campus) {
	t.Helper()
	g := BuildWorld()

	c := campus{outside: g.CurrentRoom}
	c.theater = c.outside.GetExit("east")
	c.lab = c.outside.GetExit("south")
	c.pub = c.outside.GetExit("west")
	if c.theater == nil || c.lab == nil || c.pub == nil {
		t.Fatal("outside is missing one of its east/south/west exits")
	}
	c.office = c.lab.GetExit("east")
	if c.office == nil {
		t.Fatal("lab is missing its east exit")
	}
	return g, c
}

func TestBuildWorldStartState(t *testing.T) {
	g, c := buildCampus(t)

	if g.Day != 1 || g.Hour != 1 {
		t.Errorf("start clock = day %d hour %d, want day 1 hour 1", g.Day, g.Hour)
	}
	if g.Finished {
		t.Error("Finished = true at start, want false")
	}
	if len(g.Inventory) != 0 {
		t.Errorf("start inventory has %d items, want 0", len(g.Inventory))
	}
	if g.BeamRoom != c.outside {
		t.Error("BeamRoom != outside at start")
	}
	if g.Outside != c.outside {
		t.Error("Outside != outside at start")
	}
	if !strings.HasPrefix(c.outside.ShortDescription(), "outside the main entrance") {
		t.Errorf("start room description = %q, want the university entrance", c.outside.ShortDescription())
	}
}

func TestBuildWorldExitWiring(t *testing.T) {
	_, c := buildCampus(t)

	if got := c.theater.GetExit("west"); got != c.outside {
		t.Error("theater west exit does not lead back outside")
	}
	if got := c.lab.GetExit("north"); got != c.outside {
		t.Error("lab north exit does not lead back outside")
	}
	if got := c.office.GetExit("west"); got != c.lab {
		t.Error("office west exit does not lead back to the lab")
	}
	if got := len(c.pub.ExitDirections()); got != 0 {
		t.Errorf("pub has %d exits, want 0", got)
	}
}

func TestBuildWorldLockState(t *testing.T) {
	_, c := buildCampus(t)

	if !c.pub.Locked() {
		t.Error("pub is unlocked at start, want locked")
	}
	for name, room := range map[string]*world.Room{
		"outside": c.outside, "theater": c.theater, "lab": c.lab, "office": c.office,
	} {
		if room.Locked() {
			t.Errorf("%s is locked at start, want unlocked", name)
		}
	}
}

func TestBuildWorldItemSeeding(t *testing.T) {
	_, c := buildCampus(t)

	if c.theater.GetItem("Key") == nil {
		t.Error("theater is missing the Key")
	}
	if c.pub.GetItem("Beamer") == nil {
		t.Error("pub is missing the Beamer")
	}
	if c.lab.GetItem("Sword") == nil || c.lab.GetItem("Orb") == nil {
		t.Error("lab is missing the Sword or the Orb")
	}
	if got := len(c.outside.Items()); got != 0 {
		t.Errorf("outside has %d items, want 0", got)
	}
	if got := len(c.office.Items()); got != 0 {
		t.Errorf("office has %d items, want 0", got)
	}

	if orb := c.lab.GetItem("Orb"); orb != nil && orb.Prefix != "An" {
		t.Errorf("Orb prefix = %q, want %q", orb.Prefix, "An")
	}
}

func TestReachableRoomsCoversWholeMap(t *testing.T) {
	_, c := buildCampus(t)

	rooms := ReachableRooms(c.outside)
	if got := len(rooms); got != 5 {
		t.Errorf("len(ReachableRooms(outside)) = %d, want 5", got)
	}
}

func TestReachableRoomsFromDeadEnd(t *testing.T) {
	_, c := buildCampus(t)

	// The pub has no exits, so only itself is reachable.
	rooms := ReachableRooms(c.pub)
	if got := len(rooms); got != 1 {
		t.Errorf("len(ReachableRooms(pub)) = %d, want 1", got)
	}
}

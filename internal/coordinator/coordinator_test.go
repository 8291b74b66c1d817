package coordinator

import (
	"testing"

	"github.com/rawblock/riecoin-sextuplet-engine/internal/sextuplet"
)

func TestPartitionCoversWindowExactly(t *testing.T) {
	c := &SearchCoordinator{NumTesterWorkers: 3}
	sections := c.partition()

	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}
	if sections[0].lo != 0 {
		t.Fatalf("first section must start at 0, got %d", sections[0].lo)
	}
	if sections[len(sections)-1].hi != uint64(sextuplet.SieveWindow) {
		t.Fatalf("last section must end at SieveWindow=%d, got %d", sextuplet.SieveWindow, sections[len(sections)-1].hi)
	}
	for i := 1; i < len(sections); i++ {
		if sections[i].lo != sections[i-1].hi {
			t.Fatalf("sections not contiguous at %d: prev.hi=%d, cur.lo=%d", i, sections[i-1].hi, sections[i].lo)
		}
	}
}

func TestPartitionDefaultsToOneSection(t *testing.T) {
	c := &SearchCoordinator{NumTesterWorkers: 0}
	sections := c.partition()
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].lo != 0 || sections[0].hi != uint64(sextuplet.SieveWindow) {
		t.Fatalf("single section must cover the full window, got [%d,%d)", sections[0].lo, sections[0].hi)
	}
}

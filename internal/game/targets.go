package game

import (
	"math/rand"

	"github.com/vovakirdan/knife-hit/internal/core"
)

// Target is a bonus apple placed at a fixed board angle. It becomes
// invisible exactly once when sliced, but stays in the collection so the
// renderer can play an exit effect.
type Target struct {
	ID      int
	Angle   core.Angle
	Visible bool
}

// targetField holds the apples for the current round.
type targetField struct {
	targets []Target
}

// generate fills the field with count apples evenly distributed around
// the board from a random offset.
func (f *targetField) generate(rng *rand.Rand, count int) {
	angles := core.DistributedAngles(rng, count)
	f.targets = make([]Target, len(angles))
	for i, a := range angles {
		f.targets[i] = Target{ID: i, Angle: a, Visible: true}
	}
}

// resolveHits marks every visible apple strictly closer than gap degrees
// to hitAngle as sliced and returns their angles. A single knife may
// slice several apples if they sit close together; that is intentional.
func (f *targetField) resolveHits(hitAngle core.Angle, gap float64) []core.Angle {
	var hit []core.Angle
	for i := range f.targets {
		t := &f.targets[i]
		if !t.Visible {
			continue
		}
		if core.AngularDistance(t.Angle, hitAngle) < gap {
			t.Visible = false
			hit = append(hit, t.Angle)
		}
	}
	return hit
}

// visibleCount returns the number of apples not yet sliced.
func (f *targetField) visibleCount() int {
	n := 0
	for _, t := range f.targets {
		if t.Visible {
			n++
		}
	}
	return n
}

package game

import (
	"github.com/vovakirdan/knife-hit/internal/core"
)

// collisionLedger holds the angles of knives stuck during the current
// round. Append-only for the duration of a round; cleared at round start.
type collisionLedger struct {
	angles []core.Angle
}

// wouldCollide reports whether a candidate angle lands strictly closer
// than gap degrees to any stuck knife.
func (l *collisionLedger) wouldCollide(candidate core.Angle, gap float64) bool {
	for _, a := range l.angles {
		if core.AngularDistance(a, candidate) < gap {
			return true
		}
	}
	return false
}

// accept records a knife angle. The caller must have already checked
// wouldCollide; this is not re-validated here.
func (l *collisionLedger) accept(angle core.Angle) {
	l.angles = append(l.angles, angle)
}

// clear empties the ledger for a new round.
func (l *collisionLedger) clear() {
	l.angles = l.angles[:0]
}

// count returns the number of stuck knives.
func (l *collisionLedger) count() int {
	return len(l.angles)
}

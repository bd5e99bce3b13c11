// Package depth implements the identity-depth resolver: the strongest
// ladder rung at which a set of items' identifiers collide-free and
// fully cover the identifiable population, never upgrading past a
// caller-supplied floor (spec §4.5).
package depth

import (
	"github.com/feedlattice/classify/internal/identifier"
	"github.com/feedlattice/classify/internal/ladder"
)

// Compute resolves the depth over itemsHashes. currentFloor, when
// non-nil, must be a Valid rung — callers are expected to have validated
// any caller-supplied depth before reaching here (spec §7: an
// unrecognized rung is the engine's one failure, reported at the public
// API boundary, not here).
func Compute(itemsHashes []identifier.HashSource, currentFloor *ladder.Rung) ladder.Rung {
	floor := ladder.Strongest
	if currentFloor != nil {
		floor = *currentFloor
	}

	nStar := 0
	for _, h := range itemsHashes {
		if _, ok := identifier.Compose(h, ladder.Weakest); ok {
			nStar++
		}
	}
	if nStar == 0 {
		if currentFloor != nil {
			return *currentFloor
		}
		return ladder.Weakest
	}

	for _, rung := range ladder.Ladder[floor.Index():] {
		seen := make(map[string]struct{}, len(itemsHashes))
		collision := false
		for _, h := range itemsHashes {
			id, ok := identifier.Compose(h, rung)
			if !ok {
				continue
			}
			key := string(id)
			if _, dup := seen[key]; dup {
				collision = true
				break
			}
			seen[key] = struct{}{}
		}
		if !collision && len(seen) >= nStar {
			return rung
		}
	}

	return ladder.Weakest
}

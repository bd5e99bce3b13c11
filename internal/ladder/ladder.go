// Package ladder holds the declarative metadata that drives the rest of
// the engine: the hash registry (per-slot weight, strength, matchability,
// identifier use) and the identity ladder derived from it. Nothing here
// is behavior — it is the one table everything else consults, so that
// changing a weight or the 0.95 threshold's neighbor never requires
// touching an algorithm.
package ladder

import "github.com/feedlattice/classify/internal/model"

// Rung is one level of the identity ladder, ordered strongest to weakest.
type Rung int

const (
	RungGuid Rung = iota
	RungGuidFragment
	RungLink
	RungLinkFragment
	RungEnclosure
	RungTitle

	numRungs = int(RungTitle) + 1
)

// Ladder is the fixed rung order, strongest first.
var Ladder = []Rung{RungGuid, RungGuidFragment, RungLink, RungLinkFragment, RungEnclosure, RungTitle}

// Weakest is the last rung in the ladder (title).
const Weakest = RungTitle

// Strongest is the first rung in the ladder (guid).
const Strongest = RungGuid

func (r Rung) String() string {
	switch r {
	case RungGuid:
		return "guid"
	case RungGuidFragment:
		return "guidFragment"
	case RungLink:
		return "link"
	case RungLinkFragment:
		return "linkFragment"
	case RungEnclosure:
		return "enclosure"
	case RungTitle:
		return "title"
	default:
		return "unknown"
	}
}

// Valid reports whether r is one of the six declared rungs.
func (r Rung) Valid() bool {
	return r >= RungGuid && r <= RungTitle
}

// Index returns r's position in Ladder (0 = strongest). Callers must only
// invoke this with a Valid rung.
func (r Rung) Index() int {
	return int(r)
}

// Slot returns the hash slot this rung keys on.
func (r Rung) Slot() model.Slot {
	switch r {
	case RungGuid:
		return model.SlotGuid
	case RungGuidFragment:
		return model.SlotGuidFragment
	case RungLink:
		return model.SlotLink
	case RungLinkFragment:
		return model.SlotLinkFragment
	case RungEnclosure:
		return model.SlotEnclosure
	case RungTitle:
		return model.SlotTitle
	default:
		return model.SlotTitle
	}
}

// ParseRung parses a rung by its String() name. Used by config validation
// and depth resolution (the config's or batch file's depth value).
func ParseRung(s string) (Rung, bool) {
	for _, r := range Ladder {
		if r.String() == s {
			return r, true
		}
	}
	return 0, false
}

// Prefix returns the ladder prefix up to and including rung.
func Prefix(rung Rung) []Rung {
	return Ladder[:rung.Index()+1]
}

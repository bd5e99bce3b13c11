// Package model defines the core entities the classification engine
// operates on: raw incoming items, their computed hashes, previously
// recorded items, and the identifiers derived from them.
package model

// Slot identifies one of the eight hash-bearing fields an item can carry.
// The order below is the declaration order used throughout the registry
// and is not itself the ladder order (see package ladder for that).
type Slot int

const (
	SlotGuid Slot = iota
	SlotGuidFragment
	SlotLink
	SlotLinkFragment
	SlotEnclosure
	SlotTitle
	SlotContent
	SlotSummary

	numSlots = int(SlotSummary) + 1
)

// String returns the slot's declaration name, for diagnostics.
func (s Slot) String() string {
	switch s {
	case SlotGuid:
		return "guid"
	case SlotGuidFragment:
		return "guidFragment"
	case SlotLink:
		return "link"
	case SlotLinkFragment:
		return "linkFragment"
	case SlotEnclosure:
		return "enclosure"
	case SlotTitle:
		return "title"
	case SlotContent:
		return "content"
	case SlotSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Tag is the short wire-format tag used in composed identifiers and trace
// output (g, gf, l, lf, e, t, c, s).
func (s Slot) Tag() string {
	switch s {
	case SlotGuid:
		return "g"
	case SlotGuidFragment:
		return "gf"
	case SlotLink:
		return "l"
	case SlotLinkFragment:
		return "lf"
	case SlotEnclosure:
		return "e"
	case SlotTitle:
		return "t"
	case SlotContent:
		return "c"
	case SlotSummary:
		return "s"
	default:
		return "?"
	}
}

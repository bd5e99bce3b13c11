// Package candidates finds existing items that share a matchable hash
// with an incoming item (spec §4.7), and provides an optional indexed
// form of the same computation for repeated lookups over one batch.
package candidates

import "github.com/feedlattice/classify/internal/model"

// matchableSlotsFor returns the matchable slots to consider for hashes:
// guid, link, enclosure always; title only when hashes has no strong
// hash, to avoid dragging unrelated title-sharing items into tiers where
// title should not be trusted.
func matchableSlotsFor(hashes model.ItemHashes) []model.Slot {
	slots := []model.Slot{model.SlotGuid, model.SlotLink, model.SlotEnclosure}
	if !hashes.HasStrongHash() {
		slots = append(slots, model.SlotTitle)
	}
	return slots
}

// Find returns every existing item sharing the value of at least one
// matchable slot with hashes, in existing's original order, via a plain
// linear scan. Equivalent to (*Index).Find but without any precomputed
// index — correct for any input size, just not the fast path.
func Find(hashes model.ItemHashes, existing []model.MatchableItem) []model.MatchableItem {
	slots := matchableSlotsFor(hashes)

	var out []model.MatchableItem
	for _, candidate := range existing {
		if sharesAnySlot(hashes, candidate, slots) {
			out = append(out, candidate)
		}
	}
	return out
}

func sharesAnySlot(hashes model.ItemHashes, candidate model.MatchableItem, slots []model.Slot) bool {
	for _, slot := range slots {
		if model.HashesEqual(hashes.Get(slot), candidate.Get(slot)) {
			return true
		}
	}
	return false
}

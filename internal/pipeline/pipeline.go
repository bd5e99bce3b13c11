// Package pipeline implements the three pure pre-classify stages that
// turn a batch of raw incoming items into deduplicated, identifiable
// items (spec §4.10): hash everything, drop what has no identifier at
// the target rung, then keep one best-scoring copy per identifier.
package pipeline

import (
	"github.com/feedlattice/classify/internal/hashing"
	"github.com/feedlattice/classify/internal/identifier"
	"github.com/feedlattice/classify/internal/ladder"
	"github.com/feedlattice/classify/internal/model"
)

// Hashed pairs a raw incoming item with its computed hashes.
type Hashed struct {
	Item   model.HashableItem
	Hashes model.ItemHashes
}

// Identified is a Hashed item that composed a non-absent identifier at
// some rung.
type Identified struct {
	Hashed
	Identifier model.Identifier
}

// ComputeAllHashes is pipeline stage 1: zip each item with its hashes.
func ComputeAllHashes(items []model.HashableItem, h *hashing.Hasher) []Hashed {
	out := make([]Hashed, len(items))
	for i, item := range items {
		out[i] = Hashed{Item: item, Hashes: h.ComputeHashes(item)}
	}
	return out
}

// FilterWithIdentifier is pipeline stage 2: compose the identifier at
// rung for each Hashed item, dropping those with no identifier.
func FilterWithIdentifier(items []Hashed, rung ladder.Rung) []Identified {
	out := make([]Identified, 0, len(items))
	for _, h := range items {
		id, ok := identifier.Compose(h.Hashes, rung)
		if !ok {
			continue
		}
		out = append(out, Identified{Hashed: h, Identifier: id})
	}
	return out
}

// scoreItem sums the registry weight of every populated slot, the tie
// breaker pipeline stage 3 ranks candidates by.
func scoreItem(hashes model.ItemHashes) int {
	score := 0
	for _, slot := range []model.Slot{
		model.SlotGuid, model.SlotGuidFragment, model.SlotLink, model.SlotLinkFragment,
		model.SlotEnclosure, model.SlotTitle, model.SlotContent, model.SlotSummary,
	} {
		if model.Present(hashes.Get(slot)) {
			score += ladder.Weight(slot)
		}
	}
	return score
}

// DeduplicateByIdentifier is pipeline stage 3: among items sharing the
// same identifier, keep the highest-scoring one, the first-encountered on
// a tie. Output preserves the first occurrence's relative order among
// surviving identifiers, matching spec §9's "classification outputs are
// emitted in the order of surviving deduped incoming items".
func DeduplicateByIdentifier(items []Identified) []Identified {
	best := make(map[model.Identifier]int, len(items))
	order := make([]model.Identifier, 0, len(items))

	for i, it := range items {
		idx, seen := best[it.Identifier]
		if !seen {
			best[it.Identifier] = i
			order = append(order, it.Identifier)
			continue
		}
		if scoreItem(it.Hashes) > scoreItem(items[idx].Hashes) {
			best[it.Identifier] = i
		}
	}

	out := make([]Identified, 0, len(order))
	for _, id := range order {
		out = append(out, items[best[id]])
	}
	return out
}

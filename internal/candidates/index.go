package candidates

import (
	"github.com/bits-and-blooms/bloom/v3"

	"github.com/feedlattice/classify/internal/model"
)

// Index is the optimization spec §5 explicitly allows: "a hash-index over
// matchable slots of existing items may be used as an optimization; it
// must not change observable behavior." For each matchable slot it keeps
// a bloom filter (the fast "definitely absent" check) and an exact
// map from hash value to existing-item indices (the source of truth,
// confirming or rejecting what the bloom filter merely suspects) — the
// same two-tier shape the teacher's own Deduplicator uses for URL
// dedup: a bloom pre-check backed by an exact map so false positives
// never leak into the result.
type Index struct {
	existing []model.MatchableItem
	bloom    map[model.Slot]*bloom.BloomFilter
	exact    map[model.Slot]map[string][]int
}

// Build constructs an Index over existing. Safe to reuse across every
// incoming item in a batch — building it once amortizes the per-item
// O(M) scan that Find would otherwise repeat.
func Build(existing []model.MatchableItem) *Index {
	idx := &Index{
		existing: existing,
		bloom:    make(map[model.Slot]*bloom.BloomFilter, 4),
		exact:    make(map[model.Slot]map[string][]int, 4),
	}

	estimate := uint(len(existing))
	if estimate < 1 {
		estimate = 1
	}

	for _, slot := range []model.Slot{model.SlotGuid, model.SlotLink, model.SlotEnclosure, model.SlotTitle} {
		idx.bloom[slot] = bloom.NewWithEstimates(estimate, 0.001)
		idx.exact[slot] = make(map[string][]int)
	}

	for i, item := range existing {
		for _, slot := range []model.Slot{model.SlotGuid, model.SlotLink, model.SlotEnclosure, model.SlotTitle} {
			val := item.Get(slot)
			if val == nil || *val == "" {
				continue
			}
			idx.bloom[slot].AddString(*val)
			idx.exact[slot][*val] = append(idx.exact[slot][*val], i)
		}
	}

	return idx
}

// Find returns every existing item sharing a matchable slot with hashes,
// in existing's original order, using the bloom pre-check to skip slots
// that plainly have no match before consulting the exact index.
func (idx *Index) Find(hashes model.ItemHashes) []model.MatchableItem {
	slots := matchableSlotsFor(hashes)

	seen := make(map[int]struct{})
	var order []int
	for _, slot := range slots {
		val := hashes.Get(slot)
		if val == nil || *val == "" {
			continue
		}
		filter, ok := idx.bloom[slot]
		if !ok || !filter.TestString(*val) {
			continue
		}
		for _, i := range idx.exact[slot][*val] {
			if _, dup := seen[i]; dup {
				continue
			}
			seen[i] = struct{}{}
			order = append(order, i)
		}
	}

	if len(order) == 0 {
		return nil
	}

	// Restore existing's original order rather than first-slot-matched
	// order, so Index.Find is behaviorally identical to Find.
	out := make([]model.MatchableItem, 0, len(order))
	inOrder := make(map[int]struct{}, len(order))
	for _, i := range order {
		inOrder[i] = struct{}{}
	}
	for i, item := range idx.existing {
		if _, ok := inOrder[i]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Package match implements the priority-tiered match selector (spec
// §4.9): guid, link, enclosure and title tiers, ordered by the channel's
// link-uniqueness rate, each gated by candidate gates and — for guid and
// link — disambiguated when more than one candidate survives gating.
package match

import (
	"github.com/feedlattice/classify/internal/gates"
	"github.com/feedlattice/classify/internal/model"
	"github.com/feedlattice/classify/internal/tracing"
)

// highUniquenessThreshold is the one hard-coded policy threshold spec §6
// calls out by name: at or above it, link is trusted ahead of enclosure.
const highUniquenessThreshold = 0.95

type tier struct {
	source         model.MatchSource
	slot           model.Slot
	disambiguation []model.Slot
}

func buildTiers(hashes model.ItemHashes, profile model.ChannelProfile) []tier {
	var tiers []tier

	if model.Present(hashes.Guid) {
		tiers = append(tiers, tier{
			source:         model.SourceGuid,
			slot:           model.SlotGuid,
			disambiguation: []model.Slot{model.SlotEnclosure, model.SlotGuidFragment, model.SlotLink},
		})
	}

	high := profile.LinkUniquenessRate >= highUniquenessThreshold
	if high {
		tiers = append(tiers, tier{source: model.SourceLink, slot: model.SlotLink, disambiguation: []model.Slot{model.SlotLinkFragment}})
		tiers = append(tiers, tier{source: model.SourceEnclosure, slot: model.SlotEnclosure})
	} else {
		tiers = append(tiers, tier{source: model.SourceEnclosure, slot: model.SlotEnclosure})
		linkOnly := model.Present(hashes.Link) && !model.Present(hashes.Guid) && !model.Present(hashes.Enclosure)
		if linkOnly {
			tiers = append(tiers, tier{source: model.SourceLink, slot: model.SlotLink, disambiguation: []model.Slot{model.SlotLinkFragment}})
		}
	}

	if !hashes.HasStrongHash() {
		tiers = append(tiers, tier{source: model.SourceTitle, slot: model.SlotTitle})
	}

	return tiers
}

func filterBySlot(candidates []model.MatchableItem, incoming model.ItemHashes, slot model.Slot) []model.MatchableItem {
	out := make([]model.MatchableItem, 0, len(candidates))
	for _, c := range candidates {
		if model.HashesEqual(incoming.Get(slot), c.Get(slot)) {
			out = append(out, c)
		}
	}
	return out
}

// Select runs the priority-tiered match over candidates and returns at
// most one match. phase tags every emitted trace event ("prematch" or
// "classify"); sink may be tracing.Noop.
func Select(
	incoming model.ItemHashes,
	candidates []model.MatchableItem,
	profile model.ChannelProfile,
	candidateGates []gates.Candidate,
	phase string,
	sink tracing.Sink,
) *model.Match {
	if sink == nil {
		sink = tracing.Noop
	}

	for _, t := range buildTiers(incoming, profile) {
		slotFiltered := filterBySlot(candidates, incoming, t.slot)
		sink(tracing.CandidatesFound{Phase: phase, Source: t.source, Count: len(slotFiltered)})
		if len(slotFiltered) == 0 {
			continue
		}

		gated, gateEvents := gates.FilterCandidates(slotFiltered, incoming, t.source, profile, candidateGates)
		for _, ev := range gateEvents {
			sink(tracing.CandidatesGated{
				Phase: phase, Source: t.source, GateName: ev.GateName,
				Reason: ev.Reason, Before: ev.Before, After: ev.After,
			})
		}
		if len(gated) == 0 {
			continue
		}
		if len(gated) == 1 {
			sink(tracing.MatchSelected{Phase: phase, Source: t.source, ExistingItemID: gated[0].ID})
			return &model.Match{Existing: gated[0], Source: t.source}
		}

		for _, dslot := range t.disambiguation {
			narrowed := filterBySlot(gated, incoming, dslot)
			if len(narrowed) == 1 {
				sink(tracing.MatchSelected{Phase: phase, Source: t.source, ExistingItemID: narrowed[0].ID})
				return &model.Match{Existing: narrowed[0], Source: t.source}
			}
		}

		sink(tracing.MatchAmbiguous{Phase: phase, Source: t.source, Count: len(gated)})
		return nil
	}

	sink(tracing.MatchNone{Phase: phase})
	return nil
}

// Package gates implements the engine's two pluggable predicate kinds —
// candidate gates, which filter tier inputs, and update gates, which
// decide whether a matched update is emitted — plus the two built-ins
// (spec §4.8). Gates are small records containing a name, an
// applicability set, and a pure decide function: no dynamic dispatch,
// just slices of closures applied in order.
package gates

import (
	"github.com/feedlattice/classify/internal/ladder"
	"github.com/feedlattice/classify/internal/model"
)

// SourceSet is a match-source applicability predicate: either "all"
// sources, or an explicit set.
type SourceSet struct {
	all     bool
	sources map[model.MatchSource]bool
}

// AllSources matches every tier.
func AllSources() SourceSet {
	return SourceSet{all: true}
}

// Sources matches only the listed tiers.
func Sources(sources ...model.MatchSource) SourceSet {
	set := make(map[model.MatchSource]bool, len(sources))
	for _, s := range sources {
		set[s] = true
	}
	return SourceSet{sources: set}
}

// Contains reports whether source is in the set.
func (ss SourceSet) Contains(source model.MatchSource) bool {
	if ss.all {
		return true
	}
	return ss.sources[source]
}

// Decision is a candidate gate's verdict: allow, or deny with a reason.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow is the permissive decision.
func Allow() Decision { return Decision{Allowed: true} }

// Deny is the blocking decision, with a human-readable reason for trace
// output.
func Deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// CandidateContext is what a candidate gate's Decide function sees.
type CandidateContext struct {
	Source    model.MatchSource
	Incoming  model.ItemHashes
	Candidate model.MatchableItem
	Profile   model.ChannelProfile
}

// Candidate is a predicate that can remove an existing item from a match
// tier's candidate list before selection runs.
type Candidate struct {
	Name      string
	AppliesTo SourceSet
	Decide    func(CandidateContext) Decision
}

// UpdateContext is what an update gate's ShouldEmit function sees.
type UpdateContext struct {
	Existing model.MatchableItem
	Incoming model.ItemHashes
	Source   model.MatchSource
}

// Update is a predicate deciding whether a matched incoming item should
// be emitted as an UpdateAction (true) or silently skipped (false).
type Update struct {
	Name       string
	ShouldEmit func(UpdateContext) bool
}

// TraceEvent records one gate's effect on a candidate list, for
// candidates.gated trace events.
type TraceEvent struct {
	GateName string
	Reason   string
	Before   int
	After    int
}

// FilterCandidates runs candidates through gates in order, built-ins
// first by convention (callers pass built-ins before policy gates), and
// returns the survivors plus one TraceEvent per gate that actually
// removed something.
func FilterCandidates(
	candidates []model.MatchableItem,
	incoming model.ItemHashes,
	source model.MatchSource,
	profile model.ChannelProfile,
	gates []Candidate,
) ([]model.MatchableItem, []TraceEvent) {
	result := candidates
	var events []TraceEvent

	for _, gate := range gates {
		if !gate.AppliesTo.Contains(source) {
			continue
		}
		before := len(result)
		kept := make([]model.MatchableItem, 0, before)
		reason := ""
		for _, c := range result {
			d := gate.Decide(CandidateContext{
				Source:    source,
				Incoming:  incoming,
				Candidate: c,
				Profile:   profile,
			})
			if d.Allowed {
				kept = append(kept, c)
			} else if reason == "" {
				reason = d.Reason
			}
		}
		result = kept
		if len(result) != before {
			events = append(events, TraceEvent{GateName: gate.Name, Reason: reason, Before: before, After: len(result)})
		}
	}

	return result, events
}

// ShouldEmitUpdate reports whether every update gate agrees the match
// should be emitted as an update.
func ShouldEmitUpdate(ctx UpdateContext, gates []Update) bool {
	for _, gate := range gates {
		if !gate.ShouldEmit(ctx) {
			return false
		}
	}
	return true
}

// slotDiffers treats absence on one side as equal to absence on the
// other, and different only when exactly one side is present or both are
// present with different values.
func slotDiffers(a, b *string) bool {
	aPresent := a != nil && *a != ""
	bPresent := b != nil && *b != ""
	if aPresent != bPresent {
		return true
	}
	if !aPresent {
		return false
	}
	return *a != *b
}

// EnclosureConflictGate is the built-in candidate gate: it denies a guid
// or link match when both sides have a populated enclosure hash and they
// differ — the enclosure is treated as a stronger identity signal than
// the guid or link that nominated the candidate.
var EnclosureConflictGate = Candidate{
	Name:      "enclosureConflict",
	AppliesTo: Sources(model.SourceGuid, model.SourceLink),
	Decide: func(ctx CandidateContext) Decision {
		incoming := ctx.Incoming.Get(model.SlotEnclosure)
		existing := ctx.Candidate.Get(model.SlotEnclosure)
		if model.Present(incoming) && model.Present(existing) && *incoming != *existing {
			return Deny("enclosure mismatch")
		}
		return Allow()
	},
}

// ContentChangeGate is the built-in update gate: it emits an update only
// when some content-bearing slot actually changed.
var ContentChangeGate = Update{
	Name: "contentChange",
	ShouldEmit: func(ctx UpdateContext) bool {
		for _, slot := range ladder.ContentBearingSlots() {
			if slotDiffers(ctx.Incoming.Get(slot), ctx.Existing.Get(slot)) {
				return true
			}
		}
		return false
	},
}

// Package classifyengine is the public API of the feed-item identity
// classifier (spec §6). The core it wraps is pure and single-invocation:
// one call, one input, one output, no I/O, no shared mutable state
// (spec §5). Everything ambient — config loading, logging, storage,
// transport — lives outside this package.
package classifyengine

import (
	"github.com/feedlattice/classify/internal/candidates"
	"github.com/feedlattice/classify/internal/canonical"
	"github.com/feedlattice/classify/internal/classifyerr"
	"github.com/feedlattice/classify/internal/depth"
	"github.com/feedlattice/classify/internal/gates"
	"github.com/feedlattice/classify/internal/hashing"
	"github.com/feedlattice/classify/internal/identifier"
	"github.com/feedlattice/classify/internal/ladder"
	"github.com/feedlattice/classify/internal/match"
	"github.com/feedlattice/classify/internal/model"
	"github.com/feedlattice/classify/internal/pipeline"
	"github.com/feedlattice/classify/internal/profile"
	"github.com/feedlattice/classify/internal/tracing"
)

// Re-exported types so callers never need to import internal packages.
type (
	Rung           = ladder.Rung
	Item           = model.HashableItem
	Enclosure      = model.Enclosure
	ItemHashes     = model.ItemHashes
	ExistingItem   = model.MatchableItem
	Identifier     = model.Identifier
	IdentifierHash = model.IdentifierHash
	MatchSource    = model.MatchSource
	InsertAction   = model.InsertAction
	UpdateAction   = model.UpdateAction
	Event          = tracing.Event
	Sink           = tracing.Sink
	CandidateGate  = gates.Candidate
	UpdateGate     = gates.Update
	Canonicalizer  = canonical.Canonicalizer
)

// Ladder is the fixed rung order, strongest first.
var Ladder = ladder.Ladder

// The six identity rungs, strongest to weakest.
const (
	RungGuid         = ladder.RungGuid
	RungGuidFragment = ladder.RungGuidFragment
	RungLink         = ladder.RungLink
	RungLinkFragment = ladder.RungLinkFragment
	RungEnclosure    = ladder.RungEnclosure
	RungTitle        = ladder.RungTitle

	Weakest   = ladder.Weakest
	Strongest = ladder.Strongest
)

// The match-source tags a result's IdentifierSource can carry.
const (
	SourceNone      = model.SourceNone
	SourceGuid      = model.SourceGuid
	SourceLink      = model.SourceLink
	SourceEnclosure = model.SourceEnclosure
	SourceTitle     = model.SourceTitle
)

// Policy carries the caller-supplied knobs spec §4.11 allows: additional
// gates run after the built-ins, and an optional trace sink. A nil
// Policy behaves as an empty one.
type Policy struct {
	CandidateGates []CandidateGate
	UpdateGates    []UpdateGate
	Trace          Sink
	Canonicalizer  Canonicalizer
}

// Result is classify's output (spec §4.11 step 8).
type Result struct {
	Inserts       []InsertAction
	Updates       []UpdateAction
	IdentityDepth Rung
}

func (p *Policy) sink() tracing.Sink {
	if p == nil || p.Trace == nil {
		return tracing.Noop
	}
	return p.Trace
}

func (p *Policy) candidateGates() []gates.Candidate {
	built := []gates.Candidate{gates.EnclosureConflictGate}
	if p == nil {
		return built
	}
	return append(built, p.CandidateGates...)
}

func (p *Policy) updateGates() []gates.Update {
	built := []gates.Update{gates.ContentChangeGate}
	if p == nil {
		return built
	}
	return append(built, p.UpdateGates...)
}

func (p *Policy) canonicalizer() canonical.Canonicalizer {
	if p == nil || p.Canonicalizer == nil {
		return canonical.Default
	}
	return p.Canonicalizer
}

// ComputeItemHashes computes the eight per-slot hashes for one raw item
// (spec §4.3), using the default canonicalizer.
func ComputeItemHashes(item Item) ItemHashes {
	return hashing.New(canonical.Default).ComputeHashes(item)
}

// ComposeIdentifier builds the ladder-prefix identity key for hashes at
// rung (spec §4.4). Returns false when every slot in the prefix is
// absent.
func ComposeIdentifier(hashes ItemHashes, rung Rung) (Identifier, bool) {
	return identifier.Compose(hashes, rung)
}

// ComputeDepth resolves the identity depth over itemsHashes, never
// upgrading past currentFloor when supplied (spec §4.5).
func ComputeDepth(itemsHashes []identifier.HashSource, currentFloor *Rung) Rung {
	return depth.Compute(itemsHashes, currentFloor)
}

// ParseRung parses a rung by its String() name (e.g. "guid", "link"),
// for callers reading a depth from config or batch input.
func ParseRung(s string) (Rung, bool) {
	return ladder.ParseRung(s)
}

// Classify runs the full pipeline: pre-match, depth resolution,
// deduplication, and per-item classification (spec §4.11).
//
// inputDepth, when non-nil, must be a Valid rung; an invalid rung is the
// core's one failure (spec §7) and is reported as a *classifyerr.Error
// of Kind InvalidRung rather than attempted.
func Classify(newItems []Item, existingItems []ExistingItem, inputDepth *Rung, policy *Policy) (Result, error) {
	if inputDepth != nil && !inputDepth.Valid() {
		return Result{}, classifyerr.NewInvalidRung("Classify", inputDepth.String())
	}

	sink := policy.sink()
	candidateGates := policy.candidateGates()
	updateGates := policy.updateGates()
	h := hashing.New(policy.canonicalizer())

	// Step 1: hash every incoming item.
	hashed := pipeline.ComputeAllHashes(newItems, h)

	// Step 2: channel profile from raw, pre-dedup link hashes.
	chanProfile := profile.Compute(existingLinkHashes(existingItems), batchLinkHashes(hashed))

	idx := candidates.Build(existingItems)

	// Step 3: pre-match phase.
	resolved := make(map[string]bool, len(existingItems))
	for _, hi := range hashed {
		cand := idx.Find(hi.Hashes)
		m := match.Select(hi.Hashes, cand, chanProfile, candidateGates, tracing.PhasePrematch, sink)
		if m == nil {
			continue
		}
		if m.Source != model.SourceLink {
			resolved[m.Existing.ID] = true
			continue
		}
		incomingMax, incomingOK := identifier.Compose(hi.Hashes, ladder.Weakest)
		candidateMax, candidateOK := identifier.Compose(m.Existing, ladder.Weakest)
		if incomingOK && candidateOK && incomingMax == candidateMax {
			resolved[m.Existing.ID] = true
		}
	}

	// Step 4: build the depth-resolution set.
	depthSet := buildDepthResolutionSet(existingItems, resolved, hashed)

	// Step 5: resolve depth.
	resolvedDepth := depth.Compute(depthSet, inputDepth)
	changed := inputDepth != nil && resolvedDepth != *inputDepth
	sink(tracing.DepthResolved{Depth: resolvedDepth, Changed: changed})

	// Step 6: key and dedup incoming items at the resolved depth.
	identified := pipeline.FilterWithIdentifier(hashed, resolvedDepth)
	deduped := pipeline.DeduplicateByIdentifier(identified)

	// Step 7: classify phase.
	result := Result{IdentityDepth: resolvedDepth}
	for _, it := range deduped {
		identifierHash := identifier.Hash(it.Identifier)

		cand := idx.Find(it.Hashes)
		filtered := depthFilter(cand, it.Identifier, resolvedDepth)
		if len(filtered) != len(cand) {
			sink(tracing.CandidatesDepthFiltered{Before: len(cand), After: len(filtered), IdentityDepth: resolvedDepth})
		}

		m := match.Select(it.Hashes, filtered, chanProfile, candidateGates, tracing.PhaseClassify, sink)
		if m == nil {
			result.Inserts = append(result.Inserts, model.InsertAction{
				Item: it.Item, Hashes: it.Hashes, IdentifierHash: identifierHash,
			})
			sink(tracing.ClassifyInsert{IdentifierHash: identifierHash})
			continue
		}

		emit := gates.ShouldEmitUpdate(gates.UpdateContext{
			Existing: m.Existing, Incoming: it.Hashes, Source: m.Source,
		}, updateGates)
		if !emit {
			sink(tracing.ClassifySkip{ExistingItemID: m.Existing.ID})
			continue
		}

		result.Updates = append(result.Updates, model.UpdateAction{
			Item: it.Item, Hashes: it.Hashes, IdentifierHash: identifierHash,
			ExistingItemID: m.Existing.ID, IdentifierSource: m.Source,
		})
		sink(tracing.ClassifyUpdate{IdentifierHash: identifierHash, ExistingItemID: m.Existing.ID})
	}

	return result, nil
}

func existingLinkHashes(existing []ExistingItem) []string {
	var out []string
	for _, e := range existing {
		if model.Present(e.LinkHash) {
			out = append(out, *e.LinkHash)
		}
	}
	return out
}

func batchLinkHashes(hashed []pipeline.Hashed) []string {
	var out []string
	for _, h := range hashed {
		if model.Present(h.Hashes.Link) {
			out = append(out, *h.Hashes.Link)
		}
	}
	return out
}

// buildDepthResolutionSet unions unresolved existing items' hashes with
// incoming hashes, dropping any item whose weakest-rung identifier
// duplicates an earlier kept item's (spec §4.11 step 4).
func buildDepthResolutionSet(existing []ExistingItem, resolved map[string]bool, hashed []pipeline.Hashed) []identifier.HashSource {
	var ordered []identifier.HashSource
	for _, e := range existing {
		if !resolved[e.ID] {
			ordered = append(ordered, e)
		}
	}
	for _, h := range hashed {
		ordered = append(ordered, h.Hashes)
	}

	seen := make(map[model.Identifier]bool, len(ordered))
	out := make([]identifier.HashSource, 0, len(ordered))
	for _, hs := range ordered {
		id, ok := identifier.Compose(hs, ladder.Weakest)
		if !ok {
			out = append(out, hs)
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, hs)
	}
	return out
}

// depthFilter rejects candidates whose identifier at depth disagrees with
// target (spec §4.11 step 7's depth filter).
func depthFilter(cand []ExistingItem, target Identifier, depth Rung) []ExistingItem {
	out := make([]ExistingItem, 0, len(cand))
	for _, c := range cand {
		id, ok := identifier.Compose(c, depth)
		if ok && id == target {
			out = append(out, c)
		}
	}
	return out
}

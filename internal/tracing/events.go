// Package tracing defines the engine's optional trace event stream
// (spec §6): a closed set of event types describing depth resolution,
// candidate discovery and gating, match selection, and the final
// per-item classification verdict.
package tracing

import (
	"github.com/feedlattice/classify/internal/ladder"
	"github.com/feedlattice/classify/internal/model"
)

// Phase names the pass an event was emitted during.
const (
	PhasePrematch = "prematch"
	PhaseClassify = "classify"
)

// Event is the closed set of trace event types. Consumers type-switch on
// the concrete type; every case below is exhaustive by construction —
// there is no other implementer outside this package.
type Event interface {
	event()
}

// DepthResolved reports the outcome of depth resolution, once per
// invocation, between the prematch and classify phases.
type DepthResolved struct {
	Depth   ladder.Rung
	Changed bool
}

// CandidatesFound reports how many candidates a match tier's slot filter
// produced, before gating.
type CandidatesFound struct {
	Phase  string
	Source model.MatchSource
	Count  int
}

// CandidatesGated reports one candidate gate's effect on a tier's
// candidate list.
type CandidatesGated struct {
	Phase    string
	Source   model.MatchSource
	GateName string
	Reason   string
	Before   int
	After    int
}

// CandidatesDepthFiltered reports the classify-phase depth filter
// removing candidates whose identifier at the resolved depth disagrees
// with the deduped item's own identifier.
type CandidatesDepthFiltered struct {
	Before        int
	After         int
	IdentityDepth ladder.Rung
}

// MatchSelected reports a tier choosing exactly one candidate.
type MatchSelected struct {
	Phase          string
	Source         model.MatchSource
	ExistingItemID string
}

// MatchAmbiguous reports a tier that could not narrow to one candidate.
type MatchAmbiguous struct {
	Phase  string
	Source model.MatchSource
	Count  int
}

// MatchNone reports that no tier produced a match.
type MatchNone struct {
	Phase string
}

// ClassifyInsert reports a deduped item emitted as an insert.
type ClassifyInsert struct {
	IdentifierHash model.IdentifierHash
}

// ClassifyUpdate reports a deduped item emitted as an update.
type ClassifyUpdate struct {
	IdentifierHash model.IdentifierHash
	ExistingItemID string
}

// ClassifySkip reports a deduped item matched but not emitted (content
// unchanged, or an update gate declined).
type ClassifySkip struct {
	ExistingItemID string
}

func (DepthResolved) event()           {}
func (CandidatesFound) event()         {}
func (CandidatesGated) event()         {}
func (CandidatesDepthFiltered) event() {}
func (MatchSelected) event()           {}
func (MatchAmbiguous) event()          {}
func (MatchNone) event()               {}
func (ClassifyInsert) event()          {}
func (ClassifyUpdate) event()          {}
func (ClassifySkip) event()            {}

// Sink receives trace events as they are produced. A nil Sink is never
// passed to engine internals — callers without a policy get Noop.
type Sink func(Event)

// Noop discards every event.
var Noop Sink = func(Event) {}

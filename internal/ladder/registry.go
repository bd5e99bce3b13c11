package ladder

import "github.com/feedlattice/classify/internal/model"

// IdentifierUse categorizes whether a slot participates in identifier
// composition.
type IdentifierUse int

const (
	// UseAlways: the slot's ladder rung is always in the prefix once the
	// resolved depth reaches it.
	UseAlways IdentifierUse = iota
	// UseOnlyWhenNoStrong: the slot (title) only contributes to matching
	// semantics when the item has no strong hash; it is still always part
	// of the identifier prefix by rung, this flag governs match-tier use,
	// not composition.
	UseOnlyWhenNoStrong
	// UseNever: the slot never appears in an identifier (content, summary).
	UseNever
)

// SlotInfo is one row of the hash registry.
type SlotInfo struct {
	Slot           model.Slot
	Tag            string
	Weight         int
	Strong         bool
	Matchable      bool
	ContentBearing bool
	IdentifierUse  IdentifierUse
	Rung           *Rung
}

func rungPtr(r Rung) *Rung { return &r }

// Registry is the compile-time hash-slot metadata table (spec §4.2).
var Registry = map[model.Slot]SlotInfo{
	model.SlotGuid: {
		Slot: model.SlotGuid, Tag: "g", Weight: 32,
		Strong: true, Matchable: true, ContentBearing: false,
		IdentifierUse: UseAlways, Rung: rungPtr(RungGuid),
	},
	model.SlotGuidFragment: {
		Slot: model.SlotGuidFragment, Tag: "gf", Weight: 0,
		Strong: false, Matchable: false, ContentBearing: false,
		IdentifierUse: UseAlways, Rung: rungPtr(RungGuidFragment),
	},
	model.SlotLink: {
		Slot: model.SlotLink, Tag: "l", Weight: 8,
		Strong: true, Matchable: true, ContentBearing: false,
		IdentifierUse: UseAlways, Rung: rungPtr(RungLink),
	},
	model.SlotLinkFragment: {
		Slot: model.SlotLinkFragment, Tag: "lf", Weight: 0,
		Strong: false, Matchable: false, ContentBearing: false,
		IdentifierUse: UseAlways, Rung: rungPtr(RungLinkFragment),
	},
	model.SlotEnclosure: {
		Slot: model.SlotEnclosure, Tag: "e", Weight: 16,
		Strong: true, Matchable: true, ContentBearing: true,
		IdentifierUse: UseAlways, Rung: rungPtr(RungEnclosure),
	},
	model.SlotTitle: {
		Slot: model.SlotTitle, Tag: "t", Weight: 4,
		Strong: false, Matchable: true, ContentBearing: true,
		IdentifierUse: UseOnlyWhenNoStrong, Rung: rungPtr(RungTitle),
	},
	model.SlotContent: {
		Slot: model.SlotContent, Tag: "c", Weight: 2,
		Strong: false, Matchable: false, ContentBearing: true,
		IdentifierUse: UseNever, Rung: nil,
	},
	model.SlotSummary: {
		Slot: model.SlotSummary, Tag: "s", Weight: 1,
		Strong: false, Matchable: false, ContentBearing: true,
		IdentifierUse: UseNever, Rung: nil,
	},
}

// Info returns the registry row for slot. Every model.Slot has a row, so
// callers can index unconditionally.
func Info(slot model.Slot) SlotInfo {
	return Registry[slot]
}

// Weight returns the slot's contribution to a best-copy-wins dedup score.
func Weight(slot model.Slot) int {
	return Registry[slot].Weight
}

// MatchableSlots returns the slots a candidate finder may key on, in
// priority order: guid, link, enclosure, title.
func MatchableSlots() []model.Slot {
	return []model.Slot{model.SlotGuid, model.SlotLink, model.SlotEnclosure, model.SlotTitle}
}

// ContentBearingSlots returns the slots the content-change gate compares,
// in the order spec'd: title, summary, content, enclosure.
func ContentBearingSlots() []model.Slot {
	return []model.Slot{model.SlotTitle, model.SlotSummary, model.SlotContent, model.SlotEnclosure}
}

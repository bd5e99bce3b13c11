package model

// Enclosure is a single podcast/media enclosure carried by an incoming
// item, in feed order.
type Enclosure struct {
	URL       string
	IsDefault bool
}

// HashableItem is a raw incoming item, read-only input to the engine.
// Every string field is optional; an empty string is treated the same as
// the field being absent.
type HashableItem struct {
	Guid       *string
	Link       *string
	Title      *string
	Summary    *string
	Content    *string
	Enclosures []Enclosure
}

// ItemHashes holds the eight computed per-slot digests for one item.
// A nil pointer means the slot could not be computed (its normalizer
// returned absent).
type ItemHashes struct {
	Guid         *string
	GuidFragment *string
	Link         *string
	LinkFragment *string
	Enclosure    *string
	Title        *string
	Content      *string
	Summary      *string
}

// Get returns the hash value for the given slot, or nil if absent.
func (h ItemHashes) Get(slot Slot) *string {
	switch slot {
	case SlotGuid:
		return h.Guid
	case SlotGuidFragment:
		return h.GuidFragment
	case SlotLink:
		return h.Link
	case SlotLinkFragment:
		return h.LinkFragment
	case SlotEnclosure:
		return h.Enclosure
	case SlotTitle:
		return h.Title
	case SlotContent:
		return h.Content
	case SlotSummary:
		return h.Summary
	default:
		return nil
	}
}

// HasStrongHash reports whether any of the strong slots (guid, link,
// enclosure) is populated.
func (h ItemHashes) HasStrongHash() bool {
	return h.Guid != nil || h.Link != nil || h.Enclosure != nil
}

// MatchableItem is a previously recorded item, read-only input to the
// engine. Hash fields are explicit-nullable in the same sense as
// ItemHashes: a nil pointer means absent, and is never equal to another
// absent value.
type MatchableItem struct {
	ID               string
	GuidHash         *string
	GuidFragmentHash *string
	LinkHash         *string
	LinkFragmentHash *string
	EnclosureHash    *string
	TitleHash        *string
	ContentHash      *string
	SummaryHash      *string
}

// Get returns the hash value for the given slot, or nil if absent.
func (m MatchableItem) Get(slot Slot) *string {
	switch slot {
	case SlotGuid:
		return m.GuidHash
	case SlotGuidFragment:
		return m.GuidFragmentHash
	case SlotLink:
		return m.LinkHash
	case SlotLinkFragment:
		return m.LinkFragmentHash
	case SlotEnclosure:
		return m.EnclosureHash
	case SlotTitle:
		return m.TitleHash
	case SlotContent:
		return m.ContentHash
	case SlotSummary:
		return m.SummaryHash
	default:
		return nil
	}
}

// HasStrongHash reports whether any of the strong slots (guid, link,
// enclosure) is populated.
func (m MatchableItem) HasStrongHash() bool {
	return m.GuidHash != nil || m.LinkHash != nil || m.EnclosureHash != nil
}

// HashesEqual treats two optional hash values as equal only when both are
// present and identical. Absent never equals absent, and never equals a
// present value — matching the spec's "absence is semantically equal to
// absence on the other side, but never matches another absent" rule for
// everywhere *except* identifier composition (which has its own rule,
// see package identifier).
func HashesEqual(a, b *string) bool {
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// Present reports whether an optional hash value is populated.
func Present(a *string) bool {
	return a != nil && *a != ""
}

package model

// MatchSource names the tier that produced a match.
type MatchSource int

const (
	SourceNone MatchSource = iota
	SourceGuid
	SourceLink
	SourceEnclosure
	SourceTitle
)

func (s MatchSource) String() string {
	switch s {
	case SourceGuid:
		return "guid"
	case SourceLink:
		return "link"
	case SourceEnclosure:
		return "enclosure"
	case SourceTitle:
		return "title"
	default:
		return "none"
	}
}

// Identifier is the tagged ladder-prefix string used as the within-channel
// identity key at a given rung, e.g. "g:1a2b|gf:|l:|lf:|e:|t:".
type Identifier string

// IdentifierHash is a deterministic digest of an Identifier string, used
// as an opaque key by callers.
type IdentifierHash string

// InsertAction reports a new-identity incoming item.
type InsertAction struct {
	Item           HashableItem
	Hashes         ItemHashes
	IdentifierHash IdentifierHash
}

// UpdateAction reports an incoming item that matches an existing item's
// identity but whose content has changed.
type UpdateAction struct {
	Item             HashableItem
	Hashes           ItemHashes
	IdentifierHash   IdentifierHash
	ExistingItemID   string
	IdentifierSource MatchSource
}

// ChannelProfile carries batch-level signal strength used to pick the
// match tier ordering.
type ChannelProfile struct {
	LinkUniquenessRate float64
}

// Match is the outcome of the match selector: the existing item it chose,
// and the tier that produced it.
type Match struct {
	Existing MatchableItem
	Source   MatchSource
}

// Package hashing applies the normalizers to a raw item and renders each
// populated slot as a 128-bit hex digest (spec §4.3).
package hashing

import (
	"crypto/md5" //nolint:gosec // used only as a stable 128-bit digest, not for security.
	"encoding/hex"

	"github.com/feedlattice/classify/internal/canonical"
	"github.com/feedlattice/classify/internal/model"
	"github.com/feedlattice/classify/internal/normalize"
)

// Hasher computes ItemHashes for a HashableItem. It holds no mutable
// state; the canonicalizer is the only injected collaborator (spec §6).
type Hasher struct {
	canonicalizer canonical.Canonicalizer
}

// New builds a Hasher over the given canonicalizer. Pass canonical.Default
// when the caller has no policy override.
func New(canonicalizer canonical.Canonicalizer) *Hasher {
	if canonicalizer == nil {
		canonicalizer = canonical.Default
	}
	return &Hasher{canonicalizer: canonicalizer}
}

// Checksum128 renders a 128-bit checksum of s as 32 lowercase hex digits.
// This is the "128-bit checksum function" collaborator from spec §6; the
// engine needs only determinism and an even digest spread, not
// cryptographic strength, so crypto/md5 (already how the teacher computes
// its own content hashes) is sufficient and needs no third-party hashing
// library.
func Checksum128(s string) string {
	sum := md5.Sum([]byte(s)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

func hashOf(normalized *string) *string {
	if normalized == nil {
		return nil
	}
	h := Checksum128(*normalized)
	return &h
}

// ComputeHashes normalizes then hashes every slot of item.
func (h *Hasher) ComputeHashes(item model.HashableItem) model.ItemHashes {
	return model.ItemHashes{
		Guid:         hashOf(normalize.Guid(item.Guid, h.canonicalizer)),
		GuidFragment: hashOf(normalize.GuidFragment(item.Guid, h.canonicalizer)),
		Link:         hashOf(normalize.Link(item.Link, h.canonicalizer)),
		LinkFragment: hashOf(normalize.LinkFragment(item.Link, h.canonicalizer)),
		Enclosure:    hashOf(normalize.Enclosure(item.Enclosures, h.canonicalizer)),
		Title:        hashOf(normalize.Text(item.Title)),
		Content:      hashOf(normalize.HTML(item.Content)),
		Summary:      hashOf(normalize.HTML(item.Summary)),
	}
}

// Package identifier composes the tagged ladder-prefix identity key for
// an item at a given rung, and digests that key into a stable opaque hash
// (spec §4.4).
package identifier

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/feedlattice/classify/internal/ladder"
	"github.com/feedlattice/classify/internal/model"
)

// HashSource is anything that can report its hash value for a slot —
// both model.ItemHashes (incoming items) and model.MatchableItem
// (existing items) satisfy it, which is what lets composition treat the
// two symmetrically (spec's "absence on either side is equal" rule).
type HashSource interface {
	Get(slot model.Slot) *string
}

// Compose builds the ladder prefix up to and including rung. It returns
// false if every slot in the prefix is absent — there is nothing to key
// on at this rung.
func Compose(hashes HashSource, rung ladder.Rung) (model.Identifier, bool) {
	prefix := ladder.Prefix(rung)

	anyPresent := false
	segments := make([]string, 0, len(prefix))
	for _, r := range prefix {
		slot := r.Slot()
		tag := slot.Tag()
		if val := hashes.Get(slot); val != nil && *val != "" {
			anyPresent = true
			segments = append(segments, tag+":"+*val)
		} else {
			segments = append(segments, tag+":")
		}
	}

	if !anyPresent {
		return "", false
	}
	return model.Identifier(strings.Join(segments, "|")), true
}

// Hash renders a deterministic digest of an Identifier string. Only
// determinism and collision resistance matter (spec §6); sha256 is the
// stdlib's standard choice here, matching the cryptographic-digest
// contract without pulling in a third-party hash family for a purely
// internal opaque key.
func Hash(id model.Identifier) model.IdentifierHash {
	sum := sha256.Sum256([]byte(id))
	return model.IdentifierHash(hex.EncodeToString(sum[:]))
}

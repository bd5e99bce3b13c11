// Package profile computes the batch-level channel profile that the match
// selector uses to pick its tier ordering (spec §4.6).
package profile

import "github.com/feedlattice/classify/internal/model"

// Compute derives linkUniquenessRate from the historical (existing-item)
// and batch (incoming-item) link hashes. Each side's rate is distinct
// count over total count, considered only over its own non-absent link
// hashes; the combined rate is the minimum of the two sides when both
// have data, the single side's rate when only one does, and 0 when
// neither does. Using raw, pre-dedup incoming hashes is deliberate: more
// duplicates only lowers the rate, which is the conservative direction
// (spec §9).
func Compute(historicalLinkHashes, batchLinkHashes []string) model.ChannelProfile {
	histRate, histOK := rate(historicalLinkHashes)
	batchRate, batchOK := rate(batchLinkHashes)

	switch {
	case histOK && batchOK:
		return model.ChannelProfile{LinkUniquenessRate: min(histRate, batchRate)}
	case histOK:
		return model.ChannelProfile{LinkUniquenessRate: histRate}
	case batchOK:
		return model.ChannelProfile{LinkUniquenessRate: batchRate}
	default:
		return model.ChannelProfile{LinkUniquenessRate: 0}
	}
}

func rate(hashes []string) (float64, bool) {
	if len(hashes) == 0 {
		return 0, false
	}
	distinct := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		distinct[h] = struct{}{}
	}
	return float64(len(distinct)) / float64(len(hashes)), true
}

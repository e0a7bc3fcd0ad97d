package transferroot

import (
	"sort"
)

// epochBounds delimits the TransferSent events belonging to a commit epoch.
// Both edges are inclusive on block number and trimmed by transaction index.
type epochBounds struct {
	startBlock   uint64
	startTxIndex uint64
	// trimStart is false when the start is a deployment block rather than a previous commit
	trimStart    bool
	endBlock     uint64
	endTxIndex   uint64
}

func (b epochBounds) contains(t TransferSent) bool {
	if t.BlockNumber < b.startBlock || t.BlockNumber > b.endBlock {
		return false
	}
	// sent before the previous commit in the same block: it belongs to the prior epoch
	if b.trimStart && t.BlockNumber == b.startBlock && t.TransactionIndex <= b.startTxIndex {
		return false
	}
	// sent after the commit in the same block: it belongs to the next epoch
	if t.BlockNumber == b.endBlock && t.TransactionIndex > b.endTxIndex {
		return false
	}
	return true
}

type sortedTransfers struct {
	transfers      []TransferSent
	// firstSeen is the same sequence without the duplicate replacements, nil when nothing was replaced
	firstSeen      []TransferSent
	missingIndexes []uint64
	lastIndex      uint64
}

// sortTransfers returns the leaf events of an epoch in tree order:
// trimmed to the bounds, sorted by (index, block), one event per index and cut at the first gap
func sortTransfers(events []TransferSent, bounds epochBounds) sortedTransfers {
	candidates := make([]TransferSent, 0, len(events))
	for _, e := range events {
		if bounds.contains(e) {
			candidates = append(candidates, e)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Index != candidates[j].Index {
			return candidates[i].Index < candidates[j].Index
		}
		return candidates[i].BlockNumber < candidates[j].BlockNumber
	})

	// An indexer re-scan or a reorg can report the same index twice. The copy
	// seen in a later block supersedes the first one.
	seen := make(map[uint64]TransferSent, len(candidates))
	replace := make(map[uint64]TransferSent)
	deduped := make([]TransferSent, 0, len(candidates))
	for _, t := range candidates {
		first, ok := seen[t.Index]
		if ok {
			if t.BlockNumber > first.BlockNumber && t.BlockNumber > bounds.startBlock {
				replace[t.Index] = t
			}
			continue
		}
		seen[t.Index] = t
		deduped = append(deduped, t)
	}

	result := sortedTransfers{
		missingIndexes: missingIndexes(deduped),
	}

	transfers := make([]TransferSent, 0, len(deduped))
	for i, t := range deduped {
		if t.Index != uint64(i) {
			break
		}
		transfers = append(transfers, t)
	}
	for idx, t := range replace {
		if idx >= uint64(len(transfers)) {
			continue
		}
		if result.firstSeen == nil {
			result.firstSeen = make([]TransferSent, len(transfers))
			copy(result.firstSeen, transfers)
		}
		transfers[idx] = t
	}

	if len(transfers) > 0 {
		result.lastIndex = transfers[len(transfers)-1].Index
	}
	result.transfers = transfers
	return result
}

// missingIndexes lists the indexes absent below the highest one of a sorted, deduplicated sequence
func missingIndexes(sorted []TransferSent) []uint64 {
	if len(sorted) == 0 {
		return nil
	}
	var missing []uint64
	next := uint64(0)
	for _, t := range sorted {
		for ; next < t.Index; next++ {
			missing = append(missing, next)
		}
		next = t.Index + 1
	}
	return missing
}

package optimism

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/relay"
)

const (
	maxForwardIterations = 50
	maxBackwardJumps     = 10
)

// LocateSourceInclusionBlock finds the L1 block holding the batcher transaction that carries destTxHash.
// The search starts at the L1 origin of the L2 block and walks forward one checkpoint gap at a time.
// When a batch newer than the L2 block is met, the search went past the inclusion and jumps back by
// the sequence number of the L2 block.
func (a *Adapter) LocateSourceInclusionBlock(
	ctx context.Context, destTxHash common.Hash, destBlockNumber uint64,
) (uint64, error) {
	if !a.cfg.canLocateInclusion() {
		return 0, fmt.Errorf("%w: BatcherAddress and BatchInboxAddress are not configured for chain %d",
			relay.ErrUnsupported, a.chainID)
	}
	origin, seq, err := a.l2.L1Origin(ctx, destBlockNumber)
	if err != nil {
		return 0, fmt.Errorf("error getting L1 origin of block %d: %w", destBlockNumber, err)
	}
	header, err := a.l2.HeaderByNumber(ctx, destBlockNumber)
	if err != nil {
		return 0, fmt.Errorf("error getting L2 header %d: %w", destBlockNumber, err)
	}
	target := header.Time

	gap := a.cfg.CheckpointTxBlockGap
	block := origin + gap
	jumps := 0
	jumped := false
	for i := 0; i < maxForwardIterations; i++ {
		txs, err := a.l1.BlockTransactions(ctx, block)
		if errors.Is(err, etherman.ErrNotFound) {
			return 0, fmt.Errorf("%w: tx %s not yet included, L1 block %d not found", relay.ErrTransient, destTxHash.Hex(), block)
		} else if err != nil {
			return 0, err
		}

		step := uint64(1)
		overshoot := false
		for _, tx := range txs {
			if !a.isBatcherTx(tx) {
				continue
			}
			batches, err := a.batches(tx)
			if err != nil {
				a.logger.Warnf("skipping batcher tx %s at L1 block %d: %v", tx.Hash.Hex(), block, err)
				continue
			}
			if containsTx(batches, destTxHash) {
				a.logger.Debugf("tx %s included at L1 block %d by batcher tx %s", destTxHash.Hex(), block, tx.Hash.Hex())
				return block, nil
			}
			if len(batches) > 0 && minTimestamp(batches) > target {
				overshoot = true
			}
			if !jumped {
				step = gap
			}
		}

		if overshoot {
			jumps++
			if jumps > maxBackwardJumps {
				return 0, fmt.Errorf("%w: tx %s not yet included, too many backward jumps", relay.ErrTransient, destTxHash.Hex())
			}
			back := seq + 1
			if block-origin < back {
				block = origin
			} else {
				block -= back
			}
			jumped = true
			continue
		}
		block += step
	}
	return 0, fmt.Errorf("%w: tx %s not yet included after %d L1 blocks", relay.ErrTransient,
		destTxHash.Hex(), maxForwardIterations)
}

func (a *Adapter) isBatcherTx(tx BlockTx) bool {
	return tx.To != nil && *tx.To == a.cfg.BatchInboxAddress && tx.From == a.cfg.BatcherAddress
}

// batches decodes the channels completed by a batcher transaction
func (a *Adapter) batches(tx BlockTx) ([]Batch, error) {
	if cached, ok := a.decoded.Get(tx.Hash); ok {
		return cached, nil
	}
	frames, err := ParseFrames(tx.Data)
	if err != nil {
		return nil, err
	}
	var batches []Batch
	for _, ch := range CompleteChannels(frames) {
		decoded, err := DecodeChannel(ch.Data())
		if err != nil {
			return nil, fmt.Errorf("error decoding channel %x: %w", ch.ID, err)
		}
		batches = append(batches, decoded...)
	}
	a.decoded.Add(tx.Hash, batches)
	return batches, nil
}

func containsTx(batches []Batch, txHash common.Hash) bool {
	for _, b := range batches {
		for _, h := range b.TxHashes {
			if h == txHash {
				return true
			}
		}
	}
	return false
}

func minTimestamp(batches []Batch) uint64 {
	lowest := batches[0].Timestamp
	for _, b := range batches[1:] {
		if b.Timestamp < lowest {
			lowest = b.Timestamp
		}
	}
	return lowest
}

package transferroot

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/tree"
)

// EventIndexClient queries the indexed bridge events. Lookups of a single entity return ErrNotFound when absent.
type EventIndexClient interface {
	// TransferCommit returns the commit of rootHash on the source chain
	TransferCommit(ctx context.Context, sourceChainID uint64, token string, rootHash common.Hash) (*TransfersCommitted, error)
	// PreviousTransferCommit returns the nearest commit towards the same destination before beforeBlock
	PreviousTransferCommit(ctx context.Context, sourceChainID, destinationChainID uint64, token string,
		beforeBlock uint64) (*TransfersCommitted, error)
	// TransfersSent returns every TransferSent towards destinationChainID in [fromBlock, toBlock]
	TransfersSent(ctx context.Context, sourceChainID, destinationChainID uint64, token string,
		fromBlock, toBlock uint64) ([]TransferSent, error)
	// TransferRootSet reports whether the root was set on the destination chain
	TransferRootSet(ctx context.Context, destinationChainID uint64, token string, rootHash common.Hash) (bool, error)
	// TransferRootConfirmed reports whether the root was confirmed on L1
	TransferRootConfirmed(ctx context.Context, token string, rootHash common.Hash) (bool, error)
}

// Reconstructor recovers the ordered transfer ids committed in a transfer root
type Reconstructor struct {
	logger *log.Logger
	index  EventIndexClient
	cfg    Config
}

// NewReconstructor creates a Reconstructor
func NewReconstructor(logger *log.Logger, index EventIndexClient, cfg Config) *Reconstructor {
	return &Reconstructor{
		logger: logger,
		index:  index,
		cfg:    cfg,
	}
}

// Reconstruct rebuilds the leaves of rootHash, committed on sourceChainID, and verifies they hash to it.
// Fails with ErrNotFound when no commit matches the root, ErrAmbiguousEarliestRoot for the first commit
// of a chain without deployment block and a *RootMismatchError when the recovered leaves are wrong.
func (r *Reconstructor) Reconstruct(ctx context.Context, sourceChainID uint64, token string,
	rootHash common.Hash) (*TransferRoot, error) {
	if sourceChainID == 0 || rootHash == (common.Hash{}) {
		return nil, fmt.Errorf("%w: source chain id and root hash are required", ErrInvalidInput)
	}

	target, err := r.index.TransferCommit(ctx, sourceChainID, token, rootHash)
	if err != nil {
		return nil, fmt.Errorf("error getting transfer commit of root %s: %w", rootHash.Hex(), err)
	}
	target.SourceChainID = sourceChainID

	bounds, err := r.epochBounds(ctx, target, token)
	if err != nil {
		return nil, err
	}

	events, err := r.index.TransfersSent(ctx, sourceChainID, target.DestinationChainID, token,
		bounds.startBlock, bounds.endBlock)
	if err != nil {
		return nil, fmt.Errorf("error getting transfers sent in blocks [%d, %d]: %w",
			bounds.startBlock, bounds.endBlock, err)
	}

	sorted := sortTransfers(events, bounds)
	if len(sorted.missingIndexes) > 0 {
		r.logger.Warnf("root %s: indexer is missing transfer indexes %v", rootHash.Hex(), sorted.missingIndexes)
	}
	transfers := sorted.transfers
	transferIDs := leaves(transfers)
	err = checkRoot(rootHash, transferIDs)
	if err != nil && sorted.firstSeen != nil {
		// the duplicate replacement is a heuristic, the root tells whether it was right
		if errFirstSeen := checkRoot(rootHash, leaves(sorted.firstSeen)); errFirstSeen == nil {
			r.logger.Warnf("root %s: discarding replaced duplicates, first seen events match the root", rootHash.Hex())
			transfers = sorted.firstSeen
			transferIDs = leaves(transfers)
			err = nil
		}
	}
	if err != nil {
		return nil, err
	}

	rootSet, err := r.index.TransferRootSet(ctx, target.DestinationChainID, token, rootHash)
	if err != nil {
		return nil, fmt.Errorf("error checking root set of %s: %w", rootHash.Hex(), err)
	}
	rootConfirmed, err := r.index.TransferRootConfirmed(ctx, token, rootHash)
	if err != nil {
		return nil, fmt.Errorf("error checking root confirmation of %s: %w", rootHash.Hex(), err)
	}

	r.logger.Debugf("root %s reconstructed with %d transfers from blocks [%d, %d]",
		rootHash.Hex(), len(transferIDs), bounds.startBlock, bounds.endBlock)

	return &TransferRoot{
		RootHash:           rootHash,
		SourceChainID:      sourceChainID,
		DestinationChainID: target.DestinationChainID,
		Token:              token,
		TotalAmount:        target.TotalAmount,
		TransferIDs:        transferIDs,
		CommitBlockNumber:  target.BlockNumber,
		CommittedAt:        target.Timestamp,
		Committed:          true,
		RootSet:            rootSet,
		RootConfirmed:      rootConfirmed,
		Transfers:          transfers,
		MissingIndexes:     sorted.missingIndexes,
		LastIndex:          sorted.lastIndex,
	}, nil
}

// epochBounds finds where the epoch of target starts. Commits are ordered by block number,
// so the previous one needs the target's block and the queries cannot run in parallel.
func (r *Reconstructor) epochBounds(ctx context.Context, target *TransfersCommitted, token string) (epochBounds, error) {
	bounds := epochBounds{
		endBlock:   target.BlockNumber,
		endTxIndex: target.TransactionIndex,
	}

	previous, err := r.index.PreviousTransferCommit(ctx, target.SourceChainID, target.DestinationChainID,
		token, target.BlockNumber)
	switch {
	case err == nil:
		bounds.startBlock = previous.BlockNumber
		bounds.startTxIndex = previous.TransactionIndex
		bounds.trimStart = true
		return bounds, nil
	case !errors.Is(err, ErrNotFound):
		return bounds, fmt.Errorf("error getting commit before block %d: %w", target.BlockNumber, err)
	}

	deploymentBlock, ok := r.cfg.deploymentBlock(target.SourceChainID)
	if !ok {
		return bounds, fmt.Errorf("%w: root %s on chain %d", ErrAmbiguousEarliestRoot,
			target.RootHash.Hex(), target.SourceChainID)
	}
	if deploymentBlock > target.BlockNumber {
		return bounds, fmt.Errorf("%w: deployment block %d is after commit block %d",
			ErrInvalidInput, deploymentBlock, target.BlockNumber)
	}
	r.logger.Infof("root %s is the first commit of chain %d, starting at deployment block %d",
		target.RootHash.Hex(), target.SourceChainID, deploymentBlock)
	bounds.startBlock = deploymentBlock
	return bounds, nil
}

func leaves(transfers []TransferSent) []common.Hash {
	ids := make([]common.Hash, 0, len(transfers))
	for _, t := range transfers {
		ids = append(ids, t.TransferID)
	}
	return ids
}

// checkRoot fails with a *RootMismatchError unless transferIDs hash to rootHash
func checkRoot(rootHash common.Hash, transferIDs []common.Hash) error {
	if len(transferIDs) == 0 {
		return &RootMismatchError{Expected: rootHash}
	}
	root, err := tree.Root(transferIDs)
	if err != nil {
		return err
	}
	if root != rootHash {
		return &RootMismatchError{Expected: rootHash, Got: root, NumLeaves: len(transferIDs)}
	}
	return nil
}

package withdrawal

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/transferroot"
	"github.com/hop-protocol/hop-relay/tree"
	treetypes "github.com/hop-protocol/hop-relay/tree/types"
)

const defaultMaxCandidateRoots = 10

var ErrTransferSettled = errors.New("transfer already withdrawn or bonded")

// EventIndexClient are the indexer queries needed on top of the reconstruction ones
type EventIndexClient interface {
	TransferSentByID(ctx context.Context, transferID common.Hash) (*transferroot.TransferSent, error)
	TransferCommitsAfter(ctx context.Context, sourceChainID, destinationChainID uint64, token string,
		timestamp uint64, limit int) ([]transferroot.TransfersCommitted, error)
	Withdrawal(ctx context.Context, chainID uint64, transferID common.Hash) (bool, error)
	WithdrawalBonded(ctx context.Context, chainID uint64, transferID common.Hash) (bool, error)
}

type RootReconstructor interface {
	Reconstruct(ctx context.Context, sourceChainID uint64, token string,
		rootHash common.Hash) (*transferroot.TransferRoot, error)
}

type Config struct {
	// MaxCandidateRoots is the number of commits after the transfer searched for its root
	MaxCandidateRoots int `mapstructure:"MaxCandidateRoots"`
	// AllowSettled builds proofs for transfers that were already withdrawn or bonded
	AllowSettled bool `mapstructure:"AllowSettled"`
}

// Builder generates withdrawal proofs
type Builder struct {
	logger        *log.Logger
	index         EventIndexClient
	reconstructor RootReconstructor
	cfg           Config
}

func NewBuilder(logger *log.Logger, index EventIndexClient, reconstructor RootReconstructor, cfg Config) *Builder {
	if cfg.MaxCandidateRoots <= 0 {
		cfg.MaxCandidateRoots = defaultMaxCandidateRoots
	}
	return &Builder{
		logger:        logger,
		index:         index,
		reconstructor: reconstructor,
		cfg:           cfg,
	}
}

// BuildProof locates the transfer and its root, and proves the transfer id against it
func (b *Builder) BuildProof(ctx context.Context, transferID common.Hash) (*Proof, error) {
	if transferID == (common.Hash{}) {
		return nil, fmt.Errorf("%w: transfer id is required", transferroot.ErrInvalidInput)
	}

	transfer, err := b.index.TransferSentByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("error getting transfer %s: %w", transferID.Hex(), err)
	}

	if !b.cfg.AllowSettled {
		if err := b.checkNotSettled(ctx, transfer); err != nil {
			return nil, err
		}
	}

	root, err := b.rootOf(ctx, transfer)
	if err != nil {
		return nil, err
	}

	return buildProof(transfer, root)
}

func (b *Builder) checkNotSettled(ctx context.Context, transfer *transferroot.TransferSent) error {
	withdrawn, err := b.index.Withdrawal(ctx, transfer.DestinationChainID, transfer.TransferID)
	if err != nil {
		return fmt.Errorf("error checking withdrawal of %s: %w", transfer.TransferID.Hex(), err)
	}
	bonded, err := b.index.WithdrawalBonded(ctx, transfer.DestinationChainID, transfer.TransferID)
	if err != nil {
		return fmt.Errorf("error checking bond of %s: %w", transfer.TransferID.Hex(), err)
	}
	if withdrawn || bonded {
		return fmt.Errorf("%w: %s (withdrawn: %t, bonded: %t)", ErrTransferSettled, transfer.TransferID.Hex(), withdrawn, bonded)
	}
	return nil
}

// rootOf finds the root containing the transfer among the first commits after it.
// Roots that cannot be reconstructed are skipped, but the error is reported if no root matches.
func (b *Builder) rootOf(ctx context.Context, transfer *transferroot.TransferSent) (*transferroot.TransferRoot, error) {
	commits, err := b.index.TransferCommitsAfter(ctx, transfer.SourceChainID, transfer.DestinationChainID,
		transfer.Token, transfer.Timestamp, b.cfg.MaxCandidateRoots)
	if err != nil {
		return nil, fmt.Errorf("error getting commits after transfer %s: %w", transfer.TransferID.Hex(), err)
	}

	var reconstructErr error
	for _, commit := range commits {
		if commit.BlockNumber < transfer.BlockNumber {
			continue
		}
		root, err := b.reconstructor.Reconstruct(ctx, transfer.SourceChainID, transfer.Token, commit.RootHash)
		if err != nil {
			if !errors.Is(err, transferroot.ErrRootMismatch) && !errors.Is(err, transferroot.ErrAmbiguousEarliestRoot) {
				return nil, fmt.Errorf("error reconstructing root %s: %w", commit.RootHash.Hex(), err)
			}
			b.logger.Warnf("skipping root %s: %v", commit.RootHash.Hex(), err)
			reconstructErr = err
			continue
		}
		if _, ok := root.Contains(transfer.TransferID); ok {
			return root, nil
		}
	}
	if reconstructErr != nil {
		return nil, fmt.Errorf("transfer %s not found in any reconstructed root: %w", transfer.TransferID.Hex(), reconstructErr)
	}
	return nil, fmt.Errorf("%w: transfer root for transfer %s", transferroot.ErrNotFound, transfer.TransferID.Hex())
}

func buildProof(transfer *transferroot.TransferSent, root *transferroot.TransferRoot) (*Proof, error) {
	t, err := tree.NewTree(root.TransferIDs)
	if err != nil {
		return nil, err
	}
	proof, err := t.Proof(transfer.TransferID)
	if err != nil {
		return nil, err
	}
	if !tree.Verify(proof, root.RootHash) {
		return nil, fmt.Errorf("%w: proof of %s does not verify", transferroot.ErrRootMismatch, transfer.TransferID.Hex())
	}
	return newProof(transfer, root, proof), nil
}

func newProof(transfer *transferroot.TransferSent, root *transferroot.TransferRoot, proof treetypes.Proof) *Proof {
	return &Proof{
		TransferID:         transfer.TransferID,
		TransferRootHash:   root.RootHash,
		Leaves:             root.TransferIDs,
		Proof:              proof.Siblings,
		TransferIndex:      proof.LeafIndex,
		RootTotalAmount:    root.TotalAmount,
		TotalLeaves:        proof.TotalLeaves,
		SourceChainID:      transfer.SourceChainID,
		DestinationChainID: transfer.DestinationChainID,
		Token:              transfer.Token,
		Recipient:          transfer.Recipient,
		Amount:             transfer.Amount,
		TransferNonce:      transfer.TransferNonce,
		BonderFee:          transfer.BonderFee,
		AmountOutMin:       transfer.AmountOutMin,
		Deadline:           transfer.Deadline,
	}
}

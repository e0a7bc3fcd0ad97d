package transferroot

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/db"
	"github.com/hop-protocol/hop-relay/log"
)

// RootStorage persists reconstructed roots. GetTransferRoot returns db.ErrNotFound for unknown roots.
type RootStorage interface {
	GetTransferRoot(ctx context.Context, rootHash common.Hash) (*TransferRoot, error)
	SaveTransferRoot(ctx context.Context, root *TransferRoot) error
}

type rootReconstructor interface {
	Reconstruct(ctx context.Context, sourceChainID uint64, token string, rootHash common.Hash) (*TransferRoot, error)
}

// CachedReconstructor serves confirmed roots from storage and stores every successful reconstruction.
// Roots that are not confirmed yet are reconstructed again so their flags stay current.
type CachedReconstructor struct {
	logger        *log.Logger
	storage       RootStorage
	reconstructor rootReconstructor
}

func NewCachedReconstructor(logger *log.Logger, storage RootStorage, reconstructor rootReconstructor) *CachedReconstructor {
	return &CachedReconstructor{
		logger:        logger,
		storage:       storage,
		reconstructor: reconstructor,
	}
}

func (c *CachedReconstructor) Reconstruct(ctx context.Context, sourceChainID uint64, token string,
	rootHash common.Hash) (*TransferRoot, error) {
	cached, err := c.storage.GetTransferRoot(ctx, rootHash)
	switch {
	case err == nil:
		if cached.RootConfirmed && cached.SourceChainID == sourceChainID && cached.Token == token {
			return cached, nil
		}
	case errors.Is(err, db.ErrNotFound):
	default:
		c.logger.Warnf("error reading cached root %s: %v", rootHash.Hex(), err)
	}

	root, err := c.reconstructor.Reconstruct(ctx, sourceChainID, token, rootHash)
	if err != nil {
		return nil, err
	}
	if err := c.storage.SaveTransferRoot(ctx, root); err != nil {
		c.logger.Warnf("error caching root %s: %v", rootHash.Hex(), err)
	}
	return root, nil
}

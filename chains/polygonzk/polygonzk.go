// Package polygonzk relays messages over the Polygon zkEVM bridge by claiming them on the destination side
package polygonzk

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relay"
)

var _ relay.Adapter = (*Adapter)(nil)

type Adapter struct {
	chainID  uint64
	l1       Bridge
	l2       Bridge
	proofs   ProofService
	finality Finality
	cfg      Config
	logger   *log.Logger
}

// New builds the adapter on top of connected L1 and zkEVM endpoints
func New(logger *log.Logger, l1, l2 *etherman.Endpoint, l2URL string, cfg Config) (*Adapter, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	l1Bridge, err := newBridge(l1, cfg.L1Bridge)
	if err != nil {
		return nil, err
	}
	l2Bridge, err := newBridge(l2, cfg.L2Bridge)
	if err != nil {
		return nil, err
	}
	return newAdapter(logger, l2.ChainID, l1Bridge, l2Bridge,
		NewBridgeService(logger, cfg),
		NewBatchEndpoints(logger, l2URL, cfg.FinalityCacheTTL.Duration),
		cfg), nil
}

func newAdapter(
	logger *log.Logger, chainID uint64, l1, l2 Bridge, proofs ProofService, finality Finality, cfg Config,
) *Adapter {
	return &Adapter{
		chainID:  chainID,
		l1:       l1,
		l2:       l2,
		proofs:   proofs,
		finality: finality,
		cfg:      cfg,
		logger:   logger,
	}
}

func (a *Adapter) ChainID() uint64 {
	return a.chainID
}

// route is the source and destination side of a direction
type route struct {
	dir           relay.Direction
	source        Bridge
	destination   Bridge
	sourceNetwork uint32
}

func (a *Adapter) route(dir relay.Direction) (route, error) {
	switch dir {
	case relay.DirectionOutbound:
		return route{dir: dir, source: a.l2, destination: a.l1, sourceNetwork: a.cfg.L2NetworkID}, nil
	case relay.DirectionInbound:
		return route{dir: dir, source: a.l1, destination: a.l2, sourceNetwork: a.cfg.L1NetworkID}, nil
	default:
		return route{}, fmt.Errorf("%w: unexpected direction %q", relay.ErrFatal, dir)
	}
}

func (a *Adapter) MessageStage(ctx context.Context, dir relay.Direction, msg relay.CrossDomainMessage) (relay.Stage, error) {
	r, err := a.route(dir)
	if err != nil {
		return relay.StageUnknown, err
	}
	m, err := r.source.BridgeMessage(ctx, msg.SourceTxHash)
	if errors.Is(err, etherman.ErrNotFound) {
		return relay.StageWaitingForSourceConfirmation, nil
	} else if err != nil {
		return relay.StageUnknown, err
	}
	return a.stage(ctx, r, m)
}

func (a *Adapter) stage(ctx context.Context, r route, m *BridgeMessage) (relay.Stage, error) {
	claimed, err := r.destination.IsClaimed(ctx, m.DepositCount, r.sourceNetwork)
	if err != nil {
		return relay.StageUnknown, fmt.Errorf("error checking isClaimed of deposit %d: %w", m.DepositCount, err)
	}
	if claimed {
		return relay.StageFinalized, nil
	}

	if r.dir == relay.DirectionOutbound {
		included, err := a.proofs.BlockIncluded(ctx, m.BlockNumber)
		if err != nil {
			return relay.StageUnknown, fmt.Errorf("error checking inclusion of block %d: %w", m.BlockNumber, err)
		}
		if !included {
			return relay.StageWaitingForPublication, nil
		}
		verified, err := a.finality.IsBlockVerified(m.BlockNumber)
		if err != nil {
			return relay.StageUnknown, err
		}
		if !verified {
			return relay.StageInChallengeOrDelayWindow, nil
		}
	}

	deposit, err := a.proofs.Deposit(ctx, r.sourceNetwork, m.DepositCount)
	if errors.Is(err, ErrDepositNotFound) {
		return relay.StageWaitingForPublication, nil
	} else if err != nil {
		return relay.StageUnknown, err
	}
	if !deposit.ReadyForClaim {
		return relay.StageWaitingForPublication, nil
	}
	return relay.StageReadyToAct, nil
}

// RelayOutboundMessage claims on L1 a message bridged from the zkEVM
func (a *Adapter) RelayOutboundMessage(ctx context.Context, sourceTxHash common.Hash) (common.Hash, error) {
	return a.relay(ctx, relay.DirectionOutbound, sourceTxHash)
}

// RelayInboundMessage claims on the zkEVM a message bridged from L1
func (a *Adapter) RelayInboundMessage(ctx context.Context, sourceTxHash common.Hash) (common.Hash, error) {
	return a.relay(ctx, relay.DirectionInbound, sourceTxHash)
}

func (a *Adapter) relay(ctx context.Context, dir relay.Direction, sourceTxHash common.Hash) (common.Hash, error) {
	r, err := a.route(dir)
	if err != nil {
		return common.Hash{}, err
	}
	m, err := r.source.BridgeMessage(ctx, sourceTxHash)
	if err != nil {
		return common.Hash{}, err
	}
	stage, err := a.stage(ctx, r, m)
	if err != nil {
		return common.Hash{}, err
	}
	if err := relay.CheckRelayable(stage); err != nil {
		return common.Hash{}, err
	}

	deposit, err := a.proofs.Deposit(ctx, r.sourceNetwork, m.DepositCount)
	if err != nil {
		return common.Hash{}, err
	}
	proof, err := a.proofs.MerkleProof(ctx, r.sourceNetwork, m.DepositCount)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error getting merkle proof of deposit %d: %w", m.DepositCount, err)
	}
	claim, err := newClaim(deposit, proof, m.DepositCount)
	if err != nil {
		return common.Hash{}, err
	}
	a.logger.Infof("claiming %s deposit %d of network %d (global index %s) from tx %s",
		dir, m.DepositCount, r.sourceNetwork, claim.GlobalIndex, sourceTxHash.Hex())
	return r.destination.Claim(ctx, claim, a.cfg.GasLimit)
}

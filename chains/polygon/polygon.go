// Package polygon relays messages from Polygon PoS to L1 through the FxPortal tunnels.
// Messages from L1 are delivered by the state sync and have nothing to relay.
package polygon

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relay"
)

var _ relay.Adapter = (*Adapter)(nil)

type Adapter struct {
	chainID uint64
	child   Child
	root    Root
	proofs  ProofGenerator
	cfg     Config
	logger  *log.Logger

	// root tunnel of each L2 bridge
	tunnels      map[common.Address]common.Address
	tunnelsMutex sync.Mutex
}

// New builds the adapter on top of connected L1 and Polygon endpoints
func New(logger *log.Logger, l1, l2 *etherman.Endpoint, cfg Config) (*Adapter, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	r, err := newRoot(l1)
	if err != nil {
		return nil, err
	}
	return newAdapter(logger, l2.ChainID, newChild(l2), r, NewProofAPI(logger, cfg), cfg), nil
}

func newAdapter(logger *log.Logger, chainID uint64, c Child, r Root, proofs ProofGenerator, cfg Config) *Adapter {
	return &Adapter{
		chainID: chainID,
		child:   c,
		root:    r,
		proofs:  proofs,
		cfg:     cfg,
		logger:  logger,
		tunnels: make(map[common.Address]common.Address),
	}
}

func (a *Adapter) ChainID() uint64 {
	return a.chainID
}

// exit is what receiveMessage needs to process a message
type exit struct {
	tunnel  common.Address
	payload []byte
}

func (a *Adapter) inboundUnsupported() error {
	return fmt.Errorf("%w: inbound messages of chain %d are relayed by the state sync", relay.ErrUnsupported, a.chainID)
}

func (a *Adapter) MessageStage(ctx context.Context, dir relay.Direction, msg relay.CrossDomainMessage) (relay.Stage, error) {
	switch dir {
	case relay.DirectionOutbound:
	case relay.DirectionInbound:
		return relay.StageUnknown, a.inboundUnsupported()
	default:
		return relay.StageUnknown, fmt.Errorf("%w: unexpected direction %q", relay.ErrFatal, dir)
	}
	commit, err := a.child.Commit(ctx, msg.SourceTxHash)
	if errors.Is(err, etherman.ErrNotFound) {
		return relay.StageWaitingForSourceConfirmation, nil
	} else if err != nil {
		return relay.StageUnknown, err
	}
	stage, _, err := a.stage(ctx, msg.SourceTxHash, commit)
	return stage, err
}

// stage checks the checkpoint first, the exit payload does not exist before it
func (a *Adapter) stage(ctx context.Context, txHash common.Hash, commit *Commit) (relay.Stage, *exit, error) {
	included, err := a.proofs.BlockIncluded(ctx, commit.BlockNumber)
	if err != nil {
		return relay.StageUnknown, nil, fmt.Errorf("error checking checkpoint of block %d: %w", commit.BlockNumber, err)
	}
	if !included {
		return relay.StageWaitingForPublication, nil, nil
	}

	payload, err := a.proofs.ExitPayload(ctx, txHash, messageSentSig)
	if err != nil {
		return relay.StageUnknown, nil, fmt.Errorf("error getting exit payload of tx %s: %w", txHash.Hex(), err)
	}
	tunnel, err := a.rootTunnel(ctx, commit.Bridge)
	if err != nil {
		return relay.StageUnknown, nil, fmt.Errorf("error resolving root tunnel of bridge %s: %w", commit.Bridge.Hex(), err)
	}
	processed, err := a.root.IsProcessed(ctx, tunnel, payload)
	if err != nil {
		return relay.StageUnknown, nil, err
	}
	if processed {
		return relay.StageFinalized, nil, nil
	}
	return relay.StageReadyToAct, &exit{tunnel: tunnel, payload: payload}, nil
}

func (a *Adapter) rootTunnel(ctx context.Context, bridge common.Address) (common.Address, error) {
	if a.cfg.RootTunnel != (common.Address{}) {
		return a.cfg.RootTunnel, nil
	}
	a.tunnelsMutex.Lock()
	tunnel, ok := a.tunnels[bridge]
	a.tunnelsMutex.Unlock()
	if ok {
		return tunnel, nil
	}

	tunnel, err := a.child.RootTunnel(ctx, bridge)
	if err != nil {
		return common.Address{}, err
	}
	a.tunnelsMutex.Lock()
	a.tunnels[bridge] = tunnel
	a.tunnelsMutex.Unlock()
	return tunnel, nil
}

// RelayOutboundMessage processes on L1 the exit of a commit made on Polygon
func (a *Adapter) RelayOutboundMessage(ctx context.Context, sourceTxHash common.Hash) (common.Hash, error) {
	commit, err := a.child.Commit(ctx, sourceTxHash)
	if err != nil {
		return common.Hash{}, err
	}
	stage, e, err := a.stage(ctx, sourceTxHash, commit)
	if err != nil {
		return common.Hash{}, err
	}
	if err := relay.CheckRelayable(stage); err != nil {
		return common.Hash{}, err
	}
	a.logger.Infof("sending receiveMessage to root tunnel %s for tx %s (block %d)",
		e.tunnel.Hex(), sourceTxHash.Hex(), commit.BlockNumber)
	return a.root.ReceiveMessage(ctx, e.tunnel, e.payload, a.cfg.GasLimit)
}

func (a *Adapter) RelayInboundMessage(context.Context, common.Hash) (common.Hash, error) {
	return common.Hash{}, a.inboundUnsupported()
}

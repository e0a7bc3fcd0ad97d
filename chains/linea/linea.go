// Package linea relays messages over the Linea canonical message service by claiming them on the destination side
package linea

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
	chainID uint64
	l1      MessageService
	l2      MessageService
	cfg     Config
	logger  *log.Logger
}

// New builds the adapter on top of connected L1 and Linea endpoints
func New(logger *log.Logger, l1, l2 *etherman.Endpoint, cfg Config) (*Adapter, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	l1Service, err := newL1MessageService(l1, cfg.L1MessageService, cfg.ClaimedSearchFromBlock)
	if err != nil {
		return nil, err
	}
	l2Service, err := newL2MessageService(l2, cfg.L2MessageService)
	if err != nil {
		return nil, err
	}
	return newAdapter(logger, l2.ChainID, l1Service, l2Service, cfg), nil
}

func newAdapter(logger *log.Logger, chainID uint64, l1, l2 MessageService, cfg Config) *Adapter {
	return &Adapter{
		chainID: chainID,
		l1:      l1,
		l2:      l2,
		cfg:     cfg,
		logger:  logger,
	}
}

func (a *Adapter) ChainID() uint64 {
	return a.chainID
}

func (a *Adapter) sides(dir relay.Direction) (source, destination MessageService, err error) {
	switch dir {
	case relay.DirectionOutbound:
		return a.l2, a.l1, nil
	case relay.DirectionInbound:
		return a.l1, a.l2, nil
	default:
		return nil, nil, fmt.Errorf("%w: unexpected direction %q", relay.ErrFatal, dir)
	}
}

func (a *Adapter) MessageStage(ctx context.Context, dir relay.Direction, msg relay.CrossDomainMessage) (relay.Stage, error) {
	source, destination, err := a.sides(dir)
	if err != nil {
		return relay.StageUnknown, err
	}
	m, err := source.SentMessage(ctx, msg.SourceTxHash)
	if errors.Is(err, etherman.ErrNotFound) {
		return relay.StageWaitingForSourceConfirmation, nil
	} else if err != nil {
		return relay.StageUnknown, err
	}
	return a.stage(ctx, destination, m)
}

// stage maps the destination status: a message is unknown there until the coordinator anchors it
func (a *Adapter) stage(ctx context.Context, destination MessageService, m *Message) (relay.Stage, error) {
	status, err := destination.MessageStatus(ctx, m.MessageHash)
	if err != nil {
		return relay.StageUnknown, fmt.Errorf("error getting status of message %s: %w", m.MessageHash.Hex(), err)
	}
	switch status {
	case StatusClaimed:
		return relay.StageFinalized, nil
	case StatusClaimable:
		return relay.StageReadyToAct, nil
	default:
		return relay.StageWaitingForPublication, nil
	}
}

// RelayOutboundMessage claims on L1 a message sent from Linea
func (a *Adapter) RelayOutboundMessage(ctx context.Context, sourceTxHash common.Hash) (common.Hash, error) {
	return a.relay(ctx, relay.DirectionOutbound, sourceTxHash)
}

// RelayInboundMessage claims on Linea a message sent from L1
func (a *Adapter) RelayInboundMessage(ctx context.Context, sourceTxHash common.Hash) (common.Hash, error) {
	return a.relay(ctx, relay.DirectionInbound, sourceTxHash)
}

func (a *Adapter) relay(ctx context.Context, dir relay.Direction, sourceTxHash common.Hash) (common.Hash, error) {
	source, destination, err := a.sides(dir)
	if err != nil {
		return common.Hash{}, err
	}
	m, err := source.SentMessage(ctx, sourceTxHash)
	if err != nil {
		return common.Hash{}, err
	}
	stage, err := a.stage(ctx, destination, m)
	if err != nil {
		return common.Hash{}, err
	}
	if err := relay.CheckRelayable(stage); err != nil {
		return common.Hash{}, err
	}
	a.logger.Infof("claiming %s message %s (nonce %s) from tx %s", dir, m.MessageHash.Hex(), m.Nonce, sourceTxHash.Hex())
	return destination.ClaimMessage(ctx, m, a.cfg.GasLimit)
}

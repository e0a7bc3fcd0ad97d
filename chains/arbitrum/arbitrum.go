// Package arbitrum relays messages of Arbitrum chains. L1 to L2 messages are retryable tickets,
// redeemed manually when the auto redeem failed. L2 to L1 messages are executed on the outbox once
// the rollup node holding them is confirmed.
package arbitrum

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relay"
)

var _ relay.Adapter = (*Adapter)(nil)

// MessageStatus is the native status of a ticket or of an outbox message
type MessageStatus int

const (
	StatusNotYetCreated MessageStatus = iota
	StatusCreationFailed
	StatusFundsDeposited
	StatusRedeemed
	StatusExpired
	StatusUnconfirmed
	StatusConfirmed
	StatusExecuted
)

var statusNames = map[MessageStatus]string{
	StatusNotYetCreated:  "not_yet_created",
	StatusCreationFailed: "creation_failed",
	StatusFundsDeposited: "funds_deposited_on_l2",
	StatusRedeemed:       "redeemed",
	StatusExpired:        "expired",
	StatusUnconfirmed:    "unconfirmed",
	StatusConfirmed:      "confirmed",
	StatusExecuted:       "executed",
}

func (s MessageStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

func (s MessageStatus) Stage() relay.Stage {
	switch s {
	case StatusNotYetCreated:
		return relay.StageWaitingForPublication
	case StatusUnconfirmed:
		return relay.StageInChallengeOrDelayWindow
	case StatusFundsDeposited, StatusConfirmed:
		return relay.StageReadyToAct
	case StatusRedeemed, StatusExecuted:
		return relay.StageFinalized
	default:
		return relay.StageFailed
	}
}

type Adapter struct {
	chainID uint64
	l1      L1
	l2      L2
	cfg     Config
	logger  *log.Logger
}

// New builds the adapter on top of connected L1 and Arbitrum endpoints
func New(logger *log.Logger, l1, l2 *etherman.Endpoint, cfg Config) (*Adapter, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	l1Contracts, err := newL1Contracts(l1, cfg)
	if err != nil {
		return nil, err
	}
	l2Contracts, err := newL2Contracts(l2)
	if err != nil {
		return nil, err
	}
	return newAdapter(logger, l2.ChainID, l1Contracts, l2Contracts, cfg), nil
}

func newAdapter(logger *log.Logger, chainID uint64, l1 L1, l2 L2, cfg Config) *Adapter {
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

func (a *Adapter) MessageStage(ctx context.Context, dir relay.Direction, msg relay.CrossDomainMessage) (relay.Stage, error) {
	var (
		status MessageStatus
		err    error
	)
	switch dir {
	case relay.DirectionInbound:
		var ticket *RetryableTicket
		if ticket, err = a.ticket(ctx, msg.SourceTxHash); err == nil {
			status, _, err = a.ticketStatus(ctx, ticket)
		}
	case relay.DirectionOutbound:
		var m *L2ToL1Message
		if m, err = a.outboxMessage(ctx, msg.SourceTxHash); err == nil {
			status, _, err = a.outboxStatus(ctx, m)
		}
	default:
		return relay.StageUnknown, fmt.Errorf("%w: unexpected direction %q", relay.ErrFatal, dir)
	}
	if errors.Is(err, etherman.ErrNotFound) {
		return relay.StageWaitingForSourceConfirmation, nil
	} else if err != nil {
		return relay.StageUnknown, err
	}
	return status.Stage(), nil
}

// ticket returns the first retryable ticket created by the L1 transaction
func (a *Adapter) ticket(ctx context.Context, txHash common.Hash) (*RetryableTicket, error) {
	tickets, err := a.l1.RetryableTickets(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, fmt.Errorf("%w: message is undefined, could not find messages for tx hash %s", relay.ErrFatal, txHash.Hex())
	}
	return tickets[0], nil
}

// outboxMessage returns the first L2 to L1 message sent by the L2 transaction
func (a *Adapter) outboxMessage(ctx context.Context, txHash common.Hash) (*L2ToL1Message, error) {
	messages, err := a.l2.L2ToL1Messages(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: message is undefined, could not find messages for tx hash %s", relay.ErrFatal, txHash.Hex())
	}
	return messages[0], nil
}

func (a *Adapter) ticketStatus(ctx context.Context, ticket *RetryableTicket) (MessageStatus, common.Hash, error) {
	id, err := ticket.ID(a.chainID)
	if err != nil {
		return 0, id, err
	}
	receipt, err := a.l2.TransactionReceipt(ctx, id)
	if errors.Is(err, etherman.ErrNotFound) {
		return StatusNotYetCreated, id, nil
	} else if err != nil {
		return 0, id, fmt.Errorf("error getting receipt of ticket %s: %w", id.Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return StatusCreationFailed, id, nil
	}

	redeemed, err := a.l2.Redeemed(ctx, id, receipt.BlockNumber.Uint64())
	if err != nil {
		return 0, id, fmt.Errorf("error getting redeems of ticket %s: %w", id.Hex(), err)
	}
	if redeemed {
		return StatusRedeemed, id, nil
	}

	_, err = a.l2.TicketTimeout(ctx, id)
	if errors.Is(err, errTicketNotFound) {
		return StatusExpired, id, nil
	} else if err != nil {
		return 0, id, fmt.Errorf("error getting timeout of ticket %s: %w", id.Hex(), err)
	}
	return StatusFundsDeposited, id, nil
}

// outboxStatus also returns the send count of the latest confirmed node, which sizes the outbox proof
func (a *Adapter) outboxStatus(ctx context.Context, m *L2ToL1Message) (MessageStatus, uint64, error) {
	spent, err := a.l1.IsSpent(ctx, m.Position)
	if err != nil {
		return 0, 0, fmt.Errorf("error checking isSpent: %w", err)
	}
	if spent {
		return StatusExecuted, 0, nil
	}
	blockHash, err := a.l1.LatestConfirmedBlockHash(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("error getting latest confirmed node: %w", err)
	}
	sendCount, err := a.l2.SendCount(ctx, blockHash)
	if err != nil {
		return 0, 0, fmt.Errorf("error getting send count of block %s: %w", blockHash.Hex(), err)
	}
	if !m.Position.IsUint64() || m.Position.Uint64() >= sendCount {
		return StatusUnconfirmed, sendCount, nil
	}
	return StatusConfirmed, sendCount, nil
}

// RelayOutboundMessage executes an L2 to L1 message on the outbox
func (a *Adapter) RelayOutboundMessage(ctx context.Context, sourceTxHash common.Hash) (common.Hash, error) {
	m, err := a.outboxMessage(ctx, sourceTxHash)
	if err != nil {
		return common.Hash{}, err
	}
	status, sendCount, err := a.outboxStatus(ctx, m)
	if err != nil {
		return common.Hash{}, err
	}
	if err := relay.CheckRelayable(status.Stage()); err != nil {
		return common.Hash{}, err
	}
	proof, err := a.l2.OutboxProof(ctx, sendCount, m.Position.Uint64())
	if err != nil {
		return common.Hash{}, fmt.Errorf("error constructing outbox proof of position %s: %w", m.Position, err)
	}
	a.logger.Infof("executing outbox message %s at position %s of tx %s", m.Hash.Hex(), m.Position, sourceTxHash.Hex())
	return a.l1.ExecuteTransaction(ctx, m, proof, a.cfg.ExecuteGasLimit)
}

// RelayInboundMessage redeems the retryable ticket created by an L1 transaction
func (a *Adapter) RelayInboundMessage(ctx context.Context, sourceTxHash common.Hash) (common.Hash, error) {
	ticket, err := a.ticket(ctx, sourceTxHash)
	if err != nil {
		return common.Hash{}, err
	}
	status, id, err := a.ticketStatus(ctx, ticket)
	if err != nil {
		return common.Hash{}, err
	}
	switch status {
	case StatusFundsDeposited:
		a.logger.Infof("redeeming ticket %s of tx %s", id.Hex(), sourceTxHash.Hex())
		return a.l2.Redeem(ctx, id, a.cfg.RedeemGasLimit)
	case StatusRedeemed:
		return common.Hash{}, fmt.Errorf("%w: message has already been relayed", relay.ErrAlreadyComplete)
	case StatusNotYetCreated:
		return common.Hash{}, fmt.Errorf("%w: ticket %s not yet created", relay.ErrTransient, id.Hex())
	default:
		return common.Hash{}, fmt.Errorf("%w: transaction unredeemable, ticket %s is %s", relay.ErrFatal, id.Hex(), status)
	}
}

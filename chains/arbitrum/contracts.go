package arbitrum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	hopcommon "github.com/hop-protocol/hop-relay/common"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/relay"
)

// errTicketNotFound is returned by getTimeout for tickets that were redeemed or expired
var errTicketNotFound = errors.New("retryable ticket not found")

// L1 is the parent chain side of an Arbitrum chain: bridge, inbox, outbox and rollup
type L1 interface {
	// RetryableTickets returns the tickets created by txHash, in log order
	RetryableTickets(ctx context.Context, txHash common.Hash) ([]*RetryableTicket, error)
	IsSpent(ctx context.Context, position *big.Int) (bool, error)
	// LatestConfirmedBlockHash is the L2 block hash of the latest confirmed rollup node
	LatestConfirmedBlockHash(ctx context.Context) (common.Hash, error)
	ExecuteTransaction(ctx context.Context, m *L2ToL1Message, proof [][32]byte, gasLimit uint64) (common.Hash, error)
}

// L2 is the Arbitrum chain itself
type L2 interface {
	// L2ToL1Messages returns the messages sent by txHash, in log order
	L2ToL1Messages(ctx context.Context, txHash common.Hash) ([]*L2ToL1Message, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	// Redeemed reports whether a redeem of the ticket succeeded, auto redeem included
	Redeemed(ctx context.Context, ticketID common.Hash, fromBlock uint64) (bool, error)
	// TicketTimeout returns errTicketNotFound when the ticket no longer exists
	TicketTimeout(ctx context.Context, ticketID common.Hash) (uint64, error)
	Redeem(ctx context.Context, ticketID common.Hash, gasLimit uint64) (common.Hash, error)
	// SendCount is the number of L2 to L1 messages sent up to the block
	SendCount(ctx context.Context, blockHash common.Hash) (uint64, error)
	OutboxProof(ctx context.Context, size, leaf uint64) ([][32]byte, error)
}

type l1Contracts struct {
	endpoint *etherman.Endpoint
	bridge   *etherman.Contract
	inbox    *etherman.Contract
	outbox   *etherman.Contract
	rollup   *etherman.Contract
	cfg      Config
}

func newL1Contracts(endpoint *etherman.Endpoint, cfg Config) (*l1Contracts, error) {
	c := &l1Contracts{endpoint: endpoint, cfg: cfg}
	var err error
	if c.bridge, err = etherman.NewContract(endpoint.Client, cfg.Bridge, bridgeABI); err != nil {
		return nil, err
	}
	if c.inbox, err = etherman.NewContract(endpoint.Client, cfg.Inbox, inboxABI); err != nil {
		return nil, err
	}
	if c.outbox, err = etherman.NewContract(endpoint.Client, cfg.Outbox, outboxABI); err != nil {
		return nil, err
	}
	if c.rollup, err = etherman.NewContract(endpoint.Client, cfg.Rollup, rollupABI); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *l1Contracts) RetryableTickets(ctx context.Context, txHash common.Hash) ([]*RetryableTicket, error) {
	receipt, err := c.endpoint.Client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, err
	}
	return parseRetryableTickets(c.bridge, c.inbox, receipt)
}

func (c *l1Contracts) IsSpent(ctx context.Context, position *big.Int) (bool, error) {
	out, err := c.outbox.Call(ctx, "isSpent", position)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

type nodeConfirmed struct {
	NodeNum   uint64
	BlockHash [32]byte
	SendRoot  [32]byte
}

func (c *l1Contracts) LatestConfirmedBlockHash(ctx context.Context) (common.Hash, error) {
	out, err := c.rollup.Call(ctx, "latestConfirmed")
	if err != nil {
		return common.Hash{}, err
	}
	nodeNum := out[0].(uint64)
	eventID, err := c.rollup.EventID("NodeConfirmed")
	if err != nil {
		return common.Hash{}, err
	}
	logs, err := c.endpoint.Client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(c.cfg.RollupDeploymentBlock),
		Addresses: []common.Address{c.rollup.Address},
		Topics:    [][]common.Hash{{eventID}, {common.BigToHash(new(big.Int).SetUint64(nodeNum))}},
	})
	if err != nil {
		return common.Hash{}, err
	}
	if len(logs) != 1 {
		return common.Hash{}, fmt.Errorf("expected 1 NodeConfirmed event for node %d, got %d", nodeNum, len(logs))
	}
	var ev nodeConfirmed
	if err := c.rollup.UnpackLog(&ev, "NodeConfirmed", logs[0]); err != nil {
		return common.Hash{}, err
	}
	return ev.BlockHash, nil
}

func (c *l1Contracts) ExecuteTransaction(
	ctx context.Context, m *L2ToL1Message, proof [][32]byte, gasLimit uint64,
) (common.Hash, error) {
	return c.endpoint.Transact(ctx, c.outbox, gasLimit, "executeTransaction",
		proof, m.Position, m.Caller, m.Destination, m.ArbBlockNum, m.EthBlockNum, m.Timestamp, m.CallValue, m.Data)
}

type l2Contracts struct {
	endpoint       *etherman.Endpoint
	arbSys         *etherman.Contract
	arbRetryableTx *etherman.Contract
	nodeInterface  *etherman.Contract
}

func newL2Contracts(endpoint *etherman.Endpoint) (*l2Contracts, error) {
	c := &l2Contracts{endpoint: endpoint}
	var err error
	if c.arbSys, err = etherman.NewContract(endpoint.Client, arbSysAddr, arbSysABI); err != nil {
		return nil, err
	}
	if c.arbRetryableTx, err = etherman.NewContract(endpoint.Client, arbRetryableTxAddr, arbRetryableTxABI); err != nil {
		return nil, err
	}
	if c.nodeInterface, err = etherman.NewContract(endpoint.Client, nodeInterfaceAddr, nodeInterfaceABI); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *l2Contracts) L2ToL1Messages(ctx context.Context, txHash common.Hash) ([]*L2ToL1Message, error) {
	receipt, err := c.endpoint.Client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, err
	}
	return parseL2ToL1Messages(c.arbSys, receipt)
}

func (c *l2Contracts) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return c.endpoint.Client.TransactionReceipt(ctx, txHash)
}

func (c *l2Contracts) Redeemed(ctx context.Context, ticketID common.Hash, fromBlock uint64) (bool, error) {
	eventID, err := c.arbRetryableTx.EventID("RedeemScheduled")
	if err != nil {
		return false, err
	}
	logs, err := c.endpoint.Client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []common.Address{arbRetryableTxAddr},
		Topics:    [][]common.Hash{{eventID}, {ticketID}},
	})
	if err != nil {
		return false, err
	}
	for _, l := range logs {
		if len(l.Topics) < 3 {
			continue
		}
		// ticketId, retryTxHash and sequenceNum are indexed
		retryTxHash := l.Topics[2]
		receipt, err := c.endpoint.Client.TransactionReceipt(ctx, retryTxHash)
		if errors.Is(err, etherman.ErrNotFound) {
			continue
		} else if err != nil {
			return false, err
		}
		if receipt.Status == types.ReceiptStatusSuccessful {
			return true, nil
		}
	}
	return false, nil
}

func (c *l2Contracts) TicketTimeout(ctx context.Context, ticketID common.Hash) (uint64, error) {
	out, err := c.arbRetryableTx.Call(ctx, "getTimeout", ticketID)
	if err != nil {
		if strings.Contains(err.Error(), "revert") {
			return 0, errTicketNotFound
		}
		return 0, err
	}
	return out[0].(*big.Int).Uint64(), nil
}

func (c *l2Contracts) Redeem(ctx context.Context, ticketID common.Hash, gasLimit uint64) (common.Hash, error) {
	return c.endpoint.Transact(ctx, c.arbRetryableTx, gasLimit, "redeem", ticketID)
}

// SendCount is carried in the first 8 bytes of the mix digest of Arbitrum headers
func (c *l2Contracts) SendCount(ctx context.Context, blockHash common.Hash) (uint64, error) {
	header, err := c.endpoint.Client.HeaderByHash(ctx, blockHash)
	if err != nil {
		return 0, err
	}
	return hopcommon.BytesToUint64(header.MixDigest[:8]), nil
}

func (c *l2Contracts) OutboxProof(ctx context.Context, size, leaf uint64) ([][32]byte, error) {
	out, err := c.nodeInterface.Call(ctx, "constructOutboxProof", size, leaf)
	if err != nil {
		return nil, err
	}
	return out[2].([][32]byte), nil
}

type messageDelivered struct {
	MessageIndex    *big.Int
	BeforeInboxAcc  [32]byte
	Inbox           common.Address
	Kind            uint8
	Sender          common.Address
	MessageDataHash [32]byte
	BaseFeeL1       *big.Int
	Timestamp       uint64
}

type inboxMessageDelivered struct {
	MessageNum *big.Int
	Data       []byte
}

// parseRetryableTickets pairs the retryable MessageDelivered events of the bridge with the data
// the inbox emitted for the same message number
func parseRetryableTickets(bridge, inbox *etherman.Contract, receipt *types.Receipt) ([]*RetryableTicket, error) {
	deliveredID, err := bridge.EventID("MessageDelivered")
	if err != nil {
		return nil, err
	}
	inboxID, err := inbox.EventID("InboxMessageDelivered")
	if err != nil {
		return nil, err
	}

	var tickets []*RetryableTicket
	inboxData := make(map[common.Hash][]byte)
	for _, l := range receipt.Logs {
		if len(l.Topics) < 2 {
			continue
		}
		switch {
		case l.Address == bridge.Address && l.Topics[0] == deliveredID:
			var ev messageDelivered
			if err := bridge.UnpackLog(&ev, "MessageDelivered", *l); err != nil {
				return nil, fmt.Errorf("%w: error decoding MessageDelivered: %w", relay.ErrFatal, err)
			}
			if ev.Kind != l1MessageTypeSubmitRetryable || ev.Inbox != inbox.Address {
				continue
			}
			tickets = append(tickets, &RetryableTicket{
				MessageNumber: l.Topics[1].Big(),
				Sender:        ev.Sender,
				L1BaseFee:     ev.BaseFeeL1,
			})
		case l.Address == inbox.Address && l.Topics[0] == inboxID:
			var ev inboxMessageDelivered
			if err := inbox.UnpackLog(&ev, "InboxMessageDelivered", *l); err != nil {
				return nil, fmt.Errorf("%w: error decoding InboxMessageDelivered: %w", relay.ErrFatal, err)
			}
			inboxData[l.Topics[1]] = ev.Data
		}
	}

	for _, t := range tickets {
		data, ok := inboxData[common.BigToHash(t.MessageNumber)]
		if !ok {
			return nil, fmt.Errorf("%w: no InboxMessageDelivered for message %s in tx %s",
				relay.ErrFatal, t.MessageNumber, receipt.TxHash.Hex())
		}
		if err := decodeRetryableData(t, data); err != nil {
			return nil, err
		}
	}
	return tickets, nil
}

type l2ToL1Tx struct {
	Caller      common.Address
	Destination common.Address
	Hash        *big.Int
	Position    *big.Int
	ArbBlockNum *big.Int
	EthBlockNum *big.Int
	Timestamp   *big.Int
	Callvalue   *big.Int
	Data        []byte
}

func parseL2ToL1Messages(arbSys *etherman.Contract, receipt *types.Receipt) ([]*L2ToL1Message, error) {
	eventID, err := arbSys.EventID("L2ToL1Tx")
	if err != nil {
		return nil, err
	}
	var messages []*L2ToL1Message
	for _, l := range receipt.Logs {
		if l.Address != arbSys.Address || len(l.Topics) == 0 || l.Topics[0] != eventID {
			continue
		}
		var ev l2ToL1Tx
		if err := arbSys.UnpackLog(&ev, "L2ToL1Tx", *l); err != nil {
			return nil, fmt.Errorf("%w: error decoding L2ToL1Tx: %w", relay.ErrFatal, err)
		}
		messages = append(messages, &L2ToL1Message{
			Caller:      ev.Caller,
			Destination: ev.Destination,
			Hash:        common.BigToHash(ev.Hash),
			Position:    ev.Position,
			ArbBlockNum: ev.ArbBlockNum,
			EthBlockNum: ev.EthBlockNum,
			Timestamp:   ev.Timestamp,
			CallValue:   ev.Callvalue,
			Data:        ev.Data,
		})
	}
	return messages, nil
}

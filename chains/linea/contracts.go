package linea

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	hopcommon "github.com/hop-protocol/hop-relay/common"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/relay"
)

// Inbox status values of the message services
const (
	inboxStatusUnknown  = 0
	inboxStatusReceived = 1
	inboxStatusClaimed  = 2
)

// MessageStatus is the state of a message on its destination side
type MessageStatus int

const (
	StatusUnknown MessageStatus = iota
	StatusClaimable
	StatusClaimed
)

func (s MessageStatus) String() string {
	switch s {
	case StatusClaimable:
		return "claimable"
	case StatusClaimed:
		return "claimed"
	default:
		return "unknown"
	}
}

// Message is the MessageSent event emitted by a source transaction
type Message struct {
	From        common.Address
	To          common.Address
	Fee         *big.Int
	Value       *big.Int
	Nonce       *big.Int
	Calldata    []byte
	MessageHash common.Hash
	BlockNumber uint64
}

// Hash is the hash the message services index the message by
func (m *Message) Hash() (common.Hash, error) {
	packed, err := messageHashArgs.Pack(m.From, m.To, m.Fee, m.Value, m.Nonce, m.Calldata)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error encoding message: %w", err)
	}
	return hopcommon.Keccak(packed), nil
}

var messageHashArgs = func() abi.Arguments {
	address, _ := abi.NewType("address", "", nil)
	uint256, _ := abi.NewType("uint256", "", nil)
	bytesType, _ := abi.NewType("bytes", "", nil)
	return abi.Arguments{
		{Type: address}, {Type: address}, {Type: uint256}, {Type: uint256}, {Type: uint256}, {Type: bytesType},
	}
}()

// MessageService is one side of the Linea canonical bridge
type MessageService interface {
	// SentMessage returns the message sent by txHash, etherman.ErrNotFound if the tx is not mined
	SentMessage(ctx context.Context, txHash common.Hash) (*Message, error)
	// MessageStatus returns the status of a message sent from the other side
	MessageStatus(ctx context.Context, messageHash common.Hash) (MessageStatus, error)
	ClaimMessage(ctx context.Context, m *Message, gasLimit uint64) (common.Hash, error)
}

type messageService struct {
	endpoint    *etherman.Endpoint
	contract    *etherman.Contract
	inboxMethod string
	// claimedFromBlock is set on L1, where a claimed message is removed from the inbox
	// and only its MessageClaimed event is left
	claimedFromBlock *big.Int
}

func newL1MessageService(endpoint *etherman.Endpoint, addr common.Address, claimedFromBlock uint64) (*messageService, error) {
	contract, err := etherman.NewContract(endpoint.Client, addr, messageServiceABI)
	if err != nil {
		return nil, err
	}
	return &messageService{
		endpoint:         endpoint,
		contract:         contract,
		inboxMethod:      "inboxL2L1MessageStatus",
		claimedFromBlock: new(big.Int).SetUint64(claimedFromBlock),
	}, nil
}

func newL2MessageService(endpoint *etherman.Endpoint, addr common.Address) (*messageService, error) {
	contract, err := etherman.NewContract(endpoint.Client, addr, messageServiceABI)
	if err != nil {
		return nil, err
	}
	return &messageService{
		endpoint:    endpoint,
		contract:    contract,
		inboxMethod: "inboxL1L2MessageStatus",
	}, nil
}

func (s *messageService) SentMessage(ctx context.Context, txHash common.Hash) (*Message, error) {
	receipt, err := s.endpoint.Client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, err
	}
	return parseMessageSent(s.contract.ABI, s.contract.Address, receipt)
}

func (s *messageService) MessageStatus(ctx context.Context, messageHash common.Hash) (MessageStatus, error) {
	out, err := s.contract.Call(ctx, s.inboxMethod, messageHash)
	if err != nil {
		return StatusUnknown, err
	}
	status, ok := out[0].(*big.Int)
	if !ok || !status.IsUint64() {
		return StatusUnknown, fmt.Errorf("%w: unexpected message status %v", relay.ErrFatal, out[0])
	}
	switch status.Uint64() {
	case inboxStatusReceived:
		return StatusClaimable, nil
	case inboxStatusClaimed:
		return StatusClaimed, nil
	case inboxStatusUnknown:
		if s.claimedFromBlock == nil {
			return StatusUnknown, nil
		}
		return s.claimedEvent(ctx, messageHash)
	default:
		return StatusUnknown, fmt.Errorf("%w: unexpected message status %d", relay.ErrFatal, status.Uint64())
	}
}

func (s *messageService) claimedEvent(ctx context.Context, messageHash common.Hash) (MessageStatus, error) {
	eventID, err := s.contract.EventID("MessageClaimed")
	if err != nil {
		return StatusUnknown, err
	}
	logs, err := s.endpoint.Client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: s.claimedFromBlock,
		Addresses: []common.Address{s.contract.Address},
		Topics:    [][]common.Hash{{eventID}, {messageHash}},
	})
	if err != nil {
		return StatusUnknown, fmt.Errorf("error filtering MessageClaimed of %s: %w", messageHash.Hex(), err)
	}
	if len(logs) > 0 {
		return StatusClaimed, nil
	}
	return StatusUnknown, nil
}

func (s *messageService) ClaimMessage(ctx context.Context, m *Message, gasLimit uint64) (common.Hash, error) {
	data, err := buildClaimTxData(s.contract.ABI, m)
	if err != nil {
		return common.Hash{}, err
	}
	return s.endpoint.RawTransact(ctx, s.contract, gasLimit, data)
}

// buildClaimTxData leaves the fee recipient empty, so the fee goes to the sender of the claim
func buildClaimTxData(contractABI abi.ABI, m *Message) ([]byte, error) {
	return contractABI.Pack("claimMessage",
		m.From,
		m.To,
		m.Fee,
		m.Value,
		common.Address{},
		m.Calldata,
		m.Nonce,
	)
}

// parseMessageSent returns the first message sent through addr in receipt
func parseMessageSent(contractABI abi.ABI, addr common.Address, receipt *types.Receipt) (*Message, error) {
	event := contractABI.Events["MessageSent"]
	for _, l := range receipt.Logs {
		if l.Address != addr || len(l.Topics) != 4 || l.Topics[0] != event.ID {
			continue
		}
		values, err := event.Inputs.NonIndexed().Unpack(l.Data)
		if err != nil {
			return nil, fmt.Errorf("error unpacking MessageSent of tx %s: %w", receipt.TxHash.Hex(), err)
		}
		m := &Message{
			From:        common.BytesToAddress(l.Topics[1].Bytes()),
			To:          common.BytesToAddress(l.Topics[2].Bytes()),
			Fee:         values[0].(*big.Int),
			Value:       values[1].(*big.Int),
			Nonce:       values[2].(*big.Int),
			Calldata:    values[3].([]byte),
			MessageHash: l.Topics[3],
			BlockNumber: receipt.BlockNumber.Uint64(),
		}
		hash, err := m.Hash()
		if err != nil {
			return nil, err
		}
		if hash != m.MessageHash {
			return nil, fmt.Errorf("%w: message hash %s of tx %s does not match its fields (%s)",
				relay.ErrFatal, m.MessageHash.Hex(), receipt.TxHash.Hex(), hash.Hex())
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: message is undefined, no MessageSent of %s in tx %s",
		relay.ErrFatal, addr.Hex(), receipt.TxHash.Hex())
}

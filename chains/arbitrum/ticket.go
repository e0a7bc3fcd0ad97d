package arbitrum

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/hop-protocol/hop-relay/relay"
)

const (
	// l1MessageTypeSubmitRetryable is the bridge message kind of createRetryableTicket
	l1MessageTypeSubmitRetryable = 9
	submitRetryableTxType        = 0x69

	// nine words precede the calldata of a retryable in InboxMessageDelivered
	retryableHeaderLength = 9 * 32
)

// RetryableTicket is an L1 to L2 message, as submitted to the delayed inbox
type RetryableTicket struct {
	// MessageNumber is the index of the message in the delayed inbox
	MessageNumber *big.Int
	// Sender is the aliased L1 sender
	Sender                 common.Address
	L1BaseFee              *big.Int
	Destination            common.Address
	L2CallValue            *big.Int
	L1Value                *big.Int
	MaxSubmissionFee       *big.Int
	ExcessFeeRefundAddress common.Address
	CallValueRefundAddress common.Address
	GasLimit               *big.Int
	MaxFeePerGas           *big.Int
	Data                   []byte
}

// submitRetryableTx is the rlp layout of the L2 transaction that creates the ticket
type submitRetryableTx struct {
	ChainID          *big.Int
	RequestID        common.Hash
	From             common.Address
	L1BaseFee        *big.Int
	DepositValue     *big.Int
	GasFeeCap        *big.Int
	Gas              uint64
	RetryTo          *common.Address `rlp:"nil"`
	RetryValue       *big.Int
	Beneficiary      common.Address
	MaxSubmissionFee *big.Int
	FeeRefundAddr    common.Address
	RetryData        []byte
}

// ID is the hash of the L2 transaction creating the ticket, which is also the ticket id
func (t *RetryableTicket) ID(l2ChainID uint64) (common.Hash, error) {
	if !t.GasLimit.IsUint64() {
		return common.Hash{}, fmt.Errorf("%w: gas limit %s overflows uint64", relay.ErrFatal, t.GasLimit)
	}
	tx := submitRetryableTx{
		ChainID:          new(big.Int).SetUint64(l2ChainID),
		RequestID:        common.BigToHash(t.MessageNumber),
		From:             t.Sender,
		L1BaseFee:        t.L1BaseFee,
		DepositValue:     t.L1Value,
		GasFeeCap:        t.MaxFeePerGas,
		Gas:              t.GasLimit.Uint64(),
		RetryValue:       t.L2CallValue,
		Beneficiary:      t.CallValueRefundAddress,
		MaxSubmissionFee: t.MaxSubmissionFee,
		FeeRefundAddr:    t.ExcessFeeRefundAddress,
		RetryData:        t.Data,
	}
	if t.Destination != (common.Address{}) {
		to := t.Destination
		tx.RetryTo = &to
	}
	enc, err := rlp.EncodeToBytes(&tx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error encoding retryable ticket: %w", err)
	}
	return crypto.Keccak256Hash([]byte{submitRetryableTxType}, enc), nil
}

// decodeRetryableData fills the ticket from the packed data of InboxMessageDelivered
func decodeRetryableData(t *RetryableTicket, data []byte) error {
	if len(data) < retryableHeaderLength {
		return fmt.Errorf("%w: retryable data too short: %d bytes", relay.ErrFatal, len(data))
	}
	word := func(i int) []byte { return data[i*32 : (i+1)*32] }
	t.Destination = common.BytesToAddress(word(0))
	t.L2CallValue = new(big.Int).SetBytes(word(1))
	t.L1Value = new(big.Int).SetBytes(word(2))
	t.MaxSubmissionFee = new(big.Int).SetBytes(word(3))
	t.ExcessFeeRefundAddress = common.BytesToAddress(word(4))
	t.CallValueRefundAddress = common.BytesToAddress(word(5))
	t.GasLimit = new(big.Int).SetBytes(word(6))
	t.MaxFeePerGas = new(big.Int).SetBytes(word(7))
	dataLength := new(big.Int).SetBytes(word(8))
	rest := data[retryableHeaderLength:]
	if !dataLength.IsUint64() || dataLength.Uint64() > uint64(len(rest)) {
		return fmt.Errorf("%w: retryable calldata length %s exceeds %d bytes", relay.ErrFatal, dataLength, len(rest))
	}
	t.Data = rest[:dataLength.Uint64()]
	return nil
}

// L2ToL1Message is a message sent through ArbSys, executed on the L1 outbox
type L2ToL1Message struct {
	Caller      common.Address
	Destination common.Address
	Hash        common.Hash
	// Position is the index of the message in the outbox merkle accumulator
	Position    *big.Int
	ArbBlockNum *big.Int
	EthBlockNum *big.Int
	Timestamp   *big.Int
	CallValue   *big.Int
	Data        []byte
}

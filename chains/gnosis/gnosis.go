// Package gnosis relays messages over the arbitrary message bridge (AMB) of Gnosis Chain
package gnosis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	hopcommon "github.com/hop-protocol/hop-relay/common"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relay"
)

const (
	defaultGasLimit = 1_500_000
	signatureLength = 65
)

// confirmTransferRoot is the L1 bridge call carried by the messages this relayer acts on
var confirmTransferRootSelector = common.FromHex("0xef6ebe5e")

var _ relay.Adapter = (*Adapter)(nil)

type Config struct {
	// L1AMB is the address of the AMB on L1
	L1AMB common.Address `mapstructure:"L1AMB"`
	// L2AMB is the address of the AMB on Gnosis Chain
	L2AMB common.Address `mapstructure:"L2AMB"`
	// GasLimit of executeSignatures
	GasLimit uint64 `mapstructure:"GasLimit"`
}

type Adapter struct {
	chainID uint64
	l1      L1AMB
	l2      L2AMB
	l2ABI   abi.ABI
	cfg     Config
	logger  *log.Logger
}

// New builds the adapter on top of connected L1 and Gnosis Chain endpoints
func New(logger *log.Logger, l1, l2 *etherman.Endpoint, cfg Config) (*Adapter, error) {
	l1AMB, err := newL1AMB(l1, cfg.L1AMB)
	if err != nil {
		return nil, err
	}
	l2AMB, err := newL2AMB(l2, cfg.L2AMB)
	if err != nil {
		return nil, err
	}
	return newAdapter(logger, l2.ChainID, l1AMB, l2AMB, cfg)
}

func newAdapter(logger *log.Logger, chainID uint64, l1 L1AMB, l2 L2AMB, cfg Config) (*Adapter, error) {
	parsed, err := abi.JSON(strings.NewReader(l2AMBABI))
	if err != nil {
		return nil, err
	}
	if cfg.GasLimit == 0 {
		cfg.GasLimit = defaultGasLimit
	}
	return &Adapter{
		chainID: chainID,
		l1:      l1,
		l2:      l2,
		l2ABI:   parsed,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (a *Adapter) ChainID() uint64 {
	return a.chainID
}

// MessageStage only knows about messages sent from Gnosis Chain; the other direction is validator driven
func (a *Adapter) MessageStage(ctx context.Context, dir relay.Direction, msg relay.CrossDomainMessage) (relay.Stage, error) {
	if dir != relay.DirectionOutbound {
		return relay.StageUnknown, fmt.Errorf("%w: inbound messages are relayed by the AMB validators", relay.ErrUnsupported)
	}
	data, err := a.encodedData(ctx, msg.SourceTxHash)
	if errors.Is(err, etherman.ErrNotFound) {
		return relay.StageWaitingForSourceConfirmation, nil
	} else if err != nil {
		return relay.StageUnknown, err
	}
	return a.stage(ctx, data)
}

func (a *Adapter) stage(ctx context.Context, data []byte) (relay.Stage, error) {
	relayed, err := a.l1.RelayedMessages(ctx, common.BytesToHash(data[:32]))
	if err != nil {
		return relay.StageUnknown, fmt.Errorf("error checking relayedMessages: %w", err)
	}
	if relayed {
		return relay.StageFinalized, nil
	}

	signed, err := a.l2.NumMessagesSigned(ctx, hopcommon.Keccak(data))
	if err != nil {
		return relay.StageUnknown, fmt.Errorf("error getting numMessagesSigned: %w", err)
	}
	processed, err := a.l2.IsAlreadyProcessed(ctx, signed)
	if err != nil {
		return relay.StageUnknown, fmt.Errorf("error checking isAlreadyProcessed: %w", err)
	}
	if !processed {
		return relay.StageWaitingForPublication, nil
	}
	return relay.StageReadyToAct, nil
}

// RelayOutboundMessage collects the validator signatures of the message and executes it on L1
func (a *Adapter) RelayOutboundMessage(ctx context.Context, sourceTxHash common.Hash) (common.Hash, error) {
	data, err := a.encodedData(ctx, sourceTxHash)
	if err != nil {
		return common.Hash{}, err
	}
	stage, err := a.stage(ctx, data)
	if err != nil {
		return common.Hash{}, err
	}
	if err := relay.CheckRelayable(stage); err != nil {
		return common.Hash{}, err
	}

	messageHash := hopcommon.Keccak(data)
	required, err := a.l2.RequiredSignatures(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error getting requiredSignatures: %w", err)
	}
	signatures := make([][]byte, 0, required)
	for i := uint64(0); i < required; i++ {
		sig, err := a.l2.Signature(ctx, messageHash, i)
		if err != nil {
			return common.Hash{}, fmt.Errorf("error getting signature %d of %s: %w", i, messageHash.Hex(), err)
		}
		signatures = append(signatures, sig)
	}
	packed, err := packSignatures(signatures)
	if err != nil {
		return common.Hash{}, err
	}
	a.logger.Infof("executing AMB message %s of tx %s with %d signatures", messageHash.Hex(), sourceTxHash.Hex(), required)
	return a.l1.ExecuteSignatures(ctx, data, packed, a.cfg.GasLimit)
}

func (a *Adapter) RelayInboundMessage(context.Context, common.Hash) (common.Hash, error) {
	return common.Hash{}, fmt.Errorf("%w: inbound messages are relayed by the AMB validators", relay.ErrUnsupported)
}

// encodedData returns the AMB message emitted by txHash
func (a *Adapter) encodedData(ctx context.Context, txHash common.Hash) ([]byte, error) {
	receipt, err := a.l2.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, err
	}
	event := a.l2ABI.Events["UserRequestForSignature"]
	for _, l := range receipt.Logs {
		if l.Address != a.cfg.L2AMB || len(l.Topics) == 0 || l.Topics[0] != event.ID {
			continue
		}
		out, err := event.Inputs.NonIndexed().Unpack(l.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: error decoding UserRequestForSignature: %w", relay.ErrFatal, err)
		}
		data := out[0].([]byte)
		if len(data) >= 32 && bytes.Contains(data, confirmTransferRootSelector) {
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: message is undefined for tx %s", relay.ErrFatal, txHash.Hex())
}

// packSignatures lays out the signatures the way executeSignatures expects them:
// the count, then every v, every r and every s
func packSignatures(signatures [][]byte) ([]byte, error) {
	if len(signatures) > 0xff {
		return nil, fmt.Errorf("too many signatures: %d", len(signatures))
	}
	vs := make([]byte, 0, len(signatures))
	rs := make([]byte, 0, len(signatures)*32)
	ss := make([]byte, 0, len(signatures)*32)
	for i, sig := range signatures {
		if len(sig) != signatureLength {
			return nil, fmt.Errorf("signature %d has length %d, expected %d", i, len(sig), signatureLength)
		}
		rs = append(rs, sig[:32]...)
		ss = append(ss, sig[32:64]...)
		vs = append(vs, sig[64])
	}
	packed := make([]byte, 0, 1+len(vs)+len(rs)+len(ss))
	packed = append(packed, byte(len(signatures)))
	packed = append(packed, vs...)
	packed = append(packed, rs...)
	return append(packed, ss...), nil
}

package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relay"
	"github.com/hop-protocol/hop-relay/rpc/types"
	"github.com/hop-protocol/hop-relay/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// HOP is the namespace of the hop service
	HOP       = "hop"
	meterName = "github.com/hop-protocol/hop-relay/rpc"
)

// HopEndpoints contains implementations for the "hop" RPC endpoints
type HopEndpoints struct {
	logger       *log.Logger
	meter        metric.Meter
	readTimeout  time.Duration
	writeTimeout time.Duration
	proofs       ProofBuilder
	roots        RootReconstructor
	messages     MessageStorage
	poller       MessagePoller
	locators     InclusionLocators
}

// NewHopEndpoints returns HopEndpoints
func NewHopEndpoints(
	logger *log.Logger,
	writeTimeout time.Duration,
	readTimeout time.Duration,
	proofs ProofBuilder,
	roots RootReconstructor,
	messages MessageStorage,
	poller MessagePoller,
	locators InclusionLocators,
) *HopEndpoints {
	meter := otel.Meter(meterName)
	return &HopEndpoints{
		logger:       logger,
		meter:        meter,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		proofs:       proofs,
		roots:        roots,
		messages:     messages,
		poller:       poller,
		locators:     locators,
	}
}

func (h *HopEndpoints) count(ctx context.Context, name string) {
	c, merr := h.meter.Int64Counter(name)
	if merr != nil {
		h.logger.Warnf("failed to create %s counter: %s", name, merr)
	}
	c.Add(ctx, 1)
}

// GetWithdrawalProof returns the merkle proof of a transfer against the root that committed it,
// and the arguments of the withdraw call on the destination chain
func (h *HopEndpoints) GetWithdrawalProof(transferID common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), h.readTimeout)
	defer cancel()
	h.count(ctx, "get_withdrawal_proof")

	proof, err := h.proofs.BuildProof(ctx, transferID)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("failed to build withdrawal proof of transfer %s, error: %s", transferID.Hex(), err))
	}
	return types.WithdrawalProof{
		Proof:   *proof,
		Payload: proof.TxPayload(),
	}, nil
}

// GetTransferRoot returns the ordered transfer ids committed in rootHash on sourceChainID
func (h *HopEndpoints) GetTransferRoot(sourceChainID uint64, token string, rootHash common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), h.readTimeout)
	defer cancel()
	h.count(ctx, "get_transfer_root")

	root, err := h.roots.Reconstruct(ctx, sourceChainID, token, rootHash)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("failed to reconstruct transfer root %s of chain %d, error: %s", rootHash.Hex(), sourceChainID, err))
	}
	return root, nil
}

// GetMessage returns the relay state of the message sent in txHash on sourceChainID
func (h *HopEndpoints) GetMessage(sourceChainID uint64, txHash common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), h.readTimeout)
	defer cancel()
	h.count(ctx, "get_message")

	msg, err := h.messages.GetMessage(ctx, sourceChainID, txHash)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("failed to get message %d:%s, error: %s", sourceChainID, txHash.Hex(), err))
	}
	return msg, nil
}

// SubmitMessage queues a message for relaying. Submitting a known message returns its current state.
func (h *HopEndpoints) SubmitMessage(args types.MessageArgs) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), h.writeTimeout)
	defer cancel()
	h.count(ctx, "submit_message")

	msg, err := h.messages.AddMessage(ctx,
		relay.NewCrossDomainMessage(args.SourceChainID, args.DestinationChainID, args.SourceTxHash))
	if errors.Is(err, storage.ErrAlreadyExists) {
		msg, err = h.messages.GetMessage(ctx, args.SourceChainID, args.SourceTxHash)
	}
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("failed to submit message %d:%s, error: %s", args.SourceChainID, args.SourceTxHash.Hex(), err))
	}
	h.logger.Infof("message %s submitted", msg.ID())
	return msg, nil
}

// PollMessage advances a stored message by one stage now instead of waiting for the relayer.
// A fatal failure is reported through the returned message, which is then Failed.
func (h *HopEndpoints) PollMessage(sourceChainID uint64, txHash common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), h.writeTimeout)
	defer cancel()
	h.count(ctx, "poll_message")

	msg, err := h.poller.PollByID(ctx, sourceChainID, txHash)
	if err != nil && !(relay.Classify(err) == relay.ClassFatal && msg.Stage == relay.StageFailed) {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("failed to poll message %d:%s, error: %s", sourceChainID, txHash.Hex(), err))
	}
	return msg, nil
}

// GetInclusionBlock returns the L1 block where the batch holding txHash, mined in blockNumber on
// chainID, was posted
func (h *HopEndpoints) GetInclusionBlock(chainID uint64, txHash common.Hash, blockNumber uint64) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), h.readTimeout)
	defer cancel()
	h.count(ctx, "get_inclusion_block")

	locator, err := h.locators.InclusionLocator(chainID)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("failed to get inclusion locator of chain %d, error: %s", chainID, err))
	}
	l1Block, err := locator.LocateSourceInclusionBlock(ctx, txHash, blockNumber)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("failed to locate inclusion block of %d:%s, error: %s", chainID, txHash.Hex(), err))
	}
	return types.InclusionBlock{
		ChainID:       chainID,
		TxHash:        txHash,
		L2BlockNumber: blockNumber,
		L1BlockNumber: l1Block,
	}, nil
}

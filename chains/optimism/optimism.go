// Package optimism relays messages of OP stack chains: L2 to L1 withdrawals are proven and then
// finalized on the portal after the challenge period, failed L1 to L2 messages are replayed on L2.
package optimism

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relay"
)

const decodedTxCacheSize = 256

var (
	_ relay.Adapter          = (*Adapter)(nil)
	_ relay.InclusionLocator = (*Adapter)(nil)
)

// MessageStatus is the native status of a message, before it is mapped onto relay.Stage
type MessageStatus int

const (
	StatusUnconfirmedL1ToL2 MessageStatus = iota
	StatusFailedL1ToL2
	StatusStateRootNotPublished
	StatusReadyToProve
	StatusInChallengePeriod
	StatusReadyForRelay
	StatusRelayed
)

func (s MessageStatus) String() string {
	switch s {
	case StatusUnconfirmedL1ToL2:
		return "unconfirmed_l1_to_l2_message"
	case StatusFailedL1ToL2:
		return "failed_l1_to_l2_message"
	case StatusStateRootNotPublished:
		return "state_root_not_published"
	case StatusReadyToProve:
		return "ready_to_prove"
	case StatusInChallengePeriod:
		return "in_challenge_period"
	case StatusReadyForRelay:
		return "ready_for_relay"
	case StatusRelayed:
		return "relayed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Stage maps the native status
func (s MessageStatus) Stage() relay.Stage {
	switch s {
	case StatusUnconfirmedL1ToL2, StatusStateRootNotPublished:
		return relay.StageWaitingForPublication
	case StatusFailedL1ToL2, StatusReadyToProve, StatusReadyForRelay:
		return relay.StageReadyToAct
	case StatusInChallengePeriod:
		return relay.StageInChallengeOrDelayWindow
	case StatusRelayed:
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
	// decoded holds the L2 batches of the batcher transactions already decoded
	decoded *lru.Cache[common.Hash, []Batch]
}

// New builds the adapter on top of connected L1 and L2 endpoints
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
	return newAdapter(logger, l2.ChainID, l1Contracts, l2Contracts, cfg)
}

func newAdapter(logger *log.Logger, chainID uint64, l1 L1, l2 L2, cfg Config) (*Adapter, error) {
	decoded, err := lru.New[common.Hash, []Batch](decodedTxCacheSize)
	if err != nil {
		return nil, err
	}
	return &Adapter{
		chainID: chainID,
		l1:      l1,
		l2:      l2,
		cfg:     cfg,
		logger:  logger,
		decoded: decoded,
	}, nil
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
	case relay.DirectionOutbound:
		var w *Withdrawal
		if w, err = a.l2.Withdrawal(ctx, msg.SourceTxHash); err == nil {
			status, _, err = a.withdrawalStatus(ctx, w)
		}
	case relay.DirectionInbound:
		var m *SentMessage
		if m, err = a.l1.SentMessage(ctx, msg.SourceTxHash); err == nil {
			status, _, err = a.sentMessageStatus(ctx, m)
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

// withdrawalStatus reads the status of an L2 to L1 withdrawal from the portal and the output oracle
func (a *Adapter) withdrawalStatus(ctx context.Context, w *Withdrawal) (MessageStatus, common.Hash, error) {
	hash, err := w.Hash()
	if err != nil {
		return 0, hash, err
	}
	finalized, err := a.l1.FinalizedWithdrawal(ctx, hash)
	if err != nil {
		return 0, hash, fmt.Errorf("error checking finalizedWithdrawals: %w", err)
	}
	if finalized {
		return StatusRelayed, hash, nil
	}

	latest, err := a.l1.LatestOutputBlockNumber(ctx)
	if err != nil {
		return 0, hash, fmt.Errorf("error getting latest output block number: %w", err)
	}
	if w.BlockNumber > latest {
		return StatusStateRootNotPublished, hash, nil
	}

	proven, err := a.l1.ProvenWithdrawal(ctx, hash)
	if err != nil {
		return 0, hash, fmt.Errorf("error checking provenWithdrawals: %w", err)
	}
	if proven.Timestamp == 0 {
		return StatusReadyToProve, hash, nil
	}
	output, err := a.l1.L2Output(ctx, proven.L2OutputIndex)
	if err != nil {
		return 0, hash, fmt.Errorf("error getting output %s: %w", proven.L2OutputIndex, err)
	}
	if output.OutputRoot != proven.OutputRoot {
		a.logger.Warnf("output %s of withdrawal %s was replaced, proving again", proven.L2OutputIndex, hash.Hex())
		return StatusReadyToProve, hash, nil
	}

	period, err := a.l1.FinalizationPeriod(ctx)
	if err != nil {
		return 0, hash, fmt.Errorf("error getting finalization period: %w", err)
	}
	now, err := a.l1.LatestBlockTimestamp(ctx)
	if err != nil {
		return 0, hash, err
	}
	if now <= proven.Timestamp+period || now <= output.Timestamp+period {
		return StatusInChallengePeriod, hash, nil
	}
	return StatusReadyForRelay, hash, nil
}

// sentMessageStatus reads the status of an L1 to L2 message from the L2 messenger
func (a *Adapter) sentMessageStatus(ctx context.Context, m *SentMessage) (MessageStatus, common.Hash, error) {
	hash, err := m.Hash()
	if err != nil {
		return 0, hash, err
	}
	relayed, err := a.l2.SuccessfulMessage(ctx, hash)
	if err != nil {
		return 0, hash, fmt.Errorf("error checking successfulMessages: %w", err)
	}
	if relayed {
		return StatusRelayed, hash, nil
	}
	failed, err := a.l2.FailedMessage(ctx, hash)
	if err != nil {
		return 0, hash, fmt.Errorf("error checking failedMessages: %w", err)
	}
	if failed {
		return StatusFailedL1ToL2, hash, nil
	}
	return StatusUnconfirmedL1ToL2, hash, nil
}

// RelayOutboundMessage handles one step of a withdrawal at a time: it proves it, or finalizes it
// once the challenge period is over. The next step is taken on a later poll.
func (a *Adapter) RelayOutboundMessage(ctx context.Context, sourceTxHash common.Hash) (common.Hash, error) {
	w, err := a.l2.Withdrawal(ctx, sourceTxHash)
	if err != nil {
		return common.Hash{}, err
	}
	status, hash, err := a.withdrawalStatus(ctx, w)
	if err != nil {
		return common.Hash{}, err
	}
	switch status {
	case StatusReadyToProve:
		a.logger.Infof("proving withdrawal %s of tx %s", hash.Hex(), sourceTxHash.Hex())
		return a.prove(ctx, w, hash)
	case StatusReadyForRelay:
		a.logger.Infof("finalizing withdrawal %s of tx %s", hash.Hex(), sourceTxHash.Hex())
		return a.l1.FinalizeWithdrawal(ctx, w)
	case StatusStateRootNotPublished:
		return common.Hash{}, fmt.Errorf("%w: state root not published", relay.ErrTransient)
	case StatusInChallengePeriod:
		return common.Hash{}, fmt.Errorf("%w: message in challenge period", relay.ErrTransient)
	case StatusRelayed:
		return common.Hash{}, fmt.Errorf("%w: message has already been relayed", relay.ErrAlreadyComplete)
	default:
		return common.Hash{}, fmt.Errorf("%w: state not handled for tx %s: %s", relay.ErrFatal, sourceTxHash.Hex(), status)
	}
}

// prove submits the storage proof of the withdrawal against the first output that covers it
func (a *Adapter) prove(ctx context.Context, w *Withdrawal, hash common.Hash) (common.Hash, error) {
	index, err := a.l1.L2OutputIndexAfter(ctx, w.BlockNumber)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error getting output index after block %d: %w", w.BlockNumber, err)
	}
	output, err := a.l1.L2Output(ctx, index)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error getting output %s: %w", index, err)
	}
	header, err := a.l2.HeaderByNumber(ctx, output.L2BlockNumber)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error getting L2 header %d: %w", output.L2BlockNumber, err)
	}
	storageRoot, withdrawalProof, err := a.l2.StorageProof(ctx, StorageSlot(hash), output.L2BlockNumber)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error getting proof of withdrawal %s: %w", hash.Hex(), err)
	}

	proof := OutputRootProof{
		StateRoot:                header.Root,
		MessagePasserStorageRoot: storageRoot,
		LatestBlockhash:          header.Hash(),
	}
	if root := proof.Root(); root != output.OutputRoot {
		return common.Hash{}, fmt.Errorf("%w: output root %s at L2 block %d does not match the proposed %s",
			relay.ErrTransient, root.Hex(), output.L2BlockNumber, output.OutputRoot.Hex())
	}
	return a.l1.ProveWithdrawal(ctx, w, index, proof, withdrawalProof)
}

// RelayInboundMessage replays an L1 to L2 message whose execution failed on L2
func (a *Adapter) RelayInboundMessage(ctx context.Context, sourceTxHash common.Hash) (common.Hash, error) {
	m, err := a.l1.SentMessage(ctx, sourceTxHash)
	if err != nil {
		return common.Hash{}, err
	}
	status, hash, err := a.sentMessageStatus(ctx, m)
	if err != nil {
		return common.Hash{}, err
	}
	if err := relay.CheckRelayable(status.Stage()); err != nil {
		return common.Hash{}, err
	}
	a.logger.Infof("replaying message %s of tx %s", hash.Hex(), sourceTxHash.Hex())
	return a.l2.RelayMessage(ctx, m, a.cfg.RelayGasLimit)
}

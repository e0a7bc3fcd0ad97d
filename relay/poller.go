package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/log"
)

var timeNowFunc = time.Now

// Poller advances cross domain messages one stage per call
type Poller struct {
	logger        *log.Logger
	adapters      AdapterProvider
	l1ChainID     uint64
	resubmitAfter time.Duration
}

// NewPoller creates a poller. resubmitAfter is the time after which a message that was
// submitted but still reads ready to act is submitted again, 0 means never.
func NewPoller(logger *log.Logger, adapters AdapterProvider, l1ChainID uint64, resubmitAfter time.Duration) *Poller {
	return &Poller{
		logger:        logger,
		adapters:      adapters,
		l1ChainID:     l1ChainID,
		resubmitAfter: resubmitAfter,
	}
}

// PollAndAdvance reads the native status of msg and performs at most one stage transition.
// When the message is ready to act exactly one transaction is submitted.
// Transient errors are recorded on the message and swallowed, fatal ones move it to Failed
// and are returned, unclassified ones are returned leaving the message untouched.
func (p *Poller) PollAndAdvance(ctx context.Context, msg CrossDomainMessage) (CrossDomainMessage, error) {
	if msg.Stage.IsTerminal() {
		return msg, nil
	}
	if msg.Stage == "" {
		msg.Stage = StageUnknown
	}

	adapter, dir, err := p.adapterFor(msg)
	if err != nil {
		return msg, err
	}

	stage, err := adapter.MessageStage(ctx, dir, msg)
	if err != nil {
		return p.handleError(msg, err)
	}

	if stage != StageReadyToAct {
		if stage != StageUnknown && stage != msg.Stage {
			p.logger.Infof("message %s: %s -> %s", msg.ID(), msg.Stage, stage)
			msg.Stage = stage
		}
		msg.LastError = ""
		return msg, nil
	}

	if msg.Stage == StageActionSubmitted && !p.canResubmit(msg) {
		p.logger.Debugf("message %s: action already submitted in tx %s, waiting", msg.ID(), msg.SubmittedTxHash.Hex())
		return msg, nil
	}

	var txHash common.Hash
	switch dir {
	case DirectionOutbound:
		txHash, err = adapter.RelayOutboundMessage(ctx, msg.SourceTxHash)
	case DirectionInbound:
		txHash, err = adapter.RelayInboundMessage(ctx, msg.SourceTxHash)
	}
	if err != nil {
		return p.handleError(msg, err)
	}

	p.logger.Infof("message %s: submitted tx %s", msg.ID(), txHash.Hex())
	msg.Stage = StageActionSubmitted
	msg.SubmittedTxHash = txHash
	msg.SubmittedAt = timeNowFunc().Unix()
	msg.LastError = ""
	return msg, nil
}

func (p *Poller) canResubmit(msg CrossDomainMessage) bool {
	if p.resubmitAfter <= 0 {
		return false
	}
	submittedAt := time.Unix(msg.SubmittedAt, 0)
	return timeNowFunc().Sub(submittedAt) >= p.resubmitAfter
}

func (p *Poller) handleError(msg CrossDomainMessage, err error) (CrossDomainMessage, error) {
	switch Classify(err) {
	case ClassTransient:
		p.logger.Debugf("message %s: transient error: %v", msg.ID(), err)
		msg.LastError = err.Error()
		msg.RetryCount++
		return msg, nil
	case ClassAlreadyComplete:
		p.logger.Infof("message %s: already complete: %v", msg.ID(), err)
		msg.Stage = StageFinalized
		msg.LastError = ""
		return msg, nil
	case ClassFatal:
		p.logger.Errorf("message %s: fatal error: %v", msg.ID(), err)
		msg.Stage = StageFailed
		msg.LastError = err.Error()
		return msg, err
	default:
		return msg, err
	}
}

// adapterFor picks the L2 side of the message. Messages sent on L1 are inbound to their destination.
func (p *Poller) adapterFor(msg CrossDomainMessage) (Adapter, Direction, error) {
	chainID, dir := msg.SourceChainID, DirectionOutbound
	if msg.SourceChainID == p.l1ChainID {
		chainID, dir = msg.DestinationChainID, DirectionInbound
	}
	adapter, err := p.adapters.Get(chainID)
	if err != nil {
		return nil, "", fmt.Errorf("error getting adapter for chain %d: %w", chainID, err)
	}
	return adapter, dir, nil
}

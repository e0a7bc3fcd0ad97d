package relay

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Direction of a message relative to the L2 chain served by an adapter
type Direction string

const (
	// DirectionOutbound is a message sent on the adapter's chain, towards L1
	DirectionOutbound Direction = "outbound"
	// DirectionInbound is a message sent on L1, towards the adapter's chain
	DirectionInbound Direction = "inbound"
)

// CrossDomainMessage is one relay unit. It is only mutated by the poller and never deleted.
type CrossDomainMessage struct {
	SourceChainID      uint64      `meddler:"source_chain_id" json:"sourceChainId"`
	DestinationChainID uint64      `meddler:"destination_chain_id" json:"destinationChainId"`
	SourceTxHash       common.Hash `meddler:"source_tx_hash,hash" json:"sourceTxHash"`
	Stage              Stage       `meddler:"stage" json:"stage"`
	LastError          string      `meddler:"last_error" json:"lastError"`
	RetryCount         uint64      `meddler:"retry_count" json:"retryCount"`
	SubmittedTxHash    common.Hash `meddler:"submitted_tx_hash,hash" json:"submittedTxHash"`
	// SubmittedAt is the unix time of the last submission, 0 if nothing was submitted
	SubmittedAt int64 `meddler:"submitted_at" json:"submittedAt"`
	CreatedAt   int64 `meddler:"created_at" json:"createdAt"`
	UpdatedAt   int64 `meddler:"updated_at" json:"updatedAt"`
}

// NewCrossDomainMessage returns a message that has not been polled yet
func NewCrossDomainMessage(sourceChainID, destinationChainID uint64, sourceTxHash common.Hash) CrossDomainMessage {
	return CrossDomainMessage{
		SourceChainID:      sourceChainID,
		DestinationChainID: destinationChainID,
		SourceTxHash:       sourceTxHash,
		Stage:              StageUnknown,
	}
}

// ID identifies the message. A source transaction carries at most one relayable message per chain pair.
func (m CrossDomainMessage) ID() string {
	return fmt.Sprintf("%d:%s", m.SourceChainID, m.SourceTxHash.Hex())
}

func (m CrossDomainMessage) String() string {
	return fmt.Sprintf("SourceChainID: %d, DestinationChainID: %d, SourceTxHash: %s, Stage: %s, RetryCount: %d, LastError: %s",
		m.SourceChainID, m.DestinationChainID, m.SourceTxHash.Hex(), m.Stage, m.RetryCount, m.LastError)
}

// Validate checks the identifying fields
func (m CrossDomainMessage) Validate() error {
	if m.SourceChainID == 0 || m.DestinationChainID == 0 {
		return fmt.Errorf("%w: source and destination chain ids are required", ErrFatal)
	}
	if m.SourceChainID == m.DestinationChainID {
		return fmt.Errorf("%w: source and destination chain are the same (%d)", ErrFatal, m.SourceChainID)
	}
	if m.SourceTxHash == (common.Hash{}) {
		return fmt.Errorf("%w: source tx hash is required", ErrFatal)
	}
	if m.Stage != "" && !m.Stage.IsValid() {
		return fmt.Errorf("%w: unknown stage %q", ErrFatal, m.Stage)
	}
	return nil
}

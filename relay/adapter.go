package relay

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Adapter drives messages between L1 and the L2 chain it serves, mapping the
// native status of that chain onto Stage
type Adapter interface {
	// ChainID is the id of the L2 chain served by the adapter
	ChainID() uint64
	// MessageStage reads the current native status of the message and maps it
	MessageStage(ctx context.Context, dir Direction, msg CrossDomainMessage) (Stage, error)
	// RelayOutboundMessage acts on a message sent on the adapter's chain
	RelayOutboundMessage(ctx context.Context, sourceTxHash common.Hash) (common.Hash, error)
	// RelayInboundMessage acts on a message destined to the adapter's chain
	RelayInboundMessage(ctx context.Context, sourceTxHash common.Hash) (common.Hash, error)
}

// InclusionLocator is implemented by adapters of chains that post many L2 blocks per L1 transaction
type InclusionLocator interface {
	// LocateSourceInclusionBlock returns the L1 block holding the batch that covers the L2 transaction
	LocateSourceInclusionBlock(ctx context.Context, destTxHash common.Hash, destBlockNumber uint64) (uint64, error)
}

// AdapterProvider returns the adapter serving a chain
type AdapterProvider interface {
	Get(chainID uint64) (Adapter, error)
}

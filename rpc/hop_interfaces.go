package rpc

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/relay"
	"github.com/hop-protocol/hop-relay/transferroot"
	"github.com/hop-protocol/hop-relay/withdrawal"
)

type ProofBuilder interface {
	BuildProof(ctx context.Context, transferID common.Hash) (*withdrawal.Proof, error)
}

type RootReconstructor interface {
	Reconstruct(ctx context.Context, sourceChainID uint64, token string,
		rootHash common.Hash) (*transferroot.TransferRoot, error)
}

type MessageStorage interface {
	GetMessage(ctx context.Context, sourceChainID uint64, txHash common.Hash) (relay.CrossDomainMessage, error)
	AddMessage(ctx context.Context, msg relay.CrossDomainMessage) (relay.CrossDomainMessage, error)
}

// InclusionLocators returns the locator of a chain whose transactions are posted to L1 in batches
type InclusionLocators interface {
	InclusionLocator(chainID uint64) (relay.InclusionLocator, error)
}

type MessagePoller interface {
	PollByID(ctx context.Context, sourceChainID uint64, txHash common.Hash) (relay.CrossDomainMessage, error)
}

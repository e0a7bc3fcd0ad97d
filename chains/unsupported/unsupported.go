// Package unsupported serves chains whose canonical messaging is not implemented yet
package unsupported

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/relay"
)

var _ relay.Adapter = (*Adapter)(nil)

// Adapter fails every operation with relay.ErrUnsupported
type Adapter struct {
	chainID uint64
	family  string
}

func New(chainID uint64, family string) *Adapter {
	return &Adapter{
		chainID: chainID,
		family:  family,
	}
}

func (a *Adapter) ChainID() uint64 {
	return a.chainID
}

func (a *Adapter) MessageStage(_ context.Context, dir relay.Direction, _ relay.CrossDomainMessage) (relay.Stage, error) {
	return relay.StageUnknown, a.unsupported(fmt.Sprintf("%s message status", dir))
}

func (a *Adapter) RelayOutboundMessage(context.Context, common.Hash) (common.Hash, error) {
	return common.Hash{}, a.unsupported("outbound relay")
}

func (a *Adapter) RelayInboundMessage(context.Context, common.Hash) (common.Hash, error) {
	return common.Hash{}, a.unsupported("inbound relay")
}

func (a *Adapter) unsupported(op string) error {
	return fmt.Errorf("%w: %s on %s chain %d", relay.ErrUnsupported, op, a.family, a.chainID)
}

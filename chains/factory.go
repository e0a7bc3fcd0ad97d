// Package chains builds the relay adapters of the configured L2 chains and keeps them in a registry
package chains

import (
	"context"
	"fmt"
	"sync"

	"github.com/hop-protocol/hop-relay/chains/arbitrum"
	"github.com/hop-protocol/hop-relay/chains/gnosis"
	"github.com/hop-protocol/hop-relay/chains/linea"
	"github.com/hop-protocol/hop-relay/chains/optimism"
	"github.com/hop-protocol/hop-relay/chains/polygon"
	"github.com/hop-protocol/hop-relay/chains/polygonzk"
	"github.com/hop-protocol/hop-relay/chains/unsupported"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relay"
)

// DialFunc connects to a chain
type DialFunc func(ctx context.Context, logger *log.Logger, cfg etherman.EndpointConfig) (*etherman.Endpoint, error)

// Endpoints dials the L1 and L2 endpoints of a chain on demand
type Endpoints struct {
	cfg    Config
	logger *log.Logger
	dial   DialFunc
}

// Dial connects to both sides of the chain
func (e Endpoints) Dial(ctx context.Context) (l1, l2 *etherman.Endpoint, err error) {
	if l1, err = e.dial(ctx, e.logger, e.cfg.l1Endpoint()); err != nil {
		return nil, nil, fmt.Errorf("error dialing L1 of %s: %w", e.cfg.name(), err)
	}
	if l2, err = e.dial(ctx, e.logger, e.cfg.l2Endpoint()); err != nil {
		return nil, nil, fmt.Errorf("error dialing %s: %w", e.cfg.name(), err)
	}
	return l1, l2, nil
}

// Constructor builds the adapter of a chain family
type Constructor func(ctx context.Context, logger *log.Logger, cfg Config, endpoints Endpoints) (relay.Adapter, error)

// Factory maps chain families to adapter constructors
type Factory struct {
	dial DialFunc

	constructors      map[Family]Constructor
	constructorsMutex sync.RWMutex
}

// NewFactory returns a factory with the constructors of every known family
func NewFactory() *Factory {
	f := &Factory{
		dial:         etherman.DialEndpoint,
		constructors: make(map[Family]Constructor),
	}
	f.registerConstructors()
	return f
}

func (f *Factory) registerConstructors() {
	f.RegisterConstructor(FamilyArbitrum, func(ctx context.Context, logger *log.Logger, cfg Config, e Endpoints) (relay.Adapter, error) {
		l1, l2, err := e.Dial(ctx)
		if err != nil {
			return nil, err
		}
		return arbitrum.New(logger, l1, l2, cfg.Arbitrum)
	})
	f.RegisterConstructor(FamilyOptimism, func(ctx context.Context, logger *log.Logger, cfg Config, e Endpoints) (relay.Adapter, error) {
		l1, l2, err := e.Dial(ctx)
		if err != nil {
			return nil, err
		}
		return optimism.New(logger, l1, l2, cfg.Optimism)
	})
	f.RegisterConstructor(FamilyPolygonZk, func(ctx context.Context, logger *log.Logger, cfg Config, e Endpoints) (relay.Adapter, error) {
		l1, l2, err := e.Dial(ctx)
		if err != nil {
			return nil, err
		}
		return polygonzk.New(logger, l1, l2, cfg.L2URL, cfg.PolygonZk)
	})
	f.RegisterConstructor(FamilyGnosis, func(ctx context.Context, logger *log.Logger, cfg Config, e Endpoints) (relay.Adapter, error) {
		l1, l2, err := e.Dial(ctx)
		if err != nil {
			return nil, err
		}
		return gnosis.New(logger, l1, l2, cfg.Gnosis)
	})
	f.RegisterConstructor(FamilyLinea, func(ctx context.Context, logger *log.Logger, cfg Config, e Endpoints) (relay.Adapter, error) {
		l1, l2, err := e.Dial(ctx)
		if err != nil {
			return nil, err
		}
		return linea.New(logger, l1, l2, cfg.Linea)
	})
	f.RegisterConstructor(FamilyPolygon, func(ctx context.Context, logger *log.Logger, cfg Config, e Endpoints) (relay.Adapter, error) {
		l1, l2, err := e.Dial(ctx)
		if err != nil {
			return nil, err
		}
		return polygon.New(logger, l1, l2, cfg.Polygon)
	})
	for _, family := range []Family{FamilyZkSync, FamilyScroll} {
		f.RegisterConstructor(family, newUnsupported)
	}
}

func newUnsupported(_ context.Context, _ *log.Logger, cfg Config, _ Endpoints) (relay.Adapter, error) {
	return unsupported.New(cfg.ChainID, cfg.Family.String()), nil
}

// RegisterConstructor registers or replaces the constructor of family
func (f *Factory) RegisterConstructor(family Family, constructor Constructor) {
	f.constructorsMutex.Lock()
	defer f.constructorsMutex.Unlock()

	f.constructors[family] = constructor
}

// CreateAdapter builds the adapter of the chain described by cfg
func (f *Factory) CreateAdapter(ctx context.Context, logger *log.Logger, cfg Config) (relay.Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f.constructorsMutex.RLock()
	constructor, ok := f.constructors[cfg.Family]
	f.constructorsMutex.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no constructor registered for chain family %s", cfg.Family)
	}

	chainLogger := logger.WithFields("chain", cfg.name())
	adapter, err := constructor(ctx, chainLogger, cfg, Endpoints{cfg: cfg, logger: chainLogger, dial: f.dial})
	if err != nil {
		return nil, fmt.Errorf("error creating adapter of %s: %w", cfg.name(), err)
	}
	return adapter, nil
}

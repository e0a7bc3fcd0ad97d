package chains

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relay"
)

var ErrChainNotFound = errors.New("chain not found")

var _ relay.AdapterProvider = (*Registry)(nil)

// Registry holds the adapter of every configured chain
type Registry struct {
	logger  *log.Logger
	factory *Factory

	adapters      map[uint64]relay.Adapter
	adaptersMutex sync.RWMutex
}

func NewRegistry(logger *log.Logger, factory *Factory) *Registry {
	return &Registry{
		logger:   logger,
		factory:  factory,
		adapters: make(map[uint64]relay.Adapter),
	}
}

// Add builds the adapter of cfg and registers it, replacing any adapter of the same chain
func (r *Registry) Add(ctx context.Context, cfg Config) error {
	adapter, err := r.factory.CreateAdapter(ctx, r.logger, cfg)
	if err != nil {
		return err
	}
	r.Set(adapter)
	r.logger.Infof("chain %s (%d) registered with the %s adapter", cfg.name(), cfg.ChainID, cfg.Family)
	return nil
}

// Set registers an already built adapter
func (r *Registry) Set(adapter relay.Adapter) {
	r.adaptersMutex.Lock()
	r.adapters[adapter.ChainID()] = adapter
	r.adaptersMutex.Unlock()
}

func (r *Registry) Get(chainID uint64) (relay.Adapter, error) {
	r.adaptersMutex.RLock()
	adapter, ok := r.adapters[chainID]
	r.adaptersMutex.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrChainNotFound, chainID)
	}
	return adapter, nil
}

func (r *Registry) Remove(chainID uint64) {
	r.adaptersMutex.Lock()
	delete(r.adapters, chainID)
	r.adaptersMutex.Unlock()
}

// ChainIDs returns the registered chains in ascending order
func (r *Registry) ChainIDs() []uint64 {
	r.adaptersMutex.RLock()
	ids := make([]uint64, 0, len(r.adapters))
	for id := range r.adapters {
		ids = append(ids, id)
	}
	r.adaptersMutex.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// InclusionLocator returns the adapter of chainID if it can locate the L1 inclusion of its transactions
func (r *Registry) InclusionLocator(chainID uint64) (relay.InclusionLocator, error) {
	adapter, err := r.Get(chainID)
	if err != nil {
		return nil, err
	}
	locator, ok := adapter.(relay.InclusionLocator)
	if !ok {
		return nil, fmt.Errorf("%w: chain %d cannot locate inclusion blocks", relay.ErrUnsupported, chainID)
	}
	return locator, nil
}

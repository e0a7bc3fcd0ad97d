package indexer

import (
	"github.com/hop-protocol/hop-relay/config/types"
	"github.com/hop-protocol/hop-relay/etherman"
)

// Subgraph is the GraphQL endpoint indexing the bridge events of one chain
type Subgraph struct {
	ChainID uint64 `mapstructure:"ChainID"`
	URL     string `mapstructure:"URL"`
}

type Config struct {
	// Subgraphs to query, one per chain. The L1 one answers the root confirmation queries.
	Subgraphs []Subgraph `mapstructure:"Subgraphs"`
	// RequestTimeout bounds every GraphQL request
	RequestTimeout types.Duration `mapstructure:"RequestTimeout"`
	// PageSize is the number of entities fetched per request when paging, 1000 at most
	PageSize uint64 `mapstructure:"PageSize"`
	// Retry applies to every request. Its RPCTimeout defaults to RequestTimeout.
	Retry etherman.RetryConfig `mapstructure:"Retry"`
}

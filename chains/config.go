package chains

import (
	"fmt"

	"github.com/hop-protocol/hop-relay/chains/arbitrum"
	"github.com/hop-protocol/hop-relay/chains/gnosis"
	"github.com/hop-protocol/hop-relay/chains/linea"
	"github.com/hop-protocol/hop-relay/chains/optimism"
	"github.com/hop-protocol/hop-relay/chains/polygon"
	"github.com/hop-protocol/hop-relay/chains/polygonzk"
	"github.com/hop-protocol/hop-relay/config/types"
	"github.com/hop-protocol/hop-relay/etherman"
)

// Config of one L2 chain and of the L1 it settles on
type Config struct {
	// ChainID of the L2 chain
	ChainID uint64 `mapstructure:"ChainID"`
	// Slug is the short name used in logs, e.g. arbitrum
	Slug   string `mapstructure:"Slug"`
	Family Family `mapstructure:"Family"`
	// L1ChainID is the chain id expected from L1URL
	L1ChainID uint64 `mapstructure:"L1ChainID"`
	L1URL     string `mapstructure:"L1URL"`
	L2URL     string `mapstructure:"L2URL"`

	Retry  etherman.RetryConfig     `mapstructure:"Retry"`
	Signer types.KeystoreFileConfig `mapstructure:"Signer"`

	Arbitrum  arbitrum.Config  `mapstructure:"Arbitrum"`
	Optimism  optimism.Config  `mapstructure:"Optimism"`
	PolygonZk polygonzk.Config `mapstructure:"PolygonZk"`
	Gnosis    gnosis.Config    `mapstructure:"Gnosis"`
	Linea     linea.Config     `mapstructure:"Linea"`
	Polygon   polygon.Config   `mapstructure:"Polygon"`
}

// Validate checks the fields shared by every family
func (c Config) Validate() error {
	if c.ChainID == 0 {
		return fmt.Errorf("ChainID is required")
	}
	if _, err := ParseFamily(string(c.Family)); err != nil {
		return fmt.Errorf("chain %d: %w", c.ChainID, err)
	}
	if c.L1ChainID == c.ChainID {
		return fmt.Errorf("chain %d: L1ChainID must differ from ChainID", c.ChainID)
	}
	return nil
}

func (c Config) l1Endpoint() etherman.EndpointConfig {
	return etherman.EndpointConfig{
		ChainID: c.L1ChainID,
		URL:     c.L1URL,
		Retry:   c.Retry,
		Signer:  c.Signer,
	}
}

func (c Config) l2Endpoint() etherman.EndpointConfig {
	return etherman.EndpointConfig{
		ChainID: c.ChainID,
		URL:     c.L2URL,
		Retry:   c.Retry,
		Signer:  c.Signer,
	}
}

func (c Config) name() string {
	if c.Slug != "" {
		return c.Slug
	}
	return fmt.Sprintf("%s(%d)", c.Family, c.ChainID)
}

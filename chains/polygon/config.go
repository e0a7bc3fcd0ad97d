package polygon

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/config/types"
)

const (
	// NetworkMatic is the proof generator network of Polygon PoS mainnet
	NetworkMatic = "matic"
	// NetworkMumbai is the proof generator network of the testnet
	NetworkMumbai = "mumbai"

	defaultProofAPIURL    = "https://proof-generator.polygon.technology"
	defaultGasLimit       = 1_500_000
	defaultRequestTimeout = 30 * time.Second
)

type Config struct {
	// Network is the proof generator network, matic or mumbai
	Network string `mapstructure:"Network"`
	// ProofAPIURL is the base URL of the proof generator
	ProofAPIURL string `mapstructure:"ProofAPIURL"`
	// RootTunnel skips the discovery of the L1 tunnel through the L2 bridge when set
	RootTunnel common.Address `mapstructure:"RootTunnel"`
	// GasLimit of the receiveMessage transactions
	GasLimit uint64 `mapstructure:"GasLimit"`
	// RequestTimeout bounds the proof generator requests
	RequestTimeout types.Duration `mapstructure:"RequestTimeout"`
}

func (c Config) withDefaults() (Config, error) {
	switch c.Network {
	case NetworkMatic, NetworkMumbai:
	case "":
		c.Network = NetworkMatic
	default:
		return c, fmt.Errorf("invalid polygon network %q, expected %s or %s", c.Network, NetworkMatic, NetworkMumbai)
	}
	if c.ProofAPIURL == "" {
		c.ProofAPIURL = defaultProofAPIURL
	}
	if c.GasLimit == 0 {
		c.GasLimit = defaultGasLimit
	}
	if c.RequestTimeout.Duration == 0 {
		c.RequestTimeout = types.NewDuration(defaultRequestTimeout)
	}
	return c, nil
}

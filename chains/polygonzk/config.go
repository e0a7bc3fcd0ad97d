package polygonzk

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/config/types"
)

const (
	// NetworkMatic is the proof generator network of the mainnet deployment
	NetworkMatic = "matic"
	// NetworkMumbai is the proof generator network of the testnet deployment
	NetworkMumbai = "mumbai"

	defaultProofAPIURL      = "https://proof-generator.polygon.technology"
	defaultGasLimit         = 1_500_000
	defaultRequestTimeout   = 30 * time.Second
	defaultFinalityCacheTTL = time.Minute
)

type Config struct {
	// Network is the proof generator network, matic or mumbai
	Network string `mapstructure:"Network"`
	// ProofAPIURL is the base URL of the proof generator
	ProofAPIURL string `mapstructure:"ProofAPIURL"`
	// BridgeServiceURL is the base URL of the bridge service serving deposits and merkle proofs
	BridgeServiceURL string `mapstructure:"BridgeServiceURL"`
	// L1Bridge is the address of the bridge on L1
	L1Bridge common.Address `mapstructure:"L1Bridge"`
	// L2Bridge is the address of the bridge on the zkEVM
	L2Bridge common.Address `mapstructure:"L2Bridge"`
	// L1NetworkID is the bridge network id of L1
	L1NetworkID uint32 `mapstructure:"L1NetworkID"`
	// L2NetworkID is the bridge network id of the zkEVM
	L2NetworkID uint32 `mapstructure:"L2NetworkID"`
	// GasLimit of the claim transactions
	GasLimit uint64 `mapstructure:"GasLimit"`
	// RequestTimeout bounds the REST requests
	RequestTimeout types.Duration `mapstructure:"RequestTimeout"`
	// FinalityCacheTTL is how long the verified batch number is reused
	FinalityCacheTTL types.Duration `mapstructure:"FinalityCacheTTL"`
}

func (c Config) withDefaults() (Config, error) {
	switch c.Network {
	case NetworkMatic, NetworkMumbai:
	case "":
		c.Network = NetworkMatic
	default:
		return c, fmt.Errorf("invalid polygon zk network %q, expected %s or %s", c.Network, NetworkMatic, NetworkMumbai)
	}
	if c.BridgeServiceURL == "" {
		return c, fmt.Errorf("BridgeServiceURL is required")
	}
	if c.ProofAPIURL == "" {
		c.ProofAPIURL = defaultProofAPIURL
	}
	if c.L2NetworkID == 0 {
		c.L2NetworkID = 1
	}
	if c.GasLimit == 0 {
		c.GasLimit = defaultGasLimit
	}
	if c.RequestTimeout.Duration == 0 {
		c.RequestTimeout = types.NewDuration(defaultRequestTimeout)
	}
	if c.FinalityCacheTTL.Duration == 0 {
		c.FinalityCacheTTL = types.NewDuration(defaultFinalityCacheTTL)
	}
	return c, nil
}

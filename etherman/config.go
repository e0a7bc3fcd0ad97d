package etherman

import (
	"time"

	"github.com/hop-protocol/hop-relay/config/types"
)

const (
	defaultMaxRetries     = 5
	defaultRPCTimeout     = 90 * time.Second
	defaultInitialBackoff = time.Second
)

// RetryConfig bounds the retries made around a single RPC call
type RetryConfig struct {
	// MaxRetries is the number of extra attempts after the first one
	MaxRetries int `mapstructure:"MaxRetries"`
	// RPCTimeout bounds each attempt
	RPCTimeout types.Duration `mapstructure:"RPCTimeout"`
	// InitialBackoff is doubled after every failed attempt
	InitialBackoff types.Duration `mapstructure:"InitialBackoff"`
}

// DefaultRetryConfig returns the values used when a chain does not override them
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     defaultMaxRetries,
		RPCTimeout:     types.NewDuration(defaultRPCTimeout),
		InitialBackoff: types.NewDuration(defaultInitialBackoff),
	}
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RPCTimeout.Duration <= 0 {
		c.RPCTimeout = types.NewDuration(defaultRPCTimeout)
	}
	if c.InitialBackoff.Duration <= 0 {
		c.InitialBackoff = types.NewDuration(defaultInitialBackoff)
	}
	return c
}

package arbitrum

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// defaultExecuteGasLimit is the gas limit of outbox executions, where estimation is unreliable
const defaultExecuteGasLimit = 1_500_000

var (
	// L2 precompiles
	arbSysAddr         = common.HexToAddress("0x0000000000000000000000000000000000000064")
	arbRetryableTxAddr = common.HexToAddress("0x000000000000000000000000000000000000006E")
	nodeInterfaceAddr  = common.HexToAddress("0x00000000000000000000000000000000000000C8")
)

type Config struct {
	// Bridge emits MessageDelivered for every delayed inbox message
	Bridge common.Address `mapstructure:"Bridge"`
	// Inbox is the delayed inbox where retryable tickets are created
	Inbox common.Address `mapstructure:"Inbox"`
	// Outbox executes L2 to L1 messages
	Outbox common.Address `mapstructure:"Outbox"`
	// Rollup confirms the L2 state
	Rollup common.Address `mapstructure:"Rollup"`
	// RollupDeploymentBlock is where the search of NodeConfirmed events starts
	RollupDeploymentBlock uint64 `mapstructure:"RollupDeploymentBlock"`
	// ExecuteGasLimit of executeTransaction
	ExecuteGasLimit uint64 `mapstructure:"ExecuteGasLimit"`
	// RedeemGasLimit of redeem, 0 to estimate it
	RedeemGasLimit uint64 `mapstructure:"RedeemGasLimit"`
}

func (c Config) withDefaults() (Config, error) {
	for name, addr := range map[string]common.Address{
		"Bridge": c.Bridge, "Inbox": c.Inbox, "Outbox": c.Outbox, "Rollup": c.Rollup,
	} {
		if addr == (common.Address{}) {
			return c, fmt.Errorf("%s address is required", name)
		}
	}
	if c.ExecuteGasLimit == 0 {
		c.ExecuteGasLimit = defaultExecuteGasLimit
	}
	return c, nil
}

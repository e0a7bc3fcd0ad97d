package optimism

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const defaultRelayGasLimit = 1_000_000

var (
	// L2 predeploys, identical on every OP stack chain
	l2CrossDomainMessengerAddr = common.HexToAddress("0x4200000000000000000000000000000000000007")
	l1BlockAddr                = common.HexToAddress("0x4200000000000000000000000000000000000015")
	messagePasserAddr          = common.HexToAddress("0x4200000000000000000000000000000000000016")
)

type Config struct {
	// L1CrossDomainMessenger is the messenger proxy on L1
	L1CrossDomainMessenger common.Address `mapstructure:"L1CrossDomainMessenger"`
	// OptimismPortal is the portal proxy on L1, where withdrawals are proven and finalized
	OptimismPortal common.Address `mapstructure:"OptimismPortal"`
	// L2OutputOracle is the output oracle proxy on L1
	L2OutputOracle common.Address `mapstructure:"L2OutputOracle"`
	// BatcherAddress is the account posting batches to L1
	BatcherAddress common.Address `mapstructure:"BatcherAddress"`
	// BatchInboxAddress receives the batcher transactions
	BatchInboxAddress common.Address `mapstructure:"BatchInboxAddress"`
	// CheckpointTxBlockGap is the minimum number of L1 blocks between two batcher transactions
	CheckpointTxBlockGap uint64 `mapstructure:"CheckpointTxBlockGap"`
	// RelayGasLimit is used when replaying failed L1 to L2 messages
	RelayGasLimit uint64 `mapstructure:"RelayGasLimit"`
}

func (c Config) withDefaults() (Config, error) {
	if c.OptimismPortal == (common.Address{}) || c.L2OutputOracle == (common.Address{}) {
		return c, fmt.Errorf("OptimismPortal and L2OutputOracle are required")
	}
	if c.L1CrossDomainMessenger == (common.Address{}) {
		return c, fmt.Errorf("L1CrossDomainMessenger is required")
	}
	if c.CheckpointTxBlockGap == 0 {
		c.CheckpointTxBlockGap = 1
	}
	if c.RelayGasLimit == 0 {
		c.RelayGasLimit = defaultRelayGasLimit
	}
	return c, nil
}

// canLocateInclusion is true when the batcher is known
func (c Config) canLocateInclusion() bool {
	return c.BatcherAddress != (common.Address{}) && c.BatchInboxAddress != (common.Address{})
}

package linea

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// defaultGasLimit is set by hand, claimMessage gas estimation is unreliable on Linea
const defaultGasLimit = 500_000

type Config struct {
	// L1MessageService is the address of the rollup contract on L1
	L1MessageService common.Address `mapstructure:"L1MessageService"`
	// L2MessageService is the address of the message service on Linea
	L2MessageService common.Address `mapstructure:"L2MessageService"`
	// GasLimit of the claimMessage transactions
	GasLimit uint64 `mapstructure:"GasLimit"`
	// ClaimedSearchFromBlock is the first L1 block searched for MessageClaimed events,
	// usually the deployment block of L1MessageService
	ClaimedSearchFromBlock uint64 `mapstructure:"ClaimedSearchFromBlock"`
}

func (c Config) withDefaults() (Config, error) {
	if c.L1MessageService == (common.Address{}) || c.L2MessageService == (common.Address{}) {
		return c, fmt.Errorf("L1MessageService and L2MessageService are required")
	}
	if c.GasLimit == 0 {
		c.GasLimit = defaultGasLimit
	}
	return c, nil
}

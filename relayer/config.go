package relayer

import (
	"github.com/hop-protocol/hop-relay/config/types"
)

type Config struct {
	// DBPath is the sqlite file holding the messages and the cached transfer roots
	DBPath string `mapstructure:"DBPath"`
	// PollInterval is the time between two polling cycles
	PollInterval types.Duration `mapstructure:"PollInterval"`
	// MaxConcurrency bounds the messages polled at the same time
	MaxConcurrency int64 `mapstructure:"MaxConcurrency"`
	// ResubmitAfter is how long a submitted message that still reads ready to act waits
	// before being submitted again. Zero disables resubmission.
	ResubmitAfter types.Duration `mapstructure:"ResubmitAfter"`
}

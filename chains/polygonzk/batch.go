package polygonzk

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/log"
)

const verifiedBatchKey = "verified"

// BatchEndpoints reads the zkevm_* batch endpoints of a zkEVM node
type BatchEndpoints struct {
	url      string
	logger   *log.Logger
	verified *expirable.LRU[string, uint64]
}

// NewBatchEndpoints returns a client of the node at url. The verified batch number is cached for ttl,
// since verification happens on L1 every few minutes.
func NewBatchEndpoints(logger *log.Logger, url string, ttl time.Duration) *BatchEndpoints {
	return &BatchEndpoints{
		url:      url,
		logger:   logger,
		verified: expirable.NewLRU[string, uint64](1, nil, ttl),
	}
}

// BatchNumberByBlockNumber returns the batch that contains the L2 block
func (b *BatchEndpoints) BatchNumberByBlockNumber(blockNumber uint64) (uint64, error) {
	return b.callUint64("zkevm_batchNumberByBlockNumber", hexutil.EncodeUint64(blockNumber))
}

// VerifiedBatchNumber returns the last batch verified on L1
func (b *BatchEndpoints) VerifiedBatchNumber() (uint64, error) {
	if n, ok := b.verified.Get(verifiedBatchKey); ok {
		b.logger.Debugf("using cached verified batch number %d", n)
		return n, nil
	}
	n, err := b.callUint64("zkevm_verifiedBatchNumber")
	if err != nil {
		return 0, err
	}
	b.verified.Add(verifiedBatchKey, n)
	return n, nil
}

// IsBlockVerified returns true once the batch containing the L2 block is verified on L1
func (b *BatchEndpoints) IsBlockVerified(blockNumber uint64) (bool, error) {
	batch, err := b.BatchNumberByBlockNumber(blockNumber)
	if err != nil {
		return false, fmt.Errorf("error getting the batch of block %d: %w", blockNumber, err)
	}
	verified, err := b.VerifiedBatchNumber()
	if err != nil {
		return false, fmt.Errorf("error getting the verified batch number: %w", err)
	}
	return batch <= verified, nil
}

func (b *BatchEndpoints) callUint64(method string, params ...interface{}) (uint64, error) {
	response, err := rpc.JSONRPCCall(b.url, method, params...)
	if err != nil {
		return 0, err
	}

	if response.Error != nil {
		return 0, fmt.Errorf("error in the response calling %s: %v", method, response.Error)
	}

	if response.Result == nil || string(response.Result) == "null" {
		return 0, fmt.Errorf("%w: empty result calling %s", etherman.ErrNotFound, method)
	}

	var hex string
	if err := json.Unmarshal(response.Result, &hex); err != nil {
		return 0, fmt.Errorf("error unmarshalling the result calling %s: %w", method, err)
	}
	n, err := hexutil.DecodeUint64(hex)
	if err != nil {
		return 0, fmt.Errorf("error decoding the result calling %s: %w", method, err)
	}
	return n, nil
}

package etherman

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/hop-protocol/hop-relay/log"
)

// ErrNotFound is used when the object is not found
var ErrNotFound = errors.New("not found")

type ethereumClient interface {
	ethereum.ChainReader
	ethereum.ChainStateReader
	ethereum.ChainIDReader
	ethereum.BlockNumberReader
	ethereum.ContractCaller
	ethereum.GasEstimator
	ethereum.GasPricer
	ethereum.GasPricer1559
	ethereum.LogFilterer
	ethereum.PendingStateReader
	ethereum.TransactionReader
	ethereum.TransactionSender
}

type proofReader interface {
	GetProof(ctx context.Context, account common.Address, keys []string, blockNumber *big.Int) (*gethclient.AccountResult, error)
}

type rawCaller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

var _ bind.ContractBackend = (*Client)(nil)

// Client is a chain client whose reads go through Retry
type Client struct {
	EthClient ethereumClient
	proofs    proofReader
	raw       rawCaller
	retry     RetryConfig
	logger    *log.Logger
}

// NewClient dials url and wraps the connection
func NewClient(ctx context.Context, logger *log.Logger, url string, retry RetryConfig) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, url)
	if err != nil {
		logger.Errorf("error connecting to %s: %+v", url, err)
		return nil, err
	}
	c := NewClientFromBackend(logger, ethclient.NewClient(rpcClient), retry)
	c.proofs = gethclient.New(rpcClient)
	c.raw = rpcClient
	return c, nil
}

// NewClientFromBackend wraps an existing backend. Proofs and raw calls are unavailable.
func NewClientFromBackend(logger *log.Logger, backend ethereumClient, retry RetryConfig) *Client {
	return &Client{
		EthClient: backend,
		retry:     retry,
		logger:    logger,
	}
}

func (c *Client) call(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	_, err := Retry(ctx, c.logger, c.retry, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// ChainID returns the chain id reported by the node
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	return Retry(ctx, c.logger, c.retry, "ChainID", c.EthClient.ChainID)
}

// BlockNumber returns the latest block number
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return Retry(ctx, c.logger, c.retry, "BlockNumber", c.EthClient.BlockNumber)
}

// GetSafeBlockNumber gets the safe block number from the node
func (c *Client) GetSafeBlockNumber(ctx context.Context) (uint64, error) {
	return c.getBlockNumber(ctx, rpc.SafeBlockNumber)
}

// GetFinalizedBlockNumber gets the finalized block number from the node
func (c *Client) GetFinalizedBlockNumber(ctx context.Context) (uint64, error) {
	return c.getBlockNumber(ctx, rpc.FinalizedBlockNumber)
}

func (c *Client) getBlockNumber(ctx context.Context, blockNumber rpc.BlockNumber) (uint64, error) {
	header, err := c.HeaderByNumber(ctx, big.NewInt(int64(blockNumber)))
	if err != nil || header == nil {
		return 0, err
	}
	return header.Number.Uint64(), nil
}

// HeaderByNumber returns the header of the given block, nil number meaning latest
func (c *Client) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return Retry(ctx, c.logger, c.retry, "HeaderByNumber", func(ctx context.Context) (*types.Header, error) {
		header, err := c.EthClient.HeaderByNumber(ctx, number)
		return header, mapNotFound(err)
	})
}

// HeaderByHash returns the header with the given hash
func (c *Client) HeaderByHash(ctx context.Context, hash common.Hash) (*types.Header, error) {
	return Retry(ctx, c.logger, c.retry, "HeaderByHash", func(ctx context.Context) (*types.Header, error) {
		header, err := c.EthClient.HeaderByHash(ctx, hash)
		return header, mapNotFound(err)
	})
}

// BlockByNumber returns the full block
func (c *Client) BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error) {
	return Retry(ctx, c.logger, c.retry, "BlockByNumber", func(ctx context.Context) (*types.Block, error) {
		block, err := c.EthClient.BlockByNumber(ctx, number)
		return block, mapNotFound(err)
	})
}

// TransactionByHash returns the transaction with the given hash
func (c *Client) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	var isPending bool
	tx, err := Retry(ctx, c.logger, c.retry, "TransactionByHash", func(ctx context.Context) (*types.Transaction, error) {
		tx, pending, err := c.EthClient.TransactionByHash(ctx, hash)
		isPending = pending
		return tx, mapNotFound(err)
	})
	return tx, isPending, err
}

// TransactionReceipt returns the receipt of a mined transaction
func (c *Client) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return Retry(ctx, c.logger, c.retry, "TransactionReceipt", func(ctx context.Context) (*types.Receipt, error) {
		receipt, err := c.EthClient.TransactionReceipt(ctx, hash)
		return receipt, mapNotFound(err)
	})
}

// CheckTxWasMined reports whether the tx was mined and returns its receipt
func (c *Client) CheckTxWasMined(ctx context.Context, hash common.Hash) (bool, *types.Receipt, error) {
	receipt, err := c.TransactionReceipt(ctx, hash)
	if errors.Is(err, ErrNotFound) {
		return false, nil, nil
	} else if err != nil {
		return false, nil, err
	}
	return true, receipt, nil
}

// FilterLogs returns the logs matching query
func (c *Client) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	return Retry(ctx, c.logger, c.retry, "FilterLogs", func(ctx context.Context) ([]types.Log, error) {
		return c.EthClient.FilterLogs(ctx, query)
	})
}

// SubscribeFilterLogs is not retried, the subscription owns its connection
func (c *Client) SubscribeFilterLogs(
	ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log,
) (ethereum.Subscription, error) {
	return c.EthClient.SubscribeFilterLogs(ctx, query, ch)
}

// CallContract executes a call without creating a transaction
func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return Retry(ctx, c.logger, c.retry, "CallContract", func(ctx context.Context) ([]byte, error) {
		return c.EthClient.CallContract(ctx, msg, blockNumber)
	})
}

// CodeAt returns the code of the given account
func (c *Client) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return Retry(ctx, c.logger, c.retry, "CodeAt", func(ctx context.Context) ([]byte, error) {
		return c.EthClient.CodeAt(ctx, account, blockNumber)
	})
}

// StorageAt returns the value of a storage slot
func (c *Client) StorageAt(
	ctx context.Context, account common.Address, key common.Hash, blockNumber *big.Int,
) ([]byte, error) {
	return Retry(ctx, c.logger, c.retry, "StorageAt", func(ctx context.Context) ([]byte, error) {
		return c.EthClient.StorageAt(ctx, account, key, blockNumber)
	})
}

// PendingCodeAt returns the code of the given account in the pending state
func (c *Client) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return Retry(ctx, c.logger, c.retry, "PendingCodeAt", func(ctx context.Context) ([]byte, error) {
		return c.EthClient.PendingCodeAt(ctx, account)
	})
}

// PendingNonceAt returns the next nonce of the account
func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return Retry(ctx, c.logger, c.retry, "PendingNonceAt", func(ctx context.Context) (uint64, error) {
		return c.EthClient.PendingNonceAt(ctx, account)
	})
}

// SuggestGasPrice returns the legacy gas price
func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return Retry(ctx, c.logger, c.retry, "SuggestGasPrice", c.EthClient.SuggestGasPrice)
}

// SuggestGasTipCap returns the priority fee
func (c *Client) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return Retry(ctx, c.logger, c.retry, "SuggestGasTipCap", c.EthClient.SuggestGasTipCap)
}

// EstimateGas estimates the gas of msg
func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return Retry(ctx, c.logger, c.retry, "EstimateGas", func(ctx context.Context) (uint64, error) {
		return c.EthClient.EstimateGas(ctx, msg)
	})
}

// SendTransaction broadcasts tx. A resend of an already known tx counts as a success.
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	attempts := 0
	return c.call(ctx, "SendTransaction", func(ctx context.Context) error {
		attempts++
		err := c.EthClient.SendTransaction(ctx, tx)
		if err != nil && attempts > 1 && strings.Contains(strings.ToLower(err.Error()), "already known") {
			return nil
		}
		return err
	})
}

// GetProof returns the account and storage proofs at blockNumber
func (c *Client) GetProof(
	ctx context.Context, account common.Address, keys []common.Hash, blockNumber *big.Int,
) (*gethclient.AccountResult, error) {
	if c.proofs == nil {
		return nil, fmt.Errorf("eth_getProof is not available on this client")
	}
	hexKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		hexKeys = append(hexKeys, k.Hex())
	}
	return Retry(ctx, c.logger, c.retry, "GetProof", func(ctx context.Context) (*gethclient.AccountResult, error) {
		return c.proofs.GetProof(ctx, account, hexKeys, blockNumber)
	})
}

// CallRaw performs a JSON-RPC call the typed client does not cover
func (c *Client) CallRaw(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	if c.raw == nil {
		return fmt.Errorf("raw calls are not available on this client")
	}
	return c.call(ctx, method, func(ctx context.Context) error {
		return c.raw.CallContext(ctx, result, method, args...)
	})
}

func mapNotFound(err error) error {
	if errors.Is(err, ethereum.NotFound) {
		return ErrNotFound
	}
	return err
}

package etherman

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/config/types"
	"github.com/hop-protocol/hop-relay/log"
)

// ErrNoSigner is returned when a transaction is requested on an endpoint without signer
var ErrNoSigner = errors.New("no signer configured")

// Endpoint is a connected chain and, optionally, the account that signs on it
type Endpoint struct {
	ChainID uint64
	Client  *Client
	Sender  *Sender
}

// EndpointConfig describes how to reach a chain
type EndpointConfig struct {
	ChainID uint64
	URL     string
	Retry   RetryConfig
	Signer  types.KeystoreFileConfig
}

// DialEndpoint connects to cfg.URL, checks the chain id reported by the node and loads the signer if any
func DialEndpoint(ctx context.Context, logger *log.Logger, cfg EndpointConfig) (*Endpoint, error) {
	client, err := NewClient(ctx, logger, cfg.URL, cfg.Retry)
	if err != nil {
		return nil, err
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting chain id from %s: %w", cfg.URL, err)
	}
	if chainID.Uint64() != cfg.ChainID {
		return nil, fmt.Errorf("chain id mismatch on %s: expected %d, got %d", cfg.URL, cfg.ChainID, chainID.Uint64())
	}

	endpoint := &Endpoint{
		ChainID: cfg.ChainID,
		Client:  client,
	}
	if cfg.Signer.Path == "" {
		logger.Warnf("no signer configured for chain %d, relays on it will fail", cfg.ChainID)
		return endpoint, nil
	}
	endpoint.Sender, err = NewSender(logger, cfg.Signer, cfg.ChainID)
	if err != nil {
		return nil, err
	}
	return endpoint, nil
}

// Transact sends method of contract with the endpoint signer
func (e *Endpoint) Transact(
	ctx context.Context, contract *Contract, gasLimit uint64, method string, args ...interface{},
) (common.Hash, error) {
	if e.Sender == nil {
		return common.Hash{}, fmt.Errorf("chain %d: %w", e.ChainID, ErrNoSigner)
	}
	return e.Sender.Transact(ctx, contract, gasLimit, method, args...)
}

// RawTransact sends encoded calldata to contract with the endpoint signer
func (e *Endpoint) RawTransact(ctx context.Context, contract *Contract, gasLimit uint64, data []byte) (common.Hash, error) {
	if e.Sender == nil {
		return common.Hash{}, fmt.Errorf("chain %d: %w", e.ChainID, ErrNoSigner)
	}
	return e.Sender.RawTransact(ctx, contract, gasLimit, data)
}

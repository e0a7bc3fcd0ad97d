package etherman

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/config/types"
	"github.com/hop-protocol/hop-relay/log"
)

// Sender signs and submits transactions of a single account.
// Transactions go through the backend the target Contract was bound with.
type Sender struct {
	auth   *bind.TransactOpts
	logger *log.Logger

	// transactions of the same account are serialised to keep nonces in order
	mu sync.Mutex
}

// NewSender loads the signer from the keystore
func NewSender(logger *log.Logger, keystore types.KeystoreFileConfig, chainID uint64) (*Sender, error) {
	auth, _, err := LoadAuthFromKeystore(logger, keystore, chainID)
	if err != nil {
		return nil, fmt.Errorf("error loading signer of chain %d: %w", chainID, err)
	}
	return NewSenderWithAuth(logger, auth), nil
}

// NewSenderWithAuth builds a sender around an existing transactor
func NewSenderWithAuth(logger *log.Logger, auth *bind.TransactOpts) *Sender {
	return &Sender{
		auth:   auth,
		logger: logger,
	}
}

// NewSenderFromKey builds a sender from a raw private key
func NewSenderFromKey(logger *log.Logger, key *ecdsa.PrivateKey, chainID uint64) (*Sender, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(key, new(big.Int).SetUint64(chainID))
	if err != nil {
		return nil, err
	}
	return NewSenderWithAuth(logger, auth), nil
}

// From is the address transactions are sent from
func (s *Sender) From() common.Address {
	return s.auth.From
}

// Transact sends method of contract as an EIP-1559 transaction.
// A zero gasLimit lets the node estimate it.
func (s *Sender) Transact(
	ctx context.Context, contract *Contract, gasLimit uint64, method string, args ...interface{},
) (common.Hash, error) {
	data, err := contract.Pack(method, args...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error packing %s: %w", method, err)
	}
	return s.send(ctx, contract, gasLimit, method, data)
}

// RawTransact sends already encoded calldata to contract
func (s *Sender) RawTransact(ctx context.Context, contract *Contract, gasLimit uint64, data []byte) (common.Hash, error) {
	return s.send(ctx, contract, gasLimit, "raw", data)
}

func (s *Sender) send(ctx context.Context, contract *Contract, gasLimit uint64, method string, data []byte) (common.Hash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opts := *s.auth
	opts.Context = ctx
	opts.GasLimit = gasLimit
	tx, err := contract.bound.RawTransact(&opts, data)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error sending %s to %s: %w", method, contract.Address.Hex(), err)
	}
	s.logger.Infow("transaction sent",
		"method", method, "to", contract.Address.Hex(), "hash", tx.Hash().Hex(), "nonce", tx.Nonce(), "gas", tx.Gas())
	return tx.Hash(), nil
}

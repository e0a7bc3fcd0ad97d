package gnosis

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hop-protocol/hop-relay/etherman"
)

// L1AMB is the home side of the arbitrary message bridge
type L1AMB interface {
	RelayedMessages(ctx context.Context, messageID common.Hash) (bool, error)
	ExecuteSignatures(ctx context.Context, data, signatures []byte, gasLimit uint64) (common.Hash, error)
}

// L2AMB is the foreign side of the arbitrary message bridge, where validators sign messages
type L2AMB interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	NumMessagesSigned(ctx context.Context, messageHash common.Hash) (*big.Int, error)
	IsAlreadyProcessed(ctx context.Context, number *big.Int) (bool, error)
	RequiredSignatures(ctx context.Context) (uint64, error)
	Signature(ctx context.Context, messageHash common.Hash, index uint64) ([]byte, error)
}

type l1AMB struct {
	endpoint *etherman.Endpoint
	contract *etherman.Contract
}

func newL1AMB(endpoint *etherman.Endpoint, addr common.Address) (*l1AMB, error) {
	contract, err := etherman.NewContract(endpoint.Client, addr, l1AMBABI)
	if err != nil {
		return nil, err
	}
	return &l1AMB{endpoint: endpoint, contract: contract}, nil
}

func (a *l1AMB) RelayedMessages(ctx context.Context, messageID common.Hash) (bool, error) {
	out, err := a.contract.Call(ctx, "relayedMessages", messageID)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

func (a *l1AMB) ExecuteSignatures(ctx context.Context, data, signatures []byte, gasLimit uint64) (common.Hash, error) {
	return a.endpoint.Transact(ctx, a.contract, gasLimit, "executeSignatures", data, signatures)
}

type l2AMB struct {
	endpoint *etherman.Endpoint
	contract *etherman.Contract
}

func newL2AMB(endpoint *etherman.Endpoint, addr common.Address) (*l2AMB, error) {
	contract, err := etherman.NewContract(endpoint.Client, addr, l2AMBABI)
	if err != nil {
		return nil, err
	}
	return &l2AMB{endpoint: endpoint, contract: contract}, nil
}

func (a *l2AMB) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return a.endpoint.Client.TransactionReceipt(ctx, txHash)
}

func (a *l2AMB) NumMessagesSigned(ctx context.Context, messageHash common.Hash) (*big.Int, error) {
	out, err := a.contract.Call(ctx, "numMessagesSigned", messageHash)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (a *l2AMB) IsAlreadyProcessed(ctx context.Context, number *big.Int) (bool, error) {
	out, err := a.contract.Call(ctx, "isAlreadyProcessed", number)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

func (a *l2AMB) RequiredSignatures(ctx context.Context) (uint64, error) {
	out, err := a.contract.Call(ctx, "requiredSignatures")
	if err != nil {
		return 0, err
	}
	required := out[0].(*big.Int)
	if !required.IsUint64() {
		return 0, fmt.Errorf("required signatures out of range: %s", required)
	}
	return required.Uint64(), nil
}

func (a *l2AMB) Signature(ctx context.Context, messageHash common.Hash, index uint64) ([]byte, error) {
	out, err := a.contract.Call(ctx, "signature", messageHash, new(big.Int).SetUint64(index))
	if err != nil {
		return nil, err
	}
	return out[0].([]byte), nil
}

package etherman

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Contract is a bound contract whose calls go through the retrying client
type Contract struct {
	Address common.Address
	ABI     abi.ABI
	bound   *bind.BoundContract
}

// NewContract parses abiJSON and binds it at address
func NewContract(backend bind.ContractBackend, address common.Address, abiJSON string) (*Contract, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("error parsing abi of %s: %w", address.Hex(), err)
	}
	return NewContractFromABI(backend, address, parsed), nil
}

// NewContractFromABI binds an already parsed abi at address
func NewContractFromABI(backend bind.ContractBackend, address common.Address, parsed abi.ABI) *Contract {
	return &Contract{
		Address: address,
		ABI:     parsed,
		bound:   bind.NewBoundContract(address, parsed, backend, backend, backend),
	}
}

// Call executes a view method and returns its unpacked outputs
func (c *Contract) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	var out []interface{}
	if err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("error calling %s on %s: %w", method, c.Address.Hex(), err)
	}
	return out, nil
}

// CallAt executes a view method against the state at blockNumber
func (c *Contract) CallAt(
	ctx context.Context, blockNumber *big.Int, method string, args ...interface{},
) ([]interface{}, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx, BlockNumber: blockNumber}
	if err := c.bound.Call(opts, &out, method, args...); err != nil {
		return nil, fmt.Errorf("error calling %s on %s at block %s: %w", method, c.Address.Hex(), blockNumber, err)
	}
	return out, nil
}

// Pack encodes the calldata of method
func (c *Contract) Pack(method string, args ...interface{}) ([]byte, error) {
	return c.ABI.Pack(method, args...)
}

// UnpackLog decodes a log emitted by this contract into out
func (c *Contract) UnpackLog(out interface{}, event string, log types.Log) error {
	return c.bound.UnpackLog(out, event, log)
}

// EventID returns the topic of event
func (c *Contract) EventID(event string) (common.Hash, error) {
	ev, ok := c.ABI.Events[event]
	if !ok {
		return common.Hash{}, fmt.Errorf("event %s not found in abi", event)
	}
	return ev.ID, nil
}

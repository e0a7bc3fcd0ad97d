package polygon

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/relay"
)

// Commit is the TransfersCommitted event of a source transaction on Polygon
type Commit struct {
	BlockNumber uint64
	// Bridge is the L2 bridge that emitted the event
	Bridge common.Address
}

// Child is the Polygon side of the tunnel
type Child interface {
	// Commit returns the commit of txHash, etherman.ErrNotFound if the tx is not mined
	Commit(ctx context.Context, txHash common.Hash) (*Commit, error)
	// RootTunnel resolves the L1 tunnel paired with the messenger of bridge
	RootTunnel(ctx context.Context, bridge common.Address) (common.Address, error)
}

// Root is the L1 side of the tunnel
type Root interface {
	// IsProcessed simulates receiveMessage and reports whether the exit was already processed
	IsProcessed(ctx context.Context, tunnel common.Address, payload []byte) (bool, error)
	ReceiveMessage(ctx context.Context, tunnel common.Address, payload []byte, gasLimit uint64) (common.Hash, error)
}

// ProofGenerator serves checkpoints and exit payloads
type ProofGenerator interface {
	BlockIncluded(ctx context.Context, blockNumber uint64) (bool, error)
	ExitPayload(ctx context.Context, txHash, eventSig common.Hash) ([]byte, error)
}

type child struct {
	endpoint *etherman.Endpoint
}

func newChild(endpoint *etherman.Endpoint) *child {
	return &child{endpoint: endpoint}
}

func (c *child) Commit(ctx context.Context, txHash common.Hash) (*Commit, error) {
	receipt, err := c.endpoint.Client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, err
	}
	return parseCommit(receipt)
}

func (c *child) RootTunnel(ctx context.Context, bridge common.Address) (common.Address, error) {
	proxy, err := c.address(ctx, bridge, l2BridgeABI, "messengerProxy")
	if err != nil {
		return common.Address{}, err
	}
	tunnel, err := c.address(ctx, proxy, childTunnelABI, "fxRootTunnel")
	if err != nil {
		return common.Address{}, err
	}
	if tunnel == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: root tunnel of messenger %s is not set", relay.ErrFatal, proxy.Hex())
	}
	return tunnel, nil
}

func (c *child) address(ctx context.Context, addr common.Address, abiJSON, method string) (common.Address, error) {
	contract, err := etherman.NewContract(c.endpoint.Client, addr, abiJSON)
	if err != nil {
		return common.Address{}, err
	}
	out, err := contract.Call(ctx, method)
	if err != nil {
		return common.Address{}, err
	}
	res, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected %s output %v", method, out[0])
	}
	return res, nil
}

func parseCommit(receipt *types.Receipt) (*Commit, error) {
	for _, l := range receipt.Logs {
		if len(l.Topics) > 0 && l.Topics[0] == transfersCommittedSig {
			return &Commit{BlockNumber: receipt.BlockNumber.Uint64(), Bridge: l.Address}, nil
		}
	}
	return nil, fmt.Errorf("%w: no TransfersCommitted in tx %s", relay.ErrFatal, receipt.TxHash.Hex())
}

type root struct {
	endpoint *etherman.Endpoint
	abi      abi.ABI
}

func newRoot(endpoint *etherman.Endpoint) (*root, error) {
	parsed, err := abi.JSON(strings.NewReader(rootTunnelABI))
	if err != nil {
		return nil, err
	}
	return &root{endpoint: endpoint, abi: parsed}, nil
}

func (r *root) IsProcessed(ctx context.Context, tunnel common.Address, payload []byte) (bool, error) {
	data, err := r.abi.Pack("receiveMessage", payload)
	if err != nil {
		return false, err
	}
	msg := ethereum.CallMsg{To: &tunnel, Data: data}
	if r.endpoint.Sender != nil {
		msg.From = r.endpoint.Sender.From()
	}
	_, err = r.endpoint.Client.CallContract(ctx, msg, nil)
	if err == nil {
		return false, nil
	}
	if isExitProcessed(err) {
		return true, nil
	}
	return false, fmt.Errorf("error simulating receiveMessage on %s: %w", tunnel.Hex(), err)
}

// isExitProcessed matches the revert reason in the message, or in the revert data of nodes that only return it there
func isExitProcessed(err error) bool {
	if strings.Contains(err.Error(), exitAlreadyProcessed) {
		return true
	}
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return false
	}
	data, ok := dataErr.ErrorData().(string)
	if !ok {
		return false
	}
	revert, err := hexutil.Decode(data)
	if err != nil {
		return false
	}
	reason, err := abi.UnpackRevert(revert)
	return err == nil && reason == exitAlreadyProcessed
}

func (r *root) ReceiveMessage(ctx context.Context, tunnel common.Address, payload []byte, gasLimit uint64) (common.Hash, error) {
	contract := etherman.NewContractFromABI(r.endpoint.Client, tunnel, r.abi)
	return r.endpoint.Transact(ctx, contract, gasLimit, "receiveMessage", payload)
}

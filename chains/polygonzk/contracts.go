package polygonzk

import (
	"context"
	"fmt"

	"github.com/0xPolygon/cdk-contracts-tooling/contracts/banana/polygonzkevmbridgev2"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/relay"
)

// BridgeMessage is the BridgeEvent emitted by a source transaction
type BridgeMessage struct {
	BlockNumber        uint64
	LeafType           uint8
	OriginNetwork      uint32
	DestinationNetwork uint32
	DestinationAddress common.Address
	DepositCount       uint32
}

// Bridge is one side of the zkEVM bridge
type Bridge interface {
	// BridgeMessage returns the message bridged by txHash, etherman.ErrNotFound if the tx is not mined
	BridgeMessage(ctx context.Context, txHash common.Hash) (*BridgeMessage, error)
	IsClaimed(ctx context.Context, depositCount, sourceNetwork uint32) (bool, error)
	Claim(ctx context.Context, claim *Claim, gasLimit uint64) (common.Hash, error)
}

// ProofService serves the data needed to claim a deposit
type ProofService interface {
	BlockIncluded(ctx context.Context, blockNumber uint64) (bool, error)
	Deposit(ctx context.Context, networkID, depositCnt uint32) (*Deposit, error)
	MerkleProof(ctx context.Context, networkID, depositCnt uint32) (*MerkleProof, error)
}

// Finality tells whether an L2 block is verified on L1
type Finality interface {
	IsBlockVerified(blockNumber uint64) (bool, error)
}

type bridge struct {
	addr     common.Address
	endpoint *etherman.Endpoint
	contract *polygonzkevmbridgev2.Polygonzkevmbridgev2
	claimer  *etherman.Contract
	abi      *abi.ABI
}

func newBridge(endpoint *etherman.Endpoint, addr common.Address) (*bridge, error) {
	contract, err := polygonzkevmbridgev2.NewPolygonzkevmbridgev2(addr, endpoint.Client)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate bridge contract at addr %s. Err: %w", addr.String(), err)
	}
	bridgeABI, err := polygonzkevmbridgev2.Polygonzkevmbridgev2MetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return &bridge{
		addr:     addr,
		endpoint: endpoint,
		contract: contract,
		claimer:  etherman.NewContractFromABI(endpoint.Client, addr, *bridgeABI),
		abi:      bridgeABI,
	}, nil
}

func (b *bridge) BridgeMessage(ctx context.Context, txHash common.Hash) (*BridgeMessage, error) {
	receipt, err := b.endpoint.Client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, err
	}
	return parseBridgeMessage(b.contract, b.addr, receipt)
}

func (b *bridge) IsClaimed(ctx context.Context, depositCount, sourceNetwork uint32) (bool, error) {
	return b.contract.IsClaimed(&bind.CallOpts{Context: ctx}, depositCount, sourceNetwork)
}

func (b *bridge) Claim(ctx context.Context, claim *Claim, gasLimit uint64) (common.Hash, error) {
	data, err := buildClaimTxData(b.abi, claim)
	if err != nil {
		return common.Hash{}, err
	}
	return b.endpoint.RawTransact(ctx, b.claimer, gasLimit, data)
}

// parseBridgeMessage returns the first message leaf bridged through addr in receipt
func parseBridgeMessage(
	contract *polygonzkevmbridgev2.Polygonzkevmbridgev2, addr common.Address, receipt *types.Receipt,
) (*BridgeMessage, error) {
	for _, l := range receipt.Logs {
		if l.Address != addr {
			continue
		}
		event, err := contract.ParseBridgeEvent(*l)
		if err != nil {
			continue
		}
		if event.LeafType != LeafTypeMessage {
			continue
		}
		return &BridgeMessage{
			BlockNumber:        receipt.BlockNumber.Uint64(),
			LeafType:           event.LeafType,
			OriginNetwork:      event.OriginNetwork,
			DestinationNetwork: event.DestinationNetwork,
			DestinationAddress: event.DestinationAddress,
			DepositCount:       event.DepositCount,
		}, nil
	}
	return nil, fmt.Errorf("%w: message is undefined, no BridgeEvent of %s in tx %s",
		relay.ErrFatal, addr.Hex(), receipt.TxHash.Hex())
}

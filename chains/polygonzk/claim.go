package polygonzk

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const (
	// LeafTypeAsset represents a bridge asset
	LeafTypeAsset uint8 = 0
	// LeafTypeMessage represents a bridge message
	LeafTypeMessage uint8 = 1

	proofLength = 32
)

type Claim struct {
	LeafType            uint8
	ProofLocalExitRoot  [proofLength]common.Hash
	ProofRollupExitRoot [proofLength]common.Hash
	GlobalIndex         *big.Int
	MainnetExitRoot     common.Hash
	RollupExitRoot      common.Hash
	OriginNetwork       uint32
	OriginTokenAddress  common.Address
	DestinationNetwork  uint32
	DestinationAddress  common.Address
	Amount              *big.Int
	Metadata            []byte
}

// GlobalIndex locates a deposit among all the exit trees: mainnet deposits set bit 64,
// rollup deposits carry the rollup index in the upper 32 bits
func GlobalIndex(networkID, depositCnt uint32) *big.Int {
	index := new(big.Int).SetUint64(uint64(depositCnt))
	if networkID == 0 {
		return index.Or(index, new(big.Int).Lsh(big.NewInt(1), 64))
	}
	rollup := new(big.Int).Lsh(new(big.Int).SetUint64(uint64(networkID-1)), 32)
	return index.Or(index, rollup)
}

// newClaim puts together a deposit and its proof
func newClaim(deposit *Deposit, proof *MerkleProof, depositCnt uint32) (*Claim, error) {
	amount, err := decimal("amount", deposit.Amount)
	if err != nil {
		return nil, err
	}
	globalIndex := GlobalIndex(deposit.NetworkID, depositCnt)
	if deposit.GlobalIndex != "" {
		if globalIndex, err = decimal("global index", deposit.GlobalIndex); err != nil {
			return nil, err
		}
	}
	claim := &Claim{
		LeafType:           deposit.LeafType,
		GlobalIndex:        globalIndex,
		MainnetExitRoot:    proof.MainExitRoot,
		RollupExitRoot:     proof.RollupExitRoot,
		OriginNetwork:      deposit.OrigNet,
		OriginTokenAddress: deposit.OrigAddr,
		DestinationNetwork: deposit.DestNet,
		DestinationAddress: deposit.DestAddr,
		Amount:             amount,
		Metadata:           common.FromHex(deposit.Metadata),
	}
	copy(claim.ProofLocalExitRoot[:], proof.MerkleProof)
	copy(claim.ProofRollupExitRoot[:], proof.RollupMerkleProof)
	return claim, nil
}

func buildClaimTxData(bridgeABI *abi.ABI, claim *Claim) ([]byte, error) {
	method := ""
	switch claim.LeafType {
	case LeafTypeAsset:
		method = "claimAsset"
	case LeafTypeMessage:
		method = "claimMessage"
	default:
		return nil, fmt.Errorf("unexpected leaf type %d", claim.LeafType)
	}
	return bridgeABI.Pack(
		method,
		claim.ProofLocalExitRoot,  // bytes32[32] smtProofLocalExitRoot
		claim.ProofRollupExitRoot, // bytes32[32] smtProofRollupExitRoot
		claim.GlobalIndex,         // uint256 globalIndex
		claim.MainnetExitRoot,     // bytes32 mainnetExitRoot
		claim.RollupExitRoot,      // bytes32 rollupExitRoot
		claim.OriginNetwork,       // uint32 originNetwork
		claim.OriginTokenAddress,  // address originTokenAddress
		claim.DestinationNetwork,  // uint32 destinationNetwork
		claim.DestinationAddress,  // address destinationAddress
		claim.Amount,              // uint256 amount
		claim.Metadata,            // bytes metadata
	)
}

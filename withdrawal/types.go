package withdrawal

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	treetypes "github.com/hop-protocol/hop-relay/tree/types"
)

// Proof has everything needed to withdraw a transfer on its destination chain with a merkle proof
type Proof struct {
	TransferID       common.Hash   `json:"transferId"`
	TransferRootHash common.Hash   `json:"transferRootHash"`
	Leaves           []common.Hash `json:"leaves"`
	Proof            []common.Hash `json:"proof"`
	TransferIndex    uint64        `json:"transferIndex"`
	RootTotalAmount  *big.Int      `json:"rootTotalAmount"`
	TotalLeaves      uint64        `json:"numLeaves"`

	SourceChainID      uint64         `json:"sourceChainId"`
	DestinationChainID uint64         `json:"destinationChainId"`
	Token              string         `json:"token"`
	Recipient          common.Address `json:"recipient"`
	Amount             *big.Int       `json:"amount"`
	TransferNonce      common.Hash    `json:"transferNonce"`
	BonderFee          *big.Int       `json:"bonderFee"`
	AmountOutMin       *big.Int       `json:"amountOutMin"`
	Deadline           uint64         `json:"deadline"`
}

// TxPayload are the arguments of the bridge withdraw call
type TxPayload struct {
	Recipient           common.Address `json:"recipient"`
	Amount              *big.Int       `json:"amount"`
	TransferNonce       common.Hash    `json:"transferNonce"`
	BonderFee           *big.Int       `json:"bonderFee"`
	AmountOutMin        *big.Int       `json:"amountOutMin"`
	Deadline            uint64         `json:"deadline"`
	TransferRootHash    common.Hash    `json:"transferRootHash"`
	RootTotalAmount     *big.Int       `json:"rootTotalAmount"`
	TransferIDTreeIndex uint64         `json:"transferIdTreeIndex"`
	Siblings            []common.Hash  `json:"siblings"`
	TotalLeaves         uint64         `json:"totalLeaves"`
}

// TxPayload returns the withdraw call arguments
func (p *Proof) TxPayload() TxPayload {
	return TxPayload{
		Recipient:           p.Recipient,
		Amount:              p.Amount,
		TransferNonce:       p.TransferNonce,
		BonderFee:           p.BonderFee,
		AmountOutMin:        p.AmountOutMin,
		Deadline:            p.Deadline,
		TransferRootHash:    p.TransferRootHash,
		RootTotalAmount:     p.RootTotalAmount,
		TransferIDTreeIndex: p.TransferIndex,
		Siblings:            p.Proof,
		TotalLeaves:         p.TotalLeaves,
	}
}

// MerkleProof returns the inclusion proof of the transfer id
func (p *Proof) MerkleProof() treetypes.Proof {
	return treetypes.Proof{
		Leaf:        p.TransferID,
		Siblings:    p.Proof,
		LeafIndex:   p.TransferIndex,
		TotalLeaves: p.TotalLeaves,
	}
}

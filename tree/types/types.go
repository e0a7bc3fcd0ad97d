package types

import (
	"github.com/ethereum/go-ethereum/common"
)

// Proof is a merkle inclusion proof. Siblings are ordered from the leaf level up to the root.
type Proof struct {
	Leaf        common.Hash   `json:"leaf"`
	Siblings    []common.Hash `json:"siblings"`
	LeafIndex   uint64        `json:"leafIndex"`
	TotalLeaves uint64        `json:"totalLeaves"`
}

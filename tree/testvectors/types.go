package testvectors

import (
	"github.com/ethereum/go-ethereum/common"
)

// RootVector is a leaf sequence with its expected root and the proof of one of its leaves.
// The vectors were generated padding the leaves with keccak256(0x00*32) up to the next power of two.
type RootVector struct {
	Leaves        []common.Hash `json:"leaves"`
	ExpectedRoot  common.Hash   `json:"expectedRoot"`
	ProofIndex    uint64        `json:"proofIndex"`
	ExpectedProof []common.Hash `json:"expectedProof"`
}

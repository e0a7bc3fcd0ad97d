package transferroot

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TransferSent is a leaf candidate, as emitted on the source chain
type TransferSent struct {
	TransferID         common.Hash    `json:"transferId"`
	Index              uint64         `json:"index"`
	BlockNumber        uint64         `json:"blockNumber"`
	TransactionIndex   uint64         `json:"transactionIndex"`
	TransactionHash    common.Hash    `json:"transactionHash"`
	SourceChainID      uint64         `json:"sourceChainId"`
	DestinationChainID uint64         `json:"destinationChainId"`
	Recipient          common.Address `json:"recipient"`
	Amount             *big.Int       `json:"amount"`
	TransferNonce      common.Hash    `json:"transferNonce"`
	BonderFee          *big.Int       `json:"bonderFee"`
	AmountOutMin       *big.Int       `json:"amountOutMin"`
	Deadline           uint64         `json:"deadline"`
	Timestamp          uint64         `json:"timestamp"`
	Token              string         `json:"token"`
}

func (t TransferSent) String() string {
	return fmt.Sprintf("TransferID: %s, Index: %d, BlockNumber: %d, TransactionIndex: %d",
		t.TransferID.Hex(), t.Index, t.BlockNumber, t.TransactionIndex)
}

// TransfersCommitted marks the end of a commit epoch
type TransfersCommitted struct {
	RootHash           common.Hash `json:"rootHash"`
	SourceChainID      uint64      `json:"sourceChainId"`
	DestinationChainID uint64      `json:"destinationChainId"`
	TotalAmount        *big.Int    `json:"totalAmount"`
	BlockNumber        uint64      `json:"blockNumber"`
	TransactionIndex   uint64      `json:"transactionIndex"`
	TransactionHash    common.Hash `json:"transactionHash"`
	Timestamp          uint64      `json:"timestamp"`
	Token              string      `json:"token"`
}

// TransferRoot is a reconstructed root. TransferIDs always hash to RootHash.
type TransferRoot struct {
	RootHash           common.Hash   `meddler:"root_hash,hash" json:"rootHash"`
	SourceChainID      uint64        `meddler:"source_chain_id" json:"sourceChainId"`
	DestinationChainID uint64        `meddler:"destination_chain_id" json:"destinationChainId"`
	Token              string        `meddler:"token" json:"token"`
	TotalAmount        *big.Int      `meddler:"total_amount,bigint" json:"totalAmount"`
	TransferIDs        []common.Hash `meddler:"transfer_ids,hashes" json:"transferIds"`
	CommitBlockNumber  uint64        `meddler:"commit_block_number" json:"commitBlockNumber"`
	CommittedAt        uint64        `meddler:"committed_at" json:"committedAt"`
	Committed          bool          `meddler:"committed" json:"committed"`
	RootSet            bool          `meddler:"root_set" json:"rootSet"`
	RootConfirmed      bool          `meddler:"root_confirmed" json:"rootConfirmed"`

	// Transfers are the leaf events in tree order. They are not persisted.
	Transfers []TransferSent `meddler:"-" json:"-"`
	// MissingIndexes lists the indexes absent below the highest index seen in the epoch
	MissingIndexes []uint64 `meddler:"missing_indexes,json" json:"missingIndexes,omitempty"`
	LastIndex      uint64   `meddler:"last_index" json:"lastIndex"`
}

// Contains returns the position of transferID among the leaves
func (r *TransferRoot) Contains(transferID common.Hash) (int, bool) {
	for i, id := range r.TransferIDs {
		if id == transferID {
			return i, true
		}
	}
	return 0, false
}

// DeploymentBlock is the block the bridge was deployed at on a source chain
type DeploymentBlock struct {
	ChainID     uint64 `mapstructure:"ChainID"`
	BlockNumber uint64 `mapstructure:"BlockNumber"`
}

// Config of the reconstructor
type Config struct {
	// DeploymentBlocks bound the first commit epoch of each listed chain.
	// Without a hint, reconstructing the first root of a chain fails with ErrAmbiguousEarliestRoot.
	DeploymentBlocks []DeploymentBlock `mapstructure:"DeploymentBlocks"`
}

func (c Config) deploymentBlock(chainID uint64) (uint64, bool) {
	for _, d := range c.DeploymentBlocks {
		if d.ChainID == chainID {
			return d.BlockNumber, true
		}
	}
	return 0, false
}

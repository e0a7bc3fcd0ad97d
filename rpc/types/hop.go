package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/withdrawal"
)

// WithdrawalProof is the proof of a transfer together with the arguments of the withdraw call
type WithdrawalProof struct {
	withdrawal.Proof
	Payload withdrawal.TxPayload `json:"txPayload"`
}

// InclusionBlock is the L1 block holding the batch of an L2 transaction
type InclusionBlock struct {
	ChainID       uint64      `json:"chainId"`
	TxHash        common.Hash `json:"txHash"`
	L2BlockNumber uint64      `json:"l2BlockNumber"`
	L1BlockNumber uint64      `json:"l1BlockNumber"`
}

// MessageArgs identify a cross domain message to be relayed
type MessageArgs struct {
	SourceChainID      uint64      `json:"sourceChainId"`
	DestinationChainID uint64      `json:"destinationChainId"`
	SourceTxHash       common.Hash `json:"sourceTxHash"`
}

package indexer

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	hopcommon "github.com/hop-protocol/hop-relay/common"
	"github.com/hop-protocol/hop-relay/transferroot"
)

// Subgraph entities encode every number as a decimal string

type transferSentEntity struct {
	ID                 string `json:"id"`
	TransferID         string `json:"transferId"`
	DestinationChainID string `json:"destinationChainId"`
	Recipient          string `json:"recipient"`
	Amount             string `json:"amount"`
	TransferNonce      string `json:"transferNonce"`
	BonderFee          string `json:"bonderFee"`
	Index              string `json:"index"`
	AmountOutMin       string `json:"amountOutMin"`
	Deadline           string `json:"deadline"`
	TransactionHash    string `json:"transactionHash"`
	TransactionIndex   string `json:"transactionIndex"`
	Timestamp          string `json:"timestamp"`
	BlockNumber        string `json:"blockNumber"`
	Token              string `json:"token"`
}

func (e transferSentEntity) toTransferSent(sourceChainID uint64) (transferroot.TransferSent, error) {
	p := &numberParser{entity: "TransferSent " + e.ID}
	t := transferroot.TransferSent{
		TransferID:         p.hash("transferId", e.TransferID),
		Index:              p.uint("index", e.Index),
		BlockNumber:        p.uint("blockNumber", e.BlockNumber),
		TransactionIndex:   p.uint("transactionIndex", e.TransactionIndex),
		TransactionHash:    p.hash("transactionHash", e.TransactionHash),
		SourceChainID:      sourceChainID,
		DestinationChainID: p.uint("destinationChainId", e.DestinationChainID),
		Recipient:          common.HexToAddress(e.Recipient),
		Amount:             p.big("amount", e.Amount),
		TransferNonce:      p.hash("transferNonce", e.TransferNonce),
		BonderFee:          p.big("bonderFee", e.BonderFee),
		AmountOutMin:       p.big("amountOutMin", e.AmountOutMin),
		Deadline:           p.uint("deadline", e.Deadline),
		Timestamp:          p.uint("timestamp", e.Timestamp),
		Token:              e.Token,
	}
	return t, p.err
}

type transfersCommittedEntity struct {
	ID                 string `json:"id"`
	RootHash           string `json:"rootHash"`
	DestinationChainID string `json:"destinationChainId"`
	TotalAmount        string `json:"totalAmount"`
	RootCommittedAt    string `json:"rootCommittedAt"`
	TransactionHash    string `json:"transactionHash"`
	TransactionIndex   string `json:"transactionIndex"`
	Timestamp          string `json:"timestamp"`
	BlockNumber        string `json:"blockNumber"`
	Token              string `json:"token"`
}

func (e transfersCommittedEntity) toTransfersCommitted(sourceChainID uint64) (*transferroot.TransfersCommitted, error) {
	p := &numberParser{entity: "TransfersCommitted " + e.ID}
	c := &transferroot.TransfersCommitted{
		RootHash:           p.hash("rootHash", e.RootHash),
		SourceChainID:      sourceChainID,
		DestinationChainID: p.uint("destinationChainId", e.DestinationChainID),
		TotalAmount:        p.big("totalAmount", e.TotalAmount),
		BlockNumber:        p.uint("blockNumber", e.BlockNumber),
		TransactionIndex:   p.uint("transactionIndex", e.TransactionIndex),
		TransactionHash:    p.hash("transactionHash", e.TransactionHash),
		Timestamp:          p.uint("timestamp", e.Timestamp),
		Token:              e.Token,
	}
	if p.err != nil {
		return nil, p.err
	}
	return c, nil
}

type idEntity struct {
	ID string `json:"id"`
}

// numberParser keeps the first conversion error
type numberParser struct {
	entity string
	err    error
}

func (p *numberParser) fail(field, value string) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %s has invalid %s %q", ErrInvalidEntity, p.entity, field, value)
	}
}

func (p *numberParser) uint(field, value string) uint64 {
	if value == "" {
		return 0
	}
	n, err := strconv.ParseUint(value, 10, 64) //nolint:mnd
	if err != nil {
		p.fail(field, value)
	}
	return n
}

func (p *numberParser) big(field, value string) *big.Int {
	if value == "" {
		return nil
	}
	n := hopcommon.BigIntFromDecimal(value)
	if n == nil {
		p.fail(field, value)
	}
	return n
}

func (p *numberParser) hash(field, value string) common.Hash {
	if value == "" {
		return common.Hash{}
	}
	b, err := hexutil.Decode(value)
	if err != nil || len(b) > common.HashLength {
		p.fail(field, value)
		return common.Hash{}
	}
	return common.BytesToHash(b)
}

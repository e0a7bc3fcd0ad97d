package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/relay"
	"github.com/hop-protocol/hop-relay/rpc/types"
	"github.com/hop-protocol/hop-relay/transferroot"
)

// HopClientInterface is implemented by Client, one method per hop endpoint
type HopClientInterface interface {
	GetWithdrawalProof(transferID common.Hash) (*types.WithdrawalProof, error)
	GetTransferRoot(sourceChainID uint64, token string, rootHash common.Hash) (*transferroot.TransferRoot, error)
	GetMessage(sourceChainID uint64, txHash common.Hash) (*relay.CrossDomainMessage, error)
	SubmitMessage(args types.MessageArgs) (*relay.CrossDomainMessage, error)
	PollMessage(sourceChainID uint64, txHash common.Hash) (*relay.CrossDomainMessage, error)
	GetInclusionBlock(chainID uint64, txHash common.Hash, blockNumber uint64) (*types.InclusionBlock, error)
}

var _ HopClientInterface = (*Client)(nil)

// Client calls the hop endpoints of a relay server
type Client struct {
	url string
}

func NewClient(url string) *Client {
	return &Client{url: url}
}

// GetWithdrawalProof returns the merkle proof of a transfer and the arguments of its withdraw call
func (c *Client) GetWithdrawalProof(transferID common.Hash) (*types.WithdrawalProof, error) {
	var result types.WithdrawalProof
	if err := c.call(&result, "hop_getWithdrawalProof", transferID); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTransferRoot returns the ordered transfer ids of a committed root
func (c *Client) GetTransferRoot(sourceChainID uint64, token string,
	rootHash common.Hash) (*transferroot.TransferRoot, error) {
	var result transferroot.TransferRoot
	if err := c.call(&result, "hop_getTransferRoot", sourceChainID, token, rootHash); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMessage returns the relay state of a message
func (c *Client) GetMessage(sourceChainID uint64, txHash common.Hash) (*relay.CrossDomainMessage, error) {
	return c.message("hop_getMessage", sourceChainID, txHash)
}

// SubmitMessage queues a message for relaying
func (c *Client) SubmitMessage(args types.MessageArgs) (*relay.CrossDomainMessage, error) {
	return c.message("hop_submitMessage", args)
}

// PollMessage advances a message by one stage
func (c *Client) PollMessage(sourceChainID uint64, txHash common.Hash) (*relay.CrossDomainMessage, error) {
	return c.message("hop_pollMessage", sourceChainID, txHash)
}

// GetInclusionBlock returns the L1 block holding the batch of an L2 transaction
func (c *Client) GetInclusionBlock(chainID uint64, txHash common.Hash,
	blockNumber uint64) (*types.InclusionBlock, error) {
	var result types.InclusionBlock
	if err := c.call(&result, "hop_getInclusionBlock", chainID, txHash, blockNumber); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) message(method string, parameters ...interface{}) (*relay.CrossDomainMessage, error) {
	var result relay.CrossDomainMessage
	if err := c.call(&result, method, parameters...); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) call(result interface{}, method string, parameters ...interface{}) error {
	response, err := rpc.JSONRPCCall(c.url, method, parameters...)
	if err != nil {
		return err
	}
	if response.Error != nil {
		return fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	return json.Unmarshal(response.Result, result)
}

package optimism

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/relay"
)

// OutputProposal is an L2 output checkpointed on L1
type OutputProposal struct {
	OutputRoot    common.Hash
	Timestamp     uint64
	L2BlockNumber uint64
}

// ProvenWithdrawal is what the portal records when a withdrawal is proven
type ProvenWithdrawal struct {
	OutputRoot    common.Hash
	Timestamp     uint64
	L2OutputIndex *big.Int
}

// BlockTx is the part of an L1 transaction the inclusion search looks at
type BlockTx struct {
	Hash common.Hash
	From common.Address
	To   *common.Address
	Data []byte
}

// L1 is the L1 side of an OP stack chain: messenger, portal and output oracle
type L1 interface {
	SentMessage(ctx context.Context, txHash common.Hash) (*SentMessage, error)
	LatestOutputBlockNumber(ctx context.Context) (uint64, error)
	L2OutputIndexAfter(ctx context.Context, l2BlockNumber uint64) (*big.Int, error)
	L2Output(ctx context.Context, index *big.Int) (*OutputProposal, error)
	FinalizationPeriod(ctx context.Context) (uint64, error)
	ProvenWithdrawal(ctx context.Context, withdrawalHash common.Hash) (*ProvenWithdrawal, error)
	FinalizedWithdrawal(ctx context.Context, withdrawalHash common.Hash) (bool, error)
	LatestBlockTimestamp(ctx context.Context) (uint64, error)
	BlockTransactions(ctx context.Context, blockNumber uint64) ([]BlockTx, error)
	ProveWithdrawal(ctx context.Context, w *Withdrawal, l2OutputIndex *big.Int,
		proof OutputRootProof, withdrawalProof [][]byte) (common.Hash, error)
	FinalizeWithdrawal(ctx context.Context, w *Withdrawal) (common.Hash, error)
}

// L2 is the OP stack chain itself
type L2 interface {
	Withdrawal(ctx context.Context, txHash common.Hash) (*Withdrawal, error)
	HeaderByNumber(ctx context.Context, blockNumber uint64) (*types.Header, error)
	// StorageProof returns the storage root of the message passer and the proof of slot
	StorageProof(ctx context.Context, slot common.Hash, blockNumber uint64) (common.Hash, [][]byte, error)
	SuccessfulMessage(ctx context.Context, messageHash common.Hash) (bool, error)
	FailedMessage(ctx context.Context, messageHash common.Hash) (bool, error)
	RelayMessage(ctx context.Context, m *SentMessage, gasLimit uint64) (common.Hash, error)
	// L1Origin returns the L1 block number and sequence number the L2 block was derived at
	L1Origin(ctx context.Context, l2BlockNumber uint64) (uint64, uint64, error)
}

type outputProposalTuple struct {
	OutputRoot    [32]byte
	Timestamp     *big.Int
	L2BlockNumber *big.Int
}

type l1Contracts struct {
	endpoint  *etherman.Endpoint
	messenger *etherman.Contract
	portal    *etherman.Contract
	oracle    *etherman.Contract
}

func newL1Contracts(endpoint *etherman.Endpoint, cfg Config) (*l1Contracts, error) {
	messenger, err := etherman.NewContract(endpoint.Client, cfg.L1CrossDomainMessenger, l1MessengerABI)
	if err != nil {
		return nil, err
	}
	portal, err := etherman.NewContract(endpoint.Client, cfg.OptimismPortal, portalABI)
	if err != nil {
		return nil, err
	}
	oracle, err := etherman.NewContract(endpoint.Client, cfg.L2OutputOracle, outputOracleABI)
	if err != nil {
		return nil, err
	}
	return &l1Contracts{endpoint: endpoint, messenger: messenger, portal: portal, oracle: oracle}, nil
}

func (c *l1Contracts) SentMessage(ctx context.Context, txHash common.Hash) (*SentMessage, error) {
	receipt, err := c.endpoint.Client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, err
	}
	return parseSentMessage(c.messenger, receipt)
}

func (c *l1Contracts) LatestOutputBlockNumber(ctx context.Context) (uint64, error) {
	out, err := c.oracle.Call(ctx, "latestBlockNumber")
	if err != nil {
		return 0, err
	}
	return out[0].(*big.Int).Uint64(), nil
}

func (c *l1Contracts) L2OutputIndexAfter(ctx context.Context, l2BlockNumber uint64) (*big.Int, error) {
	out, err := c.oracle.Call(ctx, "getL2OutputIndexAfter", new(big.Int).SetUint64(l2BlockNumber))
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (c *l1Contracts) L2Output(ctx context.Context, index *big.Int) (*OutputProposal, error) {
	out, err := c.oracle.Call(ctx, "getL2Output", index)
	if err != nil {
		return nil, err
	}
	proposal := *abi.ConvertType(out[0], new(outputProposalTuple)).(*outputProposalTuple)
	return &OutputProposal{
		OutputRoot:    proposal.OutputRoot,
		Timestamp:     proposal.Timestamp.Uint64(),
		L2BlockNumber: proposal.L2BlockNumber.Uint64(),
	}, nil
}

func (c *l1Contracts) FinalizationPeriod(ctx context.Context) (uint64, error) {
	out, err := c.oracle.Call(ctx, "FINALIZATION_PERIOD_SECONDS")
	if err != nil {
		return 0, err
	}
	return out[0].(*big.Int).Uint64(), nil
}

func (c *l1Contracts) ProvenWithdrawal(ctx context.Context, withdrawalHash common.Hash) (*ProvenWithdrawal, error) {
	out, err := c.portal.Call(ctx, "provenWithdrawals", withdrawalHash)
	if err != nil {
		return nil, err
	}
	return &ProvenWithdrawal{
		OutputRoot:    out[0].([32]byte),
		Timestamp:     out[1].(*big.Int).Uint64(),
		L2OutputIndex: out[2].(*big.Int),
	}, nil
}

func (c *l1Contracts) FinalizedWithdrawal(ctx context.Context, withdrawalHash common.Hash) (bool, error) {
	out, err := c.portal.Call(ctx, "finalizedWithdrawals", withdrawalHash)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

func (c *l1Contracts) LatestBlockTimestamp(ctx context.Context) (uint64, error) {
	header, err := c.endpoint.Client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, err
	}
	return header.Time, nil
}

func (c *l1Contracts) BlockTransactions(ctx context.Context, blockNumber uint64) ([]BlockTx, error) {
	block, err := c.endpoint.Client.BlockByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return nil, err
	}
	txs := make([]BlockTx, 0, len(block.Transactions()))
	for _, tx := range block.Transactions() {
		from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
		if err != nil {
			continue
		}
		txs = append(txs, BlockTx{Hash: tx.Hash(), From: from, To: tx.To(), Data: tx.Data()})
	}
	return txs, nil
}

func (c *l1Contracts) ProveWithdrawal(ctx context.Context, w *Withdrawal, l2OutputIndex *big.Int,
	proof OutputRootProof, withdrawalProof [][]byte) (common.Hash, error) {
	return c.endpoint.Transact(ctx, c.portal, 0, "proveWithdrawalTransaction",
		w.tuple(), l2OutputIndex, proof, withdrawalProof)
}

func (c *l1Contracts) FinalizeWithdrawal(ctx context.Context, w *Withdrawal) (common.Hash, error) {
	return c.endpoint.Transact(ctx, c.portal, 0, "finalizeWithdrawalTransaction", w.tuple())
}

type l2Contracts struct {
	endpoint      *etherman.Endpoint
	messenger     *etherman.Contract
	messagePasser *etherman.Contract
	l1Block       *etherman.Contract
}

func newL2Contracts(endpoint *etherman.Endpoint) (*l2Contracts, error) {
	messenger, err := etherman.NewContract(endpoint.Client, l2CrossDomainMessengerAddr, l2MessengerABI)
	if err != nil {
		return nil, err
	}
	messagePasser, err := etherman.NewContract(endpoint.Client, messagePasserAddr, messagePasserABI)
	if err != nil {
		return nil, err
	}
	l1Block, err := etherman.NewContract(endpoint.Client, l1BlockAddr, l1BlockABI)
	if err != nil {
		return nil, err
	}
	return &l2Contracts{endpoint: endpoint, messenger: messenger, messagePasser: messagePasser, l1Block: l1Block}, nil
}

func (c *l2Contracts) Withdrawal(ctx context.Context, txHash common.Hash) (*Withdrawal, error) {
	receipt, err := c.endpoint.Client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, err
	}
	return parseWithdrawal(c.messagePasser, receipt)
}

func (c *l2Contracts) HeaderByNumber(ctx context.Context, blockNumber uint64) (*types.Header, error) {
	return c.endpoint.Client.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
}

func (c *l2Contracts) StorageProof(
	ctx context.Context, slot common.Hash, blockNumber uint64,
) (common.Hash, [][]byte, error) {
	res, err := c.endpoint.Client.GetProof(ctx, messagePasserAddr, []common.Hash{slot}, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return common.Hash{}, nil, err
	}
	if len(res.StorageProof) != 1 {
		return common.Hash{}, nil, fmt.Errorf("invalid amount of storage proofs: %d", len(res.StorageProof))
	}
	nodes := make([][]byte, 0, len(res.StorageProof[0].Proof))
	for _, node := range res.StorageProof[0].Proof {
		nodes = append(nodes, common.FromHex(node))
	}
	return res.StorageHash, nodes, nil
}

func (c *l2Contracts) SuccessfulMessage(ctx context.Context, messageHash common.Hash) (bool, error) {
	out, err := c.messenger.Call(ctx, "successfulMessages", messageHash)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

func (c *l2Contracts) FailedMessage(ctx context.Context, messageHash common.Hash) (bool, error) {
	out, err := c.messenger.Call(ctx, "failedMessages", messageHash)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

func (c *l2Contracts) RelayMessage(ctx context.Context, m *SentMessage, gasLimit uint64) (common.Hash, error) {
	return c.endpoint.Transact(ctx, c.messenger, gasLimit, "relayMessage",
		m.Nonce, m.Sender, m.Target, m.Value, m.GasLimit, m.Message)
}

func (c *l2Contracts) L1Origin(ctx context.Context, l2BlockNumber uint64) (uint64, uint64, error) {
	at := new(big.Int).SetUint64(l2BlockNumber)
	number, err := c.l1Block.CallAt(ctx, at, "number")
	if err != nil {
		return 0, 0, err
	}
	seq, err := c.l1Block.CallAt(ctx, at, "sequenceNumber")
	if err != nil {
		return 0, 0, err
	}
	return number[0].(uint64), seq[0].(uint64), nil
}

type messagePassed struct {
	Nonce          *big.Int
	Sender         common.Address
	Target         common.Address
	Value          *big.Int
	GasLimit       *big.Int
	Data           []byte
	WithdrawalHash [32]byte
}

// parseWithdrawal returns the single withdrawal initiated in receipt
func parseWithdrawal(messagePasser *etherman.Contract, receipt *types.Receipt) (*Withdrawal, error) {
	eventID, err := messagePasser.EventID("MessagePassed")
	if err != nil {
		return nil, err
	}
	var withdrawals []*Withdrawal
	for _, l := range receipt.Logs {
		if l.Address != messagePasser.Address || len(l.Topics) == 0 || l.Topics[0] != eventID {
			continue
		}
		var ev messagePassed
		if err := messagePasser.UnpackLog(&ev, "MessagePassed", *l); err != nil {
			return nil, fmt.Errorf("%w: error decoding MessagePassed: %w", relay.ErrFatal, err)
		}
		w := &Withdrawal{
			Nonce:       ev.Nonce,
			Sender:      ev.Sender,
			Target:      ev.Target,
			Value:       ev.Value,
			GasLimit:    ev.GasLimit,
			Data:        ev.Data,
			BlockNumber: receipt.BlockNumber.Uint64(),
		}
		if v := messageVersion(w.Nonce); v != bedrockMessageVersion {
			return nil, fmt.Errorf("%w: pre-bedrock withdrawal (version %d) in tx %s", relay.ErrFatal, v, receipt.TxHash.Hex())
		}
		hash, err := w.Hash()
		if err != nil {
			return nil, err
		}
		if hash != ev.WithdrawalHash {
			return nil, fmt.Errorf("%w: computed withdrawal hash %s does not match %s",
				relay.ErrFatal, hash.Hex(), common.Hash(ev.WithdrawalHash).Hex())
		}
		withdrawals = append(withdrawals, w)
	}
	switch len(withdrawals) {
	case 0:
		return nil, fmt.Errorf("%w: message is undefined, no MessagePassed event in tx %s", relay.ErrFatal, receipt.TxHash.Hex())
	case 1:
		return withdrawals[0], nil
	default:
		return nil, fmt.Errorf("%w: expected 1 message, got %d", relay.ErrFatal, len(withdrawals))
	}
}

type sentMessageEvent struct {
	Target       common.Address
	Sender       common.Address
	Message      []byte
	MessageNonce *big.Int
	GasLimit     *big.Int
}

type sentMessageExtension struct {
	Sender common.Address
	Value  *big.Int
}

// parseSentMessage returns the single message sent in receipt. The value comes from the
// extension event that follows SentMessage.
func parseSentMessage(messenger *etherman.Contract, receipt *types.Receipt) (*SentMessage, error) {
	sentID, err := messenger.EventID("SentMessage")
	if err != nil {
		return nil, err
	}
	extID, err := messenger.EventID("SentMessageExtension1")
	if err != nil {
		return nil, err
	}
	var messages []*SentMessage
	for _, l := range receipt.Logs {
		if l.Address != messenger.Address || len(l.Topics) == 0 {
			continue
		}
		switch l.Topics[0] {
		case sentID:
			var ev sentMessageEvent
			if err := messenger.UnpackLog(&ev, "SentMessage", *l); err != nil {
				return nil, fmt.Errorf("%w: error decoding SentMessage: %w", relay.ErrFatal, err)
			}
			messages = append(messages, &SentMessage{
				Nonce:    ev.MessageNonce,
				Sender:   ev.Sender,
				Target:   ev.Target,
				Value:    new(big.Int),
				GasLimit: ev.GasLimit,
				Message:  ev.Message,
			})
		case extID:
			if len(messages) == 0 {
				continue
			}
			var ext sentMessageExtension
			if err := messenger.UnpackLog(&ext, "SentMessageExtension1", *l); err != nil {
				return nil, fmt.Errorf("%w: error decoding SentMessageExtension1: %w", relay.ErrFatal, err)
			}
			messages[len(messages)-1].Value = ext.Value
		}
	}
	switch len(messages) {
	case 0:
		return nil, fmt.Errorf("%w: could not find SentMessage event for message in tx %s",
			relay.ErrFatal, receipt.TxHash.Hex())
	case 1:
		return messages[0], nil
	default:
		return nil, fmt.Errorf("%w: expected 1 message, got %d", relay.ErrFatal, len(messages))
	}
}

package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/config/types"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/transferroot"
)

const (
	maxPageSize           = 1000
	defaultRequestTimeout = 30 * time.Second
)

var (
	ErrNoSubgraph    = errors.New("no subgraph configured for chain")
	ErrInvalidEntity = errors.New("invalid entity returned by the subgraph")
)

var _ transferroot.EventIndexClient = (*Client)(nil)

// Client queries the bridge subgraphs over GraphQL
type Client struct {
	logger     *log.Logger
	urls       map[uint64]string
	chainIDs   []uint64
	l1ChainID  uint64
	pageSize   uint64
	retry      etherman.RetryConfig
	httpClient *http.Client
}

// New creates a client for the configured subgraphs. l1ChainID selects the subgraph of the root confirmations.
func New(logger *log.Logger, cfg Config, l1ChainID uint64) (*Client, error) {
	urls := make(map[uint64]string, len(cfg.Subgraphs))
	chainIDs := make([]uint64, 0, len(cfg.Subgraphs))
	for _, s := range cfg.Subgraphs {
		if !(strings.HasPrefix(s.URL, "http://") || strings.HasPrefix(s.URL, "https://")) {
			return nil, fmt.Errorf("protocol prefix 'http://' or 'https://' must be specified for the subgraph of chain %d; got '%s'",
				s.ChainID, s.URL)
		}
		if _, ok := urls[s.ChainID]; ok {
			return nil, fmt.Errorf("duplicated subgraph for chain %d", s.ChainID)
		}
		urls[s.ChainID] = s.URL
		chainIDs = append(chainIDs, s.ChainID)
	}
	slices.Sort(chainIDs)

	pageSize := cfg.PageSize
	if pageSize == 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	timeout := cfg.RequestTimeout.Duration
	if timeout == 0 {
		timeout = defaultRequestTimeout
	}
	retry := cfg.Retry
	if retry.RPCTimeout.Duration == 0 {
		retry.RPCTimeout = types.NewDuration(timeout)
	}

	return &Client{
		logger:     logger,
		urls:       urls,
		chainIDs:   chainIDs,
		l1ChainID:  l1ChainID,
		pageSize:   pageSize,
		retry:      retry,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// query posts a GraphQL query to the subgraph of chainID and decodes its data into result.
// Connection failures, server errors and throttling are retried like the chain RPC calls.
func (c *Client) query(ctx context.Context, chainID uint64, query string,
	variables map[string]interface{}, result interface{}) error {
	url, ok := c.urls[chainID]
	if !ok {
		return fmt.Errorf("%w %d", ErrNoSubgraph, chainID)
	}
	_, err := etherman.Retry(ctx, c.logger, c.retry, fmt.Sprintf("subgraph query on chain %d", chainID),
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, c.post(ctx, chainID, url, query, variables, result)
		})
	return err
}

func (c *Client) post(ctx context.Context, chainID uint64, url string, query string,
	variables map[string]interface{}, result interface{}) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("bad response from subgraph of chain %d: HTTP error with status %d: %s",
			chainID, res.StatusCode, http.StatusText(res.StatusCode))
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error with status %d returned by subgraph of chain %d: %s",
			res.StatusCode, chainID, http.StatusText(res.StatusCode))
	}

	var response graphQLResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return fmt.Errorf("invalid json response body from subgraph of chain %d: %w", chainID, err)
	}
	if len(response.Errors) > 0 {
		return fmt.Errorf("subgraph of chain %d returned error: %s", chainID, response.Errors[0].Message)
	}
	if len(response.Data) == 0 || string(response.Data) == "null" {
		return fmt.Errorf("subgraph of chain %d returned no data", chainID)
	}
	return json.Unmarshal(response.Data, result)
}

// TransferCommit returns the commit of rootHash on the source chain
func (c *Client) TransferCommit(ctx context.Context, sourceChainID uint64, token string,
	rootHash common.Hash) (*transferroot.TransfersCommitted, error) {
	var res struct {
		TransfersCommitteds []transfersCommittedEntity `json:"transfersCommitteds"`
	}
	err := c.query(ctx, sourceChainID, transferCommitQuery, map[string]interface{}{
		"token":    token,
		"rootHash": rootHash.Hex(),
	}, &res)
	if err != nil {
		return nil, err
	}
	if len(res.TransfersCommitteds) == 0 {
		return nil, fmt.Errorf("%w: transfer committed event not found for root hash %s",
			transferroot.ErrNotFound, rootHash.Hex())
	}
	return res.TransfersCommitteds[0].toTransfersCommitted(sourceChainID)
}

// PreviousTransferCommit returns the nearest commit towards destinationChainID before beforeBlock
func (c *Client) PreviousTransferCommit(ctx context.Context, sourceChainID, destinationChainID uint64,
	token string, beforeBlock uint64) (*transferroot.TransfersCommitted, error) {
	var res struct {
		TransfersCommitteds []transfersCommittedEntity `json:"transfersCommitteds"`
	}
	err := c.query(ctx, sourceChainID, previousTransferCommitQuery, map[string]interface{}{
		"token":              token,
		"blockNumber":        fmt.Sprint(beforeBlock),
		"destinationChainId": fmt.Sprint(destinationChainID),
	}, &res)
	if err != nil {
		return nil, err
	}
	if len(res.TransfersCommitteds) == 0 {
		return nil, fmt.Errorf("%w: no transfer committed event before block %d", transferroot.ErrNotFound, beforeBlock)
	}
	return res.TransfersCommitteds[0].toTransfersCommitted(sourceChainID)
}

// TransfersSent returns every TransferSent towards destinationChainID in [fromBlock, toBlock], ordered by entity id
func (c *Client) TransfersSent(ctx context.Context, sourceChainID, destinationChainID uint64, token string,
	fromBlock, toBlock uint64) ([]transferroot.TransferSent, error) {
	var transfers []transferroot.TransferSent
	lastID := "0"
	for {
		var res struct {
			TransferSents []transferSentEntity `json:"transferSents"`
		}
		err := c.query(ctx, sourceChainID, transfersSentQuery, map[string]interface{}{
			"token":              token,
			"startBlockNumber":   fmt.Sprint(fromBlock),
			"endBlockNumber":     fmt.Sprint(toBlock),
			"destinationChainId": fmt.Sprint(destinationChainID),
			"lastId":             lastID,
			"first":              c.pageSize,
		}, &res)
		if err != nil {
			return nil, err
		}
		for _, e := range res.TransferSents {
			t, err := e.toTransferSent(sourceChainID)
			if err != nil {
				return nil, err
			}
			transfers = append(transfers, t)
		}
		if uint64(len(res.TransferSents)) < c.pageSize {
			break
		}
		lastID = res.TransferSents[len(res.TransferSents)-1].ID
		c.logger.Debugf("fetched %d transfers sent on chain %d, next page after id %s", len(transfers), sourceChainID, lastID)
	}
	return transfers, nil
}

// TransferSentByID searches the transfer on every configured chain, in chain id order
func (c *Client) TransferSentByID(ctx context.Context, transferID common.Hash) (*transferroot.TransferSent, error) {
	for _, chainID := range c.chainIDs {
		var res struct {
			TransferSents []transferSentEntity `json:"transferSents"`
		}
		err := c.query(ctx, chainID, transferSentByIDQuery, map[string]interface{}{
			"transferId": transferID.Hex(),
		}, &res)
		if err != nil {
			return nil, err
		}
		if len(res.TransferSents) == 0 {
			continue
		}
		t, err := res.TransferSents[0].toTransferSent(chainID)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
	return nil, fmt.Errorf("%w: transfer %s", transferroot.ErrNotFound, transferID.Hex())
}

// TransferCommitsAfter returns up to limit commits towards destinationChainID with timestamp >= timestamp, oldest first
func (c *Client) TransferCommitsAfter(ctx context.Context, sourceChainID, destinationChainID uint64, token string,
	timestamp uint64, limit int) ([]transferroot.TransfersCommitted, error) {
	var res struct {
		TransfersCommitteds []transfersCommittedEntity `json:"transfersCommitteds"`
	}
	err := c.query(ctx, sourceChainID, transferCommitsAfterQuery, map[string]interface{}{
		"token":              token,
		"timestamp":          fmt.Sprint(timestamp),
		"destinationChainId": fmt.Sprint(destinationChainID),
		"first":              limit,
	}, &res)
	if err != nil {
		return nil, err
	}
	commits := make([]transferroot.TransfersCommitted, 0, len(res.TransfersCommitteds))
	for _, e := range res.TransfersCommitteds {
		commit, err := e.toTransfersCommitted(sourceChainID)
		if err != nil {
			return nil, err
		}
		commits = append(commits, *commit)
	}
	return commits, nil
}

// TransferRootSet reports whether rootHash was set on the destination chain
func (c *Client) TransferRootSet(ctx context.Context, destinationChainID uint64, token string,
	rootHash common.Hash) (bool, error) {
	var res struct {
		Entities []idEntity `json:"transferRootSets"`
	}
	err := c.query(ctx, destinationChainID, transferRootSetQuery, map[string]interface{}{
		"token":    token,
		"rootHash": rootHash.Hex(),
	}, &res)
	return len(res.Entities) > 0, err
}

// TransferRootConfirmed reports whether rootHash was confirmed on L1
func (c *Client) TransferRootConfirmed(ctx context.Context, token string, rootHash common.Hash) (bool, error) {
	var res struct {
		Entities []idEntity `json:"transferRootConfirmeds"`
	}
	err := c.query(ctx, c.l1ChainID, transferRootConfirmedQuery, map[string]interface{}{
		"token":    token,
		"rootHash": rootHash.Hex(),
	}, &res)
	return len(res.Entities) > 0, err
}

// Withdrawal reports whether the transfer was withdrawn on chainID
func (c *Client) Withdrawal(ctx context.Context, chainID uint64, transferID common.Hash) (bool, error) {
	var res struct {
		Entities []idEntity `json:"withdrews"`
	}
	err := c.query(ctx, chainID, withdrewQuery, map[string]interface{}{
		"transferId": transferID.Hex(),
	}, &res)
	return len(res.Entities) > 0, err
}

// WithdrawalBonded reports whether a bonder already paid out the transfer on chainID
func (c *Client) WithdrawalBonded(ctx context.Context, chainID uint64, transferID common.Hash) (bool, error) {
	var res struct {
		Entities []idEntity `json:"withdrawalBondeds"`
	}
	err := c.query(ctx, chainID, withdrawalBondedQuery, map[string]interface{}{
		"transferId": transferID.Hex(),
	}, &res)
	return len(res.Entities) > 0, err
}

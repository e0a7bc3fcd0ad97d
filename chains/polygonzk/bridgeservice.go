package polygonzk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/log"
)

const proofGeneratorSuccess = "success"

var (
	ErrDepositNotFound = errors.New("deposit not found in the bridge service")
	errStatusNotFound  = errors.New("resource not found")
)

// Deposit is a bridge deposit as indexed by the bridge service
type Deposit struct {
	LeafType      uint8          `json:"leaf_type"`
	OrigNet       uint32         `json:"orig_net"`
	OrigAddr      common.Address `json:"orig_addr"`
	Amount        string         `json:"amount"`
	DestNet       uint32         `json:"dest_net"`
	DestAddr      common.Address `json:"dest_addr"`
	BlockNum      string         `json:"block_num"`
	DepositCnt    string         `json:"deposit_cnt"`
	NetworkID     uint32         `json:"network_id"`
	TxHash        common.Hash    `json:"tx_hash"`
	ClaimTxHash   string         `json:"claim_tx_hash"`
	Metadata      string         `json:"metadata"`
	ReadyForClaim bool           `json:"ready_for_claim"`
	GlobalIndex   string         `json:"global_index"`
}

// MerkleProof is the pair of proofs that claims a deposit against the exit roots
type MerkleProof struct {
	MerkleProof       []common.Hash `json:"merkle_proof"`
	RollupMerkleProof []common.Hash `json:"rollup_merkle_proof"`
	MainExitRoot      common.Hash   `json:"main_exit_root"`
	RollupExitRoot    common.Hash   `json:"rollup_exit_root"`
}

// BridgeService reads deposits and proofs from the bridge service and checkpoints from the proof generator
type BridgeService struct {
	bridgeURL  string
	proofURL   string
	network    string
	logger     *log.Logger
	httpClient *http.Client
}

func NewBridgeService(logger *log.Logger, cfg Config) *BridgeService {
	return &BridgeService{
		bridgeURL:  strings.TrimSuffix(cfg.BridgeServiceURL, "/"),
		proofURL:   strings.TrimSuffix(cfg.ProofAPIURL, "/"),
		network:    cfg.Network,
		logger:     logger,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout.Duration},
	}
}

// BlockIncluded returns true once the proof generator has the L2 block checkpointed on L1
func (s *BridgeService) BlockIncluded(ctx context.Context, blockNumber uint64) (bool, error) {
	var res struct {
		Message string `json:"message"`
	}
	u := fmt.Sprintf("%s/api/v1/%s/block-included/%d", s.proofURL, s.network, blockNumber)
	if err := s.get(ctx, u, &res); err != nil {
		return false, err
	}
	return res.Message == proofGeneratorSuccess, nil
}

// Deposit returns the deposit number depositCnt of the bridge of networkID
func (s *BridgeService) Deposit(ctx context.Context, networkID, depositCnt uint32) (*Deposit, error) {
	var res struct {
		Deposit *Deposit `json:"deposit"`
	}
	u := fmt.Sprintf("%s/bridge?%s", s.bridgeURL, depositQuery(networkID, depositCnt))
	err := s.get(ctx, u, &res)
	if errors.Is(err, errStatusNotFound) {
		res.Deposit = nil
	} else if err != nil {
		return nil, err
	}
	if res.Deposit == nil {
		return nil, fmt.Errorf("%w: network %d, deposit count %d", ErrDepositNotFound, networkID, depositCnt)
	}
	return res.Deposit, nil
}

// MerkleProof returns the proof of the deposit against the current exit roots
func (s *BridgeService) MerkleProof(ctx context.Context, networkID, depositCnt uint32) (*MerkleProof, error) {
	var res struct {
		Proof *MerkleProof `json:"proof"`
	}
	u := fmt.Sprintf("%s/merkle-proof?%s", s.bridgeURL, depositQuery(networkID, depositCnt))
	if err := s.get(ctx, u, &res); err != nil {
		return nil, err
	}
	if res.Proof == nil {
		return nil, fmt.Errorf("no merkle proof returned for network %d, deposit count %d", networkID, depositCnt)
	}
	if len(res.Proof.MerkleProof) != proofLength || len(res.Proof.RollupMerkleProof) != proofLength {
		return nil, fmt.Errorf("invalid merkle proof lengths %d and %d, expected %d",
			len(res.Proof.MerkleProof), len(res.Proof.RollupMerkleProof), proofLength)
	}
	return res.Proof, nil
}

func depositQuery(networkID, depositCnt uint32) string {
	q := url.Values{}
	q.Set("net_id", strconv.FormatUint(uint64(networkID), 10))
	q.Set("deposit_cnt", strconv.FormatUint(uint64(depositCnt), 10))
	return q.Encode()
}

func (s *BridgeService) get(ctx context.Context, u string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	s.logger.Debugf("GET %s returned %d in %s", u, res.StatusCode, time.Since(start))

	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", errStatusNotFound, u)
	}
	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("HTTP error with status %d returned by %s: %s %s",
			res.StatusCode, u, http.StatusText(res.StatusCode), strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(res.Body).Decode(result); err != nil {
		return fmt.Errorf("error decoding response of %s: %w", u, err)
	}
	return nil
}

// decimal parses the numeric strings of the bridge service
func decimal(field, s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid %s %q", field, s)
	}
	return n, nil
}

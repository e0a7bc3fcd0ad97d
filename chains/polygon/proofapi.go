package polygon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relay"
)

const proofGeneratorSuccess = "success"

var errStatusNotFound = errors.New("resource not found")

// ProofAPI is the client of the Polygon proof generator
type ProofAPI struct {
	baseURL    string
	network    string
	logger     *log.Logger
	httpClient *http.Client
}

func NewProofAPI(logger *log.Logger, cfg Config) *ProofAPI {
	return &ProofAPI{
		baseURL:    strings.TrimSuffix(cfg.ProofAPIURL, "/"),
		network:    cfg.Network,
		logger:     logger,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout.Duration},
	}
}

// BlockIncluded returns true once the L2 block is covered by a checkpoint on L1
func (p *ProofAPI) BlockIncluded(ctx context.Context, blockNumber uint64) (bool, error) {
	var res struct {
		Message string `json:"message"`
	}
	u := fmt.Sprintf("%s/api/v1/%s/block-included/%d", p.baseURL, p.network, blockNumber)
	err := p.get(ctx, u, &res)
	if errors.Is(err, errStatusNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return res.Message == proofGeneratorSuccess, nil
}

// ExitPayload returns the receiveMessage input proving the event eventSig of txHash
func (p *ProofAPI) ExitPayload(ctx context.Context, txHash, eventSig common.Hash) ([]byte, error) {
	var res struct {
		Message string `json:"message"`
		Result  string `json:"result"`
	}
	u := fmt.Sprintf("%s/api/v1/%s/exit-payload/%s?eventSignature=%s", p.baseURL, p.network, txHash.Hex(), eventSig.Hex())
	if err := p.get(ctx, u, &res); err != nil {
		return nil, err
	}
	if res.Result == "" {
		return nil, fmt.Errorf("%w: no exit payload for tx %s: %s", relay.ErrTransient, txHash.Hex(), res.Message)
	}
	payload, err := hexutil.Decode(res.Result)
	if err != nil {
		return nil, fmt.Errorf("invalid exit payload for tx %s: %w", txHash.Hex(), err)
	}
	return payload, nil
}

func (p *ProofAPI) get(ctx context.Context, u string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", relay.ErrTransient, err)
	}
	defer res.Body.Close()
	p.logger.Debugf("GET %s returned %d in %s", u, res.StatusCode, time.Since(start))

	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", errStatusNotFound, u)
	}
	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("%w: HTTP error with status %d returned by %s: %s %s", relay.ErrTransient,
			res.StatusCode, u, http.StatusText(res.StatusCode), strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(res.Body).Decode(result); err != nil {
		return fmt.Errorf("error decoding response of %s: %w", u, err)
	}
	return nil
}

// Package relayer periodically advances every pending cross domain message
package relayer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relay"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const defaultMaxConcurrency = 4

var (
	ErrMessageBusy = errors.New("message is being polled")

	errStorage = errors.New("storage error")
)

type MessageStorage interface {
	GetMessage(ctx context.Context, sourceChainID uint64, txHash common.Hash) (relay.CrossDomainMessage, error)
	SaveMessage(ctx context.Context, msg relay.CrossDomainMessage) (relay.CrossDomainMessage, error)
	PendingMessages(ctx context.Context) ([]relay.CrossDomainMessage, error)
}

type Poller interface {
	PollAndAdvance(ctx context.Context, msg relay.CrossDomainMessage) (relay.CrossDomainMessage, error)
}

// Relayer loads the pending messages from storage, polls them and stores the result.
// A message is never polled by two goroutines at the same time.
type Relayer struct {
	logger  *log.Logger
	storage MessageStorage
	poller  Poller
	cfg     Config

	inFlight      map[string]struct{}
	inFlightMutex sync.Mutex
}

func New(logger *log.Logger, storage MessageStorage, poller Poller, cfg Config) *Relayer {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = defaultMaxConcurrency
	}
	return &Relayer{
		logger:   logger,
		storage:  storage,
		poller:   poller,
		cfg:      cfg,
		inFlight: make(map[string]struct{}),
	}
}

// Start runs a cycle every PollInterval until ctx is done
func (r *Relayer) Start(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval.Duration)
	defer ticker.Stop()

	r.logger.Infof("relayer started, polling every %s with %d workers", r.cfg.PollInterval, r.cfg.MaxConcurrency)
	for {
		if err := r.PollPending(ctx); err != nil {
			r.logger.Errorf("error polling pending messages: %v", err)
		}
		select {
		case <-ctx.Done():
			r.logger.Info("relayer stopped")
			return
		case <-ticker.C:
		}
	}
}

// PollPending polls every pending message once. Errors of single messages are logged,
// only storage failures are returned.
func (r *Relayer) PollPending(ctx context.Context) error {
	msgs, err := r.storage.PendingMessages(ctx)
	if err != nil {
		return fmt.Errorf("error loading pending messages: %w", err)
	}
	if len(msgs) == 0 {
		r.logger.Debug("no pending messages")
		return nil
	}

	sem := semaphore.NewWeighted(r.cfg.MaxConcurrency)
	g, gctx := errgroup.WithContext(ctx)
	for _, msg := range msgs {
		msg := msg
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			_, err := r.Poll(gctx, msg)
			switch {
			case err == nil, errors.Is(err, ErrMessageBusy):
				return nil
			case errors.Is(err, errStorage):
				return err
			default:
				r.logger.Warnf("message %s: %v", msg.ID(), err)
				return nil
			}
		})
	}
	return g.Wait()
}

// Poll advances msg one stage and stores the outcome, also when the poll fails.
// Only the identity of msg is used: the message is read again from storage once it is locked,
// so a copy that went stale while waiting is never acted on.
func (r *Relayer) Poll(ctx context.Context, msg relay.CrossDomainMessage) (relay.CrossDomainMessage, error) {
	return r.poll(ctx, msg.SourceChainID, msg.SourceTxHash)
}

// PollByID polls the message sent in txHash on sourceChainID
func (r *Relayer) PollByID(ctx context.Context, sourceChainID uint64, txHash common.Hash) (relay.CrossDomainMessage, error) {
	return r.poll(ctx, sourceChainID, txHash)
}

func (r *Relayer) poll(ctx context.Context, sourceChainID uint64, txHash common.Hash) (relay.CrossDomainMessage, error) {
	key := relay.CrossDomainMessage{SourceChainID: sourceChainID, SourceTxHash: txHash}
	id := key.ID()
	if !r.acquire(id) {
		return key, fmt.Errorf("%w: %s", ErrMessageBusy, id)
	}
	defer r.release(id)

	msg, err := r.storage.GetMessage(ctx, sourceChainID, txHash)
	if err != nil {
		return key, fmt.Errorf("%w: error loading message %s: %w", errStorage, id, err)
	}

	updated, pollErr := r.poller.PollAndAdvance(ctx, msg)
	if updated == msg {
		return updated, pollErr
	}
	saved, err := r.storage.SaveMessage(ctx, updated)
	if err != nil {
		return updated, fmt.Errorf("%w: error saving message %s: %w", errStorage, id, err)
	}
	return saved, pollErr
}

func (r *Relayer) acquire(id string) bool {
	r.inFlightMutex.Lock()
	defer r.inFlightMutex.Unlock()
	if _, ok := r.inFlight[id]; ok {
		return false
	}
	r.inFlight[id] = struct{}{}
	return true
}

func (r *Relayer) release(id string) {
	r.inFlightMutex.Lock()
	delete(r.inFlight, id)
	r.inFlightMutex.Unlock()
}

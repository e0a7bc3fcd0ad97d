// Package storage persists cross domain messages and reconstructed transfer roots in sqlite
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/db"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relay"
	"github.com/hop-protocol/hop-relay/storage/migrations"
	"github.com/hop-protocol/hop-relay/transferroot"
	"github.com/russross/meddler"
)

const (
	messageTable      = "cross_domain_message"
	transferRootTable = "transfer_root"

	errWhileRollbackFormat = "error while rolling back tx: %w"
)

var (
	ErrAlreadyExists = errors.New("already exists")

	timeNowFunc = time.Now
)

// Storage is the interface that defines the methods to interact with the storage
type Storage interface {
	// GetMessage returns the message sent in txHash on sourceChainID
	GetMessage(ctx context.Context, sourceChainID uint64, txHash common.Hash) (relay.CrossDomainMessage, error)
	// AddMessage stores a new message, failing with ErrAlreadyExists if it is known
	AddMessage(ctx context.Context, msg relay.CrossDomainMessage) (relay.CrossDomainMessage, error)
	// SaveMessage inserts or replaces a message
	SaveMessage(ctx context.Context, msg relay.CrossDomainMessage) (relay.CrossDomainMessage, error)
	// PendingMessages returns the messages that are not in a terminal stage, oldest first
	PendingMessages(ctx context.Context) ([]relay.CrossDomainMessage, error)
	// GetTransferRoot returns a reconstructed root
	GetTransferRoot(ctx context.Context, rootHash common.Hash) (*transferroot.TransferRoot, error)
	// SaveTransferRoot inserts or replaces a reconstructed root
	SaveTransferRoot(ctx context.Context, root *transferroot.TransferRoot) error
}

var (
	_ Storage                  = (*SQLStorage)(nil)
	_ transferroot.RootStorage = (*SQLStorage)(nil)
)

// SQLStorage implements Storage on sqlite
type SQLStorage struct {
	logger *log.Logger
	db     *sql.DB
}

// New opens the database at dbPath and brings its schema up to date
func New(logger *log.Logger, dbPath string) (*SQLStorage, error) {
	database, err := db.NewSQLiteDB(dbPath)
	if err != nil {
		return nil, err
	}
	if err := migrations.RunMigrations(logger, database); err != nil {
		return nil, err
	}
	return &SQLStorage{
		logger: logger,
		db:     database,
	}, nil
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}

func (s *SQLStorage) GetMessage(ctx context.Context, sourceChainID uint64,
	txHash common.Hash) (relay.CrossDomainMessage, error) {
	return getMessage(ctx, s.db, sourceChainID, txHash)
}

func getMessage(ctx context.Context, q meddler.DB, sourceChainID uint64,
	txHash common.Hash) (relay.CrossDomainMessage, error) {
	var msg relay.CrossDomainMessage
	err := meddler.QueryRow(q, &msg,
		"SELECT * FROM "+messageTable+" WHERE source_chain_id = $1 AND source_tx_hash = $2;",
		sourceChainID, txHash.Hex())
	if err != nil {
		return relay.CrossDomainMessage{}, fmt.Errorf("message %d:%s: %w", sourceChainID, txHash.Hex(),
			db.ReturnErrNotFound(err))
	}
	return msg, nil
}

func (s *SQLStorage) AddMessage(ctx context.Context, msg relay.CrossDomainMessage) (relay.CrossDomainMessage, error) {
	if err := msg.Validate(); err != nil {
		return msg, err
	}
	if msg.Stage == "" {
		msg.Stage = relay.StageUnknown
	}
	now := timeNowFunc().Unix()
	msg.CreatedAt = now
	msg.UpdatedAt = now

	if err := meddler.Insert(s.db, messageTable, &msg); err != nil {
		if db.IsUniqueViolation(err) {
			return msg, fmt.Errorf("message %s: %w", msg.ID(), ErrAlreadyExists)
		}
		return msg, fmt.Errorf("error inserting message %s: %w", msg.ID(), err)
	}
	s.logger.Debugf("added message %s", msg.ID())
	return msg, nil
}

func (s *SQLStorage) SaveMessage(ctx context.Context, msg relay.CrossDomainMessage) (relay.CrossDomainMessage, error) {
	if err := msg.Validate(); err != nil {
		return msg, err
	}
	tx, err := db.NewTx(ctx, s.db)
	if err != nil {
		return msg, err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				s.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	now := timeNowFunc().Unix()
	stored, err := getMessage(ctx, tx, msg.SourceChainID, msg.SourceTxHash)
	switch {
	case err == nil:
		msg.CreatedAt = stored.CreatedAt
		if _, err = tx.Exec("DELETE FROM "+messageTable+" WHERE source_chain_id = $1 AND source_tx_hash = $2;",
			msg.SourceChainID, msg.SourceTxHash.Hex()); err != nil {
			return msg, fmt.Errorf("error deleting message %s: %w", msg.ID(), err)
		}
	case errors.Is(err, db.ErrNotFound):
		msg.CreatedAt = now
	default:
		return msg, err
	}
	msg.UpdatedAt = now

	if err = meddler.Insert(tx, messageTable, &msg); err != nil {
		return msg, fmt.Errorf("error inserting message %s: %w", msg.ID(), err)
	}
	if err = tx.Commit(); err != nil {
		return msg, err
	}
	return msg, nil
}

func (s *SQLStorage) PendingMessages(ctx context.Context) ([]relay.CrossDomainMessage, error) {
	terminal := []relay.Stage{relay.StageFinalized, relay.StageFailed}
	placeholders := make([]string, len(terminal))
	args := make([]interface{}, len(terminal))
	for i, stage := range terminal {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = string(stage)
	}
	query := "SELECT * FROM " + messageTable +
		" WHERE stage NOT IN (" + strings.Join(placeholders, ", ") + ") ORDER BY created_at ASC, source_chain_id ASC;"

	var msgs []*relay.CrossDomainMessage
	if err := meddler.QueryAll(s.db, &msgs, query, args...); err != nil {
		return nil, err
	}
	pending := make([]relay.CrossDomainMessage, 0, len(msgs))
	for _, msg := range msgs {
		pending = append(pending, *msg)
	}
	return pending, nil
}

func (s *SQLStorage) GetTransferRoot(ctx context.Context, rootHash common.Hash) (*transferroot.TransferRoot, error) {
	root := &transferroot.TransferRoot{}
	err := meddler.QueryRow(s.db, root, "SELECT * FROM "+transferRootTable+" WHERE root_hash = $1;", rootHash.Hex())
	if err != nil {
		return nil, fmt.Errorf("transfer root %s: %w", rootHash.Hex(), db.ReturnErrNotFound(err))
	}
	return root, nil
}

func (s *SQLStorage) SaveTransferRoot(ctx context.Context, root *transferroot.TransferRoot) error {
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		if _, err := tx.Exec("DELETE FROM "+transferRootTable+" WHERE root_hash = $1;", root.RootHash.Hex()); err != nil {
			return fmt.Errorf("error deleting transfer root %s: %w", root.RootHash.Hex(), err)
		}
		if err := meddler.Insert(tx, transferRootTable, root); err != nil {
			return fmt.Errorf("error inserting transfer root %s: %w", root.RootHash.Hex(), err)
		}
		tx.AddCommitCallback(func() {
			s.logger.Debugf("saved transfer root %s with %d transfers", root.RootHash.Hex(), len(root.TransferIDs))
		})
		return nil
	})
}

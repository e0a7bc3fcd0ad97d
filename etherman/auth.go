package etherman

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/hop-protocol/hop-relay/config/types"
	"github.com/hop-protocol/hop-relay/log"
)

// ErrMissingKeystore is returned when no keystore is configured for a sender
var ErrMissingKeystore = errors.New("keystore path and password are required")

func newKeyFromKeystore(logger *log.Logger, path, password string) (*keystore.Key, error) {
	if path == "" && password == "" {
		return nil, ErrMissingKeystore
	}
	keystoreEncrypted, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	logger.Infof("decrypting key from: %v", path)
	key, err := keystore.DecryptKey(keystoreEncrypted, password)
	if err != nil {
		return nil, err
	}
	return key, nil
}

// LoadAuthFromKeystore builds the transactor of chainID from a keystore file
func LoadAuthFromKeystore(
	logger *log.Logger, cfg types.KeystoreFileConfig, chainID uint64,
) (*bind.TransactOpts, *ecdsa.PrivateKey, error) {
	logger.Infof("reading key from: %v", cfg.Path)
	key, err := newKeyFromKeystore(logger, cfg.Path, cfg.Password)
	if err != nil {
		return nil, nil, err
	}
	auth, err := bind.NewKeyedTransactorWithChainID(key.PrivateKey, new(big.Int).SetUint64(chainID))
	if err != nil {
		return nil, nil, err
	}
	return auth, key.PrivateKey, nil
}

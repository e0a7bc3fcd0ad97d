package common

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/keccak256"
)

// BytesToUint64 reads the first 8 bytes as a big endian uint64
func BytesToUint64(bytes []byte) uint64 {
	return binary.BigEndian.Uint64(bytes[:8])
}

// Keccak returns the keccak256 hash of the concatenation of data
func Keccak(data ...[]byte) common.Hash {
	return common.BytesToHash(keccak256.Hash(data...))
}

// BigIntFromDecimal parses a base 10 string, returning nil when it is not a number
func BigIntFromDecimal(s string) *big.Int {
	if s == "" {
		return nil
	}
	n, ok := new(big.Int).SetString(s, 10) //nolint:mnd
	if !ok {
		return nil
	}
	return n
}


package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

// init registers tags to be used to read/write from SQL DBs using meddler
func init() {
	meddler.Default = meddler.SQLite
	meddler.Register("bigint", BigIntMeddler)
	meddler.Register("hash", HashMeddler)
	meddler.Register("address", AddressMeddler)
	meddler.Register("hashes", HashSliceMeddler)
}

// stringMeddler stores a value of type T as TEXT. NULL columns decode to the zero value of T.
type stringMeddler[T any] struct {
	name   string
	encode func(T) (string, bool)
	decode func(string) (T, error)
}

// PreRead is called before a Scan operation
func (m stringMeddler[T]) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(sql.NullString), nil
}

// PostRead is called after a Scan operation
func (m stringMeddler[T]) PostRead(fieldPtr, scanTarget interface{}) error {
	ptr, ok := scanTarget.(*sql.NullString)
	if !ok || ptr == nil {
		return fmt.Errorf("%s.PostRead: scanTarget is not *sql.NullString", m.name)
	}
	field, ok := fieldPtr.(*T)
	if !ok {
		return fmt.Errorf("%s.PostRead: unexpected field type %T", m.name, fieldPtr)
	}
	if !ptr.Valid {
		var zero T
		*field = zero
		return nil
	}
	v, err := m.decode(ptr.String)
	if err != nil {
		return fmt.Errorf("%s.PostRead: %w", m.name, err)
	}
	*field = v
	return nil
}

// PreWrite is called before an Insert or Update operation
func (m stringMeddler[T]) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	field, ok := fieldPtr.(T)
	if !ok {
		return nil, fmt.Errorf("%s.PreWrite: unexpected field type %T", m.name, fieldPtr)
	}
	s, notNull := m.encode(field)
	if !notNull {
		return nil, nil
	}
	return s, nil
}

// BigIntMeddler encodes or decodes a *big.Int field to or from its decimal string
var BigIntMeddler = stringMeddler[*big.Int]{
	name: "BigIntMeddler",
	encode: func(v *big.Int) (string, bool) {
		if v == nil {
			return "", false
		}
		return v.String(), true
	},
	decode: func(s string) (*big.Int, error) {
		n, ok := new(big.Int).SetString(s, 10) //nolint:mnd
		if !ok {
			return nil, fmt.Errorf("big.Int.SetString failed on %q", s)
		}
		return n, nil
	},
}

// HashMeddler encodes or decodes a common.Hash field to or from hex
var HashMeddler = stringMeddler[common.Hash]{
	name:   "HashMeddler",
	encode: func(v common.Hash) (string, bool) { return v.Hex(), true },
	decode: func(s string) (common.Hash, error) { return common.HexToHash(s), nil },
}

// AddressMeddler encodes or decodes a common.Address field to or from hex
var AddressMeddler = stringMeddler[common.Address]{
	name:   "AddressMeddler",
	encode: func(v common.Address) (string, bool) { return v.Hex(), true },
	decode: func(s string) (common.Address, error) { return common.HexToAddress(s), nil },
}

// HashSliceMeddler encodes or decodes a []common.Hash field to or from a JSON array
var HashSliceMeddler = stringMeddler[[]common.Hash]{
	name: "HashSliceMeddler",
	encode: func(v []common.Hash) (string, bool) {
		if v == nil {
			v = []common.Hash{}
		}
		b, err := json.Marshal(v)
		if err != nil {
			return "", false
		}
		return string(b), true
	},
	decode: func(s string) ([]common.Hash, error) {
		var hashes []common.Hash
		if err := json.Unmarshal([]byte(s), &hashes); err != nil {
			return nil, err
		}
		return hashes, nil
	},
}

package transferroot

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrAmbiguousEarliestRoot = errors.New("first commit of the chain cannot be bounded without a deployment block")
	ErrRootMismatch          = errors.New("computed transfer root hash does not match")
)

// RootMismatchError carries the details of a reconstruction whose leaves do not hash to the root
type RootMismatchError struct {
	Expected  common.Hash
	Got       common.Hash
	NumLeaves int
}

func (e *RootMismatchError) Error() string {
	return fmt.Sprintf("%s; got: %s, expected: %s (%d leaves)",
		ErrRootMismatch.Error(), e.Got.Hex(), e.Expected.Hex(), e.NumLeaves)
}

func (e *RootMismatchError) Unwrap() error {
	return ErrRootMismatch
}

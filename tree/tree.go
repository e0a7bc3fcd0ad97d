package tree

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hop-protocol/hop-relay/tree/types"
	"golang.org/x/crypto/sha3"
)

var (
	ErrEmptyTree       = errors.New("cannot build a merkle tree without leaves")
	ErrLeafNotFound    = errors.New("leaf not found")
	ErrIndexOutOfRange = errors.New("leaf index out of range")
)

// defaultLeaf is the keccak256 of a 32 byte zero block. Missing leaves take this value, so
// unpaired nodes at height h are combined with the root of a subtree of 2^h default leaves.
var defaultLeaf = hash32(common.Hash{})

// Tree is an immutable keccak256 binary merkle tree over an ordered leaf sequence
type Tree struct {
	// layers[0] are the leaves, the last layer holds only the root
	layers   [][]common.Hash
	defaults []common.Hash
}

// NewTree builds the tree. Leaf order is kept as given.
func NewTree(leaves []common.Hash) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	height := treeHeight(len(leaves))
	t := &Tree{
		layers:   make([][]common.Hash, 0, height+1),
		defaults: DefaultHashes(height),
	}
	current := make([]common.Hash, len(leaves))
	copy(current, leaves)
	t.layers = append(t.layers, current)
	for h := 0; len(current) > 1; h++ {
		next := make([]common.Hash, 0, (len(current)+1)/2) //nolint:mnd
		for i := 0; i < len(current); i += 2 {
			if i+1 < len(current) {
				next = append(next, hash(current[i], current[i+1]))
			} else {
				next = append(next, hash(current[i], t.defaults[h]))
			}
		}
		t.layers = append(t.layers, next)
		current = next
	}
	return t, nil
}

// Root calculates the root of the given leaves
func Root(leaves []common.Hash) (common.Hash, error) {
	t, err := NewTree(leaves)
	if err != nil {
		return common.Hash{}, err
	}
	return t.Root(), nil
}

// Root returns the root of the tree
func (t *Tree) Root() common.Hash {
	return t.layers[len(t.layers)-1][0]
}

// Height returns the number of levels above the leaves, which is also the proof length
func (t *Tree) Height() int {
	return len(t.layers) - 1
}

// Leaves returns a copy of the leaves
func (t *Tree) Leaves() []common.Hash {
	leaves := make([]common.Hash, len(t.layers[0]))
	copy(leaves, t.layers[0])
	return leaves
}

// IndexOf returns the position of the first occurrence of leaf
func (t *Tree) IndexOf(leaf common.Hash) (uint64, error) {
	for i, l := range t.layers[0] {
		if l == leaf {
			return uint64(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrLeafNotFound, leaf.Hex())
}

// Proof returns the inclusion proof of the first occurrence of leaf
func (t *Tree) Proof(leaf common.Hash) (types.Proof, error) {
	index, err := t.IndexOf(leaf)
	if err != nil {
		return types.Proof{}, err
	}
	return t.ProofAt(index)
}

// ProofAt returns the inclusion proof of the leaf at index
func (t *Tree) ProofAt(index uint64) (types.Proof, error) {
	total := uint64(len(t.layers[0]))
	if index >= total {
		return types.Proof{}, fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, index, total)
	}
	siblings := make([]common.Hash, 0, t.Height())
	pos := index
	for h := 0; h < t.Height(); h++ {
		layer := t.layers[h]
		sibling := pos ^ 1
		if sibling < uint64(len(layer)) {
			siblings = append(siblings, layer[sibling])
		} else {
			siblings = append(siblings, t.defaults[h])
		}
		pos >>= 1
	}
	return types.Proof{
		Leaf:        t.layers[0][index],
		Siblings:    siblings,
		LeafIndex:   index,
		TotalLeaves: total,
	}, nil
}

// Verify checks proof against root. The bits of the leaf index select the side of each sibling.
func Verify(proof types.Proof, root common.Hash) bool {
	if proof.TotalLeaves == 0 || proof.LeafIndex >= proof.TotalLeaves {
		return false
	}
	if len(proof.Siblings) != treeHeight(int(proof.TotalLeaves)) {
		return false
	}
	node := proof.Leaf
	pos := proof.LeafIndex
	for _, sibling := range proof.Siblings {
		if pos&1 == 0 {
			node = hash(node, sibling)
		} else {
			node = hash(sibling, node)
		}
		pos >>= 1
	}
	return node == root
}

// DefaultHashes returns the roots of the all-default subtrees for heights 0..height
func DefaultHashes(height int) []common.Hash {
	defaults := []common.Hash{defaultLeaf}
	for i := 1; i <= height; i++ {
		defaults = append(defaults, hash(defaults[i-1], defaults[i-1]))
	}
	return defaults
}

// treeHeight is ceil(log2(n)) for n >= 1
func treeHeight(n int) int {
	height := 0
	for size := 1; size < n; size <<= 1 {
		height++
	}
	return height
}

func hash(left, right common.Hash) common.Hash {
	var hash common.Hash
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(left[:])
	hasher.Write(right[:])
	copy(hash[:], hasher.Sum(nil))
	return hash
}

func hash32(data common.Hash) common.Hash {
	var hash common.Hash
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data[:])
	copy(hash[:], hasher.Sum(nil))
	return hash
}

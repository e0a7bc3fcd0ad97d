package optimism

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	hopcommon "github.com/hop-protocol/hop-relay/common"
	"github.com/hop-protocol/hop-relay/relay"
)

const (
	legacyMessageVersion  = 0
	bedrockMessageVersion = 1
)

var (
	uint256Type, _ = abi.NewType("uint256", "", nil)
	addressType, _ = abi.NewType("address", "", nil)
	bytesType, _   = abi.NewType("bytes", "", nil)
	bytes32Type, _ = abi.NewType("bytes32", "", nil)

	withdrawalArgs = abi.Arguments{
		{Type: uint256Type}, {Type: addressType}, {Type: addressType},
		{Type: uint256Type}, {Type: uint256Type}, {Type: bytesType},
	}
	legacyRelayArgs = abi.Arguments{
		{Type: addressType}, {Type: addressType}, {Type: bytesType}, {Type: uint256Type},
	}
	slotArgs = abi.Arguments{{Type: bytes32Type}, {Type: uint256Type}}

	relayMessageSelector       = crypto.Keccak256([]byte("relayMessage(uint256,address,address,uint256,uint256,bytes)"))[:4]
	legacyRelayMessageSelector = crypto.Keccak256([]byte("relayMessage(address,address,bytes,uint256)"))[:4]
)

// Withdrawal is a message passed from L2 to L1 through the message passer
type Withdrawal struct {
	Nonce    *big.Int
	Sender   common.Address
	Target   common.Address
	Value    *big.Int
	GasLimit *big.Int
	Data     []byte

	// BlockNumber is the L2 block the withdrawal was initiated in
	BlockNumber uint64
}

// portalWithdrawal is the tuple taken by the portal
type portalWithdrawal struct {
	Nonce    *big.Int
	Sender   common.Address
	Target   common.Address
	Value    *big.Int
	GasLimit *big.Int
	Data     []byte
}

func (w *Withdrawal) tuple() portalWithdrawal {
	return portalWithdrawal{
		Nonce:    w.Nonce,
		Sender:   w.Sender,
		Target:   w.Target,
		Value:    w.Value,
		GasLimit: w.GasLimit,
		Data:     w.Data,
	}
}

// Hash is the key of the withdrawal in the message passer and the portal
func (w *Withdrawal) Hash() (common.Hash, error) {
	enc, err := withdrawalArgs.Pack(w.Nonce, w.Sender, w.Target, w.Value, w.GasLimit, w.Data)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error encoding withdrawal: %w", err)
	}
	return hopcommon.Keccak(enc), nil
}

// StorageSlot is the slot of sentMessages[withdrawalHash] in the message passer
func StorageSlot(withdrawalHash common.Hash) common.Hash {
	enc, _ := slotArgs.Pack(withdrawalHash, common.Big0)
	return hopcommon.Keccak(enc)
}

// OutputRootProof is the preimage of a version 0 output root
type OutputRootProof struct {
	Version                  [32]byte
	StateRoot                [32]byte
	MessagePasserStorageRoot [32]byte
	LatestBlockhash          [32]byte
}

// Root hashes the proof into the output root it commits to
func (p OutputRootProof) Root() common.Hash {
	return hopcommon.Keccak(p.Version[:], p.StateRoot[:], p.MessagePasserStorageRoot[:], p.LatestBlockhash[:])
}

// SentMessage is a message sent through the L1 cross domain messenger
type SentMessage struct {
	Nonce    *big.Int
	Sender   common.Address
	Target   common.Address
	Value    *big.Int
	GasLimit *big.Int
	Message  []byte
}

// Hash is the key of the message in the L2 messenger
func (m *SentMessage) Hash() (common.Hash, error) {
	var (
		enc []byte
		err error
	)
	switch messageVersion(m.Nonce) {
	case legacyMessageVersion:
		enc, err = legacyRelayArgs.Pack(m.Target, m.Sender, m.Message, m.Nonce)
		enc = append(append([]byte{}, legacyRelayMessageSelector...), enc...)
	case bedrockMessageVersion:
		enc, err = withdrawalArgs.Pack(m.Nonce, m.Sender, m.Target, m.Value, m.GasLimit, m.Message)
		enc = append(append([]byte{}, relayMessageSelector...), enc...)
	default:
		return common.Hash{}, fmt.Errorf("%w: unexpected message version %d", relay.ErrFatal, messageVersion(m.Nonce))
	}
	if err != nil {
		return common.Hash{}, fmt.Errorf("error encoding message: %w", err)
	}
	return hopcommon.Keccak(enc), nil
}

// messageVersion is carried in the upper two bytes of the nonce
func messageVersion(nonce *big.Int) uint64 {
	return new(big.Int).Rsh(nonce, 240).Uint64()
}

package polygon

import "github.com/ethereum/go-ethereum/common"

var (
	// messageSentSig is the MessageSent(bytes) event of the child tunnel, the exit payload proves it
	messageSentSig = common.HexToHash("0x8c5261668696ce22758910d05bab8f186d6eb247ceac2af2e82c7dc17669b036")
	// transfersCommittedSig is the TransfersCommitted event of the L2 bridge
	transfersCommittedSig = common.HexToHash("0xf52ad20d3b4f50d1c40901dfb95a9ce5270b2fc32694e5c668354721cd87aa74")
)

// exitAlreadyProcessed is the revert reason of a replayed exit
const exitAlreadyProcessed = "EXIT_ALREADY_PROCESSED"

const l2BridgeABI = `[
{"inputs":[],"name":"messengerProxy","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"}
]`

const childTunnelABI = `[
{"inputs":[],"name":"fxRootTunnel","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"}
]`

const rootTunnelABI = `[
{"inputs":[{"internalType":"bytes","name":"inputData","type":"bytes"}],"name":"receiveMessage","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

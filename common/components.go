package common

const (
	// RELAYER name to identify the relayer component (polls pending cross domain messages)
	RELAYER = "relayer"
	// RPC name to identify the rpc component (withdrawal proofs, transfer roots and messages)
	RPC = "rpc"
)

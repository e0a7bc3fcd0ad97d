package config

// This values doesnt have a default value because depend on the
// environment / deployment
const DefaultMandatoryVars = `
# Layer 1 (Ethereum) RPC provider URL, used by every chain without its own L1URL
L1URL = "http://localhost:8545"
# L1ChainID is the chain id returned by L1URL, every chain settles on it
L1ChainID = 1

# Subgraph of the bridge events on L1
L1SubgraphURL = "http://localhost:8000/subgraphs/name/hop-protocol/hop-mainnet"

# Keystore used to sign the relay transactions on every chain
RelayerKeystorePath = "/app/keystore/relayer.keystore"
RelayerKeystorePassword = "testonly"

# Every L2 chain is declared as a [[Chains]] table, for example:
#
# [[Chains]]
#   ChainID = 10
#   Slug = "optimism"
#   Family = "optimism"
#   L2URL = "http://localhost:9545"
#   [Chains.Optimism]
#     L1CrossDomainMessenger = "0x25ace71c97B33Cc4729CF772ae268934F7ab5fA1"
#     OptimismPortal = "0xbEb5Fc579115071764c7423A4f12eDde41f106Ed"
#     L2OutputOracle = "0xdfe97868233d1aa22e815a266982f2cf17685a27"
`

// This doesn't belong to config, but are the vars used
// to avoid repetition in config-files
const DefaultVars = `
PathRWData = "/tmp/hop-relay"
RPCTimeout = "30s"
`

// DefaultValues is the default configuration
const DefaultValues = `
# This is the default configuration for the hop-relay

# Log configuration
[Log]
  # Environment is the environment where the node is running
  Environment = "development" # "production" or "development"
  # Level is the log level
  Level = "info"
  # Outputs are the outputs where the logs will be written
  Outputs = ["stderr"]

# Retry policy of every chain RPC call and subgraph query, can be overridden per chain and in [Indexer.Retry]
[Retry]
  MaxRetries = 5
  RPCTimeout = "{{RPCTimeout}}"
  InitialBackoff = "1s"

# Keystore signing the relay transactions, can be overridden per chain
[Signer]
  Path = "{{RelayerKeystorePath}}"
  Password = "{{RelayerKeystorePassword}}"

[Indexer]
  # RequestTimeout bounds every GraphQL request
  RequestTimeout = "{{RPCTimeout}}"
  # PageSize is the number of entities fetched per request, 1000 at most
  PageSize = 1000
  [[Indexer.Subgraphs]]
    ChainID = {{L1ChainID}}
    URL = "{{L1SubgraphURL}}"

[TransferRoot]
  # DeploymentBlocks bound the first commit of each chain, as a list of {ChainID, BlockNumber}
  DeploymentBlocks = []

[Withdrawal]
  # MaxCandidateRoots is the number of commits after a transfer searched for its root
  MaxCandidateRoots = 10
  # AllowSettled builds proofs for transfers that were already withdrawn or bonded
  AllowSettled = false

[Relayer]
  # DBPath is the sqlite file holding the messages and the cached transfer roots
  DBPath = "{{PathRWData}}/relayer.sqlite"
  # PollInterval is the time between two polling cycles
  PollInterval = "1m"
  # MaxConcurrency bounds the messages polled at the same time
  MaxConcurrency = 4
  # ResubmitAfter is how long a submitted message waits before being submitted again, 0s disables it
  ResubmitAfter = "30m"

[RPC]
  # Host defines the network adapter that will be used to serve the HTTP requests
  Host = "0.0.0.0"
  # Port defines the port to serve the endpoints via HTTP
  Port = 5576
  # ReadTimeout is the HTTP server read timeout
  # check net/http.server.ReadTimeout and net/http.server.ReadHeaderTimeout
  ReadTimeout = "30s"
  # WriteTimeout is the HTTP server write timeout
  # check net/http.server.WriteTimeout
  WriteTimeout = "2m"
  # MaxRequestsPerIPAndSecond defines how many requests a single IP can
  # send within a single second
  MaxRequestsPerIPAndSecond = 10
`

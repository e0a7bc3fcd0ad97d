package optimism

const l1MessengerABI = `[
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"target","type":"address"},
		{"indexed":false,"name":"sender","type":"address"},
		{"indexed":false,"name":"message","type":"bytes"},
		{"indexed":false,"name":"messageNonce","type":"uint256"},
		{"indexed":false,"name":"gasLimit","type":"uint256"}],
	 "name":"SentMessage","type":"event"},
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"sender","type":"address"},
		{"indexed":false,"name":"value","type":"uint256"}],
	 "name":"SentMessageExtension1","type":"event"}
]`

const l2MessengerABI = `[
	{"inputs":[{"name":"","type":"bytes32"}],"name":"successfulMessages",
	 "outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"","type":"bytes32"}],"name":"failedMessages",
	 "outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[
		{"name":"_nonce","type":"uint256"},
		{"name":"_sender","type":"address"},
		{"name":"_target","type":"address"},
		{"name":"_value","type":"uint256"},
		{"name":"_minGasLimit","type":"uint256"},
		{"name":"_message","type":"bytes"}],
	 "name":"relayMessage","outputs":[],"stateMutability":"payable","type":"function"}
]`

const messagePasserABI = `[
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"nonce","type":"uint256"},
		{"indexed":true,"name":"sender","type":"address"},
		{"indexed":true,"name":"target","type":"address"},
		{"indexed":false,"name":"value","type":"uint256"},
		{"indexed":false,"name":"gasLimit","type":"uint256"},
		{"indexed":false,"name":"data","type":"bytes"},
		{"indexed":false,"name":"withdrawalHash","type":"bytes32"}],
	 "name":"MessagePassed","type":"event"}
]`

const outputOracleABI = `[
	{"inputs":[],"name":"latestBlockNumber",
	 "outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"_l2BlockNumber","type":"uint256"}],"name":"getL2OutputIndexAfter",
	 "outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"_l2OutputIndex","type":"uint256"}],"name":"getL2Output",
	 "outputs":[{"components":[
		{"name":"outputRoot","type":"bytes32"},
		{"name":"timestamp","type":"uint128"},
		{"name":"l2BlockNumber","type":"uint128"}],"name":"","type":"tuple"}],
	 "stateMutability":"view","type":"function"},
	{"inputs":[],"name":"FINALIZATION_PERIOD_SECONDS",
	 "outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

const portalABI = `[
	{"inputs":[{"name":"","type":"bytes32"}],"name":"provenWithdrawals",
	 "outputs":[
		{"name":"outputRoot","type":"bytes32"},
		{"name":"timestamp","type":"uint128"},
		{"name":"l2OutputIndex","type":"uint128"}],
	 "stateMutability":"view","type":"function"},
	{"inputs":[{"name":"","type":"bytes32"}],"name":"finalizedWithdrawals",
	 "outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[
		{"components":[
			{"name":"nonce","type":"uint256"},
			{"name":"sender","type":"address"},
			{"name":"target","type":"address"},
			{"name":"value","type":"uint256"},
			{"name":"gasLimit","type":"uint256"},
			{"name":"data","type":"bytes"}],"name":"_tx","type":"tuple"},
		{"name":"_l2OutputIndex","type":"uint256"},
		{"components":[
			{"name":"version","type":"bytes32"},
			{"name":"stateRoot","type":"bytes32"},
			{"name":"messagePasserStorageRoot","type":"bytes32"},
			{"name":"latestBlockhash","type":"bytes32"}],"name":"_outputRootProof","type":"tuple"},
		{"name":"_withdrawalProof","type":"bytes[]"}],
	 "name":"proveWithdrawalTransaction","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[
		{"components":[
			{"name":"nonce","type":"uint256"},
			{"name":"sender","type":"address"},
			{"name":"target","type":"address"},
			{"name":"value","type":"uint256"},
			{"name":"gasLimit","type":"uint256"},
			{"name":"data","type":"bytes"}],"name":"_tx","type":"tuple"}],
	 "name":"finalizeWithdrawalTransaction","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const l1BlockABI = `[
	{"inputs":[],"name":"number","outputs":[{"name":"","type":"uint64"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"sequenceNumber","outputs":[{"name":"","type":"uint64"}],"stateMutability":"view","type":"function"}
]`

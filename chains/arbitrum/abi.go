package arbitrum

const bridgeABI = `[
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"messageIndex","type":"uint256"},
		{"indexed":true,"name":"beforeInboxAcc","type":"bytes32"},
		{"indexed":false,"name":"inbox","type":"address"},
		{"indexed":false,"name":"kind","type":"uint8"},
		{"indexed":false,"name":"sender","type":"address"},
		{"indexed":false,"name":"messageDataHash","type":"bytes32"},
		{"indexed":false,"name":"baseFeeL1","type":"uint256"},
		{"indexed":false,"name":"timestamp","type":"uint64"}],
	 "name":"MessageDelivered","type":"event"}
]`

const inboxABI = `[
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"messageNum","type":"uint256"},
		{"indexed":false,"name":"data","type":"bytes"}],
	 "name":"InboxMessageDelivered","type":"event"}
]`

const outboxABI = `[
	{"inputs":[{"name":"index","type":"uint256"}],"name":"isSpent",
	 "outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[
		{"name":"proof","type":"bytes32[]"},
		{"name":"index","type":"uint256"},
		{"name":"l2Sender","type":"address"},
		{"name":"to","type":"address"},
		{"name":"l2Block","type":"uint256"},
		{"name":"l1Block","type":"uint256"},
		{"name":"l2Timestamp","type":"uint256"},
		{"name":"value","type":"uint256"},
		{"name":"data","type":"bytes"}],
	 "name":"executeTransaction","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const rollupABI = `[
	{"inputs":[],"name":"latestConfirmed",
	 "outputs":[{"name":"","type":"uint64"}],"stateMutability":"view","type":"function"},
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"nodeNum","type":"uint64"},
		{"indexed":false,"name":"blockHash","type":"bytes32"},
		{"indexed":false,"name":"sendRoot","type":"bytes32"}],
	 "name":"NodeConfirmed","type":"event"}
]`

const arbSysABI = `[
	{"anonymous":false,"inputs":[
		{"indexed":false,"name":"caller","type":"address"},
		{"indexed":true,"name":"destination","type":"address"},
		{"indexed":true,"name":"hash","type":"uint256"},
		{"indexed":true,"name":"position","type":"uint256"},
		{"indexed":false,"name":"arbBlockNum","type":"uint256"},
		{"indexed":false,"name":"ethBlockNum","type":"uint256"},
		{"indexed":false,"name":"timestamp","type":"uint256"},
		{"indexed":false,"name":"callvalue","type":"uint256"},
		{"indexed":false,"name":"data","type":"bytes"}],
	 "name":"L2ToL1Tx","type":"event"}
]`

const arbRetryableTxABI = `[
	{"inputs":[{"name":"ticketId","type":"bytes32"}],"name":"getTimeout",
	 "outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"ticketId","type":"bytes32"}],"name":"redeem",
	 "outputs":[{"name":"","type":"bytes32"}],"stateMutability":"nonpayable","type":"function"},
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"ticketId","type":"bytes32"},
		{"indexed":true,"name":"retryTxHash","type":"bytes32"},
		{"indexed":true,"name":"sequenceNum","type":"uint64"},
		{"indexed":false,"name":"donatedGas","type":"uint64"},
		{"indexed":false,"name":"gasDonor","type":"address"},
		{"indexed":false,"name":"maxRefund","type":"uint256"},
		{"indexed":false,"name":"submissionFeeRefund","type":"uint256"}],
	 "name":"RedeemScheduled","type":"event"}
]`

const nodeInterfaceABI = `[
	{"inputs":[{"name":"size","type":"uint64"},{"name":"leaf","type":"uint64"}],"name":"constructOutboxProof",
	 "outputs":[{"name":"send","type":"bytes32"},{"name":"root","type":"bytes32"},{"name":"proof","type":"bytes32[]"}],
	 "stateMutability":"view","type":"function"}
]`

package indexer

const transferCommittedFields = `
		id
		rootHash
		destinationChainId
		totalAmount
		rootCommittedAt
		transactionHash
		transactionIndex
		timestamp
		blockNumber
		token`

const transferSentFields = `
		id
		transferId
		destinationChainId
		recipient
		amount
		transferNonce
		bonderFee
		index
		amountOutMin
		deadline
		transactionHash
		transactionIndex
		timestamp
		blockNumber
		token`

const transferCommitQuery = `
query TransferCommitteds($token: String, $rootHash: String) {
	transfersCommitteds(
		where: {
			token: $token,
			rootHash: $rootHash
		},
		orderBy: timestamp,
		orderDirection: asc,
		first: 1
	) {` + transferCommittedFields + `
	}
}`

const previousTransferCommitQuery = `
query TransferCommitteds($token: String, $blockNumber: String, $destinationChainId: String) {
	transfersCommitteds(
		where: {
			token: $token,
			blockNumber_lt: $blockNumber,
			destinationChainId: $destinationChainId
		},
		orderBy: blockNumber,
		orderDirection: desc,
		first: 1
	) {` + transferCommittedFields + `
	}
}`

const transfersSentQuery = `
query TransfersSent($token: String, $startBlockNumber: String, $endBlockNumber: String, $destinationChainId: String, $lastId: ID, $first: Int) {
	transferSents(
		where: {
			token: $token,
			blockNumber_gte: $startBlockNumber,
			blockNumber_lte: $endBlockNumber,
			destinationChainId: $destinationChainId,
			id_gt: $lastId
		},
		orderBy: id,
		orderDirection: asc,
		first: $first
	) {` + transferSentFields + `
	}
}`

const transferSentByIDQuery = `
query TransferId($transferId: String) {
	transferSents(
		where: {
			transferId: $transferId
		},
		orderBy: timestamp,
		orderDirection: desc,
		first: 1
	) {` + transferSentFields + `
	}
}`

const transferCommitsAfterQuery = `
query TransferCommitted($token: String, $timestamp: String, $destinationChainId: String, $first: Int) {
	transfersCommitteds(
		where: {
			token: $token,
			timestamp_gte: $timestamp,
			destinationChainId: $destinationChainId
		},
		orderBy: timestamp,
		orderDirection: asc,
		first: $first
	) {` + transferCommittedFields + `
	}
}`

const transferRootSetQuery = `
query TransferRootSet($token: String, $rootHash: String) {
	transferRootSets(
		where: {
			token: $token,
			rootHash: $rootHash
		},
		first: 1
	) {
		id
	}
}`

const transferRootConfirmedQuery = `
query TransferRootConfirmed($token: String, $rootHash: String) {
	transferRootConfirmeds(
		where: {
			token: $token,
			rootHash: $rootHash
		},
		first: 1
	) {
		id
	}
}`

const withdrewQuery = `
query Withdrew($transferId: String) {
	withdrews(
		where: {
			transferId: $transferId
		},
		first: 1
	) {
		id
	}
}`

const withdrawalBondedQuery = `
query WithdrawalBonded($transferId: String) {
	withdrawalBondeds(
		where: {
			transferId: $transferId
		},
		first: 1
	) {
		id
	}
}`

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tags

// Cryptographic primitives.
const (
	VerifyingKey   = "VERKEY"
	SigningKeyPair = "SIGNKEYPAIR"
	Signature      = "SIG"
	MerkleNode     = "NODE"
	MerkleLeaf     = "LEAF"
	Proof          = "PROOF"
	BatchProof     = "BATCHPROOF"
	Commitment     = "COMM"
)

// Ledger objects.
const (
	Transaction = "TXN"
	Block       = "BLOCK"
	State       = "STATE"
	Set         = "SET"
	Seed        = "SEED"
	Hash        = "HASH"
)

// Assets, addresses, and records.
const (
	ExternalAddress = "EADDR"
	ERC20Code       = "ERC20"
	AssetCode       = "ASSET_CODE"
	AssetDefinition = "ASSET_DEF"
	AssetPolicy     = "ASSET_POL"
	Nullifier       = "NUL"
	RecordOpening   = "REC"
	RecordComm      = "RECCOMM"
	UserPublicKey   = "USERPUBKEY"
	UserKeyPair     = "USERKEY"
	UserAddress     = "ADDR"
	AuditorPubKey   = "AUDPUBKEY"
	FreezerPubKey   = "FREEZEPUBKEY"
	Credential      = "CRED"
	Identity        = "ID"
	ViewingKey      = "VIEWKEY"
)

// Network identities.
const (
	PeerID = "PEER_ID"
	NodeID = "NODE_ID"
)

// builtin is the tag set loaded by Default.
var builtin = []Entry{
	{Namespace: "crypto", Name: "verifying-key", Tag: VerifyingKey},
	{Namespace: "crypto", Name: "signing-key-pair", Tag: SigningKeyPair},
	{Namespace: "crypto", Name: "signature", Tag: Signature},
	{Namespace: "crypto", Name: "merkle-node", Tag: MerkleNode},
	{Namespace: "crypto", Name: "merkle-leaf", Tag: MerkleLeaf},
	{Namespace: "crypto", Name: "proof", Tag: Proof},
	{Namespace: "crypto", Name: "batch-proof", Tag: BatchProof},
	{Namespace: "crypto", Name: "commitment", Tag: Commitment},

	{Namespace: "ledger", Name: "transaction", Tag: Transaction},
	{Namespace: "ledger", Name: "block", Tag: Block},
	{Namespace: "ledger", Name: "state", Tag: State},
	{Namespace: "ledger", Name: "set", Tag: Set},
	{Namespace: "ledger", Name: "seed", Tag: Seed},
	{Namespace: "ledger", Name: "hash", Tag: Hash},

	{Namespace: "asset", Name: "external-address", Tag: ExternalAddress},
	{Namespace: "asset", Name: "erc20-code", Tag: ERC20Code},
	{Namespace: "asset", Name: "asset-code", Tag: AssetCode},
	{Namespace: "asset", Name: "asset-definition", Tag: AssetDefinition},
	{Namespace: "asset", Name: "asset-policy", Tag: AssetPolicy},
	{Namespace: "asset", Name: "nullifier", Tag: Nullifier},
	{Namespace: "asset", Name: "record-opening", Tag: RecordOpening},
	{Namespace: "asset", Name: "record-commitment", Tag: RecordComm},
	{Namespace: "asset", Name: "user-public-key", Tag: UserPublicKey},
	{Namespace: "asset", Name: "user-key-pair", Tag: UserKeyPair},
	{Namespace: "asset", Name: "user-address", Tag: UserAddress},
	{Namespace: "asset", Name: "auditor-public-key", Tag: AuditorPubKey},
	{Namespace: "asset", Name: "freezer-public-key", Tag: FreezerPubKey},
	{Namespace: "asset", Name: "credential", Tag: Credential},
	{Namespace: "asset", Name: "identity", Tag: Identity},
	{Namespace: "asset", Name: "viewing-key", Tag: ViewingKey},

	{Namespace: "network", Name: "peer-id", Tag: PeerID},
	{Namespace: "network", Name: "node-id", Tag: NodeID},
}

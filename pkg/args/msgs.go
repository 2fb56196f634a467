package args

// Wire message layouts.
//
// Intent payloads are Borsh-encoded: field order significant, little-endian
// integers, u32-length-prefixed strings and sequences, one-byte presence tag
// for optional fields, no self-description. The structs below mirror the
// wire layout field for field; reordering a field or changing an optional
// field's type is a breaking wire-format change and must be version-gated by
// the caller.
//
// Each transaction kind has two payloads: the kind-specific message and the
// common WrapperTxMsg envelope. All values travel as strings in their
// canonical text encodings and are validated during decoding; shielded key
// material travels as raw Borsh blobs because extended keys do not fit the
// bech32 length limit.

// WrapperTxMsg is the transaction-wide envelope payload shared by every
// kind.
type WrapperTxMsg struct {
	Token     string  // fee token address
	FeeAmount string  // decimal fee amount
	GasLimit  string  // whole-number gas limit
	ChainID   string  // opaque chain identifier, recorded verbatim
	PublicKey *string // optional signer public key
	Memo      *string // optional memo
}

// RevealPKMsg reveals an implicit account's public key.
type RevealPKMsg struct {
	PublicKey string
}

// BondMsg stakes tokens with a validator.
type BondMsg struct {
	Source    string
	Validator string
	Amount    string
}

// UnbondMsg withdraws tokens from a validator bond.
type UnbondMsg struct {
	Source    string
	Validator string
	Amount    string
}

// WithdrawMsg claims fully unbonded tokens.
type WithdrawMsg struct {
	Source    string
	Validator string
}

// RedelegateMsg moves a bond between validators.
type RedelegateMsg struct {
	Owner                string
	SourceValidator      string
	DestinationValidator string
	Amount               string
}

// VoteProposalMsg casts a governance vote.
type VoteProposalMsg struct {
	Signer     string
	ProposalID uint64
	Vote       string
}

// ClaimRewardsMsg claims staking rewards. A nil Source means the claim goes
// to the bond owner.
type ClaimRewardsMsg struct {
	Validator string
	Source    *string
}

// TransparentTransferDataMsg is one leg of a transparent transfer.
type TransparentTransferDataMsg struct {
	Source string
	Target string
	Token  string
	Amount string
}

// TransparentTransferMsg is a transparent transfer with zero or more legs.
type TransparentTransferMsg struct {
	Data []TransparentTransferDataMsg
}

// ShieldedTransferDataMsg is one leg of a fully shielded transfer. Source is
// a Borsh-encoded pseudo extended key.
type ShieldedTransferDataMsg struct {
	Source []byte
	Target string
	Token  string
	Amount string
}

// ShieldedTransferMsg is a shielded-to-shielded transfer.
type ShieldedTransferMsg struct {
	Data            []ShieldedTransferDataMsg
	GasSpendingKeys [][]byte
}

// ShieldingTransferDataMsg is one leg of a shielding transfer.
type ShieldingTransferDataMsg struct {
	Source string
	Token  string
	Amount string
}

// ShieldingTransferMsg moves transparent funds into the shielded pool.
type ShieldingTransferMsg struct {
	Target string
	Data   []ShieldingTransferDataMsg
}

// UnshieldingTransferDataMsg is one leg of an unshielding transfer.
type UnshieldingTransferDataMsg struct {
	Target string
	Token  string
	Amount string
}

// UnshieldingTransferMsg moves shielded funds out to transparent accounts.
// Source is a Borsh-encoded pseudo extended key.
type UnshieldingTransferMsg struct {
	Source          []byte
	Data            []UnshieldingTransferDataMsg
	GasSpendingKeys [][]byte
}

// IbcTransferMsg is a cross-chain transfer over IBC. TimeoutHeight and
// TimeoutSecOffset are independently optional; leaving both unset defers the
// timeout policy to the transfer module's default. ShieldingData, when
// present, must itself decode as an IbcShieldingDataMsg.
type IbcTransferMsg struct {
	Source           string
	Receiver         string
	Token            string
	Amount           string
	PortID           string
	ChannelID        string
	TimeoutHeight    *uint64
	TimeoutSecOffset *uint64
	Memo             *string
	ShieldingData    *[]byte
}

// IbcShieldingDataMsg is the structured blob describing how an incoming IBC
// transfer lands in the shielded pool.
type IbcShieldingDataMsg struct {
	Target string // payment address receiving the shielded funds
	Token  string
	Amount string
}

// EthBridgeTransferMsg queues a transfer into the Ethereum bridge pool.
type EthBridgeTransferMsg struct {
	Nut       bool // whether the asset is a non-usable token
	Asset     string
	Recipient string
	Sender    string
	Amount    string
	FeeAmount string
	FeePayer  *string
	FeeToken  string
}

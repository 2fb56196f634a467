// Package args decodes binary intent payloads into strongly-typed
// transaction argument descriptors.
//
// Each transaction kind has one decode entry point taking two Borsh
// payloads: the kind-specific message and the common envelope. The entry
// point decodes the kind payload, validates every domain value through
// pkg/types, builds the shared envelope and assembles the kind's descriptor
// with its fixed code-path label. Decoding is a pure transform: a call
// either returns a fully valid descriptor or an error, never a partial
// result.
//
// All kinds share one decode pipeline (decodeMsg + buildEnvelope); the
// per-kind functions only contribute the field validation and descriptor
// assembly that genuinely differ between kinds.
package args

import (
	"fmt"

	"github.com/near/borsh-go"

	"github.com/suffix-labs/masp-authz/pkg/types"
)

// Code-path labels identifying which executable transaction logic the chain
// runtime should invoke for a descriptor. Opaque constants from this layer's
// perspective; the consuming runtime matches them exactly.
const (
	CodePathBond         = "tx_bond.wasm"
	CodePathUnbond       = "tx_unbond.wasm"
	CodePathWithdraw     = "tx_withdraw.wasm"
	CodePathRedelegate   = "tx_redelegate.wasm"
	CodePathVoteProposal = "tx_vote_proposal.wasm"
	CodePathClaimRewards = "tx_claim_rewards.wasm"
	CodePathTransfer     = "tx_transfer.wasm"
	CodePathIbcTransfer  = "tx_ibc.wasm"
	CodePathBridgePool   = "tx_bridge_pool.wasm"
	CodePathRevealPK     = "tx_reveal_pk.wasm"
)

// Transaction kind names used in error messages.
const (
	kindEnvelope            = "envelope"
	kindRevealPK            = "reveal-pk"
	kindBond                = "bond"
	kindUnbond              = "unbond"
	kindWithdraw            = "withdraw"
	kindRedelegate          = "redelegate"
	kindVoteProposal        = "vote-proposal"
	kindClaimRewards        = "claim-rewards"
	kindTransparentTransfer = "transparent-transfer"
	kindShieldedTransfer    = "shielded-transfer"
	kindShieldingTransfer   = "shielding-transfer"
	kindUnshieldingTransfer = "unshielding-transfer"
	kindIbcTransfer         = "ibc-transfer"
	kindEthBridgeTransfer   = "eth-bridge-transfer"
)

// Expiration selects the transaction expiration policy.
type Expiration uint8

const (
	// ExpirationDefault defers to the chain's default expiration window.
	ExpirationDefault Expiration = iota
	// ExpirationNone disables expiration.
	ExpirationNone
)

// Envelope is the transaction-wide argument set shared by every kind.
// Immutable once built; kind descriptors hold it by reference.
type Envelope struct {
	FeeToken  types.Address
	FeeAmount types.DenominatedAmount
	GasLimit  types.GasLimit
	ChainID   *types.ChainID
	PublicKey *types.PublicKey

	// SigningKeys is the signer-key projection of PublicKey: one element
	// when a key was supplied, empty otherwise. An empty list means "key
	// material is supplied directly to the authorization step", not
	// "unsigned".
	SigningKeys []types.PublicKey

	Memo       []byte
	Expiration Expiration

	DryRun        bool
	DryRunWrapper bool
	Force         bool
	BroadcastOnly bool

	// UseDevice requests hardware-device-backed signing. Never set by the
	// wire decoder; the device path is surfaced as unsupported downstream.
	UseDevice bool

	// RevealCodePath is the code path used when the signer's public key
	// must be revealed alongside the transaction.
	RevealCodePath string
}

// decodeMsg is the shared structural-decode step of the pipeline: Borsh
// deserialization with the kind name folded into the error.
func decodeMsg[T any](kind string, payload []byte) (*T, error) {
	var msg T
	if err := borsh.Deserialize(&msg, payload); err != nil {
		return nil, &DecodeError{Kind: kind, Cause: err}
	}
	return &msg, nil
}

func invalid(kind, field string, err error) error {
	return &InvalidValueError{Kind: kind, Field: field, Cause: err}
}

// EnvelopeArgs decodes a standalone envelope payload.
func EnvelopeArgs(envelopePayload []byte) (*Envelope, error) {
	return buildEnvelope(kindEnvelope, envelopePayload)
}

// buildEnvelope decodes the common envelope payload and validates its
// fields. kind names the transaction kind on whose behalf the envelope is
// being decoded, so validation errors point at the right entry point.
func buildEnvelope(kind string, envelopePayload []byte) (*Envelope, error) {
	msg, err := decodeMsg[WrapperTxMsg](kind, envelopePayload)
	if err != nil {
		return nil, err
	}

	feeToken, err := types.ParseAddress(msg.Token)
	if err != nil {
		return nil, invalid(kind, "fee token", err)
	}
	feeAmount, err := types.ParseNativeAmount(msg.FeeAmount)
	if err != nil {
		return nil, invalid(kind, "fee amount", err)
	}
	gasLimit, err := types.ParseGasLimit(msg.GasLimit)
	if err != nil {
		return nil, invalid(kind, "gas limit", err)
	}

	env := &Envelope{
		FeeToken:       feeToken,
		FeeAmount:      feeAmount,
		GasLimit:       gasLimit,
		SigningKeys:    []types.PublicKey{},
		Expiration:     ExpirationDefault,
		RevealCodePath: CodePathRevealPK,
	}

	if msg.ChainID != "" {
		id := types.ChainID(msg.ChainID)
		env.ChainID = &id
	}
	if msg.PublicKey != nil {
		pk, err := types.ParsePublicKey(*msg.PublicKey)
		if err != nil {
			return nil, invalid(kind, "public key", err)
		}
		env.PublicKey = &pk
		env.SigningKeys = []types.PublicKey{pk}
	}
	if msg.Memo != nil {
		env.Memo = []byte(*msg.Memo)
	}

	return env, nil
}

// RevealPK reveals an implicit account's public key.
type RevealPK struct {
	Tx        *Envelope
	PublicKey types.PublicKey
	CodePath  string
}

// RevealPKArgs decodes a reveal-pk payload.
func RevealPKArgs(kindPayload, envelopePayload []byte) (*RevealPK, error) {
	msg, err := decodeMsg[RevealPKMsg](kindRevealPK, kindPayload)
	if err != nil {
		return nil, err
	}
	pk, err := types.ParsePublicKey(msg.PublicKey)
	if err != nil {
		return nil, invalid(kindRevealPK, "public key", err)
	}
	env, err := buildEnvelope(kindRevealPK, envelopePayload)
	if err != nil {
		return nil, err
	}
	return &RevealPK{Tx: env, PublicKey: pk, CodePath: CodePathRevealPK}, nil
}

// Bond stakes tokens with a validator.
type Bond struct {
	Tx        *Envelope
	Source    *types.Address
	Validator types.Address
	Amount    types.DenominatedAmount
	CodePath  string
}

// BondArgs decodes a bond payload.
func BondArgs(kindPayload, envelopePayload []byte) (*Bond, error) {
	msg, err := decodeMsg[BondMsg](kindBond, kindPayload)
	if err != nil {
		return nil, err
	}
	source, err := types.ParseAddress(msg.Source)
	if err != nil {
		return nil, invalid(kindBond, "source", err)
	}
	validator, err := types.ParseAddress(msg.Validator)
	if err != nil {
		return nil, invalid(kindBond, "validator", err)
	}
	amount, err := types.ParseNativeAmount(msg.Amount)
	if err != nil {
		return nil, invalid(kindBond, "amount", err)
	}
	env, err := buildEnvelope(kindBond, envelopePayload)
	if err != nil {
		return nil, err
	}
	return &Bond{
		Tx:        env,
		Source:    &source,
		Validator: validator,
		Amount:    amount,
		CodePath:  CodePathBond,
	}, nil
}

// Unbond withdraws tokens from a validator bond.
type Unbond struct {
	Tx        *Envelope
	Source    *types.Address
	Validator types.Address
	Amount    types.DenominatedAmount
	CodePath  string
}

// UnbondArgs decodes an unbond payload.
func UnbondArgs(kindPayload, envelopePayload []byte) (*Unbond, error) {
	msg, err := decodeMsg[UnbondMsg](kindUnbond, kindPayload)
	if err != nil {
		return nil, err
	}
	source, err := types.ParseAddress(msg.Source)
	if err != nil {
		return nil, invalid(kindUnbond, "source", err)
	}
	validator, err := types.ParseAddress(msg.Validator)
	if err != nil {
		return nil, invalid(kindUnbond, "validator", err)
	}
	amount, err := types.ParseNativeAmount(msg.Amount)
	if err != nil {
		return nil, invalid(kindUnbond, "amount", err)
	}
	env, err := buildEnvelope(kindUnbond, envelopePayload)
	if err != nil {
		return nil, err
	}
	return &Unbond{
		Tx:        env,
		Source:    &source,
		Validator: validator,
		Amount:    amount,
		CodePath:  CodePathUnbond,
	}, nil
}

// Withdraw claims fully unbonded tokens.
type Withdraw struct {
	Tx        *Envelope
	Source    *types.Address
	Validator types.Address
	CodePath  string
}

// WithdrawArgs decodes a withdraw payload.
func WithdrawArgs(kindPayload, envelopePayload []byte) (*Withdraw, error) {
	msg, err := decodeMsg[WithdrawMsg](kindWithdraw, kindPayload)
	if err != nil {
		return nil, err
	}
	source, err := types.ParseAddress(msg.Source)
	if err != nil {
		return nil, invalid(kindWithdraw, "source", err)
	}
	validator, err := types.ParseAddress(msg.Validator)
	if err != nil {
		return nil, invalid(kindWithdraw, "validator", err)
	}
	env, err := buildEnvelope(kindWithdraw, envelopePayload)
	if err != nil {
		return nil, err
	}
	return &Withdraw{
		Tx:        env,
		Source:    &source,
		Validator: validator,
		CodePath:  CodePathWithdraw,
	}, nil
}

// Redelegate moves a bond between validators.
type Redelegate struct {
	Tx            *Envelope
	Owner         types.Address
	SrcValidator  types.Address
	DestValidator types.Address
	Amount        types.DenominatedAmount
	CodePath      string
}

// RedelegateArgs decodes a redelegate payload.
func RedelegateArgs(kindPayload, envelopePayload []byte) (*Redelegate, error) {
	msg, err := decodeMsg[RedelegateMsg](kindRedelegate, kindPayload)
	if err != nil {
		return nil, err
	}
	owner, err := types.ParseAddress(msg.Owner)
	if err != nil {
		return nil, invalid(kindRedelegate, "owner", err)
	}
	src, err := types.ParseAddress(msg.SourceValidator)
	if err != nil {
		return nil, invalid(kindRedelegate, "source validator", err)
	}
	dest, err := types.ParseAddress(msg.DestinationValidator)
	if err != nil {
		return nil, invalid(kindRedelegate, "destination validator", err)
	}
	amount, err := types.ParseNativeAmount(msg.Amount)
	if err != nil {
		return nil, invalid(kindRedelegate, "amount", err)
	}
	env, err := buildEnvelope(kindRedelegate, envelopePayload)
	if err != nil {
		return nil, err
	}
	return &Redelegate{
		Tx:            env,
		Owner:         owner,
		SrcValidator:  src,
		DestValidator: dest,
		Amount:        amount,
		CodePath:      CodePathRedelegate,
	}, nil
}

// Governance vote choices.
const (
	VoteYay     = "yay"
	VoteNay     = "nay"
	VoteAbstain = "abstain"
)

// VoteProposal casts a governance vote.
type VoteProposal struct {
	Tx         *Envelope
	Voter      types.Address
	ProposalID uint64
	Vote       string
	CodePath   string
}

// VoteProposalArgs decodes a vote-proposal payload.
func VoteProposalArgs(kindPayload, envelopePayload []byte) (*VoteProposal, error) {
	msg, err := decodeMsg[VoteProposalMsg](kindVoteProposal, kindPayload)
	if err != nil {
		return nil, err
	}
	voter, err := types.ParseAddress(msg.Signer)
	if err != nil {
		return nil, invalid(kindVoteProposal, "signer", err)
	}
	switch msg.Vote {
	case VoteYay, VoteNay, VoteAbstain:
	default:
		return nil, invalid(kindVoteProposal, "vote",
			fmt.Errorf("unknown vote %q", msg.Vote))
	}
	env, err := buildEnvelope(kindVoteProposal, envelopePayload)
	if err != nil {
		return nil, err
	}
	return &VoteProposal{
		Tx:         env,
		Voter:      voter,
		ProposalID: msg.ProposalID,
		Vote:       msg.Vote,
		CodePath:   CodePathVoteProposal,
	}, nil
}

// ClaimRewards claims staking rewards. A nil Source means the claim goes to
// the bond owner.
type ClaimRewards struct {
	Tx        *Envelope
	Validator types.Address
	Source    *types.Address
	CodePath  string
}

// ClaimRewardsArgs decodes a claim-rewards payload. An absent source means
// "claim to self"; a present but malformed source is a hard failure, never
// silently dropped.
func ClaimRewardsArgs(kindPayload, envelopePayload []byte) (*ClaimRewards, error) {
	msg, err := decodeMsg[ClaimRewardsMsg](kindClaimRewards, kindPayload)
	if err != nil {
		return nil, err
	}
	validator, err := types.ParseAddress(msg.Validator)
	if err != nil {
		return nil, invalid(kindClaimRewards, "validator", err)
	}
	var source *types.Address
	if msg.Source != nil {
		addr, err := types.ParseAddress(*msg.Source)
		if err != nil {
			return nil, invalid(kindClaimRewards, "source", err)
		}
		source = &addr
	}
	env, err := buildEnvelope(kindClaimRewards, envelopePayload)
	if err != nil {
		return nil, err
	}
	return &ClaimRewards{
		Tx:        env,
		Validator: validator,
		Source:    source,
		CodePath:  CodePathClaimRewards,
	}, nil
}

// TransparentTransferData is one validated leg of a transparent transfer.
type TransparentTransferData struct {
	Source types.Address
	Target types.Address
	Token  types.Address
	Amount types.DenominatedAmount
}

// TransparentTransfer moves funds between transparent accounts.
type TransparentTransfer struct {
	Tx       *Envelope
	Data     []TransparentTransferData
	CodePath string
}

// TransparentTransferArgs decodes a transparent-transfer payload. An empty
// leg sequence is legal here; whether a zero-leg transfer is acceptable is
// decided by transaction construction.
func TransparentTransferArgs(kindPayload, envelopePayload []byte) (*TransparentTransfer, error) {
	msg, err := decodeMsg[TransparentTransferMsg](kindTransparentTransfer, kindPayload)
	if err != nil {
		return nil, err
	}
	data := make([]TransparentTransferData, 0, len(msg.Data))
	for i, leg := range msg.Data {
		source, err := types.ParseAddress(leg.Source)
		if err != nil {
			return nil, invalid(kindTransparentTransfer, fmt.Sprintf("leg %d source", i), err)
		}
		target, err := types.ParseAddress(leg.Target)
		if err != nil {
			return nil, invalid(kindTransparentTransfer, fmt.Sprintf("leg %d target", i), err)
		}
		token, err := types.ParseAddress(leg.Token)
		if err != nil {
			return nil, invalid(kindTransparentTransfer, fmt.Sprintf("leg %d token", i), err)
		}
		amount, err := types.ParseAmount(leg.Amount)
		if err != nil {
			return nil, invalid(kindTransparentTransfer, fmt.Sprintf("leg %d amount", i), err)
		}
		data = append(data, TransparentTransferData{
			Source: source,
			Target: target,
			Token:  token,
			Amount: amount,
		})
	}
	env, err := buildEnvelope(kindTransparentTransfer, envelopePayload)
	if err != nil {
		return nil, err
	}
	return &TransparentTransfer{Tx: env, Data: data, CodePath: CodePathTransfer}, nil
}

// ShieldedTransferData is one validated leg of a shielded transfer. Source
// is a neutralized key reference, not a signing key; spend authority is
// supplied directly to the authorization step.
type ShieldedTransferData struct {
	Source *types.PseudoExtendedKey
	Target types.PaymentAddress
	Token  types.Address
	Amount types.DenominatedAmount
}

// ShieldedTransfer moves funds inside the shielded pool.
type ShieldedTransfer struct {
	Tx              *Envelope
	Data            []ShieldedTransferData
	GasSpendingKeys []*types.PseudoExtendedKey
	CodePath        string
}

// ShieldedTransferArgs decodes a shielded-transfer payload. Every source key
// is neutralized during decoding.
func ShieldedTransferArgs(kindPayload, envelopePayload []byte) (*ShieldedTransfer, error) {
	msg, err := decodeMsg[ShieldedTransferMsg](kindShieldedTransfer, kindPayload)
	if err != nil {
		return nil, err
	}
	data := make([]ShieldedTransferData, 0, len(msg.Data))
	for i, leg := range msg.Data {
		source, err := types.PseudoExtendedKeyFromBytes(leg.Source)
		if err != nil {
			return nil, invalid(kindShieldedTransfer, fmt.Sprintf("leg %d source", i), err)
		}
		source.Neutralize()
		target, err := types.ParsePaymentAddress(leg.Target)
		if err != nil {
			return nil, invalid(kindShieldedTransfer, fmt.Sprintf("leg %d target", i), err)
		}
		token, err := types.ParseAddress(leg.Token)
		if err != nil {
			return nil, invalid(kindShieldedTransfer, fmt.Sprintf("leg %d token", i), err)
		}
		amount, err := types.ParseAmount(leg.Amount)
		if err != nil {
			return nil, invalid(kindShieldedTransfer, fmt.Sprintf("leg %d amount", i), err)
		}
		data = append(data, ShieldedTransferData{
			Source: source,
			Target: target,
			Token:  token,
			Amount: amount,
		})
	}
	gasKeys, err := decodeGasSpendingKeys(kindShieldedTransfer, msg.GasSpendingKeys)
	if err != nil {
		return nil, err
	}
	env, err := buildEnvelope(kindShieldedTransfer, envelopePayload)
	if err != nil {
		return nil, err
	}
	return &ShieldedTransfer{
		Tx:              env,
		Data:            data,
		GasSpendingKeys: gasKeys,
		CodePath:        CodePathTransfer,
	}, nil
}

// ShieldingTransferData is one validated leg of a shielding transfer.
type ShieldingTransferData struct {
	Source types.Address
	Token  types.Address
	Amount types.DenominatedAmount
}

// ShieldingTransfer moves transparent funds into the shielded pool.
type ShieldingTransfer struct {
	Tx       *Envelope
	Target   types.PaymentAddress
	Data     []ShieldingTransferData
	CodePath string
}

// ShieldingTransferArgs decodes a shielding-transfer payload.
func ShieldingTransferArgs(kindPayload, envelopePayload []byte) (*ShieldingTransfer, error) {
	msg, err := decodeMsg[ShieldingTransferMsg](kindShieldingTransfer, kindPayload)
	if err != nil {
		return nil, err
	}
	target, err := types.ParsePaymentAddress(msg.Target)
	if err != nil {
		return nil, invalid(kindShieldingTransfer, "target", err)
	}
	data := make([]ShieldingTransferData, 0, len(msg.Data))
	for i, leg := range msg.Data {
		source, err := types.ParseAddress(leg.Source)
		if err != nil {
			return nil, invalid(kindShieldingTransfer, fmt.Sprintf("leg %d source", i), err)
		}
		token, err := types.ParseAddress(leg.Token)
		if err != nil {
			return nil, invalid(kindShieldingTransfer, fmt.Sprintf("leg %d token", i), err)
		}
		amount, err := types.ParseAmount(leg.Amount)
		if err != nil {
			return nil, invalid(kindShieldingTransfer, fmt.Sprintf("leg %d amount", i), err)
		}
		data = append(data, ShieldingTransferData{Source: source, Token: token, Amount: amount})
	}
	env, err := buildEnvelope(kindShieldingTransfer, envelopePayload)
	if err != nil {
		return nil, err
	}
	return &ShieldingTransfer{
		Tx:       env,
		Target:   target,
		Data:     data,
		CodePath: CodePathTransfer,
	}, nil
}

// UnshieldingTransferData is one validated leg of an unshielding transfer.
type UnshieldingTransferData struct {
	Target types.Address
	Token  types.Address
	Amount types.DenominatedAmount
}

// UnshieldingTransfer moves shielded funds out to transparent accounts.
type UnshieldingTransfer struct {
	Tx              *Envelope
	Source          *types.PseudoExtendedKey
	Data            []UnshieldingTransferData
	GasSpendingKeys []*types.PseudoExtendedKey
	CodePath        string
}

// UnshieldingTransferArgs decodes an unshielding-transfer payload.
func UnshieldingTransferArgs(kindPayload, envelopePayload []byte) (*UnshieldingTransfer, error) {
	msg, err := decodeMsg[UnshieldingTransferMsg](kindUnshieldingTransfer, kindPayload)
	if err != nil {
		return nil, err
	}
	source, err := types.PseudoExtendedKeyFromBytes(msg.Source)
	if err != nil {
		return nil, invalid(kindUnshieldingTransfer, "source", err)
	}
	data := make([]UnshieldingTransferData, 0, len(msg.Data))
	for i, leg := range msg.Data {
		target, err := types.ParseAddress(leg.Target)
		if err != nil {
			return nil, invalid(kindUnshieldingTransfer, fmt.Sprintf("leg %d target", i), err)
		}
		token, err := types.ParseAddress(leg.Token)
		if err != nil {
			return nil, invalid(kindUnshieldingTransfer, fmt.Sprintf("leg %d token", i), err)
		}
		amount, err := types.ParseAmount(leg.Amount)
		if err != nil {
			return nil, invalid(kindUnshieldingTransfer, fmt.Sprintf("leg %d amount", i), err)
		}
		data = append(data, UnshieldingTransferData{Target: target, Token: token, Amount: amount})
	}
	gasKeys, err := decodeGasSpendingKeys(kindUnshieldingTransfer, msg.GasSpendingKeys)
	if err != nil {
		return nil, err
	}
	env, err := buildEnvelope(kindUnshieldingTransfer, envelopePayload)
	if err != nil {
		return nil, err
	}
	return &UnshieldingTransfer{
		Tx:              env,
		Source:          source,
		Data:            data,
		GasSpendingKeys: gasKeys,
		CodePath:        CodePathTransfer,
	}, nil
}

// IbcShieldingData is the validated form of the optional shielding blob on
// an IBC transfer.
type IbcShieldingData struct {
	Target types.PaymentAddress
	Token  types.Address
	Amount types.DenominatedAmount
}

// IbcTransfer is a cross-chain transfer over IBC. Receiver is an address on
// the counterparty chain and is recorded verbatim.
type IbcTransfer struct {
	Tx               *Envelope
	Source           types.Address
	Receiver         string
	Token            types.Address
	Amount           types.DenominatedAmount
	PortID           types.PortID
	ChannelID        types.ChannelID
	TimeoutHeight    *uint64
	TimeoutSecOffset *uint64
	Memo             *string
	ShieldingData    *IbcShieldingData
	CodePath         string
}

// IbcTransferArgs decodes an ibc-transfer payload. Timeout height and
// timeout offset are independently optional; supplying neither leaves the
// timeout policy to the transfer module default. A present shielding blob
// must decode as a structured object or the whole decode fails.
func IbcTransferArgs(kindPayload, envelopePayload []byte) (*IbcTransfer, error) {
	msg, err := decodeMsg[IbcTransferMsg](kindIbcTransfer, kindPayload)
	if err != nil {
		return nil, err
	}
	source, err := types.ParseAddress(msg.Source)
	if err != nil {
		return nil, invalid(kindIbcTransfer, "source", err)
	}
	token, err := types.ParseAddress(msg.Token)
	if err != nil {
		return nil, invalid(kindIbcTransfer, "token", err)
	}
	amount, err := types.ParseAmount(msg.Amount)
	if err != nil {
		return nil, invalid(kindIbcTransfer, "amount", err)
	}
	portID, err := types.ParsePortID(msg.PortID)
	if err != nil {
		return nil, invalid(kindIbcTransfer, "port id", err)
	}
	channelID, err := types.ParseChannelID(msg.ChannelID)
	if err != nil {
		return nil, invalid(kindIbcTransfer, "channel id", err)
	}

	var shielding *IbcShieldingData
	if msg.ShieldingData != nil {
		inner, err := decodeMsg[IbcShieldingDataMsg](kindIbcTransfer, *msg.ShieldingData)
		if err != nil {
			return nil, err
		}
		target, err := types.ParsePaymentAddress(inner.Target)
		if err != nil {
			return nil, invalid(kindIbcTransfer, "shielding target", err)
		}
		shToken, err := types.ParseAddress(inner.Token)
		if err != nil {
			return nil, invalid(kindIbcTransfer, "shielding token", err)
		}
		shAmount, err := types.ParseAmount(inner.Amount)
		if err != nil {
			return nil, invalid(kindIbcTransfer, "shielding amount", err)
		}
		shielding = &IbcShieldingData{Target: target, Token: shToken, Amount: shAmount}
	}

	env, err := buildEnvelope(kindIbcTransfer, envelopePayload)
	if err != nil {
		return nil, err
	}
	return &IbcTransfer{
		Tx:               env,
		Source:           source,
		Receiver:         msg.Receiver,
		Token:            token,
		Amount:           amount,
		PortID:           portID,
		ChannelID:        channelID,
		TimeoutHeight:    msg.TimeoutHeight,
		TimeoutSecOffset: msg.TimeoutSecOffset,
		Memo:             msg.Memo,
		ShieldingData:    shielding,
		CodePath:         CodePathIbcTransfer,
	}, nil
}

// EthBridgeTransfer queues a transfer into the Ethereum bridge pool.
type EthBridgeTransfer struct {
	Tx        *Envelope
	Nut       bool
	Asset     types.EthAddress
	Recipient types.EthAddress
	Sender    types.Address
	Amount    types.DenominatedAmount
	FeeAmount types.DenominatedAmount
	FeePayer  *types.Address
	FeeToken  types.Address
	CodePath  string
}

// EthBridgeTransferArgs decodes an eth-bridge-transfer payload.
func EthBridgeTransferArgs(kindPayload, envelopePayload []byte) (*EthBridgeTransfer, error) {
	msg, err := decodeMsg[EthBridgeTransferMsg](kindEthBridgeTransfer, kindPayload)
	if err != nil {
		return nil, err
	}
	asset, err := types.ParseEthAddress(msg.Asset)
	if err != nil {
		return nil, invalid(kindEthBridgeTransfer, "asset", err)
	}
	recipient, err := types.ParseEthAddress(msg.Recipient)
	if err != nil {
		return nil, invalid(kindEthBridgeTransfer, "recipient", err)
	}
	sender, err := types.ParseAddress(msg.Sender)
	if err != nil {
		return nil, invalid(kindEthBridgeTransfer, "sender", err)
	}
	amount, err := types.ParseAmount(msg.Amount)
	if err != nil {
		return nil, invalid(kindEthBridgeTransfer, "amount", err)
	}
	feeAmount, err := types.ParseAmount(msg.FeeAmount)
	if err != nil {
		return nil, invalid(kindEthBridgeTransfer, "fee amount", err)
	}
	var feePayer *types.Address
	if msg.FeePayer != nil {
		addr, err := types.ParseAddress(*msg.FeePayer)
		if err != nil {
			return nil, invalid(kindEthBridgeTransfer, "fee payer", err)
		}
		feePayer = &addr
	}
	feeToken, err := types.ParseAddress(msg.FeeToken)
	if err != nil {
		return nil, invalid(kindEthBridgeTransfer, "fee token", err)
	}
	env, err := buildEnvelope(kindEthBridgeTransfer, envelopePayload)
	if err != nil {
		return nil, err
	}
	return &EthBridgeTransfer{
		Tx:        env,
		Nut:       msg.Nut,
		Asset:     asset,
		Recipient: recipient,
		Sender:    sender,
		Amount:    amount,
		FeeAmount: feeAmount,
		FeePayer:  feePayer,
		FeeToken:  feeToken,
		CodePath:  CodePathBridgePool,
	}, nil
}

// decodeGasSpendingKeys decodes the gas spending key list shared by the
// shielded and unshielding decoders. The keys stay key references; nothing
// decoded here can sign.
func decodeGasSpendingKeys(kind string, raw [][]byte) ([]*types.PseudoExtendedKey, error) {
	keys := make([]*types.PseudoExtendedKey, 0, len(raw))
	for i, b := range raw {
		k, err := types.PseudoExtendedKeyFromBytes(b)
		if err != nil {
			return nil, invalid(kind, fmt.Sprintf("gas spending key %d", i), err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

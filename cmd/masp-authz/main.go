// masp-authz CLI - intent payload inspector
//
// This CLI decodes hex-encoded intent payloads using the masp-authz library
// and prints the resulting argument descriptors. It exists for debugging
// payloads produced by host applications; it never touches key material.
//
// Example usage:
//
//	# Decode a bond intent (kind payload + envelope payload, both hex)
//	masp-authz decode bond 0a0b0c... 1a1b1c...
//
//	# Decode just the common envelope
//	masp-authz decode envelope 1a1b1c...
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/suffix-labs/masp-authz/pkg/args"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "decode":
		cmdDecode()
	case "version":
		fmt.Println("masp-authz " + version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`masp-authz - intent payload inspector

Usage:
  masp-authz decode envelope <envelope-hex>
  masp-authz decode <kind> <kind-hex> <envelope-hex>
  masp-authz version
  masp-authz help

Kinds:
  envelope, reveal-pk, bond, unbond, withdraw, redelegate, vote-proposal,
  claim-rewards, transparent-transfer, shielded-transfer, shielding-transfer,
  unshielding-transfer, ibc-transfer, eth-bridge-transfer`)
}

func cmdDecode() {
	if len(os.Args) < 3 {
		fatalf("decode: missing kind")
	}
	kind := os.Args[2]

	if kind == "envelope" {
		env, err := args.EnvelopeArgs(mustHex(arg(3, "envelope payload")))
		if err != nil {
			fatalf("decode: %v", err)
		}
		printEnvelope(env)
		return
	}

	kindPayload := mustHex(arg(3, "kind payload"))
	envPayload := mustHex(arg(4, "envelope payload"))

	desc, err := decodeKind(kind, kindPayload, envPayload)
	if err != nil {
		fatalf("decode: %v", err)
	}
	fmt.Printf("%s: %+v\n", kind, desc)
}

// decodeKind dispatches to the per-kind decode entry point.
func decodeKind(kind string, kindPayload, envPayload []byte) (interface{}, error) {
	switch kind {
	case "reveal-pk":
		return args.RevealPKArgs(kindPayload, envPayload)
	case "bond":
		return args.BondArgs(kindPayload, envPayload)
	case "unbond":
		return args.UnbondArgs(kindPayload, envPayload)
	case "withdraw":
		return args.WithdrawArgs(kindPayload, envPayload)
	case "redelegate":
		return args.RedelegateArgs(kindPayload, envPayload)
	case "vote-proposal":
		return args.VoteProposalArgs(kindPayload, envPayload)
	case "claim-rewards":
		return args.ClaimRewardsArgs(kindPayload, envPayload)
	case "transparent-transfer":
		return args.TransparentTransferArgs(kindPayload, envPayload)
	case "shielded-transfer":
		return args.ShieldedTransferArgs(kindPayload, envPayload)
	case "shielding-transfer":
		return args.ShieldingTransferArgs(kindPayload, envPayload)
	case "unshielding-transfer":
		return args.UnshieldingTransferArgs(kindPayload, envPayload)
	case "ibc-transfer":
		return args.IbcTransferArgs(kindPayload, envPayload)
	case "eth-bridge-transfer":
		return args.EthBridgeTransferArgs(kindPayload, envPayload)
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func printEnvelope(env *args.Envelope) {
	fmt.Println("envelope:")
	fmt.Printf("  fee token:  %s\n", env.FeeToken)
	fmt.Printf("  fee amount: %s\n", env.FeeAmount)
	fmt.Printf("  gas limit:  %s\n", env.GasLimit)
	if env.ChainID != nil {
		fmt.Printf("  chain id:   %s\n", *env.ChainID)
	}
	if env.PublicKey != nil {
		fmt.Printf("  public key: %s\n", env.PublicKey)
	}
	if len(env.Memo) > 0 {
		fmt.Printf("  memo:       %q\n", env.Memo)
	}
	fmt.Printf("  signing keys: %d\n", len(env.SigningKeys))
}

func arg(i int, what string) string {
	if len(os.Args) <= i {
		fatalf("decode: missing %s", what)
	}
	return os.Args[i]
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		fatalf("invalid hex: %v", err)
	}
	return b
}

func fatalf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

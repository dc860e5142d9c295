package client

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// Signer holds the secp256k1 key used for both order signing and the
// one-time ClobAuth attestation. The key is only ever used to produce
// signatures; it is never logged, persisted or transmitted.
type Signer struct {
	privateKey *ecdsa.PrivateKey
	chainID    int64
}

func NewSigner(privateKeyHex string, chainID int64) (*Signer, error) {
	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")

	privateKey, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &Signer{privateKey: privateKey, chainID: chainID}, nil
}

// Address derives the wallet address for the held key.
func (s *Signer) Address() common.Address {
	return crypto.PubkeyToAddress(s.privateKey.PublicKey)
}

// ChainID returns the chain the signer targets.
func (s *Signer) ChainID() int64 {
	return s.chainID
}

// SignTypedData computes the EIP-712 signing digest for the typed data
// (keccak over 0x19 0x01 || domainSeparator || structHash) and signs it,
// returning the 65-byte signature as 0x-prefixed hex with the recovery id
// shifted to 27/28 as on-chain verifiers expect. Signing failures are
// surfaced as-is; they are never retried.
func (s *Signer) SignTypedData(typedData apitypes.TypedData) (string, error) {
	digest, err := TypedDataDigest(typedData)
	if err != nil {
		return "", err
	}

	signature, err := crypto.Sign(digest.Bytes(), s.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign: %w", err)
	}
	signature[64] += 27

	return "0x" + hex.EncodeToString(signature), nil
}

// TypedDataDigest computes the EIP-712 signing hash for the typed data
// without signing it.
func TypedDataDigest(typedData apitypes.TypedData) (common.Hash, error) {
	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to hash domain: %w", err)
	}

	messageHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to hash message: %w", err)
	}

	rawData := []byte{0x19, 0x01}
	rawData = append(rawData, domainSeparator...)
	rawData = append(rawData, messageHash...)
	return crypto.Keccak256Hash(rawData), nil
}

package client

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// Credentials are the API credentials derived once per session through the
// L1 flow and supplied to every L2 header computation. Secret is URL-safe
// base64 and serves as the HMAC key.
type Credentials struct {
	ApiKey     string `json:"apiKey"`
	Secret     string `json:"secret"`
	Passphrase string `json:"passphrase"`
}

// clobAuthMessage must match byte-for-byte what the CLOB verifies; any
// deviation invalidates the signature.
const clobAuthMessage = "This message attests that I control the given wallet"

const (
	authDomainName    = "ClobAuthDomain"
	authDomainVersion = "1"
)

var clobAuthTypes = apitypes.Types{
	"EIP712Domain": []apitypes.Type{
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
	},
	"ClobAuth": []apitypes.Type{
		{Name: "address", Type: "address"},
		{Name: "timestamp", Type: "string"},
		{Name: "nonce", Type: "uint256"},
		{Name: "message", Type: "string"},
	},
}

// SignClobAuthMessage signs the wallet-control attestation used by the
// credential-derivation endpoint.
func SignClobAuthMessage(signer *Signer, timestamp string, nonce uint64) (string, error) {
	typedData := apitypes.TypedData{
		Types:       clobAuthTypes,
		PrimaryType: "ClobAuth",
		Domain: apitypes.TypedDataDomain{
			Name:    authDomainName,
			Version: authDomainVersion,
			ChainId: math.NewHexOrDecimal256(signer.ChainID()),
		},
		Message: apitypes.TypedDataMessage{
			"address":   signer.Address().Hex(),
			"timestamp": timestamp,
			"nonce":     math.NewHexOrDecimal256(int64(nonce)),
			"message":   clobAuthMessage,
		},
	}

	signature, err := signer.SignTypedData(typedData)
	if err != nil {
		return "", fmt.Errorf("failed to sign auth message: %w", err)
	}
	return signature, nil
}

// CreateL1Headers builds the wallet-signature headers for the one-time
// credential-derivation call. The clock is an explicit input.
func CreateL1Headers(signer *Signer, nonce uint64, now time.Time) (map[string]string, error) {
	timestamp := strconv.FormatInt(now.Unix(), 10)

	signature, err := SignClobAuthMessage(signer, timestamp, nonce)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		HeaderPolyAddress:   signer.Address().Hex(),
		HeaderPolySignature: signature,
		HeaderPolyTimestamp: timestamp,
		HeaderPolyNonce:     strconv.FormatUint(nonce, 10),
	}, nil
}

// CreateL2Headers builds the HMAC headers sent on every trading call.
// body must be the exact bytes that go on the wire (nil for bodyless
// requests); see MarshalBody.
func CreateL2Headers(signer *Signer, creds Credentials, method, path string, body []byte, now time.Time) (map[string]string, error) {
	timestamp := now.Unix()

	signature, err := BuildHmacSignature(creds.Secret, timestamp, method, path, body)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		HeaderPolyAddress:    signer.Address().Hex(),
		HeaderPolySignature:  signature,
		HeaderPolyTimestamp:  strconv.FormatInt(timestamp, 10),
		HeaderPolyAPIKey:     creds.ApiKey,
		HeaderPolyPassphrase: creds.Passphrase,
	}, nil
}

// BuildHmacSignature computes the POLY_SIGNATURE value for derived-key
// auth. The message is {timestamp}{method}{path}{body}, the key is the
// URL-safe base64 decoded secret, and the digest is URL-safe base64
// encoded again.
func BuildHmacSignature(secret string, timestamp int64, method, path string, body []byte) (string, error) {
	key, err := base64.URLEncoding.DecodeString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to decode secret: %w", err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte(method))
	mac.Write([]byte(path))
	mac.Write(body)

	return base64.URLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// MarshalBody serializes a request body to the compact JSON that both the
// HMAC message and the wire payload must share. HTML escaping is disabled
// so the signed bytes equal the transmitted bytes.
func MarshalBody(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known throwaway test key (hardhat/anvil account #0).
const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
const testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

func testSigner(t *testing.T) *Signer {
	t.Helper()
	signer, err := NewSigner(testPrivateKey, PolygonChainID)
	require.NoError(t, err)
	return signer
}

func TestBuildHmacSignatureGolden(t *testing.T) {
	// Conformance vector computed independently: secret "c2VjcmV0"
	// (base64url of "secret"), message 1700000000POST/order{"a":1}.
	sig, err := BuildHmacSignature("c2VjcmV0", 1700000000, "POST", "/order", []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "RG08Lr_BXWneCX42aD1tpDtvA9AAzyktUouVy2A61gk=", sig)
}

func TestBuildHmacSignatureGoldenNoBody(t *testing.T) {
	sig, err := BuildHmacSignature("c2VjcmV0", 1700000000, "GET", "/markets", nil)
	require.NoError(t, err)
	assert.Equal(t, "Khc3CNFqnDJWvPzb1P-3QJr-j_7YuvEwQTIwwIzfkGg=", sig)
}

func TestBuildHmacSignatureSensitivity(t *testing.T) {
	base, err := BuildHmacSignature("c2VjcmV0", 1700000000, "POST", "/order", []byte(`{"a":1}`))
	require.NoError(t, err)

	variants := []struct {
		name string
		fn   func() (string, error)
	}{
		{"timestamp", func() (string, error) {
			return BuildHmacSignature("c2VjcmV0", 1700000001, "POST", "/order", []byte(`{"a":1}`))
		}},
		{"method", func() (string, error) {
			return BuildHmacSignature("c2VjcmV0", 1700000000, "GET", "/order", []byte(`{"a":1}`))
		}},
		{"path", func() (string, error) {
			return BuildHmacSignature("c2VjcmV0", 1700000000, "POST", "/orders", []byte(`{"a":1}`))
		}},
		{"body", func() (string, error) {
			return BuildHmacSignature("c2VjcmV0", 1700000000, "POST", "/order", []byte(`{"a":2}`))
		}},
	}
	for _, v := range variants {
		got, err := v.fn()
		require.NoError(t, err, v.name)
		assert.NotEqual(t, base, got, "changing %s must change the signature", v.name)
	}

	again, err := BuildHmacSignature("c2VjcmV0", 1700000000, "POST", "/order", []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, base, again)
}

func TestBuildHmacSignatureBadSecret(t *testing.T) {
	_, err := BuildHmacSignature("not base64!!", 1700000000, "GET", "/ok", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode secret")
}

func TestMarshalBodyCompact(t *testing.T) {
	body, err := MarshalBody(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(body))

	// HTML characters must pass through unescaped so the signed bytes
	// equal the transmitted bytes.
	body, err = MarshalBody(map[string]string{"s": "a<b>&c"})
	require.NoError(t, err)
	assert.Equal(t, `{"s":"a<b>&c"}`, string(body))
}

func TestCreateL1Headers(t *testing.T) {
	signer := testSigner(t)
	now := time.Unix(1700000000, 0)

	headers, err := CreateL1Headers(signer, 0, now)
	require.NoError(t, err)

	assert.Equal(t, testAddress, headers[HeaderPolyAddress])
	assert.Equal(t, "1700000000", headers[HeaderPolyTimestamp])
	assert.Equal(t, "0", headers[HeaderPolyNonce])
	assert.Regexp(t, "^0x[0-9a-f]{130}$", headers[HeaderPolySignature])

	// Deterministic for a pinned clock and key.
	again, err := CreateL1Headers(signer, 0, now)
	require.NoError(t, err)
	assert.Equal(t, headers, again)

	// A different nonce signs a different message.
	other, err := CreateL1Headers(signer, 1, now)
	require.NoError(t, err)
	assert.NotEqual(t, headers[HeaderPolySignature], other[HeaderPolySignature])
	assert.Equal(t, "1", other[HeaderPolyNonce])
}

func TestCreateL2Headers(t *testing.T) {
	signer := testSigner(t)
	creds := Credentials{ApiKey: "key-1", Secret: "c2VjcmV0", Passphrase: "pass"}
	now := time.Unix(1700000000, 0)

	headers, err := CreateL2Headers(signer, creds, "POST", "/order", []byte(`{"a":1}`), now)
	require.NoError(t, err)

	assert.Equal(t, testAddress, headers[HeaderPolyAddress])
	assert.Equal(t, "1700000000", headers[HeaderPolyTimestamp])
	assert.Equal(t, "key-1", headers[HeaderPolyAPIKey])
	assert.Equal(t, "pass", headers[HeaderPolyPassphrase])
	assert.Equal(t, "RG08Lr_BXWneCX42aD1tpDtvA9AAzyktUouVy2A61gk=", headers[HeaderPolySignature])
}

func TestCreateL2HeadersBadSecret(t *testing.T) {
	signer := testSigner(t)
	creds := Credentials{ApiKey: "key-1", Secret: "%%%", Passphrase: "pass"}

	_, err := CreateL2Headers(signer, creds, "GET", "/ok", nil, time.Unix(1700000000, 0))
	assert.Error(t, err)
}

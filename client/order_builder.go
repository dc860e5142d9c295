package client

import (
	"fmt"
	"math/big"
	"math/rand"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// EIP-712 domain under which the exchange verifies order signatures.
const (
	orderDomainName    = "Polymarket CTF Exchange"
	orderDomainVersion = "1"
)

var orderTypes = apitypes.Types{
	"EIP712Domain": []apitypes.Type{
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	"Order": []apitypes.Type{
		{Name: "salt", Type: "uint256"},
		{Name: "maker", Type: "address"},
		{Name: "signer", Type: "address"},
		{Name: "taker", Type: "address"},
		{Name: "tokenId", Type: "uint256"},
		{Name: "makerAmount", Type: "uint256"},
		{Name: "takerAmount", Type: "uint256"},
		{Name: "expiration", Type: "uint256"},
		{Name: "nonce", Type: "uint256"},
		{Name: "feeRateBps", Type: "uint256"},
		{Name: "side", Type: "uint8"},
		{Name: "signatureType", Type: "uint8"},
	},
}

// GenerateSalt derives the per-order salt from the supplied clock:
// floor(unix_seconds * uniform[0,1)). It is an anti-collision aid, not a
// security boundary; the signed order as a whole (nonce, expiration
// included) is what the contract authorizes. The timestamp component keeps
// repeated calls in one process from trivially colliding, but there is no
// stronger uniqueness guarantee.
func GenerateSalt(now time.Time) uint64 {
	return uint64(float64(now.Unix()) * rand.Float64())
}

// CreateOrder assembles the canonical order record from params, signs it
// under the exchange's EIP-712 domain and returns the wire-ready request.
// Either a fully signed order is returned or an error; there is no partial
// result. The clock is an explicit input so salts are reproducible under a
// pinned time source.
func CreateOrder(signer *Signer, params OrderParams, now time.Time) (*SignedOrderRequest, error) {
	tickSize, err := ParseTickSize(params.TickSize)
	if err != nil {
		return nil, err
	}

	tokenID, ok := new(big.Int).SetString(params.TokenID, 10)
	if !ok {
		return nil, fmt.Errorf("invalid token id %q", params.TokenID)
	}

	sigType, err := SignatureTypeFromUint8(uint8(params.SigType))
	if err != nil {
		return nil, err
	}

	signerAddr := signer.Address()
	funder := params.Funder
	if funder == (common.Address{}) {
		funder = signerAddr
	}
	taker := params.Taker // zero address = open to any taker

	makerAmount, takerAmount := CalculateOrderAmounts(params.Price, params.Side, params.Kind, tickSize)

	salt := GenerateSalt(now)

	verifyingContract := ExchangeContract
	if params.NegRisk {
		verifyingContract = NegRiskExchangeContract
	}

	typedData := apitypes.TypedData{
		Types:       orderTypes,
		PrimaryType: "Order",
		Domain: apitypes.TypedDataDomain{
			Name:              orderDomainName,
			Version:           orderDomainVersion,
			ChainId:           math.NewHexOrDecimal256(signer.ChainID()),
			VerifyingContract: verifyingContract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"salt":          strconv.FormatUint(salt, 10),
			"maker":         funder.Hex(),
			"signer":        signerAddr.Hex(),
			"taker":         taker.Hex(),
			"tokenId":       tokenID.String(),
			"makerAmount":   strconv.FormatUint(uint64(makerAmount), 10),
			"takerAmount":   strconv.FormatUint(uint64(takerAmount), 10),
			"expiration":    strconv.FormatUint(params.Expiration, 10),
			"nonce":         strconv.FormatUint(params.Nonce, 10),
			"feeRateBps":    strconv.FormatUint(uint64(params.FeeRateBps), 10),
			"side":          strconv.Itoa(int(params.Side.Uint8())),
			"signatureType": strconv.Itoa(int(sigType)),
		},
	}

	signature, err := signer.SignTypedData(typedData)
	if err != nil {
		return nil, err
	}

	return &SignedOrderRequest{
		Salt:          salt,
		Maker:         funder.Hex(),
		Signer:        signerAddr.Hex(),
		Taker:         taker.Hex(),
		TokenID:       params.TokenID,
		MakerAmount:   strconv.FormatUint(uint64(makerAmount), 10),
		TakerAmount:   strconv.FormatUint(uint64(takerAmount), 10),
		Expiration:    strconv.FormatUint(params.Expiration, 10),
		Nonce:         strconv.FormatUint(params.Nonce, 10),
		FeeRateBps:    strconv.FormatUint(uint64(params.FeeRateBps), 10),
		Side:          params.Side.String(),
		SignatureType: uint8(sigType),
		Signature:     signature,
	}, nil
}

package client

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// OrderSide selects which leg of the trade the order creator gives up.
// Buy: maker = USDC (quote), taker = outcome shares (base).
// Sell: maker = outcome shares (base), taker = USDC (quote).
type OrderSide int

const (
	Buy  OrderSide = 0
	Sell OrderSide = 1
)

func (s OrderSide) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// Uint8 returns the numeric side encoding used in the signed order struct.
func (s OrderSide) Uint8() uint8 {
	return uint8(s)
}

// OrderKind is a tagged union: exactly one variant is active per order and
// each variant carries a differently-scaled quantity. Keeping the payloads
// on distinct types prevents base/quote unit mix-ups at compile time.
type OrderKind interface {
	isOrderKind()
}

// Limit is a resting order for a fixed size in outcome shares (base units)
// at a given limit price or better.
type Limit struct {
	// Size is the quantity in outcome shares, not dollars.
	Size decimal.Decimal
}

// MarketBuy spends a fixed USDC (quote) amount at the best available asks.
type MarketBuy struct {
	// QuoteAmount is the total USDC to spend.
	QuoteAmount decimal.Decimal
}

// MarketSell sells a fixed quantity of outcome shares (base units) at the
// best available bids.
type MarketSell struct {
	// BaseAmount is the quantity of outcome shares to sell.
	BaseAmount decimal.Decimal
}

func (Limit) isOrderKind()      {}
func (MarketBuy) isOrderKind()  {}
func (MarketSell) isOrderKind() {}

// SignatureType tags which wallet-custody model produced the order
// signature. It is carried through to the exchange unchanged and does not
// alter the signing algorithm.
type SignatureType uint8

const (
	// Eoa: standard EIP-712 signature from an externally owned account.
	Eoa SignatureType = 0
	// PolyProxy: signature from the signer behind a Polymarket proxy wallet.
	PolyProxy SignatureType = 1
	// PolyGnosisSafe: signature from the signer behind a Polymarket Gnosis Safe.
	PolyGnosisSafe SignatureType = 2
)

// SignatureTypeFromUint8 validates a raw signature type tag.
func SignatureTypeFromUint8(v uint8) (SignatureType, error) {
	switch v {
	case 0, 1, 2:
		return SignatureType(v), nil
	default:
		return 0, fmt.Errorf("invalid signature type %d", v)
	}
}

// OrderType is the time-in-force of a posted order.
type OrderType string

const (
	// GTC rests until filled or cancelled.
	GTC OrderType = "GTC"
	// FOK fills immediately and entirely, or cancels.
	FOK OrderType = "FOK"
	// FAK (immediate-or-cancel) fills what it can, cancels the rest.
	FAK OrderType = "FAK"
	// GTD rests until the expiration timestamp. The exchange enforces a
	// minimum buffer: expirations less than 90 seconds away are rejected.
	GTD OrderType = "GTD"
)

// OrderParams is the user-facing order specification handed to CreateOrder.
type OrderParams struct {
	TokenID    string
	Price      decimal.Decimal
	Side       OrderSide
	Kind       OrderKind
	TickSize   string
	SigType    SignatureType
	NegRisk    bool
	Nonce      uint64
	FeeRateBps uint32
	Expiration uint64
	// Taker restricts who may fill the order; the zero address leaves it
	// open to any taker.
	Taker common.Address
	// Funder is the maker address holding the funds. Zero means the signer
	// funds the order itself.
	Funder common.Address
}

// SignedOrderRequest is the wire form of a signed order: every numeric
// field re-serialized as a decimal string so no precision is lost in
// transport.
type SignedOrderRequest struct {
	Salt          uint64 `json:"salt"`
	Maker         string `json:"maker"`
	Signer        string `json:"signer"`
	Taker         string `json:"taker"`
	TokenID       string `json:"tokenId"`
	MakerAmount   string `json:"makerAmount"`
	TakerAmount   string `json:"takerAmount"`
	Expiration    string `json:"expiration"`
	Nonce         string `json:"nonce"`
	FeeRateBps    string `json:"feeRateBps"`
	Side          string `json:"side"`
	SignatureType uint8  `json:"signatureType"`
	Signature     string `json:"signature"`
}

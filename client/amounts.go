package client

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// tokenScale converts human decimal amounts to the smallest token unit
// (USDC and outcome tokens both carry 6 decimals).
var tokenScale = decimal.NewFromInt(1_000_000)

var decimalHalf = decimal.New(5, -1)

// CalculateOrderAmounts converts a user-facing order specification into the
// integer maker and taker token amounts the settlement contract expects.
//
// The CLOB applies strict rounding rules fixed by the market's tick size:
// the price is rounded to tick precision with midpoint ties broken toward
// zero, the user quantity is truncated to size precision, and the derived
// amount goes through fixAmountRounding before both are scaled to whole
// token units.
//
// Returns (makerAmount, takerAmount): maker is what the order creator gives,
// taker is what they receive. Buy gives USDC for shares, Sell the reverse.
//
// This function is pure: identical inputs always produce identical integers.
// The unreachable (kind, side) pairings return (0, 0); callers constructing
// orders through CreateOrder never hit them.
func CalculateOrderAmounts(price decimal.Decimal, side OrderSide, kind OrderKind, tickSize TickSize) (uint32, uint32) {
	cfg := tickSize.RoundConfig()

	rawPrice := roundMidpointTowardZero(price, cfg.Price)

	switch k := kind.(type) {
	case Limit:
		switch side {
		case Buy:
			// maker = USDC to spend, taker = shares to receive
			rawTaker := k.Size.Truncate(cfg.Size)
			rawMaker := fixAmountRounding(rawTaker.Mul(rawPrice), cfg)
			return decimalToTokenUnits(rawMaker), decimalToTokenUnits(rawTaker)
		case Sell:
			// maker = shares to give, taker = USDC to receive
			rawMaker := k.Size.Truncate(cfg.Size)
			rawTaker := fixAmountRounding(rawMaker.Mul(rawPrice), cfg)
			return decimalToTokenUnits(rawMaker), decimalToTokenUnits(rawTaker)
		}
	case MarketBuy:
		if side == Buy {
			// maker = USDC to spend, taker = shares bought at rawPrice
			rawQuote := k.QuoteAmount.Truncate(cfg.Size)
			rawBase := fixAmountRounding(rawQuote.Div(rawPrice), cfg)
			return decimalToTokenUnits(rawQuote), decimalToTokenUnits(rawBase)
		}
	case MarketSell:
		if side == Sell {
			// maker = shares to give, taker = USDC received at rawPrice
			rawBase := k.BaseAmount.Truncate(cfg.Size)
			rawQuote := fixAmountRounding(rawBase.Mul(rawPrice), cfg)
			return decimalToTokenUnits(rawBase), decimalToTokenUnits(rawQuote)
		}
	}

	// Defensive fallback for impossible kind/side pairings.
	return 0, 0
}

// fixAmountRounding caps a derived amount at the tick's amount precision.
// A first away-from-zero rounding four digits past the target absorbs
// binary/decimal conversion noise; only if the scale is still too large is
// the amount truncated.
func fixAmountRounding(amt decimal.Decimal, cfg RoundConfig) decimal.Decimal {
	if scaleOf(amt) > cfg.Amount {
		amt = amt.RoundUp(cfg.Amount + 4)
		if scaleOf(amt) > cfg.Amount {
			amt = amt.Truncate(cfg.Amount)
		}
	}
	return amt
}

// decimalToTokenUnits scales a decimal amount to whole token units. The
// result must fit a uint32; anything larger means upstream price/size
// validation was bypassed and is treated as a contract violation.
func decimalToTokenUnits(amt decimal.Decimal) uint32 {
	scaled := tokenScale.Mul(amt)
	if scaleOf(scaled) > 0 {
		scaled = roundMidpointTowardZero(scaled, 0)
	}
	units := scaled.BigInt()
	if !units.IsUint64() || units.Uint64() > math.MaxUint32 {
		panic(fmt.Sprintf("token amount %s overflows uint32", scaled))
	}
	return uint32(units.Uint64())
}

// roundMidpointTowardZero rounds to the given number of decimal places,
// breaking exact midpoint ties toward zero. This reproduces the exchange's
// off-chain validator, which does not use half-up rounding.
func roundMidpointTowardZero(d decimal.Decimal, places int32) decimal.Decimal {
	shifted := d.Shift(places)
	trunc := shifted.Truncate(0)
	frac := shifted.Sub(trunc).Abs()

	if frac.Cmp(decimalHalf) > 0 {
		one := decimal.NewFromInt(1)
		if shifted.IsNegative() {
			trunc = trunc.Sub(one)
		} else {
			trunc = trunc.Add(one)
		}
	}
	return trunc.Shift(-places)
}

// scaleOf reports the number of digits after the decimal point in d's
// internal representation (decimals do not normalize trailing zeros).
func scaleOf(d decimal.Decimal) int32 {
	if exp := d.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}

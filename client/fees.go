package client

import "math"

// Taker fees scale with how close the price sits to 0.50; the exchange
// publishes the fee per 100 shares at sampled prices and interpolates
// between them.
type feePoint struct {
	price  float64
	fee100 float64
}

var takerFeeTable = []feePoint{
	{0.01, 0.0000},
	{0.05, 0.0030},
	{0.10, 0.0200},
	{0.15, 0.0600},
	{0.20, 0.1300},
	{0.25, 0.2200},
	{0.30, 0.3300},
	{0.35, 0.4500},
	{0.40, 0.5800},
	{0.45, 0.6900},
	{0.50, 0.7800},
	{0.55, 0.8400},
	{0.60, 0.8600},
	{0.65, 0.8400},
	{0.70, 0.7700},
	{0.75, 0.6600},
	{0.80, 0.5100},
	{0.85, 0.3500},
	{0.90, 0.1800},
	{0.95, 0.0500},
	{0.99, 0.0000},
}

func feePer100Shares(price float64) float64 {
	if price <= takerFeeTable[0].price {
		return takerFeeTable[0].fee100
	}
	last := takerFeeTable[len(takerFeeTable)-1]
	if price >= last.price {
		return last.fee100
	}
	for i := 0; i < len(takerFeeTable)-1; i++ {
		a := takerFeeTable[i]
		b := takerFeeTable[i+1]
		if price >= a.price && price <= b.price {
			t := (price - a.price) / (b.price - a.price)
			return a.fee100 + t*(b.fee100-a.fee100)
		}
	}
	return last.fee100
}

// TakerFeeUSDC estimates the taker fee in USDC for an order at the given
// price and share quantity, rounded to 4 decimal places. Raw fees below
// 0.00005 USDC round to zero.
func TakerFeeUSDC(price, quantity float64, feeRateBps int) float64 {
	if feeRateBps <= 0 {
		return 0
	}
	scale := float64(feeRateBps) / 1000.0
	fee100 := feePer100Shares(price) * scale
	fee := (fee100 / 100.0) * quantity
	fee = math.Round(fee*1e4) / 1e4
	if fee > 0 && fee < 0.0001 {
		fee = 0.0001
	}
	return fee
}

// MakerRebateUSDC estimates the rebate received on maker fills, computed
// on notional value.
func MakerRebateUSDC(price, quantity float64, rebateRateBps int) float64 {
	if rebateRateBps <= 0 {
		return 0
	}
	notional := price * quantity
	rebate := notional * (float64(rebateRateBps) / 10000.0)
	return math.Round(rebate*1e4) / 1e4
}

package client

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLimitBuyAmounts(t *testing.T) {
	// Buy 500 shares at 0.65, tick 0.01: maker = 500*0.65 = 325 USDC,
	// taker = 500 shares, both in 6-decimal token units.
	maker, taker := CalculateOrderAmounts(dec("0.65"), Buy, Limit{Size: dec("500")}, TickHundredth)
	assert.Equal(t, uint32(325_000_000), maker)
	assert.Equal(t, uint32(500_000_000), taker)
}

func TestLimitSellAmounts(t *testing.T) {
	maker, taker := CalculateOrderAmounts(dec("0.65"), Sell, Limit{Size: dec("500")}, TickHundredth)
	assert.Equal(t, uint32(500_000_000), maker)
	assert.Equal(t, uint32(325_000_000), taker)
}

func TestMarketBuyAmounts(t *testing.T) {
	// Spend 1000 USDC at 0.40: receive 2500 shares.
	maker, taker := CalculateOrderAmounts(dec("0.40"), Buy, MarketBuy{QuoteAmount: dec("1000")}, TickHundredth)
	assert.Equal(t, uint32(1_000_000_000), maker)
	assert.Equal(t, uint32(2_500_000_000), taker)
}

func TestMarketSellAmounts(t *testing.T) {
	maker, taker := CalculateOrderAmounts(dec("0.40"), Sell, MarketSell{BaseAmount: dec("2500")}, TickHundredth)
	assert.Equal(t, uint32(2_500_000_000), maker)
	assert.Equal(t, uint32(1_000_000_000), taker)
}

func TestPriceMidpointRoundsTowardZero(t *testing.T) {
	// 0.665 sits exactly on the midpoint at tick 0.01 and must round to
	// 0.66, not 0.67.
	maker, taker := CalculateOrderAmounts(dec("0.665"), Buy, Limit{Size: dec("100")}, TickHundredth)
	assert.Equal(t, uint32(66_000_000), maker)
	assert.Equal(t, uint32(100_000_000), taker)

	// Above the midpoint rounds away as usual.
	maker, _ = CalculateOrderAmounts(dec("0.6651"), Buy, Limit{Size: dec("100")}, TickHundredth)
	assert.Equal(t, uint32(67_000_000), maker)

	// Below the midpoint truncates.
	maker, _ = CalculateOrderAmounts(dec("0.6649"), Buy, Limit{Size: dec("100")}, TickHundredth)
	assert.Equal(t, uint32(66_000_000), maker)
}

func TestSizeTruncation(t *testing.T) {
	// Size precision is 2 decimals at every tick; extra digits truncate,
	// never round.
	_, taker := CalculateOrderAmounts(dec("0.50"), Buy, Limit{Size: dec("10.999")}, TickHundredth)
	assert.Equal(t, uint32(10_990_000), taker)
}

func TestAmountFixingAbsorbsDivisionNoise(t *testing.T) {
	// 100 / 0.33 = 303.0303... must be capped at the tick's amount
	// precision (4 decimals at 0.01) after the away-from-zero guard pass.
	maker, taker := CalculateOrderAmounts(dec("0.33"), Buy, MarketBuy{QuoteAmount: dec("100")}, TickHundredth)
	assert.Equal(t, uint32(100_000_000), maker)
	assert.Equal(t, uint32(303_030_300), taker)
}

func TestAmountsIdempotent(t *testing.T) {
	m1, t1 := CalculateOrderAmounts(dec("0.123"), Sell, Limit{Size: dec("77.77")}, TickThousandth)
	m2, t2 := CalculateOrderAmounts(dec("0.123"), Sell, Limit{Size: dec("77.77")}, TickThousandth)
	assert.Equal(t, m1, m2)
	assert.Equal(t, t1, t2)
}

func TestImpliedPriceRoundTrip(t *testing.T) {
	cases := []struct {
		price string
		size  string
		tick  TickSize
	}{
		{"0.65", "500", TickHundredth},
		{"0.1", "12.34", TickTenth},
		{"0.555", "99.99", TickThousandth},
		{"0.0123", "250", TickTenThousandth},
	}
	for _, c := range cases {
		price := dec(c.price)
		maker, taker := CalculateOrderAmounts(price, Buy, Limit{Size: dec(c.size)}, c.tick)
		require.NotZero(t, taker)

		// For a buy, maker/taker re-derives the rounded price.
		implied := decimal.NewFromInt(int64(maker)).Div(decimal.NewFromInt(int64(taker)))
		tolerance := decimal.New(1, -c.tick.RoundConfig().Amount)
		diff := implied.Sub(price).Abs()
		assert.True(t, diff.LessThan(tolerance),
			"price %s tick %s: implied %s differs by %s", c.price, c.tick, implied, diff)
	}
}

func TestUnsupportedKindSidePairings(t *testing.T) {
	// The defensive fallback returns (0,0) instead of panicking.
	maker, taker := CalculateOrderAmounts(dec("0.5"), Sell, MarketBuy{QuoteAmount: dec("100")}, TickHundredth)
	assert.Zero(t, maker)
	assert.Zero(t, taker)

	maker, taker = CalculateOrderAmounts(dec("0.5"), Buy, MarketSell{BaseAmount: dec("100")}, TickHundredth)
	assert.Zero(t, maker)
	assert.Zero(t, taker)
}

func TestOverflowPanics(t *testing.T) {
	// 5000 USDC at 0.001 buys 5,000,000 shares = 5e12 token units, past
	// uint32. Upstream validation is supposed to prevent this; the
	// converter treats it as a contract violation.
	assert.Panics(t, func() {
		CalculateOrderAmounts(dec("0.001"), Buy, MarketBuy{QuoteAmount: dec("5000")}, TickThousandth)
	})
}

func TestRoundMidpointTowardZero(t *testing.T) {
	cases := []struct {
		in     string
		places int32
		want   string
	}{
		{"0.675", 2, "0.67"},
		{"0.676", 2, "0.68"},
		{"0.674", 2, "0.67"},
		{"-0.675", 2, "-0.67"},
		{"-0.676", 2, "-0.68"},
		{"2.5", 0, "2"},
		{"3.5", 0, "3"},
		{"0.65", 2, "0.65"},
	}
	for _, c := range cases {
		got := roundMidpointTowardZero(dec(c.in), c.places)
		assert.True(t, got.Equal(dec(c.want)), "%s @ %d: got %s want %s", c.in, c.places, got, c.want)
	}
}

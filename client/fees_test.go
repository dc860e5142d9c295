package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTakerFeeUSDC(t *testing.T) {
	assert.Zero(t, TakerFeeUSDC(0.50, 100, 0))
	assert.Zero(t, TakerFeeUSDC(0.50, 100, -5))

	// 1000 bps at price 0.50 reads the table directly: 0.78 per 100 shares.
	assert.InDelta(t, 0.78, TakerFeeUSDC(0.50, 100, 1000), 1e-9)

	// Interpolated between the 0.50 and 0.55 rows.
	mid := TakerFeeUSDC(0.525, 100, 1000)
	assert.Greater(t, mid, 0.78)
	assert.Less(t, mid, 0.84)

	// Fees round to 4 decimals: 2 shares at price 0.05 cost 0.00006 raw,
	// which rounds up to 0.0001.
	assert.Equal(t, 0.0001, TakerFeeUSDC(0.05, 2, 1000))

	// Below the rounding threshold the fee vanishes entirely.
	assert.Zero(t, TakerFeeUSDC(0.05, 0.01, 1000))
}

func TestMakerRebateUSDC(t *testing.T) {
	assert.Zero(t, MakerRebateUSDC(0.50, 100, 0))
	// 2 bps on 50 USDC notional.
	assert.InDelta(t, 0.01, MakerRebateUSDC(0.50, 100, 2), 1e-9)
}

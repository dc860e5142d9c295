package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/birchrust/polymarket-kit/client"
	"github.com/birchrust/polymarket-kit/logger"
)

// Demo flow: look a market up by slug, construct and sign a limit order
// for its first outcome token, derive API credentials and submit. Set
// SUBMIT_ORDER=1 to actually post; the default is a dry run that only
// prints the signed payload.
func main() {
	log := logger.NewLogger()

	// Load .env file if it exists (optional)
	_ = godotenv.Load()

	privateKey := os.Getenv("PRIVATE_KEY")
	if privateKey == "" {
		log.Error("missing_private_key", "hint", "set PRIVATE_KEY in the environment or .env")
		os.Exit(1)
	}

	slug := os.Getenv("MARKET_SLUG")
	if slug == "" {
		log.Error("missing_market_slug", "hint", "set MARKET_SLUG")
		os.Exit(1)
	}

	signer, err := client.NewSigner(privateKey, client.PolygonChainID)
	if err != nil {
		log.Error("invalid_key", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	gamma := client.NewGammaClient()
	market, err := gamma.GetMarketBySlug(ctx, slug)
	if err != nil {
		log.Error("market_lookup_failed", "slug", slug, "error", err)
		os.Exit(1)
	}
	if len(market.ClobTokenIds) == 0 {
		log.Error("market_has_no_tokens", "slug", slug)
		os.Exit(1)
	}
	tokenID := market.ClobTokenIds[0]

	clob := client.NewClobClient(signer)
	tickSize, minSize, err := clob.GetTickSizeAndMin(ctx, tokenID)
	if err != nil {
		log.Error("tick_size_lookup_failed", "token", tokenID, "error", err)
		os.Exit(1)
	}

	price, err := decimal.NewFromString(envOr("ORDER_PRICE", "0.50"))
	if err != nil {
		log.Error("invalid_order_price", "error", err)
		os.Exit(1)
	}
	size, err := decimal.NewFromString(envOr("ORDER_SIZE", "10"))
	if err != nil {
		log.Error("invalid_order_size", "error", err)
		os.Exit(1)
	}

	feeRateBps, err := clob.GetFeeRateBps(ctx, tokenID)
	if err != nil {
		log.Warn("fee_rate_lookup_failed", "error", err)
		feeRateBps = 0
	}
	priceF, _ := price.Float64()
	sizeF, _ := size.Float64()
	log.Info("order_preview",
		"market", market.Question,
		"token", tokenID,
		"tick_size", tickSize.String(),
		"min_order_size", minSize,
		"estimated_taker_fee_usdc", client.TakerFeeUSDC(priceF, sizeF, feeRateBps),
	)

	order, err := client.CreateOrder(signer, client.OrderParams{
		TokenID:    tokenID,
		Price:      price,
		Side:       client.Buy,
		Kind:       client.Limit{Size: size},
		TickSize:   tickSize.String(),
		SigType:    client.Eoa,
		NegRisk:    market.NegRisk,
		FeeRateBps: uint32(feeRateBps),
	}, time.Now())
	if err != nil {
		log.Error("order_build_failed", "error", err)
		os.Exit(1)
	}

	log.Info("order_signed",
		"maker_amount", order.MakerAmount,
		"taker_amount", order.TakerAmount,
		"salt", strconv.FormatUint(order.Salt, 10),
	)

	if os.Getenv("SUBMIT_ORDER") != "1" {
		log.Info("dry_run", "hint", "set SUBMIT_ORDER=1 to post the order")
		return
	}

	creds, err := clob.DeriveApiKey(ctx, 0)
	if err != nil {
		log.Error("derive_api_key_failed", "error", err)
		os.Exit(1)
	}

	trading := client.NewTradingClient(signer, *creds)
	resp, err := trading.PostOrder(ctx, order, client.GTC)
	if err != nil {
		log.Error("order_post_failed", "error", err)
		os.Exit(1)
	}

	log.Info("order_posted", "order_id", resp.OrderID, "status", resp.Status)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package client

import "github.com/ethereum/go-ethereum/common"

// Base URL for the CLOB (Central Limit Order Book) API - trading and auth.
const ClobAPIURL = "https://clob.polymarket.com"

// Base URL for the Gamma API (public market metadata).
const GammaAPIURL = "https://gamma-api.polymarket.com"

// Base URL for the Polymarket Data API (historical data, events).
const DataAPIURL = "https://data-api.polymarket.com"

// Polygon mainnet chain id.
const PolygonChainID int64 = 137

var (
	// Main Polymarket exchange contract (yes/no markets).
	ExchangeContract = common.HexToAddress("0x4bFb41d5B3570DeFd03C39a9A4D8dE6Bd8B8982E")

	// Neg-risk exchange adapter contract.
	NegRiskExchangeContract = common.HexToAddress("0xC5d563A36AE78145C45a50134d48A1215220f80a")

	// USDC.e collateral token on Polygon (6 decimals).
	CollateralContract = common.HexToAddress("0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174")

	// Conditional Tokens Framework contract on Polygon.
	ConditionalTokenContract = common.HexToAddress("0x4D97DCd97eC945f40cF65F87097ACe5EA0476045")
)

// Request headers for Polymarket signed requests.
const (
	HeaderPolyAddress    = "POLY_ADDRESS"
	HeaderPolySignature  = "POLY_SIGNATURE"
	HeaderPolyTimestamp  = "POLY_TIMESTAMP"
	HeaderPolyNonce      = "POLY_NONCE"
	HeaderPolyAPIKey     = "POLY_API_KEY"
	HeaderPolyPassphrase = "POLY_PASSPHRASE"
)

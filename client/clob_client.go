package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// ClobClient talks to the CLOB API: public market data plus the one-time
// L1-authenticated credential derivation.
type ClobClient struct {
	*Client
	signer *Signer
}

func NewClobClient(signer *Signer) *ClobClient {
	return &ClobClient{
		Client: NewClient(ClobAPIURL),
		signer: signer,
	}
}

// DeriveApiKey performs the L1 wallet-signature flow and returns the
// long-lived trading credentials. Called once per session.
func (c *ClobClient) DeriveApiKey(ctx context.Context, nonce uint64) (*Credentials, error) {
	headers, err := CreateL1Headers(c.signer, nonce, time.Now())
	if err != nil {
		return nil, err
	}

	creds := &Credentials{}
	if err := c.get(ctx, "/auth/derive-api-key", nil, headers, creds); err != nil {
		return nil, err
	}
	return creds, nil
}

// Ok pings the CLOB health endpoint.
func (c *ClobClient) Ok(ctx context.Context) error {
	return c.get(ctx, "/ok", nil, nil, nil)
}

func (c *ClobClient) GetBook(ctx context.Context, tokenID string) (*GetBookResponse, error) {
	params := url.Values{}
	params.Set("token_id", tokenID)

	response := &GetBookResponse{}
	if err := c.get(ctx, "/book", params, nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *ClobClient) GetPrice(ctx context.Context, tokenID string, side OrderSide) (float64, error) {
	params := url.Values{}
	params.Set("token_id", tokenID)
	params.Set("side", side.String())

	response := GetPriceResponse{}
	if err := c.get(ctx, "/price", params, nil, &response); err != nil {
		return 0, err
	}

	price, err := strconv.ParseFloat(response.Price, 64)
	if err != nil {
		return 0, err
	}
	return price, nil
}

func (c *ClobClient) GetFeeRateBps(ctx context.Context, tokenID string) (int, error) {
	params := url.Values{}
	params.Set("token_id", tokenID)

	var resp FeeRateResponse
	if err := c.get(ctx, "/fee-rate", params, nil, &resp); err != nil {
		return 0, err
	}
	return resp.FeeRateBps, nil
}

// GetTickSizeAndMin reads the market's tick size and minimum order size
// from its book.
func (c *ClobClient) GetTickSizeAndMin(ctx context.Context, tokenID string) (TickSize, float64, error) {
	book, err := c.GetBook(ctx, tokenID)
	if err != nil {
		return 0, 0, err
	}

	tickSize, err := ParseTickSize(book.TickSize)
	if err != nil {
		return 0, 0, err
	}

	var minSize float64
	if book.MinOrderSize != "" {
		minSize, err = strconv.ParseFloat(book.MinOrderSize, 64)
		if err != nil {
			return tickSize, 0, fmt.Errorf("failed to parse min order size: %w", err)
		}
	}

	return tickSize, minSize, nil
}

package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// TradingClient sends L2-authenticated order operations. It holds the
// session credentials obtained from ClobClient.DeriveApiKey; the signer is
// only used for the POLY_ADDRESS header.
type TradingClient struct {
	*Client
	signer *Signer
	creds  Credentials
}

func NewTradingClient(signer *Signer, creds Credentials) *TradingClient {
	return &TradingClient{
		Client: NewClient(ClobAPIURL),
		signer: signer,
		creds:  creds,
	}
}

// PostOrder submits a signed order. The HMAC signature is computed over
// the exact bytes that go on the wire, so the body is marshaled once and
// shared between the signature and the request.
func (tc *TradingClient) PostOrder(ctx context.Context, order *SignedOrderRequest, orderType OrderType) (*PostOrderResponse, error) {
	payload := PostOrderRequest{
		Order:     *order,
		Owner:     tc.creds.ApiKey,
		OrderType: orderType,
		DeferExec: false,
	}

	body, err := MarshalBody(payload)
	if err != nil {
		return nil, err
	}

	headers, err := CreateL2Headers(tc.signer, tc.creds, "POST", "/order", body, time.Now())
	if err != nil {
		return nil, err
	}

	result := &PostOrderResponse{}
	if err := tc.post(ctx, "/order", body, headers, result); err != nil {
		return nil, err
	}

	if !result.Success {
		return result, fmt.Errorf("order placement failed: %s", result.ErrorMsg)
	}
	return result, nil
}

// CancelOrder cancels a resting order by id.
func (tc *TradingClient) CancelOrder(ctx context.Context, orderID string) (*CancelOrderResponse, error) {
	endpoint := "/order/" + orderID

	headers, err := CreateL2Headers(tc.signer, tc.creds, "DELETE", endpoint, nil, time.Now())
	if err != nil {
		return nil, err
	}

	result := &CancelOrderResponse{}
	if err := tc.delete(ctx, endpoint, headers, result); err != nil {
		return nil, err
	}

	if !result.Success {
		return result, fmt.Errorf("cancel failed: %s", result.ErrorMsg)
	}
	return result, nil
}

// GetBalance returns the available collateral balance.
func (tc *TradingClient) GetBalance(ctx context.Context) (float64, error) {
	endpoint := "/balance-allowance"

	headers, err := CreateL2Headers(tc.signer, tc.creds, "GET", endpoint, nil, time.Now())
	if err != nil {
		return 0, err
	}

	params := url.Values{}
	params.Set("asset_type", "COLLATERAL")

	var response BalanceAllowanceResponse
	if err := tc.get(ctx, endpoint, params, headers, &response); err != nil {
		return 0, fmt.Errorf("balance request failed: %w", err)
	}

	balance, err := strconv.ParseFloat(response.Balance, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse balance: %w", err)
	}
	return balance, nil
}

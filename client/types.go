package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StringFloat64 decodes a JSON number that arrives quoted.
type StringFloat64 float64

// EscapedArray decodes a JSON array that arrives wrapped in an outer JSON
// string (the Gamma API double-encodes list fields).
type EscapedArray []string

// DecimalArray is an EscapedArray whose elements are decimal numbers.
type DecimalArray []decimal.Decimal

// TimeRFC3339 decodes the RFC3339 timestamps the Gamma API emits.
type TimeRFC3339 time.Time

// Market is the metadata record returned by the Gamma API. outcomePrices
// and clobTokenIds arrive as nested JSON-encoded strings and are decoded
// twice on the way in.
type Market struct {
	ID              string       `json:"id"`
	ConditionID     string       `json:"conditionId"`
	Question        string       `json:"question"`
	Slug            string       `json:"slug"`
	Active          bool         `json:"active"`
	Closed          bool         `json:"closed"`
	AcceptingOrders bool         `json:"acceptingOrders"`
	OutcomePrices   DecimalArray `json:"outcomePrices"`
	ClobTokenIds    EscapedArray `json:"clobTokenIds"`
	NegRisk         bool         `json:"negRisk"`
	StartDate       TimeRFC3339  `json:"startDate"`
	EndDate         TimeRFC3339  `json:"endDate"`
}

// MarketEvent groups related markets under one event.
type MarketEvent struct {
	ID      string   `json:"id"`
	Ticker  string   `json:"ticker"`
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Active  bool     `json:"active"`
	Closed  bool     `json:"closed"`
	Markets []Market `json:"markets"`
}

type MarketResponse []MarketEvent

type OrderSummary struct {
	Price StringFloat64 `json:"price"`
	Size  StringFloat64 `json:"size"`
}

type GetBookResponse struct {
	Market         string         `json:"market"`
	AssetID        string         `json:"asset_id"`
	Timestamp      string         `json:"timestamp"`
	Hash           string         `json:"hash"`
	Bids           []OrderSummary `json:"bids"`
	Asks           []OrderSummary `json:"asks"`
	MinOrderSize   string         `json:"min_order_size"`
	TickSize       string         `json:"tick_size"`
	NegRisk        bool           `json:"neg_risk"`
	LastTradePrice string         `json:"last_trade_price"`
}

type GetPriceResponse struct {
	Price string `json:"price"`
}

type FeeRateResponse struct {
	FeeRateBps int `json:"base_fee"`
}

// PostOrderRequest is the top-level order placement payload.
type PostOrderRequest struct {
	Order     SignedOrderRequest `json:"order"`
	Owner     string             `json:"owner"`
	OrderType OrderType          `json:"orderType"`
	DeferExec bool               `json:"deferExec"`
}

type PostOrderResponse struct {
	Success     bool     `json:"success"`
	ErrorMsg    string   `json:"errorMsg"`
	OrderID     string   `json:"orderId"`
	OrderHashes []string `json:"orderHashes"`
	Status      string   `json:"status"`
}

type CancelOrderResponse struct {
	Success  bool   `json:"success"`
	ErrorMsg string `json:"errorMsg"`
	Status   string `json:"status"`
}

type BalanceAllowanceResponse struct {
	Balance   string `json:"balance"`
	Allowance string `json:"allowance"`
}

func (sf *StringFloat64) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*sf = StringFloat64(f)
	return nil
}

func (e *EscapedArray) UnmarshalJSON(data []byte) error {
	inner, err := unescapeJSONString(data)
	if err != nil {
		return err
	}

	var temp []string
	if err := json.Unmarshal([]byte(inner), &temp); err != nil {
		return fmt.Errorf("failed to parse nested JSON array: %w", err)
	}
	*e = EscapedArray(temp)
	return nil
}

func (d *DecimalArray) UnmarshalJSON(data []byte) error {
	var strs EscapedArray
	if err := strs.UnmarshalJSON(data); err != nil {
		return err
	}

	out := make([]decimal.Decimal, 0, len(strs))
	for _, s := range strs {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("failed to parse decimal %q: %w", s, err)
		}
		out = append(out, v)
	}
	*d = DecimalArray(out)
	return nil
}

// unescapeJSONString unwraps the outer string layer of a double-encoded
// field, tolerating the extra backslash level some Gamma responses carry.
func unescapeJSONString(data []byte) (string, error) {
	var outer string
	if err := json.Unmarshal(data, &outer); err != nil {
		// Some endpoints return the array directly.
		return string(data), nil
	}
	outer = strings.ReplaceAll(outer, `\"`, `"`)
	return outer, nil
}

func (t *TimeRFC3339) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	*t = TimeRFC3339(parsed)
	return nil
}

func (t TimeRFC3339) Time() time.Time {
	return time.Time(t)
}

func (t TimeRFC3339) Unix() int64 {
	return time.Time(t).Unix()
}

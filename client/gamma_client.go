package client

import (
	"context"
	"net/url"
)

// GammaClient reads public market metadata from the Gamma API.
type GammaClient struct {
	*Client
}

func NewGammaClient() *GammaClient {
	return &GammaClient{
		Client: NewClient(GammaAPIURL),
	}
}

// GetMarketBySlug looks up a single market by its URL slug.
func (c *GammaClient) GetMarketBySlug(ctx context.Context, slug string) (*Market, error) {
	market := &Market{}
	if err := c.get(ctx, "/markets/slug/"+slug, nil, nil, market); err != nil {
		return nil, err
	}
	return market, nil
}

// GetEvents lists open events for a tag.
func (c *GammaClient) GetEvents(ctx context.Context, tagID string) (MarketResponse, error) {
	params := url.Values{}
	params.Set("tag_id", tagID)
	params.Set("closed", "false")
	params.Set("limit", "10000")

	response := MarketResponse{}
	if err := c.get(ctx, "/events", params, nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

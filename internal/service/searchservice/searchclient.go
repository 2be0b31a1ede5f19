package searchservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DKhorkin/leadlens/pkg/clients"
)

// Client talks to the downstream contact-validation provider. The provider
// response is passed back opaque; this service only decides whether the
// call worked.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func NewClient(url string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    url,
		client: client,
	}
}

func (c *Client) Search(ctx context.Context, operationType string, query json.RawMessage) ([]byte, error) {
	statusCode, body, err := c.client.PostJSON(ctx, c.url+"/api/v1/"+operationType, query)
	if err != nil {
		return nil, fmt.Errorf("search provider request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("search provider returned status %d", statusCode)
	}
	return body, nil
}

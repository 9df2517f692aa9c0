package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/khmiq/ecommerce/models"
)

// Messages lists the chat thread for a product. Best-effort: reading does
// not require auth.
func (c *Client) Messages(ctx context.Context, token, productID string) ([]models.Message, error) {
	query := url.Values{"productId": {productID}}
	resp, err := c.do(ctx, http.MethodGet, "/messages", query, token, nil)
	if err != nil {
		return nil, err
	}
	if err := statusError(resp, "Failed to load messages"); err != nil {
		return nil, err
	}
	var msgs []models.Message
	if err := decodeInto(resp.body, "messages", &msgs); err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs, nil
}

// SendMessage appends to the thread. Sending requires auth; a 401 comes
// back as ErrAuthRequired.
func (c *Client) SendMessage(ctx context.Context, token, productID, text string) (models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return models.Message{}, ValidationError("Message cannot be empty")
	}
	payload := map[string]string{"text": text, "productId": productID}
	resp, err := c.do(ctx, http.MethodPost, "/messages", nil, token, payload)
	if err != nil {
		return models.Message{}, err
	}
	if err := statusError(resp, "Failed to send message"); err != nil {
		return models.Message{}, err
	}
	var msg models.Message
	if err := decodeInto(resp.body, "", &msg); err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

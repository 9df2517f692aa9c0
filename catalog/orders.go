package catalog

import (
	"context"
	"net/http"
)

// PlaceOrder submits an order for count units of a product in the chosen
// colors. A 401 surfaces as ErrAuthRequired; an out-of-stock count comes
// back as a generic failure string from the server and stays an HTTPError.
func (c *Client) PlaceOrder(ctx context.Context, token, productID string, colorIDs []string, count int) error {
	if count < 1 {
		return ValidationError("order count must be at least 1")
	}
	if len(colorIDs) == 0 {
		return ValidationError("select at least one color")
	}

	payload := map[string]any{
		"productId": productID,
		"colorIds":  colorIDs,
		"count":     count,
	}
	resp, err := c.do(ctx, http.MethodPost, "/order", nil, token, payload)
	if err != nil {
		return err
	}
	return statusError(resp, "Failed to place order. Please try again.")
}

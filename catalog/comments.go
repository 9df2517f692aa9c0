package catalog

import (
	"context"
	"net/http"
	"strings"

	"github.com/khmiq/ecommerce/models"
)

// AddComment submits a review. Preconditions are enforced before any
// network call: text must be non-empty and star within 1..5.
func (c *Client) AddComment(ctx context.Context, token, text string, star int, productID string) (models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return models.Comment{}, ValidationError("review text cannot be empty")
	}
	if star < 1 || star > 5 {
		return models.Comment{}, ValidationError("star rating must be between 1 and 5")
	}

	payload := map[string]any{
		"text":      text,
		"star":      star,
		"productId": productID,
	}
	resp, err := c.do(ctx, http.MethodPost, "/comments", nil, token, payload)
	if err != nil {
		return models.Comment{}, err
	}
	if err := statusError(resp, "Failed to add comment"); err != nil {
		return models.Comment{}, err
	}
	var comment models.Comment
	if err := decodeInto(resp.body, "", &comment); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

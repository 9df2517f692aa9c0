package catalog

import (
	"context"
	"net/http"

	"github.com/khmiq/ecommerce/models"
)

// Categories fetches the category reference list. Fails soft: a malformed
// payload yields an empty list plus ErrUnexpectedFormat so the page can
// render without the select while flagging the resource.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	return fetchReference[models.Category](ctx, c, "/category", "categories")
}

// Colors fetches the color reference list with the same soft-failure
// contract as Categories.
func (c *Client) Colors(ctx context.Context) ([]models.Color, error) {
	return fetchReference[models.Color](ctx, c, "/color", "colors")
}

// Regions backs the registration form's region select.
func (c *Client) Regions(ctx context.Context) ([]models.Region, error) {
	return fetchReference[models.Region](ctx, c, "/region", "regions")
}

func fetchReference[T any](ctx context.Context, c *Client, path, resource string) ([]T, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "", nil)
	if err != nil {
		return nil, err
	}
	if err := statusError(resp, "Failed to fetch "+resource); err != nil {
		return nil, err
	}
	var items []T
	if err := decodeInto(resp.body, resource, &items); err != nil {
		logSoftFailure("decode "+resource, err)
		return []T{}, ErrUnexpectedFormat
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/khmiq/ecommerce/models"
)

// wireProduct tolerates every field spelling the upstream drafts ever
// shipped: img vs imageUrl, colorIds vs colors vs a singular color. It is
// folded into the canonical models.Product before leaving this package.
type wireProduct struct {
	models.Product
	ImageURL string         `json:"imageUrl"`
	ColorIDs []models.Color `json:"colorIds"`
	Color    *models.Color  `json:"color"`
}

func normalizeProduct(w wireProduct) models.Product {
	p := w.Product
	if p.Img == "" {
		p.Img = w.ImageURL
	}
	if p.Img == "" {
		p.Img = models.PlaceholderImage
	}
	if len(p.Colors) == 0 {
		p.Colors = w.ColorIDs
	}
	if len(p.Colors) == 0 && w.Color != nil {
		p.Colors = []models.Color{*w.Color}
	}
	if p.Colors == nil {
		p.Colors = []models.Color{}
	}
	if p.Category.ID == "" && p.Category.Name == "" {
		p.Category = models.Category{Name: "Uncategorized"}
	}
	if p.AvgStars == "" {
		p.AvgStars = "0"
	}
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
	if p.Likes == nil {
		p.Likes = []string{}
	}
	return p
}

// Products fetches one page of the listing for a committed filter query.
// Pagination fields default to page=1/totalPages=1 when the server omits
// them.
func (c *Client) Products(ctx context.Context, query url.Values) (models.ProductPage, error) {
	page := models.ProductPage{Items: []models.Product{}, Page: 1, Limit: 10, TotalPages: 1}

	resp, err := c.do(ctx, http.MethodGet, "/products", query, "", nil)
	if err != nil {
		return page, err
	}
	if err := statusError(resp, "Failed to fetch products"); err != nil {
		return page, err
	}

	// Pagination metadata rides on the envelope, when there is one.
	var meta struct {
		Total      int `json:"total"`
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		TotalPages int `json:"totalPages"`
	}
	_ = json.Unmarshal(resp.body, &meta)

	var items []wireProduct
	if err := decodeInto(resp.body, "products", &items); err != nil {
		return page, err
	}
	for _, w := range items {
		page.Items = append(page.Items, normalizeProduct(w))
	}
	page.Total = meta.Total
	if meta.Page > 0 {
		page.Page = meta.Page
	}
	if meta.Limit > 0 {
		page.Limit = meta.Limit
	}
	if meta.TotalPages > 0 {
		page.TotalPages = meta.TotalPages
	}
	return page, nil
}

// Product fetches a single product with nested category, colors, comments
// and seller. ErrNotFound when the backend 404s.
func (c *Client) Product(ctx context.Context, id string) (models.Product, error) {
	resp, err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, "", nil)
	if err != nil {
		return models.Product{}, err
	}
	if err := statusError(resp, "Failed to fetch product"); err != nil {
		return models.Product{}, err
	}
	var w wireProduct
	if err := decodeInto(resp.body, "", &w); err != nil {
		return models.Product{}, err
	}
	return normalizeProduct(w), nil
}

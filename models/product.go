package models

import (
	"strconv"
	"time"
)

// PlaceholderImage is substituted whenever the API omits a product image.
const PlaceholderImage = "https://via.placeholder.com/300"

// ProductUser identifies the seller of a product.
type ProductUser struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// Comment is a product review. It is appended to a product's comment list
// only after the server confirms creation.
type Comment struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Star      int         `json:"star"`
	User      CommentUser `json:"user"`
	CreatedAt string      `json:"createdAt"`
}

type CommentUser struct {
	ID        string `json:"id,omitempty"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Product is the canonical product shape used everywhere past the API
// boundary. The upstream service is inconsistent about color fields
// (colorIds vs colors) and image fields (img vs imageUrl); the catalog
// client normalizes all of them into Colors and Img before a Product is
// handed out.
type Product struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Price           float64     `json:"price"`
	DiscountedPrice float64     `json:"discountedPrice,omitempty"`
	Skidka          float64     `json:"skidka,omitempty"`
	Category        Category    `json:"category"`
	Colors          []Color     `json:"colors"`
	Img             string      `json:"img"`
	AvgStars        string      `json:"avgStars"`
	CreatedAt       string      `json:"createdAt"`
	Count           int         `json:"count"`
	Description     string      `json:"description"`
	User            ProductUser `json:"user"`
	Comments        []Comment   `json:"comments"`
	Likes           []string    `json:"likes"`
}

// DisplayPrice is the price shown on cards: the discounted price when one
// exists, the list price otherwise. Derived at render time, never stored.
func (p Product) DisplayPrice() float64 {
	if p.DiscountedPrice > 0 {
		return p.DiscountedPrice
	}
	return p.Price
}

// HasDiscount reports whether the card should render a struck-through
// original price next to the discounted one.
func (p Product) HasDiscount() bool {
	return p.DiscountedPrice > 0 && p.DiscountedPrice < p.Price
}

// Rating parses avgStars, falling back to 0 on anything non-numeric.
func (p Product) Rating() float64 {
	r, err := strconv.ParseFloat(p.AvgStars, 64)
	if err != nil {
		return 0
	}
	return r
}

// Created parses the product's createdAt timestamp for display; zero time
// on an unparseable value.
func (p Product) Created() time.Time {
	t, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ProductPage is one page of a filtered product listing.
type ProductPage struct {
	Items      []Product `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"totalPages"`
}

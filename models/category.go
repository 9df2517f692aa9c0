package models

// Category is a storefront reference entity fetched from the catalog API.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Color is a storefront reference entity; hexCode is not always provided
// by the API.
type Color struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	HexCode string `json:"hexCode,omitempty"`
}

// Region is needed by the registration flow only (the register endpoint
// expects a region UUID).
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

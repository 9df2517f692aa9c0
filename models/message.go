package models

// Message is one buyer-seller chat message attached to a product.
// Field names follow the wire format of the /messages endpoint.
type Message struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	FromID    string `json:"from_id"`
	ToID      string `json:"to_id"`
	ProductID string `json:"product_id"`
	Date      string `json:"date"`

	// Presentation fields filled in by the chat controller, never sent
	// by the server.
	SenderName    string `json:"senderName,omitempty"`
	IsCurrentUser bool   `json:"isCurrentUser,omitempty"`
}

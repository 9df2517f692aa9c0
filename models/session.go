package models

// Session is the authenticated identity of the storefront. At most one
// session exists process-wide; it is persisted to a single named slot on
// disk and survives restarts.
type Session struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	Firstname   string `json:"firstname,omitempty"`
	Lastname    string `json:"lastname,omitempty"`
	Img         string `json:"img,omitempty"`
	RegionID    string `json:"regionId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Profile is what GET /auth/me returns. The session store merges these
// fields into the existing session, preserving email and token.
type Profile struct {
	ID          string `json:"id,omitempty"`
	Email       string `json:"email,omitempty"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Img         string `json:"img"`
	RegionID    string `json:"regionId"`
	CreatedAt   string `json:"createdAt"`
	PhoneNumber string `json:"phoneNumber"`
}

// RegisterInput is the payload for POST /auth/register.
type RegisterInput struct {
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	RegionID  string `json:"regionId"`
	BirthYear string `json:"birthYear"`
	Password  string `json:"password"`
	Img       string `json:"img"`
}

package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/khmiq/ecommerce/models"
)

// SendOTP asks the identity service to mail a one-time code to email.
func (c *Client) SendOTP(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return ValidationError("email cannot be empty")
	}
	resp, err := c.do(ctx, http.MethodPost, "/auth/send-otp", nil, "", map[string]string{"email": email})
	if err != nil {
		return err
	}
	return httpError(resp, "Failed to send OTP")
}

// VerifyOTP checks the 6-digit code entered during registration.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	if len(otp) != 6 {
		return ValidationError("Please enter a 6-digit OTP")
	}
	payload := map[string]string{"email": email, "otp": otp}
	resp, err := c.do(ctx, http.MethodPost, "/auth/verify-otp", nil, "", payload)
	if err != nil {
		return err
	}
	return httpError(resp, "Invalid OTP")
}

// Register creates the account after the OTP step.
func (c *Client) Register(ctx context.Context, input models.RegisterInput) error {
	resp, err := c.do(ctx, http.MethodPost, "/auth/register", nil, "", input)
	if err != nil {
		return err
	}
	return httpError(resp, "Registration failed")
}

// Login exchanges credentials for a bearer token. The server's message is
// surfaced verbatim on failure so the form can display it.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	resp, err := c.do(ctx, http.MethodPost, "/auth/login", nil, "", payload)
	if err != nil {
		return "", err
	}
	if err := httpError(resp, "Invalid email or password"); err != nil {
		return "", err
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.body, &out); err != nil || out.Token == "" {
		// Some deployments wrap the token one level down.
		var wrapped struct {
			Data struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		if err := json.Unmarshal(resp.body, &wrapped); err != nil || wrapped.Data.Token == "" {
			return "", ErrUnexpectedFormat
		}
		out.Token = wrapped.Data.Token
	}
	return out.Token, nil
}

// Me fetches the profile for a bearer token. ErrAuthRequired means the
// token is invalid or expired; the session store treats that as the one
// automatic logout trigger.
func (c *Client) Me(ctx context.Context, token string) (models.Profile, error) {
	resp, err := c.do(ctx, http.MethodGet, "/auth/me", nil, token, nil)
	if err != nil {
		return models.Profile{}, err
	}
	if err := statusError(resp, "Failed to fetch profile"); err != nil {
		return models.Profile{}, err
	}
	var profile models.Profile
	if err := decodeInto(resp.body, "", &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// Package account serves login, the OTP registration flow, the profile
// page and the image upload proxy.
package account

import (
	"context"
	"log"

	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/models"
	"github.com/khmiq/ecommerce/store"
	"github.com/khmiq/ecommerce/utils"
)

type Handlers struct {
	Client   *catalog.Client
	Sessions *store.Sessions
	OTP      *utils.OTPTracker
}

func New(client *catalog.Client, sessions *store.Sessions, otp *utils.OTPTracker) *Handlers {
	return &Handlers{Client: client, Sessions: sessions, OTP: otp}
}

// regions loads the region select for the registration form. Fails soft:
// the form renders without the select options and shows the message.
func (h *Handlers) regions(ctx context.Context) ([]models.Region, string) {
	regions, err := h.Client.Regions(ctx)
	if err != nil {
		log.Printf("⚠️  failed to fetch regions: %v", err)
		return nil, "Failed to fetch regions"
	}
	return regions, ""
}

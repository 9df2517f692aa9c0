// Package storefront serves the public catalog pages: the filter page
// with the product grid, the product detail page, and the JSON endpoints
// behind the like/cart toggles and the buyer-seller chat.
package storefront

import (
	"github.com/khmiq/ecommerce/cache/catalog_cache"
	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/store"
)

// Handlers carries the explicit dependencies of every storefront page;
// there is no ambient global state.
type Handlers struct {
	Client   *catalog.Client
	Cache    *catalog_cache.Store
	Sessions *store.Sessions
	Prefs    *store.Prefs
}

func New(client *catalog.Client, cache *catalog_cache.Store, sessions *store.Sessions, prefs *store.Prefs) *Handlers {
	return &Handlers{Client: client, Cache: cache, Sessions: sessions, Prefs: prefs}
}

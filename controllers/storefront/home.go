package storefront

import (
	"errors"
	"net/http"
	"net/url"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/middleware"
	"github.com/khmiq/ecommerce/models"
)

// Home renders the filter page. The URL query IS the committed filter
// state: the filter form submits via GET, so "Apply" is a navigation to
// the canonical query and the page is shareable and bookmarkable. The
// draft form state is rebuilt from the URL on every request, which is the
// reconciliation rule — external navigation (back button, pasted link)
// can never leave the form out of sync with the committed query.
func (h *Handlers) Home(c *gin.Context) {
	raw := c.Request.URL.Query()
	fields := models.FiltersFromQuery(raw)

	// Committed state is either empty (reset) or the canonical
	// serialization of the draft. Anything else — a form submit with
	// default fields included, a hand-edited URL — redirects to the
	// canonical form so one filter combination has one URL and one
	// cache key.
	query := url.Values{}
	if c.Request.URL.RawQuery != "" {
		query = fields.Query()
		if p := raw.Get("page"); p != "" && p != "1" {
			query.Set("page", p)
		}
		if canonical := models.CanonicalQuery(query); c.Request.URL.RawQuery != canonical {
			c.Redirect(http.StatusFound, "/?"+canonical)
			return
		}
	}

	ctx := c.Request.Context()

	// The three fetches are independent: they run concurrently, complete
	// in any order, and fail independently. The cache keys results by
	// the query that initiated them, so a slow response for a query the
	// user has already left never reaches this page's view.
	var (
		wg       sync.WaitGroup
		cats     []models.Category
		colors   []models.Color
		page     models.ProductPage
		catErr   error
		colorErr error
		prodErr  error
	)
	wg.Add(3)
	go func() { defer wg.Done(); cats, catErr = h.Cache.Categories(ctx) }()
	go func() { defer wg.Done(); colors, colorErr = h.Cache.Colors(ctx) }()
	go func() { defer wg.Done(); page, prodErr = h.Cache.Products(ctx, query) }()
	wg.Wait()

	sess, _ := middleware.SessionFromContext(c)
	view := models.HomeView{
		Fields:     fields,
		Query:      models.CanonicalQuery(query),
		Categories: cats,
		Colors:     colors,
		CatState:   resourceState(catErr),
		ColorState: resourceState(colorErr),
		Products:   resourceState(prodErr),
		Session:    sess,
		Page: models.Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}
	for _, p := range page.Items {
		view.Cards = append(view.Cards, models.ProductCard{
			Product: p,
			IsLiked: h.Prefs.IsLiked(p.ID),
			InCart:  h.Prefs.InCart(p.ID),
		})
	}
	if view.Products.Loading {
		view.SkeletonCells = make([]struct{}, 8)
	}

	c.HTML(http.StatusOK, "home.html", view)
}

// resourceState folds a fetch error into the per-resource render flag.
// Reference-data and product failures are never fatal to the page.
func resourceState(err error) models.ResourceState {
	switch {
	case err == nil:
		return models.ResourceState{}
	case errors.Is(err, catalog.ErrUnexpectedFormat):
		return models.ResourceState{Err: "Unexpected response from the catalog service"}
	default:
		return models.ResourceState{Err: "Failed to load. Please retry."}
	}
}

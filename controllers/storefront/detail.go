package storefront

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/middleware"
	"github.com/khmiq/ecommerce/models"
)

// ProductDetail renders one product with its gallery, seller, reviews,
// order form and chat entry point.
func (h *Handlers) ProductDetail(c *gin.Context) {
	id := c.Param("id")

	product, err := h.Cache.Product(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.HTML(http.StatusNotFound, "not_found.html", gin.H{"ID": id})
			return
		}
		c.HTML(http.StatusBadGateway, "error.html", gin.H{
			"Message": "Failed to load this product. Please retry.",
		})
		return
	}

	sess, _ := middleware.SessionFromContext(c)
	view := models.DetailView{
		Product: product,
		IsLiked: h.Prefs.IsLiked(product.ID),
		InCart:  h.Prefs.InCart(product.ID),
		Session: sess,
	}

	// Flash messages ride on the redirect query after form posts so the
	// page itself stays cacheable and refresh-safe.
	switch {
	case c.Query("ordered") == "1":
		view.Flash = "Order placed successfully!"
	case c.Query("reviewed") == "1":
		view.Flash = "Comment added successfully"
	case c.Query("error") != "":
		view.FlashErr = c.Query("error")
	}

	c.HTML(http.StatusOK, "product.html", view)
}

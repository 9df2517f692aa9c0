package storefront

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/middleware"
)

// PlaceOrder handles the order form on the detail page. Failures redirect
// back with the message so the form stays editable for retry.
func (h *Handlers) PlaceOrder(c *gin.Context) {
	id := c.Param("id")
	back := "/products/" + url.PathEscape(id)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	colorIDs := c.PostFormArray("colorIds")
	count, err := strconv.Atoi(c.DefaultPostForm("count", "1"))
	if err != nil {
		count = 0
	}

	err = h.Client.PlaceOrder(c.Request.Context(), sess.Token, id, colorIDs, count)
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, back+"?ordered=1")
	case errors.Is(err, catalog.ErrAuthRequired):
		c.Redirect(http.StatusFound, "/login")
	default:
		msg := catalog.UserMessage(err, "Failed to place order. Please try again.")
		c.Redirect(http.StatusFound, back+"?error="+url.QueryEscape(msg))
	}
}

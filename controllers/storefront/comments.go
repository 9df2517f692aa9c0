package storefront

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/middleware"
)

// AddComment handles the review form. The comment appears on the page
// only after server confirmation — there is no optimistic update for
// reviews, so on success the product's cache entry is invalidated and the
// redirect re-fetches it with the new comment included.
func (h *Handlers) AddComment(c *gin.Context) {
	id := c.Param("id")
	back := "/products/" + url.PathEscape(id)

	var token string
	if sess, ok := middleware.SessionFromContext(c); ok {
		token = sess.Token
	}

	text := c.PostForm("text")
	star, _ := strconv.Atoi(c.PostForm("star"))

	_, err := h.Client.AddComment(c.Request.Context(), token, text, star, id)
	if err != nil {
		msg := catalog.UserMessage(err, "Failed to add comment")
		c.Redirect(http.StatusFound, back+"?error="+url.QueryEscape(msg))
		return
	}

	h.Cache.InvalidateProduct(id)
	c.Redirect(http.StatusFound, back+"?reviewed=1")
}

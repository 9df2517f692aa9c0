package storefront

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/khmiq/ecommerce/models"
)

// ToggleLike flips the local like state for a product. Synchronous and
// optimistic: no network call, no loading state, toggling twice is a
// round trip back to the original state.
func (h *Handlers) ToggleLike(c *gin.Context) {
	id := c.Param("id")
	liked := h.Prefs.ToggleLike(id)

	message := "Removed from favorites"
	if liked {
		message = "Added to favorites"
	}
	respondToggle(c, message, gin.H{"productId": id, "liked": liked})
}

// ToggleCart flips the local cart state with the same contract as
// ToggleLike.
func (h *Handlers) ToggleCart(c *gin.Context) {
	id := c.Param("id")
	inCart := h.Prefs.ToggleCart(id)

	message := "Removed from cart"
	if inCart {
		message = "Added to cart"
	}
	respondToggle(c, message, gin.H{"productId": id, "inCart": inCart})
}

// respondToggle answers JSON for script callers and bounces plain form
// posts back to the page they came from.
func respondToggle(c *gin.Context, message string, data gin.H) {
	if wantsJSON(c) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, message, data))
		return
	}
	back := c.GetHeader("Referer")
	if back == "" {
		back = "/"
	}
	c.Redirect(http.StatusFound, back)
}

func wantsJSON(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

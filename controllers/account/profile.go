package account

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khmiq/ecommerce/models"
	"github.com/khmiq/ecommerce/utils"
)

// Profile refreshes the session's profile fields from the identity
// endpoint and renders them. If the token turned out invalid or expired,
// FetchUserDetails has already cleared the session — the one automatic
// logout — and the visitor lands back on the login page.
func (h *Handlers) Profile(c *gin.Context) {
	_ = h.Sessions.FetchUserDetails(c.Request.Context(), h.Client)

	sess := h.Sessions.Current()
	if sess == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	view := models.ProfileView{Session: sess}
	if exp, ok := utils.PeekTokenExpiry(sess.Token); ok {
		view.TokenExp = exp.Format("2006-01-02 15:04")
	}
	c.HTML(http.StatusOK, "profile.html", view)
}

// Logout clears the session and empties the persisted slot.
func (h *Handlers) Logout(c *gin.Context) {
	_ = h.Sessions.Logout()
	c.Redirect(http.StatusFound, "/")
}

package account

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/models"
)

// LoginPage renders the requested step of the login/registration flow.
// The flow has four views: login, registerEmail, verifyOtp and
// registerDetails; everything except login is reached via form posts.
func (h *Handlers) LoginPage(c *gin.Context) {
	step := c.DefaultQuery("step", "login")
	view := models.LoginView{Step: step}
	if step == "registerDetails" {
		view.Regions, view.RegionsErr = h.regions(c.Request.Context())
	}
	c.HTML(http.StatusOK, "login.html", view)
}

// Login handles the password form. On failure the server's message (e.g.
// "Invalid email or password") is displayed verbatim and the form stays
// editable; the session remains untouched.
func (h *Handlers) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, err := h.Client.Login(c.Request.Context(), email, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", models.LoginView{
			Step:  "login",
			Email: email,
			Error: catalog.UserMessage(err, "Invalid email or password"),
		})
		return
	}

	if err := h.Sessions.Set(&models.Session{Email: email, Token: token}); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", models.LoginView{
			Step:  "login",
			Email: email,
			Error: "Failed to save your session",
		})
		return
	}

	// Best-effort profile enrichment; a failure here clears the session
	// again (the token was rejected), so fall back to the login form.
	if err := h.Sessions.FetchUserDetails(c.Request.Context(), h.Client); err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", models.LoginView{
			Step:  "login",
			Email: email,
			Error: "Session expired, please log in again",
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}

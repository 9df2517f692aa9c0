package account

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/models"
)

// SendOTP starts registration: mails a 6-digit code to the address and
// moves the flow to the verify step. Resends inside the 60-second window
// are refused locally without hitting the identity service.
func (h *Handlers) SendOTP(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	if email == "" {
		c.HTML(http.StatusBadRequest, "login.html", models.LoginView{
			Step:  "registerEmail",
			Error: "Email cannot be empty",
		})
		return
	}

	if ok, retryIn := h.OTP.MarkSent(email); !ok {
		c.HTML(http.StatusTooManyRequests, "login.html", models.LoginView{
			Step:         "verifyOtp",
			Email:        email,
			ResendWindow: retryIn,
			Error:        "Please wait before requesting another code",
		})
		return
	}

	if err := h.Client.SendOTP(c.Request.Context(), email); err != nil {
		c.HTML(http.StatusBadGateway, "login.html", models.LoginView{
			Step:  "registerEmail",
			Email: email,
			Error: catalog.UserMessage(err, "Failed to send OTP"),
		})
		return
	}

	c.HTML(http.StatusOK, "login.html", models.LoginView{
		Step:         "verifyOtp",
		Email:        email,
		ResendWindow: h.OTP.RetryIn(email),
	})
}

// VerifyOTP checks the entered code and moves the flow to the details
// step.
func (h *Handlers) VerifyOTP(c *gin.Context) {
	email := c.PostForm("email")
	otp := strings.TrimSpace(c.PostForm("otp"))

	if err := h.Client.VerifyOTP(c.Request.Context(), email, otp); err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", models.LoginView{
			Step:         "verifyOtp",
			Email:        email,
			ResendWindow: h.OTP.RetryIn(email),
			Error:        catalog.UserMessage(err, "Invalid OTP"),
		})
		return
	}

	regions, regionsErr := h.regions(c.Request.Context())
	c.HTML(http.StatusOK, "login.html", models.LoginView{
		Step:       "registerDetails",
		Email:      email,
		Register:   models.RegisterInput{Email: email},
		Regions:    regions,
		RegionsErr: regionsErr,
	})
}

// Register completes the flow and logs the new account straight in.
func (h *Handlers) Register(c *gin.Context) {
	input := models.RegisterInput{
		Email:     c.PostForm("email"),
		Firstname: c.PostForm("firstname"),
		Lastname:  c.PostForm("lastname"),
		RegionID:  c.PostForm("regionId"),
		BirthYear: c.PostForm("birthYear"),
		Password:  c.PostForm("password"),
		Img:       c.PostForm("img"),
	}

	render := func(status int, msg string) {
		regions, regionsErr := h.regions(c.Request.Context())
		c.HTML(status, "login.html", models.LoginView{
			Step:       "registerDetails",
			Email:      input.Email,
			Register:   input,
			Regions:    regions,
			RegionsErr: regionsErr,
			Error:      msg,
		})
	}

	// Client-side preconditions, checked before any network call.
	if input.RegionID == "" {
		render(http.StatusBadRequest, "Please select a region")
		return
	}
	if _, err := uuid.Parse(input.RegionID); err != nil {
		render(http.StatusBadRequest, "Selected region is not a valid UUID")
		return
	}
	if input.Img == "" {
		render(http.StatusBadRequest, "Please upload an image")
		return
	}

	if err := h.Client.Register(c.Request.Context(), input); err != nil {
		render(http.StatusBadGateway, catalog.UserMessage(err, "Registration failed"))
		return
	}

	// Auto-login with the just-registered credentials.
	token, err := h.Client.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", models.LoginView{
			Step:  "login",
			Email: input.Email,
			Error: "Account created — please log in",
		})
		return
	}
	if err := h.Sessions.Set(&models.Session{Email: input.Email, Token: token}); err != nil {
		render(http.StatusInternalServerError, "Failed to save your session")
		return
	}
	_ = h.Sessions.FetchUserDetails(c.Request.Context(), h.Client)

	c.Redirect(http.StatusFound, "/profile")
}

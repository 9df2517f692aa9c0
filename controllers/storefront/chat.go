package storefront

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/middleware"
	"github.com/khmiq/ecommerce/models"
)

// ListMessages returns the chat thread for a product as JSON. Reading is
// best-effort and works logged out; presentation fields are filled from
// the viewer id the chat widget passes along.
func (h *Handlers) ListMessages(c *gin.Context) {
	productID := c.Param("id")
	viewerID := c.Query("viewerId")
	sellerName := c.DefaultQuery("sellerName", "Seller")

	var token string
	if sess, ok := middleware.SessionFromContext(c); ok {
		token = sess.Token
	}

	msgs, err := h.Client.Messages(c.Request.Context(), token, productID)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to load messages"))
		return
	}
	for i := range msgs {
		if viewerID != "" && msgs[i].FromID == viewerID {
			msgs[i].IsCurrentUser = true
			msgs[i].SenderName = "You"
		} else {
			msgs[i].SenderName = sellerName
		}
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Messages fetched", msgs))
}

// SendMessage appends to the thread. Sending requires a session.
func (h *Handlers) SendMessage(c *gin.Context) {
	productID := c.Param("id")

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login to send messages"))
		return
	}

	var input struct {
		Text string `json:"text" form:"text"`
	}
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Message cannot be empty"))
		return
	}

	msg, err := h.Client.SendMessage(c.Request.Context(), sess.Token, productID, input.Text)
	switch {
	case err == nil:
		msg.IsCurrentUser = true
		msg.SenderName = "You"
		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Message sent", msg))
	case errors.Is(err, catalog.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login to send messages"))
	case errors.Is(err, catalog.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, catalog.UserMessage(err, "Message cannot be empty")))
	default:
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, catalog.UserMessage(err, "Failed to send message")))
	}
}

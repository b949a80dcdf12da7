package api

import (
	"errors"
	"net/http"

	reqdto "storefront-payments/internal/handler/dto/request"
	resdto "storefront-payments/internal/handler/dto/response"
	"storefront-payments/internal/handler/httperr"
	"storefront-payments/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Start checkout
// @Description Create a pending order and return the data to embed in the provider request
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/checkout [post]
func (h *CheckoutHandler) Initiate(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Initiate(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCheckout) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid checkout data", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Checkout failed", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

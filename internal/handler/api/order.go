package api

import (
	"errors"
	"net/http"

	resdto "storefront-payments/internal/handler/dto/response"
	"storefront-payments/internal/handler/httperr"
	"storefront-payments/internal/handler/middleware"
	"storefront-payments/internal/pkg/errs"
	"storefront-payments/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoSession = errs.New("no session in context")

type OrderHandler struct {
	q queries.OrderQueries
}

func NewOrderHandler(q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{q: q}
}

// @Summary Get order
// @Description Look up an order by its public hash. The session email must match the order contact.
// @Tags orders
// @Produce json
// @Param publicHash path string true "Public hash"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{publicHash} [get]
func (h *OrderHandler) GetByPublicHash(c *gin.Context) {
	email, ok := middleware.GetSessionEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSession, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetByPublicHash(c.Request.Context(), c.Param("publicHash"), email)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidPublicHash):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order reference", nil)
		case errors.Is(err, queries.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		}
		return
	}

	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

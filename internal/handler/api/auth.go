package api

import (
	"errors"
	"net/http"

	reqdto "storefront-payments/internal/handler/dto/request"
	resdto "storefront-payments/internal/handler/dto/response"
	"storefront-payments/internal/handler/httperr"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/cookie"
	"storefront-payments/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds   commands.AuthCommands
	cookie config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:   cmds,
		cookie: cfg.Cookie,
	}
}

// @Summary Request login code
// @Description Email a one-time login code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.EmailTokenRequest true "Email"
// @Success 202 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/auth/email-token [post]
func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req reqdto.EmailTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.RequestLoginCode(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidEmail):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email", nil)
		case errors.Is(err, commands.ErrLoginCodeDelivery):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Could not send login code", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusAccepted, resdto.MessageResponse{Message: "Login code sent"})
}

// @Summary Verify login code
// @Description Exchange a login code for a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyCodeRequest true "Email and code"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	session, err := h.cmds.VerifyLoginCode(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidEmail):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email", nil)
		case errors.Is(err, commands.ErrInvalidLoginCode):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired code", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookie, session.Token, session.ExpiresIn)
	c.JSON(http.StatusOK, resdto.SessionResponse{
		Email:     session.Email,
		ExpiresIn: int(session.ExpiresIn.Seconds()),
	})
}

// @Summary Logout
// @Description Clear the session cookie
// @Tags auth
// @Success 204
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookie)
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}

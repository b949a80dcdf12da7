package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"storefront-payments/internal/domain/payment"
	resdto "storefront-payments/internal/handler/dto/response"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxCallbackBodyBytes = 1 << 20

type PaymentHandler struct {
	cmds     commands.CallbackCommands
	redirect config.RedirectConfig
}

func NewPaymentHandler(cmds commands.CallbackCommands, cfg config.Config) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, redirect: cfg.Redirect}
}

// @Summary Provider A callback
// @Description Server-to-server payment confirmation. Always answers 200.
// @Tags payments
// @Accept json
// @Produce json
// @Param token query string false "Correlation token"
// @Success 200 {object} resdto.PaymentEnvelope
// @Router /api/payments/provider-a/callback [post]
func (h *PaymentHandler) ProviderACallback(c *gin.Context) {
	h.callback(c, payment.ProviderA)
}

// @Summary Provider A return
// @Description Browser return from provider A. Always redirects.
// @Tags payments
// @Param token query string false "Correlation token"
// @Success 302
// @Router /api/payments/provider-a/return [get]
func (h *PaymentHandler) ProviderAReturn(c *gin.Context) {
	h.returnTo(c, payment.ProviderA)
}

// @Summary Provider B notification
// @Description Instant payment notification. Unauthenticated notifications get an empty 200.
// @Tags payments
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} resdto.PaymentEnvelope
// @Router /api/payments/provider-b/ipn [post]
func (h *PaymentHandler) ProviderBNotification(c *gin.Context) {
	h.callback(c, payment.ProviderB)
}

// @Summary Provider B return
// @Description Browser return from provider B. Always redirects.
// @Tags payments
// @Success 302
// @Router /api/payments/provider-b/return [get]
func (h *PaymentHandler) ProviderBReturn(c *gin.Context) {
	h.returnTo(c, payment.ProviderB)
}

func (h *PaymentHandler) Preflight(c *gin.Context) {
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}

// RecoverCallback keeps the callback contract after a panic.
func (h *PaymentHandler) RecoverCallback(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromEnvelope(commands.ErrorEnvelope("internal error", "", "")))
}

// RecoverReturn keeps the redirect contract after a panic.
func (h *PaymentHandler) RecoverReturn(c *gin.Context) {
	c.Redirect(http.StatusFound, commands.SafeRedirect(h.redirect))
}

func (h *PaymentHandler) callback(c *gin.Context, provider payment.Provider) {
	req, err := readCallbackRequest(c)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "unreadable callback body", "provider", provider.String(), "error", err.Error())
		c.JSON(http.StatusOK, resdto.FromEnvelope(commands.ErrorEnvelope("unreadable request body", "", "")))
		return
	}

	env := h.cmds.HandleCallback(c.Request.Context(), provider, req)
	if env == nil {
		c.Status(http.StatusOK)
		c.Writer.WriteHeaderNow()
		return
	}
	c.JSON(http.StatusOK, resdto.FromEnvelope(env))
}

func (h *PaymentHandler) returnTo(c *gin.Context, provider payment.Provider) {
	req, err := readCallbackRequest(c)
	if err != nil {
		c.Redirect(http.StatusFound, commands.SafeRedirect(h.redirect))
		return
	}
	c.Redirect(http.StatusFound, h.cmds.HandleReturn(c.Request.Context(), provider, req))
}

// readCallbackRequest keeps the raw body for echo verification and also decodes it
// as JSON or as a form, depending on the content type.
func readCallbackRequest(c *gin.Context) (commands.CallbackRequest, error) {
	req := commands.CallbackRequest{
		Query: c.Request.URL.Query(),
		Body:  map[string]any{},
	}
	if c.Request.Body == nil {
		return req, nil
	}

	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxCallbackBodyBytes))
	if err != nil {
		return req, err
	}
	req.RawBody = raw
	if len(raw) == 0 {
		return req, nil
	}

	mediaType, _, _ := mime.ParseMediaType(c.ContentType())
	switch mediaType {
	case "application/json":
		// malformed JSON leaves the body empty; the token may still be in the query
		_ = json.Unmarshal(raw, &req.Body)
		if req.Body == nil {
			req.Body = map[string]any{}
		}
	case "application/x-www-form-urlencoded", "":
		form, perr := url.ParseQuery(string(raw))
		if perr == nil {
			for k, vs := range form {
				if len(vs) > 0 {
					req.Body[k] = vs[0]
				}
			}
		}
	}
	return req, nil
}

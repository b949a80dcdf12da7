package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"storefront-payments/internal/domain/payment"
	"storefront-payments/internal/pkg/config"
)

const (
	EnvelopeSuccess = "success"
	EnvelopeError   = "error"

	// FromPaymentParam marks every redirect that comes back from a provider.
	FromPaymentParam = "from_payment"
	ReturnTokenParam = "token"
)

// Provider B return fields.
const (
	returnStatusKey = "st"
	returnCancelKey = "cancel"
)

// Envelope is the acknowledgement body sent to a provider callback.
type Envelope struct {
	Status           string
	Message          string
	CorrelationToken string
	ProviderOrderID  string
}

// CallbackRequest carries an inbound provider request in transport-neutral form.
type CallbackRequest struct {
	Query   url.Values
	Body    map[string]any
	RawBody []byte
}

type CallbackCommands interface {
	// HandleCallback returns nil when the request failed authentication and must be dropped silently.
	HandleCallback(ctx context.Context, provider payment.Provider, req CallbackRequest) *Envelope
	// HandleReturn returns the absolute URL the browser is sent to. It always yields a usable target.
	HandleReturn(ctx context.Context, provider payment.Provider, req CallbackRequest) string
}

type callbackCommandsImpl struct {
	adapters   Adapters
	reconciler Reconciler
	redirect   config.RedirectConfig
}

func NewCallbackCommands(adapters Adapters, reconciler Reconciler, cfg config.Config) CallbackCommands {
	return &callbackCommandsImpl{
		adapters:   adapters,
		reconciler: reconciler,
		redirect:   cfg.Redirect,
	}
}

func (c *callbackCommandsImpl) HandleCallback(ctx context.Context, provider payment.Provider, req CallbackRequest) *Envelope {
	adapter, err := c.adapters.Get(provider)
	if err != nil {
		return ErrorEnvelope("unsupported payment provider", "", "")
	}

	token, ok := payment.ExtractCorrelationToken(adapter.TokenKey(), req.Query, req.Body)
	if !ok {
		slog.WarnContext(ctx, "callback without correlation token",
			"provider", provider.String(),
			"payload_size", len(req.RawBody),
		)
		return ErrorEnvelope("missing correlation token", "", "")
	}

	v, err := adapter.Verify(ctx, CallbackInput{Token: token, Query: req.Query, Body: req.Body, RawBody: req.RawBody})
	if err != nil {
		slog.ErrorContext(ctx, "callback verification failed",
			"provider", provider.String(),
			"correlation_token", token,
			"payload_size", len(req.RawBody),
			"error", err.Error(),
		)
		return ErrorEnvelope("payment verification failed", token, "")
	}
	if !v.Authentic {
		slog.WarnContext(ctx, "dropping unauthenticated callback",
			"provider", provider.String(),
			"correlation_token", token,
			"payload_size", len(req.RawBody),
		)
		return nil
	}

	res, err := c.reconciler.Reconcile(ctx, ReconcileInput{
		Token:    token,
		Outcome:  v.Outcome,
		Receipt:  v.Receipt,
		Metadata: v.Metadata,
	})
	if err != nil {
		slog.ErrorContext(ctx, "callback reconciliation failed",
			"provider", provider.String(),
			"correlation_token", token,
			"outcome", v.Outcome.String(),
			"payload_size", len(req.RawBody),
			"error", err.Error(),
		)
		msg := "order reconciliation failed"
		if errors.Is(err, ErrSnapshotMissing) {
			msg = "order snapshot missing"
		}
		return ErrorEnvelope(msg, token, v.ProviderOrderID)
	}

	return BuildEnvelope(v.Outcome, res, token, v.ProviderOrderID)
}

func (c *callbackCommandsImpl) HandleReturn(ctx context.Context, provider payment.Provider, req CallbackRequest) string {
	switch provider {
	case payment.ProviderA:
		return c.returnProviderA(ctx, req)
	case payment.ProviderB:
		return c.returnProviderB(req)
	default:
		return SafeRedirect(c.redirect)
	}
}

// returnProviderA confirms and reconciles the payment before choosing a page.
func (c *callbackCommandsImpl) returnProviderA(ctx context.Context, req CallbackRequest) string {
	adapter, err := c.adapters.Get(payment.ProviderA)
	if err != nil {
		return SafeRedirect(c.redirect)
	}
	token, ok := payment.ExtractReturnToken(adapter.TokenKey(), req.Query, req.Body)
	if !ok {
		return SafeRedirect(c.redirect)
	}

	v, err := adapter.Verify(ctx, CallbackInput{Token: token, Query: req.Query, Body: req.Body, RawBody: req.RawBody})
	if err != nil || !v.Authentic {
		slog.WarnContext(ctx, "return verification failed",
			"provider", payment.ProviderA.String(),
			"correlation_token", token,
			"error", errString(err),
		)
		return SafeRedirect(c.redirect)
	}

	if _, err := c.reconciler.Reconcile(ctx, ReconcileInput{
		Token:    token,
		Outcome:  v.Outcome,
		Receipt:  v.Receipt,
		Metadata: v.Metadata,
	}); err != nil {
		slog.ErrorContext(ctx, "return reconciliation failed",
			"provider", payment.ProviderA.String(),
			"correlation_token", token,
			"outcome", v.Outcome.String(),
			"error", err.Error(),
		)
		return SafeRedirect(c.redirect)
	}

	return BuildRedirect(c.redirect, v.Outcome, token)
}

// returnProviderB only routes the browser. Provider B reconciles through its notifications.
// Without a status the buyer is sent to the success page to wait for the notification.
func (c *callbackCommandsImpl) returnProviderB(req CallbackRequest) string {
	token, _ := payment.ExtractReturnToken(payment.ProviderB.TokenKey(), req.Query, req.Body)

	outcome := payment.Pending()
	switch {
	case isTruthy(lookup(returnCancelKey, req)):
		outcome = payment.Cancelled()
	case lookup(returnStatusKey, req) != "":
		outcome = payment.ClassifyProviderB(lookup(returnStatusKey, req))
	}
	return BuildRedirect(c.redirect, outcome, token)
}

func ErrorEnvelope(message, token, providerOrderID string) *Envelope {
	return &Envelope{
		Status:           EnvelopeError,
		Message:          message,
		CorrelationToken: token,
		ProviderOrderID:  providerOrderID,
	}
}

func BuildEnvelope(outcome payment.Outcome, res *ReconcileResult, token, providerOrderID string) *Envelope {
	var msg string
	switch res.Action {
	case ActionCreated:
		msg = "order created from payment"
	case ActionUpdated:
		msg = "order updated"
	case ActionNoop:
		msg = "already processed"
	default:
		msg = "no matching order"
	}
	return &Envelope{
		Status:           EnvelopeSuccess,
		Message:          msg + " (" + outcome.String() + ")",
		CorrelationToken: token,
		ProviderOrderID:  providerOrderID,
	}
}

// BuildRedirect sends SUCCESS, PENDING and UNKNOWN to the success page and the rest to the cancel page.
// The token is attached only when it is usable.
func BuildRedirect(cfg config.RedirectConfig, outcome payment.Outcome, token string) string {
	path := cfg.SuccessPath
	if outcome.IsFailure() {
		path = cfg.CancelPath
	}

	q := url.Values{}
	q.Set(FromPaymentParam, "1")
	if payment.IsUsableToken(token) {
		q.Set(ReturnTokenParam, token)
	}
	return strings.TrimRight(cfg.FrontendBaseURL, "/") + path + "?" + q.Encode()
}

// SafeRedirect is the fallback target when anything upstream failed.
func SafeRedirect(cfg config.RedirectConfig) string {
	return BuildRedirect(cfg, payment.Pending(), "")
}

func lookup(key string, req CallbackRequest) string {
	if v := req.Query.Get(key); v != "" {
		return v
	}
	s, _ := req.Body[key].(string)
	return s
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

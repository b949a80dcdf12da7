//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"storefront-payments/internal/domain/payment"
	"storefront-payments/internal/handler/api"
	resdto "storefront-payments/internal/handler/dto/response"
	"storefront-payments/internal/handler/middleware"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/usecase/commands"
	"storefront-payments/tests/common/httptest"
	commandsmock "storefront-payments/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCallbackCommands
	handler      *api.PaymentHandler
	cfg          config.Config
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.cfg = config.NewTestConfig()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCallbackCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.cfg)

	callbacks := s.router.Group("/api/payments", middleware.RecoveryWith(s.handler.RecoverCallback))
	callbacks.POST("/provider-a/callback", s.handler.ProviderACallback)
	callbacks.POST("/provider-b/ipn", s.handler.ProviderBNotification)
	callbacks.OPTIONS("/provider-a/callback", s.handler.Preflight)

	returns := s.router.Group("/api/payments", middleware.RecoveryWith(s.handler.RecoverReturn))
	returns.GET("/provider-a/return", s.handler.ProviderAReturn)
	returns.POST("/provider-b/return", s.handler.ProviderBReturn)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestProviderACallback() {
	url := "/api/payments/provider-a/callback?token=MT_123"

	s.Run("success: envelope is returned with 200", func() {
		s.mockCommands.EXPECT().HandleCallback(gomock.Any(), payment.ProviderA, gomock.Any()).
			DoAndReturn(func(_ any, _ payment.Provider, req commands.CallbackRequest) *commands.Envelope {
				s.Equal("MT_123", req.Query.Get("token"))
				s.Equal("PA-1", req.Body["orderId"])
				return &commands.Envelope{Status: commands.EnvelopeSuccess, Message: "order updated (SUCCESS)", CorrelationToken: "MT_123", ProviderOrderID: "PA-1"}
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"orderId": "PA-1"}, "")

		var body resdto.PaymentEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.PaymentEnvelope{
			Status:           "success",
			Message:          "order updated (SUCCESS)",
			CorrelationToken: "MT_123",
			ProviderOrderID:  "PA-1",
		}, body)
	})

	s.Run("error envelope still answers 200", func() {
		s.mockCommands.EXPECT().HandleCallback(gomock.Any(), payment.ProviderA, gomock.Any()).
			Return(commands.ErrorEnvelope("payment verification failed", "MT_123", ""))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.PaymentEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("error", body.Status)
		s.Equal("payment verification failed", body.Message)
	})

	s.Run("malformed JSON body still reaches the pipeline", func() {
		s.mockCommands.EXPECT().HandleCallback(gomock.Any(), payment.ProviderA, gomock.Any()).
			DoAndReturn(func(_ any, _ payment.Provider, req commands.CallbackRequest) *commands.Envelope {
				s.Empty(req.Body)
				s.Equal("MT_123", req.Query.Get("token"))
				return commands.ErrorEnvelope("payment verification failed", "MT_123", "")
			})

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "application/json", "{not json")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("panic answers with the callback contract", func() {
		s.mockCommands.EXPECT().HandleCallback(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(any, payment.Provider, commands.CallbackRequest) *commands.Envelope {
				panic("boom")
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.PaymentEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("error", body.Status)
	})

	s.Run("preflight is a no-op", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodOptions, "/api/payments/provider-a/callback", nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})
}

func (s *PaymentHandlerTestSuite) TestProviderBNotification() {
	url := "/api/payments/provider-b/ipn"
	form := "invoice=MT_123&payment_status=Completed&mc_gross=129.90"

	s.Run("success: form body and raw bytes are both passed on", func() {
		s.mockCommands.EXPECT().HandleCallback(gomock.Any(), payment.ProviderB, gomock.Any()).
			DoAndReturn(func(_ any, _ payment.Provider, req commands.CallbackRequest) *commands.Envelope {
				s.Equal(form, string(req.RawBody))
				s.Equal("MT_123", req.Body["invoice"])
				s.Equal("Completed", req.Body["payment_status"])
				return &commands.Envelope{Status: commands.EnvelopeSuccess, Message: "order created from payment (SUCCESS)", CorrelationToken: "MT_123"}
			})

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, url, form)

		var body resdto.PaymentEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("MT_123", body.CorrelationToken)
	})

	s.Run("unauthenticated notification gets an empty 200", func() {
		s.mockCommands.EXPECT().HandleCallback(gomock.Any(), payment.ProviderB, gomock.Any()).Return(nil)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, url, form)

		s.Equal(http.StatusOK, rec.Code)
		s.Empty(rec.Body.String())
	})
}

func (s *PaymentHandlerTestSuite) TestReturns() {
	safe := commands.SafeRedirect(s.cfg.Redirect)

	s.Run("provider A return follows the pipeline target", func() {
		target := "http://localhost:3000/checkout/success?from_payment=1&token=MT_123"
		s.mockCommands.EXPECT().HandleReturn(gomock.Any(), payment.ProviderA, gomock.Any()).Return(target)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/provider-a/return?token=MT_123", nil, "")

		httptest.AssertRedirect(s.T(), rec, target)
	})

	s.Run("provider B return accepts a form post", func() {
		target := "http://localhost:3000/checkout/cancel?from_payment=1&token=MT_123"
		s.mockCommands.EXPECT().HandleReturn(gomock.Any(), payment.ProviderB, gomock.Any()).
			DoAndReturn(func(_ any, _ payment.Provider, req commands.CallbackRequest) string {
				s.Equal("1", req.Body["cancel"])
				return target
			})

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, "/api/payments/provider-b/return", "invoice=MT_123&cancel=1")

		httptest.AssertRedirect(s.T(), rec, target)
	})

	s.Run("panic falls back to the safe redirect", func() {
		s.mockCommands.EXPECT().HandleReturn(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(any, payment.Provider, commands.CallbackRequest) string {
				panic("boom")
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/provider-a/return", nil, "")

		httptest.AssertRedirect(s.T(), rec, safe)
	})
}

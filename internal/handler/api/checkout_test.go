//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"storefront-payments/internal/handler/api"
	resdto "storefront-payments/internal/handler/dto/response"
	"storefront-payments/internal/pkg/errs"
	"storefront-payments/internal/usecase/commands"
	"storefront-payments/tests/common/builder"
	"storefront-payments/tests/common/httptest"
	"storefront-payments/tests/common/testutil"
	commandsmock "storefront-payments/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands)

	s.router.POST("/api/checkout", s.handler.Initiate)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

type testCaseCheckout struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *CheckoutHandlerTestSuite) TestInitiate() {
	url := "/api/checkout"
	b := builder.NewOrderBuilder()
	reqBody := b.BuildCheckoutRequestDTO()
	result := &commands.CheckoutResult{
		OrderID:          uuid.New(),
		CorrelationToken: "MT_abc",
		PublicHash:       "0123456789abcdef",
		Metadata:         "eyJ2IjoxfQ",
		Amount:           decimal.RequireFromString("129.9"),
		Currency:         "EUR",
	}

	s.Run("success: returns 201 with the provider data", func() {
		s.mockCommands.EXPECT().Initiate(gomock.Any(), reqBody.ToInput()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.OrderID, response.OrderID)
		s.Equal("MT_abc", response.CorrelationToken)
		s.Equal("129.90", response.Amount)
		s.Equal("eyJ2IjoxfQ", response.Metadata)
	})

	s.Run("success: a client-sent price is ignored", func() {
		s.mockCommands.EXPECT().Initiate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CheckoutInput) (*commands.CheckoutResult, error) {
				s.True(in.Product.UnitPrice.IsZero())
				return result, nil
			})

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("product.unit_price", "0.01"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseCheckout{
			{name: "quantity boundary OK (10)", mutate: testutil.Field("product.quantity", 10), expectCode: http.StatusCreated},
			{name: "quantity boundary invalid (11)", mutate: testutil.Field("product.quantity", 11), expectCode: http.StatusBadRequest},
			{name: "quantity boundary invalid (0)", mutate: testutil.Field("product.quantity", 0), expectCode: http.StatusBadRequest},
			{name: "missing field: sensor_type", mutate: testutil.Field("product.sensor_type", nil), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("customer.email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "country must be two letters", mutate: testutil.Field("customer.country", "DEU"), expectCode: http.StatusBadRequest},
			{name: "missing object: customer", mutate: testutil.Field("customer", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(result, nil)
				}
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: domain validation maps to 400", func() {
		s.mockCommands.EXPECT().Initiate(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(assert.AnError, commands.ErrInvalidCheckout))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid checkout data")
	})

	s.Run("error: storage failure maps to 500", func() {
		s.mockCommands.EXPECT().Initiate(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(assert.AnError, commands.ErrCheckoutFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Checkout failed")
	})
}

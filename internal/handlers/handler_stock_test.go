package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/stock_trading_app/internal/apperrors"
	portssvc "github.com/SscSPs/stock_trading_app/internal/core/ports/services"
	"github.com/SscSPs/stock_trading_app/internal/dto"
	"github.com/SscSPs/stock_trading_app/internal/handlers"
	"github.com/SscSPs/stock_trading_app/internal/middleware"
	"github.com/SscSPs/stock_trading_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StockService ---
type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) GetOneStock(ctx context.Context, stockID, currency string) (*dto.StockResponse, error) {
	args := m.Called(ctx, stockID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StockResponse), args.Error(1)
}

func (m *MockStockService) GetAllStocks(ctx context.Context, priceGreaterThan decimal.Decimal) iter.Seq2[dto.StockResponse, error] {
	args := m.Called(ctx, priceGreaterThan)
	return args.Get(0).(iter.Seq2[dto.StockResponse, error])
}

func (m *MockStockService) CreateNewStock(ctx context.Context, req dto.StockRequest) (*dto.StockResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StockResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.StockSvcFacade = (*MockStockService)(nil)

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// responses yields the given stocks, then err if set.
func responses(err error, stocks ...dto.StockResponse) iter.Seq2[dto.StockResponse, error] {
	return func(yield func(dto.StockResponse, error) bool) {
		for _, s := range stocks {
			if !yield(s, nil) {
				return
			}
		}
		if err != nil {
			yield(dto.StockResponse{}, err)
		}
	}
}

// --- Test Suite ---
type StockHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockStockService *MockStockService
	mockHealth       *MockHealthChecker
}

func (suite *StockHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))

	suite.mockStockService = new(MockStockService)
	suite.mockHealth = new(MockHealthChecker)

	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{Stock: suite.mockStockService}
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, services, suite.mockHealth))
}

func (suite *StockHandlerTestSuite) serve(method, url string, body io.Reader) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *StockHandlerTestSuite) decodeProblem(w *httptest.ResponseRecorder) dto.ProblemDetail {
	suite.Contains(w.Header().Get("Content-Type"), "application/problem+json")
	var problem dto.ProblemDetail
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &problem))
	suite.Equal(w.Code, problem.Status)
	return problem
}

// --- Test Cases ---

func (suite *StockHandlerTestSuite) TestGetOneStock_Success() {
	expected := &dto.StockResponse{ID: "123232322415142323235", Name: "SFTUYTTIIIU", Price: decimal.NewFromInt(10), Currency: "INR"}
	suite.mockStockService.On("GetOneStock", mock.Anything, "123232322415142323235", "INR").Return(expected, nil).Once()

	w := suite.serve(http.MethodGet, "/stocks/123232322415142323235?currency=INR", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"id":"123232322415142323235","name":"SFTUYTTIIIU","price":10,"currency":"INR"}`, w.Body.String())
	var body dto.StockResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(expected.ID, body.ID)
	suite.Equal(expected.Name, body.Name)
	suite.True(expected.Price.Equal(body.Price))
	suite.Equal("INR", body.Currency)
	suite.mockStockService.AssertExpectations(suite.T())
}

func (suite *StockHandlerTestSuite) TestGetOneStock_NotFound() {
	suite.mockStockService.On("GetOneStock", mock.Anything, "missing", "INR").
		Return(nil, apperrors.NewNotFoundError("Stock not found with the id: missing")).Once()

	w := suite.serve(http.MethodGet, "/stocks/missing?currency=INR", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	problem := suite.decodeProblem(w)
	suite.Equal("Stock Not Found!!!", problem.Title)
	suite.Equal("Stock not found with the id: missing", problem.Detail)
	suite.Equal("/stocks/missing", problem.Instance)
}

func (suite *StockHandlerTestSuite) TestGetOneStock_CurrencyRateNotFound() {
	suite.mockStockService.On("GetOneStock", mock.Anything, "s-1", "").
		Return(nil, apperrors.NewCurrencyRateNotFoundError("No currency rate found for currency: ")).Once()

	w := suite.serve(http.MethodGet, "/stocks/s-1", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	problem := suite.decodeProblem(w)
	suite.Contains(problem.Title, "Not Found")
}

func (suite *StockHandlerTestSuite) TestGetOneStock_MultipleMatches() {
	suite.mockStockService.On("GetOneStock", mock.Anything, "s-1", "USD").
		Return(nil, apperrors.NewMultipleMatchesError("Multiple currency rates found for currency: USD")).Once()

	w := suite.serve(http.MethodGet, "/stocks/s-1?currency=USD", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	problem := suite.decodeProblem(w)
	suite.Equal("Multiple currency rates found for currency: USD", problem.Detail)
}

func (suite *StockHandlerTestSuite) TestGetOneStock_UnexpectedErrorHidesDetail() {
	suite.mockStockService.On("GetOneStock", mock.Anything, "s-1", "USD").
		Return(nil, errors.New("dial tcp 10.0.0.1:5432: connection refused")).Once()

	w := suite.serve(http.MethodGet, "/stocks/s-1?currency=USD", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	problem := suite.decodeProblem(w)
	suite.NotContains(problem.Detail, "10.0.0.1")
}

func (suite *StockHandlerTestSuite) TestGetAllStocks_DefaultThreshold() {
	stocks := []dto.StockResponse{
		{ID: "a", Name: "A", Price: decimal.NewFromInt(5), Currency: "INR"},
		{ID: "b", Name: "B", Price: decimal.RequireFromString("7.25"), Currency: "USD"},
	}
	suite.mockStockService.On("GetAllStocks", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.Zero)
	})).Return(responses(nil, stocks...)).Once()

	w := suite.serve(http.MethodGet, "/stocks", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "application/json")
	var body []dto.StockResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Contains(w.Body.String(), `"price":7.25`)
	suite.Equal("a", body[0].ID)
	suite.Equal("b", body[1].ID)
	suite.True(stocks[1].Price.Equal(body[1].Price))
	suite.mockStockService.AssertExpectations(suite.T())
}

func (suite *StockHandlerTestSuite) TestGetAllStocks_Threshold() {
	suite.mockStockService.On("GetAllStocks", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("9.5"))
	})).Return(responses(nil)).Once()

	w := suite.serve(http.MethodGet, "/stocks?priceGreaterThan=9.5", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("[]", w.Body.String())
	suite.mockStockService.AssertExpectations(suite.T())
}

func (suite *StockHandlerTestSuite) TestGetAllStocks_InvalidThreshold() {
	w := suite.serve(http.MethodGet, "/stocks?priceGreaterThan=ten", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.decodeProblem(w)
	suite.mockStockService.AssertNotCalled(suite.T(), "GetAllStocks", mock.Anything, mock.Anything)
}

func (suite *StockHandlerTestSuite) TestGetAllStocks_StoreError() {
	suite.mockStockService.On("GetAllStocks", mock.Anything, mock.Anything).
		Return(responses(errors.New("store unavailable"))).Once()

	w := suite.serve(http.MethodGet, "/stocks", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.decodeProblem(w)
}

func (suite *StockHandlerTestSuite) TestGetAllStocks_ErrorAfterFirstItem() {
	suite.mockStockService.On("GetAllStocks", mock.Anything, mock.Anything).
		Return(responses(errors.New("store unavailable"), dto.StockResponse{ID: "a", Price: decimal.NewFromInt(1)})).Once()

	w := suite.serve(http.MethodGet, "/stocks", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.StockResponse
	suite.Error(json.Unmarshal(w.Body.Bytes(), &body), "a broken stream must not decode as a complete array")
}

func (suite *StockHandlerTestSuite) TestCreateNewStock_Success() {
	created := &dto.StockResponse{ID: "generated", Name: "SFTUYTTIIIU", Price: decimal.NewFromInt(10), Currency: "INR"}
	suite.mockStockService.On("CreateNewStock", mock.Anything, mock.MatchedBy(func(req dto.StockRequest) bool {
		return req.Name == "SFTUYTTIIIU" && req.Currency == "INR" && req.Price != nil && req.Price.Equal(decimal.NewFromInt(10))
	})).Return(created, nil).Once()

	w := suite.serve(http.MethodPost, "/stocks", strings.NewReader(`{"name":"SFTUYTTIIIU","price":10,"currency":"INR"}`))

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"price":10`)
	var body dto.StockResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("generated", body.ID)
	suite.mockStockService.AssertExpectations(suite.T())
}

func (suite *StockHandlerTestSuite) TestCreateNewStock_InvalidBody() {
	cases := map[string]string{
		"missing price": `{"name":"SFTUYTTIIIU","currency":"INR"}`,
		"null price":    `{"name":"SFTUYTTIIIU","price":null,"currency":"INR"}`,
		"malformed":     `{"name":`,
	}

	for name, body := range cases {
		suite.Run(name, func() {
			w := suite.serve(http.MethodPost, "/stocks", strings.NewReader(body))

			suite.Equal(http.StatusBadRequest, w.Code)
			problem := suite.decodeProblem(w)
			suite.Equal("Unable to create Stock!!!", problem.Title)
		})
	}
	suite.mockStockService.AssertNotCalled(suite.T(), "CreateNewStock", mock.Anything, mock.Anything)
}

func (suite *StockHandlerTestSuite) TestCreateNewStock_OnlyPriceIsRequired() {
	cases := map[string]string{
		"negative price":   `{"name":"NEG","price":-5,"currency":"INR"}`,
		"missing currency": `{"name":"NOCUR","price":5}`,
		"empty name":       `{"name":"","price":5,"currency":"INR"}`,
		"string price":     `{"name":"STR","price":"5.5","currency":"INR"}`,
	}

	for name, body := range cases {
		suite.Run(name, func() {
			suite.mockStockService.On("CreateNewStock", mock.Anything, mock.Anything).
				Return(&dto.StockResponse{ID: "generated"}, nil).Once()

			w := suite.serve(http.MethodPost, "/stocks", strings.NewReader(body))

			suite.Equal(http.StatusCreated, w.Code)
		})
	}
	suite.mockStockService.AssertNumberOfCalls(suite.T(), "CreateNewStock", len(cases))
}

func (suite *StockHandlerTestSuite) TestCreateNewStock_CreationFailed() {
	suite.mockStockService.On("CreateNewStock", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewCreationFailedError("Unable to publish Stock publish Request")).Once()

	w := suite.serve(http.MethodPost, "/stocks", strings.NewReader(`{"name":"SFTUYTTIIIU","price":10,"currency":"INR"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	problem := suite.decodeProblem(w)
	suite.Equal("Unable to create Stock!!!", problem.Title)
	suite.Equal("Unable to publish Stock publish Request", problem.Detail)
}

func (suite *StockHandlerTestSuite) TestHealth() {
	suite.mockHealth.On("Ping", mock.Anything).Return(nil).Once()

	w := suite.serve(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *StockHandlerTestSuite) TestHealth_StoreDown() {
	suite.mockHealth.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()

	w := suite.serve(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

// --- Run Test Suite ---
func TestStockHandler(t *testing.T) {
	suite.Run(t, new(StockHandlerTestSuite))
}

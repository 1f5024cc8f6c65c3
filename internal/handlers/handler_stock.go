package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/stock_trading_app/internal/core/ports/services"
	"github.com/SscSPs/stock_trading_app/internal/dto"
	"github.com/SscSPs/stock_trading_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// stockHandler handles HTTP requests related to stocks.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{
		stockService: ss,
	}
}

// registerStockRoutes registers routes related to stocks.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	stocks := rg.Group("/stocks")
	{
		stocks.GET("/:id", h.getOneStock)
		stocks.GET("", h.getAllStocks)
		stocks.POST("", h.createNewStock)
	}
}

// getOneStock godoc
// @Summary Get a stock in a currency
// @Description Retrieves a stock with its price converted into the requested currency using the market's rates
// @Tags stocks
// @Produce  json
// @Param   id path string true "Stock ID"
// @Param   currency query string true "Currency name, matched case-insensitively"
// @Success 200 {object} dto.StockResponse
// @Failure 404 {object} dto.ProblemDetail "Stock or currency rate not found"
// @Failure 500 {object} dto.ProblemDetail "Ambiguous currency rate or market failure"
// @Router /stocks/{id} [get]
func (h *stockHandler) getOneStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stockID := c.Param("id")
	currency := c.Query("currency")

	logger = logger.With(slog.String("stock_id", stockID), slog.String("currency", currency))
	logger.Info("Received request to get stock")

	stock, err := h.stockService.GetOneStock(c.Request.Context(), stockID, currency)
	if err != nil {
		logger.Warn("Failed to get stock", slog.String("error", err.Error()))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stock)
}

// getAllStocks godoc
// @Summary List stocks above a price
// @Description Streams every stock priced strictly above priceGreaterThan. Prices are not converted.
// @Tags stocks
// @Produce  json
// @Param   priceGreaterThan query number false "Exclusive lower price bound" default(0)
// @Success 200 {array} dto.StockResponse
// @Failure 400 {object} dto.ProblemDetail "Invalid price threshold"
// @Failure 500 {object} dto.ProblemDetail "Failed to read stocks"
// @Router /stocks [get]
func (h *stockHandler) getAllStocks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	threshold := decimal.Zero
	if raw := c.Query("priceGreaterThan"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			logger.Warn("Invalid priceGreaterThan", slog.String("value", raw), slog.String("error", err.Error()))
			writeProblem(c, http.StatusBadRequest, "Invalid Request", "priceGreaterThan must be a decimal number")
			return
		}
		threshold = parsed
	}

	logger = logger.With(slog.String("price_greater_than", threshold.String()))
	logger.Info("Received request to list stocks")

	started := false
	count := 0
	for stock, err := range h.stockService.GetAllStocks(c.Request.Context(), threshold) {
		if err != nil {
			logger.Error("Failed to list stocks", slog.String("error", err.Error()), slog.Int("written", count))
			if !started {
				writeError(c, err)
				return
			}
			// Headers are gone. Leave the array unterminated so clients see a broken body.
			_ = c.Error(err)
			c.Abort()
			return
		}

		payload, mErr := json.Marshal(stock)
		if mErr != nil {
			logger.Error("Failed to encode stock", slog.String("stock_id", stock.ID), slog.String("error", mErr.Error()))
			if !started {
				writeError(c, mErr)
			}
			c.Abort()
			return
		}

		if !started {
			c.Header("Content-Type", gin.MIMEJSON+"; charset=utf-8")
			c.Status(http.StatusOK)
			_, _ = c.Writer.WriteString("[")
			started = true
		} else {
			_, _ = c.Writer.WriteString(",")
		}
		_, _ = c.Writer.Write(payload)
		c.Writer.Flush()
		count++
	}

	if !started {
		c.Header("Content-Type", gin.MIMEJSON+"; charset=utf-8")
		c.Status(http.StatusOK)
		_, _ = c.Writer.WriteString("[")
	}
	_, _ = c.Writer.WriteString("]")
	logger.Info("Listed stocks", slog.Int("count", count))
}

// createNewStock godoc
// @Summary Create a new stock
// @Description Persists a stock and publishes it to the market
// @Tags stocks
// @Accept  json
// @Produce  json
// @Param   stock body dto.StockRequest true "Stock details"
// @Success 201 {object} dto.StockResponse
// @Failure 400 {object} dto.ProblemDetail "Unable to create Stock!!!"
// @Router /stocks [post]
func (h *stockHandler) createNewStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateNewStock", slog.String("error", err.Error()))
		writeProblem(c, http.StatusBadRequest, titleUnableToCreateStock, "Invalid request format: "+err.Error())
		return
	}

	logger = logger.With(slog.String("stock_name", req.Name), slog.String("currency", req.Currency))
	logger.Info("Received request to create stock")

	created, err := h.stockService.CreateNewStock(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create stock", slog.String("error", err.Error()))
		writeError(c, err)
		return
	}

	logger.Info("Stock created successfully", slog.String("stock_id", created.ID))
	c.JSON(http.StatusCreated, created)
}

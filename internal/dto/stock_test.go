package dto_test

import (
	"testing"

	"github.com/SscSPs/stock_trading_app/internal/apperrors"
	"github.com/SscSPs/stock_trading_app/internal/core/domain"
	"github.com/SscSPs/stock_trading_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockRequest_ToModel(t *testing.T) {
	price := decimal.NewFromInt(10)
	req := dto.StockRequest{Name: "SFTUYTTIIIU", Price: &price, Currency: "INR"}

	stock, err := req.ToModel()

	require.NoError(t, err)
	assert.Empty(t, stock.StockID)
	assert.Equal(t, "SFTUYTTIIIU", stock.Name)
	assert.True(t, price.Equal(stock.Price))
	assert.Equal(t, "INR", stock.Currency)
}

func TestStockRequest_ToModel_MissingPrice(t *testing.T) {
	req := dto.StockRequest{Name: "SFTUYTTIIIU", Currency: "INR"}

	_, err := req.ToModel()

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestStockRequest_ToPublishRequest(t *testing.T) {
	price := decimal.NewFromInt(10)
	req := dto.StockRequest{Name: "SFTUYTTIIIU", Price: &price, Currency: "INR"}

	pub := req.ToPublishRequest()

	assert.Equal(t, domain.StockPublishRequest{StockName: "SFTUYTTIIIU", Price: price, CurrencyName: "INR"}, pub)
}

func TestToConvertedStockResponse(t *testing.T) {
	stock := domain.Stock{StockID: "1", Name: "ACME", Price: decimal.NewFromInt(10), Currency: "INR"}
	rate := domain.CurrencyRate{CurrencyName: "USD", Rate: decimal.RequireFromString("0.5")}

	resp := dto.ToConvertedStockResponse(stock, rate)

	assert.Equal(t, "1", resp.ID)
	assert.Equal(t, "USD", resp.Currency)
	assert.True(t, decimal.NewFromInt(5).Equal(resp.Price))
}

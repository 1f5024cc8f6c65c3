package dto

import (
	"github.com/SscSPs/stock_trading_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockRequest defines the data needed to create a new stock.
type StockRequest struct {
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price" binding:"required" swaggertype:"number"`
	Currency string           `json:"currency"`
}

// ToModel converts the request into a domain Stock without an id.
func (r StockRequest) ToModel() (domain.Stock, error) {
	if r.Price == nil {
		return domain.Stock{}, errPriceRequired
	}
	return domain.Stock{
		Name:     r.Name,
		Price:    *r.Price,
		Currency: r.Currency,
	}, nil
}

// ToPublishRequest derives the market publish request from the original creation request.
func (r StockRequest) ToPublishRequest() domain.StockPublishRequest {
	req := domain.StockPublishRequest{
		StockName:    r.Name,
		CurrencyName: r.Currency,
	}
	if r.Price != nil {
		req.Price = *r.Price
	}
	return req
}

// StockResponse is the externally visible projection of a stock.
type StockResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price" swaggertype:"number"`
	Currency string          `json:"currency"`
}

// ToStockResponse projects a stored stock without any currency conversion.
func ToStockResponse(s domain.Stock) StockResponse {
	return StockResponse{
		ID:       s.StockID,
		Name:     s.Name,
		Price:    s.Price,
		Currency: s.Currency,
	}
}

// ToConvertedStockResponse projects a stock priced in the currency of the given rate.
func ToConvertedStockResponse(s domain.Stock, rate domain.CurrencyRate) StockResponse {
	return StockResponse{
		ID:       s.StockID,
		Name:     s.Name,
		Price:    rate.Convert(s.Price),
		Currency: rate.CurrencyName,
	}
}

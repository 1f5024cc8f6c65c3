package mapping

import (
	"github.com/SscSPs/stock_trading_app/internal/core/domain"
	"github.com/SscSPs/stock_trading_app/internal/models"
)

// ToModelStock converts a domain Stock to a model Stock
func ToModelStock(d domain.Stock) models.Stock {
	return models.Stock{
		StockID:  d.StockID,
		Name:     d.Name,
		Price:    d.Price,
		Currency: d.Currency,
	}
}

// ToDomainStock converts a model Stock to a domain Stock
func ToDomainStock(m models.Stock) domain.Stock {
	return domain.Stock{
		StockID:  m.StockID,
		Name:     m.Name,
		Price:    m.Price,
		Currency: m.Currency,
	}
}

package services

import (
	"context"
	"iter"

	"github.com/SscSPs/stock_trading_app/internal/dto"
	"github.com/shopspring/decimal"
)

// StockReaderSvc defines read operations for stocks
type StockReaderSvc interface {
	// GetOneStock retrieves a stock priced in the requested currency.
	GetOneStock(ctx context.Context, stockID, currency string) (*dto.StockResponse, error)

	// GetAllStocks lazily yields stocks priced strictly above the threshold, unconverted.
	// The sequence may be ranged over once.
	GetAllStocks(ctx context.Context, priceGreaterThan decimal.Decimal) iter.Seq2[dto.StockResponse, error]
}

// StockWriterSvc defines write operations for stocks
type StockWriterSvc interface {
	// CreateNewStock persists and publishes a new stock. Every failure is a creation-failed error.
	CreateNewStock(ctx context.Context, req dto.StockRequest) (*dto.StockResponse, error)
}

// StockSvcFacade combines all stock-related service interfaces
type StockSvcFacade interface {
	StockReaderSvc
	StockWriterSvc
}

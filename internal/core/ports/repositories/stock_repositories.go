package repositories

import (
	"context"
	"iter"

	"github.com/SscSPs/stock_trading_app/internal/core/domain"
)

// StockReader defines read operations for stock data
type StockReader interface {
	// FindStockByID retrieves a stock by its id. It returns apperrors.ErrNotFound when absent.
	FindStockByID(ctx context.Context, stockID string) (*domain.Stock, error)

	// ListStocks lazily yields every stored stock in store order.
	// The query runs when the sequence is ranged over; a failure is yielded once and ends the sequence.
	ListStocks(ctx context.Context) iter.Seq2[domain.Stock, error]
}

// StockWriter defines write operations for stock data
type StockWriter interface {
	// SaveStock persists a stock, assigning an id when it has none, and returns the stored record.
	SaveStock(ctx context.Context, stock domain.Stock) (*domain.Stock, error)
}

// StockRepositoryFacade combines all stock-related repository interfaces
type StockRepositoryFacade interface {
	StockReader
	StockWriter
}

package clients

import (
	"context"
	"iter"

	"github.com/SscSPs/stock_trading_app/internal/core/domain"
)

// MarketClient is the remote stock market service.
type MarketClient interface {
	// GetCurrencyRates lazily yields the market's currency rates. Each range performs a new call.
	GetCurrencyRates(ctx context.Context) iter.Seq2[domain.CurrencyRate, error]

	// PublishStock announces a new stock. An error status from the market is returned
	// as a creation-failed error carrying the market's problem detail.
	PublishStock(ctx context.Context, req domain.StockPublishRequest) (*domain.StockPublishResponse, error)
}

// StockEventPublisher emits domain events about stocks to interested consumers.
type StockEventPublisher interface {
	PublishStockCreated(ctx context.Context, stock domain.Stock) error
	Close() error
}

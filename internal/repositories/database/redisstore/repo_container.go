package redisstore

import (
	portsrepo "github.com/SscSPs/stock_trading_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

func NewRepositoryProvider(client *redis.Client) portsrepo.RepositoryProvider {
	stockRepo := NewStockRepository(client)

	return portsrepo.RepositoryProvider{
		StockRepo: stockRepo,
		Health:    stockRepo,
	}
}

package pgsql

import (
	portsrepo "github.com/SscSPs/stock_trading_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	stockRepo := newPgxStockRepository(dbPool)

	return portsrepo.RepositoryProvider{
		StockRepo: stockRepo,
		Health:    stockRepo,
	}
}

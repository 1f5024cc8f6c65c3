package pgsql

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/SscSPs/stock_trading_app/internal/apperrors"
	"github.com/SscSPs/stock_trading_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stock_trading_app/internal/core/ports/repositories"
	"github.com/SscSPs/stock_trading_app/internal/models"
	"github.com/SscSPs/stock_trading_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxStockRepository implements the StockRepositoryFacade interface using pgxpool.
type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for stock data.
func newPgxStockRepository(pool *pgxpool.Pool) *PgxStockRepository {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

// FindStockByID retrieves a stock by its id.
func (r *PgxStockRepository) FindStockByID(ctx context.Context, stockID string) (*domain.Stock, error) {
	query := `
		SELECT stock_id, name, price, currency, created_at
		FROM stocks
		WHERE stock_id = $1;
	`
	var modelStock models.Stock
	err := r.Pool.QueryRow(ctx, query, stockID).Scan(
		&modelStock.StockID,
		&modelStock.Name,
		&modelStock.Price,
		&modelStock.Currency,
		&modelStock.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stock by id %s: %w", stockID, err)
	}

	domainStock := mapping.ToDomainStock(modelStock)
	return &domainStock, nil
}

// ListStocks streams every stock in insertion order straight from the result set.
func (r *PgxStockRepository) ListStocks(ctx context.Context) iter.Seq2[domain.Stock, error] {
	return func(yield func(domain.Stock, error) bool) {
		query := `
			SELECT stock_id, name, price, currency, created_at
			FROM stocks
			ORDER BY created_at, stock_id;
		`
		rows, err := r.Pool.Query(ctx, query)
		if err != nil {
			yield(domain.Stock{}, fmt.Errorf("failed to query stocks: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var modelStock models.Stock
			if err := rows.Scan(
				&modelStock.StockID,
				&modelStock.Name,
				&modelStock.Price,
				&modelStock.Currency,
				&modelStock.CreatedAt,
			); err != nil {
				yield(domain.Stock{}, fmt.Errorf("failed to scan stock: %w", err))
				return
			}
			if !yield(mapping.ToDomainStock(modelStock), nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(domain.Stock{}, fmt.Errorf("error iterating stocks: %w", err))
		}
	}
}

// SaveStock inserts a stock, or updates it when the id already exists.
// Stocks without an id get a new UUID.
func (r *PgxStockRepository) SaveStock(ctx context.Context, stock domain.Stock) (*domain.Stock, error) {
	modelStock := mapping.ToModelStock(stock)
	if modelStock.StockID == "" {
		modelStock.StockID = uuid.NewString()
	}
	modelStock.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO stocks (stock_id, name, price, currency, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (stock_id) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			currency = EXCLUDED.currency
		RETURNING stock_id, name, price, currency, created_at;
	`

	var saved models.Stock
	err := r.Pool.QueryRow(ctx, query,
		modelStock.StockID,
		modelStock.Name,
		modelStock.Price,
		modelStock.Currency,
		modelStock.CreatedAt,
	).Scan(
		&saved.StockID,
		&saved.Name,
		&saved.Price,
		&saved.Currency,
		&saved.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save stock %s: %w", modelStock.StockID, err)
	}

	domainStock := mapping.ToDomainStock(saved)
	return &domainStock, nil
}

package redisstore

import (
	"context"
	"encoding/json"
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
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "stock:"
	indexKey  = "stocks:index" // sorted set of stock ids scored by creation time
	pageSize  = 100
)

// Compile-time check to ensure StockRepository implements the repository port
var _ portsrepo.StockRepositoryFacade = (*StockRepository)(nil)

// StockRepository stores each stock as a JSON document under stock:{id}.
type StockRepository struct {
	client *redis.Client
}

func NewStockRepository(client *redis.Client) *StockRepository {
	return &StockRepository{client: client}
}

func stockKey(id string) string { return keyPrefix + id }

// Ping checks that Redis is reachable.
func (r *StockRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *StockRepository) FindStockByID(ctx context.Context, stockID string) (*domain.Stock, error) {
	payload, err := r.client.Get(ctx, stockKey(stockID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stock %s: %w", stockID, err)
	}

	var modelStock models.Stock
	if err := json.Unmarshal(payload, &modelStock); err != nil {
		return nil, fmt.Errorf("failed to decode stock %s: %w", stockID, err)
	}
	domainStock := mapping.ToDomainStock(modelStock)
	return &domainStock, nil
}

// ListStocks pages through the index in creation order, fetching documents with MGET.
func (r *StockRepository) ListStocks(ctx context.Context) iter.Seq2[domain.Stock, error] {
	return func(yield func(domain.Stock, error) bool) {
		for start := int64(0); ; start += pageSize {
			ids, err := r.client.ZRange(ctx, indexKey, start, start+pageSize-1).Result()
			if err != nil {
				yield(domain.Stock{}, fmt.Errorf("failed to read stock index: %w", err))
				return
			}
			if len(ids) == 0 {
				return
			}

			keys := make([]string, len(ids))
			for i, id := range ids {
				keys[i] = stockKey(id)
			}
			values, err := r.client.MGet(ctx, keys...).Result()
			if err != nil {
				yield(domain.Stock{}, fmt.Errorf("failed to fetch stocks: %w", err))
				return
			}

			for _, val := range values {
				payload, ok := val.(string)
				if !ok || payload == "" {
					// Indexed but deleted underneath us
					continue
				}
				var modelStock models.Stock
				if err := json.Unmarshal([]byte(payload), &modelStock); err != nil {
					yield(domain.Stock{}, fmt.Errorf("failed to decode stock: %w", err))
					return
				}
				if !yield(mapping.ToDomainStock(modelStock), nil) {
					return
				}
			}

			if len(ids) < pageSize {
				return
			}
		}
	}
}

// SaveStock writes the document and indexes it atomically. Existing ids keep their position.
func (r *StockRepository) SaveStock(ctx context.Context, stock domain.Stock) (*domain.Stock, error) {
	modelStock := mapping.ToModelStock(stock)
	if modelStock.StockID == "" {
		modelStock.StockID = uuid.NewString()
	}
	modelStock.CreatedAt = time.Now().UTC()

	payload, err := json.Marshal(modelStock)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stock %s: %w", modelStock.StockID, err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, stockKey(modelStock.StockID), payload, 0)
		pipe.ZAddNX(ctx, indexKey, redis.Z{
			Score:  float64(modelStock.CreatedAt.UnixNano()),
			Member: modelStock.StockID,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save stock %s: %w", modelStock.StockID, err)
	}

	domainStock := mapping.ToDomainStock(modelStock)
	return &domainStock, nil
}

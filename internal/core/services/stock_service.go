package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/SscSPs/stock_trading_app/internal/apperrors"
	"github.com/SscSPs/stock_trading_app/internal/core/domain"
	portsclients "github.com/SscSPs/stock_trading_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/stock_trading_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stock_trading_app/internal/core/ports/services"
	"github.com/SscSPs/stock_trading_app/internal/dto"
	"github.com/shopspring/decimal"
)

// DefaultEventPublishTimeout bounds how long a create waits on the stock created event.
const DefaultEventPublishTimeout = 2 * time.Second

// stockService orchestrates the stock store and the market client.
type stockService struct {
	BaseService
	stockRepo    portsrepo.StockRepositoryFacade
	market       portsclients.MarketClient
	events       portsclients.StockEventPublisher // optional
	eventTimeout time.Duration
}

// StockServiceOption is a functional option for configuring the stock service
type StockServiceOption func(*stockService)

// WithStockEventPublisher adds a publisher notified after every successful creation.
func WithStockEventPublisher(p portsclients.StockEventPublisher) StockServiceOption {
	return func(s *stockService) {
		if p != nil {
			s.events = p
		}
	}
}

// WithEventPublishTimeout overrides DefaultEventPublishTimeout. Non-positive values are ignored.
func WithEventPublishTimeout(d time.Duration) StockServiceOption {
	return func(s *stockService) {
		if d > 0 {
			s.eventTimeout = d
		}
	}
}

// NewStockService creates a new stock service with the provided options
func NewStockService(repo portsrepo.StockRepositoryFacade, market portsclients.MarketClient, options ...StockServiceOption) portssvc.StockSvcFacade {
	svc := &stockService{
		stockRepo:    repo,
		market:       market,
		eventTimeout: DefaultEventPublishTimeout,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure stockService implements the StockSvcFacade interface
var _ portssvc.StockSvcFacade = (*stockService)(nil)

func (s *stockService) GetOneStock(ctx context.Context, stockID, currency string) (resp *dto.StockResponse, err error) {
	logger := s.GetLogger(ctx).With(slog.String("stock_id", stockID), slog.String("currency", currency))
	logger.Info("Retrieving stock with id")
	defer func() {
		if err != nil {
			logger.Error("Something went wrong while retrieving the stock with id", slog.String("error", err.Error()))
		}
		logFinally(logger, "Finalized retrieving stock", signalFor(ctx, err))
	}()

	stock, err := s.stockRepo.FindStockByID(ctx, stockID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Stock not found with the id: %s", stockID))
		}
		return nil, fmt.Errorf("failed to get stock in service: %w", err)
	}

	rate, err := s.findCurrencyRate(ctx, currency)
	if err != nil {
		return nil, err
	}

	converted := dto.ToConvertedStockResponse(*stock, *rate)
	logger.Info("Stock found", slog.String("name", converted.Name), slog.String("price", converted.Price.String()))
	return &converted, nil
}

// findCurrencyRate returns the single rate matching currency. Ranging stops as soon as
// a second match shows up, which cancels the rest of the market response.
func (s *stockService) findCurrencyRate(ctx context.Context, currency string) (*domain.CurrencyRate, error) {
	var match *domain.CurrencyRate
	for rate, err := range s.market.GetCurrencyRates(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to get currency rates: %w", err)
		}
		if !rate.Matches(currency) {
			continue
		}
		if match != nil {
			return nil, apperrors.NewMultipleMatchesError(fmt.Sprintf("Multiple currency rates found for currency: %s", currency))
		}
		matched := rate
		match = &matched
	}
	if match == nil {
		return nil, apperrors.NewCurrencyRateNotFoundError(fmt.Sprintf("No currency rate found for currency: %s", currency))
	}
	return match, nil
}

func (s *stockService) GetAllStocks(ctx context.Context, priceGreaterThan decimal.Decimal) iter.Seq2[dto.StockResponse, error] {
	var consumed atomic.Bool
	return func(yield func(dto.StockResponse, error) bool) {
		if !consumed.CompareAndSwap(false, true) {
			yield(dto.StockResponse{}, apperrors.ErrSequenceConsumed)
			return
		}

		logger := s.GetLogger(ctx).With(slog.String("price_greater_than", priceGreaterThan.String()))
		logger.Info("Retrieving all stocks")
		signal := SignalOnComplete
		defer func() { logFinally(logger, "Finalized retrieving stocks", signal) }()

		for stock, err := range s.stockRepo.ListStocks(ctx) {
			if err != nil {
				signal = signalFor(ctx, err)
				logger.Error("Something went wrong while retrieving the stocks", slog.String("error", err.Error()))
				yield(dto.StockResponse{}, err)
				return
			}
			if !stock.Price.GreaterThan(priceGreaterThan) {
				continue
			}
			resp := dto.ToStockResponse(stock)
			logger.Info("Stock found", slog.String("stock_id", resp.ID))
			if !yield(resp, nil) {
				signal = SignalCancel
				return
			}
		}
	}
}

func (s *stockService) CreateNewStock(ctx context.Context, req dto.StockRequest) (*dto.StockResponse, error) {
	resp, err := s.createNewStock(ctx, req)
	if err != nil {
		s.LogError(ctx, err, "Exception thrown while creating a new stock", slog.String("stock_name", req.Name))
		return nil, apperrors.WrapCreationFailed(err)
	}
	return resp, nil
}

func (s *stockService) createNewStock(ctx context.Context, req dto.StockRequest) (*dto.StockResponse, error) {
	stock, err := req.ToModel()
	if err != nil {
		return nil, err
	}

	saved, err := s.stockRepo.SaveStock(ctx, stock)
	if err != nil {
		return nil, err
	}
	logger := s.GetLogger(ctx).With(slog.String("stock_id", saved.StockID))
	logger.Info("Stock persisted, publishing to market")

	published, err := s.market.PublishStock(ctx, req.ToPublishRequest())
	if err != nil {
		// Persisted stocks are not rolled back when publishing fails.
		logger.Warn("Stock persisted but could not be published", slog.String("error", err.Error()))
		return nil, err
	}
	if published == nil || !strings.EqualFold(published.Status, domain.PublishStatusSuccess) {
		logger.Warn("Stock persisted but market rejected the publish request")
		return nil, apperrors.NewCreationFailedError("Unable to publish Stock publish Request")
	}

	s.emitStockCreated(ctx, logger, *saved)

	resp := dto.ToStockResponse(*saved)
	logger.Info("Stock created successfully")
	return &resp, nil
}

// emitStockCreated never fails the create. A slow broker costs at most eventTimeout.
func (s *stockService) emitStockCreated(ctx context.Context, logger *slog.Logger, stock domain.Stock) {
	if s.events == nil {
		return
	}
	eventCtx, cancel := context.WithTimeout(ctx, s.eventTimeout)
	defer cancel()
	if err := s.events.PublishStockCreated(eventCtx, stock); err != nil {
		logger.Warn("Failed to emit stock created event", slog.String("error", err.Error()))
	}
}

package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/stock_trading_app/internal/apperrors"
	"github.com/SscSPs/stock_trading_app/internal/core/domain"
	portsclients "github.com/SscSPs/stock_trading_app/internal/core/ports/clients"
	"github.com/SscSPs/stock_trading_app/internal/dto"
	"github.com/SscSPs/stock_trading_app/internal/middleware"
	"github.com/go-resty/resty/v2"
)

const (
	currencyRatesPath = "/currencyRates"
	publishStockPath  = "/stocks/publish"
)

// Client talks to the remote stock market service.
type Client struct {
	http *resty.Client
}

// NewClient creates a market client for baseURL. A zero timeout leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(traceIDMiddleware)
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	return &Client{http: rc}
}

// Ensure Client implements the MarketClient interface
var _ portsclients.MarketClient = (*Client)(nil)

// GetCurrencyRates streams the market's currency rates, decoding one element at a time.
func (c *Client) GetCurrencyRates(ctx context.Context) iter.Seq2[domain.CurrencyRate, error] {
	return func(yield func(domain.CurrencyRate, error) bool) {
		logger := middleware.GetLoggerFromCtx(ctx)
		logger.Info("Calling GET Currency Rates API")

		resp, err := c.http.R().
			SetContext(ctx).
			SetDoNotParseResponse(true).
			Get(currencyRatesPath)
		if err != nil {
			yield(domain.CurrencyRate{}, fmt.Errorf("failed to call currency rates API: %w", err))
			return
		}
		body := resp.RawBody()
		defer body.Close()

		if resp.StatusCode() >= http.StatusBadRequest {
			yield(domain.CurrencyRate{}, fmt.Errorf("currency rates API returned status %d", resp.StatusCode()))
			return
		}

		dec := json.NewDecoder(body)
		if err := expectDelim(dec, '['); err != nil {
			yield(domain.CurrencyRate{}, err)
			return
		}
		for dec.More() {
			var rate domain.CurrencyRate
			if err := dec.Decode(&rate); err != nil {
				yield(domain.CurrencyRate{}, fmt.Errorf("failed to decode currency rate: %w", err))
				return
			}
			logger.Info("GET Currency Rates API Response",
				slog.String("currency_name", rate.CurrencyName),
				slog.String("rate", rate.Rate.String()),
			)
			if !yield(rate, nil) {
				return
			}
		}
		if err := expectDelim(dec, ']'); err != nil {
			yield(domain.CurrencyRate{}, err)
		}
	}
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("currency rates response ended before %q", want)
		}
		return fmt.Errorf("failed to read currency rates response: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("currency rates response: expected %q, got %v", want, tok)
	}
	return nil
}

// PublishStock announces a stock to the market. An error status is turned into a
// creation-failed error carrying the problem detail sent by the market.
func (c *Client) PublishStock(ctx context.Context, req domain.StockPublishRequest) (*domain.StockPublishResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Calling Publish Stock API", slog.String("stock_name", req.StockName))

	var result domain.StockPublishResponse
	var problem dto.ProblemDetail
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&problem).
		Post(publishStockPath)
	if err != nil {
		return nil, fmt.Errorf("failed to call publish stock API: %w", err)
	}

	if resp.IsError() {
		detail := problem.Detail
		if detail == "" {
			detail = fmt.Sprintf("publish stock API returned status %d", resp.StatusCode())
		}
		logger.Warn("Publish Stock API rejected request", slog.Int("status", resp.StatusCode()), slog.String("detail", detail))
		return nil, apperrors.NewCreationFailedError(detail)
	}

	logger.Info("Publish Stock API Response", slog.String("stock_name", result.StockName), slog.String("status", result.Status))
	return &result, nil
}

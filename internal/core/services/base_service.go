package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/stock_trading_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// SignalType classifies how an operation terminated.
type SignalType string

const (
	SignalOnComplete SignalType = "onComplete"
	SignalOnError    SignalType = "onError"
	SignalCancel     SignalType = "cancel"
)

// signalFor classifies the outcome of an operation. Context cancellation counts as a cancel.
func signalFor(ctx context.Context, err error) SignalType {
	switch {
	case err == nil:
		return SignalOnComplete
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		return SignalCancel
	default:
		return SignalOnError
	}
}

// logFinally emits the termination and finalization log lines of an operation.
func logFinally(logger *slog.Logger, msg string, signal SignalType) {
	if signal != SignalCancel {
		logger.Info(msg)
	}
	logger.Info(msg+" with signal type", slog.String("signal_type", string(signal)))
}

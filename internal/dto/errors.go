package dto

import "github.com/SscSPs/stock_trading_app/internal/apperrors"

var errPriceRequired = apperrors.NewValidationError("price is required")

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock is the persisted representation of a stock record.
type Stock struct {
	StockID   string          `json:"id"` // Primary Key (UUID)
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
}

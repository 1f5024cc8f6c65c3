package domain

import "github.com/shopspring/decimal"

func init() {
	// Prices and rates travel as JSON numbers on every wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// Stock is a priced, named asset record owned by this service.
type Stock struct {
	StockID  string          `json:"id"` // Assigned by the store on save when empty
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

// StockPublishRequest announces a new stock to the market service.
type StockPublishRequest struct {
	StockName    string          `json:"stockName"`
	Price        decimal.Decimal `json:"price"`
	CurrencyName string          `json:"currencyName"`
}

// PublishStatusSuccess is the only status the market uses to acknowledge a publish.
const PublishStatusSuccess = "SUCCESS"

// StockPublishResponse is the market service's answer to a StockPublishRequest.
type StockPublishResponse struct {
	StockName    string          `json:"stockName"`
	Price        decimal.Decimal `json:"price"`
	CurrencyName string          `json:"currencyName"`
	Status       string          `json:"status"`
}

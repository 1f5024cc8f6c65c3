package domain_test

import (
	"testing"

	"github.com/SscSPs/stock_trading_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyRate_Matches(t *testing.T) {
	rate := domain.CurrencyRate{CurrencyName: "INR", Rate: decimal.NewFromInt(1)}

	assert.True(t, rate.Matches("INR"))
	assert.True(t, rate.Matches("inr"))
	assert.False(t, rate.Matches("USD"))
	assert.False(t, rate.Matches(""))
}

func TestCurrencyRate_Convert(t *testing.T) {
	rate := domain.CurrencyRate{CurrencyName: "USD", Rate: decimal.RequireFromString("0.012")}

	got := rate.Convert(decimal.NewFromInt(250))

	assert.True(t, decimal.RequireFromString("3").Equal(got), "got %s", got)
}

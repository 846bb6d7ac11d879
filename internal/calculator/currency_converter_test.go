package calculator

import (
	"testing"

	"investorapi/internal/db/models/postgres/public/model"
	"investorapi/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCurrencyConverter_Rate(t *testing.T) {
	c := NewDefaultCurrencyConverter()

	t.Run("base currency", func(t *testing.T) {
		require.Equal(t, "USD", c.BaseCurrency())
		require.True(t, c.Rate("USD").Equal(decimal.NewFromInt(1)))
	})

	t.Run("known currency", func(t *testing.T) {
		require.True(t, c.Rate("GBP").Equal(decimal.RequireFromString("1.25")))
	})

	t.Run("unknown currency falls back to default rate", func(t *testing.T) {
		require.True(t, c.Rate("EUR").Equal(decimal.RequireFromString("1.25")))
		require.True(t, c.Rate("").Equal(decimal.RequireFromString("1.25")))
	})

	t.Run("base currency always maps to one", func(t *testing.T) {
		custom := NewCurrencyConverter(
			"gbp",
			map[string]decimal.Decimal{"GBP": decimal.NewFromInt(3), "usd": decimal.RequireFromString("0.8")},
			decimal.NewFromInt(2),
		)
		require.Equal(t, "GBP", custom.BaseCurrency())
		require.True(t, custom.Rate("GBP").Equal(decimal.NewFromInt(1)))
		require.True(t, custom.Rate("USD").Equal(decimal.RequireFromString("0.8")))
		require.True(t, custom.Rate("JPY").Equal(decimal.NewFromInt(2)))
	})
}

func TestCurrencyConverter_TotalInBase(t *testing.T) {
	c := NewDefaultCurrencyConverter()

	t.Run("mixed currencies", func(t *testing.T) {
		total := c.TotalInBase([]domain.Commitment{
			{AssetClass: model.AssetClass_HedgeFunds, Amount: decimal.NewFromInt(100), Currency: model.Currency_GBP},
			{AssetClass: model.AssetClass_RealEstate, Amount: decimal.NewFromInt(50), Currency: model.Currency_USD},
		})
		require.Equal(t, "175", total.String())
	})

	t.Run("no float drift", func(t *testing.T) {
		commitments := []domain.Commitment{}
		for i := 0; i < 10; i++ {
			commitments = append(commitments, domain.Commitment{
				Amount:   decimal.RequireFromString("0.1"),
				Currency: model.Currency_USD,
			})
		}
		require.True(t, c.TotalInBase(commitments).Equal(decimal.NewFromInt(1)))
	})

	t.Run("empty", func(t *testing.T) {
		require.True(t, c.TotalInBase(nil).IsZero())
	})
}

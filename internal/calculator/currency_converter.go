package calculator

import (
	"strings"

	"investorapi/internal/domain"

	"github.com/shopspring/decimal"
)

// CurrencyConverter converts commitment amounts into the base reporting
// currency using a fixed rate table. Codes missing from the table use the
// default rate instead of failing.
type CurrencyConverter struct {
	baseCurrency string
	rates        map[string]decimal.Decimal
	defaultRate  decimal.Decimal
}

func NewCurrencyConverter(baseCurrency string, rates map[string]decimal.Decimal, defaultRate decimal.Decimal) CurrencyConverter {
	baseCurrency = strings.ToUpper(strings.TrimSpace(baseCurrency))
	table := map[string]decimal.Decimal{}
	for code, rate := range rates {
		table[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	table[baseCurrency] = decimal.NewFromInt(1)

	return CurrencyConverter{
		baseCurrency: baseCurrency,
		rates:        table,
		defaultRate:  defaultRate,
	}
}

// NewDefaultCurrencyConverter returns the USD-based table the service has
// always reported with: GBP at 1.25, anything unknown also at 1.25.
func NewDefaultCurrencyConverter() CurrencyConverter {
	return NewCurrencyConverter(
		"USD",
		map[string]decimal.Decimal{
			"GBP": decimal.RequireFromString("1.25"),
		},
		decimal.RequireFromString("1.25"),
	)
}

func (c CurrencyConverter) BaseCurrency() string {
	return c.baseCurrency
}

func (c CurrencyConverter) Rate(currency string) decimal.Decimal {
	if rate, ok := c.rates[currency]; ok {
		return rate
	}
	return c.defaultRate
}

func (c CurrencyConverter) ToBase(amount decimal.Decimal, currency string) decimal.Decimal {
	return amount.Mul(c.Rate(currency))
}

// TotalInBase sums every commitment converted to the base currency.
func (c CurrencyConverter) TotalInBase(commitments []domain.Commitment) decimal.Decimal {
	total := decimal.Zero
	for _, commitment := range commitments {
		total = total.Add(c.ToBase(commitment.Amount, commitment.Currency.String()))
	}
	return total
}

package main

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatMoney renders amount with the currency's symbol and grouping, rounded
// to the currency's minor unit.
func formatMoney(amount decimal.Decimal, currencyCode string) string {
	cur := money.New(0, currencyCode).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), currencyCode).Display()
}

package domain

import (
	"fmt"
	"strings"

	"investorapi/internal/db/models/postgres/public/model"
)

type Country string

const (
	Country_China         Country = "China"
	Country_Singapore     Country = "Singapore"
	Country_UnitedKingdom Country = "United Kingdom"
	Country_UnitedStates  Country = "United States"
)

var InvestorTypes = []model.InvestorType{
	model.InvestorType_AssetManager,
	model.InvestorType_Bank,
	model.InvestorType_FundManager,
	model.InvestorType_WealthManager,
}

var AssetClasses = []model.AssetClass{
	model.AssetClass_HedgeFunds,
	model.AssetClass_Infrastructure,
	model.AssetClass_NaturalResources,
	model.AssetClass_PrivateDebt,
	model.AssetClass_PrivateEquity,
	model.AssetClass_RealEstate,
}

var Currencies = []model.Currency{
	model.Currency_GBP,
	model.Currency_USD,
}

var Countries = []Country{
	Country_China,
	Country_Singapore,
	Country_UnitedKingdom,
	Country_UnitedStates,
}

// parseEnum matches s exactly (after trimming) against the allowed values.
func parseEnum[T ~string](kind, s string, allowed []T) (T, error) {
	s = strings.TrimSpace(s)
	for _, v := range allowed {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: invalid %s %q", ErrInvalidInput, kind, s)
}

func ParseInvestorType(s string) (model.InvestorType, error) {
	return parseEnum("investor type", s, InvestorTypes)
}

func ParseAssetClass(s string) (model.AssetClass, error) {
	return parseEnum("asset class", s, AssetClasses)
}

func ParseCurrency(s string) (model.Currency, error) {
	return parseEnum("currency", s, Currencies)
}

func ParseCountry(s string) (Country, error) {
	return parseEnum("country", s, Countries)
}

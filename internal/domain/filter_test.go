package domain

import (
	"errors"
	"testing"

	"investorapi/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestInvestorFilter(t *testing.T) {
	d := func(s string) *decimal.Decimal {
		v := decimal.RequireFromString(s)
		return &v
	}

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, InvestorFilter{}.Validate())
		require.NoError(t, InvestorFilter{MinCommitment: d("5"), MaxCommitment: d("5")}.Validate())
		err := InvestorFilter{MinCommitment: d("6"), MaxCommitment: d("5")}.Validate()
		require.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("matches investor", func(t *testing.T) {
		bank := model.InvestorType_Bank
		china := Country_China
		investor := Investor{InvestorType: model.InvestorType_Bank, Country: "China"}

		require.True(t, InvestorFilter{}.MatchesInvestor(investor))
		require.True(t, InvestorFilter{InvestorType: &bank, Country: &china}.MatchesInvestor(investor))

		investor.Country = "Singapore"
		require.False(t, InvestorFilter{InvestorType: &bank, Country: &china}.MatchesInvestor(investor))
	})

	t.Run("matches commitment", func(t *testing.T) {
		pe := model.AssetClass_PrivateEquity
		require.True(t, InvestorFilter{}.MatchesCommitment(Commitment{AssetClass: model.AssetClass_HedgeFunds}))
		require.False(t, InvestorFilter{AssetClass: &pe}.MatchesCommitment(Commitment{AssetClass: model.AssetClass_HedgeFunds}))
		require.True(t, InvestorFilter{AssetClass: &pe}.MatchesCommitment(Commitment{AssetClass: model.AssetClass_PrivateEquity}))
	})

	t.Run("matches total inclusively", func(t *testing.T) {
		f := InvestorFilter{MinCommitment: d("10"), MaxCommitment: d("20")}
		require.True(t, f.MatchesTotal(decimal.NewFromInt(10)))
		require.True(t, f.MatchesTotal(decimal.NewFromInt(20)))
		require.False(t, f.MatchesTotal(decimal.RequireFromString("9.99")))
		require.False(t, f.MatchesTotal(decimal.RequireFromString("20.01")))
	})
}

package domain

import (
	"fmt"

	"investorapi/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

// InvestorFilter holds optional, conjunctive constraints for the filtered
// summary listing. Nil fields do not constrain.
//
// AssetClass narrows each investor's commitments before totals are computed;
// MinCommitment and MaxCommitment are inclusive bounds on that recomputed
// base-currency total.
type InvestorFilter struct {
	AssetClass    *model.AssetClass
	InvestorType  *model.InvestorType
	Country       *Country
	MinCommitment *decimal.Decimal
	MaxCommitment *decimal.Decimal
}

func (f InvestorFilter) Validate() error {
	if f.MinCommitment != nil && f.MaxCommitment != nil && f.MinCommitment.GreaterThan(*f.MaxCommitment) {
		return fmt.Errorf(
			"%w: min_commitment %s is greater than max_commitment %s",
			ErrInvalidInput,
			f.MinCommitment.String(),
			f.MaxCommitment.String(),
		)
	}
	return nil
}

func (f InvestorFilter) MatchesInvestor(investor Investor) bool {
	if f.InvestorType != nil && investor.InvestorType != *f.InvestorType {
		return false
	}
	if f.Country != nil && investor.Country != string(*f.Country) {
		return false
	}
	return true
}

func (f InvestorFilter) MatchesCommitment(commitment Commitment) bool {
	return f.AssetClass == nil || commitment.AssetClass == *f.AssetClass
}

func (f InvestorFilter) MatchesTotal(total decimal.Decimal) bool {
	if f.MinCommitment != nil && total.LessThan(*f.MinCommitment) {
		return false
	}
	if f.MaxCommitment != nil && total.GreaterThan(*f.MaxCommitment) {
		return false
	}
	return true
}

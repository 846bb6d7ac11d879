package domain

import (
	"time"

	"investorapi/internal/db/models/postgres/public/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Commitment is a pledge of capital to one asset class in one currency.
// It has no identity outside the investor that owns it.
type Commitment struct {
	AssetClass model.AssetClass
	Amount     decimal.Decimal
	Currency   model.Currency
}

type Investor struct {
	InvestorID   uuid.UUID
	Name         string
	InvestorType model.InvestorType
	Country      string
	DateAdded    time.Time
	LastUpdated  time.Time
	Address      *string
	Commitments  []Commitment
}

type InvestorSummary struct {
	InvestorID          uuid.UUID
	Name                string
	InvestorType        model.InvestorType
	Country             string
	DateAdded           time.Time
	Address             *string
	TotalCommitmentBase decimal.Decimal
	CommitmentCount     int
}

type InvestorDetail struct {
	Investor
	TotalCommitmentBase decimal.Decimal
}

type PortfolioStatistics struct {
	TotalInvestors            int
	TotalCommitments          int
	UniqueCountries           []string
	UniqueCountriesCount      int
	TotalCommitmentAmountBase decimal.Decimal
	BaseCurrency              string
}

type UploadResult struct {
	Message          string
	TotalInvestors   int
	TotalCommitments int
	Success          bool
}

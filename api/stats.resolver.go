package api

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type investmentStatsResponse struct {
	TotalInvestors           int             `json:"total_investors"`
	TotalCommitments         int             `json:"total_commitments"`
	UniqueCountriesCount     int             `json:"unique_countries_count"`
	UniqueCountries          []string        `json:"unique_countries"`
	TotalCommitmentAmountUsd decimal.Decimal `json:"total_commitment_amount_usd"`
	BaseCurrency             string          `json:"base_currency"`
}

func (m ApiHandler) getInvestmentStats(c *gin.Context) {
	stats, err := m.ReportService.GetPortfolioStatistics(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	countries := stats.UniqueCountries
	if countries == nil {
		countries = []string{}
	}

	c.JSON(200, investmentStatsResponse{
		TotalInvestors:           stats.TotalInvestors,
		TotalCommitments:         stats.TotalCommitments,
		UniqueCountriesCount:     stats.UniqueCountriesCount,
		UniqueCountries:          countries,
		TotalCommitmentAmountUsd: stats.TotalCommitmentAmountBase,
		BaseCurrency:             stats.BaseCurrency,
	})
}

package api

import (
	"fmt"
	"time"

	"investorapi/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type investorSummaryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	InvestorType string    `json:"investor_type"`
	Country      string    `json:"country"`
	DateAdded    time.Time `json:"date_added"`
	Address      *string   `json:"address"`
	// kept as total_commitment_usd for existing clients; the value is in the
	// configured base currency
	TotalCommitmentUsd decimal.Decimal `json:"total_commitment_usd"`
	CommitmentCount    int             `json:"commitment_count"`
}

func (m ApiHandler) getInvestorSummaries(c *gin.Context) {
	summaries, err := m.ReportService.ListSummaries(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, summariesToResponse(summaries))
}

func (m ApiHandler) getInvestorSummariesFiltered(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	summaries, err := m.ReportService.ListSummariesFiltered(c.Request.Context(), *filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, summariesToResponse(summaries))
}

func summariesToResponse(summaries []domain.InvestorSummary) []investorSummaryResponse {
	out := make([]investorSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, investorSummaryResponse{
			ID:                 s.InvestorID.String(),
			Name:               s.Name,
			InvestorType:       s.InvestorType.String(),
			Country:            s.Country,
			DateAdded:          s.DateAdded,
			Address:            s.Address,
			TotalCommitmentUsd: s.TotalCommitmentBase,
			CommitmentCount:    s.CommitmentCount,
		})
	}
	return out
}

// filterFromQuery reads the optional filter parameters. Empty values are
// treated as absent.
func filterFromQuery(c *gin.Context) (*domain.InvestorFilter, error) {
	filter := domain.InvestorFilter{}

	if v := c.Query("asset_class"); v != "" {
		assetClass, err := domain.ParseAssetClass(v)
		if err != nil {
			return nil, err
		}
		filter.AssetClass = &assetClass
	}
	if v := c.Query("investor_type"); v != "" {
		investorType, err := domain.ParseInvestorType(v)
		if err != nil {
			return nil, err
		}
		filter.InvestorType = &investorType
	}
	if v := c.Query("country"); v != "" {
		country, err := domain.ParseCountry(v)
		if err != nil {
			return nil, err
		}
		filter.Country = &country
	}

	var err error
	filter.MinCommitment, err = decimalQuery(c, "min_commitment")
	if err != nil {
		return nil, err
	}
	filter.MaxCommitment, err = decimalQuery(c, "max_commitment")
	if err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return &filter, nil
}

func decimalQuery(c *gin.Context, key string) (*decimal.Decimal, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number, got %q", domain.ErrInvalidInput, key, v)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, key)
	}
	return &d, nil
}

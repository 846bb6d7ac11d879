package api

import (
	"time"

	"investorapi/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type commitmentResponse struct {
	AssetClass string          `json:"asset_class"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
}

type investorDetailResponse struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	InvestorType       string               `json:"investor_type"`
	Country            string               `json:"country"`
	DateAdded          time.Time            `json:"date_added"`
	LastUpdated        time.Time            `json:"last_updated"`
	Address            *string              `json:"address"`
	Commitments        []commitmentResponse `json:"commitments"`
	TotalCommitmentUsd decimal.Decimal      `json:"total_commitment_usd"`
}

func (m ApiHandler) getInvestorDetails(c *gin.Context) {
	detail, err := m.ReportService.GetInvestorDetail(c.Request.Context(), c.Param("investor_id"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, detailToResponse(*detail))
}

func detailToResponse(detail domain.InvestorDetail) investorDetailResponse {
	commitments := make([]commitmentResponse, 0, len(detail.Commitments))
	for _, cm := range detail.Commitments {
		commitments = append(commitments, commitmentResponse{
			AssetClass: cm.AssetClass.String(),
			Amount:     cm.Amount,
			Currency:   cm.Currency.String(),
		})
	}

	return investorDetailResponse{
		ID:                 detail.InvestorID.String(),
		Name:               detail.Name,
		InvestorType:       detail.InvestorType.String(),
		Country:            detail.Country,
		DateAdded:          detail.DateAdded,
		LastUpdated:        detail.LastUpdated,
		Address:            detail.Address,
		Commitments:        commitments,
		TotalCommitmentUsd: detail.TotalCommitmentBase,
	}
}

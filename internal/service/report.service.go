package service

import (
	"context"
	"fmt"
	"sort"

	"investorapi/internal/calculator"
	"investorapi/internal/domain"
	"investorapi/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService computes totals from the stored investors on every call;
// nothing derived is cached or persisted.
type ReportService interface {
	ListSummaries(ctx context.Context) ([]domain.InvestorSummary, error)
	ListSummariesFiltered(ctx context.Context, filter domain.InvestorFilter) ([]domain.InvestorSummary, error)
	GetInvestorDetail(ctx context.Context, investorID string) (*domain.InvestorDetail, error)
	ListDistinctAssetClasses(ctx context.Context) ([]string, error)
	GetPortfolioStatistics(ctx context.Context) (*domain.PortfolioStatistics, error)
}

func NewReportService(
	investorRepository repository.InvestorRepository,
	currencyConverter calculator.CurrencyConverter,
) ReportService {
	return reportServiceHandler{
		InvestorRepository: investorRepository,
		CurrencyConverter:  currencyConverter,
	}
}

type reportServiceHandler struct {
	InvestorRepository repository.InvestorRepository
	CurrencyConverter  calculator.CurrencyConverter
}

func (h reportServiceHandler) listInvestors(ctx context.Context, filter repository.InvestorListFilter) ([]domain.Investor, error) {
	_, endSpan := domain.GetProfile(ctx).StartNewSpan("load investors")
	defer endSpan()

	investors, err := h.InvestorRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list investors: %w", err)
	}
	return investors, nil
}

func (h reportServiceHandler) ListSummaries(ctx context.Context) ([]domain.InvestorSummary, error) {
	investors, err := h.listInvestors(ctx, repository.InvestorListFilter{})
	if err != nil {
		return nil, err
	}

	out := make([]domain.InvestorSummary, 0, len(investors))
	for _, investor := range investors {
		out = append(out, h.summarize(investor, investor.Commitments))
	}
	sortSummaries(out)

	return out, nil
}

func (h reportServiceHandler) ListSummariesFiltered(ctx context.Context, filter domain.InvestorFilter) ([]domain.InvestorSummary, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	listFilter := repository.InvestorListFilter{
		InvestorType: filter.InvestorType,
		AssetClass:   filter.AssetClass,
	}
	if filter.Country != nil {
		country := string(*filter.Country)
		listFilter.Country = &country
	}
	investors, err := h.listInvestors(ctx, listFilter)
	if err != nil {
		return nil, err
	}

	return filterSummaries(investors, filter, h.summarize), nil
}

func filterSummaries(
	investors []domain.Investor,
	filter domain.InvestorFilter,
	summarize func(domain.Investor, []domain.Commitment) domain.InvestorSummary,
) []domain.InvestorSummary {
	out := []domain.InvestorSummary{}
	for _, investor := range investors {
		if !filter.MatchesInvestor(investor) {
			continue
		}

		commitments := []domain.Commitment{}
		for _, c := range investor.Commitments {
			if filter.MatchesCommitment(c) {
				commitments = append(commitments, c)
			}
		}
		if filter.AssetClass != nil && len(commitments) == 0 {
			continue
		}

		summary := summarize(investor, commitments)
		if !filter.MatchesTotal(summary.TotalCommitmentBase) {
			continue
		}
		out = append(out, summary)
	}
	sortSummaries(out)

	return out
}

func (h reportServiceHandler) GetInvestorDetail(ctx context.Context, investorID string) (*domain.InvestorDetail, error) {
	id, err := uuid.Parse(investorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid investor id %q", domain.ErrInvalidInput, investorID)
	}

	investor, err := h.InvestorRepository.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get investor: %w", err)
	}

	return &domain.InvestorDetail{
		Investor:            *investor,
		TotalCommitmentBase: h.CurrencyConverter.TotalInBase(investor.Commitments),
	}, nil
}

func (h reportServiceHandler) ListDistinctAssetClasses(ctx context.Context) ([]string, error) {
	investors, err := h.listInvestors(ctx, repository.InvestorListFilter{})
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	out := []string{}
	for _, investor := range investors {
		for _, c := range investor.Commitments {
			assetClass := c.AssetClass.String()
			if assetClass == "" || seen[assetClass] {
				continue
			}
			seen[assetClass] = true
			out = append(out, assetClass)
		}
	}
	sort.Strings(out)

	return out, nil
}

func (h reportServiceHandler) GetPortfolioStatistics(ctx context.Context) (*domain.PortfolioStatistics, error) {
	investors, err := h.listInvestors(ctx, repository.InvestorListFilter{})
	if err != nil {
		return nil, err
	}

	return computePortfolioStatistics(investors, h.CurrencyConverter), nil
}

func computePortfolioStatistics(investors []domain.Investor, converter calculator.CurrencyConverter) *domain.PortfolioStatistics {
	out := &domain.PortfolioStatistics{
		UniqueCountries:           []string{},
		TotalCommitmentAmountBase: decimal.Zero,
		BaseCurrency:              converter.BaseCurrency(),
	}

	seenCountries := map[string]bool{}
	for _, investor := range investors {
		out.TotalInvestors++
		out.TotalCommitments += len(investor.Commitments)
		out.TotalCommitmentAmountBase = out.TotalCommitmentAmountBase.Add(
			converter.TotalInBase(investor.Commitments),
		)
		if !seenCountries[investor.Country] {
			seenCountries[investor.Country] = true
			out.UniqueCountries = append(out.UniqueCountries, investor.Country)
		}
	}
	sort.Strings(out.UniqueCountries)
	out.UniqueCountriesCount = len(out.UniqueCountries)

	return out
}

func (h reportServiceHandler) summarize(investor domain.Investor, commitments []domain.Commitment) domain.InvestorSummary {
	return domain.InvestorSummary{
		InvestorID:          investor.InvestorID,
		Name:                investor.Name,
		InvestorType:        investor.InvestorType,
		Country:             investor.Country,
		DateAdded:           investor.DateAdded,
		Address:             investor.Address,
		TotalCommitmentBase: h.CurrencyConverter.TotalInBase(commitments),
		CommitmentCount:     len(commitments),
	}
}

// sortSummaries orders by base-currency total, largest first. Equal totals
// keep their stored order.
func sortSummaries(summaries []domain.InvestorSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalCommitmentBase.GreaterThan(summaries[j].TotalCommitmentBase)
	})
}

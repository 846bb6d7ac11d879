package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"investorapi/internal/domain"
	"investorapi/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	columnInvestorName        = "Investor Name"
	columnInvestorType        = "Investory Type" // upstream export misspells this header
	columnInvestorCountry     = "Investor Country"
	columnInvestorDateAdded   = "Investor Date Added"
	columnInvestorLastUpdated = "Investor Last Updated"
	columnInvestorAddress     = "Investor Address"
	columnAssetClass          = "Commitment Asset Class"
	columnAmount              = "Commitment Amount"
	columnCurrency            = "Commitment Currency"
)

var requiredColumns = []string{
	columnInvestorName,
	columnInvestorType,
	columnInvestorCountry,
	columnInvestorDateAdded,
	columnInvestorLastUpdated,
	columnAssetClass,
	columnAmount,
	columnCurrency,
}

var utf8Bom = []byte("\xef\xbb\xbf")

type investorCsvRow struct {
	InvestorName string `csv:"Investor Name"`
	InvestorType string `csv:"Investory Type"`
	Country      string `csv:"Investor Country"`
	DateAdded    string `csv:"Investor Date Added"`
	LastUpdated  string `csv:"Investor Last Updated"`
	Address      string `csv:"Investor Address"`
	AssetClass   string `csv:"Commitment Asset Class"`
	Amount       string `csv:"Commitment Amount"`
	Currency     string `csv:"Commitment Currency"`
}

type parsedInvestors struct {
	Investors        []domain.Investor
	TotalCommitments int
}

// parseInvestorCsv groups commitment rows into investors keyed by trimmed
// name, in first-seen order. The first row for a name decides the investor's
// type, country, dates and address.
//
// Unparseable dates are replaced with now. Unknown investor types, asset
// classes or currencies and bad amounts fail the whole file.
func parseInvestorCsv(content []byte, now time.Time, log *zap.SugaredLogger) (*parsedInvestors, error) {
	content = bytes.TrimPrefix(content, utf8Bom)
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: file is not valid UTF-8", domain.ErrInvalidInput)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return &parsedInvestors{Investors: []domain.Investor{}}, nil
	}

	if err := checkRequiredColumns(content); err != nil {
		return nil, err
	}

	rows := []investorCsvRow{}
	if err := gocsv.UnmarshalBytes(content, &rows); err != nil {
		return nil, fmt.Errorf("%w: malformed csv: %s", domain.ErrInvalidInput, err.Error())
	}

	out := &parsedInvestors{Investors: []domain.Investor{}}
	indexByName := map[string]int{}
	for i, row := range rows {
		rowNumber := i + 1
		name := strings.TrimSpace(row.InvestorName)

		commitment, err := commitmentFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", rowNumber, name, err)
		}
		investorType, err := domain.ParseInvestorType(row.InvestorType)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", rowNumber, name, err)
		}

		idx, ok := indexByName[name]
		if !ok {
			dateAdded, ok := util.ParseDateWithFallback(row.DateAdded, now)
			if !ok {
				log.Debugw("unparseable date added, using processing time", "row", rowNumber, "value", row.DateAdded)
			}
			lastUpdated, ok := util.ParseDateWithFallback(row.LastUpdated, now)
			if !ok {
				log.Debugw("unparseable last updated, using processing time", "row", rowNumber, "value", row.LastUpdated)
			}

			country := strings.TrimSpace(row.Country)
			address := strings.TrimSpace(row.Address)
			if address == "" {
				address = mockAddress(country, name)
			}

			idx = len(out.Investors)
			indexByName[name] = idx
			out.Investors = append(out.Investors, domain.Investor{
				Name:         name,
				InvestorType: investorType,
				Country:      country,
				DateAdded:    dateAdded,
				LastUpdated:  lastUpdated,
				Address:      &address,
				Commitments:  []domain.Commitment{},
			})
		}

		out.Investors[idx].Commitments = append(out.Investors[idx].Commitments, *commitment)
		out.TotalCommitments++
	}

	return out, nil
}

func commitmentFromRow(row investorCsvRow) (*domain.Commitment, error) {
	assetClass, err := domain.ParseAssetClass(row.AssetClass)
	if err != nil {
		return nil, err
	}
	currency, err := domain.ParseCurrency(row.Currency)
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount %q", domain.ErrInvalidInput, row.Amount)
	}

	return &domain.Commitment{
		AssetClass: assetClass,
		Amount:     amount,
		Currency:   currency,
	}, nil
}

func checkRequiredColumns(content []byte) error {
	header, err := gocsv.DefaultCSVReader(bytes.NewReader(content)).Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: missing header row", domain.ErrInvalidInput)
	} else if err != nil {
		return fmt.Errorf("%w: malformed csv header: %s", domain.ErrInvalidInput, err.Error())
	}

	present := map[string]bool{}
	for _, h := range header {
		present[h] = true
	}
	missing := []string{}
	for _, c := range requiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required columns: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}

	return nil
}

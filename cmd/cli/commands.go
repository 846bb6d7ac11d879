package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"investorapi/cmd"
	"investorapi/internal/domain"

	"github.com/spf13/cobra"
)

func newIngestCommand(deps func() *cmd.Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file.csv>",
		Short: "Replace the stored investors with the contents of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			result, err := deps().IngestService.UploadCSV(c.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "%s: %d investors, %d commitments\n",
				result.Message, result.TotalInvestors, result.TotalCommitments)
			return nil
		},
	}
}

type summaryFlags struct {
	assetClass   string
	investorType string
	country      string
}

func (f summaryFlags) toFilter() (*domain.InvestorFilter, error) {
	filter := domain.InvestorFilter{}
	if f.assetClass != "" {
		v, err := domain.ParseAssetClass(f.assetClass)
		if err != nil {
			return nil, err
		}
		filter.AssetClass = &v
	}
	if f.investorType != "" {
		v, err := domain.ParseInvestorType(f.investorType)
		if err != nil {
			return nil, err
		}
		filter.InvestorType = &v
	}
	if f.country != "" {
		v, err := domain.ParseCountry(f.country)
		if err != nil {
			return nil, err
		}
		filter.Country = &v
	}
	return &filter, nil
}

func newSummaryCommand(deps func() *cmd.Dependencies) *cobra.Command {
	flags := summaryFlags{}
	command := &cobra.Command{
		Use:   "summary",
		Short: "List investors by total commitment, largest first",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			filter, err := flags.toFilter()
			if err != nil {
				return err
			}
			summaries, err := deps().ReportService.ListSummariesFiltered(c.Context(), *filter)
			if err != nil {
				return err
			}
			return writeSummaries(c.OutOrStdout(), summaries, deps().Config.Reporting.BaseCurrency)
		},
	}
	command.Flags().StringVar(&flags.assetClass, "asset-class", "", "only count commitments in this asset class")
	command.Flags().StringVar(&flags.investorType, "investor-type", "", "only include this investor type")
	command.Flags().StringVar(&flags.country, "country", "", "only include investors from this country")
	return command
}

func newStatsCommand(deps func() *cmd.Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print portfolio-wide statistics",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			stats, err := deps().ReportService.GetPortfolioStatistics(c.Context())
			if err != nil {
				return err
			}
			return writeStats(c.OutOrStdout(), *stats)
		},
	}
}

func writeSummaries(out io.Writer, summaries []domain.InvestorSummary, baseCurrency string) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tCOUNTRY\tCOMMITMENTS\tTOTAL")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			s.Name,
			s.InvestorType,
			s.Country,
			s.CommitmentCount,
			formatMoney(s.TotalCommitmentBase, baseCurrency),
		)
	}
	return w.Flush()
}

func writeStats(out io.Writer, stats domain.PortfolioStatistics) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Investors\t%d\n", stats.TotalInvestors)
	fmt.Fprintf(w, "Commitments\t%d\n", stats.TotalCommitments)
	fmt.Fprintf(w, "Countries\t%d\n", stats.UniqueCountriesCount)
	for _, country := range stats.UniqueCountries {
		fmt.Fprintf(w, "\t%s\n", country)
	}
	fmt.Fprintf(w, "Total committed\t%s\n", formatMoney(stats.TotalCommitmentAmountBase, stats.BaseCurrency))
	return w.Flush()
}

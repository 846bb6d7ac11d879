package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"investorapi/internal/db/models/postgres/public/model"
	"investorapi/internal/domain"
	mock_repository "investorapi/internal/repository/mocks"
	"investorapi/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const csvHeader = "Investor Name,Investory Type,Investor Country,Investor Date Added,Investor Last Updated,Commitment Asset Class,Commitment Amount,Commitment Currency\n"

const sampleCsv = csvHeader +
	"Ioo Gryffindor fund,fund manager,Singapore,2000-07-06,2024-02-21,Infrastructure,15000000,GBP\n" +
	"Ibx Skywalker ltd,asset manager,United States,1997-07-21,2024-02-21,Infrastructure,31000000,GBP\n" +
	" Ioo Gryffindor fund ,fund manager,Singapore,2000-07-06,2024-02-21,Hedge Funds,52000000,GBP\n" +
	"Ibx Skywalker ltd,asset manager,United States,1997-07-21,2024-02-21,Real Estate,42000000.50,USD\n" +
	"Ioo Gryffindor fund,fund manager,Singapore,2000-07-06,2024-02-21,Private Equity,1000,USD\n"

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func newTestIngestHandler(ctrl *gomock.Controller) (ingestServiceHandler, *mock_repository.MockInvestorRepository) {
	repo := mock_repository.NewMockInvestorRepository(ctrl)
	return ingestServiceHandler{
		InvestorRepository: repo,
		Now:                func() time.Time { return fixedNow },
		mu:                 &sync.Mutex{},
	}, repo
}

func decimalComparer() cmp.Option {
	return cmp.Comparer(func(a, b decimal.Decimal) bool {
		return a.Equal(b)
	})
}

func Test_ingestServiceHandler_UploadCSV(t *testing.T) {
	t.Run("groups rows by trimmed name in first-seen order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, repo := newTestIngestHandler(ctrl)

		var stored []domain.Investor
		repo.EXPECT().
			ReplaceAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, investors []domain.Investor) error {
				stored = investors
				return nil
			})

		result, err := handler.UploadCSV(context.Background(), strings.NewReader(sampleCsv))
		require.NoError(t, err)
		require.Equal(t, &domain.UploadResult{
			Message:          "CSV data uploaded successfully",
			TotalInvestors:   2,
			TotalCommitments: 5,
			Success:          true,
		}, result)

		require.Len(t, stored, 2)
		gryffindor := stored[0]
		require.Equal(t, "Ioo Gryffindor fund", gryffindor.Name)
		require.Equal(t, model.InvestorType_FundManager, gryffindor.InvestorType)
		require.Equal(t, "Singapore", gryffindor.Country)
		require.Equal(t, util.NewDate(2000, 7, 6), gryffindor.DateAdded)
		require.Equal(t, util.NewDate(2024, 2, 21), gryffindor.LastUpdated)
		require.NotNil(t, gryffindor.Address)
		require.Equal(t, mockAddress("Singapore", "Ioo Gryffindor fund"), *gryffindor.Address)
		require.Equal(t, "", cmp.Diff(
			[]domain.Commitment{
				{AssetClass: model.AssetClass_Infrastructure, Amount: decimal.NewFromInt(15000000), Currency: model.Currency_GBP},
				{AssetClass: model.AssetClass_HedgeFunds, Amount: decimal.NewFromInt(52000000), Currency: model.Currency_GBP},
				{AssetClass: model.AssetClass_PrivateEquity, Amount: decimal.NewFromInt(1000), Currency: model.Currency_USD},
			},
			gryffindor.Commitments,
			decimalComparer(),
		))

		skywalker := stored[1]
		require.Equal(t, "Ibx Skywalker ltd", skywalker.Name)
		require.Len(t, skywalker.Commitments, 2)
		require.Equal(t, "42000000.5", skywalker.Commitments[1].Amount.String())
	})

	t.Run("keeps provided address and first row's metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, repo := newTestIngestHandler(ctrl)

		csv := "Investor Name,Investory Type,Investor Country,Investor Date Added,Investor Last Updated,Investor Address,Commitment Asset Class,Commitment Amount,Commitment Currency\n" +
			"Mjd Jedi fund,bank,United Kingdom,06/08/2010,2024-02-21,1 Downing Street,Private Debt,10,GBP\n" +
			"Mjd Jedi fund,wealth manager,China,2011-01-01,2024-02-22,,Real Estate,20,USD\n"

		var stored []domain.Investor
		repo.EXPECT().
			ReplaceAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, investors []domain.Investor) error {
				stored = investors
				return nil
			})

		_, err := handler.UploadCSV(context.Background(), strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, stored, 1)
		require.Equal(t, "1 Downing Street", *stored[0].Address)
		require.Equal(t, model.InvestorType_Bank, stored[0].InvestorType)
		require.Equal(t, "United Kingdom", stored[0].Country)
		require.Equal(t, util.NewDate(2010, 6, 8), stored[0].DateAdded)
		require.Len(t, stored[0].Commitments, 2)
	})

	t.Run("unparseable dates fall back to processing time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, repo := newTestIngestHandler(ctrl)

		csv := csvHeader + "Fbe Wizard fund,bank,China,06.07.2000,not a date,Natural Resources,5,USD\n"

		var stored []domain.Investor
		repo.EXPECT().
			ReplaceAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, investors []domain.Investor) error {
				stored = investors
				return nil
			})

		result, err := handler.UploadCSV(context.Background(), strings.NewReader(csv))
		require.NoError(t, err)
		require.Equal(t, 1, result.TotalInvestors)
		require.Equal(t, fixedNow, stored[0].DateAdded)
		require.Equal(t, fixedNow, stored[0].LastUpdated)
	})

	t.Run("us dates without leading zeros are kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, repo := newTestIngestHandler(ctrl)

		csv := csvHeader + "Fbe Wizard fund,bank,China,3/7/2023,2023-3-7,Natural Resources,5,USD\n"

		var stored []domain.Investor
		repo.EXPECT().
			ReplaceAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, investors []domain.Investor) error {
				stored = investors
				return nil
			})

		_, err := handler.UploadCSV(context.Background(), strings.NewReader(csv))
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2023, 3, 7), stored[0].DateAdded)
		require.Equal(t, util.NewDate(2023, 3, 7), stored[0].LastUpdated)
	})

	t.Run("invalid enum values abort the whole upload", func(t *testing.T) {
		badRows := map[string]string{
			"asset class":   "Zed fund,bank,China,2000-01-01,2000-01-01,Crypto,5,USD\n",
			"currency":      "Zed fund,bank,China,2000-01-01,2000-01-01,Real Estate,5,EUR\n",
			"investor type": "Zed fund,pension,China,2000-01-01,2000-01-01,Real Estate,5,USD\n",
			"amount":        "Zed fund,bank,China,2000-01-01,2000-01-01,Real Estate,five,USD\n",
			"case mismatch": "Zed fund,bank,China,2000-01-01,2000-01-01,real estate,5,USD\n",
		}
		for name, row := range badRows {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				handler, _ := newTestIngestHandler(ctrl)

				// valid rows first, so nothing may be persisted before the bad one is seen
				csv := sampleCsv + row
				_, err := handler.UploadCSV(context.Background(), strings.NewReader(csv))
				require.Error(t, err)
				require.True(t, errors.Is(err, domain.ErrInvalidInput), err.Error())
				require.Contains(t, err.Error(), "row 6")
			})
		}
	})

	t.Run("missing required columns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _ := newTestIngestHandler(ctrl)

		csv := "Investor Name,Investor Type,Investor Country\nA,bank,China\n"
		_, err := handler.UploadCSV(context.Background(), strings.NewReader(csv))
		require.True(t, errors.Is(err, domain.ErrInvalidInput))
		require.Contains(t, err.Error(), "Investory Type")
		require.Contains(t, err.Error(), "Commitment Amount")
	})

	t.Run("ragged rows are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _ := newTestIngestHandler(ctrl)

		_, err := handler.UploadCSV(context.Background(), strings.NewReader(csvHeader+"A,bank\n"))
		require.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _ := newTestIngestHandler(ctrl)

		_, err := handler.UploadCSV(context.Background(), strings.NewReader(csvHeader+"\xff\xfe,bank\n"))
		require.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("empty input succeeds with zero counts", func(t *testing.T) {
		for name, csv := range map[string]string{"empty": "", "whitespace": " \n", "header only": csvHeader} {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				handler, repo := newTestIngestHandler(ctrl)
				repo.EXPECT().ReplaceAll(gomock.Any(), []domain.Investor{}).Return(nil)

				result, err := handler.UploadCSV(context.Background(), strings.NewReader(csv))
				require.NoError(t, err)
				require.True(t, result.Success)
				require.Equal(t, 0, result.TotalInvestors)
				require.Equal(t, 0, result.TotalCommitments)
			})
		}
	})

	t.Run("byte order mark is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, repo := newTestIngestHandler(ctrl)
		repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Len(2)).Return(nil)

		result, err := handler.UploadCSV(context.Background(), strings.NewReader("\xef\xbb\xbf"+sampleCsv))
		require.NoError(t, err)
		require.Equal(t, 5, result.TotalCommitments)
	})

	t.Run("re-uploading the same file replaces with identical data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, repo := newTestIngestHandler(ctrl)

		uploads := [][]domain.Investor{}
		repo.EXPECT().
			ReplaceAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, investors []domain.Investor) error {
				uploads = append(uploads, investors)
				return nil
			}).
			Times(2)

		first, err := handler.UploadCSV(context.Background(), strings.NewReader(sampleCsv))
		require.NoError(t, err)
		second, err := handler.UploadCSV(context.Background(), strings.NewReader(sampleCsv))
		require.NoError(t, err)

		require.Equal(t, first, second)
		require.Equal(t, "", cmp.Diff(uploads[0], uploads[1], decimalComparer()))
	})

	t.Run("storage failure is not a client error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, repo := newTestIngestHandler(ctrl)
		repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := handler.UploadCSV(context.Background(), strings.NewReader(sampleCsv))
		require.Error(t, err)
		require.False(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("concurrent uploads replace one at a time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, repo := newTestIngestHandler(ctrl)

		var (
			inFlight int32
			peak     int32
		)
		started := make(chan struct{}, 2)
		release := make(chan struct{})
		repo.EXPECT().
			ReplaceAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, investors []domain.Investor) error {
				n := atomic.AddInt32(&inFlight, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				started <- struct{}{}
				<-release
				atomic.AddInt32(&inFlight, -1)
				return nil
			}).
			Times(2)

		errs := make(chan error, 2)
		for i := 0; i < 2; i++ {
			go func() {
				_, err := handler.UploadCSV(context.Background(), strings.NewReader(sampleCsv))
				errs <- err
			}()
		}

		<-started
		// give the second upload time to reach the repository if it were not blocked
		select {
		case <-started:
			t.Fatal("second upload reached the repository while the first was in flight")
		case <-time.After(100 * time.Millisecond):
		}
		close(release)

		for i := 0; i < 2; i++ {
			select {
			case err := <-errs:
				require.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("upload did not finish")
			}
		}
		require.Equal(t, int32(1), atomic.LoadInt32(&peak))
	})
}

func Test_mockAddress(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, mockAddress("China", "Fbe Wizard fund"), mockAddress("China", "Fbe Wizard fund"))
	})

	t.Run("uses country streets", func(t *testing.T) {
		require.True(t, strings.HasSuffix(mockAddress("China", "Fbe Wizard fund"), "Hong Kong"))
		require.True(t, strings.HasSuffix(mockAddress("United Kingdom", "x"), "London"))
	})

	t.Run("unknown country", func(t *testing.T) {
		require.True(t, strings.HasSuffix(mockAddress("France", "x"), " Main Street, France"))
	})
}

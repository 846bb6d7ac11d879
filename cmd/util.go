package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"investorapi/api"
	"investorapi/internal/repository"
	"investorapi/internal/service"
	"investorapi/internal/util"

	_ "github.com/lib/pq"
)

type Dependencies struct {
	Config        *util.Config
	Db            *sql.DB
	IngestService service.IngestService
	ReportService service.ReportService
}

func (d Dependencies) ApiHandler() *api.ApiHandler {
	return &api.ApiHandler{
		IngestService:  d.IngestService,
		ReportService:  d.ReportService,
		AllowedOrigins: d.Config.Server.AllowedOrigins,
		MaxUploadBytes: d.Config.Server.MaxUploadBytes,
	}
}

func CloseDependencies(deps *Dependencies) {
	err := deps.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*Dependencies, error) {
	config, err := util.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	currencyConverter, err := config.Reporting.CurrencyConverter()
	if err != nil {
		return nil, fmt.Errorf("failed to build currency converter: %w", err)
	}

	dbConn, err := sql.Open("postgres", config.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	investorRepository := repository.NewInvestorRepository(dbConn)

	return &Dependencies{
		Config:        config,
		Db:            dbConn,
		IngestService: service.NewIngestService(investorRepository),
		ReportService: service.NewReportService(investorRepository, *currencyConverter),
	}, nil
}

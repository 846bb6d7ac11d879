package integration_tests

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"investorapi/api"
	"investorapi/internal/calculator"
	"investorapi/internal/repository"
	"investorapi/internal/service"
	"investorapi/internal/util"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
)

// newTestEngine wires the real repository and services against the test
// database, the same way cmd.InitializeDependencies does for production.
func newTestEngine(db *sql.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := util.DefaultConfig()
	investorRepository := repository.NewInvestorRepository(db)
	handler := api.ApiHandler{
		IngestService:  service.NewIngestService(investorRepository),
		ReportService:  service.NewReportService(investorRepository, calculator.NewDefaultCurrencyConverter()),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
	}
	return handler.InitializeRouterEngine()
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func decodeResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		errResponse := ErrorResponse{}
		_ = json.Unmarshal(responseBody, &errResponse)
		return fmt.Errorf("status %d: %s", resp.StatusCode, errResponse.Error)
	}

	return json.Unmarshal(responseBody, target)
}

func hitEndpoint(baseUrl, route string, target interface{}) error {
	resp, err := http.Get(baseUrl + "/" + route)
	if err != nil {
		return err
	}
	return decodeResponse(resp, target)
}

func uploadFile(baseUrl, path string, target interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := part.Write(content); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	resp, err := http.Post(baseUrl+"/investors/upload-csv", writer.FormDataContentType(), body)
	if err != nil {
		return err
	}
	return decodeResponse(resp, target)
}

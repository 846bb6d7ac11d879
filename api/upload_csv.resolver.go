package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"investorapi/internal/domain"

	"github.com/gin-gonic/gin"
)

const uploadFormField = "file"

type uploadCsvResponse struct {
	Message          string `json:"message"`
	TotalInvestors   int    `json:"total_investors"`
	TotalCommitments int    `json:"total_commitments"`
	Success          bool   `json:"success"`
}

func (m ApiHandler) uploadCsv(c *gin.Context) {
	if m.MaxUploadBytes > 0 {
		// leave headroom for the multipart envelope, the file itself is checked below
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, m.MaxUploadBytes+1<<20)
	}

	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		returnErrorJson(fmt.Errorf("%w: multipart field %q is required: %s", domain.ErrInvalidInput, uploadFormField, err.Error()), c)
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		returnErrorJson(fmt.Errorf("%w: only CSV files are allowed", domain.ErrInvalidInput), c)
		return
	}
	if m.MaxUploadBytes > 0 && fileHeader.Size > m.MaxUploadBytes {
		returnErrorJson(fmt.Errorf("%w: file is %d bytes, limit is %d", domain.ErrInvalidInput, fileHeader.Size, m.MaxUploadBytes), c)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to open uploaded file: %w", err), c)
		return
	}
	defer f.Close()

	var in io.Reader = f
	if m.MaxUploadBytes > 0 {
		in = io.LimitReader(f, m.MaxUploadBytes)
	}

	result, err := m.IngestService.UploadCSV(c.Request.Context(), in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, uploadCsvResponse{
		Message:          result.Message,
		TotalInvestors:   result.TotalInvestors,
		TotalCommitments: result.TotalCommitments,
		Success:          result.Success,
	})
}

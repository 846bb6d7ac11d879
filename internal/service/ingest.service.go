package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"investorapi/internal/domain"
	"investorapi/internal/logger"
	"investorapi/internal/repository"
)

type IngestService interface {
	// UploadCSV replaces every stored investor with the contents of the
	// CSV. Nothing is written unless the whole file is valid.
	UploadCSV(ctx context.Context, in io.Reader) (*domain.UploadResult, error)
}

func NewIngestService(investorRepository repository.InvestorRepository) IngestService {
	return ingestServiceHandler{
		InvestorRepository: investorRepository,
		Now:                time.Now,
		mu:                 &sync.Mutex{},
	}
}

type ingestServiceHandler struct {
	InvestorRepository repository.InvestorRepository
	Now                func() time.Time
	// one upload at a time per process; the repository's table lock
	// covers other processes
	mu *sync.Mutex
}

func (h ingestServiceHandler) UploadCSV(ctx context.Context, in io.Reader) (*domain.UploadResult, error) {
	log := logger.FromContext(ctx)
	profile := domain.GetProfile(ctx)

	_, endSpan := profile.StartNewSpan("read upload")
	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	_, endSpan = profile.StartNewSpan("parse csv")
	parsed, err := parseInvestorCsv(content, h.Now().UTC(), log)
	if err != nil {
		log.Warnw("rejected csv upload", "error", err)
		return nil, err
	}

	_, endSpan = profile.StartNewSpan("wait for upload lock")
	h.mu.Lock()
	defer h.mu.Unlock()

	_, endSpan = profile.StartNewSpan("replace investors")
	err = h.InvestorRepository.ReplaceAll(ctx, parsed.Investors)
	endSpan()
	if err != nil {
		log.Errorw("failed to store uploaded investors", "error", err)
		return nil, fmt.Errorf("failed to replace investors: %w", err)
	}

	log.Infow("uploaded investors",
		"investors", len(parsed.Investors),
		"commitments", parsed.TotalCommitments,
	)

	return &domain.UploadResult{
		Message:          "CSV data uploaded successfully",
		TotalInvestors:   len(parsed.Investors),
		TotalCommitments: parsed.TotalCommitments,
		Success:          true,
	}, nil
}

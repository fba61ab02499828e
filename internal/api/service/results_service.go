package service

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/repository"
	"errors"
)

var ErrLedgerDisabled = errors.New("results ledger is disabled")

//go:generate mockgen -source=results_service.go -destination=mocks/mock_results_service.go -package=mocks

// ResultsService exposes the finished-game ledger.
type ResultsService interface {
	Recent(ctx context.Context, limit int) ([]repository.Result, error)
}

type resultsService struct {
	repo repository.ResultsRepository
}

// NewResultsService creates a ResultsService. A nil repo means the ledger is
// switched off and every call returns ErrLedgerDisabled.
func NewResultsService(repo repository.ResultsRepository) ResultsService {
	return &resultsService{repo: repo}
}

func (s *resultsService) Recent(ctx context.Context, limit int) ([]repository.Result, error) {
	if s.repo == nil {
		return nil, ErrLedgerDisabled
	}
	return s.repo.Recent(ctx, limit)
}

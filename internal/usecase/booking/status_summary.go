package booking

import (
	"context"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
)

type StatusSummaryResult struct {
	WorkingStatus []domain.StatusCount   `json:"workingStatus"`
	Category      []domain.CategoryCount `json:"category"`
}

type StatusSummary struct {
	repo domain.Repository
}

func NewStatusSummary(repo domain.Repository) *StatusSummary {
	return &StatusSummary{repo: repo}
}

func (uc *StatusSummary) Execute(ctx context.Context) (*StatusSummaryResult, error) {
	byStatus, err := uc.repo.CountByWorkingStatus(ctx)
	if err != nil {
		return nil, err
	}

	byCategory, err := uc.repo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	return &StatusSummaryResult{
		WorkingStatus: byStatus,
		Category:      byCategory,
	}, nil
}

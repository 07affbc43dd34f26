package service

import (
	"context"
	"fmt"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/repo"
)

// CompostService serves the classroom compost experiment data and derives the
// control/compost pairing the comparison charts plot.
type CompostService struct {
	repo repo.CompostLogRepo
}

// NewCompostService constructs a CompostService backed by the provided CompostLogRepo.
func NewCompostService(r repo.CompostLogRepo) *CompostService {
	return &CompostService{repo: r}
}

// List returns all measurements ordered by log date ascending.
func (s *CompostService) List(ctx context.Context) ([]domain.CompostLog, error) {
	logs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CompostService.List: %w", err)
	}
	return logs, nil
}

// Pairs returns the measurements grouped per calendar date, one pair per
// date with the control and compost arms side by side. The pairing is a
// derived view; nothing is stored. When one arm logged twice on the same
// date, the later row in list order wins.
func (s *CompostService) Pairs(ctx context.Context) ([]domain.CompostPair, error) {
	logs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CompostService.Pairs: %w", err)
	}
	return PairLogs(logs), nil
}

// PairLogs groups logs by date across the two experiment arms, preserving
// the incoming date order.
func PairLogs(logs []domain.CompostLog) []domain.CompostPair {
	var pairs []domain.CompostPair
	index := make(map[string]int)

	for i := range logs {
		l := logs[i]
		key := l.LogDate.Format("2006-01-02")

		at, ok := index[key]
		if !ok {
			pairs = append(pairs, domain.CompostPair{Date: l.LogDate})
			at = len(pairs) - 1
			index[key] = at
		}

		switch l.Arm {
		case domain.ArmCompost:
			pairs[at].Compost = &logs[i]
		default:
			pairs[at].Control = &logs[i]
		}
	}
	return pairs
}

package memory

import (
	"context"
	"sort"
	"sync"

	"cybershield-service/internal/domain"
)

// IncidentStore is a map-backed implementation of app.IncidentStore.
type IncidentStore struct {
	mu      sync.RWMutex
	reports []domain.IncidentReport
}

func NewIncidentStore() *IncidentStore {
	return &IncidentStore{}
}

func (s *IncidentStore) Create(_ context.Context, report *domain.IncidentReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, *report)
	return nil
}

func (s *IncidentStore) ListByUser(_ context.Context, userID string) ([]domain.IncidentReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var reports []domain.IncidentReport
	for _, report := range s.reports {
		if report.UserID == userID {
			reports = append(reports, report)
		}
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}

func (s *IncidentStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports), nil
}

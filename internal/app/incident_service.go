package app

import (
	"context"
	"fmt"
	"time"

	"cybershield-service/internal/domain"

	"github.com/google/uuid"
)

var validSeverities = map[string]bool{
	"low": true, "medium": true, "high": true, "critical": true,
}

// IncidentService files and lists cyber incident reports.
type IncidentService struct {
	incidents IncidentStore
}

func NewIncidentService(incidents IncidentStore) *IncidentService {
	return &IncidentService{incidents: incidents}
}

// Report validates and files a new incident report. New reports open in
// status "open".
func (s *IncidentService) Report(ctx context.Context, userID string, report domain.IncidentReport) (domain.IncidentReport, error) {
	if report.Title == "" || report.Description == "" || report.IncidentType == "" || report.AffectedAreas == "" {
		return domain.IncidentReport{}, fmt.Errorf("%w: missing required fields", domain.ErrInvalidReport)
	}
	if !validSeverities[report.Severity] {
		return domain.IncidentReport{}, fmt.Errorf("%w: unknown severity %q", domain.ErrInvalidReport, report.Severity)
	}

	now := time.Now().UTC()
	report.ID = uuid.NewString()
	report.UserID = userID
	report.Status = "open"
	report.CreatedAt = now
	report.UpdatedAt = now
	if err := s.incidents.Create(ctx, &report); err != nil {
		return domain.IncidentReport{}, err
	}
	return report, nil
}

// ListByUser returns the caller's reports, newest first.
func (s *IncidentService) ListByUser(ctx context.Context, userID string) ([]domain.IncidentReport, error) {
	return s.incidents.ListByUser(ctx, userID)
}

package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"cybershield-service/internal/domain"

	"github.com/uptrace/bun"
)

// IncidentStore is the bun-backed implementation of app.IncidentStore.
type IncidentStore struct {
	db *bun.DB
}

func NewIncidentStore(db *bun.DB) *IncidentStore {
	return &IncidentStore{db: db}
}

func (s *IncidentStore) Create(ctx context.Context, report *domain.IncidentReport) error {
	var attachments json.RawMessage
	if len(report.Attachments) > 0 {
		var err error
		attachments, err = json.Marshal(report.Attachments)
		if err != nil {
			return fmt.Errorf("marshal attachments: %w", err)
		}
	}
	row := incidentRow{
		ID:                    report.ID,
		UserID:                report.UserID,
		Title:                 report.Title,
		Description:           report.Description,
		IncidentType:          report.IncidentType,
		AffectedAreas:         report.AffectedAreas,
		Severity:              report.Severity,
		ReportedToAuthorities: report.ReportedToAuthorities,
		Status:                report.Status,
		Attachments:           attachments,
		CreatedAt:             report.CreatedAt,
		UpdatedAt:             report.UpdatedAt,
	}
	if _, err := s.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return fmt.Errorf("insert incident report: %w", err)
	}
	return nil
}

func (s *IncidentStore) ListByUser(ctx context.Context, userID string) ([]domain.IncidentReport, error) {
	var rows []incidentRow
	err := s.db.NewSelect().Model(&rows).
		Where("ir.user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list incident reports: %w", err)
	}
	reports := make([]domain.IncidentReport, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, row.toDomain())
	}
	return reports, nil
}

func (s *IncidentStore) Count(ctx context.Context) (int, error) {
	return s.db.NewSelect().Model((*incidentRow)(nil)).Count(ctx)
}

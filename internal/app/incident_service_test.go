package app_test

import (
	"context"
	"errors"
	"testing"

	"cybershield-service/internal/app"
	"cybershield-service/internal/domain"
	"cybershield-service/internal/infra/memory"
)

func validReport() domain.IncidentReport {
	return domain.IncidentReport{
		Title:         "Phishing email",
		Description:   "Received an email asking for my credentials",
		IncidentType:  "phishing",
		AffectedAreas: "email",
		Severity:      "high",
	}
}

func TestReportIncident(t *testing.T) {
	ctx := context.Background()
	service := app.NewIncidentService(memory.NewIncidentStore())

	report, err := service.Report(ctx, "u1", validReport())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.ID == "" || report.UserID != "u1" || report.Status != "open" {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.CreatedAt.IsZero() {
		t.Fatalf("createdAt must be set")
	}

	listed, err := service.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != report.ID {
		t.Fatalf("expected stored report, got %+v", listed)
	}
}

func TestReportIncidentValidation(t *testing.T) {
	ctx := context.Background()
	service := app.NewIncidentService(memory.NewIncidentStore())

	cases := []struct {
		name   string
		mutate func(*domain.IncidentReport)
	}{
		{"missing title", func(r *domain.IncidentReport) { r.Title = "" }},
		{"missing description", func(r *domain.IncidentReport) { r.Description = "" }},
		{"missing type", func(r *domain.IncidentReport) { r.IncidentType = "" }},
		{"missing affected areas", func(r *domain.IncidentReport) { r.AffectedAreas = "" }},
		{"unknown severity", func(r *domain.IncidentReport) { r.Severity = "catastrophic" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := validReport()
			tc.mutate(&report)
			if _, err := service.Report(ctx, "u1", report); !errors.Is(err, domain.ErrInvalidReport) {
				t.Fatalf("expected ErrInvalidReport, got %v", err)
			}
		})
	}
}

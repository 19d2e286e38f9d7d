package http

import (
	"encoding/json"
	"net/http"

	"cybershield-service/internal/domain"
)

type incidentRequest struct {
	Title                 string   `json:"title"`
	Description           string   `json:"description"`
	IncidentType          string   `json:"incidentType"`
	AffectedAreas         string   `json:"affectedAreas"`
	Severity              string   `json:"severity"`
	ReportedToAuthorities bool     `json:"reportedToAuthorities"`
	Attachments           []string `json:"attachments"`
}

func (a *API) handleCreateIncident(w http.ResponseWriter, r *http.Request) {
	var req incidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, _ := currentUser(r)
	report, err := a.incidents.Report(r.Context(), user.ID, domain.IncidentReport{
		Title:                 req.Title,
		Description:           req.Description,
		IncidentType:          req.IncidentType,
		AffectedAreas:         req.AffectedAreas,
		Severity:              req.Severity,
		ReportedToAuthorities: req.ReportedToAuthorities,
		Attachments:           req.Attachments,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, report)
}

func (a *API) handleListIncidents(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	reports, err := a.incidents.ListByUser(r.Context(), user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

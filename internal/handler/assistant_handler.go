package handler

import (
	"net/http"
	"strings"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

func (h *Handler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var req GenerateDescriptionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		h.handleError(w, r, domain.NewBadRequestError("title is required to generate description"))
		return
	}

	writeJSON(w, http.StatusOK, GenerateDescriptionResponse{
		Description: h.assistantService.GenerateDescription(r.Context(), req.Title),
	})
}

func (h *Handler) SuggestPriority(w http.ResponseWriter, r *http.Request) {
	var req SuggestPriorityRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		h.handleError(w, r, domain.NewBadRequestError("title and description are required to suggest priority"))
		return
	}

	priority := h.assistantService.SuggestPriority(r.Context(), req.Title, req.Description)
	writeJSON(w, http.StatusOK, SuggestPriorityResponse{Priority: string(priority)})
}

func (h *Handler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	actor, projectID, ok := h.projectIDRequest(w, r)
	if !ok {
		return
	}

	summary, err := h.assistantService.GenerateSummary(r.Context(), actor, projectID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{Summary: summary})
}

func (h *Handler) GenerateWeeklyReport(w http.ResponseWriter, r *http.Request) {
	actor, projectID, ok := h.projectIDRequest(w, r)
	if !ok {
		return
	}

	report, err := h.assistantService.GenerateWeeklyReport(r.Context(), actor, projectID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, WeeklyReportResponse{Report: report})
}

func (h *Handler) projectIDRequest(w http.ResponseWriter, r *http.Request) (domain.Actor, string, bool) {
	actor, ok := h.actor(w, r)
	if !ok {
		return domain.Actor{}, "", false
	}

	var req ProjectIDRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return domain.Actor{}, "", false
	}
	if strings.TrimSpace(req.ProjectID) == "" {
		h.handleError(w, r, domain.NewBadRequestError("projectId is required"))
		return domain.Actor{}, "", false
	}
	return actor, req.ProjectID, true
}

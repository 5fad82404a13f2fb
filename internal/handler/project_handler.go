package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		h.handleError(w, r, domain.NewBadRequestError("title is required"))
		return
	}

	project, err := h.projectService.Create(r.Context(), actor, req.Title, req.Description)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainProjectToHTTP(project))
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	projects, err := h.projectService.List(r.Context(), actor)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainProjectsToHTTP(projects))
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	project, err := h.projectService.Get(r.Context(), actor, chi.URLParam(r, "projectId"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainProjectToHTTP(project))
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		h.handleError(w, r, domain.NewBadRequestError("title must not be empty"))
		return
	}

	project, err := h.projectService.Update(r.Context(), actor, chi.URLParam(r, "projectId"), httpProjectUpdateToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainProjectToHTTP(project))
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	if err := h.projectService.Delete(r.Context(), actor, chi.URLParam(r, "projectId")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AssignMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req AssignMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		h.handleError(w, r, domain.NewBadRequestError("userId is required"))
		return
	}

	project, err := h.projectService.AssignMember(r.Context(), actor, chi.URLParam(r, "projectId"), req.UserID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainProjectToHTTP(project))
}

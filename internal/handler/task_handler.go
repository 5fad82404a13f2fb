package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.AssignedTo) == "" || req.DueDate == nil {
		h.handleError(w, r, domain.NewBadRequestError("title, assignedTo and dueDate are required"))
		return
	}

	task, err := h.taskService.Create(r.Context(), actor, httpTaskToDomain(chi.URLParam(r, "projectId"), req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTaskToHTTP(task))
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.List(r.Context(), actor, chi.URLParam(r, "projectId"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTasksToHTTP(tasks))
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.Get(r.Context(), actor, chi.URLParam(r, "projectId"), chi.URLParam(r, "taskId"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		h.handleError(w, r, domain.NewBadRequestError("title must not be empty"))
		return
	}

	task, err := h.taskService.Update(
		r.Context(),
		actor,
		chi.URLParam(r, "projectId"),
		chi.URLParam(r, "taskId"),
		httpTaskUpdateToDomain(req),
	)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	err := h.taskService.Delete(r.Context(), actor, chi.URLParam(r, "projectId"), chi.URLParam(r, "taskId"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/internal/utils"
	"github.com/MKhiriev/ar-fit/models"
)

type todayTasksResponse struct {
	Tasks    []models.DailyTask `json:"tasks"`
	Progress models.DayProgress `json:"progress"`
}

func (h *Handler) todayTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		writeError(w, r, "*Handler.todayTasks", store.ErrNoSession)
		return
	}

	tasks, err := h.services.TaskService.TodayTasks(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.todayTasks", err)
		return
	}

	utils.WriteJSON(w, todayTasksResponse{
		Tasks:    tasks,
		Progress: h.services.TaskService.Progress(tasks),
	}, http.StatusOK)
}

func (h *Handler) replaceTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		writeError(w, r, "*Handler.replaceTasks", store.ErrNoSession)
		return
	}

	tasks, err := decodeJSON[[]models.DailyTask](w, r)
	if err != nil {
		writeError(w, r, "*Handler.replaceTasks", err)
		return
	}

	if err = h.services.TaskService.ReplaceTasks(r.Context(), userID, tasks); err != nil {
		writeError(w, r, "*Handler.replaceTasks", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	progress, err := h.services.TaskService.ToggleTask(r.Context(), h.services.Session, taskID)
	if err != nil {
		writeError(w, r, "*Handler.toggleTask", err)
		return
	}

	utils.WriteJSON(w, progress, http.StatusOK)
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/application"
	"github.com/aryamhrt/internal-access-management-tools/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ApplicationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandlerImpl struct {
	applicationService application.ApplicationService
}

func NewApplicationHandler(applicationService application.ApplicationService) ApplicationHandler {
	return &ApplicationHandlerImpl{applicationService: applicationService}
}

// List implements ApplicationHandler.
func (h *ApplicationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applicationService.List(r.Context())
	if err != nil {
		slog.Error("List applications service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, apps)
}

// GetByID implements ApplicationHandler.
func (h *ApplicationHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	app, err := h.applicationService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, app)
}

// Create implements ApplicationHandler.
func (h *ApplicationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq application.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create application decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.applicationService.Create(r.Context(), createReq, actor.Email)
	if err != nil {
		slog.Error("Create application service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Application created successfully", created)
}

// Update implements ApplicationHandler.
func (h *ApplicationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq application.UpdateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update application decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.applicationService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update application service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements ApplicationHandler.
func (h *ApplicationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.applicationService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete application service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Application deleted", nil)
}

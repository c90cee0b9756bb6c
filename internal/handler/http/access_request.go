package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/access"
	"github.com/aryamhrt/internal-access-management-tools/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AccessRequestHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type AccessRequestHandlerImpl struct {
	accessService access.AccessService
}

func NewAccessRequestHandler(accessService access.AccessService) AccessRequestHandler {
	return &AccessRequestHandlerImpl{accessService: accessService}
}

// requestFilterFromQuery reads the optional exact-match filters.
func requestFilterFromQuery(r *http.Request) access.RequestFilter {
	var filter access.RequestFilter
	if v := r.URL.Query().Get("status"); v != "" {
		status := access.RequestStatus(v)
		filter.Status = &status
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("application_id"); v != "" {
		filter.ApplicationID = &v
	}
	return filter
}

// List implements AccessRequestHandler.
func (h *AccessRequestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.accessService.ListRequests(r.Context(), actor, requestFilterFromQuery(r))
	if err != nil {
		slog.Error("List access requests service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// GetByID implements AccessRequestHandler.
func (h *AccessRequestHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req, err := h.accessService.GetRequest(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, req)
}

// Create implements AccessRequestHandler.
func (h *AccessRequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq access.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create access request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	// The employee field defaults to the requester themselves.
	if createReq.EmployeeID == "" {
		createReq.EmployeeID = actor.ID
	}

	created, err := h.accessService.CreateRequest(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("Create access request service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Access request submitted", created)
}

// Approve implements AccessRequestHandler.
func (h *AccessRequestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var resolveReq access.ResolveRequestRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&resolveReq); err != nil {
			slog.Error("Approve access request decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	request, grant, err := h.accessService.ApproveRequest(r.Context(), actor, chi.URLParam(r, "id"), resolveReq)
	if err != nil {
		slog.Error("Approve access request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Access request approved", map[string]interface{}{
		"request": request,
		"grant":   grant,
	})
}

// Reject implements AccessRequestHandler.
func (h *AccessRequestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var resolveReq access.ResolveRequestRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&resolveReq); err != nil {
			slog.Error("Reject access request decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	request, err := h.accessService.RejectRequest(r.Context(), actor, chi.URLParam(r, "id"), resolveReq)
	if err != nil {
		slog.Error("Reject access request service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Access request rejected", request)
}

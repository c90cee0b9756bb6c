package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/access"
	"github.com/aryamhrt/internal-access-management-tools/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AccessRegistryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
}

type AccessRegistryHandlerImpl struct {
	accessService access.AccessService
}

func NewAccessRegistryHandler(accessService access.AccessService) AccessRegistryHandler {
	return &AccessRegistryHandlerImpl{accessService: accessService}
}

func grantFilterFromQuery(r *http.Request) access.GrantFilter {
	var filter access.GrantFilter
	if v := r.URL.Query().Get("status"); v != "" {
		status := access.GrantStatus(v)
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

// List implements AccessRegistryHandler.
func (h *AccessRegistryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	grants, err := h.accessService.ListGrants(r.Context(), actor, grantFilterFromQuery(r))
	if err != nil {
		slog.Error("List registry entries service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, grants)
}

// Revoke implements AccessRegistryHandler.
func (h *AccessRegistryHandlerImpl) Revoke(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var revokeReq access.RevokeGrantRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&revokeReq); err != nil {
			slog.Error("Revoke registry entry decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	revoked, err := h.accessService.RevokeGrant(r.Context(), actor, chi.URLParam(r, "id"), revokeReq)
	if err != nil {
		slog.Error("Revoke registry entry service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Access revoked", revoked)
}

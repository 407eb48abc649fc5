package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"hwidstore/internal/api/apierr"
	"hwidstore/internal/api/request"
	"hwidstore/internal/api/response"
	"hwidstore/internal/services/allowlist"
	"hwidstore/internal/services/auth"
)

// AllowlistHandler handles the flat-model verify and manage endpoints
type AllowlistHandler struct {
	allowlist *allowlist.Service
	auth      *auth.Service
}

// NewAllowlistHandler creates a new allow-list handler
func NewAllowlistHandler(allowlist *allowlist.Service, auth *auth.Service) *AllowlistHandler {
	return &AllowlistHandler{
		allowlist: allowlist,
		auth:      auth,
	}
}

// Verify handles POST /api/v1/verify. It is unauthenticated: the HWID
// itself is the credential being tested.
func (h *AllowlistHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.HWID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Missing HWID in request"))
		return
	}

	ok, err := h.allowlist.Authorize(r.Context(), req.HWID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if !ok {
		apierr.WriteError(w, apierr.NewUnauthorizedError("HWID is not authorized"))
		return
	}

	response.JSON(w, http.StatusOK, response.VerifyResponse{Success: true})
}

// Manage handles POST /api/v1/manage. The admin key is carried in the
// request body and checked before the action or HWID are validated.
func (h *AllowlistHandler) Manage(w http.ResponseWriter, r *http.Request) {
	var req request.ManageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.auth.ValidateAdminKey(req.AdminKey); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if req.HWID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Missing HWID in request"))
		return
	}

	var err error
	var message string
	switch req.Action {
	case request.ManageActionAdd:
		err = h.allowlist.Add(r.Context(), req.HWID)
		message = fmt.Sprintf("HWID %s added to allow list", req.HWID)
	case request.ManageActionRemove:
		err = h.allowlist.Remove(r.Context(), req.HWID)
		message = fmt.Sprintf("HWID %s removed from allow list", req.HWID)
	default:
		apierr.WriteError(w, apierr.NewInvalidRequestError("action must be 'add' or 'remove'"))
		return
	}
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ActionResponse{
		Success: true,
		Message: message,
	})
}

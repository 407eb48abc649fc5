package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"hwidstore/internal/api/apierr"
	"hwidstore/internal/api/request"
	"hwidstore/internal/api/response"
	"hwidstore/internal/services/registry"
)

// HwidHandler handles the stateful registry endpoints
type HwidHandler struct {
	registry *registry.Controller
}

// NewHwidHandler creates a new HWID handler
func NewHwidHandler(registry *registry.Controller) *HwidHandler {
	return &HwidHandler{registry: registry}
}

// Submit handles POST /api/v1/hwid
func (h *HwidHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitHwidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.HWID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Missing HWID in request"))
		return
	}

	rec, total, err := h.registry.Upsert(r.Context(), registry.SubmitInput{
		HWID:     req.HWID,
		Executor: req.Executor,
		Player:   req.PlayerInfo(),
		Game:     req.Game,
		System:   req.System,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmitHwidResponse{
		Success:      true,
		Message:      "HWID data stored successfully",
		Timestamp:    rec.LastSeen,
		TotalEntries: total,
	})
}

// Check handles GET /api/v1/hwid/check/{hwid}
func (h *HwidHandler) Check(w http.ResponseWriter, r *http.Request) {
	hwid := mux.Vars(r)["hwid"]

	result, err := h.registry.Check(r.Context(), hwid)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CheckHwidResponse{
		Exists:    result.Exists,
		Allowed:   result.Allowed,
		FirstSeen: result.FirstSeen,
		Executor:  result.Executor,
	})
}

// List handles GET /api/v1/hwid (admin: the full registry document)
func (h *HwidHandler) List(w http.ResponseWriter, r *http.Request) {
	snap, err := h.registry.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, snap)
}

// Allow handles POST /api/v1/hwid/allow/{hwid}
func (h *HwidHandler) Allow(w http.ResponseWriter, r *http.Request) {
	h.setAllowed(w, r, true)
}

// Disallow handles POST /api/v1/hwid/disallow/{hwid}
func (h *HwidHandler) Disallow(w http.ResponseWriter, r *http.Request) {
	h.setAllowed(w, r, false)
}

func (h *HwidHandler) setAllowed(w http.ResponseWriter, r *http.Request, allowed bool) {
	hwid := mux.Vars(r)["hwid"]

	if _, err := h.registry.SetAllowed(r.Context(), hwid, allowed); err != nil {
		apierr.WriteError(w, err)
		return
	}

	state := "allowed"
	if !allowed {
		state = "disallowed"
	}
	response.JSON(w, http.StatusOK, response.ActionResponse{
		Success: true,
		Message: fmt.Sprintf("HWID %s is now %s", hwid, state),
	})
}

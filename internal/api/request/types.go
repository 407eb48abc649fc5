package request

import (
	"strconv"

	"hwidstore/internal/model"
)

// SubmitHwidRequest is the body of POST /api/v1/hwid. Player, game, and
// system are opaque client-submitted blobs; only hwid is required.
type SubmitHwidRequest struct {
	HWID     string         `json:"hwid"`
	Executor string         `json:"executor"`
	Player   map[string]any `json:"player"`
	Game     map[string]any `json:"game"`
	System   map[string]any `json:"system"`
}

// PlayerInfo extracts typed player data from the submitted blob. Clients
// send userId as either a string or a number; both normalize to a string.
func (r *SubmitHwidRequest) PlayerInfo() *model.PlayerInfo {
	if r.Player == nil {
		return nil
	}
	return &model.PlayerInfo{
		UserID:   stringify(r.Player["userId"]),
		Username: stringify(r.Player["username"]),
	}
}

// VerifyRequest is the body of POST /api/v1/verify
type VerifyRequest struct {
	HWID string `json:"hwid"`
}

// Manage actions
const (
	ManageActionAdd    = "add"
	ManageActionRemove = "remove"
)

// ManageRequest is the body of POST /api/v1/manage. The admin key travels
// in the body rather than a header.
type ManageRequest struct {
	Action   string `json:"action"`
	HWID     string `json:"hwid"`
	AdminKey string `json:"adminKey"`
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

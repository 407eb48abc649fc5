package response

import (
	"time"

	"hwidstore/internal/services/stats"
)

// SubmitHwidResponse confirms a stored submission
type SubmitHwidResponse struct {
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	TotalEntries int       `json:"totalEntries"`
}

// CheckHwidResponse reports existence and allowance for a HWID. FirstSeen
// and Executor are only present when the record exists.
type CheckHwidResponse struct {
	Exists    bool       `json:"exists"`
	Allowed   bool       `json:"allowed"`
	FirstSeen *time.Time `json:"firstSeen,omitempty"`
	Executor  string     `json:"executor,omitempty"`
}

// ActionResponse confirms an admin action
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VerifyResponse is the flat-model authorization answer
type VerifyResponse struct {
	Success bool `json:"success"`
}

// StatsResponse is a stats summary plus the server's current time
type StatsResponse struct {
	stats.Summary
	SystemTime time.Time `json:"systemTime"`
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SubmitResult:
		o.printSubmitResult(v)
	case CheckResult:
		o.printCheckResult(v)
	case ActionResult:
		o.printActionResult(v)
	case RegistryDocument:
		o.printRegistry(v)
	case StatsResult:
		o.printStats(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SubmitResult mirrors the submit response
type SubmitResult struct {
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	TotalEntries int       `json:"totalEntries"`
}

// CheckResult mirrors the check response
type CheckResult struct {
	Exists    bool       `json:"exists"`
	Allowed   bool       `json:"allowed"`
	FirstSeen *time.Time `json:"firstSeen"`
	Executor  string     `json:"executor"`
}

// ActionResult mirrors allow/disallow/manage responses
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegistryDocument mirrors the full registry response
type RegistryDocument struct {
	Hwids []RegistryEntry `json:"hwids"`
}

// RegistryEntry is one record in the registry listing
type RegistryEntry struct {
	HWID        string    `json:"hwid"`
	Executor    string    `json:"executor"`
	AccessCount int       `json:"accessCount"`
	Allowed     bool      `json:"allowed"`
	LastSeen    time.Time `json:"lastSeen"`
}

// StatsResult mirrors the stats response
type StatsResult struct {
	TotalCount        int            `json:"totalCount"`
	AllowedCount      int            `json:"allowedCount"`
	ExecutorBreakdown map[string]int `json:"executorBreakdown"`
	RecentlyActive    []ActiveEntry  `json:"recentlyActive"`
	SystemTime        time.Time      `json:"systemTime"`
}

// ActiveEntry is one recently-active record in the stats response
type ActiveEntry struct {
	HWID     string  `json:"hwid"`
	Executor string  `json:"executor"`
	Username string  `json:"username"`
	HoursAgo float64 `json:"hoursAgo"`
}

// HealthResult mirrors the health response
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSubmitResult(v SubmitResult) {
	fmt.Printf("Stored (total entries: %d)\n", v.TotalEntries)
}

func (o *Output) printCheckResult(v CheckResult) {
	if !v.Exists {
		fmt.Println("Unknown HWID")
		return
	}
	state := "disallowed"
	if v.Allowed {
		state = "allowed"
	}
	fmt.Printf("Exists, %s (executor: %s", state, v.Executor)
	if v.FirstSeen != nil {
		fmt.Printf(", first seen: %s", v.FirstSeen.Format(time.RFC3339))
	}
	fmt.Println(")")
}

func (o *Output) printActionResult(v ActionResult) {
	fmt.Println(v.Message)
}

func (o *Output) printRegistry(v RegistryDocument) {
	if len(v.Hwids) == 0 {
		fmt.Println("Registry is empty")
		return
	}
	for _, e := range v.Hwids {
		state := " "
		if e.Allowed {
			state = "+"
		}
		fmt.Printf("[%s] %s  executor=%s  seen=%d  last=%s\n",
			state, e.HWID, e.Executor, e.AccessCount, e.LastSeen.Format(time.RFC3339))
	}
}

func (o *Output) printStats(v StatsResult) {
	fmt.Printf("Total: %d  Allowed: %d\n", v.TotalCount, v.AllowedCount)

	executors := make([]string, 0, len(v.ExecutorBreakdown))
	for name := range v.ExecutorBreakdown {
		executors = append(executors, name)
	}
	sort.Strings(executors)
	for _, name := range executors {
		fmt.Printf("  %s: %d\n", name, v.ExecutorBreakdown[name])
	}

	if len(v.RecentlyActive) > 0 {
		fmt.Println("Recently active:")
		for _, a := range v.RecentlyActive {
			fmt.Printf("  %s (%s, %s) %.1fh ago\n", a.HWID, a.Executor, a.Username, a.HoursAgo)
		}
	}
}

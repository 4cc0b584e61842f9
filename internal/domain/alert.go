package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// AlertKind identifies which detection heuristic produced an alert.
type AlertKind string

const (
	KindThresholdBruteForce  AlertKind = "THRESHOLD_BRUTE_FORCE"
	KindTimeWindowBruteForce AlertKind = "TIME_WINDOW_BRUTE_FORCE"
	KindMultipleUsernames    AlertKind = "MULTIPLE_USERNAMES"
)

// DisplayOrder is the fixed order in which alert kinds appear in reports:
// time-window bursts first, then username reconnaissance, then the plain
// threshold counts.
var DisplayOrder = []AlertKind{
	KindTimeWindowBruteForce,
	KindMultipleUsernames,
	KindThresholdBruteForce,
}

// Alert is a single detector finding for one source IP. Immutable after
// construction; produced by detectors, consumed by the report assembler.
type Alert struct {
	Kind   AlertKind `json:"kind"`
	IP     string    `json:"ip"`
	Metric int       `json:"metric"`

	// WindowStart and WindowMinutes are set only for KindTimeWindowBruteForce.
	WindowStart   time.Time `json:"window_start,omitempty"`
	WindowMinutes int       `json:"window_minutes,omitempty"`

	// Usernames is set only for KindMultipleUsernames, sorted
	// lexicographically and de-duplicated.
	Usernames []string `json:"usernames,omitempty"`
}

// Detail returns a one-line human summary of the alert payload.
func (a *Alert) Detail() string {
	switch a.Kind {
	case KindTimeWindowBruteForce:
		return fmt.Sprintf("%d failed attempts in %d minutes starting %s",
			a.Metric, a.WindowMinutes, a.WindowStart.Format("2006-01-02 15:04:05"))
	case KindMultipleUsernames:
		return fmt.Sprintf("%d distinct usernames: %s", a.Metric, strings.Join(a.Usernames, ", "))
	default:
		return fmt.Sprintf("%d failed attempts", a.Metric)
	}
}

func (a *Alert) ToJSON() ([]byte, error) {
	return json.Marshal(a)
}

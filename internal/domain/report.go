package domain

import "time"

// IPCount pairs a source IP with its failed-login count. Report slices are
// ordered by count descending, IP ascending on ties.
type IPCount struct {
	IP    string `json:"ip"`
	Count int    `json:"count"`
}

// TimeRange is the span of parseable timestamps over all extracted events.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Report is the complete result of one analysis run. Built once by the
// assembler; never mutated afterwards.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	SourcePath  string    `json:"source_path"`

	// TotalEntries counts all extracted events, failures and not.
	TotalEntries int `json:"total_entries"`
	// FailedAttempts counts failure events only.
	FailedAttempts int `json:"failed_attempts"`

	// TimeRange is nil when no event carried a parseable timestamp.
	TimeRange *TimeRange `json:"time_range,omitempty"`

	FailedLoginsByIP []IPCount `json:"failed_logins_by_ip"`

	// Alerts are grouped by kind in DisplayOrder, preserving each
	// detector's internal ordering within a group.
	Alerts []Alert `json:"alerts"`
}

// AlertsOfKind returns the report's alerts for one kind, preserving order.
func (r *Report) AlertsOfKind(kind AlertKind) []Alert {
	var out []Alert
	for _, a := range r.Alerts {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// FailureCount returns the failed-login count recorded for ip, or zero when
// the IP never failed.
func (r *Report) FailureCount(ip string) int {
	for _, c := range r.FailedLoginsByIP {
		if c.IP == ip {
			return c.Count
		}
	}
	return 0
}

package app

import (
	"sort"
	"time"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// AssembleReport merges extracted events and detector outputs into one
// immutable report. It is purely a merge: no detection logic is recomputed
// here, and each detector's internal alert ordering is preserved within its
// kind group.
func AssembleReport(
	events []domain.AuthEvent,
	alertsByKind map[domain.AlertKind][]domain.Alert,
	sourcePath string,
	generatedAt time.Time,
) *domain.Report {
	report := &domain.Report{
		GeneratedAt:  generatedAt,
		SourcePath:   sourcePath,
		TotalEntries: len(events),
	}

	counts := make(map[string]int)
	var minTS, maxTS time.Time

	for _, ev := range events {
		if ev.Failure {
			report.FailedAttempts++
			counts[ev.IP]++
		}
		if !ev.HasTimestamp() {
			continue
		}
		if minTS.IsZero() || ev.Timestamp.Before(minTS) {
			minTS = ev.Timestamp
		}
		if maxTS.IsZero() || ev.Timestamp.After(maxTS) {
			maxTS = ev.Timestamp
		}
	}

	if !minTS.IsZero() {
		report.TimeRange = &domain.TimeRange{Start: minTS, End: maxTS}
	}

	report.FailedLoginsByIP = make([]domain.IPCount, 0, len(counts))
	for ip, count := range counts {
		report.FailedLoginsByIP = append(report.FailedLoginsByIP, domain.IPCount{IP: ip, Count: count})
	}
	sort.Slice(report.FailedLoginsByIP, func(i, j int) bool {
		a, b := report.FailedLoginsByIP[i], report.FailedLoginsByIP[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.IP < b.IP
	})

	for _, kind := range domain.DisplayOrder {
		report.Alerts = append(report.Alerts, alertsByKind[kind]...)
	}

	return report
}

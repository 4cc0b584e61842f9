// Package detection implements the per-IP heuristics that turn one run's
// event sequence into alerts.
//
// Every detector is a pure function of the shared immutable event slice:
// aggregates are built fresh per Detect call and never shared, so the
// analyzer may run all detectors in parallel without locking.
package detection

import (
	"sort"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// ThresholdDetector flags every IP whose total failed-login count meets a
// static minimum, ignoring timing entirely.
type ThresholdDetector struct {
	threshold int
}

func NewThresholdDetector(threshold int) *ThresholdDetector {
	return &ThresholdDetector{threshold: threshold}
}

// Detect groups failure events by IP and flags counts >= threshold.
// A threshold <= 0 flags every IP with at least one failure. Alerts are
// ordered by count descending, then IP ascending.
func (d *ThresholdDetector) Detect(events []domain.AuthEvent) []domain.Alert {
	counts := failureCountsByIP(events)

	minCount := d.threshold
	if minCount <= 0 {
		minCount = 1
	}

	var alerts []domain.Alert
	for ip, count := range counts {
		if count >= minCount {
			alerts = append(alerts, domain.Alert{
				Kind:   domain.KindThresholdBruteForce,
				IP:     ip,
				Metric: count,
			})
		}
	}

	sortByMetricDesc(alerts)
	return alerts
}

func (d *ThresholdDetector) Name() string {
	return "threshold"
}

func (d *ThresholdDetector) Kind() domain.AlertKind {
	return domain.KindThresholdBruteForce
}

// failureCountsByIP is the shared per-IP failure aggregate. Timestamp
// presence is deliberately not required here: failed-count totals include
// events whose timestamp could not be parsed.
func failureCountsByIP(events []domain.AuthEvent) map[string]int {
	counts := make(map[string]int)
	for _, ev := range events {
		if ev.Failure {
			counts[ev.IP]++
		}
	}
	return counts
}

// sortByMetricDesc orders alerts by metric descending with IP ascending as
// the stable tie-break.
func sortByMetricDesc(alerts []domain.Alert) {
	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].Metric != alerts[j].Metric {
			return alerts[i].Metric > alerts[j].Metric
		}
		return alerts[i].IP < alerts[j].IP
	})
}

package detection

import (
	"sort"
	"time"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// TimeWindowDetector finds, for each IP, the densest run of failures inside
// a rolling duration and flags it when the run meets a minimum count.
// Events without a parseable timestamp never participate.
type TimeWindowDetector struct {
	windowMinutes int
	minCount      int
}

func NewTimeWindowDetector(windowMinutes, minCount int) *TimeWindowDetector {
	return &TimeWindowDetector{
		windowMinutes: windowMinutes,
		minCount:      minCount,
	}
}

// Detect slides a half-open window [start, start+window) anchored at every
// timestamped failure of an IP, tracking the maximum count and its earliest
// start. At most one alert per IP is produced, for the densest window.
func (d *TimeWindowDetector) Detect(events []domain.AuthEvent) []domain.Alert {
	byIP := make(map[string][]time.Time)
	for _, ev := range events {
		if ev.Failure && ev.HasTimestamp() {
			byIP[ev.IP] = append(byIP[ev.IP], ev.Timestamp)
		}
	}

	window := time.Duration(d.windowMinutes) * time.Minute

	var alerts []domain.Alert
	for ip, stamps := range byIP {
		sort.Slice(stamps, func(i, j int) bool {
			return stamps[i].Before(stamps[j])
		})

		maxCount := 0
		var maxStart time.Time

		for i, start := range stamps {
			end := start.Add(window)
			count := 0
			for _, ts := range stamps[i:] {
				if ts.Before(end) {
					count++
				} else {
					break
				}
			}
			if count > maxCount {
				maxCount = count
				maxStart = start
			}
		}

		if maxCount >= d.minCount {
			alerts = append(alerts, domain.Alert{
				Kind:          domain.KindTimeWindowBruteForce,
				IP:            ip,
				Metric:        maxCount,
				WindowStart:   maxStart,
				WindowMinutes: d.windowMinutes,
			})
		}
	}

	sortByMetricDesc(alerts)
	return alerts
}

func (d *TimeWindowDetector) Name() string {
	return "time_window"
}

func (d *TimeWindowDetector) Kind() domain.AlertKind {
	return domain.KindTimeWindowBruteForce
}

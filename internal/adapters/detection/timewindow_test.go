package detection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

func spacedFailures(ip string, start time.Time, gap time.Duration, n int) []domain.AuthEvent {
	events := make([]domain.AuthEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, failureAt(ip, "root", start.Add(time.Duration(i)*gap)))
	}
	return events
}

func TestTimeWindowDetector(t *testing.T) {
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		window     int
		minCount   int
		events     []domain.AuthEvent
		wantAlerts int
		wantMetric int
		wantStart  time.Time
	}{
		{
			name:     "burst inside window",
			window:   5,
			minCount: 5,
			events:   spacedFailures("192.168.1.100", base, 30*time.Second, 6),
			wantAlerts: 1,
			wantMetric: 6,
			wantStart:  base,
		},
		{
			name:     "spread out failures never cluster",
			window:   5,
			minCount: 5,
			events:   spacedFailures("192.168.1.100", base, 10*time.Minute, 6),
			wantAlerts: 0,
		},
		{
			name:     "window is half-open at the far edge",
			window:   5,
			minCount: 2,
			events: []domain.AuthEvent{
				failureAt("10.0.0.1", "root", base),
				failureAt("10.0.0.1", "root", base.Add(5*time.Minute)),
			},
			// The event at exactly start+window falls outside, so the
			// densest window holds a single failure.
			wantAlerts: 0,
		},
		{
			name:     "last event inside the open edge counts",
			window:   5,
			minCount: 2,
			events: []domain.AuthEvent{
				failureAt("10.0.0.1", "root", base),
				failureAt("10.0.0.1", "root", base.Add(5*time.Minute-time.Second)),
			},
			wantAlerts: 1,
			wantMetric: 2,
			wantStart:  base,
		},
		{
			name:     "identical timestamps all land in one window",
			window:   5,
			minCount: 3,
			events: []domain.AuthEvent{
				failureAt("10.0.0.1", "a", base),
				failureAt("10.0.0.1", "b", base),
				failureAt("10.0.0.1", "c", base),
			},
			wantAlerts: 1,
			wantMetric: 3,
			wantStart:  base,
		},
		{
			name:     "untimestamped failures are excluded",
			window:   5,
			minCount: 3,
			events: []domain.AuthEvent{
				failureAt("10.0.0.1", "root", base),
				failureAt("10.0.0.1", "root", base.Add(time.Minute)),
				failure("10.0.0.1", "root"),
			},
			wantAlerts: 0,
		},
		{
			name:       "no timestamped events at all",
			window:     5,
			minCount:   1,
			events:     []domain.AuthEvent{failure("10.0.0.1", "root")},
			wantAlerts: 0,
		},
		{
			name:     "successes inside a burst are ignored",
			window:   5,
			minCount: 3,
			events: []domain.AuthEvent{
				failureAt("10.0.0.1", "root", base),
				{Timestamp: base.Add(time.Second), IP: "10.0.0.1", Failure: false},
				failureAt("10.0.0.1", "root", base.Add(2*time.Second)),
			},
			wantAlerts: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewTimeWindowDetector(tc.window, tc.minCount)
			alerts := d.Detect(tc.events)

			require.Len(t, alerts, tc.wantAlerts)
			if tc.wantAlerts == 0 {
				return
			}

			a := alerts[0]
			assert.Equal(t, domain.KindTimeWindowBruteForce, a.Kind)
			assert.Equal(t, tc.wantMetric, a.Metric)
			assert.Equal(t, tc.window, a.WindowMinutes)
			assert.True(t, a.WindowStart.Equal(tc.wantStart),
				"window start %v, want %v", a.WindowStart, tc.wantStart)
		})
	}
}

func TestTimeWindowDetectorPicksDensestWindow(t *testing.T) {
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	// A sparse lead-in followed by a tight burst an hour later. The alert
	// must report the burst, not the first window that merely qualifies.
	events := spacedFailures("192.168.1.100", base, 4*time.Minute, 3)
	burst := base.Add(time.Hour)
	events = append(events, spacedFailures("192.168.1.100", burst, 20*time.Second, 8)...)

	d := NewTimeWindowDetector(5, 2)
	alerts := d.Detect(events)
	require.Len(t, alerts, 1)

	assert.Equal(t, 8, alerts[0].Metric)
	assert.True(t, alerts[0].WindowStart.Equal(burst))
}

func TestTimeWindowDetectorEarliestStartOnTie(t *testing.T) {
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	// Two separated pairs with the same density. The earlier window wins.
	events := []domain.AuthEvent{
		failureAt("10.0.0.1", "root", base),
		failureAt("10.0.0.1", "root", base.Add(time.Minute)),
		failureAt("10.0.0.1", "root", base.Add(time.Hour)),
		failureAt("10.0.0.1", "root", base.Add(time.Hour+time.Minute)),
	}

	d := NewTimeWindowDetector(5, 2)
	alerts := d.Detect(events)
	require.Len(t, alerts, 1)

	assert.Equal(t, 2, alerts[0].Metric)
	assert.True(t, alerts[0].WindowStart.Equal(base))
}

func TestTimeWindowDetectorOrderIndependence(t *testing.T) {
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	events := spacedFailures("192.168.1.100", base, 35*time.Second, 10)

	d := NewTimeWindowDetector(5, 5)
	forward := d.Detect(events)

	reversed := make([]domain.AuthEvent, len(events))
	for i, ev := range events {
		reversed[len(events)-1-i] = ev
	}
	backward := d.Detect(reversed)

	require.Len(t, forward, 1)
	// Ten failures 35s apart: the window anchored at the first covers the
	// nine events before the 5-minute mark.
	assert.Equal(t, 9, forward[0].Metric)
	assert.Equal(t, forward, backward)
}

func TestTimeWindowDetectorMultipleIPs(t *testing.T) {
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	events := spacedFailures("10.0.0.1", base, 10*time.Second, 7)
	events = append(events, spacedFailures("10.0.0.2", base, 10*time.Second, 5)...)
	events = append(events, spacedFailures("10.0.0.3", base, 10*time.Minute, 9)...)

	d := NewTimeWindowDetector(5, 5)
	alerts := d.Detect(events)
	require.Len(t, alerts, 2)

	assert.Equal(t, "10.0.0.1", alerts[0].IP)
	assert.Equal(t, 7, alerts[0].Metric)
	assert.Equal(t, "10.0.0.2", alerts[1].IP)
	assert.Equal(t, 5, alerts[1].Metric)
}

package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

func TestUsernameDetector(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		events    []domain.AuthEvent
		wantIPs   []string
		wantNames map[string][]string
	}{
		{
			name:      "distinct usernames at threshold",
			threshold: 3,
			events: []domain.AuthEvent{
				failure("192.168.1.100", "admin"),
				failure("192.168.1.100", "root"),
				failure("192.168.1.100", "guest"),
			},
			wantIPs:   []string{"192.168.1.100"},
			wantNames: map[string][]string{"192.168.1.100": {"admin", "guest", "root"}},
		},
		{
			name:      "repeats of one username are not enumeration",
			threshold: 3,
			events: []domain.AuthEvent{
				failure("192.168.1.100", "root"),
				failure("192.168.1.100", "root"),
				failure("192.168.1.100", "root"),
				failure("192.168.1.100", "root"),
			},
			wantIPs: nil,
		},
		{
			name:      "duplicates collapse before counting",
			threshold: 3,
			events: []domain.AuthEvent{
				failure("10.0.0.1", "admin"),
				failure("10.0.0.1", "admin"),
				failure("10.0.0.1", "root"),
				failure("10.0.0.1", "guest"),
			},
			wantIPs:   []string{"10.0.0.1"},
			wantNames: map[string][]string{"10.0.0.1": {"admin", "guest", "root"}},
		},
		{
			name:      "usernames on successful logins never contribute",
			threshold: 2,
			events: []domain.AuthEvent{
				failure("10.0.0.1", "admin"),
				success("10.0.0.1", "root"),
				success("10.0.0.1", "guest"),
			},
			wantIPs: nil,
		},
		{
			name:      "events without a username are skipped",
			threshold: 2,
			events: []domain.AuthEvent{
				failure("10.0.0.1", ""),
				failure("10.0.0.1", ""),
				failure("10.0.0.1", "admin"),
			},
			wantIPs: nil,
		},
		{
			name:      "no events",
			threshold: 3,
			events:    nil,
			wantIPs:   nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewUsernameDetector(tc.threshold)
			alerts := d.Detect(tc.events)

			var gotIPs []string
			for _, a := range alerts {
				assert.Equal(t, domain.KindMultipleUsernames, a.Kind)
				assert.Equal(t, len(a.Usernames), a.Metric)
				gotIPs = append(gotIPs, a.IP)
				if tc.wantNames != nil {
					assert.Equal(t, tc.wantNames[a.IP], a.Usernames)
				}
			}
			assert.Equal(t, tc.wantIPs, gotIPs)
		})
	}
}

func TestUsernameDetectorOrdering(t *testing.T) {
	events := []domain.AuthEvent{
		failure("10.0.0.2", "a"),
		failure("10.0.0.2", "b"),
		failure("10.0.0.1", "a"),
		failure("10.0.0.1", "b"),
		failure("10.0.0.1", "c"),
	}

	d := NewUsernameDetector(2)
	alerts := d.Detect(events)
	require.Len(t, alerts, 2)

	assert.Equal(t, "10.0.0.1", alerts[0].IP)
	assert.Equal(t, 3, alerts[0].Metric)
	assert.Equal(t, "10.0.0.2", alerts[1].IP)
	assert.Equal(t, 2, alerts[1].Metric)
}

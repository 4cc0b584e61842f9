package detection

import (
	"sort"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// UsernameDetector flags IPs that attempt authentication as many distinct
// usernames, the classic account-enumeration signature.
type UsernameDetector struct {
	threshold int
}

func NewUsernameDetector(threshold int) *UsernameDetector {
	return &UsernameDetector{threshold: threshold}
}

// Detect collects the distinct non-empty usernames among each IP's failure
// events and flags IPs whose cardinality meets the threshold. Only failures
// count: a username on a successful login never contributes. The alert
// carries the sorted, de-duplicated username list.
func (d *UsernameDetector) Detect(events []domain.AuthEvent) []domain.Alert {
	byIP := make(map[string]map[string]struct{})
	for _, ev := range events {
		if !ev.Failure || ev.Username == "" {
			continue
		}
		set, ok := byIP[ev.IP]
		if !ok {
			set = make(map[string]struct{})
			byIP[ev.IP] = set
		}
		set[ev.Username] = struct{}{}
	}

	var alerts []domain.Alert
	for ip, set := range byIP {
		if len(set) < d.threshold {
			continue
		}

		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		sort.Strings(names)

		alerts = append(alerts, domain.Alert{
			Kind:      domain.KindMultipleUsernames,
			IP:        ip,
			Metric:    len(names),
			Usernames: names,
		})
	}

	sortByMetricDesc(alerts)
	return alerts
}

func (d *UsernameDetector) Name() string {
	return "usernames"
}

func (d *UsernameDetector) Kind() domain.AlertKind {
	return domain.KindMultipleUsernames
}

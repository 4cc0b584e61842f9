// Package output renders and exports finished reports.
//
// Three destinations exist: the plain-text console report (optionally
// colorized), a JSON report writer, and a Prometheus exporter serving one
// report's figures over HTTP.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
	"github.com/awais-ramzan/log-security-analyzer/pkg/sanitize"
)

const (
	reportRule     = "============================================================"
	timeLayout     = "2006-01-02 15:04:05"
	maxNamesListed = 10
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff41")).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00b8ff")).Bold(true)
	alertStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3333"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb000"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aa2a"))
)

// TextRenderer formats a report as the console text report. With Color
// disabled the output is plain, byte-stable text; otherwise the section
// headers and alert lines are styled with lipgloss.
type TextRenderer struct {
	Color bool
}

func NewTextRenderer(color bool) *TextRenderer {
	return &TextRenderer{Color: color}
}

// Render produces the full report text.
func (r *TextRenderer) Render(report *domain.Report) string {
	var b strings.Builder

	r.line(&b, headerStyle, reportRule)
	r.line(&b, headerStyle, "Log Security Analysis Report")
	r.line(&b, headerStyle, reportRule)
	r.linef(&b, "Generated: %s", report.GeneratedAt.Format(timeLayout))
	r.linef(&b, "Log File: %s", sanitize.String(report.SourcePath, sanitize.DefaultMaxDisplayLength))
	r.linef(&b, "Total Entries Analyzed: %d", report.TotalEntries)
	if report.TimeRange != nil {
		r.linef(&b, "Time Range: %s - %s",
			report.TimeRange.Start.Format(timeLayout), report.TimeRange.End.Format(timeLayout))
	}
	b.WriteString("\n")

	timeWindow := report.AlertsOfKind(domain.KindTimeWindowBruteForce)
	multiUser := report.AlertsOfKind(domain.KindMultipleUsernames)
	threshold := report.AlertsOfKind(domain.KindThresholdBruteForce)

	r.line(&b, sectionStyle, "=== Security Summary ===")
	r.linef(&b, "Failed Login Attempts: %d", report.FailedAttempts)
	r.linef(&b, "Potential Brute Force Attacks: %d", len(threshold))
	if len(timeWindow) > 0 {
		r.linef(&b, "Time-Window Attacks (%d min): %d", timeWindow[0].WindowMinutes, len(timeWindow))
	}
	if len(multiUser) > 0 {
		r.linef(&b, "Multiple Username Attempts: %d", len(multiUser))
	}
	b.WriteString("\n")

	if len(report.FailedLoginsByIP) > 0 {
		r.line(&b, sectionStyle, "=== Failed Logins by IP ===")
		for _, c := range report.FailedLoginsByIP {
			r.linef(&b, "  %s: %d failed attempts", sanitize.IP(c.IP), c.Count)
		}
		b.WriteString("\n")
	}

	if len(timeWindow) > 0 {
		r.line(&b, sectionStyle, "=== TIME-WINDOW BRUTE FORCE ATTACKS ===")
		for _, a := range timeWindow {
			r.line(&b, alertStyle, fmt.Sprintf("  IP: %s", sanitize.IP(a.IP)))
			r.linef(&b, "     Failed Attempts: %d in %d minutes", a.Metric, a.WindowMinutes)
			r.linef(&b, "     Window Start: %s", a.WindowStart.Format(timeLayout))
		}
		b.WriteString("\n")
	}

	if len(multiUser) > 0 {
		r.line(&b, sectionStyle, "=== MULTIPLE USERNAME ATTEMPTS ===")
		for _, a := range multiUser {
			r.line(&b, warnStyle, fmt.Sprintf("  IP: %s", sanitize.IP(a.IP)))
			r.linef(&b, "     Unique Usernames Attempted: %d", a.Metric)
			r.linef(&b, "     Usernames: %s", joinUsernames(a.Usernames))
			if extra := len(a.Usernames) - maxNamesListed; extra > 0 {
				r.linef(&b, "     ... and %d more", extra)
			}
		}
		b.WriteString("\n")
	}

	if len(threshold) > 0 {
		r.line(&b, sectionStyle, "=== BRUTE FORCE ATTACKS (Threshold) ===")
		for _, a := range threshold {
			r.line(&b, alertStyle, fmt.Sprintf("  IP: %s", sanitize.IP(a.IP)))
			r.linef(&b, "     Failed Attempts: %d", a.Metric)
		}
		b.WriteString("\n")
	}

	if len(report.Alerts) == 0 {
		r.line(&b, sectionStyle, "=== Security Status ===")
		r.line(&b, okStyle, "No brute force attacks detected")
		b.WriteString("\n")
	}

	r.line(&b, headerStyle, reportRule)
	return b.String()
}

func (r *TextRenderer) line(b *strings.Builder, style lipgloss.Style, s string) {
	if r.Color {
		s = style.Render(s)
	}
	b.WriteString(s)
	b.WriteString("\n")
}

func (r *TextRenderer) linef(b *strings.Builder, format string, args ...interface{}) {
	fmt.Fprintf(b, format, args...)
	b.WriteString("\n")
}

func joinUsernames(names []string) string {
	shown := names
	if len(shown) > maxNamesListed {
		shown = shown[:maxNamesListed]
	}
	cleaned := make([]string, len(shown))
	for i, name := range shown {
		cleaned[i] = sanitize.Username(name, 64)
	}
	return strings.Join(cleaned, ", ")
}

package ports

import (
	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// ReportRenderer formats a finished report for humans or machines.
type ReportRenderer interface {
	Render(report *domain.Report) string
}

// ReportWriter persists a rendered report.
type ReportWriter interface {
	Write(report *domain.Report) error
	Close() error
}

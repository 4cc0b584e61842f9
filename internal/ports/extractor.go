package ports

import (
	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// EventExtractor turns one raw log line into at most one AuthEvent.
//
// The second return value is false when the line yields no event (no IPv4
// token present). Extraction must be a pure function of the line and the
// configured keyword set.
type EventExtractor interface {
	Extract(line string) (*domain.AuthEvent, bool)
}

// LineReader supplies the raw log lines for one run, order preserved.
// Errors are fatal: no partial report is produced on unreadable input.
type LineReader interface {
	ReadLines(path string) ([]string, error)
}

// Package ports defines the interfaces between the detection core and its
// adapters (ports and adapters pattern).
//
// The core consumes raw lines through EventExtractor and produces a
// domain.Report; everything at the edges (file reading, rendering, metrics)
// implements one of these small interfaces.
package ports

import (
	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// Detector is a single detection heuristic over one analysis run.
//
// Implementations:
//   - ThresholdDetector: total failure count per IP
//   - TimeWindowDetector: densest failure window per IP
//   - UsernameDetector: distinct usernames attempted per IP
//
// Contract:
//   - MUST NOT modify the shared event slice
//   - MUST be a pure function of its input (no state across calls), so
//     detectors can run in parallel over one read-only slice
//   - Returns alerts already in the detector's documented order
type Detector interface {
	Detect(events []domain.AuthEvent) []domain.Alert

	// Name returns the detector identifier for logging.
	Name() string

	// Kind returns the alert kind this detector produces.
	Kind() domain.AlertKind
}

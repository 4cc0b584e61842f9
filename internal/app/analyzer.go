package app

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/awais-ramzan/log-security-analyzer/internal/adapters/detection"
	"github.com/awais-ramzan/log-security-analyzer/internal/adapters/input"
	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
	"github.com/awais-ramzan/log-security-analyzer/internal/ports"
)

// Analyzer runs one analysis pass: lines in, report out. The extractor and
// detectors are stateless, so one Analyzer may serve any number of runs.
type Analyzer struct {
	extractor ports.EventExtractor
	detectors []ports.Detector
}

func NewAnalyzer(extractor ports.EventExtractor, detectors []ports.Detector) *Analyzer {
	return &Analyzer{
		extractor: extractor,
		detectors: detectors,
	}
}

// NewDefaultAnalyzer wires the standard extractor and all three detectors
// from a normalized config.
func NewDefaultAnalyzer(cfg *Config) *Analyzer {
	return NewAnalyzer(
		input.NewExtractor(cfg.FailedLoginKeywords),
		[]ports.Detector{
			NewTimeWindowDetector(cfg),
			NewUsernameDetector(cfg),
			NewThresholdDetector(cfg),
		},
	)
}

func NewThresholdDetector(cfg *Config) ports.Detector {
	return detection.NewThresholdDetector(cfg.Detection.BruteForceThreshold)
}

func NewTimeWindowDetector(cfg *Config) ports.Detector {
	return detection.NewTimeWindowDetector(cfg.Detection.TimeWindowMinutes, cfg.Detection.TimeWindowThreshold)
}

func NewUsernameDetector(cfg *Config) ports.Detector {
	return detection.NewUsernameDetector(cfg.Detection.MultipleUsernameThreshold)
}

// Analyze extracts events from the raw lines, runs every detector over the
// shared read-only slice concurrently, and assembles the report. Zero lines
// or zero events yield an empty report, not an error.
func (a *Analyzer) Analyze(lines []string, sourcePath string) *domain.Report {
	started := time.Now()
	events := a.extract(lines)

	results := make([][]domain.Alert, len(a.detectors))

	var wg sync.WaitGroup
	for i, d := range a.detectors {
		wg.Add(1)
		go func(i int, d ports.Detector) {
			defer wg.Done()
			results[i] = d.Detect(events)
		}(i, d)
	}
	wg.Wait()

	alertsByKind := make(map[domain.AlertKind][]domain.Alert, len(a.detectors))
	for i, d := range a.detectors {
		alertsByKind[d.Kind()] = results[i]
		log.Debug().Str("detector", d.Name()).Int("alerts", len(results[i])).Msg("Detector finished")
	}

	report := AssembleReport(events, alertsByKind, sourcePath, time.Now())

	log.Info().
		Int("lines", len(lines)).
		Int("events", report.TotalEntries).
		Int("failed", report.FailedAttempts).
		Int("alerts", len(report.Alerts)).
		Dur("elapsed", time.Since(started)).
		Msg("Analysis complete")

	return report
}

func (a *Analyzer) extract(lines []string) []domain.AuthEvent {
	events := make([]domain.AuthEvent, 0, len(lines))
	for _, line := range lines {
		if ev, ok := a.extractor.Extract(line); ok {
			events = append(events, *ev)
		}
	}
	return events
}

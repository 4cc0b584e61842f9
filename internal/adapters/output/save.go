package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
	"github.com/awais-ramzan/log-security-analyzer/internal/ports"
)

// SaveReport renders a report and writes it to path, creating parent
// directories as needed. Saved reports are always plain text regardless of
// the console color setting.
func SaveReport(report *domain.Report, renderer ports.ReportRenderer, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(renderer.Render(report)), 0o644); err != nil {
		return fmt.Errorf("writing report to %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("Report saved")
	return nil
}

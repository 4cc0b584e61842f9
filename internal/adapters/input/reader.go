package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// FileReader reads a whole log file into memory, one entry per line.
// Analysis is a single bounded pass, so there is no tailing or streaming.
type FileReader struct {
	// MaxLineBytes caps the scanner buffer for pathological lines.
	MaxLineBytes int
}

const defaultMaxLineBytes = 1024 * 1024

func NewFileReader() *FileReader {
	return &FileReader{MaxLineBytes: defaultMaxLineBytes}
}

// ReadLines returns the file's non-empty lines in order. Any read error is
// returned as-is so the caller can fail fast before analysis starts.
func (r *FileReader) ReadLines(path string) ([]string, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	defer fp.Close()

	maxBytes := r.MaxLineBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxLineBytes
	}

	scanner := bufio.NewScanner(fp)
	scanner.Buffer(make([]byte, 64*1024), maxBytes)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log file %s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("lines", len(lines)).Msg("Log file read")
	return lines, nil
}

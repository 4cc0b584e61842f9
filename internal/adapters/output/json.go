package output

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// JSONWriter serializes a finished report as JSON to a file or stdout.
type JSONWriter struct {
	bufWriter *bufio.Writer
	file      *os.File
	encoder   *json.Encoder
}

// JSONWriterConfig configures JSON report output.
type JSONWriterConfig struct {
	FilePath string // output file path (empty for discard)
	Stdout   bool   // write to stdout instead of a file
	Pretty   bool
}

// NewJSONWriter creates a JSON report writer. Stdout wins over FilePath;
// with neither set, output is discarded.
func NewJSONWriter(config JSONWriterConfig) (*JSONWriter, error) {
	var writer io.Writer
	var file *os.File

	if config.Stdout {
		writer = os.Stdout
	} else if config.FilePath != "" {
		var err error
		file, err = os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
		if err != nil {
			return nil, err
		}
		writer = file
	} else {
		writer = io.Discard
	}

	bufWriter := bufio.NewWriter(writer)

	w := &JSONWriter{
		bufWriter: bufWriter,
		file:      file,
		encoder:   json.NewEncoder(bufWriter),
	}
	if config.Pretty {
		w.encoder.SetIndent("", "  ")
	}

	return w, nil
}

// Write encodes the report.
func (w *JSONWriter) Write(report *domain.Report) error {
	return w.encoder.Encode(report)
}

// Close flushes buffered output and closes the file, if any.
func (w *JSONWriter) Close() error {
	if err := w.bufWriter.Flush(); err != nil {
		return err
	}
	if w.file != nil {
		if err := w.file.Sync(); err != nil {
			return err
		}
		return w.file.Close()
	}
	return nil
}

// ABOUTME: Session exporter: renders a recorded transcript to markdown,
// ABOUTME: HTML or a zip archive, picking the format from the destination

package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mauromedda/text2dsl-go/internal/config"
	"github.com/mauromedda/text2dsl-go/internal/transcript"
)

// SessionExporter exports one session's transcript on demand.
type SessionExporter struct {
	sessionID string
}

// NewSessionExporter creates an exporter bound to a session ID.
func NewSessionExporter(sessionID string) *SessionExporter {
	return &SessionExporter{sessionID: sessionID}
}

// Export renders the transcript to dest and returns the written path.
// The extension selects the format: .html, .zip, or markdown otherwise.
// An empty dest writes a timestamped markdown file under the exports dir.
func (e *SessionExporter) Export(dest string) (string, error) {
	records, err := transcript.ReadRecords(e.sessionID)
	if err != nil {
		return "", fmt.Errorf("reading transcript: %w", err)
	}
	turns := transcript.Turns(records)

	if dest == "" {
		if err := config.EnsureDir(config.ExportsDir()); err != nil {
			return "", fmt.Errorf("creating exports dir: %w", err)
		}
		name := fmt.Sprintf("%s-%s.md", e.sessionID, time.Now().Format("20060102-150405"))
		dest = filepath.Join(config.ExportsDir(), name)
	}

	switch strings.ToLower(filepath.Ext(dest)) {
	case ".zip":
		err = e.archive(dest, turns)
	case ".html", ".htm":
		err = writeTo(dest, func(w io.Writer) error { return ExportHTML(turns, w) })
	default:
		err = writeTo(dest, func(w io.Writer) error { return ExportMarkdown(turns, w) })
	}
	if err != nil {
		return "", err
	}
	return dest, nil
}

// archive bundles the markdown and HTML renders plus the raw JSONL into
// one zip file.
func (e *SessionExporter) archive(dest string, turns []transcript.TurnData) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	entries := []struct {
		name   string
		render func(io.Writer) error
	}{
		{e.sessionID + ".md", func(w io.Writer) error { return ExportMarkdown(turns, w) }},
		{e.sessionID + ".html", func(w io.Writer) error { return ExportHTML(turns, w) }},
	}
	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			zw.Close()
			return fmt.Errorf("adding %s: %w", entry.name, err)
		}
		if err := entry.render(w); err != nil {
			zw.Close()
			return fmt.Errorf("rendering %s: %w", entry.name, err)
		}
	}

	rawPath := filepath.Join(config.SessionsDir(), e.sessionID+".jsonl")
	if raw, err := os.ReadFile(rawPath); err == nil {
		w, err := zw.Create(e.sessionID + ".jsonl")
		if err != nil {
			zw.Close()
			return fmt.Errorf("adding raw transcript: %w", err)
		}
		if _, err := w.Write(raw); err != nil {
			zw.Close()
			return fmt.Errorf("writing raw transcript: %w", err)
		}
	}
	return zw.Close()
}

func writeTo(dest string, render func(io.Writer) error) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

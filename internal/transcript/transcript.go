// ABOUTME: JSONL transcript persistence with append-only writes
// ABOUTME: Reads line-by-line with bufio.Scanner; crash-safe via O_APPEND

package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mauromedda/text2dsl-go/internal/config"
	"github.com/mauromedda/text2dsl-go/internal/conversation"
	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

// RecordType identifies the type of JSONL record.
type RecordType string

const (
	RecordSessionStart RecordType = "session_start"
	RecordTurn         RecordType = "turn"
	RecordSessionEnd   RecordType = "session_end"
)

// Record is the envelope for all JSONL entries.
type Record struct {
	Version int             `json:"v"`
	Type    RecordType      `json:"type"`
	TS      string          `json:"ts"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// SessionStartData holds session_start metadata.
type SessionStartData struct {
	ID   string `json:"id"`
	Lang string `json:"lang"`
	CWD  string `json:"cwd"`
}

// TurnData holds one processed turn.
type TurnData struct {
	Input   string      `json:"input"`
	Intent  dsl.Intent  `json:"intent"`
	Param   string      `json:"param,omitempty"`
	Outcome dsl.Outcome `json:"outcome"`
}

// SessionEndData holds session_end metadata.
type SessionEndData struct {
	Turns int `json:"turns"`
}

// Writer appends records to a session JSONL file.
type Writer struct {
	file  *os.File
	turns int
}

// NewWriter creates a Writer for the given session ID.
func NewWriter(sessionID string) (*Writer, error) {
	dir := config.SessionsDir()
	if err := config.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("creating sessions dir: %w", err)
	}

	path := filepath.Join(dir, sessionID+".jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening transcript: %w", err)
	}

	return &Writer{file: f}, nil
}

// Start writes the session_start record.
func (w *Writer) Start(id, lang, cwd string) error {
	return w.writeRecord(RecordSessionStart, SessionStartData{ID: id, Lang: lang, CWD: cwd})
}

// RecordTurn appends a turn record. Satisfies the orchestrator's sink.
func (w *Writer) RecordTurn(t conversation.Turn) error {
	w.turns++
	return w.writeRecord(RecordTurn, TurnData{
		Input:   t.Input,
		Intent:  t.Intent,
		Param:   t.Param,
		Outcome: t.Outcome,
	})
}

// Close writes the session_end record and closes the file.
func (w *Writer) Close() error {
	if err := w.writeRecord(RecordSessionEnd, SessionEndData{Turns: w.turns}); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// writeRecord appends one enveloped record.
func (w *Writer) writeRecord(recType RecordType, data any) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling record data: %w", err)
	}

	rec := Record{
		Version: 1,
		Type:    recType,
		TS:      time.Now().UTC().Format(time.RFC3339),
		Data:    dataBytes,
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}

	line = append(line, '\n')
	if _, err := w.file.Write(line); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// ReadRecords reads all records from a session file.
func ReadRecords(sessionID string) ([]Record, error) {
	path := filepath.Join(config.SessionsDir(), sessionID+".jsonl")
	return readFile(path)
}

// readFile parses records from one JSONL file, skipping malformed lines.
func readFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transcript %s: %w", path, err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024) // 10MB max line

	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			continue // Skip malformed lines
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("scanning transcript %s: %w", path, err)
	}
	return records, nil
}

// Turns extracts the turn payloads from a record stream in order.
func Turns(records []Record) []TurnData {
	var turns []TurnData
	for _, rec := range records {
		if rec.Type != RecordTurn {
			continue
		}
		var t TurnData
		if err := json.Unmarshal(rec.Data, &t); err != nil {
			continue
		}
		turns = append(turns, t)
	}
	return turns
}

// ListSessions scans the sessions directory and returns session start
// records, newest directory order.
func ListSessions() ([]SessionStartData, error) {
	dir := config.SessionsDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading sessions dir: %w", err)
	}

	var sessions []SessionStartData
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".jsonl" {
			continue
		}
		start, err := readFirstLine(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		sessions = append(sessions, start)
	}
	return sessions, nil
}

func readFirstLine(path string) (SessionStartData, error) {
	f, err := os.Open(path)
	if err != nil {
		return SessionStartData{}, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return SessionStartData{}, fmt.Errorf("empty transcript file")
	}

	var rec Record
	if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
		return SessionStartData{}, fmt.Errorf("parsing first record: %w", err)
	}

	var start SessionStartData
	if err := json.Unmarshal(rec.Data, &start); err != nil {
		return SessionStartData{}, fmt.Errorf("parsing session start: %w", err)
	}
	return start, nil
}

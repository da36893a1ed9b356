package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func writeEvents(t *testing.T, path string, events []Event) {
	t.Helper()
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()
}

func TestReaderStreamsAllEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.dslog")
	writeEvents(t, path, []Event{
		{Timestamp: time.Now(), SourceID: "a", Op: OpRead},
		{Timestamp: time.Now(), SourceID: "b", Op: OpRelease},
		{Timestamp: time.Now(), SourceID: "a", Op: OpWrite},
	})

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var got []Event
	for {
		e, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		got = append(got, e)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[0].SourceID != "a" || got[1].Op != OpRelease || got[2].Op != OpWrite {
		t.Errorf("events out of order: %+v", got)
	}
}

func TestReaderFiltersBySourceAndOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.dslog")
	writeEvents(t, path, []Event{
		{Timestamp: time.Now(), SourceID: "a", SourceName: "current time", Op: OpRead},
		{Timestamp: time.Now(), SourceID: "b", SourceName: "status LED", Op: OpWrite},
		{Timestamp: time.Now(), SourceID: "b", SourceName: "status LED", Op: OpRead},
	})

	op := OpRead
	reader, err := NewFilteredReader(path, Filter{SourceName: "status LED", Op: &op})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	e, err := reader.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if e.SourceID != "b" || e.Op != OpRead {
		t.Errorf("unexpected event: %+v", e)
	}
	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("expected EOF after the single match, got %v", err)
	}
}

func TestReaderFiltersByTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.dslog")
	early := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	late := time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC)
	writeEvents(t, path, []Event{
		{Timestamp: early, SourceID: "a", Op: OpRead},
		{Timestamp: late, SourceID: "a", Op: OpRead},
	})

	cutoff := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	reader, err := NewFilteredReader(path, Filter{TimeStart: &cutoff})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	e, err := reader.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if !e.Timestamp.Equal(late) {
		t.Errorf("expected the late event, got %v", e.Timestamp)
	}
}

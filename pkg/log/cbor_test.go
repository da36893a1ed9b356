package log

import (
	"testing"
	"time"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 8, 29, 10, 15, 32, 123456789, time.UTC)
	original := Event{
		Timestamp:  ts,
		SourceID:   "abc12345-def6-7890-abcd-ef1234567890",
		SourceName: "cpu temperature",
		Op:         OpRead,
		Read: &ReadEvent{
			HasValue: true,
			Duration: 42 * time.Microsecond,
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.SourceID != original.SourceID {
		t.Errorf("SourceID: got %q, want %q", decoded.SourceID, original.SourceID)
	}
	if decoded.SourceName != original.SourceName {
		t.Errorf("SourceName: got %q, want %q", decoded.SourceName, original.SourceName)
	}
	if decoded.Op != OpRead {
		t.Errorf("Op: got %v, want %v", decoded.Op, OpRead)
	}
	if decoded.Read == nil {
		t.Fatal("Read payload is nil")
	}
	if !decoded.Read.HasValue || decoded.Read.Duration != original.Read.Duration {
		t.Errorf("Read payload: got %+v, want %+v", decoded.Read, original.Read)
	}
}

func TestWriteEventRoundTrip(t *testing.T) {
	original := Event{
		Timestamp:  time.Now(),
		SourceID:   "src-1",
		SourceName: "status LED",
		Op:         OpWrite,
		Write: &WriteEvent{
			Status: "GOOD",
			Ranged: true,
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.Write == nil {
		t.Fatal("Write payload is nil")
	}
	if decoded.Write.Status != "GOOD" || !decoded.Write.Ranged {
		t.Errorf("Write payload: got %+v, want %+v", decoded.Write, original.Write)
	}
	if decoded.Read != nil || decoded.Error != nil {
		t.Error("unset payloads must decode as nil")
	}
}

func TestOpString(t *testing.T) {
	cases := []struct {
		op   Op
		want string
	}{
		{OpRead, "READ"},
		{OpRelease, "RELEASE"},
		{OpWrite, "WRITE"},
		{Op(99), "UNKNOWN"},
	}
	for _, tc := range cases {
		if got := tc.op.String(); got != tc.want {
			t.Errorf("Op(%d).String() = %q, want %q", tc.op, got, tc.want)
		}
	}
}

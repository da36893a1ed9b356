package log

import "time"

// Event represents one captured data-source operation.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SourceID uniquely identifies the data-source instance (UUID).
	SourceID string `cbor:"2,keyasint"`

	// SourceName is the human-readable source name (e.g. "current time").
	SourceName string `cbor:"3,keyasint,omitempty"`

	// Op is the operation that was captured.
	Op Op `cbor:"4,keyasint"`

	// Operation-specific payload (at most one of these is set; a release
	// carries none).
	Read  *ReadEvent      `cbor:"5,keyasint,omitempty"`
	Write *WriteEvent     `cbor:"6,keyasint,omitempty"`
	Error *ErrorEventData `cbor:"7,keyasint,omitempty"`
}

// Op identifies the captured provider operation.
type Op uint8

const (
	// OpRead is a Provider.Read call.
	OpRead Op = 0
	// OpRelease is a Provider.Release call.
	OpRelease Op = 1
	// OpWrite is a Writer.Write call.
	OpWrite Op = 2
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpRead:
		return "READ"
	case OpRelease:
		return "RELEASE"
	case OpWrite:
		return "WRITE"
	default:
		return "UNKNOWN"
	}
}

// ReadEvent captures the outcome of a read.
type ReadEvent struct {
	// HasValue indicates the read materialized a value.
	HasValue bool `cbor:"1,keyasint"`

	// Status is the textual status for statused no-value results.
	Status string `cbor:"2,keyasint,omitempty"`

	// Ranged indicates a sub-range was requested.
	Ranged bool `cbor:"3,keyasint,omitempty"`

	// WithSourceTimestamp indicates a source timestamp was requested.
	WithSourceTimestamp bool `cbor:"4,keyasint,omitempty"`

	// Duration is how long the read took.
	Duration time.Duration `cbor:"5,keyasint,omitempty"`
}

// WriteEvent captures the outcome of a write.
type WriteEvent struct {
	// Status is the textual status the write returned.
	Status string `cbor:"1,keyasint"`

	// Ranged indicates a sub-range write was attempted.
	Ranged bool `cbor:"2,keyasint,omitempty"`

	// Duration is how long the write took.
	Duration time.Duration `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures an error returned by a provider operation.
type ErrorEventData struct {
	// Message is the error text.
	Message string `cbor:"1,keyasint"`

	// Context describes where the error occurred.
	Context string `cbor:"2,keyasint,omitempty"`
}

package datasource

// Status represents a data-source operation status code.
type Status uint8

const (
	// StatusGood indicates the operation completed successfully.
	StatusGood Status = 0

	// StatusRangeInvalid indicates ranged access was requested on a source
	// that only supports whole-value access.
	StatusRangeInvalid Status = 1

	// StatusOutOfMemory indicates value materialization failed.
	StatusOutOfMemory Status = 2

	// StatusUnavailable indicates the backing resource is missing or
	// inaccessible.
	StatusUnavailable Status = 3

	// StatusCorruptData indicates the backing resource content could not
	// be parsed.
	StatusCorruptData Status = 4

	// StatusTypeMismatch indicates a written value does not match the
	// source's kind or shape.
	StatusTypeMismatch Status = 5

	// StatusReadOnly indicates an attempt to write a read-only source.
	StatusReadOnly Status = 6
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusGood:
		return "GOOD"
	case StatusRangeInvalid:
		return "RANGE_INVALID"
	case StatusOutOfMemory:
		return "OUT_OF_MEMORY"
	case StatusUnavailable:
		return "UNAVAILABLE"
	case StatusCorruptData:
		return "CORRUPT_DATA"
	case StatusTypeMismatch:
		return "TYPE_MISMATCH"
	case StatusReadOnly:
		return "READ_ONLY"
	default:
		return "UNKNOWN"
	}
}

// IsGood returns true if the status indicates success.
func (s Status) IsGood() bool {
	return s == StatusGood
}

// IsError returns true if the status indicates an error.
func (s Status) IsError() bool {
	return s != StatusGood
}

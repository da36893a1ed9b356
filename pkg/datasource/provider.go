package datasource

import (
	"context"
	"time"

	"github.com/sensorspace-protocol/sensorspace-go/pkg/value"
)

// Range requests a contiguous sub-range of an array value. None of the
// built-in sources support ranged access; a non-nil Range is rejected
// before any backing resource is touched.
type Range struct {
	// First is the index of the first requested element.
	First uint32

	// Last is the index of the last requested element (inclusive).
	Last uint32
}

// ReadRequest describes a single read against a Provider.
type ReadRequest struct {
	// Range, when non-nil, requests a sub-range of the value.
	Range *Range

	// WithSourceTimestamp asks the source to stamp the result with the
	// instant the value was sampled.
	WithSourceTimestamp bool
}

// ReadResult is the outcome of a Provider.Read call.
type ReadResult struct {
	// Value is the materialized value, nil when the read produced none.
	Value *value.Value

	// HasStatus indicates Status is meaningful.
	HasStatus bool

	// Status carries a non-fatal outcome such as StatusRangeInvalid.
	Status Status

	// HasSourceTimestamp indicates SourceTimestamp is meaningful.
	HasSourceTimestamp bool

	// SourceTimestamp is the instant the value was sampled.
	SourceTimestamp time.Time

	// release drops any lease taken in Read. Cleared on first use so a
	// second Release is a no-op.
	release func()
}

// HasValue returns true if the read produced a value.
func (r *ReadResult) HasValue() bool {
	return r != nil && r.Value != nil
}

// Provider is the contract every data source implements. The runtime calls
// Read, consumes the value, then calls Release exactly once. Read, Release
// and Write may be invoked concurrently from different worker goroutines.
type Provider interface {
	// Read produces a value, a statused no-value result, or an error for
	// irrecoverable conditions. A non-nil request Range is rejected with
	// StatusRangeInvalid and no value.
	Read(ctx context.Context, req ReadRequest) (ReadResult, error)

	// Release frees whatever Read allocated or leased. It must be an
	// idempotent no-op when the result carries no value.
	Release(res *ReadResult)
}

// Writer is implemented by sources whose exposed attribute accepts writes.
// Sources that do not implement Writer are read-only.
type Writer interface {
	// Write atomically replaces the underlying state and propagates the
	// change to the backing resource. A non-nil rng is rejected with
	// StatusRangeInvalid; ranged writes are not supported.
	Write(ctx context.Context, val value.Value, rng *Range) Status
}

// rangeRejected is the result for ranged access against a whole-value
// source: no value, range-invalid status, backing resources untouched.
func rangeRejected() ReadResult {
	return ReadResult{HasStatus: true, Status: StatusRangeInvalid}
}

// releaseResult clears the result and runs any pending lease release
// exactly once. Shared by all built-in sources.
func releaseResult(res *ReadResult) {
	if res == nil || res.Value == nil {
		return
	}
	res.Value = nil
	if res.release != nil {
		rel := res.release
		res.release = nil
		rel()
	}
}

// Package datasource implements the data-source abstraction behind
// provider-backed address-space nodes.
//
// # Lifecycle
//
// Every data source implements Provider: the serving runtime calls Read,
// consumes the returned value, then calls Release exactly once. Writable
// sources additionally implement Writer. Read and Release are paired; a
// Release following a value-less read is an idempotent no-op.
//
// Sources that hand out a live reference to shared state (the toggle)
// acquire a read lease in Read and only drop it in Release, so the lease
// spans the externally controlled read-use-release interval. See Guard.
//
// # Adapters
//
// Three concrete sources are provided:
//   - ClockSource: current wall-clock time, read-only.
//   - TemperatureSource: CPU temperature from a millidegree sensor file,
//     read-only.
//   - ToggleSource: an on/off flag mirrored to a LED-style actuator file,
//     read-write.
//
// Instrument wraps any source with lifecycle event capture and metrics.
package datasource

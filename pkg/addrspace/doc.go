// Package addrspace populates a serving runtime's address space with
// live data sources and demo nodes.
//
// The Registry interface is the registration surface the runtime exposes;
// registration is one-shot and transfers ownership of the passed value or
// provider to the runtime. Builder orchestrates the population sequence:
// the mandatory clock source, the optional temperature and toggle sources
// (probed at build time and skipped when their backing files are
// unavailable), one static demo value, and a catalog-driven set of demo
// nodes covering every constructible built-in kind.
//
// MemoryRegistry is a self-contained Registry for tests and bootstrap
// binaries; a real runtime brings its own node storage.
package addrspace

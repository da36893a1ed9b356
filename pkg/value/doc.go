// Package value implements the built-in value model of the address space.
//
// # Kinds
//
// A fixed catalog of 25 built-in kinds (KindBoolean through
// KindDiagnosticInfo) describes every value the server can hold. Each kind
// has a stable numeric identifier, a canonical Go representation, and a
// default (zero) instance. Two structural kinds - KindVariant ("any value")
// and KindDiagnosticInfo - cannot be materialized as leaf values and are
// skipped by catalog-driven node generation.
//
// # Values
//
// Value is a tagged union of a kind and either a single instance of that
// kind (scalar) or a fixed-size ordered sequence of instances (array). The
// kind and payload shape are set at construction and never change:
//
//	v, err := value.NewScalar(value.KindDouble, 36.5)
//	arr := value.ZeroArray(value.KindInt32, 10)
//
// Payloads are validated against the kind at construction, so a Value that
// exists is always internally consistent.
package value

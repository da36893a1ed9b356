package value

import (
	"bytes"
	"errors"
	"fmt"
	"time"
)

// Value errors.
var (
	ErrKindNotConstructible = errors.New("kind cannot be materialized as a value")
	ErrValueType            = errors.New("payload does not match kind")
	ErrNegativeLength       = errors.New("negative array length")
)

// Value is a tagged union of a kind and a payload that is either a single
// instance of the kind or a fixed-size ordered sequence of instances.
// A Value never changes kind or shape after creation. The zero Value is a
// Boolean scalar holding false.
type Value struct {
	kind  Kind
	elems []any
	array bool
}

// NewScalar returns a scalar Value of kind k holding v.
func NewScalar(k Kind, v any) (Value, error) {
	if !k.Constructible() {
		return Value{}, fmt.Errorf("%w: %s", ErrKindNotConstructible, k)
	}
	if !checkKind(k, v) {
		return Value{}, fmt.Errorf("%w: %s got %T", ErrValueType, k, v)
	}
	return Value{kind: k, elems: []any{v}}, nil
}

// MustScalar is like NewScalar but panics on error. For use with payloads
// known to match the kind.
func MustScalar(k Kind, v any) Value {
	val, err := NewScalar(k, v)
	if err != nil {
		panic("value: " + err.Error())
	}
	return val
}

// NewArray returns an array Value of kind k holding the given elements.
// The length is fixed at creation.
func NewArray(k Kind, elems []any) (Value, error) {
	if !k.Constructible() {
		return Value{}, fmt.Errorf("%w: %s", ErrKindNotConstructible, k)
	}
	for i, e := range elems {
		if !checkKind(k, e) {
			return Value{}, fmt.Errorf("%w: %s element %d got %T", ErrValueType, k, i, e)
		}
	}
	copied := make([]any, len(elems))
	copy(copied, elems)
	return Value{kind: k, elems: copied, array: true}, nil
}

// ZeroScalar returns a default-constructed scalar of kind k.
// Panics if k is not constructible.
func ZeroScalar(k Kind) Value {
	return MustScalar(k, k.Zero())
}

// ZeroArray returns an array of n default-constructed instances of kind k.
// Panics if k is not constructible or n is negative.
func ZeroArray(k Kind, n int) Value {
	if n < 0 {
		panic("value: " + ErrNegativeLength.Error())
	}
	if !k.Constructible() {
		panic("value: " + fmt.Errorf("%w: %s", ErrKindNotConstructible, k).Error())
	}
	elems := make([]any, n)
	for i := range elems {
		elems[i] = k.Zero()
	}
	return Value{kind: k, elems: elems, array: true}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsArray returns true for array-shaped values.
func (v Value) IsArray() bool {
	return v.array
}

// Len returns the element count: 1 for scalars, the fixed length for arrays.
func (v Value) Len() int {
	if !v.array {
		return 1
	}
	return len(v.elems)
}

// Scalar returns the payload of a scalar value. For the zero Value it
// returns false; for arrays it returns nil.
func (v Value) Scalar() any {
	if v.array {
		return nil
	}
	if v.elems == nil {
		return v.kind.Zero() // zero Value is a Boolean scalar
	}
	return v.elems[0]
}

// Index returns the i-th element of an array value, or nil when out of
// range or called on a scalar.
func (v Value) Index(i int) any {
	if !v.array || i < 0 || i >= len(v.elems) {
		return nil
	}
	return v.elems[i]
}

// Elems returns a copy of the element sequence. Scalars yield a
// single-element slice.
func (v Value) Elems() []any {
	if !v.array {
		return []any{v.Scalar()}
	}
	out := make([]any, len(v.elems))
	copy(out, v.elems)
	return out
}

// String returns a short debug representation.
func (v Value) String() string {
	if v.array {
		return fmt.Sprintf("%s[%d]", v.Kind(), len(v.elems))
	}
	return fmt.Sprintf("%s(%v)", v.Kind(), v.Scalar())
}

// Equal reports whether two values have the same kind, shape, and payload.
func (v Value) Equal(other Value) bool {
	if v.Kind() != other.Kind() || v.array != other.array || v.Len() != other.Len() {
		return false
	}
	a, b := v.Elems(), other.Elems()
	for i := range a {
		if !equalElem(v.Kind(), a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalElem(k Kind, a, b any) bool {
	switch k {
	case KindDateTime:
		return a.(time.Time).Equal(b.(time.Time))
	case KindByteString:
		return bytes.Equal(a.([]byte), b.([]byte))
	case KindExtensionObject:
		ea, eb := a.(ExtensionObject), b.(ExtensionObject)
		return ea.TypeID == eb.TypeID && bytes.Equal(ea.Body, eb.Body)
	case KindDataValue:
		da, db := a.(DataValue), b.(DataValue)
		if da.Status != db.Status || !da.SourceTimestamp.Equal(db.SourceTimestamp) {
			return false
		}
		if (da.Value == nil) != (db.Value == nil) {
			return false
		}
		return da.Value == nil || da.Value.Equal(*db.Value)
	default:
		return a == b
	}
}

package value

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestKind_Constructible(t *testing.T) {
	eligible := 0
	for k := Kind(0); k.IsBuiltin(); k++ {
		if k.Constructible() {
			eligible++
		}
	}
	if eligible != KindCount-2 {
		t.Errorf("expected %d constructible kinds, got %d", KindCount-2, eligible)
	}
	if KindVariant.Constructible() {
		t.Error("variant must not be constructible")
	}
	if KindDiagnosticInfo.Constructible() {
		t.Error("diagnosticinfo must not be constructible")
	}
	if Kind(KindCount).IsBuiltin() {
		t.Error("kind beyond the catalog must not be builtin")
	}
}

func TestKind_ZeroMatchesKind(t *testing.T) {
	for k := Kind(0); k.IsBuiltin(); k++ {
		if !k.Constructible() {
			if k.Zero() != nil {
				t.Errorf("%s: expected nil zero for structural kind", k)
			}
			continue
		}
		if !checkKind(k, k.Zero()) {
			t.Errorf("%s: zero instance %T does not match its own kind", k, k.Zero())
		}
	}
}

func TestNewScalar_Validation(t *testing.T) {
	if _, err := NewScalar(KindDouble, 36.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewScalar(KindDouble, float32(1)); err == nil {
		t.Error("expected type mismatch for float32 payload on double kind")
	}
	if _, err := NewScalar(KindVariant, nil); err == nil {
		t.Error("expected error constructing a variant scalar")
	}
	if _, err := NewScalar(KindGuid, uuid.New()); err != nil {
		t.Errorf("unexpected error for guid payload: %v", err)
	}
}

func TestValue_KindNeverChanges(t *testing.T) {
	v := MustScalar(KindBoolean, true)
	if v.Kind() != KindBoolean || v.IsArray() {
		t.Fatalf("expected boolean scalar, got %v", v)
	}
	if v.Len() != 1 {
		t.Errorf("scalar length must be 1, got %d", v.Len())
	}
	if v.Scalar() != true {
		t.Errorf("expected true, got %v", v.Scalar())
	}
}

func TestNewArray_FixedLength(t *testing.T) {
	arr, err := NewArray(KindInt32, []any{int32(1), int32(2), int32(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !arr.IsArray() || arr.Len() != 3 {
		t.Fatalf("expected array of 3, got %v", arr)
	}
	if arr.Index(1) != int32(2) {
		t.Errorf("expected element 1 to be 2, got %v", arr.Index(1))
	}
	if arr.Index(5) != nil {
		t.Error("out-of-range index must yield nil")
	}

	if _, err := NewArray(KindInt32, []any{int32(1), "nope"}); err == nil {
		t.Error("expected mixed-kind array to be rejected")
	}
}

func TestZeroArray(t *testing.T) {
	arr := ZeroArray(KindDouble, 10)
	if arr.Len() != 10 {
		t.Fatalf("expected length 10, got %d", arr.Len())
	}
	for i, e := range arr.Elems() {
		if e != float64(0) {
			t.Errorf("element %d: expected 0.0, got %v", i, e)
		}
	}
}

func TestValue_Equal(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same scalar", MustScalar(KindInt32, int32(42)), MustScalar(KindInt32, int32(42)), true},
		{"different payload", MustScalar(KindInt32, int32(42)), MustScalar(KindInt32, int32(7)), false},
		{"different kind", MustScalar(KindInt32, int32(0)), MustScalar(KindUInt32, uint32(0)), false},
		{"scalar vs array", ZeroScalar(KindBoolean), ZeroArray(KindBoolean, 1), false},
		{"datetime", MustScalar(KindDateTime, now), MustScalar(KindDateTime, now), true},
		{"bytestring", MustScalar(KindByteString, []byte{1, 2}), MustScalar(KindByteString, []byte{1, 2}), true},
		{"bytestring mismatch", MustScalar(KindByteString, []byte{1}), MustScalar(KindByteString, []byte{2}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			// cmp picks up the Equal method, so both paths must agree.
			if got := cmp.Equal(tc.a, tc.b); got != tc.want {
				t.Errorf("cmp.Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestValue_ElemsCopies(t *testing.T) {
	arr := ZeroArray(KindInt32, 2)
	elems := arr.Elems()
	elems[0] = int32(99)
	if arr.Index(0) == int32(99) {
		t.Error("Elems must return a copy, not the backing slice")
	}
}

func TestNodeID(t *testing.T) {
	if !(NodeID{}).IsNil() {
		t.Error("zero NodeID must be nil")
	}
	if NewNumericID(1, 50000).IsNil() {
		t.Error("numeric ID must not be nil")
	}
	if NewStringID(1, "the.answer").IsNil() {
		t.Error("string ID must not be nil")
	}
	if NewStringID(1, "the.answer") != (NodeID{Namespace: 1, Text: "the.answer"}) {
		t.Error("string ID construction mismatch")
	}
}

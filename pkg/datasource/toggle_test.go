package datasource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sensorspace-protocol/sensorspace-go/pkg/value"
)

func newTestToggle(t *testing.T) (*ToggleSource, string, string) {
	t.Helper()
	dir := t.TempDir()
	triggerPath := filepath.Join(dir, "trigger")
	brightnessPath := filepath.Join(dir, "brightness")

	trigger, err := os.OpenFile(triggerPath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		t.Fatalf("create trigger file: %v", err)
	}
	brightness, err := os.OpenFile(brightnessPath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		t.Fatalf("create brightness file: %v", err)
	}

	src, err := NewToggleSource(trigger, brightness, nil)
	if err != nil {
		t.Fatalf("NewToggleSource failed: %v", err)
	}
	t.Cleanup(func() { src.Close() })
	return src, triggerPath, brightnessPath
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestToggleSource_InitializesManualOff(t *testing.T) {
	_, triggerPath, brightnessPath := newTestToggle(t)

	if got := readFile(t, triggerPath); got != "none" {
		t.Errorf("trigger: expected %q, got %q", "none", got)
	}
	if got := readFile(t, brightnessPath); got != "0" {
		t.Errorf("brightness: expected %q, got %q", "0", got)
	}
}

func TestToggleSource_RoundTrip(t *testing.T) {
	src, _, brightnessPath := newTestToggle(t)
	ctx := context.Background()

	status := src.Write(ctx, value.MustScalar(value.KindBoolean, true), nil)
	if !status.IsGood() {
		t.Fatalf("write failed: %v", status)
	}

	res, err := src.Read(ctx, ReadRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.HasValue() || res.Value.Scalar() != true {
		t.Errorf("expected true after write, got %+v", res)
	}
	src.Release(&res)

	// Writing boolean true must match writing textual "1".
	if got := readFile(t, brightnessPath); got != "1" {
		t.Errorf("brightness: expected %q, got %q", "1", got)
	}

	status = src.Write(ctx, value.MustScalar(value.KindBoolean, false), nil)
	if !status.IsGood() {
		t.Fatalf("write failed: %v", status)
	}
	if got := readFile(t, brightnessPath); got != "0" {
		t.Errorf("brightness: expected %q, got %q", "0", got)
	}
}

func TestToggleSource_ReadHoldsLeaseUntilRelease(t *testing.T) {
	src, _, _ := newTestToggle(t)
	ctx := context.Background()

	res, err := src.Read(ctx, ReadRequest{WithSourceTimestamp: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.HasSourceTimestamp {
		t.Error("expected source timestamp when requested")
	}

	// A write must block until the lease is released.
	written := make(chan Status, 1)
	go func() {
		written <- src.Write(ctx, value.MustScalar(value.KindBoolean, true), nil)
	}()

	time.Sleep(50 * time.Millisecond)
	select {
	case <-written:
		t.Fatal("write completed while a read lease was held")
	default:
	}

	src.Release(&res)
	if status := <-written; !status.IsGood() {
		t.Fatalf("write failed: %v", status)
	}
}

func TestToggleSource_RangeRejected(t *testing.T) {
	src, _, _ := newTestToggle(t)
	ctx := context.Background()

	res, err := src.Read(ctx, ReadRequest{Range: &Range{Last: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasValue() || !res.HasStatus || res.Status != StatusRangeInvalid {
		t.Errorf("expected value-less RANGE_INVALID result, got %+v", res)
	}
	src.Release(&res)

	if status := src.Write(ctx, value.MustScalar(value.KindBoolean, true), &Range{Last: 1}); status != StatusRangeInvalid {
		t.Errorf("ranged write: expected RANGE_INVALID, got %v", status)
	}
}

func TestToggleSource_RejectsWrongKind(t *testing.T) {
	src, _, _ := newTestToggle(t)
	ctx := context.Background()

	if status := src.Write(ctx, value.MustScalar(value.KindInt32, int32(1)), nil); status != StatusTypeMismatch {
		t.Errorf("int32 write: expected TYPE_MISMATCH, got %v", status)
	}
	if status := src.Write(ctx, value.ZeroArray(value.KindBoolean, 2), nil); status != StatusTypeMismatch {
		t.Errorf("boolean array write: expected TYPE_MISMATCH, got %v", status)
	}
}

func TestToggleSource_NoTornReads(t *testing.T) {
	src, _, _ := newTestToggle(t)
	ctx := context.Background()

	const readers = 8
	var group errgroup.Group
	stop := make(chan struct{})

	for r := 0; r < readers; r++ {
		group.Go(func() error {
			for {
				select {
				case <-stop:
					return nil
				default:
				}
				res, err := src.Read(ctx, ReadRequest{})
				if err != nil {
					return err
				}
				// Every observation is a fully applied boolean, never torn.
				if _, ok := res.Value.Scalar().(bool); !ok {
					src.Release(&res)
					return context.Canceled
				}
				src.Release(&res)
			}
		})
	}

	group.Go(func() error {
		for i := 0; i < 100; i++ {
			src.Write(ctx, value.MustScalar(value.KindBoolean, i%2 == 0), nil)
		}
		close(stop)
		return nil
	})

	if err := group.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestToggleSource_CloseRestoresTrigger(t *testing.T) {
	src, triggerPath, _ := newTestToggle(t)

	if err := src.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if got := readFile(t, triggerPath); got != "mmc0" {
		t.Errorf("trigger after close: expected %q, got %q", "mmc0", got)
	}
	if err := src.Close(); err != nil {
		t.Errorf("second close must be a no-op, got %v", err)
	}
}

func TestToggleSource_ReleaseIdempotent(t *testing.T) {
	src, _, _ := newTestToggle(t)

	res, err := src.Read(context.Background(), ReadRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src.Release(&res)
	src.Release(&res) // must not unlock twice

	// Guard must still be writable.
	if status := src.Write(context.Background(), value.MustScalar(value.KindBoolean, true), nil); !status.IsGood() {
		t.Fatalf("write after double release failed: %v", status)
	}
}

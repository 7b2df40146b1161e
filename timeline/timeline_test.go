package timeline

import (
	"math"
	"reflect"
	"testing"
)

func TestScheduleOrdering(t *testing.T) {
	tl := New()
	var got []string

	tl.Schedule(0.3, func() { got = append(got, "c") })
	tl.Schedule(0.1, func() { got = append(got, "a") })
	tl.Schedule(0.2, func() { got = append(got, "b1") })
	tl.Schedule(0.2, func() { got = append(got, "b2") })

	tl.Advance(0.15)
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("after 0.15s got %v", got)
	}

	tl.Advance(1)
	want := []string{"a", "b1", "b2", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNegativeDurationClampsToZero(t *testing.T) {
	tl := New()
	fired := false
	tl.Schedule(-5, func() { fired = true })
	tl.Advance(0)
	if !fired {
		t.Error("negative duration should fire on the next advance")
	}
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name   string
		cancel func(tl *Timeline, h Handle)
		fires  bool
	}{
		{"not cancelled", func(*Timeline, Handle) {}, true},
		{"cancel once", func(tl *Timeline, h Handle) { tl.Cancel(h) }, false},
		{"cancel twice", func(tl *Timeline, h Handle) { tl.Cancel(h); tl.Cancel(h) }, false},
		{"cancel zero handle", func(tl *Timeline, _ Handle) { tl.Cancel(0) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := New()
			count := 0
			h := tl.Schedule(1, func() { count++ })
			tt.cancel(tl, h)
			tl.Advance(2)
			if got := count == 1; got != tt.fires {
				t.Errorf("fired=%v, want %v (count %d)", got, tt.fires, count)
			}
			if tl.Pending(h) {
				t.Error("handle should not be pending after advance")
			}
		})
	}
}

func TestCancelAfterFireIsNoop(t *testing.T) {
	tl := New()
	other := 0
	h := tl.Schedule(0.1, func() {})
	tl.Schedule(0.5, func() { other++ })
	tl.Advance(0.2)
	tl.Cancel(h)
	tl.Advance(1)
	if other != 1 {
		t.Errorf("cancelling a fired handle must not disturb others, got %d", other)
	}
}

func TestChainedContinuationsAnchorToDueTime(t *testing.T) {
	tl := New()
	var stamps []float64

	tl.Schedule(0.05, func() {
		stamps = append(stamps, tl.Now())
		tl.Schedule(0.1, func() {
			stamps = append(stamps, tl.Now())
		})
	})

	// One big step still fires both, each at its own due time.
	tl.Advance(1)
	if len(stamps) != 2 {
		t.Fatalf("expected 2 stamps, got %v", stamps)
	}
	if math.Abs(stamps[0]-0.05) > 1e-9 || math.Abs(stamps[1]-0.15) > 1e-9 {
		t.Errorf("unexpected stamps %v", stamps)
	}
	if tl.Now() != 1 {
		t.Errorf("clock should end at target, got %v", tl.Now())
	}
}

func TestFixedStepAccumulation(t *testing.T) {
	tl := New()
	fired := false
	tl.Schedule(0.5, func() { fired = true })
	for i := 0; i < 30; i++ {
		tl.Advance(1.0 / 60.0)
	}
	if !fired {
		t.Error("0.5s wait should fire after 30 ticks at 60Hz")
	}
}

func TestRemainingAndLen(t *testing.T) {
	tl := New()
	h := tl.Schedule(2, func() {})
	tl.Schedule(3, func() {})
	tl.Advance(0.5)

	if got := tl.Remaining(h); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("remaining = %v, want 1.5", got)
	}
	if tl.Len() != 2 {
		t.Errorf("len = %d, want 2", tl.Len())
	}
	tl.Cancel(h)
	if tl.Remaining(h) != 0 || tl.Len() != 1 {
		t.Errorf("after cancel remaining=%v len=%d", tl.Remaining(h), tl.Len())
	}
}

func TestCancelFromInsideCallback(t *testing.T) {
	tl := New()
	var later Handle
	ran := false
	tl.Schedule(0.1, func() { tl.Cancel(later) })
	later = tl.Schedule(0.2, func() { ran = true })
	tl.Advance(1)
	if ran {
		t.Error("continuation cancelled by an earlier one must not run")
	}
}

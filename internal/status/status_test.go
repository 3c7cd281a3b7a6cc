package status

import (
	"testing"
	"time"
)

var (
	start = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	end   = start.Add(48 * time.Hour)
)

func TestDerive_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		status    Status
		target    time.Time
		remaining time.Duration
	}{
		{"before start", start.Add(-90 * time.Minute), Upcoming, start, 90 * time.Minute},
		{"one nanosecond before start", start.Add(-1), Upcoming, start, 1},
		{"exactly at start", start, Live, end, 48 * time.Hour},
		{"mid run", start.Add(12 * time.Hour), Live, end, 36 * time.Hour},
		{"exactly at end", end, Ended, end, 0},
		{"after end", end.Add(time.Hour), Ended, end, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.now, start, end)
			if got.Status != tt.status {
				t.Errorf("status = %s, want %s", got.Status, tt.status)
			}
			if !got.Target.Equal(tt.target) {
				t.Errorf("target = %v, want %v", got.Target, tt.target)
			}
			if got.Remaining != tt.remaining {
				t.Errorf("remaining = %v, want %v", got.Remaining, tt.remaining)
			}
		})
	}
}

func TestDerive_MonotoneAndNonNegative(t *testing.T) {
	prev := -1
	for offset := -72 * time.Hour; offset <= 120*time.Hour; offset += 17 * time.Minute {
		got := Derive(start.Add(offset), start, end)
		if !got.Status.Valid() {
			t.Fatalf("invalid status %q at offset %v", got.Status, offset)
		}
		if got.Remaining < 0 {
			t.Fatalf("negative remaining %v at offset %v", got.Remaining, offset)
		}
		if got.Status.Rank() < prev {
			t.Fatalf("status moved backwards to %s at offset %v", got.Status, offset)
		}
		prev = got.Status.Rank()
	}
	if prev != Ended.Rank() {
		t.Errorf("expected sweep to finish ended, got rank %d", prev)
	}
}

func TestDerive_ZeroLengthRun(t *testing.T) {
	got := Derive(start, start, start)
	if got.Status != Ended {
		t.Errorf("expected ended for empty interval, got %s", got.Status)
	}
}

func TestDerive_EndBeforeStart(t *testing.T) {
	badEnd := start.Add(-time.Hour)

	if got := Derive(start.Add(-2*time.Hour), start, badEnd); got.Status != Upcoming {
		t.Errorf("expected upcoming, got %s", got.Status)
	}
	if got := Derive(start, start, badEnd); got.Status != Ended {
		t.Errorf("expected ended at start, got %s", got.Status)
	}
}

func TestState_Joinable(t *testing.T) {
	if !Derive(start.Add(-time.Second), start, end).Joinable() {
		t.Error("upcoming competitions should be joinable")
	}
	if Derive(start, start, end).Joinable() {
		t.Error("live competitions should not be joinable")
	}
	if Derive(end, start, end).Joinable() {
		t.Error("ended competitions should not be joinable")
	}
}

func TestSplit(t *testing.T) {
	d := 2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 900*time.Millisecond
	got := Split(d)
	want := Parts{Days: 2, Hours: 3, Minutes: 4, Seconds: 5, TotalSeconds: 183845}
	if got != want {
		t.Errorf("Split = %+v, want %+v", got, want)
	}
	if Split(-time.Minute) != (Parts{}) {
		t.Error("negative durations should split to zero")
	}
}

func TestDurationBadge(t *testing.T) {
	tests := []struct {
		name string
		run  time.Duration
		want Badge
	}{
		{"zero", 0, Badge{Value: 0, Unit: BadgeHours, Circle: true}},
		{"ninety minutes rounds up", 90 * time.Minute, Badge{Value: 2, Unit: BadgeHours, Circle: true}},
		{"just under a day", 23*time.Hour + time.Minute, Badge{Value: 1, Unit: BadgeDays}},
		{"exactly a day", 24 * time.Hour, Badge{Value: 1, Unit: BadgeDays}},
		{"day and an hour", 25 * time.Hour, Badge{Value: 2, Unit: BadgeDays}},
		{"a week", 7 * 24 * time.Hour, Badge{Value: 7, Unit: BadgeDays}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationBadge(start, start.Add(tt.run)); got != tt.want {
				t.Errorf("DurationBadge = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, s := range All {
		got, err := Parse(string(s))
		if err != nil || got != s {
			t.Errorf("Parse(%q) = %q, %v", s, got, err)
		}
	}
	if _, err := Parse("starting-soon"); err == nil {
		t.Error("expected error for unknown status")
	}
}

package clock

import (
	"testing"
	"time"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func TestToday(t *testing.T) {
	clk := fixedClock{t: time.Date(2025, 3, 9, 15, 30, 0, 0, time.Local)}

	if got := Today(clk); got != "2025-03-09" {
		t.Errorf("expected 2025-03-09, got %s", got)
	}
}

func TestTodayZeroPadding(t *testing.T) {
	clk := fixedClock{t: time.Date(2025, 1, 2, 0, 0, 1, 0, time.Local)}

	if got := Today(clk); got != "2025-01-02" {
		t.Errorf("expected zero-padded 2025-01-02, got %s", got)
	}
}

func TestDaysAgoZeroIsToday(t *testing.T) {
	clk := fixedClock{t: time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)}

	if DaysAgo(clk, 0) != Today(clk) {
		t.Errorf("DaysAgo(0) = %s, want %s", DaysAgo(clk, 0), Today(clk))
	}
}

func TestDaysAgoMonthRollover(t *testing.T) {
	clk := fixedClock{t: time.Date(2025, 3, 2, 8, 0, 0, 0, time.Local)}

	if got := DaysAgo(clk, 3); got != "2025-02-27" {
		t.Errorf("expected 2025-02-27, got %s", got)
	}
}

func TestDaysAgoYearRollover(t *testing.T) {
	// Jan 3 minus 7 days lands on Dec 27 of the previous year
	clk := fixedClock{t: time.Date(2025, 1, 3, 8, 0, 0, 0, time.Local)}

	if got := DaysAgo(clk, 7); got != "2024-12-27" {
		t.Errorf("expected 2024-12-27, got %s", got)
	}
}

func TestIsToday(t *testing.T) {
	clk := fixedClock{t: time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local)}

	if !IsToday(clk, "2025-06-15") {
		t.Error("expected 2025-06-15 to be today")
	}
	if IsToday(clk, "2025-06-14") {
		t.Error("expected 2025-06-14 to not be today")
	}
}

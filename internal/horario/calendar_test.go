package horario

import (
	"errors"
	"testing"

	"github.com/go-playground/locales/es_CO"
)

func TestWeekdayName(t *testing.T) {
	trans := es_CO.New()

	got, err := WeekdayName("2026-03-04", trans)
	if err != nil {
		t.Fatalf("WeekdayName failed: %v", err)
	}
	if got != "miércoles" {
		t.Fatalf("WeekdayName(2026-03-04) = %q, want \"miércoles\"", got)
	}

	got, err = WeekdayName("2026-03-01", trans)
	if err != nil {
		t.Fatalf("WeekdayName failed: %v", err)
	}
	if got != "domingo" {
		t.Fatalf("WeekdayName(2026-03-01) = %q, want \"domingo\"", got)
	}
}

func TestWeekdayNameBadDate(t *testing.T) {
	if _, err := WeekdayName("03/04/2026", es_CO.New()); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestMonthBuckets(t *testing.T) {
	months, err := MonthBuckets("2026-01-15", "2026-03-02")
	if err != nil {
		t.Fatalf("MonthBuckets failed: %v", err)
	}
	want := []string{"2026-01", "2026-02", "2026-03"}
	if len(months) != len(want) {
		t.Fatalf("MonthBuckets = %v, want %v", months, want)
	}
	for i := range want {
		if months[i] != want[i] {
			t.Fatalf("MonthBuckets = %v, want %v", months, want)
		}
	}
}

func TestMonthBucketsSingleMonth(t *testing.T) {
	months, err := MonthBuckets("2026-07-01", "2026-07-31")
	if err != nil {
		t.Fatalf("MonthBuckets failed: %v", err)
	}
	if len(months) != 1 || months[0] != "2026-07" {
		t.Fatalf("MonthBuckets = %v, want [2026-07]", months)
	}
}

func TestMonthBucketsAcrossYears(t *testing.T) {
	months, err := MonthBuckets("2025-11-20", "2026-02-01")
	if err != nil {
		t.Fatalf("MonthBuckets failed: %v", err)
	}
	want := []string{"2025-11", "2025-12", "2026-01", "2026-02"}
	for i := range want {
		if months[i] != want[i] {
			t.Fatalf("MonthBuckets = %v, want %v", months, want)
		}
	}
}

func TestMonthBucketsInvertedRange(t *testing.T) {
	if _, err := MonthBuckets("2026-03-02", "2026-01-15"); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	// Inverted within the same month still counts as inverted.
	if _, err := MonthBuckets("2026-01-20", "2026-01-10"); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

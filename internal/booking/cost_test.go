package booking

import (
	"errors"
	"testing"
)

func TestComputeCostStrings(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		rate      float64
		wantDays  int
		wantTotal float64
	}{
		{"same-day rental costs one day", "2024-01-01", "2024-01-01", 100, 1, 100},
		{"inclusive of both endpoints", "2024-01-01", "2024-01-03", 100, 3, 300},
		{"full week", "2024-03-10", "2024-03-16", 55, 7, 385},
		{"across month boundary", "2024-01-31", "2024-02-02", 70, 3, 210},
		{"across leap day", "2024-02-28", "2024-03-01", 50, 3, 150},
		{"fractional rate keeps rate precision", "2024-05-01", "2024-05-02", 49.5, 2, 99},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			days, total, err := ComputeCostStrings(tc.start, tc.end, tc.rate)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if days != tc.wantDays {
				t.Errorf("days: expected %d, got %d", tc.wantDays, days)
			}
			if total != tc.wantTotal {
				t.Errorf("total: expected %v, got %v", tc.wantTotal, total)
			}
		})
	}
}

func TestComputeCostStrings_InvalidRange(t *testing.T) {
	_, _, err := ComputeCostStrings("2024-01-05", "2024-01-04", 100)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestComputeCostStrings_BadDates(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"empty start", "", "2024-01-02"},
		{"empty end", "2024-01-02", ""},
		{"wrong layout", "01/02/2024", "01/03/2024"},
		{"not a date", "soon", "later"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := ComputeCostStrings(tc.start, tc.end, 100); !errors.Is(err, ErrBadDate) {
				t.Errorf("expected ErrBadDate for malformed dates, got %v", err)
			}
		})
	}
}

func TestRentalDays_NotCachedAcrossRates(t *testing.T) {
	// The same range priced at two different rates must yield two different
	// totals; the relationship is recomputed, never cached.
	_, totalA, err := ComputeCostStrings("2024-06-01", "2024-06-03", 100)
	if err != nil {
		t.Fatal(err)
	}
	_, totalB, err := ComputeCostStrings("2024-06-01", "2024-06-03", 250)
	if err != nil {
		t.Fatal(err)
	}
	if totalA != 300 || totalB != 750 {
		t.Errorf("expected 300 and 750, got %v and %v", totalA, totalB)
	}
}

package sample

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestEvenCoverage tests the documented shape for a 97-page document
// sampled at 5 pages: strictly increasing, length 5, starts at 1, ends
// within bounds.
func TestEvenCoverage(t *testing.T) {
	got := Pages(97, 5)

	if len(got) != 5 {
		t.Fatalf("expected 5 indices, got %d", len(got))
	}
	if got[0] != 1 {
		t.Errorf("expected first index 1, got %d", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Errorf("indices not strictly increasing: %v", got)
		}
	}
	if got[len(got)-1] > 97 {
		t.Errorf("last index %d exceeds total pages", got[len(got)-1])
	}
}

// TestSmallDocuments tests documents at or below the sample budget.
func TestSmallDocuments(t *testing.T) {
	if diff := cmp.Diff([]int{1, 2, 3}, Pages(3, 5)); diff != "" {
		t.Errorf("3 pages, budget 5 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, Pages(1, 5)); diff != "" {
		t.Errorf("single page (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, Pages(5, 5)); diff != "" {
		t.Errorf("budget equals pages (-want +got):\n%s", diff)
	}
}

// TestDegenerateInputs tests zero pages and zero budget.
func TestDegenerateInputs(t *testing.T) {
	if got := Pages(0, 5); got != nil {
		t.Errorf("expected nil for empty document, got %v", got)
	}
	if got := Pages(10, 0); got != nil {
		t.Errorf("expected nil for zero budget, got %v", got)
	}
}

// TestBoundsNeverExceeded tests a sweep of sizes for the invariants:
// in-range indices and correct length.
func TestBoundsNeverExceeded(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for budget := 1; budget <= 10; budget++ {
			got := Pages(total, budget)
			want := min(budget, total)
			if len(got) != want {
				t.Fatalf("total=%d budget=%d: expected %d indices, got %d", total, budget, want, len(got))
			}
			for _, idx := range got {
				if idx < 1 || idx > total {
					t.Fatalf("total=%d budget=%d: index %d out of range", total, budget, idx)
				}
			}
		}
	}
}

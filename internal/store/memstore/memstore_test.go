package memstore

import (
	"testing"
	"time"

	"github.com/idilsaglam/shoplist/internal/model"
)

func sample() Items {
	return New(
		model.Item{ID: 1, Name: "Milk", Quantity: 2, Unit: "liters"},
		model.Item{ID: 2, Name: "Bread", Quantity: 1, Unit: "loaf"},
		model.Item{ID: 3, Name: "Eggs", Quantity: 12, Unit: "pcs"},
	)
}

func ids(s Items) []int64 {
	var out []int64
	for _, it := range s.Slice() {
		out = append(out, it.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddAppendsAtTail(t *testing.T) {
	s := sample()
	got := s.Add(model.Item{ID: 9, Name: "Tea", Quantity: 1, Unit: "box"})

	if want := []int64{1, 2, 3, 9}; !equalIDs(ids(got), want) {
		t.Errorf("Expected ids %v, got %v", want, ids(got))
	}
	if s.Len() != 3 {
		t.Errorf("Expected original list untouched, got len %d", s.Len())
	}
	it, ok := got.Get(9)
	if !ok || it.Name != "Tea" || it.Purchased {
		t.Errorf("Expected unpurchased Tea, got %+v (found=%v)", it, ok)
	}
}

func TestToggleRoundTrip(t *testing.T) {
	s := sample()
	before, _ := s.Get(2)

	on := s.Toggle(2, true)
	if it, _ := on.Get(2); !it.Purchased {
		t.Fatalf("Expected item 2 purchased, got %+v", it)
	}
	if it, _ := s.Get(2); it.Purchased {
		t.Errorf("Expected original list untouched, got %+v", it)
	}

	off := on.Toggle(2, false)
	after, _ := off.Get(2)
	if after != before {
		t.Errorf("Expected %+v after round trip, got %+v", before, after)
	}
	if !equalIDs(ids(off), []int64{1, 2, 3}) {
		t.Errorf("Expected order kept, got %v", ids(off))
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	s := sample()
	got := s.Toggle(42, true)
	for _, it := range got.Slice() {
		if it.Purchased {
			t.Errorf("Expected nothing purchased, got %+v", it)
		}
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name string
		id   int64
		want []int64
	}{
		{"Head", 1, []int64{2, 3}},
		{"Middle", 2, []int64{1, 3}},
		{"Tail", 3, []int64{1, 2}},
		{"Unknown", 42, []int64{1, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := sample()
			got := s.Delete(tc.id)
			if !equalIDs(ids(got), tc.want) {
				t.Errorf("Expected ids %v, got %v", tc.want, ids(got))
			}
			if s.Len() != 3 {
				t.Errorf("Expected original list untouched, got len %d", s.Len())
			}
		})
	}
}

func TestSliceIsACopy(t *testing.T) {
	s := sample()
	out := s.Slice()
	out[0].Name = "changed"
	if it, _ := s.Get(1); it.Name != "Milk" {
		t.Errorf("Expected Milk, got %q", it.Name)
	}
}

func TestIDSourceIsStrictlyIncreasing(t *testing.T) {
	clock := time.UnixMilli(1_000)
	src := NewIDSource(func() time.Time { return clock })

	if got := src.Next(); got != 1000 {
		t.Errorf("Expected 1000, got %d", got)
	}
	if got := src.Next(); got != 1001 {
		t.Errorf("Expected 1001 within the same millisecond, got %d", got)
	}
	clock = time.UnixMilli(500)
	if got := src.Next(); got != 1002 {
		t.Errorf("Expected 1002 after clock stepped back, got %d", got)
	}
	clock = time.UnixMilli(5_000)
	if got := src.Next(); got != 5000 {
		t.Errorf("Expected 5000, got %d", got)
	}
}

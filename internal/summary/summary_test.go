package summary

import (
	"testing"

	"github.com/idilsaglam/shoplist/internal/model"
)

func items(purchased ...bool) []model.Item {
	out := make([]model.Item, len(purchased))
	for i, p := range purchased {
		out[i] = model.Item{ID: int64(i + 1), Name: "x", Purchased: p}
	}
	return out
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name      string
		items     []model.Item
		kind      Kind
		remaining int
		text      string
	}{
		{"Empty", nil, None, 0, ""},
		{"AllPurchased", items(true, true, true), AllPurchased, 0, "All items purchased!"},
		{"OnePurchased", items(false, true, false), Remaining, 2, "Items remaining: 2"},
		{"NonePurchased", items(false), Remaining, 1, "Items remaining: 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Derive(tc.items)
			if got.Kind != tc.kind {
				t.Errorf("Expected kind %v, got %v", tc.kind, got.Kind)
			}
			if got.Remaining != tc.remaining {
				t.Errorf("Expected %d remaining, got %d", tc.remaining, got.Remaining)
			}
			if got.Text() != tc.text {
				t.Errorf("Expected text %q, got %q", tc.text, got.Text())
			}
			if got.Visible() != (tc.kind != None) {
				t.Errorf("Expected visible=%v, got %v", tc.kind != None, got.Visible())
			}
			if got.Total != len(tc.items) || got.Purchased+got.Remaining != got.Total {
				t.Errorf("Inconsistent counts: %+v", got)
			}
		})
	}
}

package shoplist

import (
	"errors"
	"testing"
	"time"

	"github.com/idilsaglam/shoplist/internal/store/memstore"
	"github.com/idilsaglam/shoplist/internal/summary"
	"github.com/idilsaglam/shoplist/internal/validate"
)

func newComponent() *Component {
	clock := time.UnixMilli(1_700_000_000_000)
	return New(memstore.NewIDSource(func() time.Time { return clock }))
}

func TestScenario(t *testing.T) {
	c := newComponent()

	milk, err := c.Add("Milk", "2", "liters")
	if err != nil {
		t.Fatalf("Expected Milk to be added, got %v", err)
	}
	if milk.Quantity != 2 || milk.Purchased {
		t.Errorf("Expected quantity 2 and not purchased, got %+v", milk)
	}
	if c.State().Kind != Idle {
		t.Errorf("Expected Idle after success, got %+v", c.State())
	}

	steps := []struct {
		name, qty, unit string
		want            error
	}{
		{"milk", "1", "liters", validate.ErrDuplicate},
		{"Bread$", "1", "loaf", validate.ErrName},
		{"Eggs", "abc", "pcs", validate.ErrQuantity},
	}
	for _, s := range steps {
		_, err := c.Add(s.name, s.qty, s.unit)
		if !errors.Is(err, s.want) {
			t.Errorf("Add(%q): expected %v, got %v", s.name, s.want, err)
		}
		if st := c.State(); st.Kind != Invalid || st.Message != s.want.Error() {
			t.Errorf("Add(%q): expected Invalid %q, got %+v", s.name, s.want.Error(), st)
		}
		if c.Len() != 1 {
			t.Errorf("Add(%q): expected 1 item, got %d", s.name, c.Len())
		}
	}
}

func TestSubmitClearsFormOnlyOnSuccess(t *testing.T) {
	c := newComponent()
	c.SetName("Eggs")
	c.SetQuantity("x")
	c.SetUnit("pcs")

	if _, err := c.Submit(); err == nil {
		t.Fatal("Expected rejection")
	}
	if got := c.Pending(); got != (Pending{Name: "Eggs", Quantity: "x", Unit: "pcs"}) {
		t.Errorf("Expected pending input kept after rejection, got %+v", got)
	}

	// editing a field does not clear the error
	c.SetQuantity("12")
	if c.State().Kind != Invalid {
		t.Errorf("Expected error kept while editing, got %+v", c.State())
	}

	item, err := c.Submit()
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if c.Pending() != (Pending{}) {
		t.Errorf("Expected cleared form, got %+v", c.Pending())
	}
	if c.State() != (FormState{Kind: Idle}) {
		t.Errorf("Expected Idle, got %+v", c.State())
	}
	got, ok := c.Get(item.ID)
	if !ok || got != item {
		t.Errorf("Expected lookup to return %+v, got %+v (found=%v)", item, got, ok)
	}
}

func TestLatestRejectionReplacesMessage(t *testing.T) {
	c := newComponent()
	c.Add("", "", "")
	c.Add("Tea", "1", "b0x")
	if st := c.State(); st.Message != validate.ErrUnit.Error() {
		t.Errorf("Expected %q, got %q", validate.ErrUnit.Error(), st.Message)
	}
}

func TestIDsAreUniqueWithinOneMillisecond(t *testing.T) {
	c := newComponent()
	a, _ := c.Add("A", "1", "pcs")
	b, _ := c.Add("B", "1", "pcs")
	if a.ID == b.ID || b.ID <= a.ID {
		t.Errorf("Expected increasing ids, got %d then %d", a.ID, b.ID)
	}
}

func TestToggleDeleteAndSummary(t *testing.T) {
	c := newComponent()
	if c.Summary().Visible() {
		t.Error("Expected no summary for an empty list")
	}
	var ids []int64
	for _, n := range []string{"Milk", "Bread", "Eggs"} {
		it, err := c.Add(n, "1", "pcs")
		if err != nil {
			t.Fatalf("Add(%q): %v", n, err)
		}
		ids = append(ids, it.ID)
	}

	c.Toggle(ids[0], true)
	if s := c.Summary(); s.Kind != summary.Remaining || s.Remaining != 2 {
		t.Errorf("Expected 2 remaining, got %+v", s)
	}

	c.Toggle(ids[1], true)
	c.Toggle(ids[2], true)
	if s := c.Summary(); s.Kind != summary.AllPurchased {
		t.Errorf("Expected all purchased, got %+v", s)
	}

	c.Delete(ids[1])
	items := c.Items()
	if len(items) != 2 || items[0].ID != ids[0] || items[1].ID != ids[2] {
		t.Errorf("Expected Milk, Eggs in order, got %+v", items)
	}

	// deleting frees the name for reuse
	if _, err := c.Add("bread", "2", "loaf"); err != nil {
		t.Errorf("Expected bread to be accepted after delete, got %v", err)
	}
}

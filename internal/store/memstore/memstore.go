package memstore

import "github.com/idilsaglam/shoplist/internal/model"

// In-memory list of items. Insertion order is display order.
// Every mutation returns a fresh Items; the receiver is never modified,
// so a caller can hold on to an old value safely.

type Items struct {
	items []model.Item
}

// New returns a list holding a copy of items.
func New(items ...model.Item) Items {
	return Items{items: clone(items, 0)}
}

// Add appends item at the tail. The caller is expected to have validated it.
func (s Items) Add(item model.Item) Items {
	out := clone(s.items, 1)
	out = append(out, item)
	return Items{items: out}
}

// Toggle sets Purchased on the item with the given id. Unknown ids are a no-op.
func (s Items) Toggle(id int64, purchased bool) Items {
	i := s.index(id)
	if i < 0 {
		return s
	}
	out := clone(s.items, 0)
	out[i].Purchased = purchased
	return Items{items: out}
}

// Delete removes the item with the given id. Unknown ids are a no-op.
func (s Items) Delete(id int64) Items {
	i := s.index(id)
	if i < 0 {
		return s
	}
	out := make([]model.Item, 0, len(s.items)-1)
	out = append(out, s.items[:i]...)
	out = append(out, s.items[i+1:]...)
	return Items{items: out}
}

// Get returns the item with the given id.
func (s Items) Get(id int64) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

func (s Items) Len() int { return len(s.items) }

// Slice returns a copy of the items in display order.
func (s Items) Slice() []model.Item { return clone(s.items, 0) }

func (s Items) index(id int64) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func clone(items []model.Item, extra int) []model.Item {
	out := make([]model.Item, len(items), len(items)+extra)
	copy(out, items)
	return out
}

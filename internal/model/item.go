package model

// Item is one shopping-list entry.
// Only Purchased changes after creation.
type Item struct {
	ID        int64
	Name      string
	Quantity  float64
	Unit      string
	Purchased bool
}

// Package summary derives the completion line shown under the list.
package summary

import (
	"fmt"

	"github.com/idilsaglam/shoplist/internal/model"
)

type Kind int

const (
	None Kind = iota
	AllPurchased
	Remaining
)

// Summary is recomputed from the items on every render; it holds no state
// of its own.
type Summary struct {
	Kind      Kind
	Remaining int
	Purchased int
	Total     int
}

func Derive(items []model.Item) Summary {
	s := Summary{Total: len(items)}
	for _, it := range items {
		if it.Purchased {
			s.Purchased++
		} else {
			s.Remaining++
		}
	}
	switch {
	case s.Total == 0:
		s.Kind = None
	case s.Remaining == 0:
		s.Kind = AllPurchased
	default:
		s.Kind = Remaining
	}
	return s
}

// Visible reports whether a summary line is shown at all.
func (s Summary) Visible() bool { return s.Kind != None }

func (s Summary) Text() string {
	switch s.Kind {
	case AllPurchased:
		return "All items purchased!"
	case Remaining:
		return fmt.Sprintf("Items remaining: %d", s.Remaining)
	}
	return ""
}

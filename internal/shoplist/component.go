// Package shoplist ties the form, the validator and the item list together.
// The terminal view and the check subcommand both drive a Component and
// re-render from it after every call.
package shoplist

import (
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store/memstore"
	"github.com/idilsaglam/shoplist/internal/summary"
	"github.com/idilsaglam/shoplist/internal/validate"
)

// FormKind is the form's state: Idle shows no error, Invalid shows Message.
type FormKind int

const (
	Idle FormKind = iota
	Invalid
)

type FormState struct {
	Kind    FormKind
	Message string
}

// Pending is the text typed into the form and not yet committed.
type Pending struct {
	Name, Quantity, Unit string
}

type Component struct {
	items   memstore.Items
	ids     *memstore.IDSource
	pending Pending
	state   FormState
}

// New returns an empty component. A nil ids uses the wall clock.
func New(ids *memstore.IDSource) *Component {
	if ids == nil {
		ids = memstore.NewIDSource(nil)
	}
	return &Component{items: memstore.New(), ids: ids}
}

func (c *Component) SetName(s string)     { c.pending.Name = s }
func (c *Component) SetQuantity(s string) { c.pending.Quantity = s }
func (c *Component) SetUnit(s string)     { c.pending.Unit = s }

// Submit tries to commit the pending input. On rejection the form becomes
// Invalid with the rejection text and the list is unchanged. On success the
// new item is appended, the form is cleared and Idle, and the item is
// returned.
func (c *Component) Submit() (model.Item, error) {
	item, err := validate.Validate(c.pending.Name, c.pending.Quantity, c.pending.Unit, c.items.Slice())
	if err != nil {
		c.state = FormState{Kind: Invalid, Message: err.Error()}
		return model.Item{}, err
	}
	item.ID = c.ids.Next()
	c.items = c.items.Add(item)
	c.pending = Pending{}
	c.state = FormState{Kind: Idle}
	return item, nil
}

// Add fills the form and submits it in one call.
func (c *Component) Add(name, quantity, unit string) (model.Item, error) {
	c.pending = Pending{Name: name, Quantity: quantity, Unit: unit}
	return c.Submit()
}

func (c *Component) Toggle(id int64, purchased bool) {
	c.items = c.items.Toggle(id, purchased)
}

func (c *Component) Delete(id int64) {
	c.items = c.items.Delete(id)
}

func (c *Component) Get(id int64) (model.Item, bool) { return c.items.Get(id) }

func (c *Component) Items() []model.Item      { return c.items.Slice() }
func (c *Component) Len() int                 { return c.items.Len() }
func (c *Component) Summary() summary.Summary { return summary.Derive(c.items.Slice()) }
func (c *Component) State() FormState         { return c.state }
func (c *Component) Pending() Pending         { return c.pending }

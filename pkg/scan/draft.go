// Package scan edits the line items extracted from a receipt image
// before they are submitted as transactions. Items are transient and
// client-only; identity is purely positional. The list stays dense
// (indices 0..N-1 with no gaps) across every mutation, so removing an
// item shifts everything after it down by one.
package scan

import "github.com/MdSufiyan005/INHACK/cli/pkg/api"

// PaymentCash and PaymentOnline are the only accepted payment methods.
// Anything the recognition model returns that is not exactly "online"
// coerces to Cash.
const (
	PaymentCash   = "Cash"
	PaymentOnline = "online"
)

// Item is one editable draft row
type Item struct {
	ItemName      string
	Quantity      int
	Price         float64
	PaymentMethod string
}

// Draft is the mutable ordered list of scan items pending confirmation
type Draft struct {
	items []Item
}

// NewDraft returns an empty draft
func NewDraft() *Draft {
	return &Draft{}
}

// coerce normalizes a raw scan item: quantity defaults to 1 when
// missing or non-positive, price to 0 when missing or negative, payment
// method to Cash unless exactly "online".
func coerce(raw api.ScanItem) Item {
	quantity := raw.Quantity
	if quantity < 1 {
		quantity = 1
	}

	price := raw.Price
	if price < 0 {
		price = 0
	}

	payment := PaymentCash
	if raw.PaymentMethod == PaymentOnline {
		payment = PaymentOnline
	}

	return Item{
		ItemName:      raw.ItemName,
		Quantity:      quantity,
		Price:         price,
		PaymentMethod: payment,
	}
}

// SeedFrom replaces the whole draft with the scan response items,
// coercing each numeric field on the way in.
func (d *Draft) SeedFrom(items []api.ScanItem) {
	d.items = make([]Item, 0, len(items))
	for _, raw := range items {
		d.items = append(d.items, coerce(raw))
	}
}

// RemoveAt removes the item at index. Items after it shift down by one;
// indices stay contiguous. Out-of-range indices are ignored.
func (d *Draft) RemoveAt(index int) {
	if index < 0 || index >= len(d.items) {
		return
	}
	d.items = append(d.items[:index], d.items[index+1:]...)
}

// Append adds one default item at the end
func (d *Draft) Append() {
	d.items = append(d.items, Item{
		Quantity:      1,
		Price:         0,
		PaymentMethod: PaymentCash,
	})
}

// SetItem replaces the item at index after user edits. Edited values go
// through the same coercion as seeded ones. Out-of-range indices are
// ignored.
func (d *Draft) SetItem(index int, item Item) {
	if index < 0 || index >= len(d.items) {
		return
	}
	d.items[index] = coerce(api.ScanItem{
		ItemName:      item.ItemName,
		Quantity:      item.Quantity,
		Price:         item.Price,
		PaymentMethod: item.PaymentMethod,
	})
}

// Items returns a copy of the current draft rows
func (d *Draft) Items() []Item {
	out := make([]Item, len(d.items))
	copy(out, d.items)
	return out
}

// Len returns the number of draft rows
func (d *Draft) Len() int {
	return len(d.items)
}

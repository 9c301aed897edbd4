// Package stock merges independently fetched purchase and sale
// collections into one chronological feed. Merge is a pure function of
// its inputs; nothing is cached and the feed is recomputed on every
// display request. Consistency after a mutation comes from re-fetching
// the whole collection, never from patching locally.
package stock

import (
	"sort"
	"time"

	"github.com/MdSufiyan005/INHACK/cli/pkg/api"
)

// Kind tags a merged row with its source collection
type Kind string

const (
	KindPurchase Kind = "purchase"
	KindSale     Kind = "sale"
)

// Filter selects which kinds appear in the merged feed
type Filter string

const (
	FilterAll      Filter = "all"
	FilterPurchase Filter = "purchase"
	FilterSale     Filter = "sale"
)

// Transaction is the polymorphic display shape shared by both kinds.
// Price holds the purchase price or the sale total_price. Edit and
// delete operations address rows by (Kind, ID) taken from this model,
// not by re-parsing rendered output.
type Transaction struct {
	Kind          Kind
	ID            int
	ItemName      string
	Quantity      int
	Price         float64
	PaymentMethod string
	Timestamp     time.Time
	RawDate       string
}

// timestamp layouts the backend has been seen emitting
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp prefers created_at and falls back to date. A missing or
// unparseable value yields the zero time, which sorts last (oldest).
func parseTimestamp(createdAt, date string) time.Time {
	for _, raw := range []string{createdAt, date} {
		if raw == "" {
			continue
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

func fromPurchase(p api.Purchase) Transaction {
	raw := p.CreatedAt
	if raw == "" {
		raw = p.Date
	}
	return Transaction{
		Kind:          KindPurchase,
		ID:            p.ID,
		ItemName:      p.ItemName,
		Quantity:      p.Quantity,
		Price:         p.Price,
		PaymentMethod: p.PaymentMethod,
		Timestamp:     parseTimestamp(p.CreatedAt, p.Date),
		RawDate:       raw,
	}
}

func fromSale(s api.Sale) Transaction {
	raw := s.CreatedAt
	if raw == "" {
		raw = s.Date
	}
	return Transaction{
		Kind:          KindSale,
		ID:            s.ID,
		ItemName:      s.ItemName,
		Quantity:      s.Quantity,
		Price:         s.TotalPrice,
		PaymentMethod: s.PaymentMethod,
		Timestamp:     parseTimestamp(s.CreatedAt, s.Date),
		RawDate:       raw,
	}
}

// Merge combines purchases and sales into one feed sorted non-increasing
// by timestamp. FilterAll interleaves both kinds; FilterPurchase and
// FilterSale project a single kind. Within equal timestamps the input
// order is preserved, purchases before sales.
func Merge(purchases []api.Purchase, sales []api.Sale, filter Filter) []Transaction {
	merged := make([]Transaction, 0, len(purchases)+len(sales))

	if filter == FilterAll || filter == FilterPurchase {
		for _, p := range purchases {
			merged = append(merged, fromPurchase(p))
		}
	}
	if filter == FilterAll || filter == FilterSale {
		for _, s := range sales {
			merged = append(merged, fromSale(s))
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})

	return merged
}

// EmptyMessage is the caller-facing text for an empty feed, instead of
// rendering an empty table.
func EmptyMessage(filter Filter) string {
	switch filter {
	case FilterPurchase:
		return "No purchase transactions found"
	case FilterSale:
		return "No sale transactions found"
	default:
		return "No transactions found"
	}
}

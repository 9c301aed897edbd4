package scan

import (
	"testing"

	"github.com/MdSufiyan005/INHACK/cli/pkg/api"
)

// TestCoerceDefaults validates numeric and payment coercion on seed
func TestCoerceDefaults(t *testing.T) {
	testCases := []struct {
		raw    api.ScanItem
		expect Item
		name   string
	}{
		{
			api.ScanItem{ItemName: "Rice", Quantity: 0, Price: -5, PaymentMethod: "cash"},
			Item{ItemName: "Rice", Quantity: 1, Price: 0, PaymentMethod: PaymentCash},
			"zero quantity negative price lowercase cash",
		},
		{
			api.ScanItem{ItemName: "Oil", Quantity: 3, Price: 250, PaymentMethod: "online"},
			Item{ItemName: "Oil", Quantity: 3, Price: 250, PaymentMethod: PaymentOnline},
			"valid online row passes through",
		},
		{
			api.ScanItem{ItemName: "Salt", Quantity: -2, Price: 10, PaymentMethod: "UPI"},
			Item{ItemName: "Salt", Quantity: 1, Price: 10, PaymentMethod: PaymentCash},
			"negative quantity unknown payment",
		},
		{
			api.ScanItem{ItemName: "Tea"},
			Item{ItemName: "Tea", Quantity: 1, Price: 0, PaymentMethod: PaymentCash},
			"all fields missing",
		},
		{
			api.ScanItem{ItemName: "Ghee", Quantity: 1, Price: 0, PaymentMethod: "Online"},
			Item{ItemName: "Ghee", Quantity: 1, Price: 0, PaymentMethod: PaymentCash},
			"capitalized Online is not the online token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			draft := NewDraft()
			draft.SeedFrom([]api.ScanItem{tc.raw})

			got := draft.Items()[0]
			if got != tc.expect {
				t.Errorf("Expected %+v, got %+v", tc.expect, got)
			}
		})
	}
}

// TestSeedFromReplaces validates seeding discards any prior draft rows
func TestSeedFromReplaces(t *testing.T) {
	draft := NewDraft()
	draft.SeedFrom([]api.ScanItem{{ItemName: "Old1"}, {ItemName: "Old2"}})
	draft.SeedFrom([]api.ScanItem{{ItemName: "New"}})

	if draft.Len() != 1 {
		t.Fatalf("Expected 1 row after reseed, got %d", draft.Len())
	}
	if draft.Items()[0].ItemName != "New" {
		t.Errorf("Expected reseeded row, got %+v", draft.Items()[0])
	}
}

// TestRemoveAtShiftsDown validates removal keeps indices contiguous
func TestRemoveAtShiftsDown(t *testing.T) {
	draft := NewDraft()
	draft.SeedFrom([]api.ScanItem{
		{ItemName: "A", Quantity: 1},
		{ItemName: "B", Quantity: 1},
		{ItemName: "C", Quantity: 1},
	})

	draft.RemoveAt(1)

	if draft.Len() != 2 {
		t.Fatalf("Expected 2 rows after removal, got %d", draft.Len())
	}
	items := draft.Items()
	if items[0].ItemName != "A" || items[1].ItemName != "C" {
		t.Errorf("Expected A then C, got %s then %s", items[0].ItemName, items[1].ItemName)
	}
}

// TestRemoveAtOutOfRange validates bad indices are ignored
func TestRemoveAtOutOfRange(t *testing.T) {
	draft := NewDraft()
	draft.SeedFrom([]api.ScanItem{{ItemName: "Only", Quantity: 1}})

	draft.RemoveAt(-1)
	draft.RemoveAt(5)

	if draft.Len() != 1 {
		t.Errorf("Out-of-range removal should be a no-op, got %d rows", draft.Len())
	}
}

// TestAppendDefaults validates appended rows start with safe defaults
func TestAppendDefaults(t *testing.T) {
	draft := NewDraft()
	draft.Append()

	if draft.Len() != 1 {
		t.Fatalf("Expected 1 row, got %d", draft.Len())
	}
	got := draft.Items()[0]
	if got.Quantity != 1 || got.Price != 0 || got.PaymentMethod != PaymentCash {
		t.Errorf("Expected default row, got %+v", got)
	}
}

// TestSetItemRecoerces validates edits pass back through coercion
func TestSetItemRecoerces(t *testing.T) {
	draft := NewDraft()
	draft.Append()

	draft.SetItem(0, Item{ItemName: "Jam", Quantity: 0, Price: -1, PaymentMethod: "card"})

	got := draft.Items()[0]
	if got.Quantity != 1 {
		t.Errorf("Expected quantity coerced to 1, got %d", got.Quantity)
	}
	if got.Price != 0 {
		t.Errorf("Expected price coerced to 0, got %v", got.Price)
	}
	if got.PaymentMethod != PaymentCash {
		t.Errorf("Expected payment coerced to Cash, got %s", got.PaymentMethod)
	}

	// Out-of-range set is a no-op
	draft.SetItem(9, Item{ItemName: "Nope"})
	if draft.Len() != 1 {
		t.Errorf("Out-of-range SetItem should not grow the draft")
	}
}

// TestItemsReturnsCopy validates mutating the returned slice does not
// touch the draft
func TestItemsReturnsCopy(t *testing.T) {
	draft := NewDraft()
	draft.SeedFrom([]api.ScanItem{{ItemName: "Orig", Quantity: 1}})

	items := draft.Items()
	items[0].ItemName = "Mutated"

	if draft.Items()[0].ItemName != "Orig" {
		t.Error("Items should return a copy, not the backing slice")
	}
}

package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/MdSufiyan005/INHACK/cli/pkg/api"
	"github.com/MdSufiyan005/INHACK/cli/pkg/scan"
	"github.com/MdSufiyan005/INHACK/cli/pkg/stock"
)

// TestRupee validates the currency formatting
func TestRupee(t *testing.T) {
	testCases := []struct {
		amount float64
		expect string
	}{
		{450, "₹450"},
		{99.5, "₹99.5"},
		{0, "₹0"},
	}

	for _, tc := range testCases {
		if got := Rupee(tc.amount); got != tc.expect {
			t.Errorf("Rupee(%v) = %q, want %q", tc.amount, got, tc.expect)
		}
	}
}

// TestTransactionTable validates the merged feed rendering
func TestTransactionTable(t *testing.T) {
	ts, _ := time.Parse("2006-01-02", "2025-03-15")
	out := TransactionTable([]stock.Transaction{
		{Kind: stock.KindPurchase, ID: 1, ItemName: "Rice", Quantity: 5, Price: 450, PaymentMethod: "Cash", Timestamp: ts},
		{Kind: stock.KindSale, ID: 2, ItemName: "Oil", Quantity: 1, Price: 160, PaymentMethod: "online", Timestamp: ts},
	})

	for _, want := range []string{"ID", "Purchase", "Sale", "Rice", "Oil", "₹450", "₹160", "15 Mar 2025"} {
		if !strings.Contains(out, want) {
			t.Errorf("Table missing %q:\n%s", want, out)
		}
	}
}

// TestTransactionTableShowsID validates every row displays the backend
// id that edit and delete commands address it by
func TestTransactionTableShowsID(t *testing.T) {
	ts, _ := time.Parse("2006-01-02", "2025-03-01")
	out := TransactionTable([]stock.Transaction{
		{Kind: stock.KindPurchase, ID: 4242, ItemName: "Rice", Quantity: 5, Price: 450, PaymentMethod: "Cash", Timestamp: ts},
	})

	if !strings.Contains(out, "4242") {
		t.Errorf("Table should display the backend id 4242:\n%s", out)
	}
}

// TestTransactionTableRawDateFallback validates unparseable timestamps
// fall back to the raw backend value
func TestTransactionTableRawDateFallback(t *testing.T) {
	out := TransactionTable([]stock.Transaction{
		{Kind: stock.KindPurchase, ItemName: "Rice", RawDate: "sometime"},
	})
	if !strings.Contains(out, "sometime") {
		t.Errorf("Expected raw date fallback in:\n%s", out)
	}
}

// TestReminderList validates the reminder card rendering
func TestReminderList(t *testing.T) {
	out := ReminderList([]api.Reminder{{
		ID:            3,
		ItemName:      "Cement",
		Amount:        5000,
		ToWhom:        "Sharma Traders",
		PhoneNumber:   "+919812345678",
		DateTime:      "2025-12-01T09:30",
		PaymentMethod: "Cash",
	}})

	for _, want := range []string{"[3] Cement", "₹5000", "Sharma Traders", "2025-12-01T09:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("Reminder card missing %q:\n%s", want, out)
		}
	}
}

// TestEventList validates placeholder defaults for missing event fields
func TestEventList(t *testing.T) {
	out := EventList([]api.Event{{
		EventName: "Weekly Haat",
		Location:  "Pune",
	}})

	if !strings.Contains(out, "TBA") {
		t.Errorf("Missing date should render TBA:\n%s", out)
	}
	if !strings.Contains(out, "N/A") {
		t.Errorf("Missing contact should render N/A:\n%s", out)
	}
}

// TestDraftTable validates draft rows render with zero-based indices
func TestDraftTable(t *testing.T) {
	out := DraftTable([]scan.Item{
		{ItemName: "Rice", Quantity: 5, Price: 450, PaymentMethod: "Cash"},
		{ItemName: "Oil", Quantity: 1, Price: 160, PaymentMethod: "online"},
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 3 {
		t.Fatalf("Expected header plus 2 rows:\n%s", out)
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[1]), "0") {
		t.Errorf("First draft row should carry index 0:\n%s", out)
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[2]), "1") {
		t.Errorf("Second draft row should carry index 1:\n%s", out)
	}
}

// TestVendorRecord validates the profile rendering
func TestVendorRecord(t *testing.T) {
	out := VendorRecord(&api.Vendor{
		Name:        "Ravi Stores",
		PhoneNumber: "+919812345678",
		Location:    "Pune",
	})

	if !strings.Contains(out, "Ravi Stores") || !strings.Contains(out, "Pune") {
		t.Errorf("Profile missing fields:\n%s", out)
	}
	if !strings.Contains(out, "Business Info: -") {
		t.Errorf("Empty business info should render a dash:\n%s", out)
	}
}

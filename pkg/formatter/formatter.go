// Package formatter renders domain records into terminal views. Every
// render is a pure projection of the data model; edit flows read back
// from the model, never from the rendered text.
package formatter

import (
	"fmt"
	"strconv"

	"github.com/MdSufiyan005/INHACK/cli/pkg/api"
	"github.com/MdSufiyan005/INHACK/cli/pkg/output"
	"github.com/MdSufiyan005/INHACK/cli/pkg/scan"
	"github.com/MdSufiyan005/INHACK/cli/pkg/stock"
	"github.com/fatih/color"
)

// Bold highlights names and section titles; status-line colors live in
// pkg/output.
var Bold = color.New(color.Bold)

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	output.PrintSuccess(format, args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	output.PrintError(format, args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	output.PrintInfo(format, args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	output.PrintWarning(format, args...)
}

// Rupee formats an amount with the currency marker used across the app
func Rupee(amount float64) string {
	return "₹" + strconv.FormatFloat(amount, 'f', -1, 64)
}

// TransactionTable renders a merged transaction feed. The ID column
// carries the backend id that edit and delete address rows by.
func TransactionTable(transactions []stock.Transaction) string {
	headers := []string{"#", "ID", "Type", "Item", "Quantity", "Price", "Payment", "Date"}
	rows := make([][]string, 0, len(transactions))
	for i, t := range transactions {
		kind := "Purchase"
		if t.Kind == stock.KindSale {
			kind = "Sale"
		}
		date := t.RawDate
		if !t.Timestamp.IsZero() {
			date = t.Timestamp.Format("02 Jan 2006")
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(t.ID),
			kind,
			t.ItemName,
			strconv.Itoa(t.Quantity),
			Rupee(t.Price),
			t.PaymentMethod,
			date,
		})
	}
	return output.Table(headers, rows)
}

// ReminderList renders payment reminders as cards
func ReminderList(reminders []api.Reminder) string {
	out := ""
	for _, r := range reminders {
		out += fmt.Sprintf("[%d] %s\n", r.ID, r.ItemName)
		out += fmt.Sprintf("    Amount:  %s\n", Rupee(r.Amount))
		out += fmt.Sprintf("    To:      %s\n", r.ToWhom)
		out += fmt.Sprintf("    Phone:   %s\n", r.PhoneNumber)
		out += fmt.Sprintf("    When:    %s\n", r.DateTime)
		out += fmt.Sprintf("    Payment: %s\n", r.PaymentMethod)
	}
	return out
}

// EventList renders vendor events as cards
func EventList(events []api.Event) string {
	out := ""
	for _, e := range events {
		out += e.EventName + "\n"
		if e.Description != "" {
			out += "    " + e.Description + "\n"
		}
		out += "    Location: " + e.Location + "\n"
		out += "    Date:     " + orDefault(e.EventDate, "TBA") + "\n"
		out += "    Contact:  " + orDefault(e.ContactPhone, "N/A") + "\n"
		if e.StallInfo != "" {
			out += "    Stalls:   " + e.StallInfo + "\n"
		}
		if e.SourceURL != "" {
			out += "    More:     " + e.SourceURL + "\n"
		}
	}
	return out
}

// DraftTable renders the receipt draft rows with their positional indices
func DraftTable(items []scan.Item) string {
	headers := []string{"#", "Item", "Quantity", "Price", "Payment"}
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(i),
			item.ItemName,
			strconv.Itoa(item.Quantity),
			Rupee(item.Price),
			item.PaymentMethod,
		})
	}
	return output.Table(headers, rows)
}

// VendorRecord renders a vendor profile
func VendorRecord(v *api.Vendor) string {
	out := fmt.Sprintf("Name:          %s\n", v.Name)
	out += fmt.Sprintf("Phone:         %s\n", v.PhoneNumber)
	out += fmt.Sprintf("Location:      %s\n", v.Location)
	out += fmt.Sprintf("Business Info: %s\n", orDefault(v.BusinessInfo, "-"))
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

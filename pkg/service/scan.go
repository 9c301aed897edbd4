package service

import (
	"fmt"

	"github.com/MdSufiyan005/INHACK/cli/pkg/api"
	"github.com/MdSufiyan005/INHACK/cli/pkg/formatter"
	"github.com/MdSufiyan005/INHACK/cli/pkg/prompter"
	"github.com/MdSufiyan005/INHACK/cli/pkg/scan"
	"github.com/MdSufiyan005/INHACK/cli/pkg/session"
)

type ScanService struct {
	store *session.Store
}

// NewScanService creates a new scan service
func NewScanService(store *session.Store) *ScanService {
	return &ScanService{store: store}
}

// Scan uploads a receipt image, seeds the draft editor from the
// extracted items, runs the interactive edit loop, and submits the
// retained rows as transactions of the chosen intent.
func (s *ScanService) Scan(filePath, intent string) error {
	if _, err := ensureSession(s.store); err != nil {
		return err
	}

	formatter.PrintInfo("Processing receipt...")
	result, err := api.UploadReceipt(filePath, intent)
	if err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		formatter.PrintError("Error processing receipt: %v", err)
		return err
	}

	if len(result.Items) == 0 {
		formatter.PrintWarning("No items were found in the receipt image. Try a clearer image.")
		return nil
	}

	formatter.PrintSuccess("Receipt processed! Found %d item(s). Review them before saving.", len(result.Items))

	draft := scan.NewDraft()
	draft.SeedFrom(result.Items)

	save, err := s.editLoop(draft)
	if err != nil {
		return err
	}
	if !save {
		formatter.PrintWarning("Draft discarded; nothing was saved.")
		return nil
	}

	return s.submit(draft, intent)
}

// editLoop shows the draft and applies edits until the user saves or
// discards. Rows are addressed by their current positional index; the
// list re-numbers after every removal.
func (s *ScanService) editLoop(draft *scan.Draft) (bool, error) {
	for {
		fmt.Print(formatter.DraftTable(draft.Items()))

		choice, err := prompter.PromptSelect("What next?", []string{
			"Save all items",
			"Edit an item",
			"Remove an item",
			"Add an item",
			"Discard",
		})
		if err != nil {
			return false, err
		}

		switch choice {
		case 0:
			if draft.Len() == 0 {
				formatter.PrintWarning("Nothing to save; the draft is empty.")
				continue
			}
			return true, nil
		case 1:
			if err := s.editItem(draft); err != nil {
				formatter.PrintError("%v", err)
			}
		case 2:
			index, err := prompter.PromptInt("Row # to remove: ")
			if err != nil {
				formatter.PrintError("%v", err)
				continue
			}
			draft.RemoveAt(index)
		case 3:
			draft.Append()
		case 4:
			return false, nil
		}
	}
}

func (s *ScanService) editItem(draft *scan.Draft) error {
	index, err := prompter.PromptInt("Row # to edit: ")
	if err != nil {
		return err
	}
	items := draft.Items()
	if index < 0 || index >= len(items) {
		return fmt.Errorf("no row %d", index)
	}
	current := items[index]

	itemName, err := promptDefaultString("Item name", current.ItemName)
	if err != nil {
		return err
	}
	quantity, err := promptDefaultInt("Quantity", current.Quantity)
	if err != nil {
		return err
	}
	price, err := promptDefaultFloat("Price", current.Price)
	if err != nil {
		return err
	}
	payment, err := promptDefaultString("Payment method (Cash/online)", current.PaymentMethod)
	if err != nil {
		return err
	}

	draft.SetItem(index, scan.Item{
		ItemName:      itemName,
		Quantity:      quantity,
		Price:         price,
		PaymentMethod: payment,
	})
	return nil
}

// submit creates one transaction per retained row. Every row submits as
// the intent chosen before scanning; a single receipt never mixes kinds.
func (s *ScanService) submit(draft *scan.Draft, intent string) error {
	saved := 0
	for _, item := range draft.Items() {
		var err error
		if intent == "sale" {
			_, err = api.CreateSale(api.SaleRequest{
				ItemName:      item.ItemName,
				Quantity:      item.Quantity,
				TotalPrice:    item.Price,
				PaymentMethod: item.PaymentMethod,
			})
		} else {
			_, err = api.CreatePurchase(api.PurchaseRequest{
				ItemName:      item.ItemName,
				Quantity:      item.Quantity,
				Price:         item.Price,
				PaymentMethod: item.PaymentMethod,
			})
		}
		if err != nil {
			if handleUnauthenticated(err) {
				return err
			}
			formatter.PrintError("Failed to save %q: %v", item.ItemName, err)
			continue
		}
		saved++
	}

	formatter.PrintSuccess("Saved %d of %d item(s) as %ss.", saved, draft.Len(), intent)
	return nil
}

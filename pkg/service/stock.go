package service

import (
	"fmt"

	"github.com/MdSufiyan005/INHACK/cli/pkg/api"
	"github.com/MdSufiyan005/INHACK/cli/pkg/formatter"
	"github.com/MdSufiyan005/INHACK/cli/pkg/output"
	"github.com/MdSufiyan005/INHACK/cli/pkg/prompter"
	"github.com/MdSufiyan005/INHACK/cli/pkg/session"
	"github.com/MdSufiyan005/INHACK/cli/pkg/stock"
	"github.com/MdSufiyan005/INHACK/cli/pkg/validate"
)

type StockService struct {
	store *session.Store
}

// NewStockService creates a new stock service
func NewStockService(store *session.Store) *StockService {
	return &StockService{store: store}
}

// fetch pulls only the collections the filter needs, sequentially, then
// merges. The merge is pure; state lives on the server and every
// display re-fetches.
func (s *StockService) fetch(filter stock.Filter) ([]stock.Transaction, error) {
	if _, err := ensureSession(s.store); err != nil {
		return nil, err
	}

	var purchases []api.Purchase
	var sales []api.Sale
	var err error

	if filter == stock.FilterAll || filter == stock.FilterPurchase {
		purchases, err = api.ListPurchases()
		if err != nil {
			return nil, err
		}
	}
	if filter == stock.FilterAll || filter == stock.FilterSale {
		sales, err = api.ListSales()
		if err != nil {
			return nil, err
		}
	}

	return stock.Merge(purchases, sales, filter), nil
}

func (s *StockService) render(transactions []stock.Transaction, filter stock.Filter) string {
	if len(transactions) == 0 {
		return stock.EmptyMessage(filter) + "\n"
	}
	return formatter.TransactionTable(transactions)
}

// RenderList renders the merged transaction feed for a filter
func (s *StockService) RenderList(filter stock.Filter) (string, error) {
	transactions, err := s.fetch(filter)
	if err != nil {
		return "", err
	}
	return s.render(transactions, filter), nil
}

// List displays the merged transaction feed in the configured format
func (s *StockService) List(filter stock.Filter) error {
	transactions, err := s.fetch(filter)
	if err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		formatter.PrintError("Error loading stock data: %v", err)
		return err
	}
	return output.Print(s.render(transactions, filter), transactions)
}

// AddPurchase validates and records a purchase, then re-fetches the feed
func (s *StockService) AddPurchase(itemName string, quantity int, price float64, paymentMethod string) error {
	if _, err := ensureSession(s.store); err != nil {
		return err
	}

	if err := validate.Struct(validate.PurchaseInput{
		ItemName:      itemName,
		Quantity:      quantity,
		Price:         price,
		PaymentMethod: paymentMethod,
	}); err != nil {
		formatter.PrintError("%v", err)
		return err
	}

	_, err := api.CreatePurchase(api.PurchaseRequest{
		ItemName:      itemName,
		Quantity:      quantity,
		Price:         price,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		formatter.PrintError("Error adding purchase: %v", err)
		return err
	}

	formatter.PrintSuccess("Purchase added successfully!")
	return s.List(stock.FilterPurchase)
}

// AddSale validates and records a sale, then re-fetches the feed
func (s *StockService) AddSale(itemName string, quantity int, totalPrice float64, paymentMethod string) error {
	if _, err := ensureSession(s.store); err != nil {
		return err
	}

	if err := validate.Struct(validate.SaleInput{
		ItemName:      itemName,
		Quantity:      quantity,
		TotalPrice:    totalPrice,
		PaymentMethod: paymentMethod,
	}); err != nil {
		formatter.PrintError("%v", err)
		return err
	}

	_, err := api.CreateSale(api.SaleRequest{
		ItemName:      itemName,
		Quantity:      quantity,
		TotalPrice:    totalPrice,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		formatter.PrintError("Error adding sale: %v", err)
		return err
	}

	formatter.PrintSuccess("Sale added successfully!")
	return s.List(stock.FilterSale)
}

// findTransaction resolves a (kind, id) pair against the freshly
// fetched feed, the component-local model the edit flow reads from.
func (s *StockService) findTransaction(kind stock.Kind, id int) (*stock.Transaction, error) {
	filter := stock.FilterPurchase
	if kind == stock.KindSale {
		filter = stock.FilterSale
	}

	transactions, err := s.fetch(filter)
	if err != nil {
		return nil, err
	}

	for i := range transactions {
		if transactions[i].ID == id {
			return &transactions[i], nil
		}
	}
	return nil, fmt.Errorf("%s %d not found", kind, id)
}

// Edit updates one transaction through the shared edit flow, prompting
// for each field pre-filled from the current model values.
func (s *StockService) Edit(kind stock.Kind, id int) error {
	current, err := s.findTransaction(kind, id)
	if err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		formatter.PrintError("%v", err)
		return err
	}

	formatter.PrintInfo("Editing %s %d (%s). Press enter to keep a value.", kind, id, current.ItemName)

	itemName, err := promptDefaultString("Item name", current.ItemName)
	if err != nil {
		return err
	}
	quantity, err := promptDefaultInt("Quantity", current.Quantity)
	if err != nil {
		return err
	}
	priceLabel := "Price"
	if kind == stock.KindSale {
		priceLabel = "Total price"
	}
	price, err := promptDefaultFloat(priceLabel, current.Price)
	if err != nil {
		return err
	}
	paymentMethod, err := promptDefaultString("Payment method", current.PaymentMethod)
	if err != nil {
		return err
	}

	if kind == stock.KindPurchase {
		if err := validate.Struct(validate.PurchaseInput{
			ItemName: itemName, Quantity: quantity, Price: price, PaymentMethod: paymentMethod,
		}); err != nil {
			formatter.PrintError("%v", err)
			return err
		}
		_, err = api.UpdatePurchase(id, api.PurchaseRequest{
			ItemName: itemName, Quantity: quantity, Price: price, PaymentMethod: paymentMethod,
		})
	} else {
		if err := validate.Struct(validate.SaleInput{
			ItemName: itemName, Quantity: quantity, TotalPrice: price, PaymentMethod: paymentMethod,
		}); err != nil {
			formatter.PrintError("%v", err)
			return err
		}
		_, err = api.UpdateSale(id, api.SaleRequest{
			ItemName: itemName, Quantity: quantity, TotalPrice: price, PaymentMethod: paymentMethod,
		})
	}
	if err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		formatter.PrintError("Error updating stock: %v", err)
		return err
	}

	formatter.PrintSuccess("Stock updated successfully!")
	return s.List(stock.FilterAll)
}

// Delete removes one transaction after confirmation, then re-fetches
func (s *StockService) Delete(kind stock.Kind, id int) error {
	if _, err := ensureSession(s.store); err != nil {
		return err
	}

	confirm, err := prompter.PromptConfirm(fmt.Sprintf("Delete %s %d?", kind, id))
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if kind == stock.KindPurchase {
		err = api.DeletePurchase(id)
	} else {
		err = api.DeleteSale(id)
	}
	if err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		formatter.PrintError("Error deleting transaction: %v", err)
		return err
	}

	formatter.PrintSuccess("Transaction deleted successfully!")
	return s.List(stock.FilterAll)
}

func promptDefaultString(label, current string) (string, error) {
	input, err := prompter.PromptString(fmt.Sprintf("%s [%s]: ", label, current))
	if err != nil {
		return "", err
	}
	if input == "" {
		return current, nil
	}
	return input, nil
}

func promptDefaultInt(label string, current int) (int, error) {
	input, err := prompter.PromptString(fmt.Sprintf("%s [%d]: ", label, current))
	if err != nil {
		return 0, err
	}
	if input == "" {
		return current, nil
	}
	var value int
	if _, err := fmt.Sscanf(input, "%d", &value); err != nil {
		return 0, fmt.Errorf("not a number: %s", input)
	}
	return value, nil
}

func promptDefaultFloat(label string, current float64) (float64, error) {
	input, err := prompter.PromptString(fmt.Sprintf("%s [%g]: ", label, current))
	if err != nil {
		return 0, err
	}
	if input == "" {
		return current, nil
	}
	var value float64
	if _, err := fmt.Sscanf(input, "%g", &value); err != nil {
		return 0, fmt.Errorf("not an amount: %s", input)
	}
	return value, nil
}

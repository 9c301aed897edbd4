package cmd

import (
	"fmt"

	"github.com/MdSufiyan005/INHACK/cli/pkg/service"
	"github.com/MdSufiyan005/INHACK/cli/pkg/stock"
	"github.com/spf13/cobra"
)

var (
	stockFilter string

	txItemName string
	txQuantity int
	txPrice    float64
	txPayment  string
)

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Purchase and sale transactions",
	Long:  "Record, list, edit, and delete purchase and sale transactions",
}

var stockListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := parseFilter(stockFilter)
		if err != nil {
			return err
		}
		stockSvc := service.NewStockService(sessions)
		return stockSvc.List(filter)
	},
}

var addPurchaseCmd = &cobra.Command{
	Use:   "add-purchase",
	Short: "Record a purchase",
	RunE: func(cmd *cobra.Command, args []string) error {
		stockSvc := service.NewStockService(sessions)
		return stockSvc.AddPurchase(txItemName, txQuantity, txPrice, txPayment)
	},
}

var addSaleCmd = &cobra.Command{
	Use:   "add-sale",
	Short: "Record a sale",
	RunE: func(cmd *cobra.Command, args []string) error {
		stockSvc := service.NewStockService(sessions)
		return stockSvc.AddSale(txItemName, txQuantity, txPrice, txPayment)
	},
}

var stockEditCmd = &cobra.Command{
	Use:   "edit <purchase|sale> <id>",
	Short: "Edit a transaction by kind and id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, id, err := parseKindID(args)
		if err != nil {
			return err
		}
		stockSvc := service.NewStockService(sessions)
		return stockSvc.Edit(kind, id)
	},
}

var stockDeleteCmd = &cobra.Command{
	Use:   "delete <purchase|sale> <id>",
	Short: "Delete a transaction by kind and id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, id, err := parseKindID(args)
		if err != nil {
			return err
		}
		stockSvc := service.NewStockService(sessions)
		return stockSvc.Delete(kind, id)
	},
}

func parseFilter(raw string) (stock.Filter, error) {
	switch raw {
	case "all":
		return stock.FilterAll, nil
	case "purchase":
		return stock.FilterPurchase, nil
	case "sale":
		return stock.FilterSale, nil
	}
	return "", fmt.Errorf("invalid filter %q: expected all, purchase, or sale", raw)
}

func parseKindID(args []string) (stock.Kind, int, error) {
	var kind stock.Kind
	switch args[0] {
	case "purchase":
		kind = stock.KindPurchase
	case "sale":
		kind = stock.KindSale
	default:
		return "", 0, fmt.Errorf("invalid kind %q: expected purchase or sale", args[0])
	}

	var id int
	if _, err := fmt.Sscanf(args[1], "%d", &id); err != nil {
		return "", 0, fmt.Errorf("invalid id %q", args[1])
	}
	return kind, id, nil
}

func init() {
	stockListCmd.Flags().StringVar(&stockFilter, "type", "all", "Filter: all, purchase, or sale")

	for _, c := range []*cobra.Command{addPurchaseCmd, addSaleCmd} {
		c.Flags().StringVar(&txItemName, "item", "", "Item name")
		c.Flags().IntVar(&txQuantity, "quantity", 0, "Quantity")
		c.Flags().Float64Var(&txPrice, "price", 0, "Price (total price for sales)")
		c.Flags().StringVar(&txPayment, "payment", "Cash", "Payment method: Cash or online")
	}

	stockCmd.AddCommand(stockListCmd)
	stockCmd.AddCommand(addPurchaseCmd)
	stockCmd.AddCommand(addSaleCmd)
	stockCmd.AddCommand(stockEditCmd)
	stockCmd.AddCommand(stockDeleteCmd)
}

package api

import (
	"fmt"

	"github.com/MdSufiyan005/INHACK/cli/pkg/client"
	"github.com/MdSufiyan005/INHACK/cli/pkg/logger"
	json "github.com/json-iterator/go"
)

// ListPurchases fetches all purchases for the authenticated vendor
func ListPurchases() ([]Purchase, error) {
	logger.Debug("Fetching purchases")

	resp, err := client.GetClient().
		R().
		Get("/api/purchases/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var purchases []Purchase
	if err := parseBody(resp.Body(), &purchases); err != nil {
		return nil, err
	}

	logger.Debug("Purchases fetched", "count", len(purchases))
	return purchases, nil
}

// CreatePurchase records a new purchase
func CreatePurchase(req PurchaseRequest) (*Purchase, error) {
	logger.Debug("Creating purchase", "item_name", req.ItemName)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/api/purchases/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var purchase Purchase
	if err := parseBody(resp.Body(), &purchase); err != nil {
		return nil, err
	}

	return &purchase, nil
}

// UpdatePurchase replaces a purchase by id
func UpdatePurchase(id int, req PurchaseRequest) (*Purchase, error) {
	logger.Debug("Updating purchase", "id", id)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Put(fmt.Sprintf("/api/purchases/%d", id))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var purchase Purchase
	if err := parseBody(resp.Body(), &purchase); err != nil {
		return nil, err
	}

	return &purchase, nil
}

// DeletePurchase removes a purchase by id
func DeletePurchase(id int) error {
	logger.Debug("Deleting purchase", "id", id)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/purchases/%d", id))

	return CheckResponse(resp, err)
}

// ListSales fetches all sales for the authenticated vendor
func ListSales() ([]Sale, error) {
	logger.Debug("Fetching sales")

	resp, err := client.GetClient().
		R().
		Get("/api/sales/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var sales []Sale
	if err := parseBody(resp.Body(), &sales); err != nil {
		return nil, err
	}

	logger.Debug("Sales fetched", "count", len(sales))
	return sales, nil
}

// CreateSale records a new sale
func CreateSale(req SaleRequest) (*Sale, error) {
	logger.Debug("Creating sale", "item_name", req.ItemName)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/api/sales/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var sale Sale
	if err := parseBody(resp.Body(), &sale); err != nil {
		return nil, err
	}

	return &sale, nil
}

// UpdateSale replaces a sale by id
func UpdateSale(id int, req SaleRequest) (*Sale, error) {
	logger.Debug("Updating sale", "id", id)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Put(fmt.Sprintf("/api/sales/%d", id))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var sale Sale
	if err := parseBody(resp.Body(), &sale); err != nil {
		return nil, err
	}

	return &sale, nil
}

// DeleteSale removes a sale by id
func DeleteSale(id int) error {
	logger.Debug("Deleting sale", "id", id)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/sales/%d", id))

	return CheckResponse(resp, err)
}

package api

// Vendor is the authenticated business entity. Field names follow the
// backend's serialized attribute names, mixed case included.
type Vendor struct {
	ID           int    `json:"id"`
	Name         string `json:"Name"`
	PhoneNumber  string `json:"PhoneNumber"`
	Location     string `json:"Location"`
	BusinessInfo string `json:"BusinessInfo"`
}

// AuthenticateResponse is the result of authenticate-by-phone.
// Vendor is only present when Exists is true.
type AuthenticateResponse struct {
	Exists bool    `json:"exists"`
	Vendor *Vendor `json:"vendor,omitempty"`
}

// RegisterRequest creates a new vendor. The same shape is sent on
// profile updates (PATCH), so callers must carry BusinessInfo forward
// even when they did not edit it.
type RegisterRequest struct {
	Name         string `json:"Name"`
	PhoneNumber  string `json:"PhoneNumber"`
	Location     string `json:"Location"`
	BusinessInfo string `json:"BusinessInfo"`
}

// Purchase is a stock purchase transaction
type Purchase struct {
	ID            int     `json:"id"`
	ItemName      string  `json:"item_name"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"payment_method"`
	CreatedAt     string  `json:"created_at,omitempty"`
	Date          string  `json:"date,omitempty"`
}

// Sale is a stock sale transaction. Diverges from Purchase only in the
// price field name.
type Sale struct {
	ID            int     `json:"id"`
	ItemName      string  `json:"item_name"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
	PaymentMethod string  `json:"payment_method"`
	CreatedAt     string  `json:"created_at,omitempty"`
	Date          string  `json:"date,omitempty"`
}

// PurchaseRequest is the create/update payload for purchases
type PurchaseRequest struct {
	ItemName      string  `json:"item_name"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"payment_method"`
}

// SaleRequest is the create/update payload for sales
type SaleRequest struct {
	ItemName      string  `json:"item_name"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
	PaymentMethod string  `json:"payment_method"`
}

// Reminder is a scheduled payment reminder. Reminders are never edited
// in place; they are created and deleted.
type Reminder struct {
	ID                  int     `json:"id"`
	ItemName            string  `json:"item_name"`
	Amount              float64 `json:"Amount"`
	ToWhom              string  `json:"ToWhom"`
	PhoneNumber         string  `json:"phone_number"`
	SupplierPhoneNumber string  `json:"supplier_phone_number"`
	PaymentMethod       string  `json:"payment_method"`
	DateTime            string  `json:"Date_Time"`
}

// ReminderRequest is the create payload for reminders
type ReminderRequest struct {
	DateTime            string  `json:"Date_Time"`
	ItemName            string  `json:"item_name"`
	Amount              float64 `json:"Amount"`
	ToWhom              string  `json:"ToWhom"`
	PhoneNumber         string  `json:"phone_number"`
	SupplierPhoneNumber string  `json:"supplier_phone_number"`
	PaymentMethod       string  `json:"payment_method"`
}

// Event is a read-only vendor event record
type Event struct {
	EventName    string `json:"event_name"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	EventDate    string `json:"event_date"`
	ContactPhone string `json:"contact_phone"`
	StallInfo    string `json:"stall_info"`
	SourceURL    string `json:"source_url"`
}

// ScanItem is one line item extracted from a receipt image. Fields come
// back loosely typed from the recognition model, so quantity and price
// are coerced by the draft editor before display.
type ScanItem struct {
	ItemName      string  `json:"item_name"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"payment_method"`
}

// ScanResponse is the result of a receipt upload
type ScanResponse struct {
	Items []ScanItem `json:"items"`
}

// ErrorResponse is the backend's error body shape
type ErrorResponse struct {
	Detail string `json:"detail"`
}

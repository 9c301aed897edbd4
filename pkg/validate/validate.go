// Package validate runs client-side field checks before any request is
// sent. A failed check blocks the request entirely.
package validate

import (
	"strings"
	"time"

	cli "github.com/MdSufiyan005/INHACK/cli/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// DateTimeLayout is the wire format for reminder Date_Time values,
// matching the datetime-local inputs the backend was built against.
const DateTimeLayout = "2006-01-02T15:04"

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// future: a Date_Time string strictly after now
	_ = validate.RegisterValidation("future", func(fl validator.FieldLevel) bool {
		t, err := ParseDateTime(fl.Field().String())
		if err != nil {
			return false
		}
		return t.After(time.Now())
	})
}

// ParseDateTime parses a reminder Date_Time in any accepted layout
func ParseDateTime(raw string) (time.Time, error) {
	layouts := []string{DateTimeLayout, "2006-01-02T15:04:05", time.RFC3339}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, raw, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ReminderInput is the reminder creation form
type ReminderInput struct {
	DateTime            string  `validate:"required,future"`
	ItemName            string  `validate:"required"`
	Amount              float64 `validate:"required,gt=0"`
	ToWhom              string  `validate:"required"`
	SupplierPhoneNumber string  `validate:"required"`
	PaymentMethod       string  `validate:"required"`
}

// PurchaseInput is the purchase creation/edit form
type PurchaseInput struct {
	ItemName      string  `validate:"required"`
	Quantity      int     `validate:"required,gt=0"`
	Price         float64 `validate:"required,gt=0"`
	PaymentMethod string  `validate:"required"`
}

// SaleInput is the sale creation/edit form
type SaleInput struct {
	ItemName      string  `validate:"required"`
	Quantity      int     `validate:"required,gt=0"`
	TotalPrice    float64 `validate:"required,gt=0"`
	PaymentMethod string  `validate:"required"`
}

// VendorInput is the registration/profile form
type VendorInput struct {
	Name        string `validate:"required"`
	PhoneNumber string `validate:"required,min=7"`
	Location    string `validate:"required"`
}

// Struct validates a tagged input struct and converts the first failure
// into a ValidationFailed error naming the offending field.
func Struct(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return cli.ValidationFailed("input", err.Error())
	}

	fe := verrs[0]
	return cli.ValidationFailed(fe.Field(), reason(fe))
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "future":
		return "must be a valid date/time in the future"
	default:
		return "failed " + fe.Tag() + strings.TrimSpace(" "+fe.Param())
	}
}

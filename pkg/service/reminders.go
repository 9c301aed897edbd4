package service

import (
	"fmt"

	"github.com/MdSufiyan005/INHACK/cli/pkg/api"
	"github.com/MdSufiyan005/INHACK/cli/pkg/formatter"
	"github.com/MdSufiyan005/INHACK/cli/pkg/output"
	"github.com/MdSufiyan005/INHACK/cli/pkg/prompter"
	"github.com/MdSufiyan005/INHACK/cli/pkg/session"
	"github.com/MdSufiyan005/INHACK/cli/pkg/validate"
)

type ReminderService struct {
	store *session.Store
}

// NewReminderService creates a new reminder service
func NewReminderService(store *session.Store) *ReminderService {
	return &ReminderService{store: store}
}

func (s *ReminderService) load() ([]api.Reminder, error) {
	sess, err := ensureSession(s.store)
	if err != nil {
		return nil, err
	}
	return api.ListReminders(sess.Vendor.ID)
}

func renderReminders(reminders []api.Reminder) string {
	if len(reminders) == 0 {
		return "No reminders found\n"
	}
	return formatter.ReminderList(reminders)
}

// RenderList renders the vendor's payment reminders
func (s *ReminderService) RenderList() (string, error) {
	reminders, err := s.load()
	if err != nil {
		return "", err
	}
	return renderReminders(reminders), nil
}

// List displays the vendor's payment reminders in the configured format
func (s *ReminderService) List() error {
	reminders, err := s.load()
	if err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		formatter.PrintError("Error loading reminders: %v", err)
		return err
	}
	return output.Print(renderReminders(reminders), reminders)
}

// Add validates and schedules a payment reminder. The date/time must be
// strictly in the future; a past value is rejected here, before any
// request goes out.
func (s *ReminderService) Add(dateTime, itemName string, amount float64, toWhom, supplierPhone, paymentMethod string) error {
	sess, err := ensureSession(s.store)
	if err != nil {
		return err
	}

	if err := validate.Struct(validate.ReminderInput{
		DateTime:            dateTime,
		ItemName:            itemName,
		Amount:              amount,
		ToWhom:              toWhom,
		SupplierPhoneNumber: supplierPhone,
		PaymentMethod:       paymentMethod,
	}); err != nil {
		formatter.PrintError("%v", err)
		return err
	}

	_, err = api.CreateReminder(api.ReminderRequest{
		DateTime:            dateTime,
		ItemName:            itemName,
		Amount:              amount,
		ToWhom:              toWhom,
		PhoneNumber:         sess.Vendor.PhoneNumber,
		SupplierPhoneNumber: supplierPhone,
		PaymentMethod:       paymentMethod,
	})
	if err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		formatter.PrintError("Error creating reminder: %v", err)
		return err
	}

	formatter.PrintSuccess("Reminder created!")
	return s.List()
}

// Delete removes a reminder after confirmation
func (s *ReminderService) Delete(id int) error {
	if _, err := ensureSession(s.store); err != nil {
		return err
	}

	confirm, err := prompter.PromptConfirm(fmt.Sprintf("Delete reminder %d?", id))
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := api.DeleteReminder(id); err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		formatter.PrintError("Error deleting reminder: %v", err)
		return err
	}

	formatter.PrintSuccess("Reminder deleted successfully!")
	return s.List()
}

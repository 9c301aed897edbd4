package api

import (
	"fmt"
	"strconv"

	"github.com/MdSufiyan005/INHACK/cli/pkg/client"
	"github.com/MdSufiyan005/INHACK/cli/pkg/logger"
	json "github.com/json-iterator/go"
)

// ListReminders fetches the vendor's payment reminders
func ListReminders(vendorID int) ([]Reminder, error) {
	logger.Debug("Fetching reminders", "vendor_id", vendorID)

	resp, err := client.GetClient().
		R().
		SetQueryParam("vendor_id", strconv.Itoa(vendorID)).
		Get("/api/reminders/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var reminders []Reminder
	if err := parseBody(resp.Body(), &reminders); err != nil {
		return nil, err
	}

	logger.Debug("Reminders fetched", "count", len(reminders))
	return reminders, nil
}

// CreateReminder schedules a payment reminder. Date_Time must already be
// validated as strictly in the future; the gateway sends what it is given.
func CreateReminder(req ReminderRequest) (*Reminder, error) {
	logger.Debug("Creating reminder", "item_name", req.ItemName, "date_time", req.DateTime)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/api/schedule-payment-reminder")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var reminder Reminder
	if err := parseBody(resp.Body(), &reminder); err != nil {
		return nil, err
	}

	return &reminder, nil
}

// DeleteReminder removes a reminder by id
func DeleteReminder(id int) error {
	logger.Debug("Deleting reminder", "id", id)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/reminders/%d", id))

	return CheckResponse(resp, err)
}

package api

import (
	"strconv"

	"github.com/MdSufiyan005/INHACK/cli/pkg/client"
	"github.com/MdSufiyan005/INHACK/cli/pkg/logger"
)

// ListEvents fetches upcoming vendor events near the vendor's location.
// Events are read-only; this client never mutates them.
func ListEvents(vendorID int) ([]Event, error) {
	logger.Debug("Fetching vendor events", "vendor_id", vendorID)

	resp, err := client.GetClient().
		R().
		SetQueryParam("vendor_id", strconv.Itoa(vendorID)).
		Get("/api/vendor-events/events")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var events []Event
	if err := parseBody(resp.Body(), &events); err != nil {
		return nil, err
	}

	logger.Debug("Events fetched", "count", len(events))
	return events, nil
}

package service

import (
	"github.com/MdSufiyan005/INHACK/cli/pkg/api"
	"github.com/MdSufiyan005/INHACK/cli/pkg/formatter"
	"github.com/MdSufiyan005/INHACK/cli/pkg/output"
	"github.com/MdSufiyan005/INHACK/cli/pkg/session"
)

type EventsService struct {
	store *session.Store
}

// NewEventsService creates a new events service
func NewEventsService(store *session.Store) *EventsService {
	return &EventsService{store: store}
}

func (s *EventsService) load() ([]api.Event, error) {
	sess, err := ensureSession(s.store)
	if err != nil {
		return nil, err
	}
	return api.ListEvents(sess.Vendor.ID)
}

func renderEvents(events []api.Event) string {
	if len(events) == 0 {
		return "No upcoming events found for your location.\n"
	}
	return formatter.EventList(events)
}

// RenderList renders upcoming events near the vendor's location
func (s *EventsService) RenderList() (string, error) {
	events, err := s.load()
	if err != nil {
		return "", err
	}
	return renderEvents(events), nil
}

// List displays upcoming vendor events in the configured format
func (s *EventsService) List() error {
	events, err := s.load()
	if err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		formatter.PrintError("Error loading events: %v", err)
		return err
	}
	return output.Print(renderEvents(events), events)
}

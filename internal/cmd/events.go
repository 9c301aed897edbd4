package cmd

import (
	"github.com/MdSufiyan005/INHACK/cli/pkg/service"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List nearby vendor events",
	Long:  "List upcoming vendor events for your location. Events are read-only.",
	RunE: func(cmd *cobra.Command, args []string) error {
		eventsSvc := service.NewEventsService(sessions)
		return eventsSvc.List()
	},
}

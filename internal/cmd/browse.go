package cmd

import (
	"fmt"

	"github.com/MdSufiyan005/INHACK/cli/pkg/formatter"
	"github.com/MdSufiyan005/INHACK/cli/pkg/navigator"
	"github.com/MdSufiyan005/INHACK/cli/pkg/prompter"
	"github.com/MdSufiyan005/INHACK/cli/pkg/service"
	"github.com/MdSufiyan005/INHACK/cli/pkg/stock"
	"github.com/spf13/cobra"
)

var browsePhone string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive session across all sections",
	Long: `Browse runs a long-lived interactive session, switching
between the stock, reminders, events, scan, and profile sections the
way the web app switches tabs. Dormant sections keep their last
content; the reminders section shows a one-time notice per session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(browsePhone)
	},
}

func init() {
	browseCmd.Flags().StringVar(&browsePhone, "phone", "", "Phone number for silent login (deep link)")
}

// sectionLoader fetches and renders one section's data
func sectionLoader(s navigator.Section) (string, error) {
	switch s {
	case navigator.SectionStock:
		return service.NewStockService(sessions).RenderList(stock.FilterAll)
	case navigator.SectionReminders:
		return service.NewReminderService(sessions).RenderList()
	case navigator.SectionEvents:
		return service.NewEventsService(sessions).RenderList()
	case navigator.SectionProfile:
		return service.NewProfileService(sessions).RenderProfile()
	case navigator.SectionScan:
		return "Use 'inhack-cli scan <image> --intent purchase|sale' to scan a receipt.\n", nil
	}
	return "", fmt.Errorf("unknown section %q", s)
}

func runBrowse(phone string) error {
	controller := navigator.New(sessions, sectionLoader)

	// Startup mirrors the page load: persisted vendor first, then the
	// deep-link phone, then the interactive gate.
	if sessions.Vendor() == nil {
		authSvc := service.NewAuthService(sessions)
		if err := authSvc.Login(phone); err != nil {
			return err
		}
		if sessions.Vendor() == nil {
			return nil
		}
	}

	if err := showSection(controller, navigator.DefaultSection); err != nil {
		formatter.PrintError("%v", err)
	}

	options := make([]string, 0, len(navigator.Sections())+1)
	for _, s := range navigator.Sections() {
		options = append(options, navigator.Title(s))
	}
	options = append(options, "Quit")

	for {
		choice, err := prompter.PromptSelect("\nSwitch to:", options)
		if err != nil {
			return err
		}
		if choice == len(options)-1 {
			return nil
		}

		section := navigator.Sections()[choice]
		if err := showSection(controller, section); err != nil {
			formatter.PrintError("%v", err)
		}
	}
}

func showSection(controller *navigator.Controller, section navigator.Section) error {
	outcome, err := controller.Activate(section)

	if outcome == navigator.OutcomeReminderGate {
		formatter.PrintWarning("Reminders send a WhatsApp message to your phone at the scheduled time.")
		ok, perr := prompter.PromptConfirm("Got it?")
		if perr != nil {
			return perr
		}
		if !ok {
			return nil
		}
		outcome, err = controller.AcknowledgeReminders()
	}

	switch outcome {
	case navigator.OutcomeAuthGate:
		formatter.PrintError("Please log in to view data.")
		authSvc := service.NewAuthService(sessions)
		return authSvc.Login("")
	case navigator.OutcomeLoadFailed:
		return err
	default:
		fmt.Println()
		formatter.Bold.Println(navigator.Title(controller.Active()))
		fmt.Print(controller.Rendered(controller.Active()))
		return nil
	}
}

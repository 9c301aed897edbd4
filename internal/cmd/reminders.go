package cmd

import (
	"fmt"

	"github.com/MdSufiyan005/INHACK/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	reminderDateTime string
	reminderItem     string
	reminderAmount   float64
	reminderToWhom   string
	reminderSupplier string
	reminderPayment  string
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Payment reminders",
	Long:  "Schedule and manage payment reminders",
}

var remindersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scheduled reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		reminderSvc := service.NewReminderService(sessions)
		return reminderSvc.List()
	},
}

var remindersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Schedule a payment reminder",
	Long: `Schedule a payment reminder. The date/time must be strictly in
the future (format: 2006-01-02T15:04); past values are rejected before
anything is sent to the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reminderSvc := service.NewReminderService(sessions)
		return reminderSvc.Add(reminderDateTime, reminderItem, reminderAmount,
			reminderToWhom, reminderSupplier, reminderPayment)
	},
}

var remindersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		reminderSvc := service.NewReminderService(sessions)
		return reminderSvc.Delete(id)
	},
}

func init() {
	remindersAddCmd.Flags().StringVar(&reminderDateTime, "at", "", "Reminder date/time (2006-01-02T15:04)")
	remindersAddCmd.Flags().StringVar(&reminderItem, "item", "", "Item name")
	remindersAddCmd.Flags().Float64Var(&reminderAmount, "amount", 0, "Amount due")
	remindersAddCmd.Flags().StringVar(&reminderToWhom, "to", "", "Who the payment goes to")
	remindersAddCmd.Flags().StringVar(&reminderSupplier, "supplier-phone", "", "Supplier phone number")
	remindersAddCmd.Flags().StringVar(&reminderPayment, "payment", "Cash", "Payment method: Cash or online")

	remindersCmd.AddCommand(remindersListCmd)
	remindersCmd.AddCommand(remindersAddCmd)
	remindersCmd.AddCommand(remindersDeleteCmd)
}

package cmd

import (
	"github.com/MdSufiyan005/INHACK/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	profileName     string
	profilePhone    string
	profileLocation string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Vendor profile",
	Long:  "Show and edit the vendor profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the vendor profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService(sessions)
		return profileSvc.Show()
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the vendor profile",
	Long: `Edit the vendor profile. Flags left empty keep the current
value; business info is always carried forward unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService(sessions)
		return profileSvc.Edit(profileName, profilePhone, profileLocation)
	},
}

func init() {
	profileEditCmd.Flags().StringVar(&profileName, "name", "", "Vendor name")
	profileEditCmd.Flags().StringVar(&profilePhone, "phone", "", "Phone number")
	profileEditCmd.Flags().StringVar(&profileLocation, "location", "", "Location")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileEditCmd)
}

package cmd

import (
	"github.com/MdSufiyan005/INHACK/cli/pkg/service"
	"github.com/spf13/cobra"
)

var loginPhone string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Manage the vendor login session",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in by phone number",
	Long: `Authenticate with the Inhack service by phone number. With
--phone the number is checked silently first, the same way a deep link
logs you in; without it you are prompted. An unknown number drops into
registration with the phone pre-filled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService(sessions)
		return authSvc.Login(loginPhone)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new vendor account",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService(sessions)
		return authSvc.Register(loginPhone)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService(sessions)
		return authSvc.Logout()
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Display the active vendor",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService(sessions)
		return authSvc.WhoAmI()
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginPhone, "phone", "", "Phone number to authenticate silently")
	registerCmd.Flags().StringVar(&loginPhone, "phone", "", "Phone number to register")

	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
}

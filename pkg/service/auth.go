package service

import (
	"fmt"

	"github.com/MdSufiyan005/INHACK/cli/pkg/api"
	"github.com/MdSufiyan005/INHACK/cli/pkg/client"
	"github.com/MdSufiyan005/INHACK/cli/pkg/formatter"
	"github.com/MdSufiyan005/INHACK/cli/pkg/logger"
	"github.com/MdSufiyan005/INHACK/cli/pkg/output"
	"github.com/MdSufiyan005/INHACK/cli/pkg/prompter"
	"github.com/MdSufiyan005/INHACK/cli/pkg/session"
	"github.com/MdSufiyan005/INHACK/cli/pkg/validate"
)

type AuthService struct {
	store *session.Store
}

// NewAuthService creates a new auth service
func NewAuthService(store *session.Store) *AuthService {
	return &AuthService{store: store}
}

// Login authenticates a vendor by phone number. A phone supplied as an
// argument (the deep-link path) is tried silently; otherwise the user
// is prompted. An unknown number drops into the registration sub-step
// pre-filled with the phone.
func (s *AuthService) Login(phoneNumber string) error {
	existing, err := s.store.Load()
	if err != nil {
		logger.Error("Failed to load session", "error", err)
		return err
	}

	if existing != nil {
		formatter.PrintWarning("Already logged in as %s", existing.Vendor.Name)
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	interactive := phoneNumber == ""
	if interactive {
		phoneNumber, err = prompter.PromptString("Phone number: ")
		if err != nil {
			return err
		}
	}

	if phoneNumber == "" {
		return fmt.Errorf("phone number cannot be empty")
	}

	client.Init()

	formatter.PrintInfo("Checking phone number...")
	authResp, cookie, err := api.Authenticate(phoneNumber)
	if err != nil {
		formatter.PrintError("Login failed: %v", err)
		return err
	}

	if !authResp.Exists {
		formatter.PrintWarning("No vendor found for %s. Let's register you.", phoneNumber)
		return s.register(phoneNumber)
	}

	if err := s.completeLogin(authResp.Vendor, cookie); err != nil {
		return err
	}

	formatter.PrintSuccess("Welcome back, %s!", formatter.Bold.Sprint(authResp.Vendor.Name))
	return nil
}

// Register creates a new vendor account, prompting for the remaining
// profile fields.
func (s *AuthService) Register(phoneNumber string) error {
	var err error
	if phoneNumber == "" {
		phoneNumber, err = prompter.PromptString("Phone number: ")
		if err != nil {
			return err
		}
	}
	client.Init()
	return s.register(phoneNumber)
}

// register is the registration sub-step, pre-filled with the phone the
// user supplied at the gate.
func (s *AuthService) register(phoneNumber string) error {
	name, err := prompter.PromptString("Name: ")
	if err != nil {
		return err
	}
	location, err := prompter.PromptString("Location: ")
	if err != nil {
		return err
	}
	businessInfo, err := prompter.PromptString("Business info (optional): ")
	if err != nil {
		return err
	}

	if err := validate.Struct(validate.VendorInput{
		Name:        name,
		PhoneNumber: phoneNumber,
		Location:    location,
	}); err != nil {
		formatter.PrintError("%v", err)
		return err
	}

	formatter.PrintInfo("Registering...")
	vendor, cookie, err := api.Register(api.RegisterRequest{
		Name:         name,
		PhoneNumber:  phoneNumber,
		Location:     location,
		BusinessInfo: businessInfo,
	})
	if err != nil {
		formatter.PrintError("Registration failed: %v", err)
		return err
	}

	if err := s.completeLogin(vendor, cookie); err != nil {
		return err
	}

	formatter.PrintSuccess("Registration successful! Welcome, %s!", formatter.Bold.Sprint(vendor.Name))
	return nil
}

// completeLogin persists the vendor and arms the client cookie. The
// persisted copy is overwritten whole; one vendor slot, no merging.
func (s *AuthService) completeLogin(vendor *api.Vendor, cookie string) error {
	sess := &session.Session{
		Vendor:    *vendor,
		SessionID: cookie,
	}

	if err := s.store.Save(sess); err != nil {
		formatter.PrintError("Failed to save session: %v", err)
		return err
	}

	client.SetSessionCookie(cookie)
	logger.Debug("Session saved", "vendor_id", vendor.ID)
	return nil
}

// Logout clears the active vendor
func (s *AuthService) Logout() error {
	sess, err := s.store.Load()
	if err != nil {
		logger.Error("Failed to load session", "error", err)
		return err
	}

	if sess == nil {
		formatter.PrintWarning("Not logged in")
		return nil
	}

	confirm, err := prompter.PromptConfirm("Logout?")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := s.store.Clear(); err != nil {
		formatter.PrintError("Failed to clear session: %v", err)
		return err
	}

	client.ClearSessionCookie()

	formatter.PrintSuccess("Logged out")
	return nil
}

// WhoAmI shows the active vendor, refreshed from the backend
func (s *AuthService) WhoAmI() error {
	sess, err := ensureSession(s.store)
	if err != nil {
		return err
	}

	vendor, err := api.GetVendorByPhone(sess.Vendor.PhoneNumber)
	if err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		// Fall back to the cached record when the backend is unreachable
		formatter.PrintWarning("Could not refresh profile: %v", err)
		vendor = &sess.Vendor
	}

	return output.Print(formatter.VendorRecord(vendor), vendor)
}

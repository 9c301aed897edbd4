package service

import (
	"github.com/MdSufiyan005/INHACK/cli/pkg/api"
	"github.com/MdSufiyan005/INHACK/cli/pkg/formatter"
	"github.com/MdSufiyan005/INHACK/cli/pkg/output"
	"github.com/MdSufiyan005/INHACK/cli/pkg/session"
	"github.com/MdSufiyan005/INHACK/cli/pkg/validate"
)

type ProfileService struct {
	store *session.Store
}

// NewProfileService creates a new profile service
func NewProfileService(store *session.Store) *ProfileService {
	return &ProfileService{store: store}
}

// load fetches the fresh vendor record from the backend
func (s *ProfileService) load() (*api.Vendor, error) {
	sess, err := ensureSession(s.store)
	if err != nil {
		return nil, err
	}
	return api.GetVendorByPhone(sess.Vendor.PhoneNumber)
}

// RenderProfile fetches the vendor record and renders it
func (s *ProfileService) RenderProfile() (string, error) {
	vendor, err := s.load()
	if err != nil {
		return "", err
	}
	return formatter.VendorRecord(vendor), nil
}

// Show displays the vendor profile in the configured format
func (s *ProfileService) Show() error {
	vendor, err := s.load()
	if err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		formatter.PrintError("Failed to load profile: %v", err)
		return err
	}
	return output.Print(formatter.VendorRecord(vendor), vendor)
}

// Edit updates the vendor profile. Empty parameters keep the current
// value, and BusinessInfo is always carried forward from the active
// record so a partial edit never blanks it.
func (s *ProfileService) Edit(name, phone, location string) error {
	sess, err := ensureSession(s.store)
	if err != nil {
		return err
	}

	current := sess.Vendor
	if name == "" {
		name = current.Name
	}
	if phone == "" {
		phone = current.PhoneNumber
	}
	if location == "" {
		location = current.Location
	}

	if err := validate.Struct(validate.VendorInput{
		Name:        name,
		PhoneNumber: phone,
		Location:    location,
	}); err != nil {
		formatter.PrintError("%v", err)
		return err
	}

	formatter.PrintInfo("Updating profile...")
	vendor, err := api.UpdateVendor(current.ID, api.RegisterRequest{
		Name:         name,
		PhoneNumber:  phone,
		Location:     location,
		BusinessInfo: current.BusinessInfo,
	})
	if err != nil {
		if handleUnauthenticated(err) {
			return err
		}
		formatter.PrintError("Failed to update profile: %v", err)
		return err
	}

	sess.Vendor = *vendor
	if err := s.store.Save(sess); err != nil {
		formatter.PrintError("Profile updated on server but saving locally failed: %v", err)
		return err
	}

	formatter.PrintSuccess("Profile updated!")
	return output.Print(formatter.VendorRecord(vendor), vendor)
}

package api

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/MdSufiyan005/INHACK/cli/pkg/client"
	cli "github.com/MdSufiyan005/INHACK/cli/pkg/errors"
	"github.com/MdSufiyan005/INHACK/cli/pkg/logger"
	json "github.com/json-iterator/go"
)

// Authenticate checks a phone number against the backend. The request is
// form-encoded, unlike every other endpoint. On success the backend sets
// the session cookie; the cookie value is returned alongside the result
// so the caller can persist it.
func Authenticate(phoneNumber string) (*AuthenticateResponse, string, error) {
	logger.Debug("Authenticating vendor", "phone_number", phoneNumber)

	resp, err := client.GetClient().
		R().
		SetFormData(map[string]string{
			"phone_number": phoneNumber,
		}).
		Post("/api/vendor/authenticate")

	if err := CheckResponse(resp, err); err != nil {
		return nil, "", err
	}

	var authResp AuthenticateResponse
	if err := parseBody(resp.Body(), &authResp); err != nil {
		return nil, "", err
	}

	if authResp.Exists && authResp.Vendor == nil {
		return nil, "", cli.MalformedResponse(fmt.Errorf("exists is true but vendor is missing"))
	}

	logger.Debug("Authentication checked", "exists", authResp.Exists)
	return &authResp, sessionCookie(resp.Cookies()), nil
}

// Register creates a new vendor and returns it together with the session
// cookie issued by the backend.
func Register(req RegisterRequest) (*Vendor, string, error) {
	logger.Debug("Registering vendor", "phone_number", req.PhoneNumber)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, "", err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/api/vendor/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, "", err
	}

	var vendor Vendor
	if err := parseBody(resp.Body(), &vendor); err != nil {
		return nil, "", err
	}

	logger.Debug("Vendor registered", "id", vendor.ID)
	return &vendor, sessionCookie(resp.Cookies()), nil
}

// sessionCookie pulls the backend session cookie out of a Set-Cookie list
func sessionCookie(cookies []*http.Cookie) string {
	for _, c := range cookies {
		if c.Name == client.SessionCookieName {
			return c.Value
		}
	}
	return ""
}

// GetVendorByPhone fetches the full vendor record for a phone number
func GetVendorByPhone(phoneNumber string) (*Vendor, error) {
	logger.Debug("Fetching vendor by phone", "phone_number", phoneNumber)

	resp, err := client.GetClient().
		R().
		Get("/api/vendor/by-phone/" + url.PathEscape(phoneNumber))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var vendor Vendor
	if err := parseBody(resp.Body(), &vendor); err != nil {
		return nil, err
	}

	return &vendor, nil
}

// UpdateVendor patches a vendor profile. The payload carries the full
// shape; preserving untouched fields is the caller's responsibility.
func UpdateVendor(id int, req RegisterRequest) (*Vendor, error) {
	logger.Debug("Updating vendor", "id", id)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Patch(fmt.Sprintf("/api/vendor/%d", id))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var vendor Vendor
	if err := parseBody(resp.Body(), &vendor); err != nil {
		return nil, err
	}

	logger.Debug("Vendor updated", "id", vendor.ID)
	return &vendor, nil
}

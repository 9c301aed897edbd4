package api

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/MdSufiyan005/INHACK/cli/pkg/client"
	"github.com/MdSufiyan005/INHACK/cli/pkg/config"
	cli "github.com/MdSufiyan005/INHACK/cli/pkg/errors"
)

// startServer points the shared HTTP client at a local test backend
func startServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("config.Init failed: %v", err)
	}
	if err := config.SetString("api.base_url", server.URL); err != nil {
		t.Fatalf("config.SetString failed: %v", err)
	}
	client.Init()

	return server
}

// TestAuthenticateExistingVendor validates the form-encoded check and
// the session cookie capture
func TestAuthenticateExistingVendor(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/vendor/authenticate" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("Request should be form-encoded: %v", err)
		}
		if got := r.PostFormValue("phone_number"); got != "+919812345678" {
			t.Errorf("Expected phone_number form field, got %q", got)
		}

		http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "sess-token-1"})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"exists": true, "vendor": {"id": 7, "Name": "Ravi Stores", "PhoneNumber": "+919812345678", "Location": "Pune", "BusinessInfo": "Groceries"}}`))
	})

	resp, cookie, err := Authenticate("+919812345678")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	if !resp.Exists {
		t.Error("Expected exists=true")
	}
	if resp.Vendor == nil || resp.Vendor.ID != 7 || resp.Vendor.Name != "Ravi Stores" {
		t.Errorf("Vendor not decoded: %+v", resp.Vendor)
	}
	if cookie != "sess-token-1" {
		t.Errorf("Expected session cookie captured, got %q", cookie)
	}
}

// TestAuthenticateUnknownVendor validates exists=false comes back clean
func TestAuthenticateUnknownVendor(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"exists": false}`))
	})

	resp, cookie, err := Authenticate("+910000000000")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if resp.Exists {
		t.Error("Expected exists=false")
	}
	if resp.Vendor != nil {
		t.Errorf("Expected no vendor, got %+v", resp.Vendor)
	}
	if cookie != "" {
		t.Errorf("Expected no cookie, got %q", cookie)
	}
}

// TestAuthenticateMissingVendor validates exists=true without a vendor
// record is treated as a malformed response
func TestAuthenticateMissingVendor(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"exists": true}`))
	})

	_, _, err := Authenticate("+919812345678")
	if err == nil {
		t.Fatal("Expected a malformed response error")
	}

	cliErr := cli.CategorizeError(err)
	if cliErr.Type != cli.ErrorTypeMalformedResponse {
		t.Errorf("Expected malformed_response, got %s", cliErr.Type)
	}
}

// TestRegisterVendor validates the JSON create payload and cookie capture
func TestRegisterVendor(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/vendor/" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}

		http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "sess-token-2"})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 11, "Name": "New Vendor", "PhoneNumber": "+911111111111", "Location": "Delhi", "BusinessInfo": ""}`))
	})

	vendor, cookie, err := Register(RegisterRequest{
		Name:        "New Vendor",
		PhoneNumber: "+911111111111",
		Location:    "Delhi",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if vendor.ID != 11 {
		t.Errorf("Expected vendor id 11, got %d", vendor.ID)
	}
	if cookie != "sess-token-2" {
		t.Errorf("Expected session cookie captured, got %q", cookie)
	}
}

// TestUpdateVendor validates the PATCH path carries the vendor id
func TestUpdateVendor(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/vendor/7" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "Name": "Renamed", "PhoneNumber": "+919812345678", "Location": "Pune", "BusinessInfo": "Groceries"}`))
	})

	vendor, err := UpdateVendor(7, RegisterRequest{
		Name:         "Renamed",
		PhoneNumber:  "+919812345678",
		Location:     "Pune",
		BusinessInfo: "Groceries",
	})
	if err != nil {
		t.Fatalf("UpdateVendor failed: %v", err)
	}
	if vendor.Name != "Renamed" {
		t.Errorf("Expected updated name, got %q", vendor.Name)
	}
}

// TestUnauthorizedResponse validates a 401 maps to the re-auth signal
func TestUnauthorizedResponse(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := GetVendorByPhone("+919812345678")
	if err == nil {
		t.Fatal("Expected an error on 401")
	}
	if !cli.IsUnauthenticated(err) {
		t.Errorf("Expected unauthenticated error, got %v", err)
	}
}

// TestServerErrorDetail validates the backend's detail message is surfaced
func TestServerErrorDetail(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "Phone number already registered"}`))
	})

	_, _, err := Register(RegisterRequest{Name: "Dup", PhoneNumber: "+911111111111", Location: "Delhi"})
	if err == nil {
		t.Fatal("Expected an error on 422")
	}

	cliErr := cli.CategorizeError(err)
	if cliErr.Type != cli.ErrorTypeRequestFailed {
		t.Errorf("Expected request_failed, got %s", cliErr.Type)
	}
	if cliErr.StatusCode != 422 {
		t.Errorf("Expected status 422, got %d", cliErr.StatusCode)
	}
	if cliErr.Body != "Phone number already registered" {
		t.Errorf("Expected detail message surfaced, got %q", cliErr.Body)
	}
}

// TestSessionCookieSent validates an armed session cookie rides every request
func TestSessionCookieSent(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session_id")
		if err != nil || c.Value != "armed-token" {
			t.Error("Expected session_id cookie on the request")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "Name": "Ravi Stores", "PhoneNumber": "+919812345678"}`))
	})

	client.SetSessionCookie("armed-token")
	t.Cleanup(client.ClearSessionCookie)

	if _, err := GetVendorByPhone("+919812345678"); err != nil {
		t.Fatalf("GetVendorByPhone failed: %v", err)
	}
}

package client

import (
	"net/http"
	"time"

	"github.com/MdSufiyan005/INHACK/cli/pkg/config"
	"github.com/MdSufiyan005/INHACK/cli/pkg/logger"
	"github.com/go-resty/resty/v2"
)

// SessionCookieName is the cookie the backend issues on authenticate/register.
const SessionCookieName = "session_id"

var httpClient *resty.Client

// Init initializes the HTTP client
func Init() {
	httpClient = resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", "Inhack-CLI/0.1.0")

	// Add request/response logging
	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())
		return nil
	})
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetSessionCookie attaches the backend session cookie to every request
func SetSessionCookie(sessionID string) {
	if httpClient == nil {
		Init()
	}
	httpClient.SetCookie(&http.Cookie{
		Name:  SessionCookieName,
		Value: sessionID,
	})
}

// ClearSessionCookie drops the session cookie
func ClearSessionCookie() {
	// Re-init the client to clear cookies
	Init()
}

package api

import (
	cli "github.com/MdSufiyan005/INHACK/cli/pkg/errors"
	"github.com/go-resty/resty/v2"
	json "github.com/json-iterator/go"
)

// CheckResponse maps a resty response into the client error taxonomy.
// Transport failures become NetworkUnavailable, a 401 becomes
// Unauthenticated, and any other non-2xx becomes RequestFailed with the
// status and raw body.
func CheckResponse(resp *resty.Response, err error) error {
	if err != nil {
		return cli.NetworkUnavailable(err)
	}

	if resp.StatusCode() == 401 {
		return cli.Unauthenticated()
	}

	if !resp.IsSuccess() {
		return cli.RequestFailed(resp.StatusCode(), errorDetail(resp.Body()))
	}

	return nil
}

// errorDetail prefers the backend's {"detail": ...} message over the raw body
func errorDetail(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}
	return string(body)
}

// parseBody decodes a response body, converting decode failures into
// MalformedResponse so callers never crash on an unexpected shape
func parseBody(body []byte, target interface{}) error {
	if err := json.Unmarshal(body, target); err != nil {
		return cli.MalformedResponse(err)
	}
	return nil
}

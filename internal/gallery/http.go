package gallery

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxResponseBytes bounds how much of a remote answer is read.
const maxResponseBytes = 4 << 20

// doJSON sends req and decodes a 2xx JSON answer into out. Non-2xx answers
// become a *StatusError carrying any message the remote included.
func doJSON(client *http.Client, req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Redacted(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response from %s: %w", req.URL.Redacted(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		status := resp.Status
		if msg := remoteMessage(body); msg != "" {
			status += ": " + msg
		}
		return &StatusError{Endpoint: req.URL.Host, Code: resp.StatusCode, Status: status}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w from %s: %v", ErrMalformedResponse, req.URL.Host, err)
	}
	return nil
}

// remoteMessage extracts a human-readable message from the error payloads
// the remote stores use: {"error":{"message":...}}, {"error":"..."} or
// {"message":"..."}.
func remoteMessage(body []byte) string {
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	if len(payload.Error) > 0 {
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(payload.Error, &nested) == nil && nested.Message != "" {
			return nested.Message
		}
		var flat string
		if json.Unmarshal(payload.Error, &flat) == nil && flat != "" {
			return flat
		}
	}
	return strings.TrimSpace(payload.Message)
}

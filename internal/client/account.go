// Package client implements the account-creation submission flow: it
// turns collected form input into a single PUT against the user API and
// maps the response onto a banner outcome.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync/atomic"

	"account-console/internal/api"
	"account-console/internal/ui"
)

const (
	createAccountPath = "/api/user"
	usersPagePath     = "/users"
)

// SuccessMessage is the fixed confirmation shown after a successful creation.
const SuccessMessage = "Account created successfully"

// ErrSubmissionInFlight is returned when a submission is attempted while
// a previous one has not finished. The caller gets no second request.
var ErrSubmissionInFlight = errors.New("account submission already in flight")

// FormInput carries the six field values read at submission time. The
// values are sent exactly as collected; empty strings included. IsAdmin
// stays a string on the wire, the server decides how to parse it.
type FormInput struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
	IsAdmin   string
}

// Outcome is the result of a submission. Show reports whether Banner
// holds a state to display; when false the banner is left as it was
// (a malformed error response gives the user no feedback, only a log
// line). Navigate, when non-empty, is the page to move to next.
type Outcome struct {
	Banner   ui.Banner
	Show     bool
	Navigate string
}

type Client struct {
	baseURL  string
	http     *http.Client
	inFlight atomic.Bool
}

// New builds a Client for the API at baseURL. A nil hc falls back to
// http.DefaultClient; no timeout is configured beyond what hc carries.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// SubmitAccountCreation issues one PUT /api/user with the JSON-encoded
// record and interprets the response:
//
//   - any 2xx: success banner with the fixed confirmation text and a
//     navigation target of /users, unconditionally;
//   - non-2xx with a JSON body carrying a message field: error banner
//     with that text, no navigation;
//   - anything else (transport failure, unparsable body, missing
//     message): diagnostic log only, banner untouched.
//
// Failed submissions are never retried. Overlapping calls are refused
// with ErrSubmissionInFlight.
func (c *Client) SubmitAccountCreation(ctx context.Context, in FormInput) (Outcome, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Outcome{}, ErrSubmissionInFlight
	}
	defer c.inFlight.Store(false)

	body, err := json.Marshal(api.CreateAccountRequest{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Username:  in.Username,
		Password:  in.Password,
		IsAdmin:   in.IsAdmin,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("SubmitAccountCreation: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+createAccountPath, bytes.NewReader(body))
	if err != nil {
		return Outcome{}, fmt.Errorf("SubmitAccountCreation: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// No response body to parse; same silent path as a malformed one.
		log.Printf("account create: request failed: %v", err)
		return Outcome{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Outcome{
			Banner:   ui.SuccessBanner(SuccessMessage),
			Show:     true,
			Navigate: usersPagePath,
		}, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("account create: reading error response: %v", err)
		return Outcome{}, nil
	}
	var er api.ErrorResponse
	if err := json.Unmarshal(data, &er); err != nil || er.Message == "" {
		log.Printf("account create: unparsable error response (status %d): %v", resp.StatusCode, err)
		return Outcome{}, nil
	}
	return Outcome{Banner: ui.ErrorBanner(er.Message), Show: true}, nil
}

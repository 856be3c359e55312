// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"washclub/cli/internal/account"
)

// ErrUnauthorized is returned when the server answers 401.
var ErrUnauthorized = errors.New("unauthorized")

// Endpoints contains REST API endpoint paths.
type Endpoints struct {
	SignIn  string `json:"sign_in"`
	SignUp  string `json:"sign_up"`
	SignOut string `json:"sign_out"`
}

// DefaultEndpoints are used when the config leaves paths empty.
var DefaultEndpoints = Endpoints{
	SignIn:  "/api/auth/sign-in",
	SignUp:  "/api/auth/sign-up",
	SignOut: "/api/auth/sign-out",
}

// HTTP implements API over REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://api.example.com")
	baseURL string
	// endpoints contains the URL paths for the auth endpoints
	endpoints Endpoints
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// NewHTTP creates a new HTTP client with the given base URL and endpoints.
// It configures a 10-second timeout for all requests.
func NewHTTP(baseURL string, endpoints Endpoints) *HTTP {
	if endpoints.SignIn == "" {
		endpoints.SignIn = DefaultEndpoints.SignIn
	}
	if endpoints.SignUp == "" {
		endpoints.SignUp = DefaultEndpoints.SignUp
	}
	if endpoints.SignOut == "" {
		endpoints.SignOut = DefaultEndpoints.SignOut
	}
	return &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SignIn posts { "phone": ... } and returns the issued token.
func (h *HTTP) SignIn(ctx context.Context, phone string) (Credential, error) {
	return h.postForToken(ctx, h.endpoints.SignIn, map[string]string{"phone": phone}, "sign-in")
}

// SignUp posts the profile and returns the issued token.
func (h *HTTP) SignUp(ctx context.Context, profile account.Profile) (Credential, error) {
	return h.postForToken(ctx, h.endpoints.SignUp, profile, "sign-up")
}

// SignOut calls the sign-out endpoint with Authorization: Bearer <token>.
func (h *HTTP) SignOut(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+h.endpoints.SignOut, nil)
	if err != nil {
		return err
	}
	h.setStandardHeaders(req)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		// Already invalid on the server; nothing left to revoke.
		return nil
	}
	b, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("sign-out: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
}

func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "washclub-cli/1.0")
}

func (h *HTTP) postForToken(ctx context.Context, path string, body any, op string) (Credential, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return Credential{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return Credential{}, err
	}
	h.setStandardHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return Credential{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized:
		return Credential{}, ErrUnauthorized
	default:
		b, _ := io.ReadAll(resp.Body)
		return Credential{}, fmt.Errorf("%s: unexpected status %d: %s", op, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	// Check for token in headers first
	if t := parseBearerToken(resp.Header.Get("Authorization")); t != "" {
		return Credential{Token: t}, nil
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Credential{}, fmt.Errorf("%s: decode response: %w", op, err)
	}
	token := extractAccessToken(result)
	if token == "" {
		return Credential{}, fmt.Errorf("%s: no token in response", op)
	}
	return Credential{Token: token}, nil
}

// parseBearerToken extracts token from a value like "Bearer <token>" case-insensitively.
// Returns the token string without the "Bearer " prefix, or empty string if invalid format.
func parseBearerToken(value string) string {
	v := strings.TrimSpace(value)
	if len(v) < 7 {
		return ""
	}
	if strings.EqualFold(v[0:6], "bearer") && v[6] == ' ' {
		return strings.TrimSpace(v[7:])
	}
	return ""
}

// extractAccessToken extracts the access token from the response payload.
// It tries multiple common field names to be resilient to different response formats.
func extractAccessToken(result map[string]any) string {
	for _, k := range []string{"access_token", "accessToken", "token"} {
		if v, ok := result[k].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	if data, ok := result["data"].(map[string]any); ok {
		return extractAccessToken(data)
	}
	return ""
}

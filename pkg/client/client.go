package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client is a thin facade over the booking platform REST API. It attaches
// the stored bearer token to every request and collapses all failure
// modes into *APIError.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialStore
}

func New(baseURL string, creds CredentialStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		creds:   creds,
	}
}

// --------- Transport ---------

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: err.Error()}
		}
		buf = bytes.NewBuffer(raw)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return &APIError{Message: err.Error()}
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
		}

		var envelope struct {
			Code    string `json:"error_code"`
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			if envelope.Message != "" {
				apiErr.Message = envelope.Message
			}
			apiErr.Code = envelope.Code
		}

		// A rejected credential invalidates the whole session.
		if resp.StatusCode == http.StatusUnauthorized {
			_ = c.creds.Clear()
		}

		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Message: "malformed server response"}
	}

	return nil
}

// --------- Health ---------

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --------- Auth ---------

func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}

	if err := c.creds.Save(out.Token, &out.User); err != nil {
		return nil, &APIError{Message: "could not persist session: " + err.Error()}
	}

	return &out.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var out authResponse
	in := LoginInput{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}

	if err := c.creds.Save(out.Token, &out.User); err != nil {
		return nil, &APIError{Message: "could not persist session: " + err.Error()}
	}

	return &out.User, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var out meResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) Logout() error {
	return c.creds.Clear()
}

// CurrentUser returns the locally stored user without a network round
// trip; nil when logged out.
func (c *Client) CurrentUser() *User {
	return c.creds.User()
}

// CheckSession validates the stored token against the server. An absent
// or rejected token yields (nil, nil) with local credentials cleared.
func (c *Client) CheckSession(ctx context.Context) (*User, error) {
	if c.creds.Token() == "" {
		return nil, nil
	}

	user, err := c.Me(ctx)
	if err != nil {
		var apiErr *APIError
		if ok := asAPIError(err, &apiErr); ok && apiErr.IsUnauthorized() {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// --------- Services ---------

func (c *Client) Services(ctx context.Context) ([]Service, error) {
	var out servicesResponse
	if err := c.do(ctx, http.MethodGet, "/api/services", nil, &out); err != nil {
		return nil, err
	}
	return out.Services, nil
}

func (c *Client) Service(ctx context.Context, id uint) (*ServiceDetail, error) {
	var out serviceResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/services/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Service, nil
}

func (c *Client) CreateService(ctx context.Context, in CreateServiceInput) (uint, error) {
	var out createServiceResponse
	if err := c.do(ctx, http.MethodPost, "/api/services", in, &out); err != nil {
		return 0, err
	}
	return out.ServiceID, nil
}

// --------- Consultants ---------

func (c *Client) Consultants(ctx context.Context) ([]Consultant, error) {
	var out consultantsResponse
	if err := c.do(ctx, http.MethodGet, "/api/consultants", nil, &out); err != nil {
		return nil, err
	}
	return out.Consultants, nil
}

// --------- Bookings ---------

func (c *Client) CreateBooking(ctx context.Context, in CreateBookingInput) (uint, error) {
	var out createBookingResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", in, &out); err != nil {
		return 0, err
	}
	return out.BookingID, nil
}

func (c *Client) UserBookings(ctx context.Context, userID uint) ([]Booking, error) {
	var out bookingsResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/bookings/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

func (c *Client) ConsultantBookings(ctx context.Context, consultantID uint) ([]Booking, error) {
	var out bookingsResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/bookings/consultant/%d", consultantID), nil, &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

func (c *Client) ConfirmBooking(ctx context.Context, id uint) (*Booking, error) {
	return c.patchBooking(ctx, id, "confirm")
}

func (c *Client) CancelBooking(ctx context.Context, id uint) (*Booking, error) {
	return c.patchBooking(ctx, id, "cancel")
}

func (c *Client) CompleteBooking(ctx context.Context, id uint) (*Booking, error) {
	return c.patchBooking(ctx, id, "complete")
}

func (c *Client) patchBooking(ctx context.Context, id uint, action string) (*Booking, error) {
	var out bookingResponse
	path := fmt.Sprintf("/api/bookings/%d/%s", id, action)
	if err := c.do(ctx, http.MethodPatch, path, nil, &out); err != nil {
		return nil, err
	}
	return &out.Booking, nil
}

// Package remote wraps every outbound call to the external data backend.
// Each call returns a parsed success value or a NetworkError; success
// mutates the in-memory list copies so screens reflect the change without a
// full reload, failure leaves them at last-known-good. There is no retry:
// the user re-triggers the action.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"homemate/models"
	"homemate/services/notify"
	"homemate/utils"

	"go.uber.org/zap"
)

// Invoker is the outbound surface of the data backend.
type Invoker interface {
	ListServices(ctx context.Context) ([]models.ServiceListing, error)
	GetService(ctx context.Context, id string) (*models.ServiceListing, error)
	SearchServices(ctx context.Context, query string) ([]models.ServiceListing, error)
	FilterServicesByPrice(ctx context.Context, min, max float64) ([]models.ServiceListing, error)
	CreateService(ctx context.Context, listing models.ServiceListing) (*models.ServiceListing, error)
	UpdateService(ctx context.Context, id string, patch models.ServiceListingPatch) (*models.ServiceListing, error)
	DeleteService(ctx context.Context, id string) error
	CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
	MyBookings(ctx context.Context, email string) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	CreateReview(ctx context.Context, review models.Review) (*models.Review, error)
}

// DefaultInvoker is the production implementation.
type DefaultInvoker struct {
	BaseURL  string
	Client   *http.Client
	Services *ServiceListState
	Bookings *BookingListState
	Notifier notify.Notifier
}

func NewDefaultInvoker(baseURL string, notifier notify.Notifier) *DefaultInvoker {
	return &DefaultInvoker{
		BaseURL:  baseURL,
		Client:   &http.Client{Timeout: 15 * time.Second},
		Services: NewServiceListState(),
		Bookings: NewBookingListState(),
		Notifier: notifier,
	}
}

func (inv *DefaultInvoker) ListServices(ctx context.Context) ([]models.ServiceListing, error) {
	token := inv.Services.BeginReplace()
	var out []models.ServiceListing
	if err := inv.do(ctx, http.MethodGet, "/services", nil, &out); err != nil {
		return nil, inv.fail("list services", err)
	}
	inv.Services.Replace(token, out)
	return out, nil
}

func (inv *DefaultInvoker) GetService(ctx context.Context, id string) (*models.ServiceListing, error) {
	var out models.ServiceListing
	if err := inv.do(ctx, http.MethodGet, "/services/"+id, nil, &out); err != nil {
		return nil, inv.fail("get service", err)
	}
	return &out, nil
}

func (inv *DefaultInvoker) SearchServices(ctx context.Context, query string) ([]models.ServiceListing, error) {
	token := inv.Services.BeginReplace()
	var out []models.ServiceListing
	body := map[string]string{"query": query}
	if err := inv.do(ctx, http.MethodPost, "/services/search", body, &out); err != nil {
		return nil, inv.fail("search services", err)
	}
	if !inv.Services.Replace(token, out) {
		utils.GetLogger().Debug("search result discarded, newer response already applied",
			zap.Uint64("token", token))
	}
	return out, nil
}

func (inv *DefaultInvoker) FilterServicesByPrice(ctx context.Context, min, max float64) ([]models.ServiceListing, error) {
	token := inv.Services.BeginReplace()
	var out []models.ServiceListing
	body := map[string]float64{"min": min, "max": max}
	if err := inv.do(ctx, http.MethodPost, "/services/filter", body, &out); err != nil {
		return nil, inv.fail("filter services", err)
	}
	if !inv.Services.Replace(token, out) {
		utils.GetLogger().Debug("filter result discarded, newer response already applied",
			zap.Uint64("token", token))
	}
	return out, nil
}

func (inv *DefaultInvoker) CreateService(ctx context.Context, listing models.ServiceListing) (*models.ServiceListing, error) {
	created := listing
	if err := inv.do(ctx, http.MethodPost, "/services", listing, &created); err != nil {
		return nil, inv.fail("create service", err)
	}
	inv.Services.Append(created)
	inv.Notifier.Success("Service added successfully!")
	return &created, nil
}

func (inv *DefaultInvoker) UpdateService(ctx context.Context, id string, patch models.ServiceListingPatch) (*models.ServiceListing, error) {
	var updated models.ServiceListing
	if err := inv.do(ctx, http.MethodPatch, "/services/"+id, patch, &updated); err != nil {
		return nil, inv.fail("update service", err)
	}
	if updated.ID == "" {
		updated.ID = id
	}
	inv.Services.ReplaceByID(updated)
	inv.Notifier.Success("Service updated successfully!")
	return &updated, nil
}

func (inv *DefaultInvoker) DeleteService(ctx context.Context, id string) error {
	if err := inv.do(ctx, http.MethodDelete, "/services/"+id, nil, nil); err != nil {
		return inv.fail("delete service", err)
	}
	inv.Services.RemoveByID(id)
	inv.Notifier.Success("Service deleted successfully!")
	return nil
}

func (inv *DefaultInvoker) CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	created := booking
	if err := inv.do(ctx, http.MethodPost, "/booking", booking, &created); err != nil {
		return nil, inv.fail("create booking", err)
	}
	inv.Bookings.Append(created)
	inv.Notifier.Success("Booking confirmed successfully!")
	return &created, nil
}

func (inv *DefaultInvoker) MyBookings(ctx context.Context, email string) ([]models.Booking, error) {
	token := inv.Bookings.BeginReplace()
	var out []models.Booking
	body := map[string]string{"email": email}
	if err := inv.do(ctx, http.MethodPost, "/my-booked", body, &out); err != nil {
		return nil, inv.fail("list bookings", err)
	}
	inv.Bookings.Replace(token, out)
	return out, nil
}

func (inv *DefaultInvoker) DeleteBooking(ctx context.Context, id string) error {
	if err := inv.do(ctx, http.MethodDelete, "/bookings/"+id, nil, nil); err != nil {
		return inv.fail("delete booking", err)
	}
	inv.Bookings.RemoveByID(id)
	inv.Notifier.Success("Booking deleted successfully!")
	return nil
}

func (inv *DefaultInvoker) CreateReview(ctx context.Context, review models.Review) (*models.Review, error) {
	created := review
	if err := inv.do(ctx, http.MethodPost, "/bookings/review", review, &created); err != nil {
		return nil, inv.fail("create review", err)
	}
	inv.Notifier.Success("Review submitted!")
	return &created, nil
}

// fail logs the failure, surfaces it as a one-shot error notification and
// wraps it as a NetworkError. List state is never touched on this path.
func (inv *DefaultInvoker) fail(op string, err error) error {
	utils.GetLogger().Warn("backend call failed", zap.String("op", op), zap.Error(err))
	inv.Notifier.Error(fmt.Sprintf("Failed to %s", op))
	return utils.NetworkError{Op: op, Err: err}
}

// do performs one JSON round-trip against the backend. A nil out discards
// the response body; an empty body with a non-nil out leaves out unchanged.
func (inv *DefaultInvoker) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, inv.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := inv.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("backend responded %d: %s", resp.StatusCode, string(data))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Package forms holds the per-screen form state controllers. A controller
// owns the field values of one in-flight screen, recomputes every validity
// flag synchronously on each field change, and guards submit behind the
// aggregate flag before delegating to the auth gateway, the composer or the
// remote invoker.
package forms

import (
	"context"
	"strconv"
	"strings"
	"time"

	"homemate/models"
	"homemate/services/auth"
	svcbooking "homemate/services/booking"
	"homemate/services/notify"
	"homemate/services/remote"
	"homemate/utils"

	"github.com/google/uuid"
)

// SubmitResult reports what a successful submit produced and where the UI
// should go next.
type SubmitResult struct {
	Screen   string                 `json:"screen"`
	Redirect string                 `json:"redirect,omitempty"`
	User     *models.UserProfile    `json:"user,omitempty"`
	Listing  *models.ServiceListing `json:"listing,omitempty"`
	Review   *models.Review         `json:"review,omitempty"`
}

// FormService defines the screen form operations.
type FormService interface {
	// Start opens a form session for a screen. The seed prefills values
	// (e.g. provider identity on the add-service screen, current listing
	// fields on edit) and carries context such as the originally requested
	// path.
	Start(ctx context.Context, screen string, seed map[string]string) (*models.FormSnapshot, error)
	// SetField updates one value and re-derives all dependent flags.
	SetField(ctx context.Context, sessionID, name, value string) (*models.FormSnapshot, error)
	// Snapshot returns the current state of a session.
	Snapshot(ctx context.Context, sessionID string) (*models.FormSnapshot, error)
	// Submit runs the screen's action. It is a guarded no-op when the form
	// is invalid: inline errors are recorded and no collaborator is called.
	Submit(ctx context.Context, sessionID string) (*SubmitResult, error)
}

// DefaultFormService is the production implementation.
type DefaultFormService struct {
	Store    SessionStore
	Auth     auth.Gateway
	Invoker  remote.Invoker
	Notifier notify.Notifier
}

func (s *DefaultFormService) Start(ctx context.Context, screen string, seed map[string]string) (*models.FormSnapshot, error) {
	spec, ok := screens[screen]
	if !ok {
		return nil, utils.StateError{Message: "unknown form screen: " + screen}
	}

	snap := &models.FormSnapshot{
		SessionID: uuid.New().String(),
		Screen:    screen,
		Values:    make(map[string]string),
		Fields:    make(map[string]models.FieldState),
		CreatedAt: time.Now(),
	}
	for k, v := range seed {
		snap.Values[k] = v
	}
	spec.derive(snap)

	if err := s.Store.Save(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *DefaultFormService) SetField(ctx context.Context, sessionID, name, value string) (*models.FormSnapshot, error) {
	snap, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	spec := screens[snap.Screen]
	if !fieldKnown(spec, name) {
		return nil, utils.StateError{Message: "unknown field " + name + " for screen " + snap.Screen}
	}

	snap.Values[name] = value
	// Typing clears any inline error left by a blocked submit.
	delete(snap.Errors, name)
	spec.derive(snap)

	if err := s.Store.Save(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *DefaultFormService) Snapshot(ctx context.Context, sessionID string) (*models.FormSnapshot, error) {
	return s.Store.Get(ctx, sessionID)
}

func (s *DefaultFormService) Submit(ctx context.Context, sessionID string) (*SubmitResult, error) {
	snap, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	spec := screens[snap.Screen]
	spec.derive(snap)

	if !snap.IsValid {
		snap.Errors = spec.collectErrors(snap)
		if err := s.Store.Save(ctx, snap); err != nil {
			return nil, err
		}
		return nil, utils.StateError{Message: "form is not valid"}
	}

	result, err := s.dispatch(ctx, snap)
	if err != nil {
		return nil, err
	}

	_ = s.Store.Delete(ctx, sessionID)
	return result, nil
}

// dispatch runs the screen-specific action for a validated form. The
// service and review screens act on behalf of a signed-in user; the auth
// screens are the only ones reachable signed-out.
func (s *DefaultFormService) dispatch(ctx context.Context, snap *models.FormSnapshot) (*SubmitResult, error) {
	switch snap.Screen {
	case ScreenAddService, ScreenEditService, ScreenReview:
		if s.Auth.CurrentUser() == nil {
			return nil, utils.AuthError{Op: "submit " + snap.Screen, Message: "sign in required"}
		}
	}

	switch snap.Screen {
	case ScreenLogin:
		return s.submitLogin(ctx, snap)
	case ScreenRegister:
		return s.submitRegister(ctx, snap)
	case ScreenForgot:
		return s.submitForgot(ctx, snap)
	case ScreenAddService:
		return s.submitAddService(ctx, snap)
	case ScreenEditService:
		return s.submitEditService(ctx, snap)
	case ScreenReview:
		return s.submitReview(ctx, snap)
	}
	return nil, utils.StateError{Message: "unknown form screen: " + snap.Screen}
}

func (s *DefaultFormService) submitLogin(ctx context.Context, snap *models.FormSnapshot) (*SubmitResult, error) {
	user, err := s.Auth.SignIn(ctx, snap.Values["email"], snap.Values["password"])
	if err != nil {
		s.Notifier.Error(err.Error())
		return nil, err
	}
	s.Notifier.Success("Login successfully!")

	redirect := snap.Values["from"]
	if redirect == "" {
		redirect = "/"
	}
	return &SubmitResult{Screen: snap.Screen, Redirect: redirect, User: user}, nil
}

func (s *DefaultFormService) submitRegister(ctx context.Context, snap *models.FormSnapshot) (*SubmitResult, error) {
	displayName := strings.TrimSpace(snap.Values["firstName"] + " " + snap.Values["lastName"])
	user, err := s.Auth.Register(ctx, snap.Values["email"], snap.Values["password"], snap.Values["photoURL"], displayName)
	if err != nil {
		s.Notifier.Error(err.Error())
		return nil, err
	}
	s.Notifier.Success("Registration successful! Welcome to our site.")
	return &SubmitResult{Screen: snap.Screen, Redirect: "/", User: user}, nil
}

func (s *DefaultFormService) submitForgot(ctx context.Context, snap *models.FormSnapshot) (*SubmitResult, error) {
	if err := s.Auth.SendPasswordReset(ctx, snap.Values["email"]); err != nil {
		s.Notifier.Error(err.Error())
		return nil, err
	}
	s.Notifier.Success("Please check your email")
	return &SubmitResult{Screen: snap.Screen, Redirect: "/auth"}, nil
}

func (s *DefaultFormService) submitAddService(ctx context.Context, snap *models.FormSnapshot) (*SubmitResult, error) {
	price, _ := strconv.ParseFloat(snap.Values["price"], 64)
	listing := models.ServiceListing{
		ServiceName:   snap.Values["serviceName"],
		Category:      snap.Values["category"],
		Price:         price,
		Description:   snap.Values["description"],
		Image:         snap.Values["image"],
		ProviderName:  snap.Values["providerName"],
		ProviderEmail: snap.Values["email"],
		Rating:        0,
	}
	created, err := s.Invoker.CreateService(ctx, listing)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Screen: snap.Screen, Listing: created}, nil
}

func (s *DefaultFormService) submitEditService(ctx context.Context, snap *models.FormSnapshot) (*SubmitResult, error) {
	serviceID := snap.Values["serviceId"]
	if serviceID == "" {
		return nil, utils.StateError{Message: "edit form has no listing to update"}
	}

	// Only the provider who owns the listing may edit it.
	user := s.Auth.CurrentUser()
	current, err := s.Invoker.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if current.ProviderEmail != user.Email {
		return nil, utils.AuthError{Op: "updateService", Message: "only the owning provider can update this service"}
	}

	price, _ := strconv.ParseFloat(snap.Values["price"], 64)
	serviceName := snap.Values["serviceName"]
	category := snap.Values["category"]
	description := snap.Values["description"]
	image := snap.Values["image"]
	patch := models.ServiceListingPatch{
		ServiceName: &serviceName,
		Category:    &category,
		Price:       &price,
		Description: &description,
		Image:       &image,
	}
	updated, err := s.Invoker.UpdateService(ctx, serviceID, patch)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Screen: snap.Screen, Listing: updated}, nil
}

func (s *DefaultFormService) submitReview(ctx context.Context, snap *models.FormSnapshot) (*SubmitResult, error) {
	rating, _ := strconv.Atoi(snap.Values["rating"])

	// The acting user comes from the live auth state; the seeded values
	// carry the booking context captured when the modal opened.
	user := s.Auth.CurrentUser()
	booked := models.Booking{
		ServiceID:    snap.Values["serviceId"],
		ServiceName:  snap.Values["serviceUsed"],
		ProviderName: snap.Values["providerName"],
	}

	review, err := svcbooking.BuildReview(*user, booked, rating, snap.Values["comment"], time.Now())
	if err != nil {
		return nil, err
	}
	created, err := s.Invoker.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Screen: snap.Screen, Review: created}, nil
}

func fieldKnown(spec screenSpec, name string) bool {
	for _, f := range spec.fields {
		if f == name {
			return true
		}
	}
	return false
}

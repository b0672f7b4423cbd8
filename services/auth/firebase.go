package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"homemate/config"
	"homemate/models"
	"homemate/utils"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const identityToolkitBase = "https://identitytoolkit.googleapis.com/v1"

// FirebaseGateway implements Gateway against Firebase Authentication. Account
// management goes through the Admin SDK; password sign-in and reset mails go
// through the Identity Toolkit REST API with the web API key.
type FirebaseGateway struct {
	client *fbauth.Client
	apiKey string
	http   *http.Client
	*stateHub
}

// NewFirebaseGateway initializes the Firebase app and auth client.
func NewFirebaseGateway(ctx context.Context) (*FirebaseGateway, error) {
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Auth client: %w", err)
	}
	return &FirebaseGateway{
		client:   client,
		apiKey:   config.AppConfig.FirebaseWebAPIKey,
		http:     &http.Client{Timeout: 10 * time.Second},
		stateHub: newStateHub(),
	}, nil
}

// Start fires the initial auth-state notification. A fresh server process
// has no restored browser session, so the state settles to signed-out.
func (g *FirebaseGateway) Start(ctx context.Context) {
	g.setCurrent(nil)
}

func (g *FirebaseGateway) Register(ctx context.Context, email, password, photoURL, displayName string) (*models.UserProfile, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName).
		PhotoURL(photoURL)
	rec, err := g.client.CreateUser(ctx, params)
	if err != nil {
		utils.GetLogger().Error("firebase: create user failed", zap.String("email", email), zap.Error(err))
		return nil, utils.AuthError{Op: "register", Err: err}
	}
	profile := profileFromRecord(rec)
	g.setCurrent(profile)
	return g.CurrentUser(), nil
}

// signInResponse is the Identity Toolkit accounts:signInWithPassword body.
type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

type identityToolkitError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *FirebaseGateway) SignIn(ctx context.Context, email, password string) (*models.UserProfile, error) {
	payload := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	var resp signInResponse
	if err := g.postIdentityToolkit(ctx, "accounts:signInWithPassword", payload, &resp); err != nil {
		return nil, utils.AuthError{Op: "signIn", Err: err}
	}

	rec, err := g.client.GetUser(ctx, resp.LocalID)
	if err != nil {
		return nil, utils.AuthError{Op: "signIn", Err: err}
	}
	profile := profileFromRecord(rec)
	g.setCurrent(profile)
	return g.CurrentUser(), nil
}

func (g *FirebaseGateway) SignInWithProvider(ctx context.Context, idToken string) (*models.UserProfile, error) {
	tok, err := g.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, utils.AuthError{Op: "signInWithProvider", Err: err}
	}
	rec, err := g.client.GetUser(ctx, tok.UID)
	if err != nil {
		return nil, utils.AuthError{Op: "signInWithProvider", Err: err}
	}
	profile := profileFromRecord(rec)
	g.setCurrent(profile)
	return g.CurrentUser(), nil
}

func (g *FirebaseGateway) SendPasswordReset(ctx context.Context, email string) error {
	payload := map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}
	if err := g.postIdentityToolkit(ctx, "accounts:sendOobCode", payload, nil); err != nil {
		return utils.AuthError{Op: "sendPasswordReset", Err: err}
	}
	return nil
}

func (g *FirebaseGateway) SignOut(ctx context.Context) error {
	current := g.CurrentUser()
	if current != nil {
		if err := g.client.RevokeRefreshTokens(ctx, current.UID); err != nil {
			utils.GetLogger().Warn("firebase: revoke refresh tokens failed", zap.String("uid", current.UID), zap.Error(err))
		}
	}
	g.setCurrent(nil)
	return nil
}

func (g *FirebaseGateway) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error) {
	current := g.CurrentUser()
	if current == nil {
		return nil, utils.AuthError{Op: "updateProfile", Message: "no signed-in user"}
	}

	params := &fbauth.UserToUpdate{}
	if update.DisplayName != nil {
		params = params.DisplayName(*update.DisplayName)
	}
	if update.PhotoURL != nil {
		params = params.PhotoURL(*update.PhotoURL)
	}
	rec, err := g.client.UpdateUser(ctx, current.UID, params)
	if err != nil {
		return nil, utils.AuthError{Op: "updateProfile", Err: err}
	}
	profile := profileFromRecord(rec)
	g.setCurrent(profile)
	return g.CurrentUser(), nil
}

// postIdentityToolkit performs one Identity Toolkit REST call and decodes
// the response into out when out is non-nil.
func (g *FirebaseGateway) postIdentityToolkit(ctx context.Context, endpoint string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", endpoint, err)
	}
	url := fmt.Sprintf("%s/%s?key=%s", identityToolkitBase, endpoint, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var itErr identityToolkitError
		if err := json.NewDecoder(resp.Body).Decode(&itErr); err == nil && itErr.Error.Message != "" {
			return fmt.Errorf("%s rejected: %s", endpoint, itErr.Error.Message)
		}
		return fmt.Errorf("%s rejected with status %d", endpoint, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

func profileFromRecord(rec *fbauth.UserRecord) *models.UserProfile {
	return &models.UserProfile{
		UID:         rec.UID,
		DisplayName: rec.DisplayName,
		PhotoURL:    rec.PhotoURL,
		Email:       rec.Email,
	}
}

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"

	"github.com/julianstephens/punchlog/internal/constants"
)

// ErrNotLoggedIn is returned when no OAuth token is stored in the
// keyring.
var ErrNotLoggedIn = errors.New("not logged in, run 'punchlog login' first")

// Google OAuth2 endpoints for the device authorization flow (RFC 8628).
var googleEndpoint = oauth2.Endpoint{
	AuthURL:       "https://accounts.google.com/o/oauth2/auth",
	TokenURL:      "https://oauth2.googleapis.com/token",
	DeviceAuthURL: "https://oauth2.googleapis.com/device/code",
}

// spreadsheetsScope grants append access to the user's spreadsheets.
const spreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"

// Config returns the OAuth2 configuration for the given client
// credentials.
func Config(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     googleEndpoint,
		Scopes:       []string{spreadsheetsScope},
	}
}

// Login runs the device authorization flow, prompting through the given
// callback, and stores the granted token in the OS keyring.
func Login(ctx context.Context, cfg *oauth2.Config, prompt func(verificationURL, userCode string)) error {
	da, err := cfg.DeviceAuth(ctx)
	if err != nil {
		return fmt.Errorf("requesting device code: %w", err)
	}
	prompt(da.VerificationURI, da.UserCode)

	tok, err := cfg.DeviceAccessToken(ctx, da)
	if err != nil {
		return fmt.Errorf("waiting for authorization: %w", err)
	}
	return saveToken(tok)
}

// Logout removes the stored token from the keyring.
func Logout() error {
	err := keyring.Delete(constants.KeyringService, constants.KeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotLoggedIn
		}
		return fmt.Errorf("failed to delete token from keyring: %w", err)
	}
	return nil
}

// TokenSource returns a source backed by the stored token that persists
// refreshed tokens back to the keyring.
func TokenSource(ctx context.Context, cfg *oauth2.Config) (oauth2.TokenSource, error) {
	tok, err := loadToken()
	if err != nil {
		return nil, err
	}
	return &savingTokenSource{ts: cfg.TokenSource(ctx, tok)}, nil
}

// savingTokenSource wraps a TokenSource and persists refreshed tokens.
type savingTokenSource struct {
	ts oauth2.TokenSource
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.ts.Token()
	if err != nil {
		return nil, err
	}
	// Best-effort save; ignore errors.
	_ = saveToken(tok)
	return tok, nil
}

func saveToken(tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	if err := keyring.Set(constants.KeyringService, constants.KeyringUser, string(data)); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

func loadToken() (*oauth2.Token, error) {
	raw, err := keyring.Get(constants.KeyringService, constants.KeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to read token from keyring: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal([]byte(raw), &tok); err != nil {
		return nil, fmt.Errorf("parsing stored token: %w", err)
	}
	return &tok, nil
}

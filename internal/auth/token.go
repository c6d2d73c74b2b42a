// Package auth stores and supplies the bearer token used for API calls.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/config"
	"golang.org/x/oauth2"
)

const tokenFileName = "token.json"

// DefaultTokenPath returns where the access token is kept between runs.
func DefaultTokenPath() (string, error) {
	dir, err := config.DataDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve data directory: %w", err)
	}
	return filepath.Join(dir, tokenFileName), nil
}

// NewToken wraps a raw access token. A zero ttl means it never expires locally.
func NewToken(accessToken string, ttl time.Duration) *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}
	if ttl > 0 {
		tok.Expiry = time.Now().Add(ttl)
	}
	return tok
}

// LoadToken loads a token from file.
func LoadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("failed to decode token file: %w", err)
	}
	return token, nil
}

// SaveToken writes a token readable by the owner only.
func SaveToken(path string, token *oauth2.Token) error {
	if token == nil || token.AccessToken == "" {
		return errors.New("refusing to save an empty token")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	return nil
}

// RemoveToken deletes the token file. A missing file is not an error.
func RemoveToken(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// Fingerprint identifies a token in logs without revealing it.
func Fingerprint(token string) string {
	if len(token) > 16 {
		return token[:4] + "..." + token[len(token)-4:]
	}
	return "short_token"
}

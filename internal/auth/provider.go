package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/the-income-must-flow/internal/common"
	"github.com/Veraticus/the-income-must-flow/internal/service"
)

// StaticProvider returns a fixed token, typically from config or environment.
type StaticProvider struct {
	token string
}

// NewStaticProvider creates a provider for a configured token.
func NewStaticProvider(token string) *StaticProvider {
	return &StaticProvider{token: strings.TrimSpace(token)}
}

// Token implements service.TokenProvider.
func (p *StaticProvider) Token(_ context.Context) (string, error) {
	if p.token == "" {
		return "", common.ErrMissingToken
	}
	return p.token, nil
}

// FileProvider reads the token saved by `income auth login`.
// The file is read on every call so a login in another terminal is picked up.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider backed by the token file at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Path returns the token file location.
func (p *FileProvider) Path() string {
	return p.path
}

// Token implements service.TokenProvider.
func (p *FileProvider) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tok, err := LoadToken(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", common.ErrMissingToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to load token: %w", err)
	}

	if !tok.Valid() {
		slog.Debug("Stored token is expired or empty", "expiry", tok.Expiry, "path", p.path)
		return "", common.ErrMissingToken
	}
	return tok.AccessToken, nil
}

// ChainProvider asks each provider in order and returns the first token found.
type ChainProvider struct {
	providers []service.TokenProvider
}

// NewChainProvider creates a provider that falls through the given providers.
func NewChainProvider(providers ...service.TokenProvider) *ChainProvider {
	return &ChainProvider{providers: providers}
}

// Token implements service.TokenProvider.
func (c *ChainProvider) Token(ctx context.Context) (string, error) {
	for _, p := range c.providers {
		tok, err := p.Token(ctx)
		if err == nil {
			return tok, nil
		}
		if !errors.Is(err, common.ErrMissingToken) {
			return "", err
		}
	}
	return "", common.ErrMissingToken
}

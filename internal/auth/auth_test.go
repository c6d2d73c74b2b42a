package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")

	require.NoError(t, SaveToken(path, NewToken("abc123", time.Hour)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	tok, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.True(t, tok.Valid())
}

func TestSaveToken_RejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	assert.Error(t, SaveToken(path, nil))
	assert.Error(t, SaveToken(path, NewToken("", 0)))
}

func TestRemoveToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, SaveToken(path, NewToken("abc", 0)))

	require.NoError(t, RemoveToken(path))
	_, err := os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	assert.NoError(t, RemoveToken(path), "removing twice is fine")
}

func TestFileProvider(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileProvider(filepath.Join(dir, "absent.json")).Token(ctx)
		assert.ErrorIs(t, err, common.ErrMissingToken)
	})

	t.Run("valid token", func(t *testing.T) {
		path := filepath.Join(dir, "valid.json")
		require.NoError(t, SaveToken(path, NewToken("live-token", 0)))

		tok, err := NewFileProvider(path).Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "live-token", tok)
	})

	t.Run("expired token", func(t *testing.T) {
		path := filepath.Join(dir, "expired.json")
		expired := NewToken("old-token", time.Hour)
		expired.Expiry = time.Now().Add(-time.Hour)
		require.NoError(t, SaveToken(path, expired))

		_, err := NewFileProvider(path).Token(ctx)
		assert.ErrorIs(t, err, common.ErrMissingToken)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(dir, "corrupt.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

		_, err := NewFileProvider(path).Token(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, common.ErrMissingToken)
	})
}

func TestChainProvider(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, SaveToken(path, NewToken("from-file", 0)))

	tests := []struct {
		name    string
		chain   *ChainProvider
		want    string
		wantErr error
	}{
		{
			name:  "static wins when set",
			chain: NewChainProvider(NewStaticProvider("from-config"), NewFileProvider(path)),
			want:  "from-config",
		},
		{
			name:  "falls through to file",
			chain: NewChainProvider(NewStaticProvider("  "), NewFileProvider(path)),
			want:  "from-file",
		},
		{
			name:    "nothing available",
			chain:   NewChainProvider(NewStaticProvider(""), NewFileProvider(path+".missing")),
			wantErr: common.ErrMissingToken,
		},
		{
			name:    "empty chain",
			chain:   NewChainProvider(),
			wantErr: common.ErrMissingToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.chain.Token(ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, "abcd...wxyz", Fingerprint("abcdefghijklmnopqrstuvwxyz"))
	assert.Equal(t, "short_token", Fingerprint("abc"))
}

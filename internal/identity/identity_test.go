package identity_test

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"roastline/internal/identity"
)

func writeKeyFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "id_ed25519.pub")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFromKeyFile(t *testing.T) {
	keyData := []byte("fake-ed25519-key-material")
	encoded := base64.StdEncoding.EncodeToString(keyData)
	path := writeKeyFile(t, "ssh-ed25519 "+encoded+" user@host\n")

	id, err := identity.FromKeyFile(path)
	assert.NoError(t, err)

	// The fingerprint hashes the decoded key material, not the file text.
	sum := sha256.Sum256(keyData)
	assert.Equal(t, hex.EncodeToString(sum[:]), id.Fingerprint)
	assert.Equal(t, id.Fingerprint[:8], id.ShortID)
}

func TestFromKeyFile_NoComment(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("key"))
	path := writeKeyFile(t, "ssh-ed25519 "+encoded)

	id, err := identity.FromKeyFile(path)
	assert.NoError(t, err)
	assert.Len(t, id.Fingerprint, 64)
}

func TestFromKeyFile_Malformed(t *testing.T) {
	path := writeKeyFile(t, "not-a-key")

	_, err := identity.FromKeyFile(path)
	assert.Error(t, err)
}

func TestFromKeyFile_BadBase64(t *testing.T) {
	path := writeKeyFile(t, "ssh-ed25519 %%%% user@host")

	_, err := identity.FromKeyFile(path)
	assert.Error(t, err)
}

func TestFromKeyFile_Missing(t *testing.T) {
	_, err := identity.FromKeyFile(filepath.Join(t.TempDir(), "absent.pub"))
	assert.Error(t, err)
}

func TestFallback_Stable(t *testing.T) {
	a := identity.Fallback()
	b := identity.Fallback()

	assert.NotEmpty(t, a.Fingerprint)
	assert.Len(t, a.Fingerprint, 64)
	assert.Equal(t, a, b)
}

func TestGetOrCreate_NeverEmpty(t *testing.T) {
	id := identity.GetOrCreate()

	assert.Len(t, id.Fingerprint, 64)
	assert.Len(t, id.ShortID, 8)
}

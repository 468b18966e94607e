// Package identity derives a stable, opaque per-user fingerprint. It prefers
// the user's SSH public key (hashed the way ssh-keygen -lf does) and falls
// back to a machine-derived identifier when no key is readable.
package identity

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Identity scopes saved addresses and order history to one user.
type Identity struct {
	// Fingerprint is the full hex SHA-256 digest.
	Fingerprint string
	// ShortID is the display form, the first 8 hex characters.
	ShortID string
}

func fromDigest(sum [32]byte) Identity {
	fingerprint := hex.EncodeToString(sum[:])
	return Identity{
		Fingerprint: fingerprint,
		ShortID:     fingerprint[:8],
	}
}

// FromKeyFile derives an identity from one SSH public key file.
// The key format is "type base64-key comment"; the decoded key material is
// hashed, matching ssh-keygen's fingerprint input.
func FromKeyFile(path string) (Identity, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Identity{}, err
	}

	parts := strings.Fields(strings.TrimSpace(string(content)))
	if len(parts) < 2 {
		return Identity{}, fmt.Errorf("malformed public key %s", path)
	}

	keyData, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return Identity{}, fmt.Errorf("decode public key %s: %w", path, err)
	}

	return fromDigest(sha256.Sum256(keyData)), nil
}

// FromSSHKey tries the common SSH public key locations in order of
// preference.
func FromSSHKey() (Identity, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Identity{}, false
	}

	for _, name := range []string{"id_ed25519.pub", "id_rsa.pub", "id_ecdsa.pub"} {
		if id, err := FromKeyFile(filepath.Join(home, ".ssh", name)); err == nil {
			return id, true
		}
	}
	return Identity{}, false
}

// Fallback derives an identity from username and home directory when no SSH
// key is available.
func Fallback() Identity {
	username := os.Getenv("USER")
	if username == "" {
		username = os.Getenv("USERNAME")
	}
	if username == "" {
		username = "anonymous"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "unknown"
	}

	return fromDigest(sha256.Sum256([]byte(username + "@" + home)))
}

// GetOrCreate returns the SSH-derived identity, or the machine fallback.
func GetOrCreate() Identity {
	if id, ok := FromSSHKey(); ok {
		return id
	}
	return Fallback()
}

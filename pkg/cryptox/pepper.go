package cryptox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Sizes of the generated server side secrets, in bytes before encoding.
const (
	pepperSize    = 32
	jwtSecretSize = 64
)

// LoadOrGeneratePepper reads the password pepper from path, creating the file
// with a fresh random pepper the first time the service starts.
func LoadOrGeneratePepper(path string) (string, error) {
	b, err := loadOrGenerateSecretFile(path, pepperSize)
	if err != nil {
		return "", fmt.Errorf("cryptox: pepper: %w", err)
	}
	return string(b), nil
}

// LoadOrGenerateJWTSecret reads the HMAC signing secret from path, creating it
// on first start. Tokens survive restarts as long as the file does.
func LoadOrGenerateJWTSecret(path string) ([]byte, error) {
	b, err := loadOrGenerateSecretFile(path, jwtSecretSize)
	if err != nil {
		return nil, fmt.Errorf("cryptox: jwt secret: %w", err)
	}
	return b, nil
}

// loadOrGenerateSecretFile returns the contents of path. A missing file is
// created (0600) holding size random bytes, base64url encoded.
func loadOrGenerateSecretFile(path string, size int) ([]byte, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}
	path = filepath.Clean(path)

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(existing) == 0 {
			return nil, fmt.Errorf("%s is empty", path)
		}
		return existing, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}

	secret, err := GenerateToken(size)
	if err != nil {
		return nil, err
	}

	// O_EXCL so two processes racing on first start don't overwrite each
	// other; the loser just reads what the winner wrote.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := f.WriteString(secret); err != nil {
		return nil, err
	}
	return []byte(secret), nil
}

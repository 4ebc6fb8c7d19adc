package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atomicstack/totem/internal/logging/events"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// nonceSize is the AES-GCM nonce length (96 bits).
	nonceSize = 12
	// keySize is the AES-256 key length.
	keySize = 32
	// saltSize is the PBKDF2 salt length.
	saltSize = 32
	// pbkdf2Iterations follows the OWASP recommendation for PBKDF2-SHA-256.
	pbkdf2Iterations = 600000
)

var (
	// ErrDecryptionFailed indicates a wrong password or tampered vault file.
	ErrDecryptionFailed = errors.New("vault decryption failed: wrong password or corrupted file")
	// ErrVaultTooShort indicates the vault file is truncated.
	ErrVaultTooShort = errors.New("vault file too short")
)

// zeroBytes clears key material after use.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func deriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, pbkdf2Iterations, keySize, sha256.New)
}

// seal encrypts plaintext into salt || nonce || ciphertext.
func seal(password, plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	key := deriveKey(password, salt)
	defer zeroBytes(key)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	out := make([]byte, 0, saltSize+nonceSize+len(plaintext)+aead.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	out = aead.Seal(out, nonce, plaintext, nil)
	return out, nil
}

// unseal reverses seal.
func unseal(password, blob []byte) ([]byte, error) {
	if len(blob) < saltSize+nonceSize+1 {
		return nil, ErrVaultTooShort
	}
	salt := blob[:saltSize]
	nonce := blob[saltSize : saltSize+nonceSize]
	ciphertext := blob[saltSize+nonceSize:]
	key := deriveKey(password, salt)
	defer zeroBytes(key)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// Open loads the vault file at path, decrypting it with password. A missing
// file yields an empty store so first runs work without a setup step.
func Open(path string, password []byte) (*Store, error) {
	blob, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewStore(path, password, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read vault: %w", err)
	}
	plaintext, err := unseal(password, blob)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(plaintext, &records); err != nil {
		return nil, fmt.Errorf("decode vault: %w", err)
	}
	return NewStore(path, password, records), nil
}

// Save encrypts and persists the records, then clears the dirty flag. The
// write goes through a temp file and rename so a crash mid-write cannot
// destroy the previous vault.
func (s *Store) Save() error {
	plaintext, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("encode vault: %w", err)
	}
	blob, err := seal(s.password, plaintext)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create vault directory: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return fmt.Errorf("write vault: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace vault: %w", err)
	}
	s.dirty = false
	events.App.Persisted(s.path, len(s.records))
	return nil
}

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
	"go.uber.org/zap"
)

const credentialsFile = "credentials.json"

// credentialFile is the on-disk shape. The token lives under the fixed key "token".
type credentialFile struct {
	Token string `json:"token"`
}

// FileStore implements sdk.SessionStore using a JSON file.
// This is the CLI's credential persistence implementation.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// Ensure FileStore implements sdk.SessionStore at compile time.
var _ sdk.SessionStore = (*FileStore)(nil)

// NewFileStore creates a FileStore keeping credentials.json in dir.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return &FileStore{
		path:   filepath.Join(dir, credentialsFile),
		logger: logger,
	}, nil
}

// Path returns the credentials file location.
func (s *FileStore) Path() string {
	return s.path
}

// Get loads the token. A missing, unreadable or corrupt file reads as no credential.
func (s *FileStore) Get() (sdk.Credential, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read credentials file", zap.String("path", s.path), zap.Error(err))
		}
		return "", false
	}

	var creds credentialFile
	if err := json.Unmarshal(data, &creds); err != nil {
		s.logger.Warn("corrupted credentials file, ignoring", zap.String("path", s.path), zap.Error(err))
		return "", false
	}
	if creds.Token == "" {
		return "", false
	}
	return sdk.Credential(creds.Token), true
}

// Set replaces the stored token. Uses temp file + rename so readers never see a partial write.
func (s *FileStore) Set(token sdk.Credential) error {
	if token == "" {
		return s.Clear()
	}

	data, err := json.MarshalIndent(credentialFile{Token: string(token)}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	data = append(data, '\n')

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

// Clear deletes the credentials file. Clearing an empty store is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// tokenFile is the on-disk layout of the JSON token slot.
type tokenFile struct {
	AccessToken string    `json:"access_token"`
	SavedAt     time.Time `json:"saved_at"`
}

// fileTokenStore persists the token in a JSON file readable only by the
// owner. Writes go to a temporary file in the same directory which is then
// renamed over the target, so readers never see a partial document.
type fileTokenStore struct {
	mu     sync.Mutex
	path   string
	logger *logger.Logger
}

func NewFileTokenStore(path string, logger *logger.Logger) TokenStore {
	return &fileTokenStore{path: path, logger: logger}
}

// Get implements [TokenStore]. A missing file is an empty slot.
func (s *fileTokenStore) Get(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	var doc tokenFile
	if err = json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("decode token file: %w", err)
	}

	return doc.AccessToken, nil
}

func (s *fileTokenStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(tokenFile{AccessToken: token, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".token-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp token file: %w", err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp token file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp token file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}

	s.logger.Debug().Str("path", s.path).Msg("token saved")
	return nil
}

func (s *fileTokenStore) Remove(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}

	return nil
}

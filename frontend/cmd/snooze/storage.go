package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/itchan-dev/hackorsnooze/frontend/internal/model"
)

// defaultSessionPath is <user config dir>/snooze/session.json.
func defaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("can't locate config dir: %w", err)
	}
	return filepath.Join(dir, "snooze", "session.json"), nil
}

// loadCredentials returns nil when nothing is stored yet.
func loadCredentials(path string) (*model.StoredCredentials, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't read session file: %w", err)
	}

	var creds model.StoredCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("can't parse session file %s: %w", path, err)
	}
	if creds.Token == "" || creds.Username == "" {
		return nil, nil
	}
	return &creds, nil
}

// saveCredentials writes creds, or removes the file when creds is nil.
func saveCredentials(path string, creds *model.StoredCredentials) error {
	if creds == nil {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("can't remove session file: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("can't create session dir: %w", err)
	}
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("can't write session file: %w", err)
	}
	return nil
}

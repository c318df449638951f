package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// fileEnvelope is the on-disk JSON layout.
type fileEnvelope struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	User         json.RawMessage `json:"user,omitempty"`
}

// File persists one session as a single JSON file, the local single-admin
// analog of browser storage. Saves go through a temp file and rename so a
// reader never sees a partial write.
type File struct {
	path string
}

// NewFile builds a file store at the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads the persisted snapshot. A missing file is an empty snapshot; an
// unreadable or unparsable file is an error for the caller to recover from.
func (f *File) Load(_ context.Context) (Snapshot, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("read session file: %w", err)
	}

	var envelope fileEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Snapshot{}, fmt.Errorf("decode session file: %w", err)
	}
	return Snapshot{
		AccessToken:  envelope.AccessToken,
		RefreshToken: envelope.RefreshToken,
		UserJSON:     envelope.User,
	}, nil
}

// Save writes the snapshot atomically.
func (f *File) Save(_ context.Context, snap Snapshot) error {
	envelope := fileEnvelope{
		AccessToken:  snap.AccessToken,
		RefreshToken: snap.RefreshToken,
		User:         snap.UserJSON,
	}
	raw, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear removes the file; removing an absent file is fine.
func (f *File) Clear(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// NewFileFactory returns a Factory that serves the same file-backed store for
// every session id: the file backend is for a local console with one admin.
func NewFileFactory(path string) Factory {
	store := NewFile(path)
	return func(string) Store {
		return store
	}
}

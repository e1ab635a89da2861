package auth

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// TokenStore persists the session token between runs.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// FileStore keeps the token in a single file under the user's config
// directory. A missing file reads as an empty token.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create token directory")
	}
	if err := ioutil.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "failed to write token file")
	}
	return nil
}

func (f *FileStore) Load() (string, error) {
	raw, err := ioutil.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(err, "failed to read token file")
	}
	return strings.TrimSpace(string(raw)), nil
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove token file")
	}
	return nil
}

// MemStore holds the token in memory only; used by tests and one-shot runs.
type MemStore struct {
	token string
}

func (m *MemStore) Save(token string) error {
	m.token = token
	return nil
}

func (m *MemStore) Load() (string, error) {
	return m.token, nil
}

func (m *MemStore) Clear() error {
	m.token = ""
	return nil
}

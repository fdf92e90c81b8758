package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// CredentialStore persists the session token and user between runs, the
// way a browser client would keep them in local storage.
type CredentialStore interface {
	Token() string
	User() *User
	Save(token string, user *User) error
	Clear() error
}

// --------- File-backed store ---------

type sessionFile struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type FileStore struct {
	path string
}

// NewFileStore stores credentials at the given path. An empty path picks
// a default under the user config dir.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "bookingctl", "session.json")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}

	return &FileStore{path: path}, nil
}

func (s *FileStore) load() sessionFile {
	var sf sessionFile

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return sf
	}

	_ = json.Unmarshal(raw, &sf)
	return sf
}

func (s *FileStore) Token() string {
	return s.load().Token
}

func (s *FileStore) User() *User {
	return s.load().User
}

func (s *FileStore) Save(token string, user *User) error {
	raw, err := json.Marshal(sessionFile{Token: token, User: user})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

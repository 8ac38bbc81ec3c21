package deviceid

import (
	"fmt"
	"os"
	"strings"
)

// Store persists the resolved device identifier as the sole line of a text
// file beside the launcher. Once written the identifier is treated as
// immutable and reused verbatim on every later run; deleting the file by hand
// is the supported way to force regeneration.
type Store struct {
	path string
}

// NewStore creates a store for the identifier file at the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the identifier file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted identifier. Returns "" with a nil error when the
// file does not exist, since a missing identifier simply means this is the
// first run. No format validation is applied to the stored value.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read device identifier file %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the identifier as a single line, overwriting any existing file.
func (s *Store) Save(id string) error {
	if err := os.WriteFile(s.path, []byte(id+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write device identifier file %s: %w", s.path, err)
	}
	return nil
}

// Remove deletes the identifier file so the next resolve re-derives it.
// Removing an already-absent file is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove device identifier file %s: %w", s.path, err)
	}
	return nil
}

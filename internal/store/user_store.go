package store

import (
	"fmt"

	"cashbox/internal/domain"
	"cashbox/internal/domain/types"
)

// UsernameExists reports whether username is registered.
func (s *FileStore) UsernameExists(username domain.Username) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[username]
	return ok
}

// GetUser returns the user registered as username.
func (s *FileStore) GetUser(username domain.Username) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	return u, ok
}

// AddUser appends user to users.txt and makes it visible in memory.
//
// There is no duplicate check here; a second call for the same username
// replaces the cached user and leaves two lines on disk.
func (s *FileStore) AddUser(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := appendLine(s.path(UsersFile), types.EncodeUser(user)); err != nil {
		return fmt.Errorf("store: append %s: %w", UsersFile, err)
	}
	s.users[user.Username] = user
	return nil
}

func (s *FileStore) loadUser(line string) error {
	u, err := types.DecodeUser(line)
	if err != nil {
		return err
	}
	s.users[u.Username] = u
	return nil
}

// Compile-time assertion that FileStore implements domain.UserStore.
var _ domain.UserStore = (*FileStore)(nil)

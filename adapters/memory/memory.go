package memory

import (
	"context"
	"sync"

	"github.com/gabrie-lhilarion/authd/core"
)

// Store is a mutex-guarded in-memory CredentialStore with the same
// error semantics as the pgx adapter. Suitable for tests, demos and
// single-process deployments that can afford to lose rows on restart.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*core.User
}

var _ core.CredentialStore = (*Store)(nil)

func New() *Store {
	return &Store{users: make(map[int64]*core.User)}
}

func (s *Store) Insert(ctx context.Context, email, passwordHash string) (*core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, core.ErrEmailTaken
		}
	}

	s.nextID++
	user := &core.User{
		ID:           s.nextID,
		Email:        email,
		PasswordHash: passwordHash,
	}
	s.users[user.ID] = user

	return copyUser(user), nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (*core.User, error) {
	return s.findOne(func(u *core.User) bool { return u.ID == id })
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*core.User, error) {
	return s.findOne(func(u *core.User) bool { return u.Email == email })
}

func (s *Store) FindBySessionID(ctx context.Context, sessionID string) (*core.User, error) {
	return s.findOne(func(u *core.User) bool {
		return u.SessionID != nil && *u.SessionID == sessionID
	})
}

func (s *Store) FindByResetToken(ctx context.Context, resetToken string) (*core.User, error) {
	return s.findOne(func(u *core.User) bool {
		return u.ResetToken != nil && *u.ResetToken == resetToken
	})
}

func (s *Store) Update(ctx context.Context, id int64, upd core.UserUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return core.ErrUserNotFound
	}

	if upd.PasswordHash != nil {
		user.PasswordHash = *upd.PasswordHash
	}
	switch {
	case upd.SessionID != nil:
		v := *upd.SessionID
		user.SessionID = &v
	case upd.ClearSessionID:
		user.SessionID = nil
	}
	switch {
	case upd.ResetToken != nil:
		v := *upd.ResetToken
		user.ResetToken = &v
	case upd.ClearResetToken:
		user.ResetToken = nil
	}

	return nil
}

func (s *Store) findOne(match func(*core.User) bool) (*core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if match(u) {
			return copyUser(u), nil
		}
	}
	return nil, core.ErrUserNotFound
}

// copyUser keeps callers from mutating rows behind the store's back.
func copyUser(u *core.User) *core.User {
	c := *u
	if u.SessionID != nil {
		v := *u.SessionID
		c.SessionID = &v
	}
	if u.ResetToken != nil {
		v := *u.ResetToken
		c.ResetToken = &v
	}
	return &c
}

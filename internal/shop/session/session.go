package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/storefront-poc-v1/client/internal/shop/model"
	logx "github.com/storefront-poc-v1/client/pkg/logger"
)

// Durable storage keys. The auth token and user id are written by older
// clients and carry no authorization weight here; they are cleared on
// logout so stale sessions cannot linger.
const (
	KeyUserData  = "userData"
	KeyAuthToken = "authToken"
	KeyUserID    = "userId"
	// KeyUserEmail is a legacy key read as a fallback only.
	KeyUserEmail = "userEmail"
)

// Storage is the durable key/value store backing the session. A missing
// key is reported with found=false, never an error.
type Storage interface {
	// Get retrieves the value stored under key.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the given keys. Deleting absent keys is not an error.
	Delete(ctx context.Context, keys ...string) error
}

// Store is the single owner of the current session. It caches the signed-in
// user in process and keeps the durable storage in sync; loaders receive a
// *Store instead of reaching for ambient state.
type Store struct {
	mu      sync.Mutex
	storage Storage
	current *model.User
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Current returns the signed-in user. With no user cached it goes back to
// durable storage, so a sign-in written by another process is picked up.
// Missing or malformed stored data yields (nil, false); a malformed record
// is logged and treated as absent, it never errors out.
func (s *Store) Current(ctx context.Context) (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return s.current, true
	}

	user := s.readStored(ctx)
	if user == nil {
		return nil, false
	}
	s.current = user
	return user, true
}

func (s *Store) readStored(ctx context.Context) *model.User {
	raw, found, err := s.storage.Get(ctx, KeyUserData)
	if err != nil {
		logx.Error().Err(err).Str("key", KeyUserData).Msg("failed to read stored session")
		return nil
	}

	if found {
		var user model.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			logx.Warn().Err(err).Str("key", KeyUserData).Msg("malformed stored session, treating as signed out")
			return nil
		}
		return &user
	}

	// Older clients stored only the email.
	email, found, err := s.storage.Get(ctx, KeyUserEmail)
	if err != nil || !found || email == "" {
		return nil
	}
	return &model.User{Email: email}
}

// Set records a successful login: the user is cached and persisted under
// the fixed key. Last writer wins; no cross-process locking is attempted.
func (s *Store) Set(ctx context.Context, user *model.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, KeyUserData, string(b)); err != nil {
		logx.Error().Err(err).Str("email", user.Email).Msg("failed to persist session")
		return err
	}
	s.current = user
	return nil
}

// Logout clears the cached user and every session-related storage key.
// Safe to call when already signed out.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil

	if err := s.storage.Delete(ctx, KeyUserData, KeyAuthToken, KeyUserID, KeyUserEmail); err != nil {
		logx.Error().Err(err).Msg("failed to clear session storage")
		return err
	}
	return nil
}

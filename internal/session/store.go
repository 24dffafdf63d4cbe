package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/EldarTem/inventoryTrack/internal/storage"
	"github.com/EldarTem/inventoryTrack/pkg/models"
)

// Credentials is a login/password pair submitted by the rendering layer.
type Credentials struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthenticationError reports a login exchange rejected by the backend.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Authenticator is the remote collaborator that exchanges credentials for
// an identity. Login returns the identity and the bearer token issued for
// it; the token may be empty when the backend does not issue one.
type Authenticator interface {
	Login(ctx context.Context, login, password string) (models.Identity, string, error)
	Logout(ctx context.Context, token string) error
}

// snapshot is the serialized session written to durable storage.
type snapshot struct {
	ID    string      `json:"id"`
	Login string      `json:"login"`
	Role  models.Role `json:"role"`
	Token string      `json:"token,omitempty"`
}

// Store owns the authenticated identity for the running client. Consumers
// receive it injected through the container, never as a package global.
type Store struct {
	storage storage.Store
	auth    Authenticator
	log     *zap.Logger

	mu       sync.RWMutex
	identity *models.Identity
	token    string
}

func NewStore(s storage.Store, auth Authenticator, log *zap.Logger) *Store {
	return &Store{storage: s, auth: auth, log: log}
}

// Login exchanges credentials for an identity through the Authenticator.
// State is left unchanged on failure.
func (s *Store) Login(ctx context.Context, creds Credentials) (models.Identity, error) {
	identity, token, err := s.auth.Login(ctx, creds.Login, creds.Password)
	if err != nil {
		return models.Identity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &identity
	s.token = token
	s.persist()
	return identity, nil
}

// Logout clears the identity and erases the durable snapshot. The backend
// is notified best-effort; a notify failure does not roll anything back.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.identity = nil
	s.token = ""
	if err := s.storage.Erase(storage.KeySession); err != nil {
		s.log.Warn("failed to erase session snapshot", zap.Error(err))
	}
	s.mu.Unlock()

	if s.auth != nil {
		if err := s.auth.Logout(ctx, token); err != nil {
			s.log.Debug("logout notification failed", zap.Error(err))
		}
	}
}

// Restore loads the session from its durable snapshot. A missing snapshot
// leaves the identity nil; a structurally invalid or expired one is
// discarded silently. Restore never fails.
func (s *Store) Restore() {
	raw, ok, err := s.storage.Read(storage.KeySession)
	if err != nil {
		s.log.Warn("failed to read session snapshot", zap.Error(err))
		return
	}
	if !ok {
		return
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		s.log.Debug("discarding unparsable session snapshot", zap.Error(err))
		s.discard()
		return
	}
	if snap.ID == "" || snap.Login == "" || snap.Role.Code == "" || snap.Role.DisplayValue == "" {
		s.log.Debug("discarding incomplete session snapshot")
		s.discard()
		return
	}
	if snap.Token != "" && tokenExpired(snap.Token) {
		s.log.Debug("discarding session snapshot with expired token")
		s.discard()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &models.Identity{ID: snap.ID, Login: snap.Login, Role: snap.Role}
	s.token = snap.Token
}

// Identity returns the current identity and whether one is set.
func (s *Store) Identity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Identity()
	return ok
}

// persist writes the snapshot; callers hold the lock. A write failure keeps
// the in-memory session valid.
func (s *Store) persist() {
	snap := snapshot{
		ID:    s.identity.ID,
		Login: s.identity.Login,
		Role:  s.identity.Role,
		Token: s.token,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		s.log.Warn("failed to serialize session snapshot", zap.Error(err))
		return
	}
	if err := s.storage.Write(storage.KeySession, string(data)); err != nil {
		s.log.Warn("failed to persist session snapshot", zap.Error(err))
	}
}

func (s *Store) discard() {
	if err := s.storage.Erase(storage.KeySession); err != nil {
		s.log.Warn("failed to erase session snapshot", zap.Error(err))
	}
}

// tokenExpired decodes the bearer token without verifying its signature
// (the client holds no key material) and checks the exp claim. Tokens
// without exp never expire locally; unparsable tokens count as expired.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
